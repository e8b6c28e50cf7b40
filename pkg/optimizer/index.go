package optimizer

import "time"

const dateKeyFormat = "2006-01-02"

// HolidayIndex maps a calendar date (day granularity) to its day-off record.
// It never contains weekend dates.
type HolidayIndex map[string]DayOff

func dateKey(t time.Time) string {
	return t.Format(dateKeyFormat)
}

func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// BuildIndex merges public and company holidays into one lookup keyed by date.
// Company holidays are inserted last and win date collisions. Entries that
// fall on a weekend are removed: those days are already free and must not
// count against the personal-day budget.
func BuildIndex(publicHolidays []Holiday, companyHolidays []Holiday) HolidayIndex {
	index := make(HolidayIndex, len(publicHolidays)+len(companyHolidays))

	for _, h := range publicHolidays {
		date := normalizeDate(h.Date)
		index[dateKey(date)] = DayOff{Date: date, Type: DayOffPublicHoliday, Name: h.Name}
	}
	for _, h := range companyHolidays {
		date := normalizeDate(h.Date)
		index[dateKey(date)] = DayOff{Date: date, Type: DayOffCompanyHoliday, Name: h.Name}
	}

	for key, entry := range index {
		if isWeekend(entry.Date) {
			delete(index, key)
		}
	}
	return index
}
