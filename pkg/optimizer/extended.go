package optimizer

import (
	"fmt"
	"time"
)

// extendedStrategy plans 10-15 day vacations. It is the only strategy with a
// precomputation hook: a holiday-density lookup over the whole year, used to
// pull long windows towards clusters of holidays and towards the popular
// summer and winter seasons. Longer windows are searched in an earlier pass.
type extendedStrategy struct{}

func (extendedStrategy) Type() StrategyType { return StrategyExtended }

func (extendedStrategy) Passes() [][]int { return [][]int{{15, 14, 13}, {12, 11, 10}} }

// Attempting a two-week window with fewer than 5 personal days never works out.
func (extendedStrategy) MinPersonalDays() int { return 5 }

func (extendedStrategy) IsValidStart(date time.Time, length, pass int) bool { return true }

func (extendedStrategy) IsValidEnd(date time.Time, length, pass int) bool { return true }

func (extendedStrategy) MinWeekendDays(length, pass int) int { return 4 }

func (extendedStrategy) IsPersonalDayCountValid(count, budget int) bool {
	return count <= budget
}

func (extendedStrategy) Filter(c Candidate) bool { return true }

func (extendedStrategy) Score(c Candidate, pass int, aux *Precomputed) float64 {
	holidayDays := c.PublicDays + c.CompanyDays
	efficiency := float64(holidayDays+c.WeekendDays) / float64(c.Length)
	avgDensity := float64(c.DensitySum) / float64(c.Length)

	seasonBonus := 0.0
	if inSummerSeason(c.Days[0], aux.Year) || inWinterSeason(c.Days[0], aux.Year) {
		seasonBonus = 50
	}

	return efficiency*150 +
		avgDensity*10 +
		seasonBonus +
		float64(holidayDays*15) +
		float64(c.WeekendDays*7) +
		float64((c.Length-10)*5) -
		float64(c.PersonalDays*2)
}

func (extendedStrategy) Describe(p HolidayPeriod, c Candidate, aux *Precomputed) string {
	avgDensity := float64(c.DensitySum) / float64(p.TotalDaysOff)
	switch {
	case inSummerSeason(p.StartDate, aux.Year):
		return fmt.Sprintf("%d-day summer vacation", p.TotalDaysOff)
	case inWinterSeason(p.StartDate, aux.Year):
		return fmt.Sprintf("%d-day winter holiday", p.TotalDaysOff)
	case avgDensity > 1.0:
		return fmt.Sprintf("%d-day extended break around holidays", p.TotalDaysOff)
	case p.WeekendDays >= 6:
		return fmt.Sprintf("%d-day multi-weekend vacation", p.TotalDaysOff)
	}
	return fmt.Sprintf("%d-day extended break", p.TotalDaysOff)
}

func (extendedStrategy) Precompute(year int, index HolidayIndex) *Precomputed {
	return &Precomputed{
		Year:    year,
		Density: computeHolidayDensity(year, index),
	}
}

// The popular seasons: mid-June through mid-September, and the year-end weeks.
func inSummerSeason(date time.Time, year int) bool {
	summerStart := time.Date(year, time.June, 15, 0, 0, 0, 0, time.UTC)
	summerEnd := time.Date(year, time.September, 15, 0, 0, 0, 0, time.UTC)
	return !date.Before(summerStart) && !date.After(summerEnd)
}

func inWinterSeason(date time.Time, year int) bool {
	winterStart := time.Date(year, time.December, 15, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return !date.Before(winterStart) && !date.After(yearEnd)
}
