package optimizer

import (
	"fmt"
	"time"
)

// weekStrategy targets 7-9 day breaks spanning exactly one full weekend on
// each side of a working week, rewarding windows dense with holidays.
type weekStrategy struct{}

func (weekStrategy) Type() StrategyType { return StrategyWeek }

func (weekStrategy) Passes() [][]int { return [][]int{{9, 8, 7}} }

func (weekStrategy) MinPersonalDays() int { return 0 }

func (weekStrategy) IsValidStart(date time.Time, length, pass int) bool { return true }

func (weekStrategy) IsValidEnd(date time.Time, length, pass int) bool { return true }

func (weekStrategy) MinWeekendDays(length, pass int) int { return 2 }

func (weekStrategy) IsPersonalDayCountValid(count, budget int) bool {
	return count <= budget
}

func (weekStrategy) Filter(c Candidate) bool {
	return c.WeekendDays == 2
}

func (weekStrategy) Score(c Candidate, pass int, aux *Precomputed) float64 {
	holidayDays := c.PublicDays + c.CompanyDays
	efficiency := float64(holidayDays+c.WeekendDays) / float64(c.Length)

	score := efficiency*100 +
		float64(holidayDays*10) +
		float64(c.WeekendDays*5) +
		float64((c.Length-7)*3) -
		float64(c.PersonalDays*3)
	if c.MaxFreeRun >= 3 {
		// A cluster of holidays/weekends worth planning around.
		score += 50
	}
	return score
}

func (weekStrategy) Describe(p HolidayPeriod, c Candidate, aux *Precomputed) string {
	switch {
	case c.MaxFreeRun >= 3:
		return fmt.Sprintf("%d-day break around public holidays", p.TotalDaysOff)
	case p.PublicHolidayDays >= 2:
		return fmt.Sprintf("%d-day break with public holidays", p.TotalDaysOff)
	}
	return fmt.Sprintf("%d-day week break", p.TotalDaysOff)
}

func (weekStrategy) Precompute(year int, index HolidayIndex) *Precomputed { return nil }
