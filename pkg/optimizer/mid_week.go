package optimizer

import (
	"fmt"
	"time"
)

// midWeekStrategy looks for 5-6 day breaks wrapped around exactly one weekend,
// avoiding windows that merely pad a working week (start Monday / end Friday).
type midWeekStrategy struct{}

func (midWeekStrategy) Type() StrategyType { return StrategyMidWeek }

func (midWeekStrategy) Passes() [][]int { return [][]int{{6, 5}} }

func (midWeekStrategy) MinPersonalDays() int { return 0 }

func (midWeekStrategy) IsValidStart(date time.Time, length, pass int) bool {
	return date.Weekday() != time.Monday
}

func (midWeekStrategy) IsValidEnd(date time.Time, length, pass int) bool {
	return date.Weekday() != time.Friday
}

func (midWeekStrategy) MinWeekendDays(length, pass int) int { return 2 }

func (midWeekStrategy) IsPersonalDayCountValid(count, budget int) bool {
	return count <= budget
}

// Exactly one weekend inside the window, not merely at least one.
func (midWeekStrategy) Filter(c Candidate) bool {
	return c.WeekendDays == 2
}

func (midWeekStrategy) Score(c Candidate, pass int, aux *Precomputed) float64 {
	holidayDays := c.PublicDays + c.CompanyDays
	score := float64(holidayDays*10 + c.WeekendDays*5 - c.PersonalDays*3)
	if c.Length == 6 {
		score += 2
	}
	return score
}

func (midWeekStrategy) Describe(p HolidayPeriod, c Candidate, aux *Precomputed) string {
	return fmt.Sprintf("%d-day midweek break", p.TotalDaysOff)
}

func (midWeekStrategy) Precompute(year int, index HolidayIndex) *Precomputed { return nil }
