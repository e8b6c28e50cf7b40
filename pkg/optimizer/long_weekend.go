package optimizer

import (
	"fmt"
	"time"
)

// longWeekendStrategy stretches a single personal day into a 3-4 day break
// anchored on a weekend. Four-day windows are consumed before three-day ones.
type longWeekendStrategy struct{}

func (longWeekendStrategy) Type() StrategyType { return StrategyLongWeekend }

func (longWeekendStrategy) Passes() [][]int { return [][]int{{4}, {3}} }

func (longWeekendStrategy) MinPersonalDays() int { return 0 }

func (longWeekendStrategy) IsValidStart(date time.Time, length, pass int) bool {
	switch date.Weekday() {
	case time.Thursday, time.Friday, time.Saturday:
		return true
	}
	return false
}

func (longWeekendStrategy) IsValidEnd(date time.Time, length, pass int) bool { return true }

func (longWeekendStrategy) MinWeekendDays(length, pass int) int {
	if length == 3 {
		return 1
	}
	return 2
}

// Exactly one personal day per long weekend.
func (longWeekendStrategy) IsPersonalDayCountValid(count, budget int) bool {
	return count == 1 && count <= budget
}

func (longWeekendStrategy) Filter(c Candidate) bool { return true }

// Within a pass all valid long weekends are equal; the pass order alone
// prefers 4-day windows over 3-day ones.
func (longWeekendStrategy) Score(c Candidate, pass int, aux *Precomputed) float64 {
	if pass == 0 {
		return 100
	}
	return 50
}

func (longWeekendStrategy) Describe(p HolidayPeriod, c Candidate, aux *Precomputed) string {
	return fmt.Sprintf("%d-day long weekend", p.TotalDaysOff)
}

func (longWeekendStrategy) Precompute(year int, index HolidayIndex) *Precomputed { return nil }
