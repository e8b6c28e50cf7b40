package optimizer

import "time"

// Strategy is the capability set each optimization profile implements. All
// implementations are stateless values; per-run state lives in the run context.
type Strategy interface {
	Type() StrategyType
	// Passes returns the window lengths to search, grouped into ordered passes.
	// All candidates of a pass are generated, scored and greedily consumed
	// before the next pass begins.
	Passes() [][]int
	// MinPersonalDays is the minimum total budget required to attempt the
	// strategy at all.
	MinPersonalDays() int
	IsValidStart(date time.Time, length, pass int) bool
	IsValidEnd(date time.Time, length, pass int) bool
	MinWeekendDays(length, pass int) int
	IsPersonalDayCountValid(count, budget int) bool
	// Filter applies strategy-specific structural constraints after counting.
	Filter(c Candidate) bool
	Score(c Candidate, pass int, aux *Precomputed) float64
	Describe(p HolidayPeriod, c Candidate, aux *Precomputed) string
	// Precompute runs once per optimization run, before candidate generation.
	// Strategies without auxiliary data return nil.
	Precompute(year int, index HolidayIndex) *Precomputed
}

// Precomputed carries auxiliary per-run lookups produced by a strategy's
// Precompute hook.
type Precomputed struct {
	Year int
	// Density maps a date key to the local concentration of holidays and
	// weekend days within ±7 days: 3 per holiday, 1 per weekend day.
	Density map[string]int
}

var strategies = map[StrategyType]Strategy{
	StrategyLongWeekend: longWeekendStrategy{},
	StrategyMidWeek:     midWeekStrategy{},
	StrategyWeek:        weekStrategy{},
	StrategyExtended:    extendedStrategy{},
}

func strategyFor(t StrategyType) (Strategy, bool) {
	s, ok := strategies[t]
	return s, ok
}

const densityScanRadius = 7

// computeHolidayDensity builds the sliding-window density lookup over the
// whole year. Days outside the year do not contribute.
func computeHolidayDensity(year int, index HolidayIndex) map[string]int {
	density := make(map[string]int, 366)
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	for d := yearStart; !d.After(yearEnd); d = d.AddDate(0, 0, 1) {
		local := 0
		for i := -densityScanRadius; i <= densityScanRadius; i++ {
			scan := d.AddDate(0, 0, i)
			if scan.Year() != year {
				continue
			}
			if _, ok := index[dateKey(scan)]; ok {
				local += 3
			} else if isWeekend(scan) {
				local++
			}
		}
		density[dateKey(d)] = local
	}
	return density
}
