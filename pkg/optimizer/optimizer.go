package optimizer

import (
	"errors"
	"fmt"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"
)

// StrategyType names an optimization profile.
type StrategyType string

const (
	StrategyLongWeekend StrategyType = "longWeekend"
	StrategyMidWeek     StrategyType = "midWeek"
	StrategyWeek        StrategyType = "week"
	StrategyExtended    StrategyType = "extended"
)

type DayOffType string

const (
	DayOffPublicHoliday  DayOffType = "PUBLIC_HOLIDAY"
	DayOffCompanyHoliday DayOffType = "COMPANY_HOLIDAY"
	DayOffWeekend        DayOffType = "WEEKEND"
	DayOffUserHoliday    DayOffType = "USER_HOLIDAY"
)

// Holiday is the reduced external record the engine consumes: a calendar date
// and a display name. Regional filtering happens upstream.
type Holiday struct {
	Date time.Time
	Name string
}

// DayOff classifies a single date inside a selected period.
type DayOff struct {
	Date time.Time
	Type DayOffType
	Name string
}

// HolidayPeriod is a confirmed, non-overlapping window in the final output.
type HolidayPeriod struct {
	StartDate          time.Time
	EndDate            time.Time
	Days               []DayOff
	Strategy           StrategyType
	PersonalDaysUsed   int
	PublicHolidayDays  int
	CompanyHolidayDays int
	WeekendDays        int
	TotalDaysOff       int
	Description        string
}

// Candidate is an unconfirmed window under evaluation.
type Candidate struct {
	Days         []time.Time
	PersonalDays int
	PublicDays   int
	CompanyDays  int
	WeekendDays  int
	Length       int
	Score        float64
	// MaxFreeRun is the longest internal run of days that need no personal day.
	MaxFreeRun int
	// DensitySum is the summed holiday density over the window, when the
	// strategy precomputed a density lookup.
	DensitySum int
}

var (
	ErrNegativePersonalDays = errors.New("personal day count must not be negative")
	ErrYearOutOfRange       = errors.New("year out of supported range")
)

const (
	minSupportedYear = 1900
	maxSupportedYear = 2200
)

// runContext holds all mutable state of a single optimization run. It is
// created per Optimize call and never shared.
type runContext struct {
	strategy  Strategy
	index     HolidayIndex
	aux       *Precomputed
	year      int
	yearStart time.Time
	yearEnd   time.Time
	now       time.Time
	budget    int
	usedDates map[string]struct{}
	periods   []HolidayPeriod
}

// Optimize searches the given year for non-overlapping vacation windows that
// best leverage weekends and holidays for the chosen strategy. The zero value
// of referenceToday means "now". Periods are returned sorted by start date.
//
// An unknown strategy yields an empty result rather than an error; only
// contract violations (negative personal days, unsupported year) fail hard.
func Optimize(
	strategyType StrategyType,
	publicHolidays []Holiday,
	companyHolidays []Holiday,
	personalDays int,
	year int,
	referenceToday time.Time,
) ([]HolidayPeriod, error) {
	if personalDays < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativePersonalDays, personalDays)
	}
	if year < minSupportedYear || year > maxSupportedYear {
		return nil, fmt.Errorf("%w: %d", ErrYearOutOfRange, year)
	}

	strategy, ok := strategyFor(strategyType)
	if !ok {
		log.Warnf("unknown optimization strategy %q, returning no periods", strategyType)
		return []HolidayPeriod{}, nil
	}

	if personalDays < strategy.MinPersonalDays() {
		log.Debugf("strategy %s needs at least %d personal days, %d available",
			strategyType, strategy.MinPersonalDays(), personalDays)
		return []HolidayPeriod{}, nil
	}

	index := BuildIndex(publicHolidays, companyHolidays)

	now := referenceToday
	if now.IsZero() {
		now = time.Now()
	}

	rc := &runContext{
		strategy:  strategy,
		index:     index,
		aux:       strategy.Precompute(year, index),
		year:      year,
		yearStart: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		yearEnd:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
		now:       normalizeDate(now),
		budget:    personalDays,
		usedDates: make(map[string]struct{}),
	}

	for pass := range strategy.Passes() {
		if rc.budget <= 0 {
			break
		}
		candidates := rc.generatePass(pass)
		// Stable: ties keep chronological discovery order.
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].Score > candidates[j].Score
		})
		rc.selectPass(pass, candidates)
	}

	sort.SliceStable(rc.periods, func(i, j int) bool {
		return rc.periods[i].StartDate.Before(rc.periods[j].StartDate)
	})
	if rc.periods == nil {
		return []HolidayPeriod{}, nil
	}
	return rc.periods, nil
}

// generatePass enumerates, classifies and scores every feasible window for the
// given pass. Lengths are tried in the strategy's order; within a length, start
// dates scan the year chronologically.
func (rc *runContext) generatePass(pass int) []Candidate {
	var candidates []Candidate

	for _, length := range rc.strategy.Passes()[pass] {
		for d := rc.yearStart; !d.After(rc.yearEnd); d = d.AddDate(0, 0, 1) {
			if !rc.strategy.IsValidStart(d, length, pass) {
				continue
			}
			if d.Before(rc.now) {
				continue
			}

			end := d.AddDate(0, 0, length-1)
			if end.After(rc.yearEnd) || d.Year() != rc.year || end.Year() != rc.year {
				continue
			}
			if !rc.strategy.IsValidEnd(end, length, pass) {
				continue
			}
			// Overlap check before the per-day classification work.
			if rc.anyUsed(d, length) {
				continue
			}

			c := rc.classify(d, length)
			if !rc.strategy.IsPersonalDayCountValid(c.PersonalDays, rc.budget) {
				continue
			}
			if c.WeekendDays < rc.strategy.MinWeekendDays(length, pass) {
				continue
			}
			if !rc.strategy.Filter(c) {
				continue
			}

			c.Score = rc.strategy.Score(c, pass, rc.aux)
			candidates = append(candidates, c)
		}
	}
	return candidates
}

func (rc *runContext) anyUsed(start time.Time, length int) bool {
	for i := 0; i < length; i++ {
		if _, used := rc.usedDates[dateKey(start.AddDate(0, 0, i))]; used {
			return true
		}
	}
	return false
}

// classify walks the window day by day applying the strict priority order:
// holiday beats weekend beats personal day. Each date counts exactly once.
func (rc *runContext) classify(start time.Time, length int) Candidate {
	c := Candidate{
		Days:   make([]time.Time, 0, length),
		Length: length,
	}

	freeRun := 0
	for i := 0; i < length; i++ {
		day := start.AddDate(0, 0, i)
		c.Days = append(c.Days, day)
		key := dateKey(day)

		if rc.aux != nil {
			c.DensitySum += rc.aux.Density[key]
		}

		if entry, ok := rc.index[key]; ok {
			if entry.Type == DayOffPublicHoliday {
				c.PublicDays++
			} else {
				c.CompanyDays++
			}
			freeRun++
		} else if isWeekend(day) {
			c.WeekendDays++
			freeRun++
		} else {
			c.PersonalDays++
			freeRun = 0
		}
		if freeRun > c.MaxFreeRun {
			c.MaxFreeRun = freeRun
		}
	}
	return c
}

// selectPass greedily consumes the scored candidates of one pass: best first,
// skipping anything that overlaps already claimed dates or no longer fits the
// remaining budget.
func (rc *runContext) selectPass(pass int, candidates []Candidate) {
	for _, c := range candidates {
		if !rc.strategy.IsPersonalDayCountValid(c.PersonalDays, rc.budget) {
			continue
		}
		// A higher-scored candidate in this pass may have claimed some dates.
		if rc.anyUsed(c.Days[0], c.Length) {
			continue
		}

		period, ok := rc.buildPeriod(c)
		if !ok {
			continue
		}
		period.Description = rc.strategy.Describe(period, c, rc.aux)

		rc.periods = append(rc.periods, period)
		for _, day := range c.Days {
			rc.usedDates[dateKey(day)] = struct{}{}
		}
		rc.budget -= c.PersonalDays

		if rc.budget <= 0 {
			break
		}
	}
}

// buildPeriod materializes the day-by-day breakdown for an accepted candidate.
// If the number of personal days filled does not match the candidate's count,
// the run-scoped invariant is broken and the candidate is dropped.
func (rc *runContext) buildPeriod(c Candidate) (HolidayPeriod, bool) {
	days := make([]DayOff, 0, c.Length)
	filled := 0
	for _, day := range c.Days {
		if entry, ok := rc.index[dateKey(day)]; ok {
			days = append(days, entry)
		} else if isWeekend(day) {
			days = append(days, DayOff{Date: day, Type: DayOffWeekend})
		} else if filled < c.PersonalDays {
			days = append(days, DayOff{Date: day, Type: DayOffUserHoliday})
			filled++
		}
	}

	if len(days) != c.Length || filled != c.PersonalDays {
		log.Warnf("personal day count mismatch for window starting %s: expected %d, filled %d",
			c.Days[0].Format(dateKeyFormat), c.PersonalDays, filled)
		return HolidayPeriod{}, false
	}

	return HolidayPeriod{
		StartDate:          c.Days[0],
		EndDate:            c.Days[c.Length-1],
		Days:               days,
		Strategy:           rc.strategy.Type(),
		PersonalDaysUsed:   c.PersonalDays,
		PublicHolidayDays:  c.PublicDays,
		CompanyHolidayDays: c.CompanyDays,
		WeekendDays:        c.WeekendDays,
		TotalDaysOff:       c.Length,
	}, true
}
