package plan

import (
	"time"

	"github.com/daysoff/daysoff/pkg/optimizer"
)

// Plan is one stored optimization run together with its resulting periods.
type Plan struct {
	Id           int
	Uid          string
	Strategy     optimizer.StrategyType
	Year         int
	CountryCode  string
	Region       string
	PersonalDays int
	CreatedAt    time.Time
	Periods      []optimizer.HolidayPeriod
}

// Summary aggregates a plan's periods into the headline numbers shown to the
// user.
type Summary struct {
	Periods            int
	TotalDaysOff       int
	PersonalDaysUsed   int
	PublicHolidayDays  int
	CompanyHolidayDays int
	WeekendDays        int
}

func (p Plan) Summary() Summary {
	var s Summary
	s.Periods = len(p.Periods)
	for _, period := range p.Periods {
		s.TotalDaysOff += period.TotalDaysOff
		s.PersonalDaysUsed += period.PersonalDaysUsed
		s.PublicHolidayDays += period.PublicHolidayDays
		s.CompanyHolidayDays += period.CompanyHolidayDays
		s.WeekendDays += period.WeekendDays
	}
	return s
}
