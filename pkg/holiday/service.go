package holiday

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

// Holiday is the reduced shape handed to the optimizer: date plus display
// name, after regional filtering.
type Holiday struct {
	Date time.Time
	Name string
}

type Service interface {
	AvailableCountries(ctx context.Context) ([]Country, error)
	HolidaysForRegion(ctx context.Context, year int, countryCode string, region string) ([]Holiday, error)
}

type ServiceImpl struct {
	client Client
}

func NewService(client Client) *ServiceImpl {
	return &ServiceImpl{client: client}
}

func (s *ServiceImpl) AvailableCountries(ctx context.Context) ([]Country, error) {
	return s.client.GetAvailableCountries(ctx)
}

// HolidaysForRegion reduces raw API records to dated names. Nationwide
// holidays always apply; region-scoped ones only when the region matches.
// Non-public entries (bank, school...) are skipped.
func (s *ServiceImpl) HolidaysForRegion(ctx context.Context, year int, countryCode string, region string) ([]Holiday, error) {
	raw, err := s.client.GetPublicHolidays(ctx, year, countryCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load public holidays: %w", err)
	}

	holidays := make([]Holiday, 0, len(raw))
	for _, h := range raw {
		if !isPublicType(h) {
			continue
		}
		if !h.Global && !appliesToRegion(h, region) {
			continue
		}
		date, err := time.Parse("2006-01-02", h.Date)
		if err != nil {
			log.Warnf("skipping holiday %q with malformed date %q: %v", h.Name, h.Date, err)
			continue
		}
		holidays = append(holidays, Holiday{Date: date, Name: h.Name})
	}
	return holidays, nil
}

func isPublicType(h PublicHoliday) bool {
	if len(h.Types) == 0 {
		return true
	}
	for _, t := range h.Types {
		if t == "Public" {
			return true
		}
	}
	return false
}

func appliesToRegion(h PublicHoliday, region string) bool {
	if region == "" {
		return false
	}
	for _, county := range h.Counties {
		if county == region {
			return true
		}
	}
	return false
}
