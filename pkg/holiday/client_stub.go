package holiday

import (
	"context"
	"fmt"
)

type StubClient struct {
	Countries []Country
	Holidays  map[string][]PublicHoliday // keyed "year/countryCode"
	Err       error
}

func NewStubClient() *StubClient {
	return &StubClient{Holidays: map[string][]PublicHoliday{}}
}

func (s *StubClient) GetAvailableCountries(ctx context.Context) ([]Country, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Countries, nil
}

func (s *StubClient) GetPublicHolidays(ctx context.Context, year int, countryCode string) ([]PublicHoliday, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Holidays[keyFor(year, countryCode)], nil
}

func keyFor(year int, countryCode string) string {
	return fmt.Sprintf("%d/%s", year, countryCode)
}
