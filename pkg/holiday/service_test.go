package holiday

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceImpl_HolidaysForRegion(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps nationwide holidays and drops foreign regional ones", func(t *testing.T) {
		stub := NewStubClient()
		stub.Holidays["2025/DE"] = []PublicHoliday{
			{Date: "2025-01-01", Name: "New Year's Day", Global: true, Types: []string{"Public"}},
			{Date: "2025-01-06", Name: "Epiphany", Global: false, Counties: []string{"DE-BY", "DE-BW"}, Types: []string{"Public"}},
			{Date: "2025-08-15", Name: "Assumption Day", Global: false, Counties: []string{"DE-SL"}, Types: []string{"Public"}},
		}
		service := NewService(stub)

		holidays, err := service.HolidaysForRegion(ctx, 2025, "DE", "DE-BY")

		require.NoError(t, err)
		require.Len(t, holidays, 2)
		assert.Equal(t, "New Year's Day", holidays[0].Name)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), holidays[0].Date)
		assert.Equal(t, "Epiphany", holidays[1].Name)
	})

	t.Run("without a region only nationwide holidays remain", func(t *testing.T) {
		stub := NewStubClient()
		stub.Holidays["2025/DE"] = []PublicHoliday{
			{Date: "2025-01-01", Name: "New Year's Day", Global: true, Types: []string{"Public"}},
			{Date: "2025-01-06", Name: "Epiphany", Global: false, Counties: []string{"DE-BY"}, Types: []string{"Public"}},
		}
		service := NewService(stub)

		holidays, err := service.HolidaysForRegion(ctx, 2025, "DE", "")

		require.NoError(t, err)
		require.Len(t, holidays, 1)
		assert.Equal(t, "New Year's Day", holidays[0].Name)
	})

	t.Run("skips non-public holiday types", func(t *testing.T) {
		stub := NewStubClient()
		stub.Holidays["2025/NL"] = []PublicHoliday{
			{Date: "2025-05-05", Name: "Liberation Day", Global: true, Types: []string{"Observance"}},
			{Date: "2025-04-26", Name: "King's Day", Global: true, Types: []string{"Public"}},
		}
		service := NewService(stub)

		holidays, err := service.HolidaysForRegion(ctx, 2025, "NL", "")

		require.NoError(t, err)
		require.Len(t, holidays, 1)
		assert.Equal(t, "King's Day", holidays[0].Name)
	})

	t.Run("records without type information count as public", func(t *testing.T) {
		stub := NewStubClient()
		stub.Holidays["2025/PL"] = []PublicHoliday{
			{Date: "2025-05-01", Name: "Labour Day", Global: true},
		}
		service := NewService(stub)

		holidays, err := service.HolidaysForRegion(ctx, 2025, "PL", "")

		require.NoError(t, err)
		require.Len(t, holidays, 1)
	})

	t.Run("skips records with malformed dates", func(t *testing.T) {
		stub := NewStubClient()
		stub.Holidays["2025/PL"] = []PublicHoliday{
			{Date: "01.05.2025", Name: "Labour Day", Global: true, Types: []string{"Public"}},
			{Date: "2025-11-11", Name: "Independence Day", Global: true, Types: []string{"Public"}},
		}
		service := NewService(stub)

		holidays, err := service.HolidaysForRegion(ctx, 2025, "PL", "")

		require.NoError(t, err)
		require.Len(t, holidays, 1)
		assert.Equal(t, "Independence Day", holidays[0].Name)
	})

	t.Run("propagates upstream failures", func(t *testing.T) {
		stub := NewStubClient()
		stub.Err = errors.New("upstream unavailable")
		service := NewService(stub)

		_, err := service.HolidaysForRegion(ctx, 2025, "PL", "")

		assert.Error(t, err)
	})
}

func TestServiceImpl_AvailableCountries(t *testing.T) {
	stub := NewStubClient()
	stub.Countries = []Country{
		{CountryCode: "DE", Name: "Germany"},
		{CountryCode: "PL", Name: "Poland"},
	}
	service := NewService(stub)

	countries, err := service.AvailableCountries(context.Background())

	require.NoError(t, err)
	assert.Len(t, countries, 2)
}
