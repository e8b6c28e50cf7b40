package optimizer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildIndex(t *testing.T) {
	t.Run("removes entries falling on a weekend", func(t *testing.T) {
		// 2025-05-03 is a Saturday, 2025-05-04 a Sunday
		public := []Holiday{
			{Date: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), Name: "Labour Day"},
			{Date: time.Date(2025, 5, 3, 0, 0, 0, 0, time.UTC), Name: "Constitution Day"},
		}
		company := []Holiday{
			{Date: time.Date(2025, 5, 4, 0, 0, 0, 0, time.UTC), Name: "Company Day"},
		}

		index := BuildIndex(public, company)

		require.Len(t, index, 1)
		entry, ok := index["2025-05-01"]
		require.True(t, ok)
		assert.Equal(t, DayOffPublicHoliday, entry.Type)
		assert.Equal(t, "Labour Day", entry.Name)
	})

	t.Run("company holiday wins a date collision", func(t *testing.T) {
		date := time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC) // Wednesday
		public := []Holiday{{Date: date, Name: "Christmas Eve"}}
		company := []Holiday{{Date: date, Name: "Office closure"}}

		index := BuildIndex(public, company)

		require.Len(t, index, 1)
		entry := index["2025-12-24"]
		assert.Equal(t, DayOffCompanyHoliday, entry.Type)
		assert.Equal(t, "Office closure", entry.Name)
	})

	t.Run("normalizes timestamps to day granularity", func(t *testing.T) {
		public := []Holiday{
			{Date: time.Date(2025, 5, 1, 15, 30, 45, 0, time.UTC), Name: "Labour Day"},
		}

		index := BuildIndex(public, nil)

		entry, ok := index["2025-05-01"]
		require.True(t, ok)
		assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), entry.Date)
	})

	t.Run("empty inputs produce an empty index", func(t *testing.T) {
		assert.Empty(t, BuildIndex(nil, nil))
	})
}
