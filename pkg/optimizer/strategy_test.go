package optimizer

import (
	"testing"
	"time"
)

func TestComputeHolidayDensity(t *testing.T) {
	// Single holiday on Thursday 2025-05-01
	index := BuildIndex([]Holiday{
		{Date: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), Name: "Labour Day"},
	}, nil)

	density := computeHolidayDensity(2025, index)

	tests := []struct {
		name string
		date string
		want int
	}{
		// A mid-year weekday sees two full weekends in its 15-day window
		{name: "plain weekday", date: "2025-06-18", want: 4},
		// A weekend day additionally sees a third occurrence of itself
		{name: "plain Saturday", date: "2025-06-21", want: 5},
		// The holiday itself: four weekend days plus its own weight of 3
		{name: "holiday date", date: "2025-05-01", want: 7},
		// Exactly 7 days away the holiday still counts
		{name: "edge of scan radius", date: "2025-05-08", want: 7},
		// 8 days away it no longer does
		{name: "just outside scan radius", date: "2025-05-09", want: 4},
		// Days outside the year never contribute
		{name: "first day of year", date: "2025-01-01", want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := density[tt.date]; got != tt.want {
				t.Errorf("density[%s] = %d, want %d", tt.date, got, tt.want)
			}
		})
	}
}

func TestSeasonBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		date   time.Time
		summer bool
		winter bool
	}{
		{name: "day before summer", date: time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)},
		{name: "first summer day", date: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), summer: true},
		{name: "last summer day", date: time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC), summer: true},
		{name: "day after summer", date: time.Date(2025, 9, 16, 0, 0, 0, 0, time.UTC)},
		{name: "day before winter", date: time.Date(2025, 12, 14, 0, 0, 0, 0, time.UTC)},
		{name: "first winter day", date: time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC), winter: true},
		{name: "new year's eve", date: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), winter: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inSummerSeason(tt.date, 2025); got != tt.summer {
				t.Errorf("inSummerSeason(%s) = %v, want %v", tt.date.Format(dateKeyFormat), got, tt.summer)
			}
			if got := inWinterSeason(tt.date, 2025); got != tt.winter {
				t.Errorf("inWinterSeason(%s) = %v, want %v", tt.date.Format(dateKeyFormat), got, tt.winter)
			}
		})
	}
}
