package rule

import (
	"testing"
	"time"
)

func TestEaster_ReferenceDates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year  int
		month time.Month
		day   int
	}{
		{2000, time.April, 23},
		{2016, time.March, 27},
		{2023, time.April, 9},
		{2024, time.March, 31},
		{2025, time.April, 20},
		{2026, time.April, 5},
		{2038, time.April, 25},
	}

	for _, tc := range tests {
		got, err := Easter(tc.year)
		if err != nil {
			t.Fatalf("Easter(%d) failed: %v", tc.year, err)
		}
		want := time.Date(tc.year, tc.month, tc.day, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Fatalf("Easter(%d) = %s, want %s", tc.year, got.Format("2006-01-02"), want.Format("2006-01-02"))
		}
	}
}

func TestEaster_AlwaysMarchOrApril(t *testing.T) {
	t.Parallel()

	for year := 1583; year <= 2400; year++ {
		got, err := Easter(year)
		if err != nil {
			t.Fatalf("Easter(%d) failed: %v", year, err)
		}
		if got.Month() != time.March && got.Month() != time.April {
			t.Fatalf("Easter(%d) fell in %s", year, got.Month())
		}
	}
}

func TestEaster_RejectsPreGregorian(t *testing.T) {
	t.Parallel()

	if _, err := Easter(1582); err == nil {
		t.Fatalf("expected error for year 1582")
	}
}
