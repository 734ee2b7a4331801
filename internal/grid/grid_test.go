package grid

import (
	"testing"
	"time"

	"ecal/internal/dateutil"
)

func TestBuild_CellInventory(t *testing.T) {
	t.Parallel()

	// Every month from 2020 through 2027, both week starts: each grid
	// must hold exactly the days 1..len once, in order, padded with
	// blanks, in ceil((lead+len)/7) rows of seven cells.
	for year := 2020; year <= 2027; year++ {
		for m := time.January; m <= time.December; m++ {
			for _, ws := range []WeekStart{MondayFirst, SundayFirst} {
				g := Build(year, m, ws)

				days := dateutil.DaysInMonth(year, m)
				lead := ws.Column(dateutil.Date(year, m, 1).Weekday())
				wantRows := (lead + days + 6) / 7
				if len(g.Weeks) != wantRows {
					t.Fatalf("%s %d ws=%d: %d rows, want %d", m, year, ws, len(g.Weeks), wantRows)
				}

				next := 1
				for r, week := range g.Weeks {
					for c, day := range week.Days {
						cell := r*7 + c
						inMonth := cell >= lead && cell < lead+days
						if inMonth {
							if day != next {
								t.Fatalf("%s %d: cell %d = %d, want %d", m, year, cell, day, next)
							}
							next++
						} else if day != 0 {
							t.Fatalf("%s %d: padding cell %d holds %d", m, year, cell, day)
						}
					}
				}
				if next != days+1 {
					t.Fatalf("%s %d: last day placed %d, want %d", m, year, next-1, days)
				}
			}
		}
	}
}

func TestBuild_FirstDayColumn(t *testing.T) {
	t.Parallel()

	// May 2023 begins on a Monday.
	g := Build(2023, time.May, MondayFirst)
	if g.Weeks[0].Days[0] != 1 {
		t.Fatalf("monday-first: day 1 in column %v", g.Weeks[0].Days)
	}

	g = Build(2023, time.May, SundayFirst)
	if g.Weeks[0].Days[1] != 1 {
		t.Fatalf("sunday-first: day 1 not in monday column: %v", g.Weeks[0].Days)
	}
}

func TestBuild_ISOWeekNumbers(t *testing.T) {
	t.Parallel()

	// January 2021: the 1st is a Friday, so the first row belongs to
	// ISO week 53 of 2020.
	g := Build(2021, time.January, MondayFirst)
	if g.Weeks[0].ISOWeek != 53 {
		t.Fatalf("first row of Jan 2021 = week %d, want 53", g.Weeks[0].ISOWeek)
	}
	if g.Weeks[1].ISOWeek != 1 {
		t.Fatalf("second row of Jan 2021 = week %d, want 1", g.Weeks[1].ISOWeek)
	}

	// With Sunday-first columns the row's Thursday still decides:
	// the row Dec 29 2019 .. Jan 4 2020 is ISO week 1 of 2020.
	g = Build(2020, time.January, SundayFirst)
	if g.Weeks[0].ISOWeek != 1 {
		t.Fatalf("first row of Jan 2020 sunday-first = week %d, want 1", g.Weeks[0].ISOWeek)
	}
}

func TestDaysInMonth_LeapRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		year int
		want int
	}{
		{2000, 29},
		{1900, 28},
		{2023, 28},
		{2024, 29},
		{2100, 28},
	}
	for _, tc := range tests {
		if got := dateutil.DaysInMonth(tc.year, time.February); got != tc.want {
			t.Fatalf("february %d = %d days, want %d", tc.year, got, tc.want)
		}
	}
}
