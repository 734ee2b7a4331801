// Package grid lays out single months as weeks-by-weekdays grids.
package grid

import (
	"time"

	"ecal/internal/dateutil"
)

// WeekStart selects which weekday occupies the first grid column.
type WeekStart int

const (
	MondayFirst WeekStart = iota
	SundayFirst
)

// First returns the weekday of the first column.
func (ws WeekStart) First() time.Weekday {
	if ws == SundayFirst {
		return time.Sunday
	}
	return time.Monday
}

// Column returns the grid column (0-6) of a weekday.
func (ws WeekStart) Column(wd time.Weekday) int {
	return (int(wd) - int(ws.First()) + 7) % 7
}

// Week is one grid row: seven day-of-month cells (0 marks padding
// outside the month) plus the row's ISO-8601 week number.
type Week struct {
	ISOWeek int
	Days    [7]int
}

// Grid is the laid-out month.
type Grid struct {
	Year  int
	Month time.Month
	Weeks []Week
}

// Build lays out a month: blanks pad the first row up to the column of
// day 1, days fill left to right wrapping every seven cells, and blanks
// complete the final row. The ISO week of each row is taken from the
// row's Thursday, so rows straddling a month or year boundary still get
// the week number ISO 8601 assigns them.
func Build(year int, month time.Month, weekStart WeekStart) Grid {
	first := dateutil.Date(year, month, 1)
	lead := weekStart.Column(first.Weekday())
	days := dateutil.DaysInMonth(year, month)

	// Thursday's column under the chosen week start.
	thursday := weekStart.Column(time.Thursday)

	g := Grid{Year: year, Month: month}
	for row := 0; row*7 < lead+days; row++ {
		var week Week
		for col := 0; col < 7; col++ {
			day := row*7 + col - lead + 1
			if day >= 1 && day <= days {
				week.Days[col] = day
			}
		}
		// time.Date normalizes out-of-range days into the adjacent
		// month, which is exactly the date the padding cell stands for.
		ref := time.Date(year, month, row*7+thursday-lead+1, 0, 0, 0, 0, time.UTC)
		_, week.ISOWeek = ref.ISOWeek()
		g.Weeks = append(g.Weeks, week)
	}
	return g
}

// Date returns the full date of a non-blank cell.
func (g Grid) Date(day int) time.Time {
	return dateutil.Date(g.Year, g.Month, day)
}
