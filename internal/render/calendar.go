package render

import (
	"fmt"
	"strings"
	"time"

	"ecal/internal/event"
	"ecal/internal/grid"
)

// Options carries everything the composer needs besides the data
// itself. Today is injected so output is deterministic under test.
type Options struct {
	WeekStart       grid.WeekStart
	ShowWeekNumbers bool
	Columns         int
	Color           bool
	Today           time.Time
}

// Month block widths: seven "dd " cells, plus "Wk " when week numbers
// are shown.
const (
	dayCellsWidth = 7 * 3
	weekColWidth  = 3
	gutter        = "  "
)

func (o Options) blockWidth() int {
	if o.ShowWeekNumbers {
		return dayCellsWidth + weekColWidth
	}
	return dayCellsWidth
}

// Calendar lays the month grids out row-major, Columns per row (a
// single month always renders alone), and returns the joined text.
func Calendar(grids []grid.Grid, store *event.Store, opts Options) string {
	if len(grids) == 0 {
		return ""
	}

	columns := opts.Columns
	if columns < 1 || len(grids) == 1 {
		columns = 1
	}

	blocks := make([][]string, len(grids))
	for i, g := range grids {
		blocks[i] = renderMonth(g, store, opts)
	}

	var out strings.Builder
	blank := strings.Repeat(" ", opts.blockWidth())
	for start := 0; start < len(blocks); start += columns {
		end := min(start+columns, len(blocks))
		row := blocks[start:end]

		tallest := 0
		for _, b := range row {
			tallest = max(tallest, len(b))
		}

		if start > 0 {
			out.WriteString("\n")
		}
		for line := 0; line < tallest; line++ {
			parts := make([]string, len(row))
			for i, b := range row {
				if line < len(b) {
					parts[i] = b[line]
				} else {
					parts[i] = blank
				}
			}
			out.WriteString(strings.TrimRight(strings.Join(parts, gutter), " "))
			out.WriteString("\n")
		}
	}
	return out.String()
}

// renderMonth produces the lines of one month block, each padded to the
// block width (escape sequences excluded from the count).
func renderMonth(g grid.Grid, store *event.Store, opts Options) []string {
	s := styler{enabled: opts.Color}
	width := opts.blockWidth()
	lines := make([]string, 0, len(g.Weeks)+2)

	title := fmt.Sprintf("%s %d", g.Month, g.Year)
	pad := max(0, (width-len(title))/2)
	lines = append(lines, padVisible(strings.Repeat(" ", pad)+s.paint(escBold, title), pad+len(title), width))

	lines = append(lines, headerLine(s, opts, width))

	for _, week := range g.Weeks {
		lines = append(lines, weekLine(g, week, store, s, opts, width))
	}
	return lines
}

func headerLine(s styler, opts Options, width int) string {
	var b strings.Builder
	visible := 0
	if opts.ShowWeekNumbers {
		b.WriteString(s.paint(escBlue, "Wk"))
		b.WriteString(" ")
		visible += 3
	}
	for col := 0; col < 7; col++ {
		wd := time.Weekday((int(opts.WeekStart.First()) + col) % 7)
		label := wd.String()[:2]
		if wd == time.Saturday || wd == time.Sunday {
			label = s.paint(escRed, label)
		}
		b.WriteString(label)
		b.WriteString(" ")
		visible += 3
	}
	return padVisible(b.String(), visible, width)
}

func weekLine(g grid.Grid, week grid.Week, store *event.Store, s styler, opts Options, width int) string {
	var b strings.Builder
	visible := 0
	if opts.ShowWeekNumbers {
		b.WriteString(s.paint(escBlue, fmt.Sprintf("%2d", week.ISOWeek)))
		b.WriteString(" ")
		visible += 3
	}

	for col, day := range week.Days {
		if day == 0 {
			b.WriteString("   ")
			visible += 3
			continue
		}
		date := g.Date(day)
		wd := time.Weekday((int(opts.WeekStart.First()) + col) % 7)
		b.WriteString(s.paint(cellCodes(date, wd, store, s, opts), fmt.Sprintf("%2d", day)))
		b.WriteString(" ")
		visible += 3
	}
	return padVisible(b.String(), visible, width)
}

// cellCodes picks the escape codes of one day cell. Precedence: today
// beats everything, then the first event on the date, then the weekend
// tint.
func cellCodes(date time.Time, wd time.Weekday, store *event.Store, s styler, opts Options) string {
	if !s.enabled {
		return ""
	}

	var first *event.Event
	if events := store.On(date); len(events) > 0 {
		first = &events[0]
	}
	weekend := wd == time.Saturday || wd == time.Sunday

	if sameDate(date, opts.Today) {
		bg, fg := escYelloB, escBlackF
		if first != nil {
			if c := s.bg(first.Style.Background); c != "" {
				bg = c
			}
			if c := s.fg(first.Style.Foreground); c != "" {
				fg = c
			}
		}
		return bg + fg
	}

	if weekend {
		if first != nil {
			return escRed + escBold
		}
		return escRed
	}

	if first != nil {
		fg := s.fg(first.Style.Foreground)
		bg := s.bg(first.Style.Background)
		if fg == "" && bg == "" {
			return escInvert
		}
		return bg + fg + escBold
	}

	return ""
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// padVisible right-pads line with spaces so its visible width (the
// width excluding escape sequences) reaches target.
func padVisible(line string, visible, target int) string {
	if visible >= target {
		return line
	}
	return line + strings.Repeat(" ", target-visible)
}
