package render

import (
	"strings"
	"testing"
	"time"

	"ecal/internal/dateutil"
	"ecal/internal/event"
	"ecal/internal/grid"
)

func emptyStore(t *testing.T) *event.Store {
	t.Helper()
	store, issues := event.Build(nil, 2023, 2023)
	if len(issues) != 0 {
		t.Fatalf("issues: %v", issues)
	}
	return store
}

func TestCalendar_SingleMonthPlain(t *testing.T) {
	t.Parallel()

	g := grid.Build(2023, time.May, grid.MondayFirst)
	got := Calendar([]grid.Grid{g}, emptyStore(t), Options{
		WeekStart: grid.MondayFirst,
		Columns:   3,
		Today:     dateutil.Date(1999, time.January, 1),
	})

	want := strings.Join([]string{
		"      May 2023",
		"Mo Tu We Th Fr Sa Su",
		" 1  2  3  4  5  6  7",
		" 8  9 10 11 12 13 14",
		"15 16 17 18 19 20 21",
		"22 23 24 25 26 27 28",
		"29 30 31",
	}, "\n") + "\n"

	if got != want {
		t.Fatalf("calendar mismatch:\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestCalendar_WeekNumbersColumn(t *testing.T) {
	t.Parallel()

	g := grid.Build(2023, time.May, grid.MondayFirst)
	got := Calendar([]grid.Grid{g}, emptyStore(t), Options{
		WeekStart:       grid.MondayFirst,
		ShowWeekNumbers: true,
		Columns:         1,
		Today:           dateutil.Date(1999, time.January, 1),
	})

	lines := strings.Split(got, "\n")
	if lines[1] != "Wk Mo Tu We Th Fr Sa Su" {
		t.Fatalf("header = %q", lines[1])
	}
	if lines[2] != "18  1  2  3  4  5  6  7" {
		t.Fatalf("first week = %q", lines[2])
	}
}

func TestCalendar_SundayFirstHeader(t *testing.T) {
	t.Parallel()

	g := grid.Build(2023, time.May, grid.SundayFirst)
	got := Calendar([]grid.Grid{g}, emptyStore(t), Options{
		WeekStart: grid.SundayFirst,
		Columns:   1,
		Today:     dateutil.Date(1999, time.January, 1),
	})

	lines := strings.Split(got, "\n")
	if lines[1] != "Su Mo Tu We Th Fr Sa" {
		t.Fatalf("header = %q", lines[1])
	}
	// May 1st 2023 is a Monday: second column.
	if lines[2] != "    1  2  3  4  5  6" {
		t.Fatalf("first week = %q", lines[2])
	}
}

func TestCalendar_TwoColumnsPadding(t *testing.T) {
	t.Parallel()

	// February 2021 needs four week rows, May 2023 five; the shorter
	// block is padded so the row stays rectangular.
	feb := grid.Build(2021, time.February, grid.MondayFirst)
	may := grid.Build(2023, time.May, grid.MondayFirst)

	got := Calendar([]grid.Grid{feb, may}, emptyStore(t), Options{
		WeekStart: grid.MondayFirst,
		Columns:   2,
		Today:     dateutil.Date(1999, time.January, 1),
	})

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("line count = %d, want 7", len(lines))
	}
	if !strings.Contains(lines[0], "February 2021") || !strings.Contains(lines[0], "May 2023") {
		t.Fatalf("title row = %q", lines[0])
	}
	// Final row: blanks under February, May's last days on the right.
	if !strings.HasPrefix(lines[6], strings.Repeat(" ", 23)+"29 30 31") {
		t.Fatalf("padded row = %q", lines[6])
	}
}

func TestCalendar_CellStyling(t *testing.T) {
	t.Parallel()

	store, issues := event.Build([]string{
		"5/10 ; Plain event",
		"5/18 ;[x, black, yellow] Colored event",
	}, 2023, 2023)
	if len(issues) != 0 {
		t.Fatalf("issues: %v", issues)
	}

	g := grid.Build(2023, time.May, grid.MondayFirst)
	got := Calendar([]grid.Grid{g}, store, Options{
		WeekStart: grid.MondayFirst,
		Columns:   1,
		Color:     true,
		Today:     dateutil.Date(2023, time.May, 17),
	})

	// Event without explicit colors renders reverse-video.
	if !strings.Contains(got, "\x1b[7m10\x1b[0m") {
		t.Fatalf("plain event cell not inverted:\n%q", got)
	}
	// Explicit colors: bg, fg, bold.
	if !strings.Contains(got, "\x1b[43m\x1b[30m\x1b[1m18\x1b[0m") {
		t.Fatalf("colored event cell wrong:\n%q", got)
	}
	// Weekend tint.
	if !strings.Contains(got, "\x1b[31m 6\x1b[0m") {
		t.Fatalf("weekend cell not red:\n%q", got)
	}
	// Today overrides with black on yellow.
	if !strings.Contains(got, "\x1b[43m\x1b[30m17\x1b[0m") {
		t.Fatalf("today cell wrong:\n%q", got)
	}
}

func TestCalendar_NoColorLeavesNoEscapes(t *testing.T) {
	t.Parallel()

	store, _ := event.Build([]string{"5/10 ;[x, red, blue] Event"}, 2023, 2023)
	g := grid.Build(2023, time.May, grid.MondayFirst)
	got := Calendar([]grid.Grid{g}, store, Options{
		WeekStart: grid.MondayFirst,
		Columns:   1,
		Today:     dateutil.Date(2023, time.May, 17),
	})

	if strings.Contains(got, "\x1b[") {
		t.Fatalf("escape sequences in colorless output:\n%q", got)
	}
}
