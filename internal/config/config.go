// Package config merges the flag, environment and default layers into
// the immutable runtime configuration of a single render.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"ecal/internal/grid"
)

type DisplayMode int

const (
	ModeBoth DisplayMode = iota
	ModeCalendar
	ModeEvents
)

type OutputFormat int

const (
	FormatText OutputFormat = iota
	FormatICS
)

type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// Enabled resolves the mode against the output file descriptor.
func (m ColorMode) Enabled(fd int) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return term.IsTerminal(fd)
	}
}

// Runtime is the validated configuration of one run.
type Runtime struct {
	Months          int
	StartMonth      time.Month
	StartYear       int
	Columns         int
	WeekStart       grid.WeekStart
	ShowWeekNumbers bool
	Mode            DisplayMode
	Format          OutputFormat
	Color           ColorMode
	EventsFile      string
}

// MonthAt returns the i-th displayed month, wrapping the year on
// overflow.
func (r Runtime) MonthAt(i int) (int, time.Month) {
	idx := r.StartYear*12 + int(r.StartMonth) - 1 + i
	return idx / 12, time.Month(idx%12 + 1)
}

// YearSpan is the inclusive range of years the displayed months touch.
func (r Runtime) YearSpan() (int, int) {
	lastYear, _ := r.MonthAt(r.Months - 1)
	return r.StartYear, lastYear
}

// RangeStart and RangeEnd bound the displayed months as a half-open
// date interval.
func (r Runtime) RangeStart() time.Time {
	return time.Date(r.StartYear, r.StartMonth, 1, 0, 0, 0, 0, time.UTC)
}

func (r Runtime) RangeEnd() time.Time {
	year, month := r.MonthAt(r.Months)
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// Load resolves configuration with flags taking precedence over ECAL_*
// environment variables over defaults, then validates the result.
// Invalid values are hard errors; nothing renders on top of a config
// the user did not ask for.
func Load(fs *pflag.FlagSet, now time.Time) (Runtime, error) {
	v := viper.New()
	v.SetEnvPrefix("ECAL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	for _, name := range []string{
		"num-months", "month", "year", "columns",
		"week-start", "weeks", "mode", "file", "color", "format",
	} {
		flag := fs.Lookup(name)
		if flag == nil {
			return Runtime{}, fmt.Errorf("flag %q is not defined", name)
		}
		if err := v.BindPFlag(name, flag); err != nil {
			return Runtime{}, fmt.Errorf("bind flag %s: %w", name, err)
		}
	}

	r := Runtime{
		Months:          v.GetInt("num-months"),
		StartMonth:      time.Month(v.GetInt("month")),
		StartYear:       v.GetInt("year"),
		Columns:         v.GetInt("columns"),
		ShowWeekNumbers: v.GetBool("weeks"),
		EventsFile:      v.GetString("file"),
	}

	if r.StartMonth == 0 {
		r.StartMonth = now.Month()
	}
	if r.StartYear == 0 {
		r.StartYear = now.Year()
	}

	switch r.Months {
	case 1, 3, 6, 12:
	default:
		return Runtime{}, fmt.Errorf("unsupported number of months %d (want 1, 3, 6 or 12)", r.Months)
	}
	if r.StartMonth < time.January || r.StartMonth > time.December {
		return Runtime{}, fmt.Errorf("month %d out of range 1-12", r.StartMonth)
	}
	if r.StartYear < 1 {
		return Runtime{}, fmt.Errorf("year %d out of range", r.StartYear)
	}
	if r.Columns < 1 {
		return Runtime{}, fmt.Errorf("columns must be at least 1, got %d", r.Columns)
	}
	if strings.TrimSpace(r.EventsFile) == "" {
		return Runtime{}, fmt.Errorf("events file path is empty")
	}

	switch strings.ToLower(v.GetString("week-start")) {
	case "monday", "mon":
		r.WeekStart = grid.MondayFirst
	case "sunday", "sun":
		r.WeekStart = grid.SundayFirst
	default:
		return Runtime{}, fmt.Errorf("unknown week start %q (want monday or sunday)", v.GetString("week-start"))
	}

	switch strings.ToLower(v.GetString("mode")) {
	case "both":
		r.Mode = ModeBoth
	case "calendar":
		r.Mode = ModeCalendar
	case "events":
		r.Mode = ModeEvents
	default:
		return Runtime{}, fmt.Errorf("unknown mode %q (want calendar, events or both)", v.GetString("mode"))
	}

	switch strings.ToLower(v.GetString("color")) {
	case "auto":
		r.Color = ColorAuto
	case "always":
		r.Color = ColorAlways
	case "never":
		r.Color = ColorNever
	default:
		return Runtime{}, fmt.Errorf("unknown color mode %q (want auto, always or never)", v.GetString("color"))
	}

	switch strings.ToLower(v.GetString("format")) {
	case "text":
		r.Format = FormatText
	case "ics":
		r.Format = FormatICS
	default:
		return Runtime{}, fmt.Errorf("unknown format %q (want text or ics)", v.GetString("format"))
	}

	return r, nil
}

// Flags registers the full flag surface on fs; main passes the same
// set into Load.
func Flags(fs *pflag.FlagSet) {
	fs.IntP("num-months", "n", 1, "number of months to display (1, 3, 6 or 12)")
	fs.IntP("month", "m", 0, "start month 1-12 (default: current month)")
	fs.IntP("year", "y", 0, "start year (default: current year)")
	fs.Int("columns", 3, "calendar columns per row")
	fs.String("week-start", "monday", "first weekday: monday or sunday")
	fs.BoolP("weeks", "w", true, "show ISO week numbers")
	fs.String("mode", "both", "what to print: calendar, events or both")
	fs.StringP("file", "f", "events.txt", "path to the events file")
	fs.String("color", "auto", "color output: auto, always or never")
	fs.String("format", "text", "output format: text or ics")
}
