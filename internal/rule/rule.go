// Package rule parses event-file lines into date rules and resolves
// those rules into concrete calendar dates.
package rule

import (
	"strings"
	"time"
)

// Rule is one parsed date rule. The set of implementations is closed;
// Resolve switches over it exhaustively.
type Rule interface {
	isRule()
}

// EasterOffset places an event a fixed number of days from Easter
// Sunday ("E", "E+1", "E-2").
type EasterOffset struct {
	Days int
}

// NthWeekday places an event on the N-th occurrence of a weekday within
// a month ("5/1#1" is the first Monday of May). Weekday digits follow
// time.Weekday: 0=Sunday .. 6=Saturday.
type NthWeekday struct {
	Month   time.Month
	Weekday time.Weekday
	N       int
}

// Annual recurs on the same month/day every year ("7/4", "12/24?").
type Annual struct {
	Month time.Month
	Day   int
}

// FixedDate occurs in exactly one year. All three textual forms
// ("MM/DD?YYYY", "MM/DD/YYYY", "DD-MM-YYYY") normalize into it.
type FixedDate struct {
	Year  int
	Month time.Month
	Day   int
}

// WeekdayAdjusted is an annual month/day that shifts by Shift days in
// years where it falls on When ("12/26?0+1": December 26th, moved to
// the 27th when the 26th is a Sunday). In other years the literal date
// stands.
type WeekdayAdjusted struct {
	Month time.Month
	Day   int
	When  time.Weekday
	Shift int
}

// Recurrence is an RFC 5545 recurrence rule ("RRULE:FREQ=YEARLY\;...",
// semicolons escaped per the line grammar), expanded per displayed year.
type Recurrence struct {
	RRule string
}

func (EasterOffset) isRule()    {}
func (NthWeekday) isRule()      {}
func (Annual) isRule()          {}
func (FixedDate) isRule()       {}
func (WeekdayAdjusted) isRule() {}
func (Recurrence) isRule()      {}

// Color is one of the eight ANSI palette colors, or ColorNone.
type Color int

const (
	ColorNone Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var colorNames = map[string]Color{
	"black":   Black,
	"red":     Red,
	"green":   Green,
	"yellow":  Yellow,
	"blue":    Blue,
	"magenta": Magenta,
	"cyan":    Cyan,
	"white":   White,
}

// ParseColor maps a palette name (case-insensitive) to its Color. The
// empty string is ColorNone.
func ParseColor(name string) (Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ColorNone, true
	}
	c, ok := colorNames[name]
	return c, ok
}

// Style is the optional presentation block of a line: a free-text
// category plus foreground/background palette colors.
type Style struct {
	Category   string
	Foreground Color
	Background Color
}

// Anniversary categories upgrade a fixed date to an annually recurring
// one counted from its origin year.
const (
	CategoryBirthday    = "bday"
	CategoryAnniversary = "anni"
)

// IsAnniversary reports whether the style's category recurs annually.
func (s Style) IsAnniversary() bool {
	return s.Category == CategoryBirthday || s.Category == CategoryAnniversary
}

// Entry is one fully parsed event line.
type Entry struct {
	Rule        Rule
	Style       Style
	Description string
}
