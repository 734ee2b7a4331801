// Package event builds the per-date event set from the raw lines of an
// events file and the span of displayed years.
package event

import (
	"sort"
	"strings"
	"time"

	"ecal/internal/dateutil"
	"ecal/internal/rule"
)

// Event is one rule resolved onto a concrete date.
type Event struct {
	Date        time.Time
	Description string
	Style       rule.Style

	// OriginYear is the first year of an anniversary rule (zero
	// otherwise); the listing derives ordinal labels from it.
	OriginYear int
}

// Issue records a line that could not be parsed. Issues never abort the
// scan; well-formed lines around them still resolve.
type Issue struct {
	Line int
	Text string
	Err  error
}

// Store maps dates to their events. Built once, read-only afterwards.
type Store struct {
	byDay map[string][]Event
	all   []Event
}

// Build parses every line and resolves each rule against every year in
// [startYear, endYear]. Blank lines and '#' comments are skipped
// silently; malformed lines and failed resolutions are reported as
// issues. Events on the same date keep file order.
func Build(lines []string, startYear, endYear int) (*Store, []Issue) {
	s := &Store{byDay: make(map[string][]Event)}
	var issues []Issue

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, err := rule.Parse(line)
		if err != nil {
			issues = append(issues, Issue{Line: i + 1, Text: line, Err: err})
			continue
		}

		if fixed, ok := entry.Rule.(rule.FixedDate); ok && entry.Style.IsAnniversary() {
			s.addAnniversary(entry, fixed, startYear, endYear)
			continue
		}

		for year := startYear; year <= endYear; year++ {
			dates, err := rule.Resolve(entry.Rule, year)
			if err != nil {
				issues = append(issues, Issue{Line: i + 1, Text: line, Err: err})
				continue
			}
			for _, d := range dates {
				s.add(Event{Date: d, Description: entry.Description, Style: entry.Style})
			}
		}
	}

	sort.SliceStable(s.all, func(i, j int) bool {
		return s.all[i].Date.Before(s.all[j].Date)
	})
	return s, issues
}

// addAnniversary recurs a dated bday/anni rule annually from its origin
// year, remembering the origin so the listing can count years.
func (s *Store) addAnniversary(entry rule.Entry, fixed rule.FixedDate, startYear, endYear int) {
	for year := startYear; year <= endYear; year++ {
		if year < fixed.Year || fixed.Day > dateutil.DaysInMonth(year, fixed.Month) {
			continue
		}
		s.add(Event{
			Date:        dateutil.Date(year, fixed.Month, fixed.Day),
			Description: entry.Description,
			Style:       entry.Style,
			OriginYear:  fixed.Year,
		})
	}
}

func (s *Store) add(e Event) {
	key := dateutil.Key(e.Date)
	s.byDay[key] = append(s.byDay[key], e)
	s.all = append(s.all, e)
}

// On returns the events of one date in file order, nil when there are
// none.
func (s *Store) On(date time.Time) []Event {
	return s.byDay[dateutil.Key(date)]
}

// Between returns the events with start <= date < end, in date order
// with file order within a date.
func (s *Store) Between(start, end time.Time) []Event {
	var out []Event
	for _, e := range s.all {
		if e.Date.Before(start) || !e.Date.Before(end) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Len reports the total number of resolved events.
func (s *Store) Len() int {
	return len(s.all)
}
