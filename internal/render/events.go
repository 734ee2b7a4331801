package render

import (
	"fmt"
	"strings"
	"time"

	"ecal/internal/dateutil"
	"ecal/internal/event"
	"ecal/internal/rule"
)

const listingRule = 80

// Events renders the listing of all events with start <= date < end,
// one line per event in date order. An empty range renders nothing.
func Events(store *event.Store, start, end time.Time, opts Options) string {
	events := store.Between(start, end)
	if len(events) == 0 {
		return ""
	}

	s := styler{enabled: opts.Color}
	today := dateutil.Date(opts.Today.Year(), opts.Today.Month(), opts.Today.Day())

	var b strings.Builder
	b.WriteString(s.paint(escBold, "Events:"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", listingRule))
	b.WriteString("\n")

	for _, e := range events {
		codes := s.bg(e.Style.Background) + s.fg(e.Style.Foreground)
		b.WriteString(s.paint(codes, e.Date.Format("Mon, 02 Jan 2006")))
		b.WriteString(" - ")
		b.WriteString(e.Description)
		b.WriteString(anniversaryLabel(e))
		b.WriteString(relativeLabel(s, e.Date, today))
		b.WriteString("\n")
	}
	return b.String()
}

// anniversaryLabel renders "(10th Birthday)" style suffixes for events
// that recur from an origin year.
func anniversaryLabel(e event.Event) string {
	if e.OriginYear == 0 {
		return ""
	}

	var label string
	switch e.Style.Category {
	case rule.CategoryBirthday:
		label = "Birthday"
	case rule.CategoryAnniversary:
		label = "Anniversary"
	default:
		return ""
	}

	n := e.Date.Year() - e.OriginYear
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf(" (%d%s %s)", n, ordinalSuffix(n), label)
}

func relativeLabel(s styler, date, today time.Time) string {
	days := int(date.Sub(today).Hours() / 24)
	switch {
	case days == 0:
		return ""
	case days > 0:
		return s.paint(escGreen, fmt.Sprintf(" (In %d days)", days))
	default:
		return s.paint(escBlue, fmt.Sprintf(" (%d days ago)", -days))
	}
}

func ordinalSuffix(n int) string {
	if n%100 >= 11 && n%100 <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
