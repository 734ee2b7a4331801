package rule

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"ecal/internal/dateutil"
)

// rruleEpoch anchors recurrence rules that carry no DTSTART so that
// expansion is deterministic across runs.
var rruleEpoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

// Resolve expands a rule into its concrete dates within the target
// year. Every variant yields zero or one date except Recurrence, which
// may yield several. A rule that does not occur in the year (a fixed
// date of another year, a missing fifth weekday, February 29th outside
// leap years) yields no dates and no error.
func Resolve(r Rule, year int) ([]time.Time, error) {
	switch r := r.(type) {
	case EasterOffset:
		easter, err := Easter(year)
		if err != nil {
			return nil, err
		}
		return []time.Time{easter.AddDate(0, 0, r.Days)}, nil

	case NthWeekday:
		if d, ok := nthWeekday(year, r.Month, r.Weekday, r.N); ok {
			return []time.Time{d}, nil
		}
		return nil, nil

	case Annual:
		if r.Day > dateutil.DaysInMonth(year, r.Month) {
			return nil, nil
		}
		return []time.Time{dateutil.Date(year, r.Month, r.Day)}, nil

	case FixedDate:
		if year != r.Year {
			return nil, nil
		}
		return []time.Time{dateutil.Date(r.Year, r.Month, r.Day)}, nil

	case WeekdayAdjusted:
		if r.Day > dateutil.DaysInMonth(year, r.Month) {
			return nil, nil
		}
		d := dateutil.Date(year, r.Month, r.Day)
		if d.Weekday() == r.When {
			d = d.AddDate(0, 0, r.Shift)
		}
		return []time.Time{d}, nil

	case Recurrence:
		return expandRecurrence(r.RRule, year)

	default:
		return nil, fmt.Errorf("unhandled rule variant %T", r)
	}
}

// nthWeekday scans the month for the n-th occurrence of the weekday.
func nthWeekday(year int, month time.Month, weekday time.Weekday, n int) (time.Time, bool) {
	seen := 0
	for day := 1; day <= dateutil.DaysInMonth(year, month); day++ {
		d := dateutil.Date(year, month, day)
		if d.Weekday() != weekday {
			continue
		}
		seen++
		if seen == n {
			return d, true
		}
	}
	return time.Time{}, false
}

func expandRecurrence(raw string, year int) ([]time.Time, error) {
	opt, err := rrule.StrToROption(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid recurrence rule: %w", err)
	}
	if opt.Dtstart.IsZero() {
		opt.Dtstart = rruleEpoch
	}
	rr, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, fmt.Errorf("invalid recurrence rule: %w", err)
	}

	start := dateutil.Date(year, time.January, 1)
	end := dateutil.Date(year, time.December, 31)
	starts := rr.Between(start, end, true)

	dates := make([]time.Time, 0, len(starts))
	for _, s := range starts {
		dates = append(dates, dateutil.Date(s.Year(), s.Month(), s.Day()))
	}
	return dates, nil
}
