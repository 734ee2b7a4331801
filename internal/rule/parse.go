package rule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"ecal/internal/dateutil"
)

// Parse interprets one non-blank, non-comment event line:
//
//	DateRule ;[category, fg, bg] Description
//
// The separator is the first unescaped ';' ("\;" stands for a literal
// semicolon). Without a separator, everything after the date-rule token
// is the description and the style is empty.
func Parse(line string) (Entry, error) {
	rulePart, rest, hasSep := cutUnescaped(line, ';')

	var entry Entry
	token := strings.TrimSpace(unescape(rulePart))

	if hasSep {
		style, desc, err := parseStyle(strings.TrimSpace(rest))
		if err != nil {
			return Entry{}, err
		}
		entry.Style = style
		entry.Description = unescape(desc)
	} else if head, desc, ok := strings.Cut(token, " "); ok {
		token = head
		entry.Description = strings.TrimSpace(desc)
	}

	r, err := parseToken(token)
	if err != nil {
		return Entry{}, err
	}
	entry.Rule = r
	return entry, nil
}

// cutUnescaped splits s around the first c not preceded by a backslash.
func cutUnescaped(s string, c byte) (before, after string, found bool) {
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\':
			i++
		case s[i] == c:
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}

func unescape(s string) string {
	return strings.ReplaceAll(s, `\;`, ";")
}

// parseStyle reads an optional leading "[category, fg, bg]" block and
// returns the remaining description. Fields beyond the third are
// tolerated and ignored.
func parseStyle(rest string) (Style, string, error) {
	if !strings.HasPrefix(rest, "[") {
		return Style{}, rest, nil
	}
	end := strings.IndexByte(rest, ']')
	if end < 0 {
		// No closing bracket: the whole remainder is description.
		return Style{}, rest, nil
	}

	var style Style
	fields := strings.Split(rest[1:end], ",")
	for i, field := range fields {
		field = strings.TrimSpace(field)
		switch i {
		case 0:
			style.Category = strings.ToLower(field)
		case 1, 2:
			color, ok := ParseColor(field)
			if !ok {
				return Style{}, "", fmt.Errorf("unknown color %q", field)
			}
			if i == 1 {
				style.Foreground = color
			} else {
				style.Background = color
			}
		}
	}
	return style, strings.TrimSpace(rest[end+1:]), nil
}

// parseToken classifies the date-rule token, trying shapes in a fixed
// priority order; the first match wins.
func parseToken(token string) (Rule, error) {
	if token == "" {
		return nil, fmt.Errorf("missing date rule")
	}

	if raw, ok := strings.CutPrefix(token, "RRULE:"); ok {
		if _, err := rrule.StrToROption(raw); err != nil {
			return nil, fmt.Errorf("invalid recurrence rule: %w", err)
		}
		return Recurrence{RRule: raw}, nil
	}

	if token == "E" {
		return EasterOffset{}, nil
	}
	if strings.HasPrefix(token, "E+") || strings.HasPrefix(token, "E-") {
		days, err := strconv.Atoi(token[1:])
		if err != nil {
			return nil, fmt.Errorf("invalid easter offset %q", token)
		}
		return EasterOffset{Days: days}, nil
	}

	if datePart, nPart, ok := strings.Cut(token, "#"); ok {
		return parseNthWeekday(datePart, nPart)
	}

	if r, ok := parseFullDate(token); ok {
		return r, nil
	}

	if datePart, cond, ok := strings.Cut(token, "?"); ok {
		return parseConditional(datePart, cond)
	}

	if month, day, err := parseMonthDay(token); err == nil {
		return Annual{Month: month, Day: day}, nil
	}

	return nil, fmt.Errorf("unrecognized date rule %q", token)
}

func parseNthWeekday(datePart, nPart string) (Rule, error) {
	monthStr, dowStr, ok := strings.Cut(datePart, "/")
	if !ok {
		return nil, fmt.Errorf("invalid nth-weekday rule %q#%q", datePart, nPart)
	}
	month, err := parseMonth(monthStr)
	if err != nil {
		return nil, err
	}
	dow, err := parseWeekdayDigit(dowStr)
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(nPart)
	if err != nil || n < 1 || n > 5 {
		return nil, fmt.Errorf("occurrence %q out of range 1-5", nPart)
	}
	return NthWeekday{Month: month, Weekday: dow, N: n}, nil
}

// parseFullDate matches the two literal full-date shapes, MM/DD/YYYY
// and DD-MM-YYYY. Anything else falls through to later patterns.
func parseFullDate(token string) (Rule, bool) {
	if parts := strings.Split(token, "/"); len(parts) == 3 {
		if r, err := fixedDate(parts[2], parts[0], parts[1]); err == nil {
			return r, true
		}
		return nil, false
	}
	if parts := strings.Split(token, "-"); len(parts) == 3 {
		if r, err := fixedDate(parts[2], parts[1], parts[0]); err == nil {
			return r, true
		}
	}
	return nil, false
}

func fixedDate(yearStr, monthStr, dayStr string) (Rule, error) {
	if len(yearStr) != 4 {
		return nil, fmt.Errorf("year %q must have four digits", yearStr)
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return nil, fmt.Errorf("invalid year %q", yearStr)
	}
	month, err := parseMonth(monthStr)
	if err != nil {
		return nil, err
	}
	day, err := strconv.Atoi(strings.TrimSpace(dayStr))
	if err != nil || day < 1 || day > dateutil.DaysInMonth(year, month) {
		return nil, fmt.Errorf("day %q invalid for %s %d", dayStr, month, year)
	}
	return FixedDate{Year: year, Month: month, Day: day}, nil
}

// parseConditional handles the '?' family: "MM/DD?" (annual),
// "MM/DD?YYYY" (fixed year) and "MM/DD?D[+-]N" (weekday-adjusted).
func parseConditional(datePart, cond string) (Rule, error) {
	month, day, err := parseMonthDay(datePart)
	if err != nil {
		return nil, err
	}

	switch {
	case cond == "":
		return Annual{Month: month, Day: day}, nil

	case len(cond) == 4 && isDigits(cond):
		year, _ := strconv.Atoi(cond)
		if day > dateutil.DaysInMonth(year, month) {
			return nil, fmt.Errorf("day %d invalid for %s %d", day, month, year)
		}
		return FixedDate{Year: year, Month: month, Day: day}, nil

	case len(cond) >= 3 && (cond[1] == '+' || cond[1] == '-'):
		dow, err := parseWeekdayDigit(cond[:1])
		if err != nil {
			return nil, err
		}
		shift, err := strconv.Atoi(cond[2:])
		if err != nil {
			return nil, fmt.Errorf("invalid shift %q", cond[2:])
		}
		if cond[1] == '-' {
			shift = -shift
		}
		return WeekdayAdjusted{Month: month, Day: day, When: dow, Shift: shift}, nil
	}

	return nil, fmt.Errorf("invalid condition %q", cond)
}

func parseMonthDay(token string) (time.Month, int, error) {
	monthStr, dayStr, ok := strings.Cut(token, "/")
	if !ok {
		return 0, 0, fmt.Errorf("invalid month/day %q", token)
	}
	month, err := parseMonth(monthStr)
	if err != nil {
		return 0, 0, err
	}
	day, err := strconv.Atoi(strings.TrimSpace(dayStr))
	if err != nil || day < 1 || day > dateutil.MaxDaysInMonth(month) {
		return 0, 0, fmt.Errorf("day %q out of range for %s", dayStr, month)
	}
	return month, day, nil
}

func parseMonth(s string) (time.Month, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 12 {
		return 0, fmt.Errorf("month %q out of range 1-12", s)
	}
	return time.Month(n), nil
}

func parseWeekdayDigit(s string) (time.Weekday, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || n > 6 {
		return 0, fmt.Errorf("weekday %q out of range 0-6", s)
	}
	return time.Weekday(n), nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
