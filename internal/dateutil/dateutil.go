// Package dateutil holds the naive-date helpers shared by the rule
// engine and the grid builder. All dates are UTC midnights.
package dateutil

import "time"

// DayKey is the map-key layout for a calendar date.
const DayKey = "2006-01-02"

var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether the year has a February 29th.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the length of the month in the given year.
func DaysInMonth(year int, month time.Month) int {
	if month == time.February && IsLeapYear(year) {
		return 29
	}
	return monthDays[month]
}

// MaxDaysInMonth returns the length of the month in any year (29 for
// February), for validation that cannot see a concrete year yet.
func MaxDaysInMonth(month time.Month) int {
	if month == time.February {
		return 29
	}
	return monthDays[month]
}

// Date builds the UTC midnight for a year/month/day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Key formats a date as its DayKey.
func Key(t time.Time) string {
	return t.Format(DayKey)
}
