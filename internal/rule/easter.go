package rule

import (
	"fmt"
	"time"
)

// gregorianStart is the first year the Gregorian computus is defined for.
const gregorianStart = 1583

// Easter returns the date of Easter Sunday for the given year using the
// Meeus/Jones/Butcher algorithm. Years before the Gregorian calendar
// adoption are outside the algorithm's domain.
func Easter(year int) (time.Time, error) {
	if year < gregorianStart {
		return time.Time{}, fmt.Errorf("easter undefined for year %d (before %d)", year, gregorianStart)
	}

	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451

	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}
