// Package astro converts civil UTC time into Modified Julian Date and
// mean sidereal time.
//
// The calendar side uses the classical Gregorian/Julian day-number
// algorithm (with the October 1582 cutover), offset to the MJD epoch:
//
//	MJD = JD - 2400000.5
//
// The sidereal side uses the USNO mean-sidereal polynomial, evaluated at
// 0h UTC of the given day with the intraday advance added at the sidereal
// rate. Mean sidereal time only — no precession, nutation, or leap
// seconds are modeled.
package astro

import (
	"math"
	"time"
)

// jdToMJD is the offset from Julian Day Number to Modified Julian Date.
const jdToMJD = 2400000.5

// MJDFromDate returns the Modified Julian Date at 0h UTC on the given
// proleptic calendar date. Years use astronomical numbering (1 BC = 0),
// month is 1..12, day 1..31. Day/month combinations are not validated:
// an impossible date yields a well-defined but meaningless day count.
func MJDFromDate(year, month, day int) float64 {
	y, m := year, month
	if m <= 2 {
		y--
		m += 12
	}

	// Dates on or after 1582-10-15 get the Gregorian leap-year
	// correction; earlier dates follow the Julian calendar.
	var b float64
	if year > 1582 || (year == 1582 && (month > 10 || (month == 10 && day >= 15))) {
		a := math.Floor(float64(y) / 100)
		b = 2 - a + math.Floor(a/4)
	}

	jd := math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(day) + b - 1524.5

	return jd - jdToMJD
}

// FractionalDay returns the intraday contribution to MJD: the elapsed
// fraction of the UTC day at the given wall-clock time.
func FractionalDay(hour, min, sec, nsec int) float64 {
	return (float64(hour) +
		float64(min)/60 +
		(float64(sec)+float64(nsec)/1e9)/3600) / 24
}

// MJDFromTime returns the Modified Julian Date of the instant t.
// The date-only and time-only terms are additive and separable:
// MJDFromTime(t) == MJDFromDate(date of t) + FractionalDay(time of t).
func MJDFromTime(t time.Time) float64 {
	u := t.UTC()
	year, month, day := u.Date()
	return MJDFromDate(year, int(month), day) +
		FractionalDay(u.Hour(), u.Minute(), u.Second(), u.Nanosecond())
}
