package astro

import (
	"math"
	"time"
)

// mjdJ2000 is the Modified Julian Date of the J2000.0 epoch
// (2000-01-01 12:00 UTC).
const mjdJ2000 = 51544.5

// UTCHours returns the UTC time of day of t as decimal hours in [0,24).
func UTCHours(t time.Time) float64 {
	u := t.UTC()
	return float64(u.Hour()) +
		float64(u.Minute())/60 +
		float64(u.Second())/3600 +
		float64(u.Nanosecond())/3.6e12
}

// GMST returns the Greenwich Mean Sidereal Time at t, in hours.
//
// The polynomial is evaluated at 0h UTC of t's day (the floored
// date-only MJD) and the intraday advance is added separately at the
// sidereal rate, so the day fraction is never counted twice:
//
//	GMST = 6.697374558 + 0.06570982441908·D0 + 1.00273790935·H + 0.000026·T²
//
// where D0 is days from J2000.0 to 0h UTC, H the UTC time of day in
// hours, and T = D0/36525. The result is NOT reduced into [0,24);
// callers normalize via LMST or Normalize24.
func GMST(t time.Time) float64 {
	u := t.UTC()
	year, month, day := u.Date()

	d0 := math.Floor(MJDFromDate(year, int(month), day)) - mjdJ2000
	tc := d0 / 36525.0

	return 6.697374558 +
		0.06570982441908*d0 +
		1.00273790935*UTCHours(u) +
		0.000026*tc*tc
}

// LMST returns the Local Mean Sidereal Time in hours, in [0,24), for a
// Greenwich sidereal time (hours, any real value) and an observer
// longitude in signed degrees, East positive.
func LMST(gmst, lonDeg float64) float64 {
	return Normalize24(gmst + lonDeg/15)
}

// Normalize24 wraps h into [0,24) using floored modulo: the result is
// non-negative even for negative inputs. math.Mod truncates toward
// zero, so a negative remainder gets one period added back; the final
// clamp catches the float case where h+24 rounds up to exactly 24.
func Normalize24(h float64) float64 {
	h = math.Mod(h, 24)
	if h < 0 {
		h += 24
	}
	if h >= 24 {
		h -= 24
	}
	return h
}
