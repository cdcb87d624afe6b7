// Package clockface converts between decimal hours and a
// hour/minute/second/nanosecond clock decomposition.
//
// Decoding truncates (never rounds) at each unit boundary, so a value a
// hair under a whole minute renders as 59.999999s rather than rolling
// over — matching how elapsed sidereal quantities are conventionally
// printed. Values of 24h and above are accepted: the same decoder
// renders both time-of-day and elapsed-duration values.
package clockface

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidTimeValue reports a decimal-hours value that cannot be
// decomposed into clock fields: negative, NaN, or infinite.
var ErrInvalidTimeValue = errors.New("invalid time value")

// Clock is a decomposed decimal-hours value. For time-of-day values
// Hour is in [0,24); for durations it may exceed 24.
type Clock struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// FromHours decodes non-negative decimal hours into clock fields.
// Each field is truncated toward zero at its unit boundary.
func FromHours(h float64) (Clock, error) {
	if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		return Clock{}, fmt.Errorf("%w: %v hours", ErrInvalidTimeValue, h)
	}

	hour := math.Trunc(h)
	mf := (h - hour) * 60
	minute := math.Trunc(mf)
	sf := (mf - minute) * 60
	second := math.Trunc(sf)
	nsec := math.Trunc((sf - second) * 1e9)

	return Clock{
		Hour:       int(hour),
		Minute:     int(minute),
		Second:     int(second),
		Nanosecond: int(nsec),
	}, nil
}

// Hours encodes the clock back into decimal hours. Exact inverse of
// FromHours for valid clocks, up to float representation.
func (c Clock) Hours() float64 {
	return float64(c.Hour) +
		float64(c.Minute)/60 +
		float64(c.Second)/3600 +
		float64(c.Nanosecond)/3.6e12
}

// Parse reads a "15:04:05" clock string.
func Parse(s string) (Clock, error) {
	t, err := time.Parse("15:04:05", s)
	if err != nil {
		return Clock{}, fmt.Errorf("parse clock time %q: %w", s, err)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, nil
}

// String renders the clock as HH:MM:SS.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// StringPrecise renders the clock as HH:MM:SS.ffffff with microsecond
// precision, the format the display uses for UTC and sidereal readouts.
func (c Clock) StringPrecise() string {
	return fmt.Sprintf("%02d:%02d:%02d.%06d", c.Hour, c.Minute, c.Second, c.Nanosecond/1000)
}
