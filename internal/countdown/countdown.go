// Package countdown computes time remaining until a fixed clock time
// next recurs on a repeating 24-hour dial.
//
// Sidereal time wraps every 24 sidereal hours, so a target earlier on
// the dial than the current reading is reached tomorrow, not in
// negative time. The result is an elapsed time.Duration — deliberately
// not a clock-of-day value — even though both render through the same
// clockface decoder.
package countdown

import (
	"time"

	"github.com/ryan-winkler/transitwatch/internal/clockface"
)

// Until returns the duration from current until the next occurrence of
// target on a 24h dial. Always in [0, 24h): zero when the two coincide,
// wrapping forward a day when target has already passed.
func Until(current, target clockface.Clock) time.Duration {
	diff := target.Hours() - current.Hours()
	if diff < 0 {
		diff += 24
	}
	return time.Duration(diff * float64(time.Hour))
}

// AsClock re-expresses an elapsed duration in clock fields for display.
// Durations of a day or more keep accumulating hours (25:10:00 style);
// only a negative duration is rejected.
func AsClock(d time.Duration) (clockface.Clock, error) {
	return clockface.FromHours(d.Hours())
}
