// Package sidereal is the evaluation pipeline tying the conversion
// steps together: civil UTC instant -> MJD -> GMST -> LMST -> countdown
// to the observer's target sidereal time.
//
// Evaluate is a pure function of (now, observer). Nothing is cached
// between calls, so it is safe to invoke at any rate from the display
// tick, the alert job, or both at once.
package sidereal

import (
	"fmt"
	"time"

	"github.com/ryan-winkler/transitwatch/internal/astro"
	"github.com/ryan-winkler/transitwatch/internal/clockface"
	"github.com/ryan-winkler/transitwatch/internal/countdown"
)

// Observer is the fixed per-run configuration: where the clock is, and
// which sidereal time it is counting down to.
type Observer struct {
	Latitude  float64 // degrees, North positive; display/timezone only
	Longitude float64 // degrees, East positive, (-180, 180]
	Target    clockface.Clock
}

// Report is one evaluation of the pipeline at a single instant.
type Report struct {
	Instant time.Time // the UTC instant evaluated
	MJD     float64

	GMSTHours float64 // raw polynomial output, not reduced
	GMST      clockface.Clock
	LMST      clockface.Clock

	Countdown      time.Duration // until the next target transit, [0,24h)
	CountdownClock clockface.Clock
}

// Evaluate runs the pipeline for obs at the instant now.
func Evaluate(now time.Time, obs Observer) (Report, error) {
	u := now.UTC()

	gmst := astro.GMST(u)
	lmst := astro.LMST(gmst, obs.Longitude)

	gmstClock, err := clockface.FromHours(astro.Normalize24(gmst))
	if err != nil {
		return Report{}, fmt.Errorf("decode gmst: %w", err)
	}
	lmstClock, err := clockface.FromHours(lmst)
	if err != nil {
		return Report{}, fmt.Errorf("decode lmst: %w", err)
	}

	remaining := countdown.Until(lmstClock, obs.Target)
	remainingClock, err := countdown.AsClock(remaining)
	if err != nil {
		return Report{}, fmt.Errorf("decode countdown: %w", err)
	}

	return Report{
		Instant:        u,
		MJD:            astro.MJDFromTime(u),
		GMSTHours:      gmst,
		GMST:           gmstClock,
		LMST:           lmstClock,
		Countdown:      remaining,
		CountdownClock: remainingClock,
	}, nil
}
