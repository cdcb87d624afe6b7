// Package tzlookup resolves geographic coordinates to an IANA timezone
// identifier.
//
// The lookup is purely cosmetic — nothing in the sidereal math depends
// on it — so callers are expected to degrade (drop the zone line) on
// error rather than abort. The policy is strict: exactly one matching
// zone polygon or an error. Overlapping polygons are a real condition
// near contested borders and we deliberately do not pick a winner.
package tzlookup

import (
	"errors"
	"fmt"

	"github.com/ringsaturn/tzf"
)

var (
	// ErrNoTimezoneFound reports a coordinate inside no known zone
	// polygon (typically international waters).
	ErrNoTimezoneFound = errors.New("no timezone found")

	// ErrAmbiguousTimezone reports a coordinate inside more than one
	// zone polygon.
	ErrAmbiguousTimezone = errors.New("ambiguous timezone")
)

// Finder reports every IANA zone whose polygon contains the coordinate.
// Satisfied by the embedded tzf dataset in production and by fakes in
// tests.
type Finder interface {
	Names(lat, lon float64) []string
}

// Resolver applies the one-match policy over a Finder.
type Resolver struct {
	finder Finder
}

// New builds a Resolver backed by the embedded timezone polygon data.
func New() (*Resolver, error) {
	f, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, fmt.Errorf("load timezone data: %w", err)
	}
	return &Resolver{finder: tzfFinder{f}}, nil
}

// NewWithFinder builds a Resolver over a caller-supplied Finder.
func NewWithFinder(f Finder) *Resolver {
	return &Resolver{finder: f}
}

// Resolve returns the IANA zone name containing (lat, lon). It fails
// with ErrNoTimezoneFound for zero matches and ErrAmbiguousTimezone for
// more than one.
func (r *Resolver) Resolve(lat, lon float64) (string, error) {
	names := r.finder.Names(lat, lon)
	switch len(names) {
	case 0:
		return "", fmt.Errorf("%w at %.3f,%.3f", ErrNoTimezoneFound, lat, lon)
	case 1:
		return names[0], nil
	default:
		return "", fmt.Errorf("%w at %.3f,%.3f: %v", ErrAmbiguousTimezone, lat, lon, names)
	}
}

// tzfFinder adapts the tzf finder to the Finder interface. tzf takes
// longitude first and reports "not found" as an error; both are folded
// into the plain name-list contract here.
type tzfFinder struct {
	f tzf.F
}

func (t tzfFinder) Names(lat, lon float64) []string {
	names, err := t.f.GetTimezoneNames(lon, lat)
	if err != nil {
		return nil
	}
	return names
}
