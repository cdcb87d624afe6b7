package astro

import (
	"math"
	"testing"
	"time"
)

func TestMJDFromDateKnownValues(t *testing.T) {
	cases := []struct {
		name             string
		year, month, day int
		want             float64
	}{
		{"1900-01-01 reference epoch", 1900, 1, 1, 15020},
		{"2000-01-01", 2000, 1, 1, 51544},
		{"MJD epoch 1858-11-17", 1858, 11, 17, 0},
		{"first Gregorian day 1582-10-15", 1582, 10, 15, -100840},
		{"last Julian day 1582-10-04", 1582, 10, 4, -100841},
	}
	for _, c := range cases {
		got := MJDFromDate(c.year, c.month, c.day)
		if got != c.want {
			t.Errorf("%s: MJDFromDate = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestMJDFromDateHasNoFraction(t *testing.T) {
	// 0h UTC always lands on a whole MJD.
	for _, d := range [][3]int{{1969, 7, 20}, {2024, 2, 29}, {1, 1, 1}} {
		mjd := MJDFromDate(d[0], d[1], d[2])
		if mjd != math.Trunc(mjd) {
			t.Errorf("MJDFromDate(%v) = %v, want integral", d, mjd)
		}
	}
}

func TestMJDFromTimeSputnik(t *testing.T) {
	// Meeus, Astronomical Algorithms ch. 7: 1957 October 4.81 UT is
	// JD 2436116.31, i.e. MJD 36115.81.
	launch := time.Date(1957, time.October, 4, 19, 26, 24, 0, time.UTC)
	got := MJDFromTime(launch)
	if math.Abs(got-36115.81) > 1e-9 {
		t.Errorf("MJDFromTime(sputnik) = %v, want 36115.81", got)
	}
}

func TestMJDAdditivity(t *testing.T) {
	// The date-only and time-only terms must be exactly additive.
	instants := []time.Time{
		time.Date(2026, time.August, 29, 13, 30, 0, 0, time.UTC),
		time.Date(1999, time.December, 31, 23, 59, 59, 999999999, time.UTC),
		time.Date(1582, time.October, 15, 0, 0, 1, 0, time.UTC),
		time.Date(2000, time.February, 29, 6, 0, 0, 0, time.UTC),
	}
	for _, in := range instants {
		y, m, d := in.Date()
		sum := MJDFromDate(y, int(m), d) +
			FractionalDay(in.Hour(), in.Minute(), in.Second(), in.Nanosecond())
		if got := MJDFromTime(in); got != sum {
			t.Errorf("MJDFromTime(%v) = %v, want exact sum %v", in, got, sum)
		}
	}
}

func TestFractionalDayRange(t *testing.T) {
	if got := FractionalDay(0, 0, 0, 0); got != 0 {
		t.Errorf("FractionalDay(midnight) = %v, want 0", got)
	}
	if got := FractionalDay(12, 0, 0, 0); got != 0.5 {
		t.Errorf("FractionalDay(noon) = %v, want 0.5", got)
	}
	got := FractionalDay(23, 59, 59, 999999999)
	if got >= 1 || got < 0.99998 {
		t.Errorf("FractionalDay(end of day) = %v, want just below 1", got)
	}
}
