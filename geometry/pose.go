package geometry

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"
	"time"
)

var (
	// ErrUnsorted is returned when a track's timestamps are not increasing.
	ErrUnsorted = errors.New("geometry: track timestamps not sorted")
	// ErrTrackLength is returned when a track's columns differ in length.
	ErrTrackLength = errors.New("geometry: track columns differ in length")
)

// Samples is a pose table aligned to a list of timestamps. Positions are in
// metres with z positive up; angles are in degrees.
type Samples struct {
	X, Y, Z              []float64
	Pitch, Roll, Heading []float64
}

// Len returns the number of rows.
func (s Samples) Len() int { return len(s.X) }

func (s Samples) check() error {
	n := len(s.X)
	for _, c := range [][]float64{s.Y, s.Z, s.Pitch, s.Roll, s.Heading} {
		if len(c) != n {
			return ErrTrackLength
		}
	}
	return nil
}

// Pose supplies instrument position and orientation at arbitrary times.
type Pose interface {
	ResampleTo(times []time.Time) (Samples, error)
}

// Method selects how a Track matches a requested time to a recorded one.
type Method int

const (
	// Nearest picks the closest record.
	Nearest Method = iota
	// Previous picks the last record at or before the requested time.
	Previous
	// Following picks the first record at or after the requested time.
	Following
)

func (m Method) String() string {
	switch m {
	case Previous:
		return "ffill"
	case Following:
		return "bfill"
	default:
		return "nearest"
	}
}

// ParseMethod accepts "nearest", "ffill" and "bfill".
func ParseMethod(s string) (Method, error) {
	switch s {
	case "nearest", "":
		return Nearest, nil
	case "ffill", "pad":
		return Previous, nil
	case "bfill", "backfill":
		return Following, nil
	}
	return Nearest, fmt.Errorf("geometry: unknown resample method %q", s)
}

// Track is a recorded pose time series, for example from a vessel GPS and
// motion reference unit.
type Track struct {
	Time []time.Time
	Samples

	Method Method
	// Tolerance bounds the distance between a requested time and the
	// matched record; unmatched rows are NaN. Zero means unbounded.
	Tolerance time.Duration
}

// ResampleTo returns the track evaluated at times.
func (t *Track) ResampleTo(times []time.Time) (Samples, error) {
	if err := t.Samples.check(); err != nil {
		return Samples{}, err
	}
	if len(t.Time) != t.Samples.Len() {
		return Samples{}, ErrTrackLength
	}
	if !slices.IsSortedFunc(t.Time, func(a, b time.Time) int { return a.Compare(b) }) {
		return Samples{}, ErrUnsorted
	}

	out := newSamples(len(times))
	for i, at := range times {
		j := t.match(at)
		if j < 0 {
			continue
		}
		out.X[i] = t.X[j]
		out.Y[i] = t.Y[j]
		out.Z[i] = t.Z[j]
		out.Pitch[i] = t.Pitch[j]
		out.Roll[i] = t.Roll[j]
		out.Heading[i] = t.Heading[j]
	}
	return out, nil
}

// match returns the index of the record for at, or -1.
func (t *Track) match(at time.Time) int {
	n := len(t.Time)
	// first record at or after at
	k := sort.Search(n, func(i int) bool { return !t.Time[i].Before(at) })

	j := -1
	switch t.Method {
	case Previous:
		if k < n && t.Time[k].Equal(at) {
			j = k
		} else {
			j = k - 1
		}
	case Following:
		if k < n {
			j = k
		}
	default:
		switch {
		case k == n:
			j = n - 1
		case k == 0:
			j = 0
		case at.Sub(t.Time[k-1]) <= t.Time[k].Sub(at):
			j = k - 1
		default:
			j = k
		}
	}
	if j < 0 || j >= n {
		return -1
	}
	if t.Tolerance > 0 && absDuration(at.Sub(t.Time[j])) > t.Tolerance {
		return -1
	}
	return j
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

func newSamples(n int) Samples {
	col := func() []float64 {
		c := make([]float64, n)
		for i := range c {
			c[i] = math.NaN()
		}
		return c
	}
	return Samples{X: col(), Y: col(), Z: col(), Pitch: col(), Roll: col(), Heading: col()}
}

type static struct {
	x, y, z              float64
	pitch, roll, heading float64
}

// Static returns a Pose that is the same at every time, for moored or
// bottom-mounted instruments.
func Static(x, y, z, pitch, roll, heading float64) Pose {
	return static{x, y, z, pitch, roll, heading}
}

func (s static) ResampleTo(times []time.Time) (Samples, error) {
	out := newSamples(len(times))
	for i := range times {
		out.X[i], out.Y[i], out.Z[i] = s.x, s.y, s.z
		out.Pitch[i], out.Roll[i], out.Heading[i] = s.pitch, s.roll, s.heading
	}
	return out, nil
}
