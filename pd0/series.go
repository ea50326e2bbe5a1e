package pd0

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/robert-malhotra/go-pd0/internal/ensemble"
	"github.com/robert-malhotra/go-pd0/internal/field"
	"gonum.org/v1/gonum/mat"
)

// Config is the instrument configuration of the first loaded ensemble,
// converted to SI units.
type Config struct {
	Beams              int
	Cells              int
	PingsPerEnsemble   int
	CellLength         float64 // m
	Bin1Distance       float64 // m
	BlankAfterTransmit float64 // m
	TransmitPulse      float64 // m
	BeamAngle          float64 // degrees, from the fixed leader
	Bandwidth          int     // WB command: 0 wide, 1 narrow
	SerialNumber       uint32
	CPUVersion         string
	System             ensemble.SystemConfig
	Coordinates        ensemble.CoordinateSystem
}

// Range returns the distance from the transducer to the far edge of the
// last bin in metres.
func (c Config) Range() float64 {
	return c.Bin1Distance + c.CellLength*float64(c.Cells)
}

// Config returns the instrument configuration.
func (d *Dataset) Config() (Config, error) {
	if len(d.ensembles) == 0 {
		return Config{}, ErrNotLoaded
	}
	e := d.ensembles[0]
	fl := &e.Fixed
	return Config{
		Beams:              e.Beams(),
		Cells:              e.Cells(),
		PingsPerEnsemble:   int(fl.PingsPerEnsemble),
		CellLength:         float64(fl.CellLength) / 100,
		Bin1Distance:       float64(fl.Bin1Distance) / 100,
		BlankAfterTransmit: float64(fl.BlankAfterTransmit) / 100,
		TransmitPulse:      float64(fl.TransmitPulseLength) / 100,
		BeamAngle:          float64(fl.BeamAngle),
		Bandwidth:          int(fl.SystemBandwidth),
		SerialNumber:       fl.SerialNumber,
		CPUVersion:         fmt.Sprintf("%d.%02d", fl.CPUVersion, fl.CPURevision),
		System:             e.System(),
		Coordinates:        e.Coordinates(),
	}, nil
}

// Times returns the timestamp of every loaded ensemble, shifted by the
// timezone option.
func (d *Dataset) Times() ([]time.Time, error) {
	out := make([]time.Time, len(d.ensembles))
	for i, e := range d.ensembles {
		t, err := e.Time(d.opts.tz)
		if err != nil {
			return nil, fmt.Errorf("ensemble %d: %w", e.Number(), err)
		}
		out[i] = t
	}
	return out, nil
}

// Numbers returns the ensemble numbers with rollover applied.
func (d *Dataset) Numbers() []uint32 {
	out := make([]uint32, len(d.ensembles))
	for i, e := range d.ensembles {
		out[i] = e.Number()
	}
	return out
}

func (d *Dataset) series(f func(*ensemble.Ensemble) float64) []float64 {
	out := make([]float64, len(d.ensembles))
	for i, e := range d.ensembles {
		out[i] = f(e)
	}
	return out
}

// Temperature returns the transducer temperature in degrees C.
func (d *Dataset) Temperature() []float64 {
	return d.series(func(e *ensemble.Ensemble) float64 { return float64(e.Variable.Temperature) / 100 })
}

// Pitch returns the sensor pitch in degrees.
func (d *Dataset) Pitch() []float64 {
	return d.series(func(e *ensemble.Ensemble) float64 { return float64(e.Variable.Pitch) / 100 })
}

// Roll returns the sensor roll in degrees.
func (d *Dataset) Roll() []float64 {
	return d.series(func(e *ensemble.Ensemble) float64 { return float64(e.Variable.Roll) / 100 })
}

// Heading returns the sensor heading in degrees.
func (d *Dataset) Heading() []float64 {
	return d.series(func(e *ensemble.Ensemble) float64 { return float64(e.Variable.Heading) / 100 })
}

// Salinity returns the configured salinity in ppt.
func (d *Dataset) Salinity() []float64 {
	return d.series(func(e *ensemble.Ensemble) float64 { return float64(e.Variable.Salinity) })
}

// TransducerDepth returns the transducer depth in metres.
func (d *Dataset) TransducerDepth() []float64 {
	return d.series(func(e *ensemble.Ensemble) float64 { return float64(e.Variable.TransducerDepth) / 10 })
}

// Pressure returns the pressure sensor reading in decibar.
func (d *Dataset) Pressure() []float64 {
	return d.series(func(e *ensemble.Ensemble) float64 { return float64(e.Variable.Pressure) / 1000 })
}

// SpeedOfSound returns the speed of sound used by the instrument in m/s.
func (d *Dataset) SpeedOfSound() []float64 {
	return d.series(func(e *ensemble.Ensemble) float64 { return float64(e.Variable.SpeedOfSound) })
}

// TransmitPulseLength returns the transmit pulse length in metres.
func (d *Dataset) TransmitPulseLength() []float64 {
	return d.series(func(e *ensemble.Ensemble) float64 { return float64(e.Fixed.TransmitPulseLength) / 100 })
}

// BITResult returns the built-in test result word of every ensemble.
func (d *Dataset) BITResult() []uint16 {
	out := make([]uint16, len(d.ensembles))
	for i, e := range d.ensembles {
		out[i] = e.Variable.BITResult
	}
	return out
}

// LeaderSeries returns the raw value of a named fixed leader, variable
// leader or bottom-track field for every ensemble. Bottom-track fields are
// NaN for ensembles without a bottom-track block.
func (d *Dataset) LeaderSeries(name string) ([]float64, error) {
	var get func(*ensemble.Ensemble) (float64, error)
	switch {
	case slices.Contains(field.Names(ensemble.VariableLeaderTable), name):
		get = func(e *ensemble.Ensemble) (float64, error) {
			return field.Value(ensemble.VariableLeaderTable, &e.Variable, name)
		}
	case slices.Contains(field.Names(ensemble.FixedLeaderTable), name):
		get = func(e *ensemble.Ensemble) (float64, error) {
			return field.Value(ensemble.FixedLeaderTable, &e.Fixed, name)
		}
	case slices.Contains(field.Names(ensemble.BottomTrackTable), name):
		get = func(e *ensemble.Ensemble) (float64, error) {
			if e.BottomTrack == nil {
				return math.NaN(), nil
			}
			return field.Value(ensemble.BottomTrackTable, e.BottomTrack, name)
		}
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownField)
	}

	out := make([]float64, len(d.ensembles))
	for i, e := range d.ensembles {
		v, err := get(e)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// BottomTrackRange returns the per-beam range to the bed in metres as a
// beams x ensembles matrix, NaN where an ensemble has no bottom track.
func (d *Dataset) BottomTrackRange() (*mat.Dense, error) {
	return d.bottomTrack(func(bt *ensemble.BottomTrack, b int) float64 {
		return float64(bt.RangeCM(b)) / 100
	})
}

// BottomTrackPercentGood returns the per-beam bottom-track percent good as a
// beams x ensembles matrix, NaN where an ensemble has no bottom track.
func (d *Dataset) BottomTrackPercentGood() (*mat.Dense, error) {
	return d.bottomTrack(func(bt *ensemble.BottomTrack, b int) float64 {
		return float64(bt.PercentGood[b])
	})
}

func (d *Dataset) bottomTrack(f func(*ensemble.BottomTrack, int) float64) (*mat.Dense, error) {
	if len(d.ensembles) == 0 {
		return nil, ErrNotLoaded
	}
	beams := min(d.ensembles[0].Beams(), 4)
	out := mat.NewDense(beams, len(d.ensembles), nil)
	for e, ens := range d.ensembles {
		for b := 0; b < beams; b++ {
			v := math.NaN()
			if ens.BottomTrack != nil {
				v = f(ens.BottomTrack, b)
			}
			out.Set(b, e, v)
		}
	}
	return out, nil
}
