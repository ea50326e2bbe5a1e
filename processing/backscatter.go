package processing

import (
	"errors"
	"fmt"
	"math"

	"github.com/robert-malhotra/go-pd0/geometry"
	"github.com/robert-malhotra/go-pd0/pd0"
)

// ErrUnsupportedFrequency is returned when no default absorption and
// transmit power are known for the instrument frequency.
var ErrUnsupportedFrequency = errors.New("processing: no backscatter defaults for frequency")

// Workhorse constants for the Deines equation as revised by Mullison
// (TRDI FSA-031).
const (
	DefaultNoiseFloor = 39 // counts

	wideBandC   = -139.09 // WB0, 25% bandwidth
	narrowBandC = -149.14 // WB1, 6.25% bandwidth
)

// DefaultKc is the per-beam count-to-dB factor used without a PT3 report.
var DefaultKc = [4]float64{0.3931, 0.4145, 0.416, 0.4129}

// nominal ocean absorption (dB/m) and battery transmit power (dBW)
var frequencyDefaults = map[int]struct{ alpha, power float64 }{
	75:  {0.027, 27.3},
	300: {0.068, 14},
	600: {0.178, 9},
}

// BackscatterParams are the instrument terms of the backscatter equation.
type BackscatterParams struct {
	C          float64    // instrument constant, dB
	Kc         [4]float64 // dB per count, per beam
	NoiseFloor float64    // E_r, counts
	Alpha      float64    // absorption, dB/m
	PowerDBW   float64    // transmit power, dBW
}

// DefaultBackscatterParams picks C from the bandwidth setting and absorption
// and power from the system frequency.
func DefaultBackscatterParams(cfg pd0.Config) (BackscatterParams, error) {
	d, ok := frequencyDefaults[cfg.System.FrequencyKHz]
	if !ok {
		return BackscatterParams{}, fmt.Errorf("%d kHz: %w", cfg.System.FrequencyKHz, ErrUnsupportedFrequency)
	}
	c := wideBandC
	if cfg.Bandwidth != 0 {
		c = narrowBandC
	}
	return BackscatterParams{
		C:          c,
		Kc:         DefaultKc,
		NoiseFloor: DefaultNoiseFloor,
		Alpha:      d.alpha,
		PowerDBW:   d.power,
	}, nil
}

// WithPT3 returns p with the PT3 calibration replacing Kc.
func (p BackscatterParams) WithPT3(pt3 PT3) BackscatterParams {
	p.Kc = pt3.Kc
	return p
}

// CountsToBackscatter converts echo intensity e (counts) at range r (m) to
// volume scattering strength Sv (dB) and the linear signal to noise ratio.
// temp is the transducer temperature in degrees C and pulse the transmit
// pulse length in m.
func CountsToBackscatter(p BackscatterParams, kc, e, r, temp, pulse float64) (sv, stn float64) {
	noise := math.Pow(10, kc*p.NoiseFloor/10)
	stn = (math.Pow(10, kc*e/10) - noise) / noise

	sv = p.C +
		10*math.Log10((temp+273.16)*r*r) -
		10*math.Log10(pulse) -
		p.PowerDBW +
		2*p.Alpha*r +
		10*math.Log10(math.Pow(10, 0.1*kc*(e-p.NoiseFloor))-1)
	return sv, stn
}

// AbsoluteBackscatter computes Sv and the signal to noise ratio for every
// cell from the unmasked echo intensity and registers them on ds as
// pd0.FieldBackscatter and pd0.FieldSignalToNoise. Range is the along-axis
// bin midpoint distance.
func AbsoluteBackscatter(ds *pd0.Dataset, p BackscatterParams) (sv, stn pd0.Cube, err error) {
	echo, err := ds.EnsembleArray(pd0.FieldEcho, false)
	if err != nil {
		return sv, stn, err
	}
	g, err := geometry.New(ds)
	if err != nil {
		return sv, stn, err
	}
	ranges := g.BinMidpoints()
	temps := ds.Temperature()
	pulses := ds.TransmitPulseLength()

	sv = pd0.NewCube(echo.Shape)
	stn = pd0.NewCube(echo.Shape)
	for b := 0; b < echo.Beams; b++ {
		for k := 0; k < echo.Bins; k++ {
			for e := 0; e < echo.Ensembles; e++ {
				if b >= len(p.Kc) {
					sv.Set(b, k, e, math.NaN())
					stn.Set(b, k, e, math.NaN())
					continue
				}
				s, n := CountsToBackscatter(p, p.Kc[b], echo.At(b, k, e), ranges[k], temps[e], pulses[e])
				sv.Set(b, k, e, s)
				stn.Set(b, k, e, n)
			}
		}
	}

	if err := ds.AddDerived(pd0.FieldBackscatter, sv); err != nil {
		return sv, stn, err
	}
	if err := ds.AddDerived(pd0.FieldSignalToNoise, stn); err != nil {
		return sv, stn, err
	}
	return sv, stn, nil
}
