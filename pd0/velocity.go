package pd0

import (
	"fmt"
	"math"

	"github.com/robert-malhotra/go-pd0/internal/ensemble"
	"gonum.org/v1/gonum/mat"
)

// Velocity holds earth-frame velocity components in m/s and the distance
// each bin's water travels over one ensemble interval in metres. Every
// matrix is bins x ensembles.
type Velocity struct {
	U, V, Z, Error *mat.Dense
	DU, DV, DZ     *mat.Dense
}

// Velocity returns the velocity components of the loaded ensembles. Beams
// 1 to 4 are read as east, north, up and error velocity. Sentinel samples
// become NaN. Horizontal components are rotated by the magnetic deviation
// option when it is non-zero.
func (d *Dataset) Velocity() (*Velocity, error) {
	if len(d.ensembles) == 0 {
		return nil, ErrNotLoaded
	}
	shape := d.Shape()
	if shape.Beams < 4 {
		return nil, fmt.Errorf("%d beams: %w", shape.Beams, ErrUnsupported)
	}
	if c := d.ensembles[0].Coordinates(); c != ensemble.Earth {
		d.log.Debug("velocity is not in earth coordinates", "coordinates", c)
	}

	bins, n := shape.Bins, shape.Ensembles
	comp := make([]*mat.Dense, 4)
	for b := range comp {
		comp[b] = mat.NewDense(bins, n, nil)
	}
	for e, ens := range d.ensembles {
		for k := 0; k < bins; k++ {
			for b := range comp {
				v := float64(ens.Velocity[k][b])
				if math.Abs(v) == -ensemble.VelocitySentinel {
					v = math.NaN()
				}
				comp[b].Set(k, e, v*0.001)
			}
		}
	}
	u, v := comp[0], comp[1]

	if d.opts.deviation != 0 {
		s, c := math.Sincos(d.opts.deviation * math.Pi / 180)
		rot := mat.NewDense(2, 2, []float64{c, -s, s, c})
		uv := mat.NewDense(2, n, nil)
		var out mat.Dense
		for k := 0; k < bins; k++ {
			uv.SetRow(0, mat.Row(nil, k, u))
			uv.SetRow(1, mat.Row(nil, k, v))
			out.Mul(rot, uv)
			u.SetRow(k, out.RawRowView(0))
			v.SetRow(k, out.RawRowView(1))
		}
	}

	dt, err := d.intervals()
	if err != nil {
		return nil, err
	}
	scale := func(m *mat.Dense) *mat.Dense {
		out := mat.NewDense(bins, n, nil)
		out.Apply(func(_, j int, x float64) float64 { return x * dt[j] }, m)
		return out
	}
	return &Velocity{
		U: u, V: v, Z: comp[2], Error: comp[3],
		DU: scale(u), DV: scale(v), DZ: scale(comp[2]),
	}, nil
}

// intervals returns the seconds between consecutive ensembles, repeating the
// last interval for the final ensemble.
func (d *Dataset) intervals() ([]float64, error) {
	times, err := d.Times()
	if err != nil {
		return nil, err
	}
	dt := make([]float64, len(times))
	for i := 0; i+1 < len(times); i++ {
		dt[i] = times[i+1].Sub(times[i]).Seconds()
	}
	if n := len(dt); n > 1 {
		dt[n-1] = dt[n-2]
	}
	return dt, nil
}
