package processing

import (
	"math"

	"github.com/robert-malhotra/go-pd0/pd0"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/mat"
)

// InterferenceOptions tune InterferenceFilter.
type InterferenceOptions struct {
	// Iterations is the number of spike-removal passes.
	Iterations int
	// Threshold is the largest rise allowed between consecutive ensembles,
	// as a fraction of the beam's echo range.
	Threshold float64
	// Sigma is the Gaussian smoothing width in cells. Zero disables it.
	Sigma float64
}

// DefaultInterferenceOptions returns three passes at a 5% threshold without
// smoothing.
func DefaultInterferenceOptions() InterferenceOptions {
	return InterferenceOptions{Iterations: 3, Threshold: 0.05}
}

// InterferenceFilter removes pings of another acoustic instrument, such as
// a DVL, from the echo intensity and registers the result as
// pd0.FieldFilteredEcho.
//
// Each beam is filtered as a bins x ensembles matrix. A pass drops every
// sample that rises by more than Threshold of the beam's range over the
// previous ensemble and fills the gaps by linear interpolation. A pass
// consumes the leading ensemble, so the first Iterations ensembles keep
// their raw values. Cells that were NaN in the raw echo stay NaN.
func InterferenceFilter(ds *pd0.Dataset, opts InterferenceOptions) (pd0.Cube, error) {
	echo, err := ds.EnsembleArray(pd0.FieldEcho, false)
	if err != nil {
		return pd0.Cube{}, err
	}

	out := echo.Clone()
	skip := max(opts.Iterations, 0)
	if echo.Bins > 0 && skip < echo.Ensembles {
		for b := 0; b < echo.Beams; b++ {
			x := mat.NewDense(echo.Bins, echo.Ensembles, nil)
			for k := 0; k < echo.Bins; k++ {
				for e := 0; e < echo.Ensembles; e++ {
					x.Set(k, e, echo.At(b, k, e))
				}
			}

			x = removeInterference(x, skip, opts.Threshold)
			if opts.Sigma > 0 {
				gaussianSmooth(x, opts.Sigma)
			}

			for k := 0; k < echo.Bins; k++ {
				for e := skip; e < echo.Ensembles; e++ {
					if !math.IsNaN(echo.At(b, k, e)) {
						out.Set(b, k, e, x.At(k, e-skip))
					}
				}
			}
		}
	}

	if err := ds.AddDerived(pd0.FieldFilteredEcho, out); err != nil {
		return pd0.Cube{}, err
	}
	return out, nil
}

// removeInterference runs passes of the rise filter over x and returns a
// matrix with passes fewer columns.
func removeInterference(x *mat.Dense, passes int, threshold float64) *mat.Dense {
	for i := 0; i < passes; i++ {
		rows, cols := x.Dims()
		lo, hi := finiteRange(x.RawMatrix().Data)
		next := mat.DenseCopyOf(x.Slice(0, rows, 1, cols))
		for k := 0; k < rows; k++ {
			for e := 1; e < cols; e++ {
				// NaN compares false, so a flat beam is left alone
				if (x.At(k, e)-x.At(k, e-1))/(hi-lo) > threshold {
					next.Set(k, e-1, math.NaN())
				}
			}
		}
		fillLinear(next.RawMatrix().Data)
		x = next
	}
	return x
}

func finiteRange(xs []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range xs {
		if !math.IsNaN(v) {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return lo, hi
}

// fillLinear replaces NaNs in xs by linear interpolation over the index,
// holding the end values beyond the first and last known samples.
func fillLinear(xs []float64) {
	var at, known []float64
	for i, v := range xs {
		if !math.IsNaN(v) {
			at = append(at, float64(i))
			known = append(known, v)
		}
	}
	switch {
	case len(known) == 0 || len(known) == len(xs):
		return
	case len(known) == 1:
		for i := range xs {
			xs[i] = known[0]
		}
		return
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(at, known); err != nil {
		return
	}
	for i, v := range xs {
		if math.IsNaN(v) {
			xs[i] = pl.Predict(float64(i))
		}
	}
}

// gaussianSmooth convolves x in place with a Gaussian of width sigma cells
// along both axes. Edges are mirrored about the outer cell boundary and the
// kernel is truncated at four sigma.
func gaussianSmooth(x *mat.Dense, sigma float64) {
	radius := int(4*sigma + 0.5)
	kernel := make([]float64, 2*radius+1)
	for i := range kernel {
		t := float64(i - radius)
		kernel[i] = math.Exp(-0.5 * t * t / (sigma * sigma))
	}
	floats.Scale(1/floats.Sum(kernel), kernel)

	rows, cols := x.Dims()
	for e := 0; e < cols; e++ {
		col := mat.Col(nil, e, x)
		x.SetCol(e, convolveReflect(col, kernel))
	}
	for k := 0; k < rows; k++ {
		row := mat.Row(nil, k, x)
		x.SetRow(k, convolveReflect(row, kernel))
	}
}

func convolveReflect(xs, kernel []float64) []float64 {
	n := len(xs)
	radius := len(kernel) / 2
	out := make([]float64, n)
	for i := range out {
		var s float64
		for j, w := range kernel {
			s += w * xs[reflect(i+j-radius, n)]
		}
		out[i] = s
	}
	return out
}

// reflect maps i onto [0, n) as d c b a | a b c d | d c b a.
func reflect(i, n int) int {
	i %= 2 * n
	if i < 0 {
		i += 2 * n
	}
	if i >= n {
		i = 2*n - 1 - i
	}
	return i
}
