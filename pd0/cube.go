package pd0

import (
	"fmt"
	"math"
	"slices"

	"github.com/robert-malhotra/go-pd0/internal/ensemble"
	"github.com/robert-malhotra/go-pd0/mask"
)

// Cube is a beams x bins x ensembles array of float64, stored flat in the
// order given by mask.Shape.Index.
type Cube struct {
	mask.Shape
	Data []float64
}

// NewCube allocates a zeroed cube.
func NewCube(s mask.Shape) Cube {
	return Cube{Shape: s, Data: make([]float64, s.Len())}
}

// At returns the value at (beam, bin, ens).
func (c Cube) At(beam, bin, ens int) float64 {
	return c.Data[c.Index(beam, bin, ens)]
}

// Set stores v at (beam, bin, ens).
func (c Cube) Set(beam, bin, ens int, v float64) {
	c.Data[c.Index(beam, bin, ens)] = v
}

// Clone returns a deep copy.
func (c Cube) Clone() Cube {
	return Cube{Shape: c.Shape, Data: slices.Clone(c.Data)}
}

// Field names an ensemble array.
type Field string

// Built-in fields decoded from the profile blocks.
const (
	FieldVelocity    Field = "VELOCITY"
	FieldCorrelation Field = "CORRELATION MAGNITUDE"
	FieldEcho        Field = "ECHO INTENSITY"
	FieldPercentGood Field = "PERCENT GOOD"

	// Derived fields written by package processing.
	FieldBackscatter   Field = "ABSOLUTE BACKSCATTER"
	FieldSignalToNoise Field = "SIGNAL TO NOISE RATIO"
	FieldFilteredEcho  Field = "FILTERED ECHO INTENSITY"
)

func builtin(f Field) bool {
	switch f {
	case FieldVelocity, FieldCorrelation, FieldEcho, FieldPercentGood:
		return true
	}
	return false
}

// EnsembleArray returns field as a cube. Samples of magnitude 32768 become
// NaN. With applyMask set, the active masks are applied to the copy.
func (d *Dataset) EnsembleArray(f Field, applyMask bool) (Cube, error) {
	if len(d.ensembles) == 0 {
		return Cube{}, ErrNotLoaded
	}

	var c Cube
	if builtin(f) {
		c = NewCube(d.Shape())
		for e, ens := range d.ensembles {
			for k := 0; k < c.Bins; k++ {
				for b := 0; b < c.Beams; b++ {
					c.Set(b, k, e, profileValue(ens, f, k, b))
				}
			}
		}
	} else {
		derived, ok := d.derived[f]
		if !ok {
			return Cube{}, fmt.Errorf("%q: %w", f, ErrUnknownField)
		}
		c = derived.Clone()
	}

	if applyMask {
		masked, err := d.Mask().Apply(c.Data)
		if err != nil {
			return Cube{}, err
		}
		c.Data = masked
	}
	return c, nil
}

func profileValue(e *ensemble.Ensemble, f Field, bin, beam int) float64 {
	var v float64
	switch f {
	case FieldVelocity:
		v = float64(e.Velocity[bin][beam])
	case FieldCorrelation:
		v = float64(e.Correlation[bin][beam])
	case FieldEcho:
		v = float64(e.Echo[bin][beam])
	case FieldPercentGood:
		v = float64(e.PercentGood[bin][beam])
	}
	if math.Abs(v) == -ensemble.VelocitySentinel {
		return math.NaN()
	}
	return v
}

// AddDerived registers a computed array under name. The ensemble list is
// never modified; derived arrays live beside it.
func (d *Dataset) AddDerived(name Field, c Cube) error {
	if builtin(name) {
		return fmt.Errorf("%q: %w", name, ErrFieldExists)
	}
	if c.Shape != d.Shape() || len(c.Data) != c.Len() {
		return fmt.Errorf("%q is %v, dataset is %v: %w", name, c.Shape, d.Shape(), ErrShape)
	}
	d.derived[name] = c.Clone()
	return nil
}

// Fields returns the built-in and derived field names available.
func (d *Dataset) Fields() []Field {
	out := []Field{FieldVelocity, FieldCorrelation, FieldEcho, FieldPercentGood}
	for name := range d.derived {
		out = append(out, name)
	}
	slices.Sort(out[4:])
	return out
}
