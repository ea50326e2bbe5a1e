package geometry

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// RotX returns the 3x3 matrix rotating a column vector by deg degrees about
// the x axis.
func RotX(deg float64) *mat.Dense {
	s, c := math.Sincos(deg * math.Pi / 180)
	return mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	})
}

// RotY returns the rotation about the y axis.
func RotY(deg float64) *mat.Dense {
	s, c := math.Sincos(deg * math.Pi / 180)
	return mat.NewDense(3, 3, []float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	})
}

// RotZ returns the rotation about the z axis.
func RotZ(deg float64) *mat.Dense {
	s, c := math.Sincos(deg * math.Pi / 180)
	return mat.NewDense(3, 3, []float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	})
}

// Compose returns the product m[0] * m[1] * ... * m[n-1]. With no arguments
// it returns the identity.
func Compose(m ...mat.Matrix) *mat.Dense {
	out := identity()
	for _, r := range m {
		var next mat.Dense
		next.Mul(out, r)
		out = &next
	}
	return out
}

// Orientation returns the platform rotation Rx(roll) * Rz(heading) * Ry(pitch).
func Orientation(pitch, roll, heading float64) *mat.Dense {
	return Compose(RotX(roll), RotZ(heading), RotY(pitch))
}

func identity() *mat.Dense {
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
}

// vec3 is a point or displacement in metres.
type vec3 [3]float64

func (v vec3) add(w vec3) vec3 {
	return vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// apply returns m * v, treating v as a column vector.
func (v vec3) apply(m mat.Matrix) vec3 {
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(3, v[:]))
	return vec3{out.AtVec(0), out.AtVec(1), out.AtVec(2)}
}

// times returns v * m, treating v as a row vector.
func (v vec3) times(m mat.Matrix) vec3 {
	return v.apply(m.T())
}
