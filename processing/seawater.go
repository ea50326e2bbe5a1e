package processing

import (
	"math"

	"github.com/robert-malhotra/go-pd0/pd0"
)

// Depth converts pressure p in dbar to depth in m at the given latitude
// (degrees), using the UNESCO Technical Paper 44 formula for a standard
// ocean at 0 degrees C and 35 PSU.
func Depth(p, latitude float64) float64 {
	x := math.Sin(latitude/57.29578) * math.Sin(latitude/57.29578)
	g := 9.780318*(1+(5.2788e-3+2.36e-5*x)*x) + 1.092e-6*p
	return ((((-1.82e-15*p+2.279e-10)*p-2.2512e-5)*p + 9.72659) * p) / g
}

// DepthFromPressure returns the depth of every ensemble computed from the
// instrument's pressure sensor.
func DepthFromPressure(ds *pd0.Dataset, latitude float64) []float64 {
	out := ds.Pressure()
	for i, p := range out {
		out[i] = Depth(p, latitude)
	}
	return out
}

// Density returns seawater density in kg/m^3 from the UNESCO 1983 (EOS-80)
// equation of state. s is salinity in PSU, t temperature in degrees C and
// p pressure in dbar.
func Density(s, t, p float64) float64 {
	t2 := t * t
	t3 := t2 * t
	t4 := t3 * t
	t5 := t4 * t
	s32 := math.Pow(s, 1.5)
	bar := p / 10

	// one atmosphere
	rho := 999.842594 + 6.793952e-2*t - 9.095290e-3*t2 + 1.001685e-4*t3 - 1.120083e-6*t4 + 6.536332e-9*t5 +
		(8.24493e-1-4.0899e-3*t+7.6438e-5*t2-8.2467e-7*t3+5.3875e-9*t4)*s +
		(-5.72466e-3+1.0227e-4*t-1.6546e-6*t2)*s32 +
		4.8314e-4*s*s

	// secant bulk modulus
	kw := 19652.21 + 148.4206*t - 2.327105*t2 + 1.360477e-2*t3 - 5.155288e-5*t4
	aw := 3.239908 + 1.43713e-3*t + 1.16092e-4*t2 - 5.77905e-7*t3
	bw := 8.50935e-5 - 6.12293e-6*t + 5.2787e-8*t2
	k := kw +
		(54.6746-0.603459*t+1.09987e-2*t2-6.1670e-5*t3)*s +
		(7.944e-2+1.6483e-2*t-5.3009e-4*t2)*s32 +
		(aw+(2.2838e-3-1.0981e-5*t-1.6078e-6*t2)*s+1.91075e-4*s32)*bar +
		(bw+(-9.9348e-7+2.0816e-8*t+9.1697e-10*t2)*s)*bar*bar

	return rho / (1 - bar/k)
}
