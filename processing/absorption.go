package processing

import "math"

// soundSpeed is Medwin's approximation in m/s.
func soundSpeed(t, s, z float64) float64 {
	return 1449.2 + 4.6*t - 0.055*t*t + 0.00029*t*t*t + 0.0134*t*(s-35) + 0.016*z
}

// WaterAbsorption returns the seawater absorption coefficient in dB/m after
// Francois and Garrison (1982). t is temperature in degrees C, s salinity in
// PSU, z depth in m and f frequency in kHz.
func WaterAbsorption(t, s, z, f, pH float64) float64 {
	c := soundSpeed(t, s, z)

	// boric acid
	a1 := 8.68 / c * math.Pow(10, 0.78*pH-5)
	f1 := 2.8 * math.Sqrt(s/35) * math.Pow(10, 4-1245/(273+t))

	// magnesium sulphate
	a2 := 21.44 * s / c * (1 + 0.025*t)
	p2 := 1 - 1.37e-4*z + 6.2e-9*z*z
	f2 := 8.17 * math.Pow(10, 8-1990/(273+t)) / (1 + 0.0018*(s-35))

	// pure water
	var a3 float64
	if t <= 20 {
		a3 = 4.937e-4 - 2.59e-5*t + 9.11e-7*t*t - 1.5e-8*t*t*t
	} else {
		a3 = 3.964e-4 - 1.146e-5*t + 1.45e-7*t*t - 6.5e-8*t*t*t
	}
	p3 := 1 - 3.83e-5*z + 4.9e-10*z*z

	ff := f * f
	alpha := a1*f1*ff/(ff+f1*f1) + a2*p2*f2*ff/(ff+f2*f2) + a3*p3*ff
	return alpha / 1000
}

// Sediment describes a suspension of uniform particles.
type Sediment struct {
	ParticleDensity float64 // kg/m^3
	WaterDensity    float64 // kg/m^3
	Diameter        float64 // m
	Concentration   float64 // kg/m^3
}

// SedimentAbsorption returns the attenuation due to suspended sediment:
// viscous loss plus Rayleigh scattering. t, s, f and z are as for
// WaterAbsorption.
func SedimentAbsorption(sed Sediment, t, s, f, z float64) float64 {
	c := soundSpeed(t, s, z)
	nu := 40e-6 / (20 + t) // kinematic viscosity, m^2/s
	beta := math.Pi * f / nu * 0.5
	bd := beta * sed.Diameter
	delta := 0.5 * (1 + 9/bd)
	sigma := sed.ParticleDensity / sed.WaterDensity
	ss := 9 / (2 * bd) * (1 + 2/bd)
	k := 2 * math.Pi / c

	d := sed.Diameter
	return math.Pow(k, 4)*d*d*d/(96*sed.ParticleDensity) +
		k*(sigma-1)*(sigma-1)/(2*sed.ParticleDensity) +
		ss/(ss*ss+(sigma+delta)*(sigma+delta))*(20/math.Ln10)*sed.Concentration
}
