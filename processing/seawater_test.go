package processing_test

import (
	"testing"

	"github.com/robert-malhotra/go-pd0/processing"
	"github.com/stretchr/testify/assert"
)

func TestDepth(t *testing.T) {
	// UNESCO 44 check value
	assert.InDelta(t, 9712.653, processing.Depth(10000, 30), 1e-3)
	assert.InDelta(t, 99.42654731, processing.Depth(100, 0), 1e-6)
	assert.Equal(t, 0.0, processing.Depth(0, 45))
}

func TestDepthFromPressure(t *testing.T) {
	ds := openDefault(t, 2)
	got := processing.DepthFromPressure(ds, 0)
	assert.InDeltaSlice(t, []float64{99.42654731, 99.42654731}, got, 1e-6)
}

func TestDensity(t *testing.T) {
	tests := []struct {
		s, t, p float64
		want    float64
	}{
		{0, 0, 0, 999.842594},
		{35, 0, 0, 1028.1063314},
		{35, 5, 0, 1027.6754653},
		{35, 25, 10000, 1062.5381718},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, processing.Density(tt.s, tt.t, tt.p), 1e-5, "S=%v T=%v p=%v", tt.s, tt.t, tt.p)
	}
}

func TestWaterAbsorption(t *testing.T) {
	assert.InDelta(t, 0.158936480949808, processing.WaterAbsorption(10, 35, 10, 600, 8), 1e-12)
	assert.InDelta(t, 0.029561805710335832, processing.WaterAbsorption(25, 35, 0, 300, 8), 1e-12)
	assert.Greater(t, processing.WaterAbsorption(10, 35, 10, 1200, 8), processing.WaterAbsorption(10, 35, 10, 600, 8))
}

func TestSedimentAbsorption(t *testing.T) {
	sed := processing.Sediment{ParticleDensity: 2650, WaterDensity: 1025, Diameter: 50e-6, Concentration: 0.1}
	assert.InEpsilon(t, 1.3616709366840851e-05, processing.SedimentAbsorption(sed, 10, 35, 600, 10), 1e-9)
}
