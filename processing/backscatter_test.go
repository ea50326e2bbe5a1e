package processing_test

import (
	"math"
	"testing"

	"github.com/robert-malhotra/go-pd0/internal/ensemble"
	"github.com/robert-malhotra/go-pd0/pd0"
	"github.com/robert-malhotra/go-pd0/processing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBackscatterParams(t *testing.T) {
	cfg := pd0.Config{System: ensemble.SystemConfig{FrequencyKHz: 600}}
	p, err := processing.DefaultBackscatterParams(cfg)
	require.NoError(t, err)
	assert.Equal(t, -139.09, p.C)
	assert.Equal(t, 0.178, p.Alpha)
	assert.Equal(t, 9.0, p.PowerDBW)
	assert.Equal(t, 39.0, p.NoiseFloor)
	assert.Equal(t, processing.DefaultKc, p.Kc)

	cfg.Bandwidth = 1
	cfg.System.FrequencyKHz = 300
	p, err = processing.DefaultBackscatterParams(cfg)
	require.NoError(t, err)
	assert.Equal(t, -149.14, p.C)
	assert.Equal(t, 0.068, p.Alpha)
	assert.Equal(t, 14.0, p.PowerDBW)

	cfg.System.FrequencyKHz = 1200
	_, err = processing.DefaultBackscatterParams(cfg)
	assert.ErrorIs(t, err, processing.ErrUnsupportedFrequency)

	pt3 := processing.PT3{Kc: [4]float64{0.4, 0.4, 0.4, 0.4}}
	assert.Equal(t, pt3.Kc, p.WithPT3(pt3).Kc)
	assert.Equal(t, processing.DefaultKc[0], p.Kc[0])
}

func TestAbsoluteBackscatter(t *testing.T) {
	ds := openDefault(t, 3)
	cfg, err := ds.Config()
	require.NoError(t, err)
	params, err := processing.DefaultBackscatterParams(cfg)
	require.NoError(t, err)

	sv, stn, err := processing.AbsoluteBackscatter(ds, params)
	require.NoError(t, err)
	assert.Equal(t, ds.Shape(), sv.Shape)

	// beam 1, bin 1: 50 counts at 1.76 m, 12.34 C, 1.13 m pulse
	assert.InDelta(t, -116.20681580516474, sv.At(0, 0, 0), 1e-9)
	assert.InDelta(t, 1.706512268069029, stn.At(0, 0, 0), 1e-9)
	// beam 4, bin 2: 54 counts at 2.76 m
	assert.InDelta(t, -109.26373221881605, sv.At(3, 1, 2), 1e-9)
	assert.InDelta(t, 3.162459299437569, stn.At(3, 1, 2), 1e-9)

	stored, err := ds.EnsembleArray(pd0.FieldBackscatter, false)
	require.NoError(t, err)
	assert.Equal(t, sv.Data, stored.Data)
	assert.Contains(t, ds.Fields(), pd0.FieldSignalToNoise)
}

func TestCountsToBackscatterBelowNoise(t *testing.T) {
	p := processing.BackscatterParams{C: -139.09, Kc: processing.DefaultKc, NoiseFloor: 39, Alpha: 0.178, PowerDBW: 9}
	sv, stn := processing.CountsToBackscatter(p, p.Kc[0], 39, 2, 10, 1)
	assert.True(t, math.IsInf(sv, -1), "Sv = %v", sv)
	assert.Equal(t, 0.0, stn)
}
