package pd0_test

import (
	"math"
	"testing"
	"time"

	"github.com/robert-malhotra/go-pd0/internal/ensemble"
	"github.com/robert-malhotra/go-pd0/internal/testutil"
	"github.com/robert-malhotra/go-pd0/pd0"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVelocity(t *testing.T) {
	ds := openThree(t, func(ens []*ensemble.Ensemble) {
		ens[1].Velocity[2][0] = ensemble.VelocitySentinel
		ens[2].Velocity[4][1] = -ensemble.VelocitySentinel - 1
	})

	vel, err := ds.Velocity()
	require.NoError(t, err)

	r, c := vel.U.Dims()
	assert.Equal(t, 5, r)
	assert.Equal(t, 3, c)

	assert.InDelta(t, 0.100, vel.U.At(0, 0), 1e-12)
	assert.InDelta(t, 0.101, vel.V.At(0, 0), 1e-12)
	assert.InDelta(t, 0.102, vel.Z.At(0, 0), 1e-12)
	assert.InDelta(t, 0.313, vel.Error.At(1, 2), 1e-12)
	assert.True(t, math.IsNaN(vel.U.At(2, 1)))
	assert.InDelta(t, 32.767, vel.V.At(4, 2), 1e-12)

	// one second between ensembles, last interval repeated
	assert.InDelta(t, vel.U.At(3, 2), vel.DU.At(3, 2), 1e-12)
	assert.InDelta(t, vel.Z.At(1, 0), vel.DZ.At(1, 0), 1e-12)
	assert.True(t, math.IsNaN(vel.DU.At(2, 1)))
}

func TestVelocityIntervals(t *testing.T) {
	p := testutil.DefaultProfile()
	p.Step = 2 * time.Second
	path := writeEnsembles(t, testutil.Ensembles(p, 3)...)
	ds, err := pd0.Open(path, quiet())
	require.NoError(t, err)

	vel, err := ds.Velocity()
	require.NoError(t, err)
	for e := 0; e < 3; e++ {
		assert.InDelta(t, 2*vel.V.At(0, e), vel.DV.At(0, e), 1e-12)
	}
}

func TestVelocityMagneticDeviation(t *testing.T) {
	path := writeEnsembles(t, testutil.Ensembles(testutil.DefaultProfile(), 2)...)

	plain, err := pd0.Open(path, quiet())
	require.NoError(t, err)
	rotated, err := pd0.Open(path, quiet(), pd0.WithMagneticDeviation(90))
	require.NoError(t, err)

	a, err := plain.Velocity()
	require.NoError(t, err)
	b, err := rotated.Velocity()
	require.NoError(t, err)

	for k := 0; k < 5; k++ {
		for e := 0; e < 2; e++ {
			assert.InDelta(t, -a.V.At(k, e), b.U.At(k, e), 1e-9)
			assert.InDelta(t, a.U.At(k, e), b.V.At(k, e), 1e-9)
			assert.Equal(t, a.Z.At(k, e), b.Z.At(k, e))
		}
	}
}

func TestVelocityNeedsFourBeams(t *testing.T) {
	p := testutil.DefaultProfile()
	p.Beams = 3
	p.BottomTrack = false
	path := writeEnsembles(t, testutil.Ensembles(p, 2)...)
	ds, err := pd0.Open(path, quiet())
	require.NoError(t, err)

	_, err = ds.Velocity()
	assert.ErrorIs(t, err, pd0.ErrUnsupported)
}
