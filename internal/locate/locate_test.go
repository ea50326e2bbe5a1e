package locate

import (
	"bytes"
	"testing"

	"github.com/robert-malhotra/go-pd0/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T, count int, prefix []byte) ([]byte, []int64) {
	t.Helper()
	ens := testutil.Ensembles(testutil.DefaultProfile(), count)
	data := append([]byte(nil), prefix...)
	offsets := make([]int64, count)
	for i, e := range ens {
		offsets[i] = int64(len(data))
		data = append(data, testutil.Encode(t, e)...)
	}
	return data, offsets
}

func TestNextSkipsJunk(t *testing.T) {
	junk := []byte{0x00, 0x7F, 0x7F, 0x7F, 0x01, 0x02, 0x7F}
	data, offsets := fixture(t, 3, junk)
	l := New(bytes.NewReader(data), int64(len(data)))

	res := l.Next(0, false)
	require.Equal(t, Found, res.Outcome)
	assert.Equal(t, offsets[0], res.Offset)
	assert.Equal(t, uint32(1), res.Ensemble.Number())

	res = l.Next(res.Offset, true)
	require.Equal(t, Found, res.Outcome)
	assert.Equal(t, offsets[1], res.Offset)
}

func TestNextSmallWindow(t *testing.T) {
	data, offsets := fixture(t, 3, make([]byte, 1000))
	l := New(bytes.NewReader(data), int64(len(data)), WithWindow(7), WithMaxIter(1000))

	res := l.Next(0, false)
	require.Equal(t, Found, res.Outcome)
	assert.Equal(t, offsets[0], res.Offset)
}

func TestNextGivesUp(t *testing.T) {
	data := bytes.Repeat([]byte{0x7F, 0x7F, 0x00}, 100)
	l := New(bytes.NewReader(data), int64(len(data)))

	res := l.Next(0, false)
	assert.Equal(t, GaveUp, res.Outcome)
	assert.Equal(t, int64(len(data)), res.Offset)
	assert.Nil(t, res.Ensemble)

	res = l.Previous(int64(len(data)), false)
	assert.Equal(t, GaveUp, res.Outcome)
	assert.Equal(t, int64(0), res.Offset)
}

func TestNextIterationBudget(t *testing.T) {
	data, _ := fixture(t, 1, make([]byte, 500))
	l := New(bytes.NewReader(data), int64(len(data)), WithWindow(10), WithMaxIter(3))

	res := l.Next(0, false)
	assert.Equal(t, GaveUp, res.Outcome)
}

func TestPrevious(t *testing.T) {
	data, offsets := fixture(t, 3, []byte{0x01, 0x02})
	l := New(bytes.NewReader(data), int64(len(data)))

	res := l.Previous(int64(len(data)), false)
	require.Equal(t, Found, res.Outcome)
	assert.Equal(t, offsets[2], res.Offset)
	assert.Equal(t, uint32(3), res.Ensemble.Number())

	res = l.Previous(res.Offset, true)
	require.Equal(t, Found, res.Outcome)
	assert.Equal(t, offsets[1], res.Offset)

	res = l.Previous(offsets[1]+5, false)
	require.Equal(t, Found, res.Outcome)
	assert.Equal(t, offsets[1], res.Offset)
}

func TestNextPreviousRoundTrip(t *testing.T) {
	data, offsets := fixture(t, 4, []byte{0x00, 0x7F})
	l := New(bytes.NewReader(data), int64(len(data)), WithWindow(64), WithMaxIter(1000))

	for _, from := range []int64{0, 1, offsets[1] - 3, offsets[2] + 1, offsets[3]} {
		next := l.Next(from, false)
		require.Equal(t, Found, next.Outcome, "from %d", from)
		prev := l.Previous(next.Offset, false)
		require.Equal(t, Found, prev.Outcome)
		assert.Equal(t, next.Offset, prev.Offset, "from %d", from)
	}
}

func TestSeek(t *testing.T) {
	data, offsets := fixture(t, 6, []byte{0xAA, 0xBB, 0xCC})
	l := New(bytes.NewReader(data), int64(len(data)))
	ix := Index{First: 1, Origin: offsets[0], Stride: offsets[1] - offsets[0], Count: 6}

	for target := 1; target <= 6; target++ {
		res, err := l.Seek(ix, target)
		require.NoError(t, err, "target %d", target)
		assert.Equal(t, offsets[target-1], res.Offset)
	}

	// A badly wrong stride still converges by stepping.
	wide := ix
	wide.Stride *= 3
	res, err := l.Seek(wide, 2)
	require.NoError(t, err)
	assert.Equal(t, offsets[1], res.Offset)

	_, err = l.Seek(ix, 7)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = l.Seek(ix, 0)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSeekMissingEnsemble(t *testing.T) {
	p := testutil.DefaultProfile()
	ens := testutil.Ensembles(p, 5)
	data := testutil.Encode(t, ens[0], ens[1], ens[3], ens[4])
	l := New(bytes.NewReader(data), int64(len(data)))
	ix := Index{First: 1, Stride: ens[0].Size(), Count: 5}

	_, err := l.Seek(ix, 3)
	assert.ErrorIs(t, err, ErrNotFound)

	res, err := l.Seek(ix, 4)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), res.Ensemble.Number())
}

// Only the first ensemble carries bottom track, so a stride taken from it
// overshoots by more than the window budget of a single search.
func TestSeekMixedEnsembleSizes(t *testing.T) {
	const count = 1000
	p := testutil.DefaultProfile()
	p.BottomTrack = false
	ens := testutil.Ensembles(p, count)
	withBT := testutil.DefaultProfile()
	ens[0] = testutil.Ensemble(withBT, 1, testutil.Epoch)

	var data []byte
	offsets := make([]int64, count)
	for i, e := range ens {
		offsets[i] = int64(len(data))
		data = append(data, testutil.Encode(t, e)...)
	}
	require.Greater(t, ens[0].Size(), ens[1].Size())

	l := New(bytes.NewReader(data), int64(len(data)))
	ix := Index{First: 1, Stride: ens[0].Size(), Count: count}
	for _, target := range []int{2, 350, 500, 777, 999, count} {
		res, err := l.Seek(ix, target)
		require.NoError(t, err, "target %d", target)
		assert.Equal(t, offsets[target-1], res.Offset, "target %d", target)
	}
}

func TestRelative(t *testing.T) {
	assert.Equal(t, 1, Relative(10, 10))
	assert.Equal(t, 6, Relative(15, 10))
	assert.Equal(t, 3, Relative(1, 65535))
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "found", Found.String())
	assert.Equal(t, "gave up", GaveUp.String())
}
