package mask

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shape = Shape{Beams: 2, Bins: 3, Ensembles: 2}

func ramp() []float64 {
	x := make([]float64, shape.Len())
	for i := range x {
		x[i] = float64(i)
	}
	return x
}

func keepAllBut(idx ...int) []bool {
	keep := make([]bool, shape.Len())
	for i := range keep {
		keep[i] = true
	}
	for _, i := range idx {
		keep[i] = false
	}
	return keep
}

func TestDefineShape(t *testing.T) {
	e := New(shape)
	err := e.Define("short", make([]bool, 5), true)
	assert.ErrorIs(t, err, ErrShape)

	err = e.Define("", keepAllBut(), true)
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestApply(t *testing.T) {
	e := New(shape)
	require.NoError(t, e.Define("a", keepAllBut(0, 5), true))

	out, err := e.Apply(ramp())
	require.NoError(t, err)
	assert.True(t, math.IsNaN(out[0]))
	assert.True(t, math.IsNaN(out[5]))
	assert.Equal(t, 1.0, out[1])

	_, err = e.Apply(make([]float64, 3))
	assert.ErrorIs(t, err, ErrShape)
}

func TestApplyDoesNotMutate(t *testing.T) {
	e := New(shape)
	keep := keepAllBut(2)
	require.NoError(t, e.Define("a", keep, true))
	keep[3] = false

	x := ramp()
	out, err := e.Apply(x)
	require.NoError(t, err)
	assert.Equal(t, 2.0, x[2])
	assert.Equal(t, 3.0, out[3])
}

func TestSetStatus(t *testing.T) {
	e := New(shape)
	require.NoError(t, e.Define("a", keepAllBut(0), true))
	require.NoError(t, e.Define("b", keepAllBut(1), false))
	assert.Equal(t, []string{"a"}, e.Active())

	require.NoError(t, e.SetStatus(true, "b"))
	assert.Equal(t, []string{"a", "b"}, e.Active())

	require.NoError(t, e.SetStatus(false))
	assert.Empty(t, e.Active())

	require.NoError(t, e.SetStatus(true, All))
	assert.Equal(t, []string{"a", "b"}, e.Active())

	err := e.SetStatus(false, "a", "missing")
	assert.ErrorIs(t, err, ErrUnknownMask)
	assert.Equal(t, []string{"a", "b"}, e.Active(), "failed call must not change state")
}

func TestCommutative(t *testing.T) {
	masks := map[string][]bool{
		"a": keepAllBut(0, 1),
		"b": keepAllBut(1, 7),
		"c": keepAllBut(11),
	}
	orders := [][]string{{"a", "b", "c"}, {"c", "a", "b"}, {"b", "c", "a"}}

	var first []float64
	for _, order := range orders {
		e := New(shape)
		for _, name := range order {
			require.NoError(t, e.Define(name, masks[name], false))
		}
		for _, name := range order {
			require.NoError(t, e.SetStatus(true, name))
		}
		out, err := e.Apply(ramp())
		require.NoError(t, err)
		if first == nil {
			first = out
			continue
		}
		for i := range out {
			assert.Equal(t, math.IsNaN(first[i]), math.IsNaN(out[i]), "cell %d", i)
		}
	}
}

func TestRemoveAndGet(t *testing.T) {
	e := New(shape)
	require.NoError(t, e.Define("a", keepAllBut(0), true))
	require.NoError(t, e.Define("b", keepAllBut(1), true))

	keep, active, err := e.Get("a")
	require.NoError(t, err)
	assert.True(t, active)
	assert.False(t, keep[0])

	require.NoError(t, e.Remove("a"))
	assert.Equal(t, []string{"b"}, e.Names())
	assert.ErrorIs(t, e.Remove("a"), ErrUnknownMask)
	_, _, err = e.Get("a")
	assert.ErrorIs(t, err, ErrUnknownMask)
}

func TestShapeIndex(t *testing.T) {
	assert.Equal(t, 0, shape.Index(0, 0, 0))
	assert.Equal(t, 1, shape.Index(0, 0, 1))
	assert.Equal(t, 2, shape.Index(0, 1, 0))
	assert.Equal(t, 6, shape.Index(1, 0, 0))
	assert.Equal(t, 11, shape.Index(1, 2, 1))
}
