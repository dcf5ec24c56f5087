package softeq

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultComparer(t *testing.T) {
	eq := New()

	assert.Equal(t, DefaultRel, eq.Rel())
	assert.Equal(t, DefaultAbs, eq.Abs())

	assert.True(t, eq.Eq(1.0, 1.0))
	assert.True(t, eq.Eq(1.0, 1.0+1e-13))
	assert.False(t, eq.Eq(1.0, 1.0+1e-11))

	// Absolute threshold governs near zero.
	assert.True(t, eq.Eq(0.0, 1e-15))
	assert.False(t, eq.Eq(0.0, 1e-13))

	// Relative tolerance scales with magnitude.
	assert.True(t, eq.Eq(1e8, 1e8+1e-5))
	assert.False(t, eq.Eq(1e8, 1e8+1e-3))
}

func TestCommutativeAndReflexive(t *testing.T) {
	eq := New()
	values := []float64{0, 1e-20, 1e-3, 1, 3.14159, 1e8, -2.5, -1e-16}

	for _, a := range values {
		assert.True(t, eq.Eq(a, a), "Eq(%g, %g) must be reflexive", a, a)
		for _, b := range values {
			assert.Equal(t, eq.Eq(a, b), eq.Eq(b, a),
				"Eq must be commutative for %g, %g", a, b)
		}
	}
}

func TestNaNNeverEqual(t *testing.T) {
	eq := New()
	nan := math.NaN()

	for _, x := range []float64{0, 1, -1, math.Inf(1), math.Inf(-1), nan} {
		assert.False(t, eq.Eq(nan, x), "Eq(NaN, %g) must be false", x)
		assert.False(t, eq.Eq(x, nan), "Eq(%g, NaN) must be false", x)
	}
}

func TestSameSignedInfinityNotEqual(t *testing.T) {
	eq := New()
	inf := math.Inf(1)

	assert.False(t, eq.Eq(inf, inf))
	assert.False(t, eq.Eq(-inf, -inf))
	assert.False(t, eq.Eq(inf, -inf))
}

func TestCustomTolerances(t *testing.T) {
	eq := NewRelAbs(1e-3, 1.0)

	assert.True(t, eq.Eq(1000, 1000.5))
	assert.False(t, eq.Eq(1000, 1002))

	// Within the absolute band near zero.
	assert.True(t, eq.Eq(0.1, 0.9))

	scaled := NewRel(1e-6)
	assert.InDelta(t, 1e-6, scaled.Rel(), 1e-20)
	assert.InDelta(t, 1e-8, scaled.Abs(), 1e-20)
}

func TestInvalidTolerancesPanic(t *testing.T) {
	assert.Panics(t, func() { NewRelAbs(0, 1) })
	assert.Panics(t, func() { NewRelAbs(1, 0) })
	assert.Panics(t, func() { NewRelAbs(-1e-12, 1e-14) })
	assert.Panics(t, func() { NewRel(math.NaN()) })
}
