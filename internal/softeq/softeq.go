// Package softeq provides tolerance-based floating-point comparison for
// the conversion validation pass.
package softeq

import "math"

// Default tolerances for double precision values.
const (
	// DefaultRel is the default relative tolerance.
	DefaultRel = 1.0e-12
	// DefaultAbs is the default absolute threshold for values near zero.
	DefaultAbs = 1.0e-14
)

// Comparer compares floating point values using an absolute threshold for
// values near zero and a relative tolerance for values far from zero.
//
// The comparison is:
//
//	|a - b| < max(abs, rel * max(|a|, |b|))
//
// Eq is commutative: Eq(a, b) always equals Eq(b, a). It returns false if
// either value is NaN. Two infinities of the same sign also compare
// unequal, because relative error is meaningless there; callers that want
// infinity-equality must test `a == b` separately.
type Comparer struct {
	rel float64
	abs float64
}

// New returns a Comparer with the default relative and absolute tolerances.
func New() Comparer {
	return Comparer{rel: DefaultRel, abs: DefaultAbs}
}

// NewRel returns a Comparer with the given relative tolerance and an
// absolute threshold scaled proportionally from the defaults.
// Panics if rel is not positive.
func NewRel(rel float64) Comparer {
	return NewRelAbs(rel, rel*(DefaultAbs/DefaultRel))
}

// NewRelAbs returns a Comparer with both tolerances given explicitly.
// Panics if either tolerance is not positive.
func NewRelAbs(rel, abs float64) Comparer {
	if !(rel > 0) {
		panic("softeq: relative tolerance must be positive")
	}
	if !(abs > 0) {
		panic("softeq: absolute threshold must be positive")
	}
	return Comparer{rel: rel, abs: abs}
}

// Rel returns the relative tolerance.
func (c Comparer) Rel() float64 { return c.rel }

// Abs returns the absolute threshold.
func (c Comparer) Abs() float64 { return c.abs }

// Eq reports whether a and b are equal within the configured tolerances.
func (c Comparer) Eq(a, b float64) bool {
	rel := c.rel * math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) < math.Max(c.abs, rel)
}
