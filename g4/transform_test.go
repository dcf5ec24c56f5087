package g4

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotationRoundTrip(t *testing.T) {
	r := RotationXYZ(0.3, -0.7, 1.2)
	p := Point{1, -2, 3}

	q := r.ApplyInverse(r.Apply(p))
	assert.InDelta(t, p.X, q.X, 1e-12)
	assert.InDelta(t, p.Y, q.Y, 1e-12)
	assert.InDelta(t, p.Z, q.Z, 1e-12)
}

func TestRotationAxes(t *testing.T) {
	// A quarter turn about z sends x to y.
	r := RotationXYZ(0, 0, math.Pi/2)
	q := r.Apply(Point{1, 0, 0})
	assert.InDelta(t, 0, q.X, 1e-12)
	assert.InDelta(t, 1, q.Y, 1e-12)
	assert.InDelta(t, 0, q.Z, 1e-12)

	// A quarter turn about x sends y to z.
	r = RotationXYZ(math.Pi/2, 0, 0)
	q = r.Apply(Point{0, 1, 0})
	assert.InDelta(t, 0, q.X, 1e-12)
	assert.InDelta(t, 0, q.Y, 1e-12)
	assert.InDelta(t, 1, q.Z, 1e-12)
}

func TestIdentityRotation(t *testing.T) {
	assert.True(t, IdentityRotation().IsIdentity())
	assert.False(t, RotationXYZ(0.1, 0, 0).IsIdentity())
	assert.True(t, RotationXYZ(0, 0, 0).IsIdentity())
}

func TestTransformApply(t *testing.T) {
	tr := Transform{
		Rotation:    RotationXYZ(0, 0, math.Pi/2),
		Translation: Point{10, 0, 0},
	}
	q := tr.Apply(Point{1, 0, 0})
	assert.InDelta(t, 10, q.X, 1e-12)
	assert.InDelta(t, 1, q.Y, 1e-12)

	back := tr.ApplyInverse(q)
	assert.InDelta(t, 1, back.X, 1e-12)
	assert.InDelta(t, 0, back.Y, 1e-12)
}

func TestTranslate(t *testing.T) {
	tr := Translate(1, 2, 3)
	require.True(t, tr.Rotation.IsIdentity())
	assert.Equal(t, Point{2, 4, 6}, tr.Apply(Point{1, 2, 3}))
}
