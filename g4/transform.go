package g4

import "math"

// Point is a position or direction in 3D space, in mm.
type Point struct {
	X, Y, Z float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Rotation is a 3x3 rotation matrix in row-major order.
type Rotation [3][3]float64

// IdentityRotation returns the identity rotation.
func IdentityRotation() Rotation {
	return Rotation{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// RotationXYZ builds a rotation from successive rotations about the
// fixed x, y, and z axes (applied in that order), angles in radians.
func RotationXYZ(rx, ry, rz float64) Rotation {
	sx, cx := math.Sincos(rx)
	sy, cy := math.Sincos(ry)
	sz, cz := math.Sincos(rz)

	// Rz * Ry * Rx
	return Rotation{
		{cz * cy, cz*sy*sx - sz*cx, cz*sy*cx + sz*sx},
		{sz * cy, sz*sy*sx + cz*cx, sz*sy*cx - cz*sx},
		{-sy, cy * sx, cy * cx},
	}
}

// Apply returns the rotated point R*p.
func (r Rotation) Apply(p Point) Point {
	return Point{
		r[0][0]*p.X + r[0][1]*p.Y + r[0][2]*p.Z,
		r[1][0]*p.X + r[1][1]*p.Y + r[1][2]*p.Z,
		r[2][0]*p.X + r[2][1]*p.Y + r[2][2]*p.Z,
	}
}

// ApplyInverse returns Rᵀ*p. For orthonormal rotations the transpose is
// the inverse.
func (r Rotation) ApplyInverse(p Point) Point {
	return Point{
		r[0][0]*p.X + r[1][0]*p.Y + r[2][0]*p.Z,
		r[0][1]*p.X + r[1][1]*p.Y + r[2][1]*p.Z,
		r[0][2]*p.X + r[1][2]*p.Y + r[2][2]*p.Z,
	}
}

// IsIdentity reports whether the rotation is exactly the identity.
func (r Rotation) IsIdentity() bool {
	return r == IdentityRotation()
}

// Transform is a rigid placement transform: rotate, then translate.
type Transform struct {
	Rotation    Rotation
	Translation Point
}

// IdentityTransform returns the identity transform.
func IdentityTransform() Transform {
	return Transform{Rotation: IdentityRotation()}
}

// Translate returns a pure translation transform.
func Translate(x, y, z float64) Transform {
	return Transform{
		Rotation:    IdentityRotation(),
		Translation: Point{x, y, z},
	}
}

// Apply maps a point from the daughter frame into the mother frame.
func (t Transform) Apply(p Point) Point {
	return t.Rotation.Apply(p).Add(t.Translation)
}

// ApplyInverse maps a point from the mother frame into the daughter frame.
func (t Transform) ApplyInverse(p Point) Point {
	return t.Rotation.ApplyInverse(p.Sub(t.Translation))
}
