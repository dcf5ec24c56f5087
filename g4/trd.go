package g4

import (
	"github.com/erraggy/geomtools/geoerrors"
)

// Trd is a trapezoid with the x and y dimensions varying linearly along
// z and faces perpendicular to the axes.
type Trd struct {
	named
	DX1, DX2 float64 // half-lengths along x at -dz and +dz, mm
	DY1, DY2 float64 // half-lengths along y at -dz and +dz, mm
	DZ       float64 // half-length along z, mm
}

// NewTrd creates a trapezoid solid.
func NewTrd(name string, dx1, dx2, dy1, dy2, dz float64) (*Trd, error) {
	if err := geoerrors.Validate(dx1 >= 0 && dx2 >= 0 && dy1 >= 0 && dy2 >= 0 && dz > 0,
		"dx1, dx2, dy1, dy2 >= 0 && dz > 0",
		"trd %q dimensions are invalid", name); err != nil {
		return nil, err
	}
	if err := geoerrors.Validate(dx1+dx2 > 0 && dy1+dy2 > 0,
		"dx1+dx2 > 0 && dy1+dy2 > 0",
		"trd %q would be degenerate", name); err != nil {
		return nil, err
	}
	return &Trd{named{name}, dx1, dx2, dy1, dy2, dz}, nil
}

// Capacity uses the prismatoid formula: both cross-section dimensions are
// linear in z, so the mid-section correction is exact.
func (t *Trd) Capacity() float64 {
	a1 := 4 * t.DX1 * t.DY1
	a2 := 4 * t.DX2 * t.DY2
	am := (t.DX1 + t.DX2) * (t.DY1 + t.DY2)
	return 2 * t.DZ / 6 * (a1 + a2 + 4*am)
}

// Contains implements Container.
func (t *Trd) Contains(p Point) bool {
	if p.Z < -t.DZ || p.Z > t.DZ {
		return false
	}
	f := (p.Z + t.DZ) / (2 * t.DZ)
	dx := t.DX1 + f*(t.DX2-t.DX1)
	dy := t.DY1 + f*(t.DY2-t.DY1)
	return p.X >= -dx && p.X <= dx && p.Y >= -dy && p.Y <= dy
}

// BoundingBox implements Container.
func (t *Trd) BoundingBox() (Point, Point) {
	dx := max(t.DX1, t.DX2)
	dy := max(t.DY1, t.DY2)
	return Point{-dx, -dy, -t.DZ}, Point{dx, dy, t.DZ}
}

// Trap is a general trapezoid: two trapezoidal faces at ±dz whose
// centers may be sheared relative to each other (Theta, Phi) and whose
// sides may be tilted (Alpha1, Alpha2).
type Trap struct {
	named
	DZ         float64 // half-length along z, mm
	Theta, Phi float64 // polar and azimuthal shear angles, rad
	DY1        float64 // half-length along y of the face at -dz, mm
	DX1, DX2   float64 // half-lengths along x at -dz, at -dy1 and +dy1, mm
	Alpha1     float64 // tilt of the -dz face, rad
	DY2        float64 // half-length along y of the face at +dz, mm
	DX3, DX4   float64 // half-lengths along x at +dz, at -dy2 and +dy2, mm
	Alpha2     float64 // tilt of the +dz face, rad
}

// NewTrap creates a general trapezoid solid.
func NewTrap(name string, dz, theta, phi, dy1, dx1, dx2, alpha1, dy2, dx3, dx4, alpha2 float64) (*Trap, error) {
	if err := geoerrors.Validate(dz > 0 && dy1 > 0 && dy2 > 0,
		"dz > 0 && dy1 > 0 && dy2 > 0",
		"trap %q half-lengths must be positive", name); err != nil {
		return nil, err
	}
	if err := geoerrors.Validate(dx1 >= 0 && dx2 >= 0 && dx3 >= 0 && dx4 >= 0 && dx1+dx2+dx3+dx4 > 0,
		"dx1..dx4 >= 0 and not all zero",
		"trap %q x half-lengths are invalid", name); err != nil {
		return nil, err
	}
	return &Trap{named{name}, dz, theta, phi, dy1, dx1, dx2, alpha1, dy2, dx3, dx4, alpha2}, nil
}

// Capacity uses the prismatoid formula. Shear and tilt angles do not
// change the volume.
func (t *Trap) Capacity() float64 {
	a1 := 2 * t.DY1 * (t.DX1 + t.DX2)
	a2 := 2 * t.DY2 * (t.DX3 + t.DX4)
	am := (t.DY1 + t.DY2) * (t.DX1 + t.DX3 + t.DX2 + t.DX4) / 2
	return 2 * t.DZ / 6 * (a1 + a2 + 4*am)
}

// Para is a parallelepiped: a box sheared by Alpha in the x-y plane and
// by (Theta, Phi) along z.
type Para struct {
	named
	DX, DY, DZ float64 // half-lengths, mm
	Alpha      float64 // y-shear angle, rad
	Theta, Phi float64 // z-shear angles, rad
}

// NewPara creates a parallelepiped solid.
func NewPara(name string, dx, dy, dz, alpha, theta, phi float64) (*Para, error) {
	if err := geoerrors.Validate(dx > 0 && dy > 0 && dz > 0,
		"dx > 0 && dy > 0 && dz > 0",
		"para %q half-lengths must be positive (got %g, %g, %g)", name, dx, dy, dz); err != nil {
		return nil, err
	}
	return &Para{named{name}, dx, dy, dz, alpha, theta, phi}, nil
}

// Capacity returns 8·dx·dy·dz; shear preserves volume.
func (p *Para) Capacity() float64 {
	return 8 * p.DX * p.DY * p.DZ
}
