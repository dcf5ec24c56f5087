package g4

import (
	"math"

	"github.com/erraggy/geomtools/geoerrors"
)

// Sphere is a spherical shell segment with radial, azimuthal, and polar
// cuts.
type Sphere struct {
	named
	RMin, RMax     float64 // inner and outer radius, mm
	SPhi, DPhi     float64 // azimuthal start and extent, rad
	STheta, DTheta float64 // polar start and extent, rad
}

// NewSphere creates a spherical shell solid.
func NewSphere(name string, rmin, rmax, sphi, dphi, stheta, dtheta float64) (*Sphere, error) {
	if err := geoerrors.Validate(rmax > 0 && rmin >= 0 && rmin < rmax,
		"rmax > 0 && rmin >= 0 && rmin < rmax",
		"sphere %q radii must satisfy 0 <= rmin < rmax (got %g, %g)", name, rmin, rmax); err != nil {
		return nil, err
	}
	if err := geoerrors.Validate(dphi > 0 && dphi <= 2*math.Pi,
		"dphi > 0 && dphi <= 2*pi",
		"sphere %q azimuthal extent must be in (0, 2*pi] (got %g)", name, dphi); err != nil {
		return nil, err
	}
	if err := geoerrors.Validate(stheta >= 0 && dtheta > 0 && stheta+dtheta <= math.Pi,
		"stheta >= 0 && dtheta > 0 && stheta+dtheta <= pi",
		"sphere %q polar range must lie within [0, pi] (got start %g extent %g)", name, stheta, dtheta); err != nil {
		return nil, err
	}
	return &Sphere{named{name}, rmin, rmax, sphi, dphi, stheta, dtheta}, nil
}

// Capacity returns (dphi/3)·(rmax³ − rmin³)·(cosθ₁ − cosθ₂).
func (s *Sphere) Capacity() float64 {
	radial := math.Pow(s.RMax, 3) - math.Pow(s.RMin, 3)
	polar := math.Cos(s.STheta) - math.Cos(s.STheta+s.DTheta)
	return s.DPhi / 3 * radial * polar
}

// Contains implements Container.
func (s *Sphere) Contains(p Point) bool {
	r2 := p.X*p.X + p.Y*p.Y + p.Z*p.Z
	if r2 < s.RMin*s.RMin || r2 > s.RMax*s.RMax {
		return false
	}
	if s.DTheta < math.Pi {
		theta := math.Acos(p.Z / math.Sqrt(r2))
		if theta < s.STheta || theta > s.STheta+s.DTheta {
			return false
		}
	}
	if s.DPhi >= 2*math.Pi {
		return true
	}
	return inPhiRange(s.SPhi, s.DPhi, math.Atan2(p.Y, p.X))
}

// BoundingBox implements Container.
func (s *Sphere) BoundingBox() (Point, Point) {
	r := s.RMax
	return Point{-r, -r, -r}, Point{r, r, r}
}

// Orb is a full solid sphere.
type Orb struct {
	named
	R float64 // radius, mm
}

// NewOrb creates a full-sphere solid.
func NewOrb(name string, r float64) (*Orb, error) {
	if err := geoerrors.Validate(r > 0, "r > 0",
		"orb %q radius must be positive (got %g)", name, r); err != nil {
		return nil, err
	}
	return &Orb{named{name}, r}, nil
}

// Capacity returns (4π/3)·r³.
func (o *Orb) Capacity() float64 {
	return 4 * math.Pi / 3 * math.Pow(o.R, 3)
}

// Contains implements Container.
func (o *Orb) Contains(p Point) bool {
	return p.X*p.X+p.Y*p.Y+p.Z*p.Z <= o.R*o.R
}

// BoundingBox implements Container.
func (o *Orb) BoundingBox() (Point, Point) {
	return Point{-o.R, -o.R, -o.R}, Point{o.R, o.R, o.R}
}

// Ellipsoid is an axis-aligned ellipsoid, optionally truncated by planes
// perpendicular to z.
type Ellipsoid struct {
	named
	AX, BY, CZ float64 // semi-axes, mm
	ZBottom    float64 // lower z cut (>= -CZ)
	ZTop       float64 // upper z cut (<= +CZ)
}

// NewEllipsoid creates an ellipsoid solid. Pass zBottom = -cz and
// zTop = cz for an uncut ellipsoid.
func NewEllipsoid(name string, ax, by, cz, zBottom, zTop float64) (*Ellipsoid, error) {
	if err := geoerrors.Validate(ax > 0 && by > 0 && cz > 0,
		"ax > 0 && by > 0 && cz > 0",
		"ellipsoid %q semi-axes must be positive (got %g, %g, %g)", name, ax, by, cz); err != nil {
		return nil, err
	}
	if err := geoerrors.Validate(zBottom >= -cz && zTop <= cz && zBottom < zTop,
		"-cz <= zBottom < zTop <= cz",
		"ellipsoid %q z cuts must lie within [-cz, cz] (got %g, %g)", name, zBottom, zTop); err != nil {
		return nil, err
	}
	return &Ellipsoid{named{name}, ax, by, cz, zBottom, zTop}, nil
}

// Capacity integrates the elliptic cross-section between the z cuts.
func (e *Ellipsoid) Capacity() float64 {
	// V = pi*ax*by * [ z - z^3/(3 cz^2) ] between the cuts
	f := func(z float64) float64 {
		return z - z*z*z/(3*e.CZ*e.CZ)
	}
	return math.Pi * e.AX * e.BY * (f(e.ZTop) - f(e.ZBottom))
}

// EllipticalTube is a cylinder of elliptical cross section.
type EllipticalTube struct {
	named
	DX, DY float64 // semi-axes of the cross section, mm
	HZ     float64 // half-length along z, mm
}

// NewEllipticalTube creates an elliptical tube solid.
func NewEllipticalTube(name string, dx, dy, hz float64) (*EllipticalTube, error) {
	if err := geoerrors.Validate(dx > 0 && dy > 0 && hz > 0,
		"dx > 0 && dy > 0 && hz > 0",
		"elliptical tube %q dimensions must be positive (got %g, %g, %g)", name, dx, dy, hz); err != nil {
		return nil, err
	}
	return &EllipticalTube{named{name}, dx, dy, hz}, nil
}

// Capacity returns 2π·dx·dy·hz.
func (e *EllipticalTube) Capacity() float64 {
	return 2 * math.Pi * e.DX * e.DY * e.HZ
}

// Contains implements Container.
func (e *EllipticalTube) Contains(p Point) bool {
	if p.Z < -e.HZ || p.Z > e.HZ {
		return false
	}
	x := p.X / e.DX
	y := p.Y / e.DY
	return x*x+y*y <= 1
}

// BoundingBox implements Container.
func (e *EllipticalTube) BoundingBox() (Point, Point) {
	return Point{-e.DX, -e.DY, -e.HZ}, Point{e.DX, e.DY, e.HZ}
}

// EllipticalCone is a cone of elliptical cross section. The surface
// satisfies (x/a)² + (y/b)² = (h − z)², truncated at |z| <= zcut.
type EllipticalCone struct {
	named
	A, B float64 // slope semi-axes (dimensionless scale per mm of z)
	H    float64 // apex height above the origin, mm
	ZCut float64 // half-height of the truncated cone, mm
}

// NewEllipticalCone creates an elliptical cone solid.
func NewEllipticalCone(name string, a, b, h, zcut float64) (*EllipticalCone, error) {
	if err := geoerrors.Validate(a > 0 && b > 0 && h > 0,
		"a > 0 && b > 0 && h > 0",
		"elliptical cone %q parameters must be positive (got %g, %g, %g)", name, a, b, h); err != nil {
		return nil, err
	}
	if err := geoerrors.Validate(zcut > 0 && zcut <= h,
		"0 < zcut <= h",
		"elliptical cone %q z cut must be in (0, h] (got %g)", name, zcut); err != nil {
		return nil, err
	}
	return &EllipticalCone{named{name}, a, b, h, zcut}, nil
}

// Capacity integrates the elliptic cross-section π·a·b·(h−z)² over the
// truncated range.
func (e *EllipticalCone) Capacity() float64 {
	lo := e.H + e.ZCut
	hi := e.H - e.ZCut
	return math.Pi * e.A * e.B / 3 * (lo*lo*lo - hi*hi*hi)
}
