package vecgeom

import "math"

// UnplacedTube is a cylindrical tube segment.
type UnplacedTube struct {
	RMin, RMax float64 // inner and outer radius, mm
	Z          float64 // half-length along z, mm
	SPhi, DPhi float64 // azimuthal start and extent, rad
}

// NewUnplacedTube creates a tube shape.
func NewUnplacedTube(rmin, rmax, z, sphi, dphi float64) (*UnplacedTube, error) {
	if err := check(rmax > 0 && rmin >= 0 && rmin < rmax,
		"tube radii must satisfy 0 <= rmin < rmax (got %g, %g)", rmin, rmax); err != nil {
		return nil, err
	}
	if err := check(z > 0 && dphi > 0 && dphi <= 2*math.Pi,
		"tube extent is invalid (z %g, dphi %g)", z, dphi); err != nil {
		return nil, err
	}
	return &UnplacedTube{rmin, rmax, z, sphi, dphi}, nil
}

func (t *UnplacedTube) Capacity() float64 {
	return t.DPhi / 2 * (t.RMax + t.RMin) * (t.RMax - t.RMin) * 2 * t.Z
}

// UnplacedCone is a cone segment between two z planes.
type UnplacedCone struct {
	RMin1, RMax1 float64 // radii at -z, mm
	RMin2, RMax2 float64 // radii at +z, mm
	Z            float64 // half-length along z, mm
	SPhi, DPhi   float64 // azimuthal start and extent, rad
}

// NewUnplacedCone creates a cone shape.
func NewUnplacedCone(rmin1, rmax1, rmin2, rmax2, z, sphi, dphi float64) (*UnplacedCone, error) {
	if err := check(rmin1 >= 0 && rmin2 >= 0 && rmax1 >= rmin1 && rmax2 >= rmin2 && (rmax1 > 0 || rmax2 > 0),
		"cone radii are inconsistent"); err != nil {
		return nil, err
	}
	if err := check(z > 0 && dphi > 0 && dphi <= 2*math.Pi,
		"cone extent is invalid (z %g, dphi %g)", z, dphi); err != nil {
		return nil, err
	}
	return &UnplacedCone{rmin1, rmax1, rmin2, rmax2, z, sphi, dphi}, nil
}

func (c *UnplacedCone) Capacity() float64 {
	frustum := func(r1, r2 float64) float64 {
		return (r1*r1 + r2*r2 + r1*r2) * 2 * c.Z / 3
	}
	return c.DPhi / 2 * (frustum(c.RMax1, c.RMax2) - frustum(c.RMin1, c.RMin2))
}

// UnplacedSphere is a spherical shell segment.
type UnplacedSphere struct {
	RMin, RMax     float64 // inner and outer radius, mm
	SPhi, DPhi     float64 // azimuthal start and extent, rad
	STheta, DTheta float64 // polar start and extent, rad
}

// NewUnplacedSphere creates a spherical shell shape.
func NewUnplacedSphere(rmin, rmax, sphi, dphi, stheta, dtheta float64) (*UnplacedSphere, error) {
	if err := check(rmax > 0 && rmin >= 0 && rmin < rmax,
		"sphere radii must satisfy 0 <= rmin < rmax (got %g, %g)", rmin, rmax); err != nil {
		return nil, err
	}
	if err := check(dphi > 0 && dphi <= 2*math.Pi,
		"sphere azimuthal extent is invalid (got %g)", dphi); err != nil {
		return nil, err
	}
	if err := check(stheta >= 0 && dtheta > 0 && stheta+dtheta <= math.Pi,
		"sphere polar range is invalid (start %g extent %g)", stheta, dtheta); err != nil {
		return nil, err
	}
	return &UnplacedSphere{rmin, rmax, sphi, dphi, stheta, dtheta}, nil
}

func (s *UnplacedSphere) Capacity() float64 {
	shell := (s.RMax*s.RMax*s.RMax - s.RMin*s.RMin*s.RMin) / 3
	polar := math.Cos(s.STheta) - math.Cos(s.STheta+s.DTheta)
	return s.DPhi * shell * polar
}

// UnplacedOrb is a full solid sphere.
type UnplacedOrb struct {
	R float64 // radius, mm
}

// NewUnplacedOrb creates a full-sphere shape.
func NewUnplacedOrb(r float64) (*UnplacedOrb, error) {
	if err := check(r > 0, "orb radius must be positive (got %g)", r); err != nil {
		return nil, err
	}
	return &UnplacedOrb{r}, nil
}

func (o *UnplacedOrb) Capacity() float64 {
	return 4.0 / 3.0 * math.Pi * o.R * o.R * o.R
}

// UnplacedParaboloid is a paraboloid of revolution truncated by two z
// planes.
type UnplacedParaboloid struct {
	RLo, RHi float64 // radii at -z and +z, mm
	Z        float64 // half-length along z, mm
}

// NewUnplacedParaboloid creates a paraboloid shape.
func NewUnplacedParaboloid(rlo, rhi, z float64) (*UnplacedParaboloid, error) {
	if err := check(rlo >= 0 && rhi > rlo && z > 0,
		"paraboloid parameters are invalid (rlo %g, rhi %g, z %g)", rlo, rhi, z); err != nil {
		return nil, err
	}
	return &UnplacedParaboloid{rlo, rhi, z}, nil
}

func (p *UnplacedParaboloid) Capacity() float64 {
	// pi/2 * (rlo^2 + rhi^2) * full height
	return math.Pi / 2 * (p.RLo*p.RLo + p.RHi*p.RHi) * 2 * p.Z
}

// UnplacedEllipsoid is an axis-aligned ellipsoid with optional z cuts.
type UnplacedEllipsoid struct {
	DX, DY, DZ          float64 // semi-axes, mm
	ZBottomCut, ZTopCut float64
}

// NewUnplacedEllipsoid creates an ellipsoid shape.
func NewUnplacedEllipsoid(dx, dy, dz, zBottomCut, zTopCut float64) (*UnplacedEllipsoid, error) {
	if err := check(dx > 0 && dy > 0 && dz > 0,
		"ellipsoid semi-axes must be positive (got %g, %g, %g)", dx, dy, dz); err != nil {
		return nil, err
	}
	if err := check(zBottomCut >= -dz && zTopCut <= dz && zBottomCut < zTopCut,
		"ellipsoid z cuts must lie within [-dz, dz] (got %g, %g)", zBottomCut, zTopCut); err != nil {
		return nil, err
	}
	return &UnplacedEllipsoid{dx, dy, dz, zBottomCut, zTopCut}, nil
}

func (e *UnplacedEllipsoid) Capacity() float64 {
	antideriv := func(z float64) float64 {
		u := z / e.DZ
		return e.DZ * u * (1 - u*u/3)
	}
	return math.Pi * e.DX * e.DY * (antideriv(e.ZTopCut) - antideriv(e.ZBottomCut))
}

// UnplacedEllipticalTube is a cylinder of elliptical cross section.
type UnplacedEllipticalTube struct {
	DX, DY float64 // cross-section semi-axes, mm
	DZ     float64 // half-length along z, mm
}

// NewUnplacedEllipticalTube creates an elliptical tube shape.
func NewUnplacedEllipticalTube(dx, dy, dz float64) (*UnplacedEllipticalTube, error) {
	if err := check(dx > 0 && dy > 0 && dz > 0,
		"elliptical tube dimensions must be positive (got %g, %g, %g)", dx, dy, dz); err != nil {
		return nil, err
	}
	return &UnplacedEllipticalTube{dx, dy, dz}, nil
}

func (e *UnplacedEllipticalTube) Capacity() float64 {
	return math.Pi * e.DX * e.DY * 2 * e.DZ
}

// UnplacedEllipticalCone is a truncated cone of elliptical cross
// section with surface (x/a)² + (y/b)² = (h - z)².
type UnplacedEllipticalCone struct {
	A, B float64 // slope semi-axes per mm of z
	H    float64 // apex height, mm
	ZCut float64 // half-height of the truncation, mm
}

// NewUnplacedEllipticalCone creates an elliptical cone shape.
func NewUnplacedEllipticalCone(a, b, h, zcut float64) (*UnplacedEllipticalCone, error) {
	if err := check(a > 0 && b > 0 && h > 0 && zcut > 0 && zcut <= h,
		"elliptical cone parameters are invalid (a %g, b %g, h %g, zcut %g)", a, b, h, zcut); err != nil {
		return nil, err
	}
	return &UnplacedEllipticalCone{a, b, h, zcut}, nil
}

func (e *UnplacedEllipticalCone) Capacity() float64 {
	cube := func(v float64) float64 { return v * v * v }
	return math.Pi / 3 * e.A * e.B * (cube(e.H+e.ZCut) - cube(e.H-e.ZCut))
}

// UnplacedHype is a tube bounded by hyperboloids of revolution.
type UnplacedHype struct {
	RMin, RMax  float64 // waist radii, mm
	StIn, StOut float64 // inner and outer stereo angles, rad
	Z           float64 // half-length along z, mm
}

// NewUnplacedHype creates a hyperboloid tube shape.
func NewUnplacedHype(rmin, rmax, stIn, stOut, z float64) (*UnplacedHype, error) {
	if err := check(rmax > 0 && rmin >= 0 && rmin < rmax,
		"hype radii must satisfy 0 <= rmin < rmax (got %g, %g)", rmin, rmax); err != nil {
		return nil, err
	}
	if err := check(z > 0, "hype half-length must be positive (got %g)", z); err != nil {
		return nil, err
	}
	return &UnplacedHype{rmin, rmax, stIn, stOut, z}, nil
}

func (h *UnplacedHype) Capacity() float64 {
	// Integral of pi*(r_out(z)^2 - r_in(z)^2) with r(z)^2 = r0^2 + tan^2(st)*z^2.
	wall := func(r0, st float64) float64 {
		t := math.Tan(st)
		return 2*h.Z*r0*r0 + t*t*2*h.Z*h.Z*h.Z/3
	}
	return math.Pi * (wall(h.RMax, h.StOut) - wall(h.RMin, h.StIn))
}
