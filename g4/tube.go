package g4

import (
	"math"

	"github.com/erraggy/geomtools/geoerrors"
)

// Tubs is a cylindrical tube segment: a cylinder shell between RMin and
// RMax, half-length HZ, spanning azimuthal angles [SPhi, SPhi+DPhi].
type Tubs struct {
	named
	RMin, RMax float64 // inner and outer radius, mm
	HZ         float64 // half-length along z, mm
	SPhi, DPhi float64 // starting angle and angular extent, rad
}

// NewTubs creates a tube segment solid.
func NewTubs(name string, rmin, rmax, hz, sphi, dphi float64) (*Tubs, error) {
	if err := geoerrors.Validate(rmax > 0 && rmin >= 0 && rmin < rmax,
		"rmax > 0 && rmin >= 0 && rmin < rmax",
		"tube %q radii must satisfy 0 <= rmin < rmax (got %g, %g)", name, rmin, rmax); err != nil {
		return nil, err
	}
	if err := geoerrors.Validate(hz > 0, "hz > 0",
		"tube %q half-length must be positive (got %g)", name, hz); err != nil {
		return nil, err
	}
	if err := geoerrors.Validate(dphi > 0 && dphi <= 2*math.Pi,
		"dphi > 0 && dphi <= 2*pi",
		"tube %q angular extent must be in (0, 2*pi] (got %g)", name, dphi); err != nil {
		return nil, err
	}
	return &Tubs{named{name}, rmin, rmax, hz, sphi, dphi}, nil
}

// Capacity returns dphi·(rmax² − rmin²)·hz.
func (t *Tubs) Capacity() float64 {
	return t.DPhi * (t.RMax*t.RMax - t.RMin*t.RMin) * t.HZ
}

// Contains implements Container.
func (t *Tubs) Contains(p Point) bool {
	if p.Z < -t.HZ || p.Z > t.HZ {
		return false
	}
	r2 := p.X*p.X + p.Y*p.Y
	if r2 < t.RMin*t.RMin || r2 > t.RMax*t.RMax {
		return false
	}
	if t.DPhi >= 2*math.Pi {
		return true
	}
	return inPhiRange(t.SPhi, t.DPhi, math.Atan2(p.Y, p.X))
}

// BoundingBox implements Container.
func (t *Tubs) BoundingBox() (Point, Point) {
	// Conservative full-phi box; fine for sampling.
	return Point{-t.RMax, -t.RMax, -t.HZ}, Point{t.RMax, t.RMax, t.HZ}
}

// Cons is a cone segment between two z planes, with independent inner
// and outer radii at each plane and an azimuthal cut.
type Cons struct {
	named
	RMin1, RMax1 float64 // radii at -HZ, mm
	RMin2, RMax2 float64 // radii at +HZ, mm
	HZ           float64 // half-length along z, mm
	SPhi, DPhi   float64 // starting angle and angular extent, rad
}

// NewCons creates a cone segment solid.
func NewCons(name string, rmin1, rmax1, rmin2, rmax2, hz, sphi, dphi float64) (*Cons, error) {
	if err := geoerrors.Validate(
		rmin1 >= 0 && rmin2 >= 0 && rmax1 >= rmin1 && rmax2 >= rmin2 && (rmax1 > 0 || rmax2 > 0),
		"rmin <= rmax at both planes",
		"cone %q radii are inconsistent", name); err != nil {
		return nil, err
	}
	if err := geoerrors.Validate(hz > 0, "hz > 0",
		"cone %q half-length must be positive (got %g)", name, hz); err != nil {
		return nil, err
	}
	if err := geoerrors.Validate(dphi > 0 && dphi <= 2*math.Pi,
		"dphi > 0 && dphi <= 2*pi",
		"cone %q angular extent must be in (0, 2*pi] (got %g)", name, dphi); err != nil {
		return nil, err
	}
	return &Cons{named{name}, rmin1, rmax1, rmin2, rmax2, hz, sphi, dphi}, nil
}

// Capacity returns the frustum-shell volume scaled by the angular extent.
func (c *Cons) Capacity() float64 {
	outer := c.RMax1*c.RMax1 + c.RMax1*c.RMax2 + c.RMax2*c.RMax2
	inner := c.RMin1*c.RMin1 + c.RMin1*c.RMin2 + c.RMin2*c.RMin2
	return c.DPhi * c.HZ / 3 * (outer - inner)
}

// Contains implements Container.
func (c *Cons) Contains(p Point) bool {
	if p.Z < -c.HZ || p.Z > c.HZ {
		return false
	}
	// Interpolate radii at the point's z.
	f := (p.Z + c.HZ) / (2 * c.HZ)
	rmin := c.RMin1 + f*(c.RMin2-c.RMin1)
	rmax := c.RMax1 + f*(c.RMax2-c.RMax1)
	r2 := p.X*p.X + p.Y*p.Y
	if r2 < rmin*rmin || r2 > rmax*rmax {
		return false
	}
	if c.DPhi >= 2*math.Pi {
		return true
	}
	return inPhiRange(c.SPhi, c.DPhi, math.Atan2(p.Y, p.X))
}

// BoundingBox implements Container.
func (c *Cons) BoundingBox() (Point, Point) {
	r := math.Max(c.RMax1, c.RMax2)
	return Point{-r, -r, -c.HZ}, Point{r, r, c.HZ}
}
