package g4

import (
	"math"

	"github.com/erraggy/geomtools/geoerrors"
)

// ZPlane is one z section of a Polycone or Polyhedra.
type ZPlane struct {
	Z    float64 // plane position, mm
	RMin float64 // inner radius at the plane, mm
	RMax float64 // outer radius at the plane, mm
}

// RZ is one vertex of a GenericPolycone profile in the r-z half-plane.
type RZ struct {
	R float64 // radial coordinate, mm (>= 0)
	Z float64 // axial coordinate, mm
}

// Polycone is a stack of cone-shell segments defined by z planes, with a
// common azimuthal cut.
type Polycone struct {
	named
	SPhi, DPhi float64 // azimuthal start and extent, rad
	Planes     []ZPlane
}

// NewPolycone creates a polycone solid from at least two z planes in
// strictly increasing z order.
func NewPolycone(name string, sphi, dphi float64, planes []ZPlane) (*Polycone, error) {
	if err := geoerrors.Validate(len(planes) >= 2, "len(planes) >= 2",
		"polycone %q needs at least two z planes (got %d)", name, len(planes)); err != nil {
		return nil, err
	}
	if err := geoerrors.Validate(dphi > 0 && dphi <= 2*math.Pi,
		"dphi > 0 && dphi <= 2*pi",
		"polycone %q angular extent must be in (0, 2*pi] (got %g)", name, dphi); err != nil {
		return nil, err
	}
	for i, p := range planes {
		if err := geoerrors.Validate(p.RMin >= 0 && p.RMax >= p.RMin,
			"0 <= rmin <= rmax",
			"polycone %q plane %d radii are inconsistent (got %g, %g)", name, i, p.RMin, p.RMax); err != nil {
			return nil, err
		}
		if i > 0 {
			if err := geoerrors.Validate(p.Z > planes[i-1].Z, "planes[i].Z > planes[i-1].Z",
				"polycone %q z planes must be strictly increasing", name); err != nil {
				return nil, err
			}
		}
	}
	return &Polycone{named{name}, sphi, dphi, append([]ZPlane(nil), planes...)}, nil
}

// Capacity sums the cone-shell frustum volume of each segment.
func (p *Polycone) Capacity() float64 {
	var v float64
	for i := 1; i < len(p.Planes); i++ {
		v += coneShellSegment(p.Planes[i-1], p.Planes[i], p.DPhi)
	}
	return v
}

// coneShellSegment is the volume of a conical shell between two z planes
// with linearly interpolated radii, scaled by the angular extent.
func coneShellSegment(a, b ZPlane, dphi float64) float64 {
	h := b.Z - a.Z
	outer := a.RMax*a.RMax + a.RMax*b.RMax + b.RMax*b.RMax
	inner := a.RMin*a.RMin + a.RMin*b.RMin + b.RMin*b.RMin
	return dphi / 2 * h / 3 * (outer - inner)
}

// GenericPolycone is a surface of revolution over an arbitrary closed
// polygon in the r-z half-plane.
type GenericPolycone struct {
	named
	SPhi, DPhi float64 // azimuthal start and extent, rad
	Profile    []RZ
}

// NewGenericPolycone creates a generic polycone from a closed r-z
// polygon with at least three vertices.
func NewGenericPolycone(name string, sphi, dphi float64, profile []RZ) (*GenericPolycone, error) {
	if err := geoerrors.Validate(len(profile) >= 3, "len(profile) >= 3",
		"generic polycone %q needs at least three r-z vertices (got %d)", name, len(profile)); err != nil {
		return nil, err
	}
	if err := geoerrors.Validate(dphi > 0 && dphi <= 2*math.Pi,
		"dphi > 0 && dphi <= 2*pi",
		"generic polycone %q angular extent must be in (0, 2*pi] (got %g)", name, dphi); err != nil {
		return nil, err
	}
	for i, p := range profile {
		if err := geoerrors.Validate(p.R >= 0, "r >= 0",
			"generic polycone %q vertex %d has negative radius (%g)", name, i, p.R); err != nil {
			return nil, err
		}
	}
	return &GenericPolycone{named{name}, sphi, dphi, append([]RZ(nil), profile...)}, nil
}

// Capacity revolves the closed profile around z: the signed edge
// integral of r²·dz gives the enclosed volume per unit angle.
func (g *GenericPolycone) Capacity() float64 {
	var sum float64
	n := len(g.Profile)
	for i := 0; i < n; i++ {
		a := g.Profile[i]
		b := g.Profile[(i+1)%n]
		sum += (b.Z - a.Z) * (a.R*a.R + a.R*b.R + b.R*b.R) / 3
	}
	return g.DPhi / 2 * math.Abs(sum)
}

// Polyhedra is a polycone with flat sides: the cross section is a
// regular polygon segment instead of a circular arc. Radii are measured
// to the side midpoints (the inscribed circle), matching the source
// ecosystem's convention.
type Polyhedra struct {
	named
	SPhi, DPhi float64 // azimuthal start and extent, rad
	NumSides   int
	Planes     []ZPlane
}

// NewPolyhedra creates a polyhedra solid.
func NewPolyhedra(name string, sphi, dphi float64, numSides int, planes []ZPlane) (*Polyhedra, error) {
	if err := geoerrors.Validate(numSides >= 3, "numSides >= 3",
		"polyhedra %q needs at least three sides (got %d)", name, numSides); err != nil {
		return nil, err
	}
	pc, err := NewPolycone(name, sphi, dphi, planes)
	if err != nil {
		return nil, err
	}
	return &Polyhedra{named{name}, sphi, dphi, numSides, pc.Planes}, nil
}

// Capacity is the polycone sum with the circular-sector area factor
// dphi/2·r² replaced by the polygonal n·tan(dphi/2n)·r².
func (p *Polyhedra) Capacity() float64 {
	n := float64(p.NumSides)
	factor := n * math.Tan(p.DPhi/(2*n))
	var v float64
	for i := 1; i < len(p.Planes); i++ {
		a, b := p.Planes[i-1], p.Planes[i]
		h := b.Z - a.Z
		outer := a.RMax*a.RMax + a.RMax*b.RMax + b.RMax*b.RMax
		inner := a.RMin*a.RMin + a.RMin*b.RMin + b.RMin*b.RMin
		v += factor * h / 3 * (outer - inner)
	}
	return v
}
