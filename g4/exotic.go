package g4

import (
	"math"

	"github.com/erraggy/geomtools/geoerrors"
)

// Paraboloid is a solid of revolution bounded by a paraboloid surface
// and two planes perpendicular to z, with radii RLo at -dz and RHi at
// +dz.
type Paraboloid struct {
	named
	RLo, RHi float64 // radii at -dz and +dz, mm
	DZ       float64 // half-length along z, mm
}

// NewParaboloid creates a paraboloid solid.
func NewParaboloid(name string, rlo, rhi, dz float64) (*Paraboloid, error) {
	if err := geoerrors.Validate(rlo >= 0 && rhi > rlo && dz > 0,
		"0 <= rlo < rhi && dz > 0",
		"paraboloid %q parameters are invalid (got rlo %g, rhi %g, dz %g)", name, rlo, rhi, dz); err != nil {
		return nil, err
	}
	return &Paraboloid{named{name}, rlo, rhi, dz}, nil
}

// Capacity is (π·h/2)·(rlo² + rhi²): the cross-section area is linear in
// z for a paraboloid of revolution.
func (p *Paraboloid) Capacity() float64 {
	return math.Pi * p.DZ * (p.RLo*p.RLo + p.RHi*p.RHi)
}

// Hype is a tube whose inner and outer surfaces are hyperboloids of
// revolution: r(z)² = r₀² + tan²(θ)·z².
type Hype struct {
	named
	RMin, RMax               float64 // waist radii, mm
	InnerStereo, OuterStereo float64 // stereo angles, rad
	HZ                       float64 // half-length along z, mm
}

// NewHype creates a hyperboloid tube solid.
func NewHype(name string, rmin, rmax, innerStereo, outerStereo, hz float64) (*Hype, error) {
	if err := geoerrors.Validate(rmax > 0 && rmin >= 0 && rmin < rmax,
		"rmax > 0 && rmin >= 0 && rmin < rmax",
		"hype %q radii must satisfy 0 <= rmin < rmax (got %g, %g)", name, rmin, rmax); err != nil {
		return nil, err
	}
	if err := geoerrors.Validate(hz > 0, "hz > 0",
		"hype %q half-length must be positive (got %g)", name, hz); err != nil {
		return nil, err
	}
	return &Hype{named{name}, rmin, rmax, innerStereo, outerStereo, hz}, nil
}

// Capacity integrates π·(r_out(z)² − r_in(z)²) over z.
func (h *Hype) Capacity() float64 {
	to := math.Tan(h.OuterStereo)
	ti := math.Tan(h.InnerStereo)
	flat := (h.RMax*h.RMax - h.RMin*h.RMin) * 2 * h.HZ
	bulge := (to*to - ti*ti) * 2 * math.Pow(h.HZ, 3) / 3
	return math.Pi * (flat + bulge)
}

// Tet is a tetrahedron given by four vertices.
type Tet struct {
	named
	Anchor, P2, P3, P4 Point
}

// NewTet creates a tetrahedron solid.
func NewTet(name string, anchor, p2, p3, p4 Point) (*Tet, error) {
	t := &Tet{named{name}, anchor, p2, p3, p4}
	if err := geoerrors.Validate(t.Capacity() > 0, "non-degenerate vertices",
		"tetrahedron %q vertices are coplanar", name); err != nil {
		return nil, err
	}
	return t, nil
}

// Capacity is |det(p2−a, p3−a, p4−a)| / 6.
func (t *Tet) Capacity() float64 {
	u := t.P2.Sub(t.Anchor)
	v := t.P3.Sub(t.Anchor)
	w := t.P4.Sub(t.Anchor)
	det := u.X*(v.Y*w.Z-v.Z*w.Y) - u.Y*(v.X*w.Z-v.Z*w.X) + u.Z*(v.X*w.Y-v.Y*w.X)
	return math.Abs(det) / 6
}

// XY is a 2D vertex, mm.
type XY struct {
	X, Y float64
}

// Arb8 is an arbitrary hexahedron: four vertices at -dz and four at
// +dz, connected by straight edges. Faces may be twisted.
type Arb8 struct {
	named
	DZ       float64 // half-length along z, mm
	Vertices [8]XY   // 0-3 at -dz, 4-7 at +dz, both counter-clockwise
}

// NewArb8 creates an arbitrary hexahedron solid.
func NewArb8(name string, dz float64, vertices [8]XY) (*Arb8, error) {
	if err := geoerrors.Validate(dz > 0, "dz > 0",
		"arb8 %q half-length must be positive (got %g)", name, dz); err != nil {
		return nil, err
	}
	return &Arb8{named{name}, dz, vertices}, nil
}

// Capacity uses Simpson's rule across z. The cross-section vertices are
// linear in z, so the shoelace area is quadratic in z and three samples
// integrate it exactly.
func (a *Arb8) Capacity() float64 {
	section := func(f float64) [4]XY {
		var quad [4]XY
		for i := 0; i < 4; i++ {
			lo, hi := a.Vertices[i], a.Vertices[i+4]
			quad[i] = XY{lo.X + f*(hi.X-lo.X), lo.Y + f*(hi.Y-lo.Y)}
		}
		return quad
	}
	area := func(quad [4]XY) float64 {
		var s float64
		for i := 0; i < 4; i++ {
			p, q := quad[i], quad[(i+1)%4]
			s += p.X*q.Y - q.X*p.Y
		}
		return math.Abs(s) / 2
	}
	h := 2 * a.DZ
	return h / 6 * (area(section(0)) + 4*area(section(0.5)) + area(section(1)))
}

// ZSection is one cross-section plane of an extruded solid.
type ZSection struct {
	Z     float64 // plane position, mm
	OffX  float64 // polygon offset at this plane, mm
	OffY  float64
	Scale float64 // polygon scale factor at this plane
}

// Xtru is an extrusion of a closed polygon along z, with per-section
// offsets and scale factors.
type Xtru struct {
	named
	Polygon  []XY // closed outline, counter-clockwise
	Sections []ZSection
}

// NewXtru creates an extruded solid from a polygon of at least three
// vertices and at least two z sections in strictly increasing order.
func NewXtru(name string, polygon []XY, sections []ZSection) (*Xtru, error) {
	if err := geoerrors.Validate(len(polygon) >= 3, "len(polygon) >= 3",
		"xtru %q outline needs at least three vertices (got %d)", name, len(polygon)); err != nil {
		return nil, err
	}
	if err := geoerrors.Validate(len(sections) >= 2, "len(sections) >= 2",
		"xtru %q needs at least two z sections (got %d)", name, len(sections)); err != nil {
		return nil, err
	}
	for i, s := range sections {
		if err := geoerrors.Validate(s.Scale > 0, "scale > 0",
			"xtru %q section %d scale must be positive (got %g)", name, i, s.Scale); err != nil {
			return nil, err
		}
		if i > 0 {
			if err := geoerrors.Validate(s.Z > sections[i-1].Z, "sections[i].Z > sections[i-1].Z",
				"xtru %q z sections must be strictly increasing", name); err != nil {
				return nil, err
			}
		}
	}
	return &Xtru{named{name}, append([]XY(nil), polygon...), append([]ZSection(nil), sections...)}, nil
}

// outlineArea is the shoelace area of the outline polygon.
func (x *Xtru) outlineArea() float64 {
	var s float64
	n := len(x.Polygon)
	for i := 0; i < n; i++ {
		p, q := x.Polygon[i], x.Polygon[(i+1)%n]
		s += p.X*q.Y - q.X*p.Y
	}
	return math.Abs(s) / 2
}

// Capacity integrates the scaled outline area across each section pair.
// Offsets translate the cross section without changing its area.
func (x *Xtru) Capacity() float64 {
	a0 := x.outlineArea()
	var v float64
	for i := 1; i < len(x.Sections); i++ {
		lo, hi := x.Sections[i-1], x.Sections[i]
		h := hi.Z - lo.Z
		v += a0 * h * (lo.Scale*lo.Scale + lo.Scale*hi.Scale + hi.Scale*hi.Scale) / 3
	}
	return v
}
