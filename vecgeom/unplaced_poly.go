package vecgeom

import "math"

// UnplacedPolycone is a stack of cone segments sharing an azimuthal
// cut, described by parallel slices: Z[i], RMin[i], RMax[i].
type UnplacedPolycone struct {
	SPhi, DPhi float64
	Z          []float64 // plane positions, mm, strictly increasing
	RMin       []float64 // inner radii per plane, mm
	RMax       []float64 // outer radii per plane, mm
}

// NewUnplacedPolycone creates a polycone shape.
func NewUnplacedPolycone(sphi, dphi float64, z, rmin, rmax []float64) (*UnplacedPolycone, error) {
	if err := checkPlanes(z, rmin, rmax); err != nil {
		return nil, err
	}
	if err := check(dphi > 0 && dphi <= 2*math.Pi,
		"polycone azimuthal extent is invalid (got %g)", dphi); err != nil {
		return nil, err
	}
	return &UnplacedPolycone{sphi, dphi,
		append([]float64(nil), z...),
		append([]float64(nil), rmin...),
		append([]float64(nil), rmax...)}, nil
}

func (p *UnplacedPolycone) Capacity() float64 {
	var v float64
	for i := 1; i < len(p.Z); i++ {
		v += coneSegmentCapacity(p.DPhi,
			p.Z[i]-p.Z[i-1],
			p.RMin[i-1], p.RMax[i-1],
			p.RMin[i], p.RMax[i])
	}
	return v
}

// coneSegmentCapacity is the frustum-shell volume of one slice pair.
func coneSegmentCapacity(dphi, h, rmin1, rmax1, rmin2, rmax2 float64) float64 {
	outer := (rmax1*rmax1 + rmax1*rmax2 + rmax2*rmax2) / 3
	inner := (rmin1*rmin1 + rmin1*rmin2 + rmin2*rmin2) / 3
	return dphi / 2 * h * (outer - inner)
}

func checkPlanes(z, rmin, rmax []float64) error {
	if err := check(len(z) >= 2 && len(rmin) == len(z) && len(rmax) == len(z),
		"polycone needs matching z/rmin/rmax lists of at least two planes"); err != nil {
		return err
	}
	for i := range z {
		if err := check(rmin[i] >= 0 && rmax[i] >= rmin[i],
			"polycone plane %d radii are inconsistent (got %g, %g)", i, rmin[i], rmax[i]); err != nil {
			return err
		}
		if i > 0 {
			if err := check(z[i] > z[i-1], "polycone z planes must be strictly increasing"); err != nil {
				return err
			}
		}
	}
	return nil
}

// UnplacedGenericPolycone is a surface of revolution over a closed
// polygon in the r-z half-plane.
type UnplacedGenericPolycone struct {
	SPhi, DPhi float64
	R, Z       []float64 // closed profile vertices, mm
}

// NewUnplacedGenericPolycone creates a generic polycone shape.
func NewUnplacedGenericPolycone(sphi, dphi float64, r, z []float64) (*UnplacedGenericPolycone, error) {
	if err := check(len(r) == len(z) && len(r) >= 3,
		"generic polycone needs matching r/z lists of at least three vertices"); err != nil {
		return nil, err
	}
	if err := check(dphi > 0 && dphi <= 2*math.Pi,
		"generic polycone azimuthal extent is invalid (got %g)", dphi); err != nil {
		return nil, err
	}
	for i, ri := range r {
		if err := check(ri >= 0, "generic polycone vertex %d has negative radius (%g)", i, ri); err != nil {
			return nil, err
		}
	}
	return &UnplacedGenericPolycone{sphi, dphi,
		append([]float64(nil), r...),
		append([]float64(nil), z...)}, nil
}

func (g *UnplacedGenericPolycone) Capacity() float64 {
	// Pappus-style edge integral of r^2 dz around the closed profile.
	var sum float64
	n := len(g.R)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		r1, r2 := g.R[i], g.R[j]
		sum += (g.Z[j] - g.Z[i]) * (r1*r1 + r1*r2 + r2*r2)
	}
	return g.DPhi / 6 * math.Abs(sum)
}

// UnplacedPolyhedron is a polycone with flat sides. Radii are measured
// to the side midpoints.
type UnplacedPolyhedron struct {
	SPhi, DPhi float64
	Sides      int
	Z          []float64
	RMin       []float64
	RMax       []float64
}

// NewUnplacedPolyhedron creates a polyhedron shape.
func NewUnplacedPolyhedron(sphi, dphi float64, sides int, z, rmin, rmax []float64) (*UnplacedPolyhedron, error) {
	if err := check(sides >= 3, "polyhedron needs at least three sides (got %d)", sides); err != nil {
		return nil, err
	}
	if err := checkPlanes(z, rmin, rmax); err != nil {
		return nil, err
	}
	if err := check(dphi > 0 && dphi <= 2*math.Pi,
		"polyhedron azimuthal extent is invalid (got %g)", dphi); err != nil {
		return nil, err
	}
	return &UnplacedPolyhedron{sphi, dphi, sides,
		append([]float64(nil), z...),
		append([]float64(nil), rmin...),
		append([]float64(nil), rmax...)}, nil
}

func (p *UnplacedPolyhedron) Capacity() float64 {
	// Same slice sum as the polycone with the circular sector factor
	// dphi/2 replaced by the inscribed polygon factor n*tan(dphi/2n).
	n := float64(p.Sides)
	scale := n * math.Tan(p.DPhi/(2*n)) / (p.DPhi / 2)
	var v float64
	for i := 1; i < len(p.Z); i++ {
		v += coneSegmentCapacity(p.DPhi,
			p.Z[i]-p.Z[i-1],
			p.RMin[i-1], p.RMax[i-1],
			p.RMin[i], p.RMax[i])
	}
	return scale * v
}
