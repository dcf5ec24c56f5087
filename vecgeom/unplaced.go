package vecgeom

import (
	"github.com/erraggy/geomtools/geoerrors"
)

// UnplacedVolume is a shape definition without a position in space.
type UnplacedVolume interface {
	// Capacity returns the geometric volume of the shape in mm³.
	Capacity() float64
}

// check returns a vecgeom-kind error when cond does not hold.
func check(cond bool, format string, args ...any) error {
	if cond {
		return nil
	}
	return geoerrors.Newf(geoerrors.KindVecgeom, format, args...)
}

// UnplacedBox is an axis-aligned box described by half-lengths.
type UnplacedBox struct {
	X, Y, Z float64 // half-lengths, mm
}

// NewUnplacedBox creates a box shape.
func NewUnplacedBox(x, y, z float64) (*UnplacedBox, error) {
	if err := check(x > 0 && y > 0 && z > 0,
		"box half-lengths must be positive (got %g, %g, %g)", x, y, z); err != nil {
		return nil, err
	}
	return &UnplacedBox{x, y, z}, nil
}

func (b *UnplacedBox) Capacity() float64 {
	return (2 * b.X) * (2 * b.Y) * (2 * b.Z)
}

// UnplacedTrd is a trapezoid with x and y varying linearly along z.
type UnplacedTrd struct {
	X1, X2 float64 // half-lengths along x at -z and +z, mm
	Y1, Y2 float64 // half-lengths along y at -z and +z, mm
	Z      float64 // half-length along z, mm
}

// NewUnplacedTrd creates a trapezoid shape.
func NewUnplacedTrd(x1, x2, y1, y2, z float64) (*UnplacedTrd, error) {
	if err := check(x1 >= 0 && x2 >= 0 && y1 >= 0 && y2 >= 0 && z > 0,
		"trd dimensions must be non-negative with z > 0"); err != nil {
		return nil, err
	}
	return &UnplacedTrd{x1, x2, y1, y2, z}, nil
}

func (t *UnplacedTrd) Capacity() float64 {
	// Exact integral of the linearly interpolated cross section.
	return 2 * t.Z * (4.0/3.0*(t.X1*t.Y1+t.X2*t.Y2) + 2.0/3.0*(t.X1*t.Y2+t.X2*t.Y1))
}

// UnplacedTrapezoid is a general trapezoid with sheared faces.
type UnplacedTrapezoid struct {
	Z          float64 // half-length along z, mm
	Theta, Phi float64 // shear angles, rad
	Y1         float64 // half-length along y at -z, mm
	X1, X2     float64 // half-lengths along x at -z, mm
	Alpha1     float64 // face tilt at -z, rad
	Y2         float64 // half-length along y at +z, mm
	X3, X4     float64 // half-lengths along x at +z, mm
	Alpha2     float64 // face tilt at +z, rad
}

// NewUnplacedTrapezoid creates a general trapezoid shape.
func NewUnplacedTrapezoid(z, theta, phi, y1, x1, x2, alpha1, y2, x3, x4, alpha2 float64) (*UnplacedTrapezoid, error) {
	if err := check(z > 0 && y1 > 0 && y2 > 0 && x1 >= 0 && x2 >= 0 && x3 >= 0 && x4 >= 0,
		"trapezoid dimensions are invalid"); err != nil {
		return nil, err
	}
	return &UnplacedTrapezoid{z, theta, phi, y1, x1, x2, alpha1, y2, x3, x4, alpha2}, nil
}

func (t *UnplacedTrapezoid) Capacity() float64 {
	// Volume is independent of the shear and tilt angles.
	return 2 * t.Z / 3 * (t.Y1*(2*(t.X1+t.X2)+t.X3+t.X4) + t.Y2*(t.X1+t.X2+2*(t.X3+t.X4)))
}

// UnplacedParallelepiped is a sheared box.
type UnplacedParallelepiped struct {
	X, Y, Z           float64 // half-lengths, mm
	Alpha, Theta, Phi float64 // shear angles, rad
}

// NewUnplacedParallelepiped creates a parallelepiped shape.
func NewUnplacedParallelepiped(x, y, z, alpha, theta, phi float64) (*UnplacedParallelepiped, error) {
	if err := check(x > 0 && y > 0 && z > 0,
		"parallelepiped half-lengths must be positive (got %g, %g, %g)", x, y, z); err != nil {
		return nil, err
	}
	return &UnplacedParallelepiped{x, y, z, alpha, theta, phi}, nil
}

func (p *UnplacedParallelepiped) Capacity() float64 {
	return (2 * p.X) * (2 * p.Y) * (2 * p.Z)
}

// UnplacedGenTrap is an arbitrary hexahedron: four vertices at -z and
// four at +z.
type UnplacedGenTrap struct {
	Vertices [8][2]float64 // x,y pairs: 0-3 at -z, 4-7 at +z
	Z        float64       // half-length along z, mm
}

// NewUnplacedGenTrap creates an arbitrary hexahedron shape.
func NewUnplacedGenTrap(vertices [8][2]float64, z float64) (*UnplacedGenTrap, error) {
	if err := check(z > 0, "gentrap half-length must be positive (got %g)", z); err != nil {
		return nil, err
	}
	return &UnplacedGenTrap{vertices, z}, nil
}

func (g *UnplacedGenTrap) Capacity() float64 {
	// The section area is quadratic in z; evaluate the exact quadrature
	// from the bottom, middle, and top shoelace areas.
	area := func(f float64) float64 {
		var s float64
		for i := 0; i < 4; i++ {
			j := (i + 1) % 4
			ax := g.Vertices[i][0] + f*(g.Vertices[i+4][0]-g.Vertices[i][0])
			ay := g.Vertices[i][1] + f*(g.Vertices[i+4][1]-g.Vertices[i][1])
			bx := g.Vertices[j][0] + f*(g.Vertices[j+4][0]-g.Vertices[j][0])
			by := g.Vertices[j][1] + f*(g.Vertices[j+4][1]-g.Vertices[j][1])
			s += ax*by - bx*ay
		}
		if s < 0 {
			s = -s
		}
		return s / 2
	}
	return g.Z / 3 * (area(0) + 4*area(0.5) + area(1))
}

// UnplacedSExtru is a simple extrusion of a polygon between two z
// planes. Unlike richer extruded solids it has no per-section offsets
// or scale factors.
type UnplacedSExtru struct {
	X, Y       []float64 // polygon vertices, mm
	ZMin, ZMax float64
}

// NewUnplacedSExtru creates a simple extruded shape.
func NewUnplacedSExtru(x, y []float64, zmin, zmax float64) (*UnplacedSExtru, error) {
	if err := check(len(x) == len(y) && len(x) >= 3,
		"sextru needs matching x/y lists of at least three vertices (got %d, %d)", len(x), len(y)); err != nil {
		return nil, err
	}
	if err := check(zmax > zmin, "sextru z range is empty (got [%g, %g])", zmin, zmax); err != nil {
		return nil, err
	}
	return &UnplacedSExtru{append([]float64(nil), x...), append([]float64(nil), y...), zmin, zmax}, nil
}

func (s *UnplacedSExtru) Capacity() float64 {
	var a float64
	n := len(s.X)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a += s.X[i]*s.Y[j] - s.X[j]*s.Y[i]
	}
	if a < 0 {
		a = -a
	}
	return a / 2 * (s.ZMax - s.ZMin)
}

// UnplacedTet is a tetrahedron given by four vertices.
type UnplacedTet struct {
	V [4][3]float64 // vertices, mm
}

// NewUnplacedTet creates a tetrahedron shape.
func NewUnplacedTet(v [4][3]float64) (*UnplacedTet, error) {
	t := &UnplacedTet{v}
	if err := check(t.Capacity() > 0, "tet vertices are coplanar"); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *UnplacedTet) Capacity() float64 {
	var e [3][3]float64
	for i := 0; i < 3; i++ {
		for k := 0; k < 3; k++ {
			e[i][k] = t.V[i+1][k] - t.V[0][k]
		}
	}
	det := e[0][0]*(e[1][1]*e[2][2]-e[1][2]*e[2][1]) -
		e[0][1]*(e[1][0]*e[2][2]-e[1][2]*e[2][0]) +
		e[0][2]*(e[1][0]*e[2][1]-e[1][1]*e[2][0])
	if det < 0 {
		det = -det
	}
	return det / 6
}
