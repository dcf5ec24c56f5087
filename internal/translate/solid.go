package translate

import (
	"github.com/erraggy/geomtools/g4"
	"github.com/erraggy/geomtools/geoerrors"
	"github.com/erraggy/geomtools/vecgeom"
)

// translateSolid maps one source solid onto its destination shape.
func (t *Translator) translateSolid(s g4.Solid) (vecgeom.UnplacedVolume, error) {
	switch v := s.(type) {
	case *g4.Box:
		return vecgeom.NewUnplacedBox(v.HX, v.HY, v.HZ)
	case *g4.Tubs:
		return vecgeom.NewUnplacedTube(v.RMin, v.RMax, v.HZ, v.SPhi, v.DPhi)
	case *g4.Cons:
		return vecgeom.NewUnplacedCone(v.RMin1, v.RMax1, v.RMin2, v.RMax2, v.HZ, v.SPhi, v.DPhi)
	case *g4.Sphere:
		return vecgeom.NewUnplacedSphere(v.RMin, v.RMax, v.SPhi, v.DPhi, v.STheta, v.DTheta)
	case *g4.Orb:
		return vecgeom.NewUnplacedOrb(v.R)
	case *g4.Trd:
		return vecgeom.NewUnplacedTrd(v.DX1, v.DX2, v.DY1, v.DY2, v.DZ)
	case *g4.Trap:
		return vecgeom.NewUnplacedTrapezoid(v.DZ, v.Theta, v.Phi,
			v.DY1, v.DX1, v.DX2, v.Alpha1,
			v.DY2, v.DX3, v.DX4, v.Alpha2)
	case *g4.Para:
		return vecgeom.NewUnplacedParallelepiped(v.DX, v.DY, v.DZ, v.Alpha, v.Theta, v.Phi)
	case *g4.Paraboloid:
		return vecgeom.NewUnplacedParaboloid(v.RLo, v.RHi, v.DZ)
	case *g4.Polycone:
		z, rmin, rmax := splitPlanes(v.Planes)
		return vecgeom.NewUnplacedPolycone(v.SPhi, v.DPhi, z, rmin, rmax)
	case *g4.GenericPolycone:
		r := make([]float64, len(v.Profile))
		z := make([]float64, len(v.Profile))
		for i, p := range v.Profile {
			r[i], z[i] = p.R, p.Z
		}
		return vecgeom.NewUnplacedGenericPolycone(v.SPhi, v.DPhi, r, z)
	case *g4.Polyhedra:
		z, rmin, rmax := splitPlanes(v.Planes)
		return vecgeom.NewUnplacedPolyhedron(v.SPhi, v.DPhi, v.NumSides, z, rmin, rmax)
	case *g4.Ellipsoid:
		return vecgeom.NewUnplacedEllipsoid(v.AX, v.BY, v.CZ, v.ZBottom, v.ZTop)
	case *g4.EllipticalTube:
		return vecgeom.NewUnplacedEllipticalTube(v.DX, v.DY, v.HZ)
	case *g4.EllipticalCone:
		return vecgeom.NewUnplacedEllipticalCone(v.A, v.B, v.H, v.ZCut)
	case *g4.Hype:
		return vecgeom.NewUnplacedHype(v.RMin, v.RMax, v.InnerStereo, v.OuterStereo, v.HZ)
	case *g4.Tet:
		return vecgeom.NewUnplacedTet([4][3]float64{
			{v.Anchor.X, v.Anchor.Y, v.Anchor.Z},
			{v.P2.X, v.P2.Y, v.P2.Z},
			{v.P3.X, v.P3.Y, v.P3.Z},
			{v.P4.X, v.P4.Y, v.P4.Z},
		})
	case *g4.Arb8:
		var verts [8][2]float64
		for i, xy := range v.Vertices {
			verts[i] = [2]float64{xy.X, xy.Y}
		}
		return vecgeom.NewUnplacedGenTrap(verts, v.DZ)
	case *g4.Xtru:
		return t.translateXtru(v)
	case *g4.BooleanSolid:
		return t.translateBoolean(v)
	case *g4.ReflectedSolid:
		base, err := t.translateSolid(v.Base)
		if err != nil {
			return nil, err
		}
		return vecgeom.NewUnplacedScaledShape(base, 1, 1, -1)
	default:
		return nil, geoerrors.NotImplemented("conversion for solid " + s.SolidName())
	}
}

// translateXtru maps an extruded solid onto the simple extrusion the
// destination offers: the polygon between the first and last z planes.
// Per-section scale factors and offsets have no destination
// counterpart and are dropped with a warning; when a dropped section
// actually mattered, the capacity validation pass catches it.
func (t *Translator) translateXtru(v *g4.Xtru) (vecgeom.UnplacedVolume, error) {
	lossy := len(v.Sections) > 2
	for _, s := range v.Sections {
		if s.Scale != 1 || s.OffX != 0 || s.OffY != 0 {
			lossy = true
		}
	}
	if lossy {
		t.log.Warn("extruded solid has scaled or offset sections; converting outline only",
			"solid", v.SolidName(), "sections", len(v.Sections))
	}

	x := make([]float64, len(v.Polygon))
	y := make([]float64, len(v.Polygon))
	for i, p := range v.Polygon {
		x[i], y[i] = p.X, p.Y
	}
	return vecgeom.NewUnplacedSExtru(x, y, v.Sections[0].Z, v.Sections[len(v.Sections)-1].Z)
}

// translateBoolean converts both constituents and carries over the
// source's sampled capacity estimate.
func (t *Translator) translateBoolean(v *g4.BooleanSolid) (vecgeom.UnplacedVolume, error) {
	left, err := t.translateSolid(v.Left)
	if err != nil {
		return nil, err
	}
	right, err := t.translateSolid(v.Right)
	if err != nil {
		return nil, err
	}
	var op vecgeom.BooleanOperation
	switch v.Op {
	case g4.OpUnion:
		op = vecgeom.Union
	case g4.OpSubtraction:
		op = vecgeom.Subtraction
	case g4.OpIntersection:
		op = vecgeom.Intersection
	default:
		return nil, geoerrors.NotImplemented("boolean operation " + v.Op.String())
	}
	return vecgeom.NewUnplacedBooleanVolume(op, left, right,
		convertTransform(v.RightTransform), v.Capacity())
}

func splitPlanes(planes []g4.ZPlane) (z, rmin, rmax []float64) {
	z = make([]float64, len(planes))
	rmin = make([]float64, len(planes))
	rmax = make([]float64, len(planes))
	for i, p := range planes {
		z[i], rmin[i], rmax[i] = p.Z, p.RMin, p.RMax
	}
	return z, rmin, rmax
}
