package parser

import (
	"math"

	"github.com/erraggy/geomtools/g4"
	"github.com/erraggy/geomtools/geoerrors"
)

// buildSolid constructs one solid from its spec, applying the
// document's length and angle units. Boolean solids reference solids
// declared earlier in the list.
func (b *builder) buildSolid(spec *SolidSpec) (g4.Solid, error) {
	u := b.unit
	a := b.aunit

	switch spec.Type {
	case "box":
		return g4.NewBox(spec.Name, spec.HX*u, spec.HY*u, spec.HZ*u)

	case "tube":
		return g4.NewTubs(spec.Name,
			spec.RMin*u, spec.RMax*u, spec.HZ*u,
			spec.SPhi*a, b.fullIfZero(spec.DPhi)*a)

	case "cone":
		return g4.NewCons(spec.Name,
			spec.RMin1*u, spec.RMax1*u, spec.RMin2*u, spec.RMax2*u,
			spec.HZ*u, spec.SPhi*a, b.fullIfZero(spec.DPhi)*a)

	case "sphere":
		dtheta := spec.DTheta
		if dtheta == 0 {
			dtheta = b.halfTurn()
		}
		return g4.NewSphere(spec.Name,
			spec.RMin*u, spec.RMax*u,
			spec.SPhi*a, b.fullIfZero(spec.DPhi)*a,
			spec.STheta*a, dtheta*a)

	case "orb":
		return g4.NewOrb(spec.Name, spec.R*u)

	case "trd":
		return g4.NewTrd(spec.Name,
			spec.DX1*u, spec.DX2*u, spec.DY1*u, spec.DY2*u, spec.DZ*u)

	case "trap":
		return g4.NewTrap(spec.Name,
			spec.DZ*u, spec.Theta*a, spec.Phi*a,
			spec.DY1*u, spec.DX1*u, spec.DX2*u, spec.Alpha1*a,
			spec.DY2*u, spec.DX3*u, spec.DX4*u, spec.Alpha2*a)

	case "para":
		return g4.NewPara(spec.Name,
			spec.DX*u, spec.DY*u, spec.DZ*u,
			spec.Alpha*a, spec.Theta*a, spec.Phi*a)

	case "paraboloid":
		return g4.NewParaboloid(spec.Name, spec.RLo*u, spec.RHi*u, spec.DZ*u)

	case "polycone":
		return g4.NewPolycone(spec.Name,
			spec.SPhi*a, b.fullIfZero(spec.DPhi)*a, b.planes(spec.Planes))

	case "genericPolycone":
		profile := make([]g4.RZ, len(spec.Profile))
		for i, p := range spec.Profile {
			profile[i] = g4.RZ{R: p.R * u, Z: p.Z * u}
		}
		return g4.NewGenericPolycone(spec.Name,
			spec.SPhi*a, b.fullIfZero(spec.DPhi)*a, profile)

	case "polyhedra":
		return g4.NewPolyhedra(spec.Name,
			spec.SPhi*a, b.fullIfZero(spec.DPhi)*a, spec.NumSides, b.planes(spec.Planes))

	case "ellipsoid":
		zb, zt := -spec.CZ, spec.CZ
		if spec.ZBottom != nil {
			zb = *spec.ZBottom
		}
		if spec.ZTop != nil {
			zt = *spec.ZTop
		}
		return g4.NewEllipsoid(spec.Name,
			spec.AX*u, spec.BY*u, spec.CZ*u, zb*u, zt*u)

	case "ellipticalTube":
		return g4.NewEllipticalTube(spec.Name, spec.DX*u, spec.DY*u, spec.HZ*u)

	case "ellipticalCone":
		// The slope semi-axes are dimensionless; only h and zcut carry
		// units.
		return g4.NewEllipticalCone(spec.Name, spec.A, spec.B, spec.H*u, spec.ZCut*u)

	case "hype":
		return g4.NewHype(spec.Name,
			spec.RMin*u, spec.RMax*u,
			spec.InnerStereo*a, spec.OuterStereo*a, spec.HZ*u)

	case "tet":
		if spec.Anchor == nil || spec.P2 == nil || spec.P3 == nil || spec.P4 == nil {
			return nil, geoerrors.Newf(geoerrors.KindGeant,
				"tet %q needs anchor, p2, p3, and p4", spec.Name)
		}
		return g4.NewTet(spec.Name,
			b.point(spec.Anchor), b.point(spec.P2), b.point(spec.P3), b.point(spec.P4))

	case "arb8":
		if len(spec.Vertices) != 8 {
			return nil, geoerrors.Newf(geoerrors.KindGeant,
				"arb8 %q needs exactly 8 vertices (got %d)", spec.Name, len(spec.Vertices))
		}
		var verts [8]g4.XY
		for i, v := range spec.Vertices {
			verts[i] = g4.XY{X: v.X * u, Y: v.Y * u}
		}
		return g4.NewArb8(spec.Name, spec.DZ*u, verts)

	case "xtru":
		polygon := make([]g4.XY, len(spec.Polygon))
		for i, v := range spec.Polygon {
			polygon[i] = g4.XY{X: v.X * u, Y: v.Y * u}
		}
		sections := make([]g4.ZSection, len(spec.Sections))
		for i, s := range spec.Sections {
			scale := 1.0
			if s.Scale != nil {
				scale = *s.Scale
			}
			sections[i] = g4.ZSection{
				Z:     s.Z * u,
				OffX:  s.OffX * u,
				OffY:  s.OffY * u,
				Scale: scale,
			}
		}
		return g4.NewXtru(spec.Name, polygon, sections)

	case "boolean":
		return b.buildBoolean(spec)

	case "":
		return nil, geoerrors.Newf(geoerrors.KindGeant, "solid %q has no type", spec.Name)
	default:
		return nil, geoerrors.NotImplemented("solid type " + spec.Type)
	}
}

func (b *builder) buildBoolean(spec *SolidSpec) (g4.Solid, error) {
	left, ok := b.solids[spec.Left]
	if !ok {
		return nil, geoerrors.Newf(geoerrors.KindGeant,
			"boolean solid %q references unknown solid %q", spec.Name, spec.Left)
	}
	right, ok := b.solids[spec.Right]
	if !ok {
		return nil, geoerrors.Newf(geoerrors.KindGeant,
			"boolean solid %q references unknown solid %q", spec.Name, spec.Right)
	}

	var op g4.BooleanOp
	switch spec.Op {
	case "union":
		op = g4.OpUnion
	case "subtraction":
		op = g4.OpSubtraction
	case "intersection":
		op = g4.OpIntersection
	default:
		return nil, geoerrors.Newf(geoerrors.KindGeant,
			"boolean solid %q has unknown operation %q", spec.Name, spec.Op)
	}
	return g4.NewBooleanSolid(spec.Name, op, left, right,
		b.transform(spec.Translation, spec.Rotation))
}

// fullIfZero substitutes a full turn for an omitted angular extent.
func (b *builder) fullIfZero(dphi float64) float64 {
	if dphi == 0 {
		return 2 * b.halfTurn()
	}
	return dphi
}

// halfTurn is pi expressed in the document's angle unit.
func (b *builder) halfTurn() float64 {
	if b.aunit == 1 {
		return math.Pi
	}
	return 180
}

func (b *builder) planes(specs []PlaneSpec) []g4.ZPlane {
	planes := make([]g4.ZPlane, len(specs))
	for i, p := range specs {
		planes[i] = g4.ZPlane{Z: p.Z * b.unit, RMin: p.RMin * b.unit, RMax: p.RMax * b.unit}
	}
	return planes
}

func (b *builder) point(v *XYZSpec) g4.Point {
	return g4.Point{X: v.X * b.unit, Y: v.Y * b.unit, Z: v.Z * b.unit}
}
