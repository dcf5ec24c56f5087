package g4

import (
	"math/rand/v2"

	"github.com/erraggy/geomtools/geoerrors"
)

// BooleanOp selects the combination rule of a BooleanSolid.
type BooleanOp int

const (
	// OpUnion keeps points inside either constituent.
	OpUnion BooleanOp = iota
	// OpSubtraction keeps points inside the left but not the right.
	OpSubtraction
	// OpIntersection keeps points inside both constituents.
	OpIntersection
)

// String returns the operation name used in geometry descriptions.
func (op BooleanOp) String() string {
	switch op {
	case OpUnion:
		return "union"
	case OpSubtraction:
		return "subtraction"
	case OpIntersection:
		return "intersection"
	default:
		return "unknown"
	}
}

// booleanSamples is the Monte Carlo sample count for boolean capacity
// estimation. At ~1e6 samples the relative standard error on a solid
// filling half its bounding box is a few parts in 1e4.
const booleanSamples = 1 << 20

// BooleanSolid combines two constituent solids with a boolean operation.
// The right constituent is placed relative to the left by a rigid
// transform.
type BooleanSolid struct {
	named
	Op             BooleanOp
	Left, Right    Solid
	RightTransform Transform
}

// NewBooleanSolid creates a boolean combination of two solids.
// Both constituents must implement Container so that the capacity can be
// estimated; otherwise an implementation-kind error is returned.
func NewBooleanSolid(name string, op BooleanOp, left, right Solid, rightTransform Transform) (*BooleanSolid, error) {
	if err := geoerrors.Validate(left != nil && right != nil,
		"left != nil && right != nil",
		"boolean solid %q needs two constituents", name); err != nil {
		return nil, err
	}
	if _, ok := left.(Container); !ok {
		return nil, geoerrors.NotImplemented(
			"boolean solid constituent " + left.SolidName() + " has no point-membership test")
	}
	if _, ok := right.(Container); !ok {
		return nil, geoerrors.NotImplemented(
			"boolean solid constituent " + right.SolidName() + " has no point-membership test")
	}
	return &BooleanSolid{named{name}, op, left, right, rightTransform}, nil
}

// Contains implements Container.
func (b *BooleanSolid) Contains(p Point) bool {
	inLeft := b.Left.(Container).Contains(p)
	inRight := b.Right.(Container).Contains(b.RightTransform.ApplyInverse(p))
	switch b.Op {
	case OpUnion:
		return inLeft || inRight
	case OpSubtraction:
		return inLeft && !inRight
	default:
		return inLeft && inRight
	}
}

// BoundingBox implements Container.
func (b *BooleanSolid) BoundingBox() (Point, Point) {
	lmin, lmax := b.Left.(Container).BoundingBox()
	rmin, rmax := transformedBounds(b.Right.(Container), b.RightTransform)

	switch b.Op {
	case OpUnion:
		return minPoint(lmin, rmin), maxPoint(lmax, rmax)
	case OpIntersection:
		return maxPoint(lmin, rmin), minPoint(lmax, rmax)
	default:
		// Subtraction can only shrink the left solid.
		return lmin, lmax
	}
}

// Capacity estimates the combined volume by deterministic Monte Carlo
// sampling over the bounding box. The generator is seeded from the
// sample count alone so repeated calls agree exactly.
func (b *BooleanSolid) Capacity() float64 {
	lo, hi := b.BoundingBox()
	dx, dy, dz := hi.X-lo.X, hi.Y-lo.Y, hi.Z-lo.Z
	if dx <= 0 || dy <= 0 || dz <= 0 {
		return 0
	}

	rng := rand.New(rand.NewPCG(0x67656f6d746f6f6c, booleanSamples))
	inside := 0
	for i := 0; i < booleanSamples; i++ {
		p := Point{
			X: lo.X + dx*rng.Float64(),
			Y: lo.Y + dy*rng.Float64(),
			Z: lo.Z + dz*rng.Float64(),
		}
		if b.Contains(p) {
			inside++
		}
	}
	return dx * dy * dz * float64(inside) / float64(booleanSamples)
}

// transformedBounds maps a solid's bounding box through a placement
// transform and re-wraps it in an axis-aligned box.
func transformedBounds(c Container, t Transform) (Point, Point) {
	lo, hi := c.BoundingBox()
	corners := [8]Point{
		{lo.X, lo.Y, lo.Z}, {hi.X, lo.Y, lo.Z}, {lo.X, hi.Y, lo.Z}, {hi.X, hi.Y, lo.Z},
		{lo.X, lo.Y, hi.Z}, {hi.X, lo.Y, hi.Z}, {lo.X, hi.Y, hi.Z}, {hi.X, hi.Y, hi.Z},
	}
	min := t.Apply(corners[0])
	max := min
	for _, c := range corners[1:] {
		p := t.Apply(c)
		min = minPoint(min, p)
		max = maxPoint(max, p)
	}
	return min, max
}

func minPoint(a, b Point) Point {
	return Point{min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z)}
}

func maxPoint(a, b Point) Point {
	return Point{max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z)}
}
