package vecgeom

import "math"

// BooleanOperation selects the combination rule of a boolean volume.
type BooleanOperation int

const (
	// Union keeps points inside either constituent.
	Union BooleanOperation = iota
	// Subtraction keeps points inside the left but not the right.
	Subtraction
	// Intersection keeps points inside both constituents.
	Intersection
)

// String returns the operation name.
func (op BooleanOperation) String() string {
	switch op {
	case Union:
		return "union"
	case Subtraction:
		return "subtraction"
	case Intersection:
		return "intersection"
	default:
		return "unknown"
	}
}

// UnplacedBooleanVolume combines two constituent shapes with a boolean
// operation. The right constituent is positioned relative to the left.
// An exact capacity is not derivable from the constituent capacities
// alone, so the builder supplies its estimate at construction.
type UnplacedBooleanVolume struct {
	Op                  BooleanOperation
	Left, Right         UnplacedVolume
	RightTransformation Transformation
	capacity            float64
}

// NewUnplacedBooleanVolume creates a boolean shape with the given
// capacity estimate.
func NewUnplacedBooleanVolume(op BooleanOperation, left, right UnplacedVolume, rightTransformation Transformation, capacity float64) (*UnplacedBooleanVolume, error) {
	if err := check(left != nil && right != nil, "boolean volume needs two constituents"); err != nil {
		return nil, err
	}
	if err := check(capacity >= 0 && !math.IsNaN(capacity),
		"boolean volume capacity estimate is invalid (got %g)", capacity); err != nil {
		return nil, err
	}
	return &UnplacedBooleanVolume{op, left, right, rightTransformation, capacity}, nil
}

func (b *UnplacedBooleanVolume) Capacity() float64 {
	return b.capacity
}

// UnplacedScaledShape wraps another shape with per-axis scale factors.
// Reflections are expressed as a scale of -1 along one axis.
type UnplacedScaledShape struct {
	Shape      UnplacedVolume
	SX, SY, SZ float64
}

// NewUnplacedScaledShape creates a scaled view of a shape. Scale
// factors may be negative (reflection) but not zero.
func NewUnplacedScaledShape(shape UnplacedVolume, sx, sy, sz float64) (*UnplacedScaledShape, error) {
	if err := check(shape != nil, "scaled shape needs a base shape"); err != nil {
		return nil, err
	}
	if err := check(sx != 0 && sy != 0 && sz != 0,
		"scale factors must be non-zero (got %g, %g, %g)", sx, sy, sz); err != nil {
		return nil, err
	}
	return &UnplacedScaledShape{shape, sx, sy, sz}, nil
}

func (s *UnplacedScaledShape) Capacity() float64 {
	return math.Abs(s.SX*s.SY*s.SZ) * s.Shape.Capacity()
}
