package g4

import "math"

// Solid is a shape definition independent of any placement.
type Solid interface {
	// SolidName returns the name the solid was defined with.
	SolidName() string
	// Capacity returns the geometric volume of the solid in mm³.
	Capacity() float64
}

// Container is implemented by solids with a cheap point-membership test.
// Boolean solids require their constituents to be Containers so that the
// combined capacity can be estimated by Monte Carlo sampling.
type Container interface {
	Solid
	// Contains reports whether the point (in the solid's own frame) lies
	// inside the solid. Points exactly on the surface may go either way.
	Contains(p Point) bool
	// BoundingBox returns an axis-aligned box enclosing the solid.
	BoundingBox() (min, max Point)
}

// named supplies the SolidName method for all concrete solids.
type named struct {
	name string
}

func (n named) SolidName() string { return n.name }

// inPhiRange reports whether the angular range [sphi, sphi+dphi] covers
// the given azimuthal angle.
func inPhiRange(sphi, dphi, phi float64) bool {
	const twoPi = 2 * math.Pi
	d := phi - sphi
	for d < 0 {
		d += twoPi
	}
	for d >= twoPi {
		d -= twoPi
	}
	return d <= dphi
}
