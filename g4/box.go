package g4

import (
	"github.com/erraggy/geomtools/geoerrors"
)

// Box is a rectangular parallelepiped centered on the origin, described
// by its half-lengths along each axis.
type Box struct {
	named
	// HX, HY, HZ are the half-lengths in mm.
	HX, HY, HZ float64
}

// NewBox creates a box solid with the given half-lengths.
func NewBox(name string, hx, hy, hz float64) (*Box, error) {
	if err := geoerrors.Validate(hx > 0 && hy > 0 && hz > 0,
		"hx > 0 && hy > 0 && hz > 0",
		"box %q half-lengths must be positive (got %g, %g, %g)", name, hx, hy, hz); err != nil {
		return nil, err
	}
	return &Box{named{name}, hx, hy, hz}, nil
}

// Capacity returns the volume 8·hx·hy·hz.
func (b *Box) Capacity() float64 {
	return 8 * b.HX * b.HY * b.HZ
}

// Contains implements Container.
func (b *Box) Contains(p Point) bool {
	return p.X >= -b.HX && p.X <= b.HX &&
		p.Y >= -b.HY && p.Y <= b.HY &&
		p.Z >= -b.HZ && p.Z <= b.HZ
}

// BoundingBox implements Container.
func (b *Box) BoundingBox() (Point, Point) {
	return Point{-b.HX, -b.HY, -b.HZ}, Point{b.HX, b.HY, b.HZ}
}
