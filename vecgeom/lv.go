package vecgeom

import "fmt"

// Transformation places a daughter volume inside its mother: rotate by
// the row-major matrix, then translate.
type Transformation struct {
	Rotation    [3][3]float64
	Translation [3]float64
}

// IdentityTransformation returns the identity placement.
func IdentityTransformation() Transformation {
	return Transformation{Rotation: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

// LogicalVolume is a shape plus the placements of its daughters,
// registered with a GeoManager under a compact integer ID.
type LogicalVolume struct {
	id        uint
	name      string
	unplaced  UnplacedVolume
	daughters []*PlacedVolume
}

// ID returns the manager-assigned registration ordinal.
func (lv *LogicalVolume) ID() uint { return lv.id }

// Name returns the volume's resolved name.
func (lv *LogicalVolume) Name() string { return lv.name }

// Unplaced returns the volume's shape.
func (lv *LogicalVolume) Unplaced() UnplacedVolume { return lv.unplaced }

// Daughters returns the placements directly inside this volume.
func (lv *LogicalVolume) Daughters() []*PlacedVolume { return lv.daughters }

// PlaceDaughter adds a daughter placement and returns it. The placement
// is not registered with any manager; the caller registers it when the
// geometry is assembled.
func (lv *LogicalVolume) PlaceDaughter(label string, daughter *LogicalVolume, t Transformation) (*PlacedVolume, error) {
	if err := check(daughter != nil, "placement %q needs a daughter volume", label); err != nil {
		return nil, err
	}
	pv := &PlacedVolume{
		label:          label,
		logical:        daughter,
		transformation: t,
		copyNo:         len(lv.daughters),
	}
	lv.daughters = append(lv.daughters, pv)
	return pv, nil
}

// String formats the volume for diagnostics.
func (lv *LogicalVolume) String() string {
	if lv == nil {
		return "<nil volume>"
	}
	return fmt.Sprintf("%s (id=%d)", lv.name, lv.id)
}

// NewPlacedVolume creates a free-standing placement, typically the
// world root. Daughter placements are made with PlaceDaughter instead
// so copy numbers stay consistent.
func NewPlacedVolume(label string, logical *LogicalVolume, t Transformation) (*PlacedVolume, error) {
	if err := check(logical != nil, "placement %q needs a logical volume", label); err != nil {
		return nil, err
	}
	return &PlacedVolume{label: label, logical: logical, transformation: t}, nil
}

// PlacedVolume is a single placement of a logical volume.
type PlacedVolume struct {
	label          string
	logical        *LogicalVolume
	transformation Transformation
	copyNo         int
}

// Label returns the placement label.
func (pv *PlacedVolume) Label() string { return pv.label }

// Logical returns the placed logical volume.
func (pv *PlacedVolume) Logical() *LogicalVolume { return pv.logical }

// Transformation returns the daughter-to-mother placement transform.
func (pv *PlacedVolume) Transformation() Transformation { return pv.transformation }

// CopyNo returns the placement's ordinal among its mother's daughters.
func (pv *PlacedVolume) CopyNo() int { return pv.copyNo }
