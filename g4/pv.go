package g4

import "github.com/erraggy/geomtools/geoerrors"

// NewWorldPlacement creates the root placement of a geometry. The world
// has no mother and an identity transform.
func NewWorldPlacement(name string, world *LogicalVolume) (*PVPlacement, error) {
	if err := geoerrors.Validate(world != nil, "world != nil",
		"world placement %q needs a volume", name); err != nil {
		return nil, err
	}
	return &PVPlacement{
		name:      name,
		daughter:  world,
		transform: IdentityTransform(),
	}, nil
}

// PVPlacement is a single placement of a daughter logical volume inside
// a mother, with a rigid transform from daughter frame to mother frame.
// The world root is the one placement with a nil mother.
type PVPlacement struct {
	name      string
	daughter  *LogicalVolume
	mother    *LogicalVolume
	transform Transform
	copyNo    int
}

// Name returns the placement name.
func (pv *PVPlacement) Name() string { return pv.name }

// Daughter returns the placed logical volume.
func (pv *PVPlacement) Daughter() *LogicalVolume { return pv.daughter }

// Mother returns the enclosing logical volume.
func (pv *PVPlacement) Mother() *LogicalVolume { return pv.mother }

// Transform returns the daughter-to-mother transform.
func (pv *PVPlacement) Transform() Transform { return pv.transform }

// CopyNo returns the placement's ordinal among its mother's daughters.
func (pv *PVPlacement) CopyNo() int { return pv.copyNo }
