package g4

import (
	"fmt"
	"sync/atomic"

	"github.com/erraggy/geomtools/geoerrors"
)

var lvInstanceCounter atomic.Uint64

// LogicalVolume pairs a solid with the placements of its daughter
// volumes. The same logical volume may be placed any number of times
// inside different mothers; the geometry forms a DAG, not a tree.
type LogicalVolume struct {
	name        string
	solid       Solid
	daughters   []*PVPlacement
	constituent *LogicalVolume // set only on reflected volumes
	instanceID  uint64
}

// NewLogicalVolume creates a logical volume for a solid. The name may
// be empty; a stable synthetic name is assigned during conversion.
func NewLogicalVolume(name string, solid Solid) (*LogicalVolume, error) {
	if err := geoerrors.Validate(solid != nil, "solid != nil",
		"logical volume %q needs a solid", name); err != nil {
		return nil, err
	}
	return &LogicalVolume{
		name:       name,
		solid:      solid,
		instanceID: lvInstanceCounter.Add(1),
	}, nil
}

// Name returns the volume name, possibly empty.
func (lv *LogicalVolume) Name() string { return lv.name }

// Solid returns the volume's shape.
func (lv *LogicalVolume) Solid() Solid { return lv.solid }

// Daughters returns the placements directly inside this volume.
func (lv *LogicalVolume) Daughters() []*PVPlacement { return lv.daughters }

// Constituent returns the unreflected volume this one mirrors, or nil
// when the volume is not reflected.
func (lv *LogicalVolume) Constituent() *LogicalVolume { return lv.constituent }

// IsReflected reports whether this volume was produced by reflection.
func (lv *LogicalVolume) IsReflected() bool { return lv.constituent != nil }

// InstanceID returns a process-unique creation ordinal. It is stable
// for the lifetime of the volume and never reused.
func (lv *LogicalVolume) InstanceID() uint64 { return lv.instanceID }

// PlaceDaughter places a daughter volume inside this one at the given
// transform and returns the placement.
func (lv *LogicalVolume) PlaceDaughter(name string, daughter *LogicalVolume, transform Transform) (*PVPlacement, error) {
	if err := geoerrors.Validate(daughter != nil, "daughter != nil",
		"placement %q in %q needs a daughter volume", name, lv.name); err != nil {
		return nil, err
	}
	if err := geoerrors.Validate(daughter != lv, "daughter != mother",
		"placement %q would put %q inside itself", name, lv.name); err != nil {
		return nil, err
	}
	pv := &PVPlacement{
		name:      name,
		daughter:  daughter,
		mother:    lv,
		transform: transform,
		copyNo:    len(lv.daughters),
	}
	lv.daughters = append(lv.daughters, pv)
	return pv, nil
}

// String formats the volume for diagnostics as name@address (id=N).
func (lv *LogicalVolume) String() string {
	if lv == nil {
		return "<nil logical volume>"
	}
	name := lv.name
	if name == "" {
		name = "<anonymous>"
	}
	return fmt.Sprintf("%s@%p (id=%d)", name, lv, lv.instanceID)
}
