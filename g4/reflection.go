package g4

import "github.com/erraggy/geomtools/geoerrors"

// ReflSuffix is appended to a constituent volume's name to name its
// reflected counterpart.
const ReflSuffix = "_refl"

// NewReflectedVolume creates the mirror image of a logical volume. The
// result records the original as its constituent, so name resolution
// can derive the reflected name from the constituent's. Reflecting a
// reflected volume or a volume with daughters is not supported.
func NewReflectedVolume(lv *LogicalVolume) (*LogicalVolume, error) {
	if err := geoerrors.Validate(lv != nil, "lv != nil",
		"cannot reflect a nil volume"); err != nil {
		return nil, err
	}
	if lv.IsReflected() {
		return nil, geoerrors.NotImplemented(
			"reflecting an already reflected volume " + lv.String())
	}
	if len(lv.daughters) > 0 {
		return nil, geoerrors.NotImplemented(
			"reflecting a volume with daughters " + lv.String())
	}
	refl := &LogicalVolume{
		name:        lv.name + ReflSuffix,
		solid:       NewReflectedSolid(lv.solid),
		constituent: lv,
		instanceID:  lvInstanceCounter.Add(1),
	}
	return refl, nil
}
