package vecgeom

import "github.com/erraggy/geomtools/geoerrors"

// GeoManager is the registry for one assembled geometry. Logical
// volumes receive dense IDs 0..N-1 in registration order; closing the
// manager freezes the geometry around a world placement.
//
// A manager serves one conversion at a time and is not safe for
// concurrent use. Independent conversions use independent managers.
type GeoManager struct {
	volumes []*LogicalVolume
	byName  map[string]*LogicalVolume
	placed  []*PlacedVolume
	world   *PlacedVolume
	closed  bool
}

// NewGeoManager creates an empty, open registry.
func NewGeoManager() *GeoManager {
	return &GeoManager{byName: make(map[string]*LogicalVolume)}
}

// RegisterLogicalVolume creates a logical volume for the shape,
// assigns it the next dense ID, and indexes it under name.
func (m *GeoManager) RegisterLogicalVolume(name string, unplaced UnplacedVolume) (*LogicalVolume, error) {
	if err := check(!m.closed, "geometry is closed; cannot register volume %q", name); err != nil {
		return nil, err
	}
	if err := check(unplaced != nil, "volume %q needs a shape", name); err != nil {
		return nil, err
	}
	if err := check(name != "", "volume name must not be empty"); err != nil {
		return nil, err
	}
	if _, dup := m.byName[name]; dup {
		return nil, geoerrors.Newf(geoerrors.KindVecgeom, "volume name %q is already registered", name)
	}
	lv := &LogicalVolume{
		id:       uint(len(m.volumes)),
		name:     name,
		unplaced: unplaced,
	}
	m.volumes = append(m.volumes, lv)
	m.byName[name] = lv
	return lv, nil
}

// FindLogicalVolume returns the volume registered under id, or nil.
func (m *GeoManager) FindLogicalVolume(id uint) *LogicalVolume {
	if id >= uint(len(m.volumes)) {
		return nil
	}
	return m.volumes[id]
}

// FindLogicalVolumeByName returns the volume registered under name, or
// nil.
func (m *GeoManager) FindLogicalVolumeByName(name string) *LogicalVolume {
	return m.byName[name]
}

// LogicalVolumes returns the registered volumes in ID order. The
// returned slice is shared; callers must not modify it.
func (m *GeoManager) LogicalVolumes() []*LogicalVolume {
	return m.volumes
}

// RegisterPlacedVolume records a placement in the geometry.
func (m *GeoManager) RegisterPlacedVolume(pv *PlacedVolume) error {
	if err := check(!m.closed, "geometry is closed; cannot register placement"); err != nil {
		return err
	}
	if err := check(pv != nil, "cannot register a nil placement"); err != nil {
		return err
	}
	m.placed = append(m.placed, pv)
	return nil
}

// PlacedVolumes returns the registered placements in registration
// order. The returned slice is shared; callers must not modify it.
func (m *GeoManager) PlacedVolumes() []*PlacedVolume {
	return m.placed
}

// SetWorldAndClose records the world placement and freezes the
// geometry. Further registrations fail until Clear.
func (m *GeoManager) SetWorldAndClose(world *PlacedVolume) error {
	if err := check(!m.closed, "geometry is already closed"); err != nil {
		return err
	}
	if err := check(world != nil, "world placement must not be nil"); err != nil {
		return err
	}
	m.world = world
	m.closed = true
	return nil
}

// World returns the world placement, or nil before SetWorldAndClose.
func (m *GeoManager) World() *PlacedVolume {
	return m.world
}

// IsClosed reports whether the geometry has been frozen.
func (m *GeoManager) IsClosed() bool {
	return m.closed
}

// Clear resets the manager to its freshly constructed state so it can
// serve another conversion.
func (m *GeoManager) Clear() {
	m.volumes = nil
	m.byName = make(map[string]*LogicalVolume)
	m.placed = nil
	m.world = nil
	m.closed = false
}
