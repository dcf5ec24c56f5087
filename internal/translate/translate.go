// Package translate walks a source geometry DAG and builds its
// destination counterpart: one destination logical volume per distinct
// source volume, daughters converted before mothers, the world last.
package translate

import (
	"github.com/erraggy/geomtools/g4"
	"github.com/erraggy/geomtools/geoerrors"
	"github.com/erraggy/geomtools/internal/gdmlname"
	"github.com/erraggy/geomtools/internal/softeq"
	"github.com/erraggy/geomtools/internal/volumeid"
	"github.com/erraggy/geomtools/parser"
	"github.com/erraggy/geomtools/vecgeom"
)

// volumeTag names the destination-volume ID space.
type volumeTag struct{}

// VolumeID identifies a destination logical volume. The zero value is
// invalid.
type VolumeID = volumeid.ID[volumeTag]

// Capacity comparison tolerances for the validation pass. The relative
// band absorbs Monte-Carlo noise on boolean capacities; the absolute
// band covers tiny solids.
const (
	compareRel = 0.01
	compareAbs = 1.0
)

// Options configures a Translator.
type Options struct {
	// Verbose raises per-volume logging from debug to info level.
	Verbose bool
	// CompareVolumes enables the capacity cross-check between each
	// source solid and its converted counterpart.
	CompareVolumes bool
	// Scale is the unit scale applied to lengths. Must be positive;
	// this build supports exactly 1 (millimeters on both sides).
	Scale float64
	// Logger receives structured conversion logs. Defaults to
	// parser.NopLogger.
	Logger parser.Logger
	// Manager receives the converted volumes. Defaults to a fresh
	// GeoManager.
	Manager *vecgeom.GeoManager
}

// Result is a completed translation.
type Result struct {
	// World is the placed destination world volume.
	World *vecgeom.PlacedVolume
	// Volumes maps each distinct source logical volume to its
	// destination volume ID. Placements do not add entries.
	Volumes map[*g4.LogicalVolume]VolumeID
}

// capacityCheck is one deferred comparison of the validation pass.
type capacityCheck struct {
	name   string
	source g4.Solid
	dest   vecgeom.UnplacedVolume
}

// Translator converts one source geometry into one destination
// geometry. It is single-use: a second Translate call fails because
// the manager is closed.
type Translator struct {
	opts    Options
	log     parser.Logger
	mgr     *vecgeom.GeoManager
	visited map[*g4.LogicalVolume]VolumeID
	checks  []capacityCheck
}

// New creates a Translator.
func New(opts Options) (*Translator, error) {
	if err := geoerrors.Validate(opts.Scale > 0, "scale > 0",
		"unit scale must be positive (got %g)", opts.Scale); err != nil {
		return nil, err
	}
	if opts.Scale != 1 {
		return nil, geoerrors.NotImplemented("unit scales other than 1")
	}
	if opts.Logger == nil {
		opts.Logger = parser.NopLogger{}
	}
	if opts.Manager == nil {
		opts.Manager = vecgeom.NewGeoManager()
	}
	return &Translator{
		opts:    opts,
		log:     opts.Logger,
		mgr:     opts.Manager,
		visited: make(map[*g4.LogicalVolume]VolumeID),
	}, nil
}

// Manager returns the destination registry the translator fills.
func (t *Translator) Manager() *vecgeom.GeoManager {
	return t.mgr
}

// Translate converts the geometry rooted at the world placement. On
// error the returned Result is empty and the destination registry must
// be considered unusable.
func (t *Translator) Translate(world *g4.PVPlacement) (Result, error) {
	if world == nil || world.Daughter() == nil {
		return Result{}, geoerrors.New(geoerrors.KindRuntime, "world volume is unset")
	}

	worldID, err := t.translateVolume(world.Daughter())
	if err != nil {
		return Result{}, err
	}

	worldLV := t.mgr.FindLogicalVolume(worldID.Get())
	placedWorld, err := vecgeom.NewPlacedVolume(world.Name(), worldLV, convertTransform(world.Transform()))
	if err != nil {
		return Result{}, err
	}
	if err := t.mgr.RegisterPlacedVolume(placedWorld); err != nil {
		return Result{}, err
	}
	if err := t.mgr.SetWorldAndClose(placedWorld); err != nil {
		return Result{}, err
	}

	if t.opts.CompareVolumes {
		if err := t.compareCapacities(); err != nil {
			return Result{}, err
		}
	}

	return Result{World: placedWorld, Volumes: t.visited}, nil
}

// translateVolume converts one logical volume, memoized on identity so
// a volume placed many times converts exactly once. Daughters convert
// before their mother, which makes destination IDs come out in
// discovery post-order with the world last.
func (t *Translator) translateVolume(lv *g4.LogicalVolume) (VolumeID, error) {
	if id, ok := t.visited[lv]; ok {
		return id, nil
	}

	daughterIDs := make([]VolumeID, len(lv.Daughters()))
	for i, pv := range lv.Daughters() {
		id, err := t.translateVolume(pv.Daughter())
		if err != nil {
			return VolumeID{}, err
		}
		daughterIDs[i] = id
	}

	unplaced, err := t.translateSolid(lv.Solid())
	if err != nil {
		// Keep the cause's category: an unimplemented solid must not
		// surface as a source-model failure.
		return VolumeID{}, geoerrors.Wrap(geoerrors.KindOf(err), err,
			"converting solid of volume "+lv.String())
	}

	name := gdmlname.Resolve(lv)
	dest, err := t.mgr.RegisterLogicalVolume(name, unplaced)
	if err != nil {
		return VolumeID{}, err
	}
	id := volumeid.New[volumeTag](dest.ID())
	t.visited[lv] = id
	t.logVolume("converted volume", "name", name, "id", dest.ID())

	for i, pv := range lv.Daughters() {
		daughter := t.mgr.FindLogicalVolume(daughterIDs[i].Get())
		placed, err := dest.PlaceDaughter(pv.Name(), daughter, convertTransform(pv.Transform()))
		if err != nil {
			return VolumeID{}, err
		}
		if err := t.mgr.RegisterPlacedVolume(placed); err != nil {
			return VolumeID{}, err
		}
	}

	t.checks = append(t.checks, capacityCheck{name: name, source: lv.Solid(), dest: unplaced})
	return id, nil
}

// compareCapacities is the validation pass: every converted solid's
// capacity must agree with its source within tolerance.
func (t *Translator) compareCapacities() error {
	cmp := softeq.NewRelAbs(compareRel, compareAbs)
	for _, c := range t.checks {
		src := c.source.Capacity()
		dst := c.dest.Capacity()
		if !cmp.Eq(src, dst) {
			return geoerrors.Newf(geoerrors.KindRuntime,
				"capacity mismatch for %s: source %g mm3, converted %g mm3", c.name, src, dst)
		}
		t.logVolume("capacity check passed", "name", c.name, "capacity", src)
	}
	return nil
}

func (t *Translator) logVolume(msg string, attrs ...any) {
	if t.opts.Verbose {
		t.log.Info(msg, attrs...)
	} else {
		t.log.Debug(msg, attrs...)
	}
}

// convertTransform maps a source placement transform onto the
// destination representation.
func convertTransform(tr g4.Transform) vecgeom.Transformation {
	return vecgeom.Transformation{
		Rotation:    [3][3]float64(tr.Rotation),
		Translation: [3]float64{tr.Translation.X, tr.Translation.Y, tr.Translation.Z},
	}
}
