package converter

import (
	"github.com/erraggy/geomtools/g4"
	"github.com/erraggy/geomtools/internal/translate"
	"github.com/erraggy/geomtools/parser"
	"github.com/erraggy/geomtools/vecgeom"
)

// Converted is the result of a successful conversion.
type Converted struct {
	// World is the placed destination world volume, fully linked.
	World *vecgeom.PlacedVolume

	// Volumes maps each distinct source logical volume to its
	// destination volume ID. A volume placed N times contributes one
	// entry; the values are dense 0..len(Volumes)-1.
	Volumes map[*g4.LogicalVolume]uint

	// Manager is the registry holding the converted geometry.
	Manager *vecgeom.GeoManager
}

// config holds the resolved conversion settings.
type config struct {
	verbose        bool
	compareVolumes bool
	logger         parser.Logger
	manager        *vecgeom.GeoManager
}

// Option configures a conversion.
type Option func(*config) error

// WithVerbose raises per-volume logging to info level.
func WithVerbose(verbose bool) Option {
	return func(c *config) error {
		c.verbose = verbose
		return nil
	}
}

// WithCompareVolumes enables the capacity cross-check between each
// source solid and its converted counterpart.
func WithCompareVolumes(compare bool) Option {
	return func(c *config) error {
		c.compareVolumes = compare
		return nil
	}
}

// WithLogger sets the structured logger for the conversion. Defaults
// to parser.NopLogger.
func WithLogger(logger parser.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithGeoManager directs the conversion into an existing registry
// instead of a fresh one. The manager must be open and empty.
func WithGeoManager(manager *vecgeom.GeoManager) Option {
	return func(c *config) error {
		c.manager = manager
		return nil
	}
}

// Convert converts the geometry rooted at world with default options.
func Convert(world *g4.PVPlacement) (*Converted, error) {
	return ConvertWithOptions(world)
}

// ConvertWithOptions converts the geometry rooted at world.
func ConvertWithOptions(world *g4.PVPlacement, opts ...Option) (*Converted, error) {
	var cfg config
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	tr, err := translate.New(translate.Options{
		Verbose:        cfg.verbose,
		CompareVolumes: cfg.compareVolumes,
		Scale:          1,
		Logger:         cfg.logger,
		Manager:        cfg.manager,
	})
	if err != nil {
		return nil, err
	}

	res, err := tr.Translate(world)
	if err != nil {
		return nil, err
	}

	// Strip the typed ID wrapper for the public map. Validity was
	// established by the translator, so the unchecked read is safe.
	volumes := make(map[*g4.LogicalVolume]uint, len(res.Volumes))
	for lv, id := range res.Volumes {
		volumes[lv] = id.UncheckedGet()
	}

	return &Converted{
		World:   res.World,
		Volumes: volumes,
		Manager: tr.Manager(),
	}, nil
}
