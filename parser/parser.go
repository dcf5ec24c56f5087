package parser

import (
	"fmt"
	"io"
	"math"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/geomtools/g4"
	"github.com/erraggy/geomtools/geoerrors"
)

// ParseResult is an assembled geometry description.
type ParseResult struct {
	// Name is the description's declared name.
	Name string

	// World is the root placement, ready for conversion.
	World *g4.PVPlacement

	// WorldVolume is the logical volume the world placement wraps.
	WorldVolume *g4.LogicalVolume

	// Volumes indexes every logical volume by declared name.
	Volumes map[string]*g4.LogicalVolume

	// Solids indexes every solid by declared name, including solids no
	// volume references.
	Solids map[string]g4.Solid

	// SourcePath is the file the description came from, if any.
	SourcePath string

	// Warnings collects non-fatal observations, such as solids that no
	// volume uses.
	Warnings []string
}

// config holds the resolved parse settings.
type config struct {
	filePath string
	reader   io.Reader
	data     []byte
	logger   Logger
	validate bool
	sources  int
}

// Option configures a parse.
type Option func(*config) error

// WithFilePath reads the description from a file.
func WithFilePath(path string) Option {
	return func(c *config) error {
		if path == "" {
			return geoerrors.New(geoerrors.KindRuntime, "file path must not be empty")
		}
		c.filePath = path
		c.sources++
		return nil
	}
}

// WithReader reads the description from a stream.
func WithReader(r io.Reader) Option {
	return func(c *config) error {
		if r == nil {
			return geoerrors.New(geoerrors.KindRuntime, "reader must not be nil")
		}
		c.reader = r
		c.sources++
		return nil
	}
}

// WithBytes reads the description from memory.
func WithBytes(data []byte) Option {
	return func(c *config) error {
		if len(data) == 0 {
			return geoerrors.New(geoerrors.KindRuntime, "data must not be empty")
		}
		c.data = data
		c.sources++
		return nil
	}
}

// WithLogger sets the structured logger. Defaults to NopLogger.
func WithLogger(logger Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithValidateStructure toggles reference validation (duplicate names,
// unknown solid and volume references). Enabled by default; disabling
// it only skips the early checks, construction errors still surface.
func WithValidateStructure(validate bool) Option {
	return func(c *config) error {
		c.validate = validate
		return nil
	}
}

// ParseFile parses a geometry description file with default options.
func ParseFile(path string) (*ParseResult, error) {
	return ParseWithOptions(WithFilePath(path))
}

// ParseWithOptions parses a geometry description. Exactly one source
// option (WithFilePath, WithReader, WithBytes) is required.
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg := config{validate: true, logger: NopLogger{}}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if cfg.sources != 1 {
		return nil, geoerrors.Newf(geoerrors.KindRuntime,
			"exactly one input source is required (got %d)", cfg.sources)
	}

	data := cfg.data
	switch {
	case cfg.filePath != "":
		b, err := os.ReadFile(cfg.filePath)
		if err != nil {
			return nil, geoerrors.Wrap(geoerrors.KindRuntime, err, "reading "+cfg.filePath)
		}
		data = b
	case cfg.reader != nil:
		b, err := io.ReadAll(cfg.reader)
		if err != nil {
			return nil, geoerrors.Wrap(geoerrors.KindRuntime, err, "reading geometry description")
		}
		data = b
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, geoerrors.Wrap(geoerrors.KindGeant, err, "decoding geometry description")
	}

	b, err := newBuilder(&doc, cfg.logger, cfg.validate)
	if err != nil {
		return nil, err
	}
	result, err := b.build()
	if err != nil {
		return nil, err
	}
	result.SourcePath = cfg.filePath

	cfg.logger.Debug("parsed geometry description",
		"name", result.Name,
		"solids", len(result.Solids),
		"volumes", len(result.Volumes))
	return result, nil
}

// unitScale maps a unit name to its length factor in mm.
func unitScale(unit string) (float64, error) {
	switch unit {
	case "", "mm":
		return 1, nil
	case "cm":
		return 10, nil
	case "m":
		return 1000, nil
	default:
		return 0, geoerrors.Newf(geoerrors.KindGeant, "unknown length unit %q", unit)
	}
}

// angleScale maps an angle unit name to its factor in radians.
func angleScale(aunit string) (float64, error) {
	switch aunit {
	case "", "deg":
		return degToRad, nil
	case "rad":
		return 1, nil
	default:
		return 0, geoerrors.Newf(geoerrors.KindGeant, "unknown angle unit %q", aunit)
	}
}

const degToRad = math.Pi / 180

func warnf(warnings []string, format string, args ...any) []string {
	return append(warnings, fmt.Sprintf(format, args...))
}
