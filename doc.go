// Package geomtools provides tools for converting detector-simulation
// solid geometry between object models.
//
// The library converts a hierarchical geometry built in a Geant4-style
// source model (package g4: logical volumes, physical placements, solids)
// into the equivalent representation of a VecGeom-style tracking model
// (package vecgeom: unplaced volumes, logical volumes with compact integer
// IDs, placed volumes), while preserving the sharing structure of the
// source tree: a logical volume placed many times is converted exactly
// once and maps to exactly one destination volume ID.
//
// # Overview
//
// The library consists of four primary packages:
//
//   - parser: Parse YAML geometry descriptions into a g4 source tree
//   - converter: Convert a g4 source tree into a vecgeom geometry
//   - walker: Traverse a g4 geometry tree with visitor callbacks
//   - geoerrors: Structured error types shared by all packages
//
// The g4 and vecgeom packages hold the two object models themselves.
//
// # Quick Start
//
// Parse a geometry description and convert it:
//
//	import (
//		"github.com/erraggy/geomtools/converter"
//		"github.com/erraggy/geomtools/parser"
//	)
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("solids.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	converted, err := converter.Convert(result.World)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for lv, id := range converted.Volumes {
//		fmt.Printf("%s -> %d\n", lv.Name(), id)
//	}
//
// Enable the capacity cross-check between source and destination solids:
//
//	converted, err := converter.ConvertWithOptions(result.World,
//		converter.WithCompareVolumes(true),
//	)
//
// # Conversion Guarantees
//
// The converter guarantees that the returned volume map's key set equals
// exactly the distinct logical volumes reachable from the input world,
// and that the mapped IDs form the dense set {0 .. N-1}. Reflected
// volumes (mirror-transformed copies introduced because the destination
// model cannot share a volume across a negative-determinant transform)
// keep names derived from their constituent volume plus the standard
// "_refl" suffix, so originals and reflections remain distinguishable.
//
// # Concurrency
//
// A single conversion is synchronous and single-threaded. Each conversion
// writes into an explicit vecgeom.GeoManager registry; conversions using
// distinct managers are independent, but one manager must never be shared
// between concurrent conversions.
//
// # Command-Line Interface
//
// In addition to the library packages, geomtools provides a command-line
// interface:
//
//	# Convert a geometry and print the volume table
//	geomtools convert solids.yaml
//
//	# Convert with the capacity cross-check enabled
//	geomtools convert -compare solids.yaml
//
//	# Print the placement hierarchy
//	geomtools tree solids.yaml
//
// Install the CLI:
//
//	go install github.com/erraggy/geomtools/cmd/geomtools@latest
package geomtools
