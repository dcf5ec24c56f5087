// Package converter is the public entry point for turning a source
// geometry tree into its destination representation.
//
// The simplest call converts with defaults:
//
//	converted, err := converter.Convert(worldPV)
//
// Options are functional:
//
//	converted, err := converter.ConvertWithOptions(worldPV,
//	    converter.WithCompareVolumes(true),
//	    converter.WithLogger(logger),
//	)
//
// The result maps every distinct source logical volume to a dense
// destination volume ID and exposes the placed world plus the registry
// it lives in. Errors leave no usable destination state.
package converter
