// Package geoerrors provides structured error types for geomtools.
//
// Every error raised by this module carries a kind tag, a descriptive
// message, the textual form of the failed condition when one exists, and
// the source location where the failure was detected. The types enable
// programmatic handling via errors.Is() and errors.As(), so callers can
// distinguish a genuine runtime invariant violation from a missing build
// dependency or an unimplemented feature.
//
// # Error Kinds
//
//   - KindRuntime: generic precondition or invariant violation, such as a
//     capacity mismatch detected by the conversion validation pass
//   - KindConfiguration: a required dependency is disabled in this build
//   - KindImplementation: a feature (for example an exotic solid type)
//     is not yet implemented
//   - KindGeant, KindVecgeom: pass-through failures surfaced by the
//     source or destination geometry model, never reclassified
//
// # Usage with errors.Is
//
//	converted, err := converter.Convert(world)
//	if err != nil {
//	    if errors.Is(err, geoerrors.ErrImplementation) {
//	        // Geometry uses a solid this converter cannot translate yet.
//	    }
//	}
package geoerrors
