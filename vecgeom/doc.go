// Package vecgeom is the destination geometry model: unplaced shapes,
// logical volumes carrying compact integer IDs, placed volumes, and an
// explicit GeoManager registry.
//
// Shape capacities here are written independently of the source model
// in package g4. The conversion validation pass compares the two
// computations, so sharing formula code between the packages would
// make that check vacuous.
//
// A GeoManager is an explicit handle rather than a process-global
// registry. Multiple managers may coexist, each serving one conversion
// at a time. A single manager is not safe for concurrent use.
package vecgeom
