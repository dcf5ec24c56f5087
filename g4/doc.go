// Package g4 holds the source geometry object model: solids, logical
// volumes, and physical placements, in the style of a detector-simulation
// toolkit.
//
// A LogicalVolume pairs a named Solid with the placements of its daughter
// volumes. A PVPlacement positions a logical volume inside its mother via
// a rigid Transform. Because one logical volume may be placed many times,
// the placement structure forms a directed acyclic graph, not a tree;
// identity of a logical volume is pointer identity.
//
// Lengths are millimeters, angles are radians. Every solid reports its
// Capacity (geometric volume, mm³), which the converter's validation pass
// uses as a cheap cross-model correctness signal. Solids with cheap
// point-membership tests additionally implement Container, which boolean
// solids rely on for Monte Carlo capacity estimation.
package g4
