// Package walker traverses source geometry trees. The walk is
// placement-oriented: a volume placed N times is visited N times, once
// per path. Use CountDistinct for the number of distinct volumes.
package walker

import (
	"errors"

	"github.com/erraggy/geomtools/g4"
	"github.com/erraggy/geomtools/geoerrors"
)

// SkipDaughters can be returned by a visitor to prune the walk below
// the current placement. The walk continues with the next sibling.
var SkipDaughters = errors.New("skip daughters")

// Visit is the context handed to a visitor at each placement.
type Visit struct {
	// Placement is the placement being visited. At the root this is
	// the world placement.
	Placement *g4.PVPlacement

	// Volume is the logical volume the placement wraps.
	Volume *g4.LogicalVolume

	// Depth is 0 at the world and grows into the tree.
	Depth int

	// Path is the placement names from the world down to here. The
	// slice is reused between visits; copy it to retain it.
	Path []string
}

// VisitorFunc is called once per placement in pre-order. Returning
// SkipDaughters prunes the subtree; any other non-nil error aborts the
// walk and is returned from Walk.
type VisitorFunc func(v Visit) error

// Walk traverses the geometry rooted at the world placement in
// pre-order: each placement before its daughters, daughters in
// placement order.
func Walk(world *g4.PVPlacement, visit VisitorFunc) error {
	if world == nil || world.Daughter() == nil {
		return geoerrors.New(geoerrors.KindRuntime, "world volume is unset")
	}
	err := walk(world, 0, make([]string, 0, 16), visit)
	if errors.Is(err, SkipDaughters) {
		return nil
	}
	return err
}

func walk(pv *g4.PVPlacement, depth int, path []string, visit VisitorFunc) error {
	path = append(path, pv.Name())
	err := visit(Visit{Placement: pv, Volume: pv.Daughter(), Depth: depth, Path: path})
	if err != nil {
		return err
	}
	for _, d := range pv.Daughter().Daughters() {
		if err := walk(d, depth+1, path, visit); err != nil {
			if errors.Is(err, SkipDaughters) {
				continue
			}
			return err
		}
	}
	return nil
}

// CountDistinct returns the number of distinct logical volumes
// reachable from the world placement. Shared volumes count once.
func CountDistinct(world *g4.PVPlacement) (int, error) {
	seen := make(map[*g4.LogicalVolume]bool)
	err := Walk(world, func(v Visit) error {
		if seen[v.Volume] {
			return SkipDaughters
		}
		seen[v.Volume] = true
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(seen), nil
}

// CountPlacements returns the number of placements reachable from the
// world placement, the world itself included.
func CountPlacements(world *g4.PVPlacement) (int, error) {
	n := 0
	err := Walk(world, func(Visit) error {
		n++
		return nil
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}
