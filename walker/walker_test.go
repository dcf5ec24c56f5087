package walker

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/geomtools/g4"
	"github.com/erraggy/geomtools/geoerrors"
)

// nested builds World > outer (x2) > inner.
func nested(t *testing.T) *g4.PVPlacement {
	t.Helper()

	mk := func(name string, h float64) *g4.LogicalVolume {
		box, err := g4.NewBox(name+"Box", h, h, h)
		require.NoError(t, err)
		lv, err := g4.NewLogicalVolume(name, box)
		require.NoError(t, err)
		return lv
	}

	world := mk("World", 1000)
	outer := mk("outer", 100)
	inner := mk("inner", 10)

	_, err := outer.PlaceDaughter("inner_pv", inner, g4.IdentityTransform())
	require.NoError(t, err)
	_, err = world.PlaceDaughter("outer_pv_0", outer, g4.Translate(-200, 0, 0))
	require.NoError(t, err)
	_, err = world.PlaceDaughter("outer_pv_1", outer, g4.Translate(200, 0, 0))
	require.NoError(t, err)

	pv, err := g4.NewWorldPlacement("World_PV", world)
	require.NoError(t, err)
	return pv
}

func TestWalkPreOrder(t *testing.T) {
	var visited []string
	var depths []int
	err := Walk(nested(t), func(v Visit) error {
		visited = append(visited, v.Placement.Name())
		depths = append(depths, v.Depth)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"World_PV", "outer_pv_0", "inner_pv", "outer_pv_1", "inner_pv"}, visited)
	assert.Equal(t, []int{0, 1, 2, 1, 2}, depths)
}

func TestWalkPath(t *testing.T) {
	var paths []string
	err := Walk(nested(t), func(v Visit) error {
		paths = append(paths, strings.Join(v.Path, "/"))
		return nil
	})
	require.NoError(t, err)

	assert.Contains(t, paths, "World_PV/outer_pv_0/inner_pv")
	assert.Contains(t, paths, "World_PV/outer_pv_1/inner_pv")
}

func TestWalkSkipDaughters(t *testing.T) {
	var visited []string
	err := Walk(nested(t), func(v Visit) error {
		visited = append(visited, v.Placement.Name())
		if v.Volume.Name() == "outer" {
			return SkipDaughters
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"World_PV", "outer_pv_0", "outer_pv_1"}, visited)
}

func TestWalkAbortsOnError(t *testing.T) {
	boom := errors.New("boom")
	count := 0
	err := Walk(nested(t), func(v Visit) error {
		count++
		if v.Placement.Name() == "outer_pv_0" {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 2, count)
}

func TestWalkNilWorld(t *testing.T) {
	err := Walk(nil, func(Visit) error { return nil })
	require.Error(t, err)
	assert.ErrorIs(t, err, geoerrors.ErrRuntime)
}

func TestCountDistinct(t *testing.T) {
	n, err := CountDistinct(nested(t))
	require.NoError(t, err)
	assert.Equal(t, 3, n, "world, outer, inner")
}

func TestCountPlacements(t *testing.T) {
	n, err := CountPlacements(nested(t))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}
