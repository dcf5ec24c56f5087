package converter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/geomtools/g4"
	"github.com/erraggy/geomtools/geoerrors"
	"github.com/erraggy/geomtools/parser"
	"github.com/erraggy/geomtools/vecgeom"
)

func parseFixture(t *testing.T, path string) *parser.ParseResult {
	t.Helper()
	result, err := parser.ParseFile(path)
	require.NoError(t, err)
	return result
}

func TestConvertSolidsFixture(t *testing.T) {
	fixture := parseFixture(t, "../parser/testdata/solids.yaml")

	converted, err := Convert(fixture.World)
	require.NoError(t, err)
	require.NotNil(t, converted.World)
	require.NotNil(t, converted.Manager)

	// One entry per distinct reachable volume, never per placement.
	require.Len(t, converted.Volumes, 25)

	// IDs are dense 0..24.
	seen := make(map[uint]bool)
	for _, id := range converted.Volumes {
		assert.Less(t, id, uint(25))
		assert.False(t, seen[id], "duplicate ID %d", id)
		seen[id] = true
	}

	// Every destination name begins with its source name.
	for lv, id := range converted.Volumes {
		dest := converted.Manager.FindLogicalVolume(id)
		require.NotNil(t, dest, "no destination volume for ID %d", id)
		want := lv.Name()
		if lv.IsReflected() {
			want = lv.Constituent().Name()
		}
		assert.True(t, strings.HasPrefix(dest.Name(), want),
			"destination %q does not extend source %q", dest.Name(), lv.Name())
	}
}

func TestConvertVolumeNames(t *testing.T) {
	fixture := parseFixture(t, "../parser/testdata/solids.yaml")

	converted, err := Convert(fixture.World)
	require.NoError(t, err)

	expected := []string{
		"box500", "cone1", "para1", "sphere1", "parabol1", "trap1",
		"trd1", "trd2", "trd3", "trd3_refl", "tube100", "boolean1",
		"polycone1", "genPocone1", "ellipsoid1", "tetrah1", "orb1",
		"polyhedr1", "hype1", "elltube1", "ellcone1", "arb8b", "arb8a",
		"xtru1", "World",
	}
	require.Len(t, converted.Volumes, len(expected))
	for _, name := range expected {
		lv := fixture.Volumes[name]
		require.NotNil(t, lv, "fixture lacks volume %q", name)
		_, ok := converted.Volumes[lv]
		assert.True(t, ok, "volume %q was not converted", name)
	}
}

func TestConvertBox500Capacity(t *testing.T) {
	fixture := parseFixture(t, "../parser/testdata/solids.yaml")

	converted, err := Convert(fixture.World)
	require.NoError(t, err)

	id := converted.Volumes[fixture.Volumes["box500"]]
	dest := converted.Manager.FindLogicalVolume(id)
	require.NotNil(t, dest)
	assert.InDelta(t, 1.25e8, dest.Unplaced().Capacity(), 1e6)
}

func TestConvertReflectedName(t *testing.T) {
	fixture := parseFixture(t, "../parser/testdata/solids.yaml")

	converted, err := Convert(fixture.World)
	require.NoError(t, err)

	refl := converted.Manager.FindLogicalVolume(converted.Volumes[fixture.Volumes["trd3_refl"]])
	base := converted.Manager.FindLogicalVolume(converted.Volumes[fixture.Volumes["trd3"]])
	require.NotNil(t, refl)
	require.NotNil(t, base)

	assert.True(t, strings.HasPrefix(refl.Name(), "trd3"))
	assert.True(t, strings.HasSuffix(refl.Name(), "_refl"))
	assert.Equal(t, base.Name()+"_refl", refl.Name())
}

func TestConvertWorldIsLinked(t *testing.T) {
	fixture := parseFixture(t, "../parser/testdata/solids.yaml")

	converted, err := Convert(fixture.World)
	require.NoError(t, err)

	require.Same(t, converted.World, converted.Manager.World())
	assert.True(t, converted.Manager.IsClosed())

	worldDest := converted.World.Logical()
	require.NotNil(t, worldDest)
	assert.Len(t, worldDest.Daughters(), 24)
	assert.Equal(t, converted.Volumes[fixture.WorldVolume], worldDest.ID())
}

func TestConvertWithCompareVolumes(t *testing.T) {
	fixture := parseFixture(t, "../parser/testdata/solids.yaml")

	_, err := ConvertWithOptions(fixture.World, WithCompareVolumes(true))
	require.NoError(t, err, "faithful conversions must pass the capacity check")
}

func TestConvertCompareVolumesCatchesLossyXtru(t *testing.T) {
	fixture := parseFixture(t, "../parser/testdata/xtru_scaled.yaml")

	// Without validation the lossy conversion goes through.
	converted, err := Convert(fixture.World)
	require.NoError(t, err)
	assert.Len(t, converted.Volumes, 2)

	// With validation it is flagged.
	_, err = ConvertWithOptions(fixture.World, WithCompareVolumes(true))
	require.Error(t, err)
	assert.ErrorIs(t, err, geoerrors.ErrRuntime)
	assert.Contains(t, err.Error(), "capacity mismatch")
}

func TestConvertNilWorld(t *testing.T) {
	_, err := Convert(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, geoerrors.ErrRuntime)
}

func TestConvertWithGeoManager(t *testing.T) {
	fixture := parseFixture(t, "../parser/testdata/solids.yaml")

	mgr := vecgeom.NewGeoManager()
	converted, err := ConvertWithOptions(fixture.World, WithGeoManager(mgr))
	require.NoError(t, err)
	assert.Same(t, mgr, converted.Manager)
	assert.True(t, mgr.IsClosed())
}

func TestConvertIndependentManagers(t *testing.T) {
	first := parseFixture(t, "../parser/testdata/solids.yaml")
	second := parseFixture(t, "../parser/testdata/solids.yaml")

	a, err := Convert(first.World)
	require.NoError(t, err)
	b, err := Convert(second.World)
	require.NoError(t, err)

	assert.NotSame(t, a.Manager, b.Manager)
	assert.Len(t, a.Volumes, 25)
	assert.Len(t, b.Volumes, 25)
}

func TestConvertSharedVolumeOnce(t *testing.T) {
	box, err := g4.NewBox("inner", 10, 10, 10)
	require.NoError(t, err)
	innerLV, err := g4.NewLogicalVolume("inner", box)
	require.NoError(t, err)

	worldBox, err := g4.NewBox("worldBox", 100, 100, 100)
	require.NoError(t, err)
	worldLV, err := g4.NewLogicalVolume("World", worldBox)
	require.NoError(t, err)
	for i, x := range []float64{-50, 0, 50} {
		_, err = worldLV.PlaceDaughter("inner_pv", innerLV, g4.Translate(x, 0, 0))
		require.NoError(t, err, "placement %d", i)
	}
	world, err := g4.NewWorldPlacement("World_PV", worldLV)
	require.NoError(t, err)

	converted, err := Convert(world)
	require.NoError(t, err)
	require.Len(t, converted.Volumes, 2, "three placements share one volume")
	assert.Equal(t, uint(0), converted.Volumes[innerLV], "daughters convert first")
	assert.Equal(t, uint(1), converted.Volumes[worldLV])
}
