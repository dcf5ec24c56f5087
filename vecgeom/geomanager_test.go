package vecgeom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/geomtools/geoerrors"
)

func TestRegisterLogicalVolumeAssignsDenseIDs(t *testing.T) {
	m := NewGeoManager()
	box, err := NewUnplacedBox(1, 1, 1)
	require.NoError(t, err)

	names := []string{"a", "b", "c", "d"}
	for i, name := range names {
		lv, err := m.RegisterLogicalVolume(name, box)
		require.NoError(t, err)
		assert.Equal(t, uint(i), lv.ID())
		assert.Equal(t, name, lv.Name())
	}

	require.Len(t, m.LogicalVolumes(), len(names))
	for i := range names {
		found := m.FindLogicalVolume(uint(i))
		require.NotNil(t, found)
		assert.Equal(t, names[i], found.Name())
		assert.Same(t, found, m.FindLogicalVolumeByName(names[i]))
	}
	assert.Nil(t, m.FindLogicalVolume(uint(len(names))))
	assert.Nil(t, m.FindLogicalVolumeByName("missing"))
}

func TestRegisterLogicalVolumeRejectsDuplicates(t *testing.T) {
	m := NewGeoManager()
	box, err := NewUnplacedBox(1, 1, 1)
	require.NoError(t, err)

	_, err = m.RegisterLogicalVolume("dup", box)
	require.NoError(t, err)
	_, err = m.RegisterLogicalVolume("dup", box)
	require.Error(t, err)
	assert.ErrorIs(t, err, geoerrors.ErrVecgeom)

	_, err = m.RegisterLogicalVolume("", box)
	require.Error(t, err)
	_, err = m.RegisterLogicalVolume("noshape", nil)
	require.Error(t, err)
}

func TestSetWorldAndClose(t *testing.T) {
	m := NewGeoManager()
	box, err := NewUnplacedBox(10, 10, 10)
	require.NoError(t, err)
	worldLV, err := m.RegisterLogicalVolume("World", box)
	require.NoError(t, err)

	world := &PlacedVolume{label: "World_PV", logical: worldLV, transformation: IdentityTransformation()}
	require.NoError(t, m.RegisterPlacedVolume(world))
	require.NoError(t, m.SetWorldAndClose(world))

	assert.True(t, m.IsClosed())
	assert.Same(t, world, m.World())

	// Everything is frozen now.
	_, err = m.RegisterLogicalVolume("late", box)
	require.Error(t, err)
	assert.ErrorIs(t, err, geoerrors.ErrVecgeom)
	require.Error(t, m.RegisterPlacedVolume(world))
	require.Error(t, m.SetWorldAndClose(world))
}

func TestSetWorldAndCloseRejectsNil(t *testing.T) {
	m := NewGeoManager()
	err := m.SetWorldAndClose(nil)
	require.Error(t, err)
	assert.False(t, m.IsClosed())
}

func TestClear(t *testing.T) {
	m := NewGeoManager()
	box, err := NewUnplacedBox(1, 1, 1)
	require.NoError(t, err)
	worldLV, err := m.RegisterLogicalVolume("World", box)
	require.NoError(t, err)
	world := &PlacedVolume{label: "World_PV", logical: worldLV}
	require.NoError(t, m.SetWorldAndClose(world))

	m.Clear()
	assert.False(t, m.IsClosed())
	assert.Nil(t, m.World())
	assert.Empty(t, m.LogicalVolumes())
	assert.Empty(t, m.PlacedVolumes())

	// IDs restart from zero after a reset.
	lv, err := m.RegisterLogicalVolume("World", box)
	require.NoError(t, err)
	assert.Equal(t, uint(0), lv.ID())
}

func TestPlaceDaughter(t *testing.T) {
	m := NewGeoManager()
	outer, err := NewUnplacedBox(10, 10, 10)
	require.NoError(t, err)
	inner, err := NewUnplacedBox(1, 1, 1)
	require.NoError(t, err)

	mother, err := m.RegisterLogicalVolume("mother", outer)
	require.NoError(t, err)
	daughter, err := m.RegisterLogicalVolume("daughter", inner)
	require.NoError(t, err)

	tr := IdentityTransformation()
	tr.Translation = [3]float64{5, 0, 0}
	pv, err := mother.PlaceDaughter("daughter_pv", daughter, tr)
	require.NoError(t, err)

	require.Len(t, mother.Daughters(), 1)
	assert.Same(t, daughter, pv.Logical())
	assert.Equal(t, [3]float64{5, 0, 0}, pv.Transformation().Translation)
	assert.Equal(t, 0, pv.CopyNo())
	assert.Equal(t, "daughter_pv", pv.Label())

	_, err = mother.PlaceDaughter("nil", nil, tr)
	require.Error(t, err)
}
