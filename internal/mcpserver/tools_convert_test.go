package mcpserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tinyGeometry = `
name: tiny
solids:
  - {name: worldBox, type: box, hx: 100, hy: 100, hz: 100}
  - {name: innerBox, type: box, hx: 10, hy: 10, hz: 10}
volumes:
  - name: inner
    solid: innerBox
  - name: World
    solid: worldBox
    placements:
      - {volume: inner, translation: {x: -30}}
      - {volume: inner, translation: {x: 30}}
world: World
`

func TestConvertGeometryInline(t *testing.T) {
	geometryCache.reset()

	_, output, err := handleConvertGeometry(context.Background(), nil, convertGeometryInput{
		Geometry: geometryInput{Content: tinyGeometry},
	})
	require.NoError(t, err)

	assert.Equal(t, "tiny", output.Name)
	assert.Equal(t, "World_PV", output.World)
	assert.Equal(t, 2, output.VolumeCount)
	assert.Equal(t, 3, output.Placements, "two daughters plus the world")
	assert.Empty(t, output.CapacityCheck)

	require.Len(t, output.Volumes, 2)
	assert.Equal(t, uint(0), output.Volumes[0].ID)
	assert.Equal(t, uint(1), output.Volumes[1].ID)
	assert.InDelta(t, 8000, output.Volumes[0].Capacity, 1e-9)
	assert.InDelta(t, 8e6, output.Volumes[1].Capacity, 1e-9)
}

func TestConvertGeometryCompare(t *testing.T) {
	geometryCache.reset()

	_, output, err := handleConvertGeometry(context.Background(), nil, convertGeometryInput{
		Geometry:       geometryInput{Content: tinyGeometry},
		CompareVolumes: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "passed", output.CapacityCheck)
}

func TestConvertGeometryPagination(t *testing.T) {
	geometryCache.reset()

	_, output, err := handleConvertGeometry(context.Background(), nil, convertGeometryInput{
		Geometry: geometryInput{Content: tinyGeometry},
		Offset:   1,
		Limit:    5,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, output.VolumeCount)
	require.Len(t, output.Volumes, 1)
	assert.Equal(t, uint(1), output.Volumes[0].ID)
}

func TestConvertGeometryInvalidInput(t *testing.T) {
	geometryCache.reset()

	result, _, err := handleConvertGeometry(context.Background(), nil, convertGeometryInput{
		Geometry: geometryInput{Content: "world: missing"},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestConvertGeometryRequiresOneSource(t *testing.T) {
	result, _, err := handleConvertGeometry(context.Background(), nil, convertGeometryInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
