package mcpserver

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRequiresExactlyOneSource(t *testing.T) {
	_, err := geometryInput{}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file or content")

	_, err = geometryInput{File: "a.yaml", Content: "name: x"}.resolve()
	require.Error(t, err)
}

func TestResolveInlineContent(t *testing.T) {
	geometryCache.reset()

	result, err := geometryInput{Content: tinyGeometry}.resolve()
	require.NoError(t, err)
	assert.Equal(t, "tiny", result.Name)
	assert.Len(t, result.Volumes, 2)
}

func TestResolveInlineSizeLimit(t *testing.T) {
	geometryCache.reset()
	orig := cfg.MaxInlineSize
	cfg.MaxInlineSize = 16
	defer func() { cfg.MaxInlineSize = orig }()

	_, err := geometryInput{Content: tinyGeometry}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")
}

func TestResolveCachesContent(t *testing.T) {
	geometryCache.reset()

	first, err := geometryInput{Content: tinyGeometry}.resolve()
	require.NoError(t, err)
	assert.Equal(t, 1, geometryCache.size())

	second, err := geometryInput{Content: tinyGeometry}.resolve()
	require.NoError(t, err)
	assert.Same(t, first, second, "second resolve must hit the cache")
}

func TestResolveCachesFileByModTime(t *testing.T) {
	geometryCache.reset()

	path := filepath.Join(t.TempDir(), "tiny.yaml")
	require.NoError(t, os.WriteFile(path, []byte(tinyGeometry), 0o600))

	first, err := geometryInput{File: path}.resolve()
	require.NoError(t, err)

	second, err := geometryInput{File: path}.resolve()
	require.NoError(t, err)
	assert.Same(t, first, second)

	// A rewrite with a newer mtime misses the old cache entry.
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	third, err := geometryInput{File: path}.resolve()
	require.NoError(t, err)
	assert.NotSame(t, first, third)
}

func TestCacheEviction(t *testing.T) {
	geometryCache.reset()
	origMax := geometryCache.maxSize
	geometryCache.maxSize = 2
	defer func() { geometryCache.maxSize = origMax }()

	docs := []string{
		"name: a\nsolids:\n  - {name: s, type: orb, r: 1}\nvolumes:\n  - {name: World, solid: s}\nworld: World\n",
		"name: b\nsolids:\n  - {name: s, type: orb, r: 2}\nvolumes:\n  - {name: World, solid: s}\nworld: World\n",
		"name: c\nsolids:\n  - {name: s, type: orb, r: 3}\nvolumes:\n  - {name: World, solid: s}\nworld: World\n",
	}
	for _, doc := range docs {
		_, err := geometryInput{Content: doc}.resolve()
		require.NoError(t, err)
	}
	assert.Equal(t, 2, geometryCache.size())
}

func TestCacheSweepRemovesExpired(t *testing.T) {
	geometryCache.reset()

	geometryCache.putWithTTL("content:stale", nil, -time.Second)
	geometryCache.putWithTTL("content:fresh", nil, time.Hour)
	require.Equal(t, 2, geometryCache.size())

	geometryCache.sweep()
	assert.Equal(t, 1, geometryCache.size())
}

func TestMakeCacheKeyContent(t *testing.T) {
	a := makeCacheKey(geometryInput{Content: "name: a"})
	b := makeCacheKey(geometryInput{Content: "name: b"})
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)

	assert.Empty(t, makeCacheKey(geometryInput{}))
	assert.Empty(t, makeCacheKey(geometryInput{File: filepath.Join(t.TempDir(), "absent.yaml")}))
}
