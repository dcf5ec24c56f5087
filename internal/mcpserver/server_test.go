package mcpserver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{0, 1, 2, 3, 4}

	assert.Equal(t, []int{1, 2}, paginate(items, 1, 2))
	assert.Equal(t, []int{4}, paginate(items, 4, 10))
	assert.Nil(t, paginate(items, 5, 2))
	assert.Nil(t, paginate(items, -1, 2))

	// Non-positive limit falls back to the configured default.
	assert.Len(t, paginate(items, 0, 0), 5)
}

func TestPaginateRespectsMaxLimit(t *testing.T) {
	origMax := cfg.MaxLimit
	cfg.MaxLimit = 3
	defer func() { cfg.MaxLimit = origMax }()

	items := []int{0, 1, 2, 3, 4}
	assert.Equal(t, []int{0, 1, 2}, paginate(items, 0, 100))
}

func TestSanitizeError(t *testing.T) {
	assert.Empty(t, sanitizeError(nil))

	err := errors.New("open /home/user/geometry.yaml: no such file or directory")
	assert.Equal(t, "open <path>: no such file or directory", sanitizeError(err))

	err = errors.New("world volume is unset")
	assert.Equal(t, "world volume is unset", sanitizeError(err))
}

func TestErrResult(t *testing.T) {
	res := errResult(errors.New("boom"))
	assert.True(t, res.IsError)
	assert.Len(t, res.Content, 1)
}
