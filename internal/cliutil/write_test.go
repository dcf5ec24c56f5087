package cliutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWritef(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "converted %d volumes into %s", 25, "World_PV")
	assert.Equal(t, "converted 25 volumes into World_PV", buf.String())
}

func TestWritefNoArgs(t *testing.T) {
	var buf bytes.Buffer
	Writef(&buf, "plain message")
	assert.Equal(t, "plain message", buf.String())
}

// errorWriter always fails, to exercise the stderr fallback path.
type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) {
	return 0, errors.New("simulated write error")
}

func TestWritefWriteError(t *testing.T) {
	assert.NotPanics(t, func() {
		Writef(errorWriter{}, "this will fail")
	})
}
