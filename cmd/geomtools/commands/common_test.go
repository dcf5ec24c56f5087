package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.yaml.in/yaml/v4"
)

func TestValidateOutputFormat(t *testing.T) {
	assert.NoError(t, ValidateOutputFormat(FormatText))
	assert.NoError(t, ValidateOutputFormat(FormatJSON))
	assert.NoError(t, ValidateOutputFormat(FormatYAML))

	err := ValidateOutputFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestOutputStructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]any{"volumes": 25, "world": "World_PV"}

	require.NoError(t, OutputStructured(&buf, data, FormatJSON))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "World_PV", decoded["world"])
}

func TestOutputStructuredYAML(t *testing.T) {
	var buf bytes.Buffer
	data := map[string]any{"volumes": 25}

	require.NoError(t, OutputStructured(&buf, data, FormatYAML))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 25, decoded["volumes"])
}

func TestOutputStructuredRejectsText(t *testing.T) {
	var buf bytes.Buffer
	err := OutputStructured(&buf, map[string]any{}, FormatText)
	require.Error(t, err)
}

func TestFormatSourcePath(t *testing.T) {
	assert.Equal(t, "<stdin>", FormatSourcePath(StdinFilePath))
	assert.Equal(t, "detector.yaml", FormatSourcePath("detector.yaml"))
}

func TestNewLoggerLevels(t *testing.T) {
	// Both loggers must satisfy the parser.Logger contract without
	// panicking on structured attributes.
	quiet := NewLogger(false)
	quiet.Debug("suppressed", "key", "value")
	quiet.Warn("visible", "key", "value")

	verbose := NewLogger(true)
	verbose.Debug("visible", "key", "value")
	assert.NotNil(t, verbose.With("component", "test"))
}

func TestParseSourceFile(t *testing.T) {
	result, err := ParseSource("../../../parser/testdata/solids.yaml", NewLogger(false))
	require.NoError(t, err)
	assert.Equal(t, "solids-test", result.Name)
	assert.True(t, strings.HasSuffix(result.World.Name(), "_PV"))
}

func TestParseSourceMissingFile(t *testing.T) {
	_, err := ParseSource("testdata/absent.yaml", NewLogger(false))
	require.Error(t, err)
}
