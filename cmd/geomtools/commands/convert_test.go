package commands

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupConvertFlags(t *testing.T) {
	fs, flags := SetupConvertFlags()
	fs.SetOutput(io.Discard)

	require.NoError(t, fs.Parse([]string{"--compare", "-f", "yaml", fixturePath}))
	assert.True(t, flags.Compare)
	assert.Equal(t, FormatYAML, flags.Format)
	assert.False(t, flags.Verbose)
}

func TestHandleConvertText(t *testing.T) {
	require.NoError(t, HandleConvert([]string{"-q", fixturePath}))
}

func TestHandleConvertJSON(t *testing.T) {
	require.NoError(t, HandleConvert([]string{"--format", "json", fixturePath}))
}

func TestHandleConvertCompare(t *testing.T) {
	require.NoError(t, HandleConvert([]string{"-q", "--compare", fixturePath}))
}

func TestHandleConvertCompareLossy(t *testing.T) {
	err := HandleConvert([]string{"-q", "--compare", "../../../parser/testdata/xtru_scaled.yaml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capacity mismatch")
}

func TestHandleConvertLossyWithoutCompare(t *testing.T) {
	require.NoError(t, HandleConvert([]string{"-q", "../../../parser/testdata/xtru_scaled.yaml"}))
}

func TestHandleConvertInvalidFormat(t *testing.T) {
	err := HandleConvert([]string{"--format", "csv", fixturePath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestHandleConvertMissingArg(t *testing.T) {
	err := HandleConvert([]string{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one file path")
}

func TestHandleConvertHelp(t *testing.T) {
	require.NoError(t, HandleConvert([]string{"--help"}))
}
