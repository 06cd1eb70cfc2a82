package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLoggerIsUsable(t *testing.T) {
	// The package-level logger must be safe before Initialize runs.
	require.NotNil(t, Logger)
	Logger.Debugw("no-op logger should not panic", FieldComponent, "test")
}

func TestInitialize(t *testing.T) {
	require.NoError(t, Initialize(false))
	assert.False(t, JSONOutput)
	require.NotNil(t, Logger)

	require.NoError(t, Initialize(true))
	assert.True(t, JSONOutput)
	require.NotNil(t, Logger)
}

func TestSetVerbose(t *testing.T) {
	require.NoError(t, Initialize(false))
	require.NoError(t, SetVerbose())
	require.NotNil(t, Logger)
}
