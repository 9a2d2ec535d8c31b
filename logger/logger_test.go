package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{-1, zapcore.WarnLevel},
		{VerbosityQuiet, zapcore.WarnLevel},
		{VerbosityInfo, zapcore.InfoLevel},
		{VerbosityDebug, zapcore.DebugLevel},
		{7, zapcore.DebugLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, VerbosityToLevel(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true, VerbosityInfo)
	l.Debug("hidden")
	l.Info("catalog applied")
	require.NoError(t, l.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "catalog applied", entry["msg"])
	assert.Equal(t, "info", entry["level"])
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false, VerbosityQuiet)
	l.Info("hidden")
	l.Warn("careful")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "careful")
}

func TestInitialize(t *testing.T) {
	t.Cleanup(func() {
		Initialize(false, VerbosityQuiet)
		JSONOutput = false
	})

	Initialize(true, VerbosityDebug)
	assert.True(t, JSONOutput)
	require.NotNil(t, Logger)
	assert.True(t, Base().Core().Enabled(zapcore.DebugLevel))

	Initialize(false, VerbosityQuiet)
	assert.False(t, JSONOutput)
	assert.False(t, Base().Core().Enabled(zapcore.InfoLevel))
	Cleanup()
}
