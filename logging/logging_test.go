package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tso/logging"
)

func TestLevelFromString(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"off":     logging.LevelSilent,
		"verbose": slog.LevelWarn,
		"":        slog.LevelWarn,
	}
	for in, want := range cases {
		assert.Equal(t, want, logging.LevelFromString(in), in)
	}
}

func TestLevelFromVerbosity(t *testing.T) {
	assert.Equal(t, logging.LevelSilent, logging.LevelFromVerbosity(3, true, slog.LevelWarn))
	assert.Equal(t, slog.LevelError, logging.LevelFromVerbosity(0, false, slog.LevelError))
	assert.Equal(t, slog.LevelInfo, logging.LevelFromVerbosity(1, false, slog.LevelWarn))
	assert.Equal(t, slog.LevelDebug, logging.LevelFromVerbosity(2, false, slog.LevelWarn))
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, slog.LevelInfo, "json")
	log.Debug("hidden")
	log.Info("loaded", "cases", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "loaded", rec["msg"])
	assert.EqualValues(t, 3, rec["cases"])
}

func TestNewTextAndDiscard(t *testing.T) {
	var buf bytes.Buffer
	logging.New(&buf, slog.LevelWarn, "text").Warn("slow", "step", "load")
	assert.Contains(t, buf.String(), "msg=slow")
	assert.Contains(t, buf.String(), "step=load")

	assert.False(t, logging.Discard().Enabled(t.Context(), slog.LevelError))
}
