package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Level("debug"))
	assert.Equal(t, slog.LevelInfo, Level("INFO"))
	assert.Equal(t, slog.LevelWarn, Level("warn"))
	assert.Equal(t, slog.LevelError, Level("error"))
	assert.Equal(t, slog.LevelWarn, Level(""))
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "info", Format: "json", Output: &buf})

	log.Debug("hidden")
	log.Info("type defined", "type", "Widget", "trait", "agile")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "type defined", rec["msg"])
	assert.Equal(t, "Widget", rec["type"])
	assert.Equal(t, "agile", rec["trait"])
}

func TestNewTextFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "error", Output: &buf})

	log.Warn("dropped")
	assert.Empty(t, buf.String())

	log.Error("kept", "type", "Window")
	assert.Contains(t, buf.String(), "msg=kept")
	assert.Contains(t, buf.String(), "type=Window")
}

func TestNoOpLogger(t *testing.T) {
	var log Logger = NoOpLogger{}
	log.Debug("a")
	log.Info("b")
	log.Warn("c")
	log.Error("d")
}
