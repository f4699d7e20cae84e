package parser

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopLogger(t *testing.T) {
	var logger Logger = NopLogger{}

	// All methods are no-ops and must not panic
	logger.Debug("debug", "k", "v")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	withLogger := logger.With("component", "parser")
	assert.NotNil(t, withLogger)
	withLogger.Debug("still a no-op")
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlogAdapter(slog.New(handler))

	logger.Debug("parsed document", "schemas", 12)
	out := buf.String()
	assert.Contains(t, out, "parsed document")
	assert.Contains(t, out, "schemas=12")
}

func TestSlogAdapterWith(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlogAdapter(slog.New(handler))

	child := logger.With("patch", "nullable-string-maps")
	child.Info("applied")

	out := buf.String()
	assert.Contains(t, out, "patch=nullable-string-maps")
	assert.Contains(t, out, "applied")
}

func TestSlogAdapterNilUsesDefault(t *testing.T) {
	logger := NewSlogAdapter(nil)
	require.NotNil(t, logger)
	// Must not panic when logging through the default logger
	logger.Debug("noop at default level")
}

func TestParserLogDefaultsToNop(t *testing.T) {
	p := New()
	assert.IsType(t, NopLogger{}, p.log())

	p.Logger = NewSlogAdapter(nil)
	assert.Same(t, p.Logger, p.log())
}
