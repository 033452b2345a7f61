package observability

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerTo_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, "info", "json")

	logger.Info("report completed", "report", "preview")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "report completed", entry["msg"])
	assert.Equal(t, "preview", entry["report"])
}

func TestNewLoggerTo_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, "debug", "text")

	logger.Debug("loading weather data")
	assert.Contains(t, buf.String(), "loading weather data")
}

func TestNewLoggerTo_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, "error", "json")

	logger.Info("suppressed")
	assert.Empty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "banana", want: slog.LevelInfo},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, parseLevel(tc.in), tc.in)
	}
}

func TestNewMetricsForTesting_Unregistered(t *testing.T) {
	// Must be callable repeatedly without "already registered" panics.
	m1 := NewMetricsForTesting()
	m2 := NewMetricsForTesting()

	m1.ReportsRun.Inc()
	m2.ReportFailures.WithLabelValues("preview", "internal").Inc()
	m1.ReportDuration.Observe(0.1)
	m2.GeneratorRunning.Set(1)
	m1.RowsLoaded.Set(42)
}
