package report

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/weather-report-service/internal/observability"
	"github.com/couchcryptid/weather-report-service/internal/store"
)

type panicAction struct{}

func (panicAction) Name() string { return "boom" }

func (panicAction) Run(context.Context, *store.Container) Result {
	panic("kaboom")
}

type okAction struct{}

func (okAction) Name() string { return "ok" }

func (okAction) Run(context.Context, *store.Container) Result {
	return textResult("ok", "fine")
}

func TestRunReports_ContainsPanics(t *testing.T) {
	g := NewGenerator(nil, nil, slog.Default(), observability.NewMetricsForTesting())
	g.actions = []Action{panicAction{}, okAction{}}

	results := g.RunReports(context.Background())
	require.Len(t, results, 2)

	assert.True(t, results[0].Failed())
	assert.Contains(t, results[0].Err.Error(), "kaboom")

	// The panic did not stop the next action.
	assert.False(t, results[1].Failed())
	assert.Equal(t, "fine", results[1].Summary)
}
