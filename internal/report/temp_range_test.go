package report_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/weather-report-service/internal/domain"
	"github.com/couchcryptid/weather-report-service/internal/report"
)

func TestTopTempRangeByLocation_AveragesRanges(t *testing.T) {
	c := newContainer(t, [][]string{
		{"Location", "MinTemp", "MaxTemp"},
		{"A", "10", "20"}, // range 10
		{"A", "10", "24"}, // range 14 -> avg 12
		{"B", "5", "25"},  // range 20 -> avg 20
		{"B", "NA", "30"}, // dropped, never counted as range 30
	})
	renderer := &stubRenderer{}
	action := report.NewTopTempRangeByLocation(report.Config{OutputDir: t.TempDir()}, renderer)

	res := action.Run(context.Background(), c)
	require.False(t, res.Failed(), "unexpected failure: %v", res.Err)

	spec := renderer.lastSpec(t)
	assert.Equal(t, []string{"B", "A"}, spec.Categories)
	require.Len(t, spec.Values, 2)
	assert.InDelta(t, 20.0, spec.Values[0], 1e-9)
	assert.InDelta(t, 12.0, spec.Values[1], 1e-9)
}

func TestTopTempRangeByLocation_AllRowsUnmeasured(t *testing.T) {
	// Single row with a missing bound: the whole dataset filters away.
	c := newContainer(t, [][]string{
		{"Location", "MinTemp", "MaxTemp"},
		{"A", "NA", "30"},
	})
	renderer := &stubRenderer{}
	action := report.NewTopTempRangeByLocation(report.Config{OutputDir: t.TempDir()}, renderer)

	res := action.Run(context.Background(), c)
	assert.True(t, res.Failed())
	assert.ErrorIs(t, res.Err, domain.ErrEmptyDataset)
	assert.Zero(t, renderer.calls, "no chart may be produced on failure")
	assert.Empty(t, res.ArtifactPath)
}

func TestTopTempRangeByLocation_DropsUnnamedRows(t *testing.T) {
	// Valid bounds with no location must not produce an unnamed bar.
	c := newContainer(t, [][]string{
		{"Location", "MinTemp", "MaxTemp"},
		{"A", "10", "20"},
		{"NA", "0", "40"},
	})
	renderer := &stubRenderer{}
	action := report.NewTopTempRangeByLocation(report.Config{OutputDir: t.TempDir()}, renderer)

	res := action.Run(context.Background(), c)
	require.False(t, res.Failed(), "unexpected failure: %v", res.Err)

	spec := renderer.lastSpec(t)
	assert.Equal(t, []string{"A"}, spec.Categories)
	require.Len(t, spec.Values, 1)
	assert.InDelta(t, 10.0, spec.Values[0], 1e-9)
}

func TestTopTempRangeByLocation_TopNAndTieBreak(t *testing.T) {
	c := newContainer(t, [][]string{
		{"Location", "MinTemp", "MaxTemp"},
		{"Cairns", "10", "20"},
		{"Albury", "15", "25"},
		{"Bendigo", "0", "30"},
	})
	renderer := &stubRenderer{}
	action := report.NewTopTempRangeByLocation(report.Config{OutputDir: t.TempDir(), TopN: 2}, renderer)

	res := action.Run(context.Background(), c)
	require.False(t, res.Failed(), "unexpected failure: %v", res.Err)

	// Bendigo leads with 30; Albury and Cairns tie on 10, Albury wins the
	// lexical tie-break but only Bendigo and Albury fit in the top 2.
	assert.Equal(t, []string{"Bendigo", "Albury"}, renderer.lastSpec(t).Categories)
}

func TestTopTempRangeByLocation_MissingColumn(t *testing.T) {
	c := newContainer(t, [][]string{
		{"Location", "MinTemp"},
		{"A", "10"},
	})
	renderer := &stubRenderer{}
	action := report.NewTopTempRangeByLocation(report.Config{OutputDir: t.TempDir()}, renderer)

	res := action.Run(context.Background(), c)
	assert.True(t, res.Failed())
	assert.ErrorIs(t, res.Err, domain.ErrMissingColumn)
	assert.Zero(t, renderer.calls)
}

func TestTopTempRangeByLocation_EmptyContainer(t *testing.T) {
	renderer := &stubRenderer{}
	action := report.NewTopTempRangeByLocation(report.Config{OutputDir: t.TempDir()}, renderer)

	res := action.Run(context.Background(), emptyContainer())
	assert.True(t, res.Failed())
	assert.ErrorIs(t, res.Err, domain.ErrEmptyDataset)
}
