package report

import (
	"context"
	"fmt"

	"github.com/couchcryptid/weather-report-service/internal/store"
)

// Preview returns the first PreviewLines rows of the table as text.
type Preview struct {
	cfg Config
}

// NewPreview binds a Config to the action. PreviewLines defaults to 5.
func NewPreview(cfg Config) *Preview {
	if cfg.PreviewLines <= 0 {
		cfg.PreviewLines = 5
	}
	return &Preview{cfg: cfg}
}

// Name implements Action.
func (a *Preview) Name() string { return ReportPreview }

// Run implements Action.
func (a *Preview) Run(_ context.Context, c *store.Container) Result {
	df, err := c.DataFrame()
	if err != nil {
		return failure(a.Name(), err)
	}

	n := a.cfg.PreviewLines
	if n > df.Nrow() {
		n = df.Nrow()
	}
	indexes := make([]int, n)
	for i := range indexes {
		indexes[i] = i
	}

	head := df.Subset(indexes)
	if head.Err != nil {
		return failure(a.Name(), fmt.Errorf("subset rows: %w", head.Err))
	}
	return textResult(a.Name(), head.String())
}

// SummaryStats returns per-column summary statistics, the pandas describe()
// analogue.
type SummaryStats struct {
	cfg Config
}

// NewSummaryStats binds a Config to the action.
func NewSummaryStats(cfg Config) *SummaryStats {
	return &SummaryStats{cfg: cfg}
}

// Name implements Action.
func (a *SummaryStats) Name() string { return ReportSummaryStats }

// Run implements Action.
func (a *SummaryStats) Run(_ context.Context, c *store.Container) Result {
	df, err := c.DataFrame()
	if err != nil {
		return failure(a.Name(), err)
	}

	described := df.Describe()
	if described.Err != nil {
		return failure(a.Name(), fmt.Errorf("describe columns: %w", described.Err))
	}
	return textResult(a.Name(), described.String())
}

// AverageRainfall returns the overall mean rainfall across all observations
// with a measured value. It walks the restartable row iterator rather than
// the table.
type AverageRainfall struct {
	cfg Config
}

// NewAverageRainfall binds a Config to the action.
func NewAverageRainfall(cfg Config) *AverageRainfall {
	return &AverageRainfall{cfg: cfg}
}

// Name implements Action.
func (a *AverageRainfall) Name() string { return ReportAverageRainfall }

// Run implements Action.
func (a *AverageRainfall) Run(_ context.Context, c *store.Container) Result {
	it, err := c.IterRows()
	if err != nil {
		return failure(a.Name(), err)
	}

	var sum float64
	var count int
	for row := range it {
		if v, ok := row.RainfallValue(); ok {
			sum += v
			count++
		}
	}

	if count == 0 {
		return textResult(a.Name(), "average rainfall: N/A (no measured values)")
	}
	return textResult(a.Name(), fmt.Sprintf("average rainfall: %.2f mm over %d observations", sum/float64(count), count))
}
