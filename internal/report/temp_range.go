package report

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/couchcryptid/weather-report-service/internal/domain"
	"github.com/couchcryptid/weather-report-service/internal/render"
	"github.com/couchcryptid/weather-report-service/internal/store"
)

// TopTempRangeByLocation charts the locations with the widest average daily
// temperature range. Unlike MeanRainfallByArea it works record-by-record
// rather than over the table: filter out rows missing either temperature
// bound, map each survivor to a (location, range) pair, then reduce pairs
// into per-location running sums.
type TopTempRangeByLocation struct {
	cfg      Config
	renderer render.BarChartRenderer
}

// NewTopTempRangeByLocation binds a Config to the action, filling in the
// default filename where unset.
func NewTopTempRangeByLocation(cfg Config, renderer render.BarChartRenderer) *TopTempRangeByLocation {
	if cfg.Filename == "" {
		cfg.Filename = ReportTopTempRange + ".png"
	}
	return &TopTempRangeByLocation{cfg: cfg, renderer: renderer}
}

// Name implements Action.
func (a *TopTempRangeByLocation) Name() string { return ReportTopTempRange }

// locRange is one surviving record mapped to its contribution.
type locRange struct {
	Location string
	Range    float64
}

// Run implements Action.
func (a *TopTempRangeByLocation) Run(ctx context.Context, c *store.Container) Result {
	rows, err := c.Rows()
	if err != nil {
		return failure(a.Name(), err)
	}
	for _, col := range []string{"MinTemp", "MaxTemp"} {
		if !c.HasColumn(col) {
			return failure(a.Name(), fmt.Errorf("%w: %s", domain.ErrMissingColumn, col))
		}
	}

	// Filter: both bounds must be measured. A missing bound drops the row,
	// it is never read as zero. Rows without a location are dropped too,
	// matching the rainfall report; an unnamed bar attributes the range to
	// nothing.
	measured := lo.Filter(rows, func(r domain.Row, _ int) bool {
		_, ok := r.TempRange()
		return ok && r.HasLocation()
	})

	// Map: survivors become (location, max-min) pairs.
	ranges := lo.Map(measured, func(r domain.Row, _ int) locRange {
		span, _ := r.TempRange()
		return locRange{Location: r.Location, Range: span}
	})

	// Reduce: accumulate (sum, count) per location.
	type ac struct {
		sum   float64
		count int
	}
	byLocation := make(map[string]*ac)
	for _, lr := range ranges {
		entry, ok := byLocation[lr.Location]
		if !ok {
			entry = &ac{}
			byLocation[lr.Location] = entry
		}
		entry.sum += lr.Range
		entry.count++
	}

	if len(byLocation) == 0 {
		return failure(a.Name(), fmt.Errorf("%w: no rows with both MinTemp and MaxTemp", domain.ErrEmptyDataset))
	}

	metrics := make([]locationMetric, 0, len(byLocation))
	for location, entry := range byLocation {
		metrics = append(metrics, locationMetric{
			Location: location,
			Value:    entry.sum / float64(entry.count),
		})
	}
	top := rankTop(metrics, a.cfg.topN())

	categories, values := chartData(top)
	spec := render.ChartSpec{
		Title:      "Top average temperature range by location",
		XLabel:     "Location",
		YLabel:     "Average range (°C)",
		Categories: categories,
		Values:     values,
		OutputPath: a.cfg.outputPath(),
	}
	if err := a.renderer.RenderBarChart(ctx, spec); err != nil {
		return failure(a.Name(), err)
	}
	return artifact(a.Name(), spec.OutputPath)
}
