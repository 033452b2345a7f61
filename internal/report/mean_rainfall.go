package report

import (
	"context"
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/couchcryptid/weather-report-service/internal/domain"
	"github.com/couchcryptid/weather-report-service/internal/render"
	"github.com/couchcryptid/weather-report-service/internal/store"
)

// MeanRainfallByArea charts the locations with the highest mean rainfall.
// The aggregation runs over the tabular view: drop rows missing either
// column, group by location, take the arithmetic mean per group.
type MeanRainfallByArea struct {
	cfg      Config
	renderer render.BarChartRenderer
}

// NewMeanRainfallByArea binds a Config to the action, filling in the default
// grouping column, value column, and filename where unset.
func NewMeanRainfallByArea(cfg Config, renderer render.BarChartRenderer) *MeanRainfallByArea {
	if cfg.GroupColumn == "" {
		cfg.GroupColumn = "Location"
	}
	if cfg.ValueColumn == "" {
		cfg.ValueColumn = "Rainfall"
	}
	if cfg.Filename == "" {
		cfg.Filename = ReportMeanRainfallByArea + ".png"
	}
	return &MeanRainfallByArea{cfg: cfg, renderer: renderer}
}

// Name implements Action.
func (a *MeanRainfallByArea) Name() string { return ReportMeanRainfallByArea }

// Run implements Action.
func (a *MeanRainfallByArea) Run(ctx context.Context, c *store.Container) Result {
	df, err := c.DataFrame()
	if err != nil {
		return failure(a.Name(), err)
	}
	for _, col := range []string{a.cfg.GroupColumn, a.cfg.ValueColumn} {
		if !c.HasColumn(col) {
			return failure(a.Name(), fmt.Errorf("%w: %s", domain.ErrMissingColumn, col))
		}
	}

	measured := df.
		Select([]string{a.cfg.GroupColumn, a.cfg.ValueColumn}).
		Filter(dataframe.F{Colname: a.cfg.GroupColumn, Comparator: series.CompFunc, Comparando: hasValue}).
		Filter(dataframe.F{Colname: a.cfg.ValueColumn, Comparator: series.CompFunc, Comparando: hasValue})
	if measured.Err != nil {
		return failure(a.Name(), fmt.Errorf("filter rows: %w", measured.Err))
	}
	if measured.Nrow() == 0 {
		return failure(a.Name(), fmt.Errorf("%w: no rows with both %s and %s",
			domain.ErrEmptyDataset, a.cfg.GroupColumn, a.cfg.ValueColumn))
	}

	agg := measured.GroupBy(a.cfg.GroupColumn).Aggregation(
		[]dataframe.AggregationType{dataframe.Aggregation_MEAN},
		[]string{a.cfg.ValueColumn},
	)
	if agg.Err != nil {
		return failure(a.Name(), fmt.Errorf("aggregate means: %w", agg.Err))
	}

	metrics, err := metricsFromAggregation(agg, a.cfg.GroupColumn, a.cfg.ValueColumn+"_MEAN")
	if err != nil {
		return failure(a.Name(), err)
	}
	top := rankTop(metrics, a.cfg.topN())

	categories, values := chartData(top)
	spec := render.ChartSpec{
		Title:      fmt.Sprintf("Mean %s by %s", a.cfg.ValueColumn, a.cfg.GroupColumn),
		XLabel:     a.cfg.GroupColumn,
		YLabel:     fmt.Sprintf("Mean %s (mm)", a.cfg.ValueColumn),
		Categories: categories,
		Values:     values,
		OutputPath: a.cfg.outputPath(),
	}
	if err := a.renderer.RenderBarChart(ctx, spec); err != nil {
		return failure(a.Name(), err)
	}
	return artifact(a.Name(), spec.OutputPath)
}

// hasValue is the row filter: keep elements that carry a real value.
func hasValue(el series.Element) bool {
	return !el.IsNA()
}

// metricsFromAggregation reads the grouped means back out of the aggregated
// frame. Gota names the aggregate column "<value>_MEAN".
func metricsFromAggregation(df dataframe.DataFrame, groupCol, meanCol string) ([]locationMetric, error) {
	groups := df.Col(groupCol)
	if groups.Err != nil {
		return nil, fmt.Errorf("read aggregation column %s: %w", groupCol, groups.Err)
	}
	means := df.Col(meanCol)
	if means.Err != nil {
		return nil, fmt.Errorf("read aggregation column %s: %w", meanCol, means.Err)
	}

	metrics := make([]locationMetric, 0, df.Nrow())
	for i := 0; i < df.Nrow(); i++ {
		metrics = append(metrics, locationMetric{
			Location: groups.Elem(i).String(),
			Value:    means.Elem(i).Float(),
		})
	}
	return metrics, nil
}
