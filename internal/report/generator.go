package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/weather-report-service/internal/domain"
	"github.com/couchcryptid/weather-report-service/internal/observability"
	"github.com/couchcryptid/weather-report-service/internal/render"
	"github.com/couchcryptid/weather-report-service/internal/store"
)

// actionFactory builds a concrete Action from its Config.
type actionFactory func(cfg Config, renderer render.BarChartRenderer) Action

// registry maps report identifiers to factories. Adding a report type means
// adding one entry here.
var registry = map[string]actionFactory{
	ReportPreview: func(cfg Config, _ render.BarChartRenderer) Action {
		return NewPreview(cfg)
	},
	ReportSummaryStats: func(cfg Config, _ render.BarChartRenderer) Action {
		return NewSummaryStats(cfg)
	},
	ReportAverageRainfall: func(cfg Config, _ render.BarChartRenderer) Action {
		return NewAverageRainfall(cfg)
	},
	ReportMeanRainfallByArea: func(cfg Config, r render.BarChartRenderer) Action {
		return NewMeanRainfallByArea(cfg, r)
	},
	ReportTopTempRange: func(cfg Config, r render.BarChartRenderer) Action {
		return NewTopTempRangeByLocation(cfg, r)
	},
}

// Generator translates an ordered Config sequence into bound Actions and
// executes them in order, collecting one Result per action.
type Generator struct {
	container *store.Container
	renderer  render.BarChartRenderer
	logger    *slog.Logger
	metrics   *observability.Metrics
	actions   []Action
}

// NewGenerator creates a Generator over the given container. Timestamps come
// from the domain clock, which tests can freeze via domain.SetClock.
func NewGenerator(c *store.Container, renderer render.BarChartRenderer, logger *slog.Logger, metrics *observability.Metrics) *Generator {
	return &Generator{
		container: c,
		renderer:  renderer,
		logger:    logger,
		metrics:   metrics,
	}
}

// BuildActions maps each Config to exactly one Action, preserving order. An
// unrecognized identifier is a configuration mistake, not a data condition,
// and aborts the build.
func (g *Generator) BuildActions(configs []Config) ([]Action, error) {
	actions := make([]Action, 0, len(configs))
	for _, cfg := range configs {
		factory, ok := registry[cfg.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownReportType, cfg.Name)
		}
		actions = append(actions, factory(cfg, g.renderer))
	}
	g.actions = actions
	return actions, nil
}

// RunReports executes the built actions strictly sequentially in build order.
// A failing action is captured in its Result and never halts the remaining
// actions; callers always get exactly one Result per action, in order.
func (g *Generator) RunReports(ctx context.Context) []Result {
	g.metrics.GeneratorRunning.Set(1)
	defer g.metrics.GeneratorRunning.Set(0)

	results := make([]Result, 0, len(g.actions))
	for _, action := range g.actions {
		res := g.runOne(ctx, action)
		results = append(results, res)

		g.metrics.ReportsRun.Inc()
		g.metrics.ReportDuration.Observe(res.Duration.Seconds())

		if res.Failed() {
			kind := domain.ErrorKind(res.Err)
			g.metrics.ReportFailures.WithLabelValues(res.Report, kind).Inc()
			g.logger.Error("report failed",
				"report", res.Report,
				"kind", kind,
				"error", res.Err,
				"duration", res.Duration,
			)
			continue
		}
		g.logger.Info("report completed",
			"report", res.Report,
			"artifact", res.ArtifactPath,
			"duration", res.Duration,
		)
	}
	return results
}

// runOne executes a single action, stamping timing and containing panics so
// one broken report cannot take down the rest of the run.
func (g *Generator) runOne(ctx context.Context, action Action) (res Result) {
	start := domain.Now()
	defer func() {
		if r := recover(); r != nil {
			res = Result{Report: action.Name(), Err: fmt.Errorf("report panicked: %v", r)}
		}
		res.GeneratedAt = start
		res.Duration = domain.Since(start)
	}()
	return action.Run(ctx, g.container)
}
