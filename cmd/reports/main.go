// Command reports loads a delimited weather observation file and runs the
// configured report actions over it, writing chart artifacts and printing
// textual reports. Exit codes: 0 all reports succeeded, 1 fatal startup or
// load error, 2 at least one report failed.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/weather-report-service/internal/config"
	"github.com/couchcryptid/weather-report-service/internal/loader"
	"github.com/couchcryptid/weather-report-service/internal/observability"
	"github.com/couchcryptid/weather-report-service/internal/render"
	"github.com/couchcryptid/weather-report-service/internal/report"
	"github.com/couchcryptid/weather-report-service/internal/store"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	logger.Info("loading weather data", "file", cfg.DataFile)
	df, err := loader.Load(cfg.DataFile, cfg.Delimiter)
	if err != nil {
		logger.Error("failed to load dataset", "error", err)
		return 1
	}

	container := store.New(df)
	metrics.RowsLoaded.Set(float64(container.Len()))
	logger.Info("dataset loaded", "rows", container.Len(), "columns", df.Ncol())

	renderer := render.NewPNGRenderer(cfg.ChartWidthCm, cfg.ChartHeightCm)
	generator := report.NewGenerator(container, renderer, logger, metrics)

	if _, err := generator.BuildActions(reportConfigs(cfg)); err != nil {
		logger.Error("invalid report configuration", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	results := generator.RunReports(ctx)

	failed := 0
	for _, res := range results {
		if res.Failed() {
			failed++
			continue
		}
		if res.Summary != "" {
			fmt.Println(res.Summary)
		}
	}

	logger.Info("run complete", "reports", len(results), "failed", failed)
	if failed > 0 {
		return 2
	}
	return 0
}

// reportConfigs expands the ordered report list from the environment into one
// declarative Config per report. Only the chart reports get a filename; the
// textual reports have no artifact to name.
func reportConfigs(cfg *config.Config) []report.Config {
	configs := make([]report.Config, 0, len(cfg.Reports))
	for _, name := range cfg.Reports {
		rc := report.Config{
			Name:         name,
			OutputDir:    cfg.OutputDir,
			TopN:         cfg.TopN,
			PreviewLines: cfg.PreviewLines,
		}
		switch name {
		case report.ReportMeanRainfallByArea, report.ReportTopTempRange:
			rc.Filename = name + ".png"
		}
		configs = append(configs, rc)
	}
	return configs
}
