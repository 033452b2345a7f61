// Package report contains the report abstraction and aggregation pipeline:
// the polymorphic Action contract, the declarative per-report Config, the
// concrete aggregation actions, and the Generator that builds and executes
// them with per-report failure isolation.
package report

import (
	"context"
	"path/filepath"
	"time"

	"github.com/couchcryptid/weather-report-service/internal/store"
)

// Report identifiers, as they appear in configuration.
const (
	ReportPreview            = "preview"
	ReportSummaryStats       = "summary_stats"
	ReportAverageRainfall    = "average_rainfall"
	ReportMeanRainfallByArea = "mean_rainfall_by_area"
	ReportTopTempRange       = "top_temp_range_by_location"
)

// DefaultTopN bounds the number of charted categories when a Config does not
// set TopN.
const DefaultTopN = 10

// Action is one configured report over the loaded dataset. Implementations
// are stateless beyond their Config, never mutate the container, and convert
// data problems (missing columns, nothing left after filtering) into a
// failing Result rather than propagating errors. An Action is terminal after
// one Run; re-running over an unchanged container yields the same content.
type Action interface {
	Name() string
	Run(ctx context.Context, c *store.Container) Result
}

// Config declares one report: its identity, output target, and tunables.
// Pure data with no behavior; the Generator maps each Config to exactly one
// Action. Several Configs may name the same report type with different
// parameters.
type Config struct {
	Name         string
	OutputDir    string
	Filename     string
	TopN         int
	GroupColumn  string
	ValueColumn  string
	PreviewLines int
}

func (c Config) topN() int {
	if c.TopN > 0 {
		return c.TopN
	}
	return DefaultTopN
}

func (c Config) outputPath() string {
	return filepath.Join(c.OutputDir, c.Filename)
}

// Result is the terminal outcome of one Action run. Exactly one of
// ArtifactPath (chart reports) or Summary (textual reports) is set on
// success; Err is set on failure. Results are never mutated after creation.
type Result struct {
	Report       string
	ArtifactPath string
	Summary      string
	Err          error
	GeneratedAt  time.Time
	Duration     time.Duration
}

// Failed reports whether the action ended in failure.
func (r Result) Failed() bool {
	return r.Err != nil
}

func failure(report string, err error) Result {
	return Result{Report: report, Err: err}
}

func artifact(report, path string) Result {
	return Result{Report: report, ArtifactPath: path}
}

func textResult(report, summary string) Result {
	return Result{Report: report, Summary: summary}
}
