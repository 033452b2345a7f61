package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// report run.
type Metrics struct {
	RowsLoaded       prometheus.Gauge
	ReportsRun       prometheus.Counter
	ReportFailures   *prometheus.CounterVec // labels: report, kind
	ReportDuration   prometheus.Histogram
	GeneratorRunning prometheus.Gauge
}

// NewMetrics creates and registers all report metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.RowsLoaded,
		m.ReportsRun,
		m.ReportFailures,
		m.ReportDuration,
		m.GeneratorRunning,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		RowsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "weather_reports",
			Name:      "rows_loaded",
			Help:      "Number of observation rows in the loaded dataset.",
		}),
		ReportsRun: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_reports",
			Name:      "reports_run_total",
			Help:      "Total report actions executed, successful or not.",
		}),
		ReportFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_reports",
			Name:      "report_failures_total",
			Help:      "Failed report actions by report and error kind.",
		}, []string{"report", "kind"}),
		ReportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_reports",
			Name:      "report_duration_seconds",
			Help:      "Duration of a single report action run.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		GeneratorRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "weather_reports",
			Name:      "generator_running",
			Help:      "1 while the report generator is executing actions, 0 otherwise.",
		}),
	}
}
