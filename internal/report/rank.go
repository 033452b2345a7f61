package report

import "sort"

// locationMetric pairs a location with its aggregated value.
type locationMetric struct {
	Location string
	Value    float64
}

// rankTop sorts metrics descending by value, with ties broken by ascending
// location so the ordering is deterministic, and keeps at most n entries.
// When fewer than n exist, all are kept.
func rankTop(metrics []locationMetric, n int) []locationMetric {
	sort.Slice(metrics, func(i, j int) bool {
		if metrics[i].Value != metrics[j].Value {
			return metrics[i].Value > metrics[j].Value
		}
		return metrics[i].Location < metrics[j].Location
	})
	if n > 0 && len(metrics) > n {
		metrics = metrics[:n]
	}
	return metrics
}

// chartData splits ranked metrics into the parallel category/value slices the
// renderer consumes.
func chartData(metrics []locationMetric) ([]string, []float64) {
	categories := make([]string, len(metrics))
	values := make([]float64, len(metrics))
	for i, m := range metrics {
		categories[i] = m.Location
		values[i] = m.Value
	}
	return categories, values
}
