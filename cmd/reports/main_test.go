package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/weather-report-service/internal/config"
	"github.com/couchcryptid/weather-report-service/internal/report"
)

func TestReportConfigs(t *testing.T) {
	cfg := &config.Config{
		OutputDir:    "out/charts",
		TopN:         3,
		PreviewLines: 7,
		Reports: []string{
			report.ReportPreview,
			report.ReportSummaryStats,
			report.ReportAverageRainfall,
			report.ReportMeanRainfallByArea,
			report.ReportTopTempRange,
		},
	}

	configs := reportConfigs(cfg)
	require.Len(t, configs, len(cfg.Reports))

	for i, rc := range configs {
		assert.Equal(t, cfg.Reports[i], rc.Name)
		assert.Equal(t, "out/charts", rc.OutputDir)
		assert.Equal(t, 3, rc.TopN)
		assert.Equal(t, 7, rc.PreviewLines)
	}

	// Only the chart reports carry a filename.
	assert.Empty(t, configs[0].Filename)
	assert.Empty(t, configs[1].Filename)
	assert.Empty(t, configs[2].Filename)
	assert.Equal(t, report.ReportMeanRainfallByArea+".png", configs[3].Filename)
	assert.Equal(t, report.ReportTopTempRange+".png", configs[4].Filename)
}
