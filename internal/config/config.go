package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	DataFile  string
	Delimiter rune
	OutputDir string
	LogLevel  string
	LogFormat string

	// Reports is the ordered list of report identifiers to run.
	Reports      []string
	TopN         int
	PreviewLines int

	ChartWidthCm  float64
	ChartHeightCm float64
}

// DefaultReports is the full report set in its default execution order.
const DefaultReports = "preview,summary_stats,average_rainfall,mean_rainfall_by_area,top_temp_range_by_location"

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	delimiter, err := parseDelimiter()
	if err != nil {
		return nil, err
	}

	topN, err := parsePositiveInt("REPORT_TOP_N", 10)
	if err != nil {
		return nil, err
	}

	previewLines, err := parsePositiveInt("PREVIEW_LINES", 5)
	if err != nil {
		return nil, err
	}

	chartWidth, err := parsePositiveFloat("CHART_WIDTH_CM", 30)
	if err != nil {
		return nil, err
	}

	chartHeight, err := parsePositiveFloat("CHART_HEIGHT_CM", 20)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DataFile:      envOrDefault("DATA_FILE", "data/weather.csv"),
		Delimiter:     delimiter,
		OutputDir:     envOrDefault("OUTPUT_DIR", "reports"),
		LogLevel:      envOrDefault("LOG_LEVEL", "info"),
		LogFormat:     envOrDefault("LOG_FORMAT", "json"),
		Reports:       splitReports(envOrDefault("REPORTS", DefaultReports)),
		TopN:          topN,
		PreviewLines:  previewLines,
		ChartWidthCm:  chartWidth,
		ChartHeightCm: chartHeight,
	}

	if cfg.DataFile == "" {
		return nil, errors.New("DATA_FILE is required")
	}
	if cfg.OutputDir == "" {
		return nil, errors.New("OUTPUT_DIR is required")
	}
	if len(cfg.Reports) == 0 {
		return nil, errors.New("REPORTS must name at least one report")
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid LOG_LEVEL %q", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitReports parses the ordered comma-separated report list, dropping empty
// entries so trailing commas are harmless.
func splitReports(s string) []string {
	parts := strings.Split(s, ",")
	reports := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			reports = append(reports, p)
		}
	}
	return reports
}

func parseDelimiter() (rune, error) {
	s := envOrDefault("DATA_DELIMITER", ",")
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("invalid DATA_DELIMITER %q: must be a single character", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func parsePositiveInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", key, s)
	}
	return n, nil
}

func parsePositiveFloat(key string, fallback float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive number", key, s)
	}
	return v, nil
}
