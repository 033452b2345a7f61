// Package render is the plotting collaborator: it turns ranked aggregates
// into bar-chart image files. Report actions depend on the BarChartRenderer
// interface so tests can substitute a recorder.
package render

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/couchcryptid/weather-report-service/internal/domain"
)

// ChartSpec describes one bar chart: parallel category/value slices plus
// presentation fields and the destination path.
type ChartSpec struct {
	Title      string
	XLabel     string
	YLabel     string
	Categories []string
	Values     []float64
	OutputPath string
}

// BarChartRenderer renders a ChartSpec to an image file.
type BarChartRenderer interface {
	RenderBarChart(ctx context.Context, spec ChartSpec) error
}

// PNGRenderer draws bar charts with gonum/plot and writes them as PNG files.
// The image is encoded into memory and reaches its final name only through a
// rename of a fully written temp file, so a failed render or a failed write
// never leaves a partial file behind.
type PNGRenderer struct {
	width  vg.Length
	height vg.Length
}

// NewPNGRenderer creates a renderer producing images of the given size in
// centimeters. Non-positive dimensions fall back to 30x20cm.
func NewPNGRenderer(widthCm, heightCm float64) *PNGRenderer {
	if widthCm <= 0 {
		widthCm = 30
	}
	if heightCm <= 0 {
		heightCm = 20
	}
	return &PNGRenderer{
		width:  vg.Length(widthCm) * vg.Centimeter,
		height: vg.Length(heightCm) * vg.Centimeter,
	}
}

// RenderBarChart draws one bar per category and writes the PNG to
// spec.OutputPath, creating the directory if needed. All failures wrap
// domain.ErrRender.
func (r *PNGRenderer) RenderBarChart(ctx context.Context, spec ChartSpec) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrRender, err)
	}
	if len(spec.Categories) == 0 {
		return fmt.Errorf("%w: no categories to chart", domain.ErrRender)
	}
	if len(spec.Categories) != len(spec.Values) {
		return fmt.Errorf("%w: %d categories for %d values", domain.ErrRender, len(spec.Categories), len(spec.Values))
	}

	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel

	values := make(plotter.Values, len(spec.Values))
	copy(values, spec.Values)

	bars, err := plotter.NewBarChart(values, vg.Points(20))
	if err != nil {
		return fmt.Errorf("%w: build bars: %w", domain.ErrRender, err)
	}
	bars.Color = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	bars.LineStyle.Width = vg.Length(0)

	p.Add(bars, plotter.NewGrid())
	p.NominalX(spec.Categories...)
	p.X.Tick.Label.Rotation = math.Pi / 3
	p.X.Tick.Label.YAlign = draw.YCenter
	p.X.Tick.Label.XAlign = draw.XCenter

	wt, err := p.WriterTo(r.width, r.height, "png")
	if err != nil {
		return fmt.Errorf("%w: encode png: %w", domain.ErrRender, err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return fmt.Errorf("%w: encode png: %w", domain.ErrRender, err)
	}

	if err := os.MkdirAll(filepath.Dir(spec.OutputPath), 0o755); err != nil {
		return fmt.Errorf("%w: create output dir: %w", domain.ErrRender, err)
	}
	if err := writeFileAtomic(spec.OutputPath, buf.Bytes()); err != nil {
		return fmt.Errorf("%w: write chart: %w", domain.ErrRender, err)
	}
	return nil
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it into place, so the target path only ever holds a complete file.
// The temp file is removed on any failure.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
