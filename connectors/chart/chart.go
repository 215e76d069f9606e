package chart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"driver-stats/domain/fleet"

	lo "github.com/samber/lo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	PlotFile = "top10_drivers.png"
	TopN     = 10
)

// Options controls the look of the rendered chart.
type Options struct {
	Width  vg.Length
	Height vg.Length
	Color  color.Color
	Title  string
	XLabel string
}

func DefaultOptions() Options {
	return Options{
		Width:  10 * vg.Inch,
		Height: 6 * vg.Inch,
		Color:  color.RGBA{R: 0x4C, G: 0x78, B: 0xA8, A: 0xFF},
		Title:  "Top 10 drivers by miles",
		XLabel: "Total miles",
	}
}

func PlotsDir(base string) string { return filepath.Join(base, "files", "plots") }

// SaveTop10Plot renders the top drivers by miles with the default options.
func SaveTop10Plot(summary []fleet.DriverSummary, base string) (string, error) {
	return SaveTop10PlotWith(summary, base, DefaultOptions())
}

// SaveTop10PlotWith renders a horizontal bar chart of the TopN drivers by
// total miles to <base>/files/plots/top10_drivers.png, largest bar on top.
func SaveTop10PlotWith(summary []fleet.DriverSummary, base string, opts Options) (string, error) {
	dir := PlotsDir(base)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, PlotFile)

	p, err := Build(fleet.TopByMiles(summary, TopN), opts)
	if err != nil {
		return "", err
	}
	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return "", fmt.Errorf("save plot %s: %w", path, err)
	}
	return path, nil
}

// Build lays out the bar chart for rows, which are expected in descending
// order. The plot is built fresh on each call.
func Build(rows []fleet.DriverSummary, opts Options) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.X.Min = 0
	if len(rows) == 0 {
		return p, nil
	}

	// plot rows bottom-up so the first row ends up at the top
	rev := lo.Reverse(append([]fleet.DriverSummary(nil), rows...))
	values := make(plotter.Values, len(rev))
	for i, r := range rev {
		values[i] = float64(r.TotalMiles)
	}
	bars, err := plotter.NewBarChart(values, barWidth(opts.Height, len(rev)))
	if err != nil {
		return nil, fmt.Errorf("bar chart: %w", err)
	}
	bars.Horizontal = true
	bars.Color = opts.Color
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalY(lo.Map(rev, func(r fleet.DriverSummary, _ int) string { return r.Name })...)
	return p, nil
}

func barWidth(height vg.Length, n int) vg.Length {
	w := height / vg.Length(n) * 0.6
	return min(w, 0.4*vg.Inch)
}

// ParseColor parses a #RRGGBB hex string.
func ParseColor(s string) (color.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return nil, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}, nil
}
