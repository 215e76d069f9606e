package generate

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"driver-stats/connectors/chart"
	"driver-stats/connectors/config"
	ccsv "driver-stats/connectors/csv"
	"driver-stats/domain/fleet"

	"gonum.org/v1/plot/vg"
)

// Result lists the files written by a pipeline run.
type Result struct {
	SummaryPath string
	PlotPath    string
	Drivers     int
}

// Run executes the generate command (no extra args expected)
func Run(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("generate: no arguments expected")
	}
	cfg, err := config.LoadDefault()
	if err != nil {
		return err
	}
	base, err := BaseDir(cfg)
	if err != nil {
		return err
	}
	opts, err := ChartOptions(cfg)
	if err != nil {
		return err
	}

	slog.Info("generate.start", "base", base)
	res, err := Pipeline(base, opts)
	if err != nil {
		return err
	}
	slog.Info("generate.done", "drivers", res.Drivers, "summary", res.SummaryPath, "plot", res.PlotPath)
	return nil
}

// Pipeline runs load, aggregate, summary and chart in order. It stops at the
// first failure; files already written stay in place.
func Pipeline(base string, opts chart.Options) (Result, error) {
	var res Result

	drivers, timesheet, err := ccsv.LoadInputs(base)
	if err != nil {
		slog.Error("phase.load.error", "error", err)
		return res, fmt.Errorf("load inputs: %w", err)
	}
	slog.Info("phase.load.done", "drivers", drivers.Len(), "timesheet", timesheet.Len())

	summary, err := fleet.BuildSummary(drivers, timesheet)
	if err != nil {
		slog.Error("phase.aggregate.error", "error", err)
		return res, fmt.Errorf("build summary: %w", err)
	}
	res.Drivers = len(summary)

	res.SummaryPath, err = ccsv.SaveSummary(summary, base)
	if err != nil {
		slog.Error("phase.summary.write.error", "error", err)
		return res, fmt.Errorf("save summary: %w", err)
	}
	slog.Info("phase.summary.write.done", "path", res.SummaryPath)

	res.PlotPath, err = chart.SaveTop10PlotWith(summary, base, opts)
	if err != nil {
		slog.Error("phase.plot.write.error", "error", err)
		return res, fmt.Errorf("save plot: %w", err)
	}
	slog.Info("phase.plot.write.done", "path", res.PlotPath)
	return res, nil
}

// BaseDir returns cfg.BaseDir when set, otherwise the parent of the
// directory holding the running executable.
func BaseDir(cfg *config.Config) (string, error) {
	if cfg != nil && cfg.BaseDir != "" {
		return filepath.Abs(cfg.BaseDir)
	}
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(filepath.Dir(exe)), nil
}

// ChartOptions applies the chart section of cfg over the defaults.
func ChartOptions(cfg *config.Config) (chart.Options, error) {
	opts := chart.DefaultOptions()
	if cfg == nil {
		return opts, nil
	}
	if cfg.Chart.WidthIn > 0 {
		opts.Width = vg.Length(cfg.Chart.WidthIn) * vg.Inch
	}
	if cfg.Chart.HeightIn > 0 {
		opts.Height = vg.Length(cfg.Chart.HeightIn) * vg.Inch
	}
	if cfg.Chart.Color != "" {
		c, err := chart.ParseColor(cfg.Chart.Color)
		if err != nil {
			return opts, err
		}
		opts.Color = c
	}
	return opts, nil
}
