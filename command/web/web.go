package web

import (
	"errors"
	"flag"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"driver-stats/connectors/chart"
	ccsv "driver-stats/connectors/csv"
	"driver-stats/domain/fleet"
	"driver-stats/domain/table"

	"github.com/labstack/echo/v4"
	lo "github.com/samber/lo"
)

// Run starts a small Echo web server exposing the generated outputs.
//
// Usage:
//
//	driver-stats web [-addr :8080] [-base .]
//
// Endpoints:
//
//	GET /api/summary               -> <base>/files/output/summary.csv as JSON
//	GET /api/summary/top10         -> the ten rows drawn on the chart
//	GET /plots/top10_drivers.png   -> <base>/files/plots/top10_drivers.png
func Run(args []string) error {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	addr := fs.String("addr", ":8080", "http listen address (host:port)")
	base := fs.String("base", ".", "base directory holding files/output and files/plots")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return NewServer(*base).Start(*addr)
}

// NewServer wires the routes for base without starting to listen.
func NewServer(base string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	summaryPath := filepath.Join(ccsv.OutputDir(base), ccsv.SummaryFile)
	plotPath := filepath.Join(chart.PlotsDir(base), chart.PlotFile)

	e.GET("/api/summary", func(c echo.Context) error {
		t, err := ccsv.ReadTable(summaryPath)
		if err != nil {
			return fileError(c, summaryPath, err)
		}
		return c.JSON(http.StatusOK, rowsAsObjects(t))
	})

	e.GET("/api/summary/top10", func(c echo.Context) error {
		t, err := ccsv.ReadTable(summaryPath)
		if err != nil {
			return fileError(c, summaryPath, err)
		}
		summary, err := parseSummary(t)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]any{
				"error":   err.Error(),
				"path":    summaryPath,
				"message": "summary file is malformed",
			})
		}
		return c.JSON(http.StatusOK, fleet.TopByMiles(summary, chart.TopN))
	})

	e.GET("/plots/"+chart.PlotFile, func(c echo.Context) error {
		if _, err := os.Stat(plotPath); err != nil {
			return fileError(c, plotPath, err)
		}
		return c.File(plotPath)
	})
	return e
}

func fileError(c echo.Context, path string, err error) error {
	if errors.Is(err, os.ErrNotExist) {
		return c.JSON(http.StatusNotFound, map[string]any{
			"error":   "file not found",
			"path":    path,
			"message": "run generate first",
		})
	}
	return c.JSON(http.StatusInternalServerError, map[string]any{
		"error":   err.Error(),
		"path":    path,
		"message": "failed to read file",
	})
}

// rowsAsObjects keys each row by header. Values stay strings.
func rowsAsObjects(t *table.Table) []map[string]string {
	return lo.Map(t.Rows, func(row []string, _ int) map[string]string {
		obj := make(map[string]string, len(t.Columns))
		for j := 0; j < len(t.Columns) && j < len(row); j++ {
			obj[t.Columns[j]] = row[j]
		}
		return obj
	})
}

func parseSummary(t *table.Table) ([]fleet.DriverSummary, error) {
	p, err := t.Project(fleet.Header...)
	if err != nil {
		return nil, err
	}
	out := make([]fleet.DriverSummary, 0, p.Len())
	for _, r := range p.Rows {
		hours, err := strconv.ParseInt(r[2], 10, 64)
		if err != nil {
			return nil, err
		}
		miles, err := strconv.ParseInt(r[3], 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, fleet.DriverSummary{DriverID: r[0], Name: r[1], TotalHours: hours, TotalMiles: miles})
	}
	return out, nil
}
