package csv

import (
	"driver-stats/domain/fleet"
	"driver-stats/domain/table"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Fixed file names under <base>/files.
const (
	DriversFile   = "drivers.csv"
	TimesheetFile = "timesheet.csv"
	SummaryFile   = "summary.csv"
)

// ErrEmptyFile is returned when a CSV file has no header row.
var ErrEmptyFile = errors.New("empty csv file")

func InputDir(base string) string  { return filepath.Join(base, "files", "input") }
func OutputDir(base string) string { return filepath.Join(base, "files", "output") }

// LoadInputs reads the driver roster and the timesheet from <base>/files/input.
func LoadInputs(base string) (*table.Table, *table.Table, error) {
	dir := InputDir(base)
	drivers, err := ReadTable(filepath.Join(dir, DriversFile))
	if err != nil {
		return nil, nil, err
	}
	timesheet, err := ReadTable(filepath.Join(dir, TimesheetFile))
	if err != nil {
		return nil, nil, err
	}
	slog.Debug("csv.inputs.loaded", "drivers", drivers.Len(), "timesheet", timesheet.Len())
	return drivers, timesheet, nil
}

// ReadTable loads a CSV file with a header row. Every data row must have
// as many fields as the header.
func ReadTable(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("read %s: %w", path, ErrEmptyFile)
	}
	head := records[0]
	head[0] = strings.TrimPrefix(head[0], "\ufeff")
	return table.New(head, records[1:]), nil
}

// SaveSummary writes summary to <base>/files/output/summary.csv, replacing
// any previous file, and returns the path written.
func SaveSummary(summary []fleet.DriverSummary, base string) (string, error) {
	path := filepath.Join(OutputDir(base), SummaryFile)
	if err := WriteSummary(path, summary); err != nil {
		return "", err
	}
	return path, nil
}

func WriteSummary(path string, summary []fleet.DriverSummary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(fleet.Header); err != nil {
		return err
	}
	for _, s := range summary {
		row := []string{
			s.DriverID,
			s.Name,
			strconv.FormatInt(s.TotalHours, 10),
			strconv.FormatInt(s.TotalMiles, 10),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}
