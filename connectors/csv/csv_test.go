package csv_test

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	ccsv "driver-stats/connectors/csv"
	"driver-stats/domain/fleet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, base, name, body string) {
	t.Helper()
	dir := ccsv.InputDir(base)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestLoadInputs(t *testing.T) {
	base := t.TempDir()
	writeInput(t, base, "drivers.csv", "\ufeffdriverId,name,phone\n1,Alice,555\n2,\"Bob, Jr.\",556\n")
	writeInput(t, base, "timesheet.csv", "driverId,hours-logged,miles-logged\n1,5,100\n1,3,50\n2,2,20\n")

	drivers, timesheet, err := ccsv.LoadInputs(base)
	require.NoError(t, err)
	assert.Equal(t, []string{"driverId", "name", "phone"}, drivers.Columns)
	assert.Equal(t, [][]string{{"1", "Alice", "555"}, {"2", "Bob, Jr.", "556"}}, drivers.Rows)
	assert.Equal(t, 3, timesheet.Len())
}

func TestLoadInputs_MissingFile(t *testing.T) {
	base := t.TempDir()
	writeInput(t, base, "drivers.csv", "driverId,name\n1,Alice\n")

	_, _, err := ccsv.LoadInputs(base)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadInputs_MalformedRow(t *testing.T) {
	base := t.TempDir()
	writeInput(t, base, "drivers.csv", "driverId,name\n1,Alice,extra\n")
	writeInput(t, base, "timesheet.csv", "driverId,hours-logged,miles-logged\n")

	_, _, err := ccsv.LoadInputs(base)
	var perr *csv.ParseError
	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, err, csv.ErrFieldCount)
}

func TestReadTable_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	_, err := ccsv.ReadTable(path)
	assert.ErrorIs(t, err, ccsv.ErrEmptyFile)
}

func TestSaveSummary(t *testing.T) {
	base := t.TempDir()
	summary := []fleet.DriverSummary{
		{DriverID: "1", Name: "Alice", TotalHours: 8, TotalMiles: 150},
		{DriverID: "2", Name: "Bob, Jr.", TotalHours: 2, TotalMiles: 20},
	}
	path, err := ccsv.SaveSummary(summary, base)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "files", "output", "summary.csv"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "driverId,name,total_hours,total_miles\n1,Alice,8,150\n2,\"Bob, Jr.\",2,20\n"
	assert.Equal(t, want, string(b))
}

func TestSaveSummary_OverwritesAndIsIdempotent(t *testing.T) {
	base := t.TempDir()
	_, err := ccsv.SaveSummary([]fleet.DriverSummary{{DriverID: "9", Name: "Old", TotalMiles: 1}}, base)
	require.NoError(t, err)

	summary := []fleet.DriverSummary{{DriverID: "1", Name: "Alice", TotalHours: 1, TotalMiles: 2}}
	path, err := ccsv.SaveSummary(summary, base)
	require.NoError(t, err)
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = ccsv.SaveSummary(summary, base)
	require.NoError(t, err)
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.NotContains(t, string(second), "Old")
}
