package fleet

import (
	"errors"
	"fmt"
	"strings"

	"driver-stats/domain/table"

	"github.com/shopspring/decimal"
)

// Input column names.
const (
	ColDriverID = "driverId"
	ColName     = "name"
	ColHours    = "hours-logged"
	ColMiles    = "miles-logged"
)

// Output column names.
const (
	ColTotalHours = "total_hours"
	ColTotalMiles = "total_miles"
)

// Header is the summary column order.
var Header = []string{ColDriverID, ColName, ColTotalHours, ColTotalMiles}

// ErrNotNumeric is returned when an hours or miles cell cannot be parsed.
var ErrNotNumeric = errors.New("non-numeric value")

// DriverRecord is one roster row.
type DriverRecord struct {
	ID   string
	Name string
}

// TimesheetEntry is one logged record attributable to a driver.
// A blank hours or miles cell is held as zero.
type TimesheetEntry struct {
	DriverID string
	Hours    decimal.Decimal
	Miles    decimal.Decimal
}

// DriverSummary is the per-driver aggregate written to summary.csv.
type DriverSummary struct {
	DriverID   string `json:"driverId"`
	Name       string `json:"name"`
	TotalHours int64  `json:"total_hours"`
	TotalMiles int64  `json:"total_miles"`
}

// Drivers projects the roster table onto driverId/name.
func Drivers(t *table.Table) ([]DriverRecord, error) {
	p, err := t.Project(ColDriverID, ColName)
	if err != nil {
		return nil, fmt.Errorf("drivers: %w", err)
	}
	res := make([]DriverRecord, 0, p.Len())
	for _, r := range p.Rows {
		res = append(res, DriverRecord{ID: r[0], Name: r[1]})
	}
	return res, nil
}

// Entries parses the timesheet table. Blank numeric cells count as missing
// and add nothing to a sum; anything else that is not a number fails.
func Entries(t *table.Table) ([]TimesheetEntry, error) {
	p, err := t.Project(ColDriverID, ColHours, ColMiles)
	if err != nil {
		return nil, fmt.Errorf("timesheet: %w", err)
	}
	res := make([]TimesheetEntry, 0, p.Len())
	for i, r := range p.Rows {
		hours, err := parseNumber(r[1])
		if err != nil {
			return nil, fmt.Errorf("timesheet row %d column %s: %w", i+1, ColHours, err)
		}
		miles, err := parseNumber(r[2])
		if err != nil {
			return nil, fmt.Errorf("timesheet row %d column %s: %w", i+1, ColMiles, err)
		}
		res = append(res, TimesheetEntry{DriverID: r[0], Hours: hours, Miles: miles})
	}
	return res, nil
}

func parseNumber(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w %q", ErrNotNumeric, s)
	}
	return d, nil
}
