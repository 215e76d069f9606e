package fleet

import (
	"sort"

	"driver-stats/domain/table"

	"github.com/shopspring/decimal"
)

// Totals holds the exact sums for one driver.
type Totals struct {
	Hours decimal.Decimal
	Miles decimal.Decimal
}

// GroupTotals sums hours and miles per driver id.
func GroupTotals(entries []TimesheetEntry) map[string]Totals {
	res := make(map[string]Totals)
	for _, e := range entries {
		t := res[e.DriverID]
		t.Hours = t.Hours.Add(e.Hours)
		t.Miles = t.Miles.Add(e.Miles)
		res[e.DriverID] = t
	}
	return res
}

// BuildSummary left-joins the roster onto the grouped timesheet totals.
//
// Every roster row yields exactly one summary row, duplicates included.
// Timesheet ids missing from the roster are dropped. Drivers without entries
// get zero totals. Totals are truncated toward zero, so fractional hours and
// miles are lost. Rows are ordered by total miles then total hours, both
// descending; ties keep roster order.
func BuildSummary(drivers, timesheet *table.Table) ([]DriverSummary, error) {
	entries, err := Entries(timesheet)
	if err != nil {
		return nil, err
	}
	roster, err := Drivers(drivers)
	if err != nil {
		return nil, err
	}
	totals := GroupTotals(entries)

	out := make([]DriverSummary, 0, len(roster))
	for _, d := range roster {
		t := totals[d.ID]
		out = append(out, DriverSummary{
			DriverID:   d.ID,
			Name:       d.Name,
			TotalHours: t.Hours.IntPart(),
			TotalMiles: t.Miles.IntPart(),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalMiles != out[j].TotalMiles {
			return out[i].TotalMiles > out[j].TotalMiles
		}
		return out[i].TotalHours > out[j].TotalHours
	})
	return out, nil
}

// TopByMiles returns the n rows with the largest total miles. Ties keep the
// order they have in summary. The input slice is left untouched.
func TopByMiles(summary []DriverSummary, n int) []DriverSummary {
	if n <= 0 {
		return []DriverSummary{}
	}
	sorted := append([]DriverSummary(nil), summary...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].TotalMiles > sorted[j].TotalMiles })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
