package table

import (
	"errors"
	"fmt"
	"strings"

	lo "github.com/samber/lo"
)

// ErrColumnNotFound is returned when a named column is absent from a table.
var ErrColumnNotFound = errors.New("column not found")

// Table is an ordered sequence of records sharing one header.
// Row order and the column set are kept exactly as read.
type Table struct {
	Columns []string
	Rows    [][]string
}

// New builds a table. Header names are trimmed; cells are kept as-is.
func New(columns []string, rows [][]string) *Table {
	cols := lo.Map(columns, func(c string, _ int) string { return strings.TrimSpace(c) })
	return &Table{Columns: cols, Rows: rows}
}

func (t *Table) Len() int { return len(t.Rows) }

// Index returns the position of column in the header.
func (t *Table) Index(column string) (int, error) {
	_, i, ok := lo.FindIndexOf(t.Columns, func(c string) bool { return c == column })
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrColumnNotFound, column)
	}
	return i, nil
}

// Value returns the cell at row i for column.
func (t *Table) Value(i int, column string) (string, error) {
	idx, err := t.Index(column)
	if err != nil {
		return "", err
	}
	return t.Rows[i][idx], nil
}

// Column returns every value of the named column in row order.
func (t *Table) Column(name string) ([]string, error) {
	idx, err := t.Index(name)
	if err != nil {
		return nil, err
	}
	return lo.Map(t.Rows, func(r []string, _ int) string { return r[idx] }), nil
}

// Project returns a new table holding only the given columns, in that order.
func (t *Table) Project(columns ...string) (*Table, error) {
	idx := make([]int, len(columns))
	for i, c := range columns {
		j, err := t.Index(c)
		if err != nil {
			return nil, err
		}
		idx[i] = j
	}
	rows := lo.Map(t.Rows, func(r []string, _ int) []string {
		return lo.Map(idx, func(j int, _ int) string { return r[j] })
	})
	return &Table{Columns: append([]string(nil), columns...), Rows: rows}, nil
}
