package schema

import (
	"fmt"
	"strings"

	"github.com/leengari/mini-dataframe/internal/domain/data"
	"github.com/leengari/mini-dataframe/internal/domain/errors"
)

// Table is an in-memory dataframe: ordered, uniquely named columns that all
// hold RowCount rows once the table is published.
//
// During ingestion the columns may hold more slots than RowCount (batch
// capacity); Trim restores the invariant before the table leaves the loader.
// Transforms never mutate a published table; they build a new one.
type Table struct {
	Name      string
	Path      string // source file, empty for derived tables
	Separator byte   // delimiter the source was read with, reused by save
	Columns   []*Column
	RowCount  int
}

// NewTable allocates a table with the given column names and capacity
// empty rows per column. RowCount starts at zero.
func NewTable(name string, columnNames []string, capacity int) *Table {
	t := &Table{
		Name:    name,
		Columns: make([]*Column, len(columnNames)),
	}
	for i, colName := range columnNames {
		t.Columns[i] = NewColumn(colName, capacity)
	}
	return t
}

// NumColumns returns the column count
func (t *Table) NumColumns() int {
	return len(t.Columns)
}

// Capacity returns the number of allocated row slots
func (t *Table) Capacity() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return t.Columns[0].Len()
}

// Grow adds n zero-filled row slots to every column. Rows already written
// are preserved exactly.
func (t *Table) Grow(n int) {
	for _, col := range t.Columns {
		col.grow(n)
	}
}

// Trim cuts every column to exactly RowCount rows
func (t *Table) Trim() {
	for _, col := range t.Columns {
		col.trim(t.RowCount)
	}
}

// ColumnIndex resolves a column by exact, case-sensitive name. Returns -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col.Name == name {
			return i
		}
	}
	return -1
}

// ColumnIndexFold resolves a column ignoring case. Returns -1 if absent.
func (t *Table) ColumnIndexFold(name string) int {
	for i, col := range t.Columns {
		if strings.EqualFold(col.Name, name) {
			return i
		}
	}
	return -1
}

// Column returns the named column or a ColumnNotFoundError
func (t *Table) Column(name string) (*Column, error) {
	idx := t.ColumnIndex(name)
	if idx == -1 {
		return nil, &errors.ColumnNotFoundError{TableName: t.Name, ColumnName: name}
	}
	return t.Columns[idx], nil
}

// ColumnNames lists column names in display order
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// Row returns a copy of row i across all columns
func (t *Table) Row(i int) data.Row {
	row := data.NewRow(len(t.Columns))
	for c, col := range t.Columns {
		if col.IsNull(i) {
			row.Nulls[c] = true
			continue
		}
		row.Values[c] = col.Values[i]
	}
	return row
}

// SelectRows builds a new table made of the given source rows, in order.
// Every column is gathered with the same index list so rows move as a unit.
func (t *Table) SelectRows(rows []int) *Table {
	out := &Table{
		Name:      t.Name,
		Path:      t.Path,
		Separator: t.Separator,
		Columns:   make([]*Column, len(t.Columns)),
		RowCount:  len(rows),
	}
	for i, col := range t.Columns {
		out.Columns[i] = col.gather(rows)
	}
	return out
}

// Clone returns a deep copy of the table
func (t *Table) Clone() *Table {
	out := &Table{
		Name:      t.Name,
		Path:      t.Path,
		Separator: t.Separator,
		Columns:   make([]*Column, len(t.Columns)),
		RowCount:  t.RowCount,
	}
	for i, col := range t.Columns {
		out.Columns[i] = col.Clone()
	}
	return out
}

// Validate checks column alignment and name uniqueness
func (t *Table) Validate() error {
	seen := make(map[string]struct{}, len(t.Columns))
	for _, col := range t.Columns {
		if _, dup := seen[col.Name]; dup {
			return &errors.DuplicateColumnError{TableName: t.Name, ColumnName: col.Name}
		}
		seen[col.Name] = struct{}{}

		if len(col.Values) != t.RowCount || len(col.Nulls) != t.RowCount {
			return fmt.Errorf("table %s: column %s has %d values and %d null flags, expected %d rows",
				t.Name, col.Name, len(col.Values), len(col.Nulls), t.RowCount)
		}
	}
	return nil
}

// String is used by the prompt and the list command
func (t *Table) String() string {
	return fmt.Sprintf("%s: %d,%d", t.Name, t.RowCount, len(t.Columns))
}
