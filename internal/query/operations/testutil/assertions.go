package testutil

import (
	"testing"

	"github.com/leengari/mini-dataframe/internal/domain/schema"
)

// AssertRowCount checks if the result has the expected number of rows
func AssertRowCount(t *testing.T, table *schema.Table, expected int, context string) {
	t.Helper()
	if table.RowCount != expected {
		t.Errorf("%s: expected %d rows, got %d", context, expected, table.RowCount)
	}
}

// AssertColumnCount checks if the table has the expected number of columns
func AssertColumnCount(t *testing.T, table *schema.Table, expected int, context string) {
	t.Helper()
	if table.NumColumns() != expected {
		t.Errorf("%s: expected %d columns, got %d", context, expected, table.NumColumns())
	}
}

// ColumnValues lists a column's cells with nulls rendered as "NULL"
func ColumnValues(t *testing.T, table *schema.Table, column string) []string {
	t.Helper()
	col, err := table.Column(column)
	if err != nil {
		t.Fatalf("column %s: %v", column, err)
	}
	out := make([]string, table.RowCount)
	for i := range out {
		if v, ok := col.Value(i); ok {
			out[i] = v
		} else {
			out[i] = "NULL"
		}
	}
	return out
}

// AssertRowsFromSource checks that every row of result equals some row of
// source across all shared columns, keyed by keyColumn. It catches cells
// from different source rows ending up in the same result row.
func AssertRowsFromSource(t *testing.T, source, result *schema.Table, keyColumn string, context string) {
	t.Helper()
	srcKey, err := source.Column(keyColumn)
	if err != nil {
		t.Fatalf("%s: %v", context, err)
	}
	byKey := make(map[string]int, source.RowCount)
	for i := 0; i < source.RowCount; i++ {
		byKey[srcKey.Values[i]] = i
	}

	resKey, err := result.Column(keyColumn)
	if err != nil {
		t.Fatalf("%s: %v", context, err)
	}
	for r := 0; r < result.RowCount; r++ {
		s, ok := byKey[resKey.Values[r]]
		if !ok {
			t.Errorf("%s: row %d has unknown key %q", context, r, resKey.Values[r])
			continue
		}
		for _, col := range result.Columns {
			srcCol, err := source.Column(col.Name)
			if err != nil {
				continue
			}
			if col.Nulls[r] != srcCol.Nulls[s] || col.Values[r] != srcCol.Values[s] {
				t.Errorf("%s: row %d column %s = %q (null=%v), source row %d has %q (null=%v)",
					context, r, col.Name, col.Values[r], col.Nulls[r], s, srcCol.Values[s], srcCol.Nulls[s])
			}
		}
	}
}

// AssertUnchanged checks that a table still equals its earlier clone
func AssertUnchanged(t *testing.T, before, after *schema.Table, context string) {
	t.Helper()
	if before.RowCount != after.RowCount || before.NumColumns() != after.NumColumns() {
		t.Fatalf("%s: shape changed from %s to %s", context, before, after)
	}
	for c, col := range before.Columns {
		other := after.Columns[c]
		if col.Name != other.Name || col.Type != other.Type {
			t.Errorf("%s: column %d changed from %s/%s to %s/%s", context, c, col.Name, col.Type, other.Name, other.Type)
		}
		for i := 0; i < before.RowCount; i++ {
			if col.Values[i] != other.Values[i] || col.Nulls[i] != other.Nulls[i] {
				t.Errorf("%s: cell (%d, %s) changed", context, i, col.Name)
			}
		}
	}
}
