package testutil

import (
	"github.com/leengari/mini-dataframe/internal/domain/schema"
	"github.com/leengari/mini-dataframe/internal/inference"
	"github.com/leengari/mini-dataframe/internal/validation"
)

// BuildTable creates a published table from literal rows. Blank cells are
// null, exactly as the loader would read them, and types are inferred.
func BuildTable(name string, columns []string, rows ...[]string) *schema.Table {
	table := schema.NewTable(name, columns, len(rows))
	for r, row := range rows {
		for c, col := range table.Columns {
			if c >= len(row) || validation.IsBlank(row[c]) {
				col.MarkNull(r)
				continue
			}
			col.Set(r, row[c])
		}
	}
	table.RowCount = len(rows)
	inference.InferTable(table)
	return table
}

// CreatePeopleTable is the 4-row name/age/joined frame with one null age
// (Bob) and one null date (Cara)
func CreatePeopleTable() *schema.Table {
	return BuildTable("df0",
		[]string{"name", "age", "joined"},
		[]string{"Alice", "30", "2024-01-05"},
		[]string{"Bob", "", "2024-02-10"},
		[]string{"Cara", "22", ""},
		[]string{"Dan", "41", "2024-03-01"},
	)
}

// CreateSalesTable has a Date, a Numeric and a Text column with a
// repeated key for stability checks
func CreateSalesTable() *schema.Table {
	return BuildTable("sales",
		[]string{"id", "day", "amount", "region"},
		[]string{"1", "2023-01-15", "10.5", "north"},
		[]string{"2", "2023-04-01", "7", "south"},
		[]string{"3", "2023-07-30", "10.5", "east"},
		[]string{"4", "", "3", "west"},
		[]string{"5", "2023-12-31", "", "north"},
	)
}
