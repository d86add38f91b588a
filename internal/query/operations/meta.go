package operations

import (
	"github.com/leengari/mini-dataframe/internal/domain/schema"
)

// ColumnMeta describes one column for the meta command
type ColumnMeta struct {
	Name  string            `json:"name"`
	Type  schema.ColumnType `json:"type"`
	Nulls int               `json:"nulls"`
}

// TableMeta is the schema summary of a table
type TableMeta struct {
	Table   string       `json:"table"`
	Rows    int          `json:"rows"`
	Columns []ColumnMeta `json:"columns"`
}

// Meta reports each column's name, inferred type and null count
func Meta(t *schema.Table) TableMeta {
	meta := TableMeta{
		Table:   t.Name,
		Rows:    t.RowCount,
		Columns: make([]ColumnMeta, len(t.Columns)),
	}
	for i, col := range t.Columns {
		meta.Columns[i] = ColumnMeta{
			Name:  col.Name,
			Type:  col.Type,
			Nulls: col.NullCount(),
		}
	}
	return meta
}
