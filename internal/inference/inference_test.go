package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leengari/mini-dataframe/internal/domain/schema"
	"github.com/leengari/mini-dataframe/internal/validation"
)

// inferValues classifies a plain slice of values; blank strings count as null
func inferValues(values []string) schema.ColumnType {
	col := schema.NewColumn("", len(values))
	for i, v := range values {
		if validation.IsBlank(v) {
			col.MarkNull(i)
			continue
		}
		col.Set(i, v)
	}
	return InferColumn(col, len(values))
}

func TestInferValues(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   schema.ColumnType
	}{
		{"integers", []string{"1", "2", "3"}, schema.ColumnTypeNumeric},
		{"floats and negatives", []string{"1.5", "-2", "3e2"}, schema.ColumnTypeNumeric},
		{"dates", []string{"2024-01-01", "2024-02-15"}, schema.ColumnTypeDate},
		{"leap day", []string{"2024-02-29"}, schema.ColumnTypeDate},
		{"invalid leap day", []string{"2023-02-29"}, schema.ColumnTypeText},
		{"year before 1900", []string{"1899-12-31"}, schema.ColumnTypeText},
		{"mixed text and date", []string{"a", "2024-01-01"}, schema.ColumnTypeText},
		{"mixed number and date", []string{"12", "2024-01-01"}, schema.ColumnTypeText},
		{"text", []string{"alice", "bob"}, schema.ColumnTypeText},
		{"nulls ignored", []string{"", "7", "  "}, schema.ColumnTypeNumeric},
		{"all null", []string{"", ""}, schema.ColumnTypeText},
		{"empty", nil, schema.ColumnTypeText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inferValues(tt.values))
		})
	}
}

func TestInferTable(t *testing.T) {
	tbl := schema.NewTable("df0", []string{"name", "age", "joined"}, 3)
	rows := [][]string{
		{"Alice", "30", "2024-01-05"},
		{"Bob", "", "2024-02-10"},
		{"Cara", "22", ""},
	}
	for r, row := range rows {
		for c, v := range row {
			if v == "" {
				tbl.Columns[c].MarkNull(r)
				continue
			}
			tbl.Columns[c].Set(r, v)
		}
	}
	tbl.RowCount = 3

	InferTable(tbl)

	assert.Equal(t, schema.ColumnTypeText, tbl.Columns[0].Type)
	assert.Equal(t, schema.ColumnTypeNumeric, tbl.Columns[1].Type)
	assert.Equal(t, schema.ColumnTypeDate, tbl.Columns[2].Type)
}

func TestInferColumnIgnoresSlotsPastRowCount(t *testing.T) {
	col := schema.NewColumn("n", 4)
	col.Set(0, "1")
	col.Set(1, "2")
	// slots 2 and 3 are spare batch capacity holding empty non-null values

	assert.Equal(t, schema.ColumnTypeNumeric, InferColumn(col, 2))
}
