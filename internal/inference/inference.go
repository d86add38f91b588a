// Package inference classifies table columns as Date, Numeric or Text.
//
// A column is Date when every non-null value is a valid YYYY-MM-DD day,
// otherwise Numeric when every non-null value parses as a float, otherwise
// Text. Columns without any non-null value are Text. The pass runs once,
// after ingestion and before the table is published.
package inference

import (
	"log/slog"

	"github.com/leengari/mini-dataframe/internal/domain/schema"
	"github.com/leengari/mini-dataframe/internal/validation"
)

// InferTable sets Type on every column of t
func InferTable(t *schema.Table) {
	for _, col := range t.Columns {
		col.Type = InferColumn(col, t.RowCount)
		slog.Debug("column type inferred",
			slog.String("table", t.Name),
			slog.String("column", col.Name),
			slog.String("type", string(col.Type)),
		)
	}
}

// InferColumn classifies the first rows values of col
func InferColumn(col *schema.Column, rows int) schema.ColumnType {
	isDate, isNumeric := true, true
	present := 0

	for i := 0; i < rows; i++ {
		v, ok := col.Value(i)
		if !ok {
			continue
		}
		present++

		if isDate && !validation.IsValidDate(v) {
			isDate = false
		}
		if isNumeric {
			if _, ok := validation.ParseNumeric(v); !ok {
				isNumeric = false
			}
		}
		if !isDate && !isNumeric {
			return schema.ColumnTypeText
		}
	}

	switch {
	case present == 0:
		return schema.ColumnTypeText
	case isDate:
		return schema.ColumnTypeDate
	case isNumeric:
		return schema.ColumnTypeNumeric
	default:
		return schema.ColumnTypeText
	}
}
