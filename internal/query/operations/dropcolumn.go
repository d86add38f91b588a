package operations

import (
	"log/slog"

	"github.com/leengari/mini-dataframe/internal/domain/errors"
	"github.com/leengari/mini-dataframe/internal/domain/schema"
)

// DropColumn removes one column. An exact name match wins; otherwise the
// name is matched case-insensitively. Removing the last column is rejected
// since a table must keep at least one.
func DropColumn(t *schema.Table, column string) (*schema.Table, error) {
	idx := t.ColumnIndex(column)
	if idx == -1 {
		idx = t.ColumnIndexFold(column)
	}
	if idx == -1 {
		return nil, &errors.ColumnNotFoundError{TableName: t.Name, ColumnName: column}
	}
	if t.NumColumns() == 1 {
		return nil, &errors.InvalidArgumentError{
			Argument: "column",
			Value:    column,
			Reason:   "cannot drop the only column of a table",
		}
	}

	out := &schema.Table{
		Name:      t.Name,
		Path:      t.Path,
		Separator: t.Separator,
		Columns:   make([]*schema.Column, 0, t.NumColumns()-1),
		RowCount:  t.RowCount,
	}
	for i, col := range t.Columns {
		if i == idx {
			continue
		}
		out.Columns = append(out.Columns, col.Clone())
	}

	slog.Debug("column dropped", slog.String("table", t.Name), slog.String("column", t.Columns[idx].Name))
	return out, nil
}
