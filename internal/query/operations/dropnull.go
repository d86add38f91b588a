package operations

import (
	"log/slog"

	"github.com/leengari/mini-dataframe/internal/domain/schema"
)

// DropNulls keeps only the rows whose value in column is present
func DropNulls(t *schema.Table, column string) (*schema.Table, error) {
	col, err := t.Column(column)
	if err != nil {
		return nil, err
	}

	out := SelectWhere(t, func(_ *schema.Table, row int) bool {
		return !col.IsNull(row)
	})

	slog.Debug("null rows dropped",
		slog.String("table", t.Name),
		slog.String("column", column),
		slog.Int("dropped", t.RowCount-out.RowCount),
	)
	return out, nil
}
