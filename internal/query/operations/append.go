package operations

import (
	"fmt"
	"log/slog"

	"github.com/leengari/mini-dataframe/internal/domain/errors"
	"github.com/leengari/mini-dataframe/internal/domain/schema"
	"github.com/leengari/mini-dataframe/internal/inference"
)

// Append returns a new table holding the rows of dst followed by the rows
// of src. Both must have the same column names in the same order. Column
// types are inferred again over the combined rows.
func Append(dst, src *schema.Table) (*schema.Table, error) {
	if dst.NumColumns() != src.NumColumns() {
		return nil, &errors.SchemaMismatchError{
			TableName: dst.Name,
			Reason:    fmt.Sprintf("expected %d columns, got %d", dst.NumColumns(), src.NumColumns()),
		}
	}
	for i, col := range dst.Columns {
		if src.Columns[i].Name != col.Name {
			return nil, &errors.SchemaMismatchError{
				TableName: dst.Name,
				Reason:    fmt.Sprintf("column %d is %q, expected %q", i+1, src.Columns[i].Name, col.Name),
			}
		}
	}

	out := schema.NewTable(dst.Name, dst.ColumnNames(), dst.RowCount+src.RowCount)
	out.Path = dst.Path
	out.Separator = dst.Separator
	out.RowCount = dst.RowCount + src.RowCount

	for c, col := range out.Columns {
		copyColumn(col, 0, dst.Columns[c], dst.RowCount)
		copyColumn(col, dst.RowCount, src.Columns[c], src.RowCount)
	}
	inference.InferTable(out)

	slog.Debug("rows appended",
		slog.String("table", dst.Name),
		slog.Int("rows_before", dst.RowCount),
		slog.Int("rows_added", src.RowCount),
	)
	return out, nil
}

func copyColumn(dst *schema.Column, offset int, src *schema.Column, rows int) {
	for i := 0; i < rows; i++ {
		if v, ok := src.Value(i); ok {
			dst.Set(offset+i, v)
		} else {
			dst.MarkNull(offset + i)
		}
	}
}
