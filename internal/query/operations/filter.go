package operations

import (
	"log/slog"

	"github.com/leengari/mini-dataframe/internal/domain/schema"
)

// Filter keeps the rows whose value in column satisfies op against literal.
// Null cells never match, whatever the operator. Values that fail to parse
// under the column type are non-matches. A result with zero rows is not an
// error; missing columns and unknown operators are.
func Filter(t *schema.Table, column string, op string, literal string) (*schema.Table, error) {
	col, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	operator, err := ParseOperator(op)
	if err != nil {
		return nil, err
	}

	dataErrors := 0
	out := SelectWhere(t, func(_ *schema.Table, row int) bool {
		v, ok := col.Value(row)
		if !ok {
			return false
		}
		cmp, err := compareValues(col.Name, col.Type, v, literal)
		if err != nil {
			dataErrors++
			return false
		}
		return operator.holds(cmp)
	})

	slog.Debug("filter applied",
		slog.String("table", t.Name),
		slog.String("column", column),
		slog.String("operator", string(operator)),
		slog.Int("rows_in", t.RowCount),
		slog.Int("rows_out", out.RowCount),
		slog.Int("unparsable", dataErrors),
	)
	return out, nil
}
