package operations

import (
	"github.com/leengari/mini-dataframe/internal/domain/schema"
)

// PredicateFunc tests whether row i of a table matches certain criteria
type PredicateFunc func(t *schema.Table, row int) bool

// SelectWhere returns a new table holding the rows that match pred, in
// their original order. The source table is not modified.
func SelectWhere(t *schema.Table, pred PredicateFunc) *schema.Table {
	rows := make([]int, 0, t.RowCount)
	for i := 0; i < t.RowCount; i++ {
		if pred(t, i) {
			rows = append(rows, i)
		}
	}
	return t.SelectRows(rows)
}
