package operations

import (
	"github.com/leengari/mini-dataframe/internal/domain/data"
	"github.com/leengari/mini-dataframe/internal/domain/errors"
	"github.com/leengari/mini-dataframe/internal/domain/schema"
)

// Head returns up to the first n rows in table order
func Head(t *schema.Table, n int) []data.Row {
	n = min(n, t.RowCount)
	rows := make([]data.Row, 0, max(n, 0))
	for i := 0; i < n; i++ {
		rows = append(rows, t.Row(i))
	}
	return rows
}

// Tail returns up to the last n rows, last row first
func Tail(t *schema.Table, n int) []data.Row {
	n = min(n, t.RowCount)
	rows := make([]data.Row, 0, max(n, 0))
	for i := t.RowCount - 1; i >= t.RowCount-n; i-- {
		rows = append(rows, t.Row(i))
	}
	return rows
}

// View dispatches on the sign of n: positive shows the head, negative the
// tail in reverse. Zero is rejected.
func View(t *schema.Table, n int) ([]data.Row, error) {
	switch {
	case n > 0:
		return Head(t, n), nil
	case n < 0:
		return Tail(t, -n), nil
	default:
		return nil, &errors.InvalidArgumentError{Argument: "n", Value: n, Reason: "row count must not be zero"}
	}
}
