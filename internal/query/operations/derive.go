package operations

import (
	"fmt"
	"log/slog"

	"github.com/leengari/mini-dataframe/internal/domain/errors"
	"github.com/leengari/mini-dataframe/internal/domain/schema"
	"github.com/leengari/mini-dataframe/internal/validation"
)

// NotAvailable is written to derived cells whose source is null or does not
// parse. It is a present value, not a null.
const NotAvailable = "#N/A"

// DeriveFunc maps one present source value to a derived value. ok=false
// means the source could not be mapped and NotAvailable is written instead.
type DeriveFunc func(value string) (derived string, ok bool)

// Placement selects where DeriveColumn puts the new column
type Placement int

const (
	// PlaceEnd appends the new column after the last one
	PlaceEnd Placement = iota
	// PlaceAfterSource inserts the new column right after its source
	PlaceAfterSource
)

// DeriveColumn computes a new Text column from src row by row. The result
// is a new table; t is left untouched.
func DeriveColumn(t *schema.Table, src, newName string, fn DeriveFunc, at Placement) (*schema.Table, error) {
	srcIdx := t.ColumnIndex(src)
	if srcIdx == -1 {
		return nil, &errors.ColumnNotFoundError{TableName: t.Name, ColumnName: src}
	}
	if newName == "" {
		return nil, &errors.InvalidArgumentError{Argument: "new column", Value: newName, Reason: "name must not be empty"}
	}
	if t.ColumnIndex(newName) != -1 {
		return nil, &errors.DuplicateColumnError{TableName: t.Name, ColumnName: newName}
	}

	source := t.Columns[srcIdx]
	derived := schema.NewColumn(newName, t.RowCount)
	unmapped := 0
	for i := 0; i < t.RowCount; i++ {
		v, ok := source.Value(i)
		if !ok {
			derived.Set(i, NotAvailable)
			unmapped++
			continue
		}
		out, ok := fn(v)
		if !ok {
			derived.Set(i, NotAvailable)
			unmapped++
			continue
		}
		derived.Set(i, out)
	}

	insertAt := t.NumColumns()
	if at == PlaceAfterSource {
		insertAt = srcIdx + 1
	}

	out := &schema.Table{
		Name:      t.Name,
		Path:      t.Path,
		Separator: t.Separator,
		Columns:   make([]*schema.Column, 0, t.NumColumns()+1),
		RowCount:  t.RowCount,
	}
	for i, col := range t.Columns {
		if i == insertAt {
			out.Columns = append(out.Columns, derived)
		}
		out.Columns = append(out.Columns, col.Clone())
	}
	if insertAt == t.NumColumns() {
		out.Columns = append(out.Columns, derived)
	}

	slog.Debug("column derived",
		slog.String("table", t.Name),
		slog.String("source", src),
		slog.String("column", newName),
		slog.Int("unmapped", unmapped),
	)
	return out, nil
}

// Quarter derives "Q1".."Q4" from a Date column and places the result
// right after it
func Quarter(t *schema.Table, dateColumn, newName string) (*schema.Table, error) {
	col, err := t.Column(dateColumn)
	if err != nil {
		return nil, err
	}
	if col.Type != schema.ColumnTypeDate {
		return nil, &errors.ColumnTypeError{
			ColumnName: dateColumn,
			Expected:   string(schema.ColumnTypeDate),
			Actual:     string(col.Type),
		}
	}

	return DeriveColumn(t, dateColumn, newName, func(v string) (string, bool) {
		d, ok := validation.ParseDate(v)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("Q%d", d.Quarter()), true
	}, PlaceAfterSource)
}

// Prefix derives the first n characters of a Text column, appended as the
// last column. Values shorter than n are copied whole.
func Prefix(t *schema.Table, textColumn string, n int, newName string) (*schema.Table, error) {
	col, err := t.Column(textColumn)
	if err != nil {
		return nil, err
	}
	if col.Type != schema.ColumnTypeText {
		return nil, &errors.ColumnTypeError{
			ColumnName: textColumn,
			Expected:   string(schema.ColumnTypeText),
			Actual:     string(col.Type),
		}
	}
	if n <= 0 {
		return nil, &errors.InvalidArgumentError{
			Argument: "n",
			Value:    fmt.Sprint(n),
			Reason:   "prefix length must be greater than zero",
		}
	}

	return DeriveColumn(t, textColumn, newName, func(v string) (string, bool) {
		runes := []rune(v)
		if len(runes) <= n {
			return v, true
		}
		return string(runes[:n]), true
	}, PlaceEnd)
}
