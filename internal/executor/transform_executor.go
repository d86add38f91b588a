package executor

import (
	"fmt"

	"github.com/leengari/mini-dataframe/internal/domain/schema"
	"github.com/leengari/mini-dataframe/internal/domain/transaction"
	"github.com/leengari/mini-dataframe/internal/parser/ast"
	"github.com/leengari/mini-dataframe/internal/query/operations"
)

// executeTransform runs a table-to-table operation on the active table and
// swaps the result in
func executeTransform(stmt ast.Statement, ctx *ExecutionContext) (*Result, error) {
	current, err := ctx.active()
	if err != nil {
		return nil, err
	}

	var (
		next *schema.Table
		kind transaction.ChangeType
	)
	switch s := stmt.(type) {
	case *ast.SortStatement:
		dir := operations.Ascending
		if s.Descending {
			dir = operations.Descending
		}
		kind = transaction.ChangeTypeSort
		next, err = operations.Sort(current, s.Column, dir)

	case *ast.FilterStatement:
		kind = transaction.ChangeTypeFilter
		next, err = operations.Filter(current, s.Column, s.Operator, s.Value)
		if err == nil && next.RowCount == 0 {
			return &Result{
				Message: fmt.Sprintf("No rows matched %s, %s unchanged", s, current.Name),
				NoMatch: true,
			}, nil
		}

	case *ast.DropNullStatement:
		kind = transaction.ChangeTypeDropNulls
		next, err = operations.DropNulls(current, s.Column)

	case *ast.DropColumnStatement:
		kind = transaction.ChangeTypeDropColumn
		next, err = operations.DropColumn(current, s.Column)

	case *ast.QuarterStatement:
		kind = transaction.ChangeTypeDerive
		next, err = operations.Quarter(current, s.Column, s.NewColumn)

	case *ast.PrefixStatement:
		kind = transaction.ChangeTypeDerive
		next, err = operations.Prefix(current, s.Column, s.Length, s.NewColumn)

	default:
		return nil, fmt.Errorf("unsupported transform: %T", stmt)
	}
	if err != nil {
		return nil, err
	}

	return swap(ctx, kind, current, next, describe(stmt, current, next))
}

// swap publishes next in place of prev and records the change
func swap(ctx *ExecutionContext, kind transaction.ChangeType, prev, next *schema.Table, msg string) (*Result, error) {
	if _, err := ctx.Registry.Replace(next); err != nil {
		return nil, err
	}
	ctx.Transaction.Record(transaction.Change{
		Type:       kind,
		Table:      next.Name,
		RowsBefore: prev.RowCount,
		RowsAfter:  next.RowCount,
		ColsBefore: prev.NumColumns(),
		ColsAfter:  next.NumColumns(),
	})
	return &Result{Message: msg, RowsAffected: next.RowCount}, nil
}

func describe(stmt ast.Statement, prev, next *schema.Table) string {
	switch s := stmt.(type) {
	case *ast.SortStatement:
		return fmt.Sprintf("Sorted %d rows by %s", next.RowCount, s.Column)
	case *ast.FilterStatement:
		return fmt.Sprintf("Kept %d of %d rows", next.RowCount, prev.RowCount)
	case *ast.DropNullStatement:
		return fmt.Sprintf("Dropped %d rows with null %s", prev.RowCount-next.RowCount, s.Column)
	case *ast.DropColumnStatement:
		return fmt.Sprintf("Dropped column %s", s.Column)
	case *ast.QuarterStatement:
		return fmt.Sprintf("Added column %s", s.NewColumn)
	case *ast.PrefixStatement:
		return fmt.Sprintf("Added column %s", s.NewColumn)
	}
	return next.String()
}
