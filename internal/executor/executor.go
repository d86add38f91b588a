package executor

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/leengari/mini-dataframe/internal/domain/data"
	"github.com/leengari/mini-dataframe/internal/domain/errors"
	"github.com/leengari/mini-dataframe/internal/domain/schema"
	"github.com/leengari/mini-dataframe/internal/domain/transaction"
	"github.com/leengari/mini-dataframe/internal/parser/ast"
	"github.com/leengari/mini-dataframe/internal/query/operations"
	"github.com/leengari/mini-dataframe/internal/storage/loader"
	"github.com/leengari/mini-dataframe/internal/storage/writer"
)

// Execute runs one parsed command against the session. Commands that
// produce a new table build it completely before it is swapped into the
// registry, so a failed command leaves every stored table as it was.
func Execute(stmt ast.Statement, ctx *ExecutionContext) (*Result, error) {
	switch s := stmt.(type) {
	case *ast.LoadStatement:
		return executeLoad(s, ctx)
	case *ast.AddStatement:
		return executeAdd(s, ctx)
	case *ast.ViewStatement:
		return executeView(s, ctx)
	case *ast.MetaStatement:
		return executeMeta(ctx)
	case *ast.SaveStatement:
		return executeSave(s, ctx)
	case *ast.ListStatement:
		return executeList(ctx)
	case *ast.NameStatement:
		return executeName(s, ctx)
	case *ast.SwitchStatement:
		return executeSwitch(s, ctx)
	case *ast.QuitStatement:
		return &Result{Message: "bye", Quit: true}, nil
	case *ast.SortStatement, *ast.FilterStatement, *ast.DropNullStatement,
		*ast.DropColumnStatement, *ast.QuarterStatement, *ast.PrefixStatement:
		return executeTransform(s, ctx)
	default:
		return nil, fmt.Errorf("unsupported statement type: %T", stmt)
	}
}

func executeLoad(stmt *ast.LoadStatement, ctx *ExecutionContext) (*Result, error) {
	name := ctx.Registry.NextName(ctx.Config.Session.TablePrefix)
	t, err := loader.LoadFile(stmt.Path, name, ctx.loadOptions(stmt.Separator))
	if err != nil {
		return nil, err
	}
	if err := ctx.Registry.Add(t, true); err != nil {
		return nil, err
	}

	ctx.Transaction.Record(transaction.Change{
		Type:      transaction.ChangeTypeLoad,
		Table:     t.Name,
		RowsAfter: t.RowCount,
		ColsAfter: t.NumColumns(),
	})
	return &Result{
		Message:      fmt.Sprintf("Loaded %s as %s (%d rows, %d columns)", stmt.Path, t.Name, t.RowCount, t.NumColumns()),
		RowsAffected: t.RowCount,
	}, nil
}

func executeAdd(stmt *ast.AddStatement, ctx *ExecutionContext) (*Result, error) {
	current, err := ctx.active()
	if err != nil {
		return nil, err
	}

	sep := stmt.Separator
	if sep == 0 {
		sep = ctx.saveSeparator(current)
	}
	next, err := loader.AppendFile(current, stmt.Path, ctx.loadOptions(sep))
	if err != nil {
		return nil, err
	}
	return swap(ctx, transaction.ChangeTypeAppend, current, next,
		fmt.Sprintf("Added %d rows from %s", next.RowCount-current.RowCount, stmt.Path))
}

func executeView(stmt *ast.ViewStatement, ctx *ExecutionContext) (*Result, error) {
	t, err := ctx.active()
	if err != nil {
		return nil, err
	}

	n := ctx.Config.Session.ViewRows
	if stmt.HasRows {
		n = stmt.Rows
	}
	rows, err := operations.View(t, n)
	if err != nil {
		return nil, err
	}

	return &Result{
		Columns:  t.ColumnNames(),
		Metadata: columnMetadata(t),
		Rows:     rows,
		Message:  fmt.Sprintf("%d of %d rows", len(rows), t.RowCount),
	}, nil
}

func executeMeta(ctx *ExecutionContext) (*Result, error) {
	t, err := ctx.active()
	if err != nil {
		return nil, err
	}
	meta := operations.Meta(t)

	rows := make([]data.Row, len(meta.Columns))
	for i, col := range meta.Columns {
		rows[i] = data.Row{
			Values: []string{col.Name, string(col.Type), strconv.Itoa(col.Nulls)},
			Nulls:  make([]bool, 3),
		}
	}
	return &Result{
		Columns: []string{"column", "type", "nulls"},
		Rows:    rows,
		Meta:    &meta,
		Message: fmt.Sprintf("%s: %d rows, %d columns", t.Name, t.RowCount, t.NumColumns()),
	}, nil
}

func executeSave(stmt *ast.SaveStatement, ctx *ExecutionContext) (*Result, error) {
	t, err := ctx.active()
	if err != nil {
		return nil, err
	}

	path := writer.ResolvePath(stmt.Path, t.Name)
	if err := writer.SaveTable(t, path, ctx.saveSeparator(t)); err != nil {
		return nil, err
	}
	return &Result{
		Message:      fmt.Sprintf("Saved %s to %s", t.Name, path),
		RowsAffected: t.RowCount,
	}, nil
}

func executeList(ctx *ExecutionContext) (*Result, error) {
	active := ctx.Registry.Active()
	tables := ctx.Registry.List()

	rows := make([]data.Row, len(tables))
	for i, t := range tables {
		marker := ""
		if active != nil && t.Name == active.Name {
			marker = "*"
		}
		rows[i] = data.Row{
			Values: []string{marker, t.Name, strconv.Itoa(t.RowCount), strconv.Itoa(t.NumColumns()), t.Path},
			Nulls:  make([]bool, 5),
		}
	}
	return &Result{
		Columns: []string{"", "table", "rows", "columns", "source"},
		Rows:    rows,
		Message: fmt.Sprintf("%d tables", len(tables)),
	}, nil
}

func executeName(stmt *ast.NameStatement, ctx *ExecutionContext) (*Result, error) {
	t, err := ctx.active()
	if err != nil {
		return nil, err
	}

	maxLen := ctx.Config.Session.MaxTableName
	if n := utf8.RuneCountInString(stmt.Name); n == 0 || n > maxLen {
		return nil, &errors.InvalidArgumentError{
			Argument: "table name",
			Value:    stmt.Name,
			Reason:   fmt.Sprintf("must be 1 to %d characters", maxLen),
		}
	}

	oldName := t.Name
	if err := ctx.Registry.Rename(oldName, stmt.Name); err != nil {
		return nil, err
	}
	ctx.Transaction.Record(transaction.Change{
		Type:       transaction.ChangeTypeRename,
		Table:      stmt.Name,
		RowsBefore: t.RowCount,
		RowsAfter:  t.RowCount,
		ColsBefore: t.NumColumns(),
		ColsAfter:  t.NumColumns(),
	})
	return &Result{Message: fmt.Sprintf("Renamed %s to %s", oldName, stmt.Name)}, nil
}

func executeSwitch(stmt *ast.SwitchStatement, ctx *ExecutionContext) (*Result, error) {
	t, err := ctx.Registry.Switch(stmt.Table)
	if err != nil {
		return nil, err
	}
	ctx.Transaction.Record(transaction.Change{
		Type:       transaction.ChangeTypeSwitch,
		Table:      t.Name,
		RowsBefore: t.RowCount,
		RowsAfter:  t.RowCount,
		ColsBefore: t.NumColumns(),
		ColsAfter:  t.NumColumns(),
	})
	return &Result{Message: fmt.Sprintf("Active table is %s", t)}, nil
}

func columnMetadata(t *schema.Table) []ColumnMetadata {
	meta := make([]ColumnMetadata, len(t.Columns))
	for i, col := range t.Columns {
		meta[i] = ColumnMetadata{Name: col.Name, Type: string(col.Type)}
	}
	return meta
}
