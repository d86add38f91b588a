// Package errors defines the error taxonomy shared by the dataframe engine.
//
// Every error carries a Kind so the session layer can decide how to report it
// without string matching. Structural and IO errors abort the command and
// leave the active table untouched; data errors never escape filter or sort.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Kind is the category of an engine error
type Kind string

const (
	KindStructural Kind = "structural"
	KindIO         Kind = "io"
	KindResource   Kind = "resource"
	KindData       Kind = "data"
	KindUnknown    Kind = "unknown"
)

// Classified is implemented by every error in this package
type Classified interface {
	error
	Kind() Kind
}

// KindOf walks the wrap chain and returns the first Kind found
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var c Classified
	if stderrors.As(err, &c) {
		return c.Kind()
	}
	return KindUnknown
}

// ColumnNotFoundError is returned when a column name does not resolve
type ColumnNotFoundError struct {
	TableName  string
	ColumnName string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column '%s' not found in table '%s'", e.ColumnName, e.TableName)
}

func (e *ColumnNotFoundError) Kind() Kind { return KindStructural }

// DuplicateColumnError is returned when a column name would appear twice
type DuplicateColumnError struct {
	TableName  string
	ColumnName string
}

func (e *DuplicateColumnError) Error() string {
	return fmt.Sprintf("column '%s' already exists in table '%s'", e.ColumnName, e.TableName)
}

func (e *DuplicateColumnError) Kind() Kind { return KindStructural }

// ColumnTypeError is returned when an operation needs a specific column type
type ColumnTypeError struct {
	ColumnName string
	Expected   string
	Actual     string
}

func (e *ColumnTypeError) Error() string {
	return fmt.Sprintf("column '%s' has type %s, expected %s", e.ColumnName, e.Actual, e.Expected)
}

func (e *ColumnTypeError) Kind() Kind { return KindStructural }

// InvalidOperatorError is returned for an unknown filter operator
type InvalidOperatorError struct {
	Operator string
	Allowed  []string
}

func (e *InvalidOperatorError) Error() string {
	return fmt.Sprintf("invalid operator '%s', use one of: %s", e.Operator, strings.Join(e.Allowed, ", "))
}

func (e *InvalidOperatorError) Kind() Kind { return KindStructural }

// InvalidArgumentError covers bad indexes, counts and names passed to a command
type InvalidArgumentError struct {
	Argument string
	Value    interface{}
	Reason   string
}

func (e *InvalidArgumentError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("invalid %s: %s", e.Argument, e.Reason)
	}
	return fmt.Sprintf("invalid %s '%v': %s", e.Argument, e.Value, e.Reason)
}

func (e *InvalidArgumentError) Kind() Kind { return KindStructural }

// TableNotFoundError is returned when a table name is not in the store
type TableNotFoundError struct {
	TableName string
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("table '%s' not found", e.TableName)
}

func (e *TableNotFoundError) Kind() Kind { return KindStructural }

// DuplicateTableError is returned when a table name is already taken
type DuplicateTableError struct {
	TableName string
}

func (e *DuplicateTableError) Error() string {
	return fmt.Sprintf("table '%s' already exists", e.TableName)
}

func (e *DuplicateTableError) Kind() Kind { return KindStructural }

// NoActiveTableError is returned by commands that need an active table
type NoActiveTableError struct{}

func (e *NoActiveTableError) Error() string {
	return "no active table, use 'load <file>' first"
}

func (e *NoActiveTableError) Kind() Kind { return KindStructural }

// SchemaMismatchError is returned when appended data does not share the column set
type SchemaMismatchError struct {
	TableName string
	Reason    string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("schema mismatch with table '%s': %s", e.TableName, e.Reason)
}

func (e *SchemaMismatchError) Kind() Kind { return KindStructural }

// SyntaxError is returned when a command line does not parse
type SyntaxError struct {
	Command string
	Reason  string
	Usage   string
}

func (e *SyntaxError) Error() string {
	msg := e.Reason
	if e.Command != "" {
		msg = e.Command + ": " + msg
	}
	if e.Usage != "" {
		msg += " (usage: " + e.Usage + ")"
	}
	return msg
}

func (e *SyntaxError) Kind() Kind { return KindStructural }

// ColumnLimitError is returned when a header exceeds the configured column limit
type ColumnLimitError struct {
	Path  string
	Count int
	Limit int
}

func (e *ColumnLimitError) Error() string {
	return fmt.Sprintf("%s has %d columns, limit is %d", e.Path, e.Count, e.Limit)
}

func (e *ColumnLimitError) Kind() Kind { return KindResource }

// IOError wraps file system failures
type IOError struct {
	Op   string // "open", "read", "write", "rename"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Kind() Kind { return KindIO }

// ResourceError reports storage growth failures during ingestion
type ResourceError struct {
	Reason string
	Rows   int
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("resource limit: %s (at row %d)", e.Reason, e.Rows)
}

func (e *ResourceError) Kind() Kind { return KindResource }

// DataError reports a value that does not parse under its column type.
// Filter and sort treat it as a non-match and never return it.
type DataError struct {
	ColumnName string
	Value      string
	Expected   string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("value '%s' in column '%s' is not a valid %s", e.Value, e.ColumnName, e.Expected)
}

func (e *DataError) Kind() Kind { return KindData }
