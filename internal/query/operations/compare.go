package operations

import (
	"math"
	"strings"

	"github.com/leengari/mini-dataframe/internal/domain/errors"
	"github.com/leengari/mini-dataframe/internal/domain/schema"
	"github.com/leengari/mini-dataframe/internal/validation"
)

// Epsilon absorbs float round-trip error in numeric equality
const Epsilon = 1e-10

// Operator is a filter comparison
type Operator string

const (
	OpEqual        Operator = "eq"
	OpNotEqual     Operator = "neq"
	OpGreater      Operator = "gt"
	OpLess         Operator = "lt"
	OpGreaterEqual Operator = "get"
	OpLessEqual    Operator = "let"
)

var operators = []Operator{OpEqual, OpNotEqual, OpGreater, OpLess, OpGreaterEqual, OpLessEqual}

// ParseOperator validates an operator name
func ParseOperator(s string) (Operator, error) {
	op := Operator(strings.ToLower(s))
	for _, known := range operators {
		if op == known {
			return op, nil
		}
	}
	allowed := make([]string, len(operators))
	for i, o := range operators {
		allowed[i] = string(o)
	}
	return "", &errors.InvalidOperatorError{Operator: s, Allowed: allowed}
}

// holds reports whether a three-way comparison result satisfies op
func (op Operator) holds(cmp int) bool {
	switch op {
	case OpEqual:
		return cmp == 0
	case OpNotEqual:
		return cmp != 0
	case OpGreater:
		return cmp > 0
	case OpLess:
		return cmp < 0
	case OpGreaterEqual:
		return cmp >= 0
	case OpLessEqual:
		return cmp <= 0
	}
	return false
}

// compareValues compares two present values under a column type.
// A value that does not parse under the type yields a DataError.
func compareValues(colName string, typ schema.ColumnType, a, b string) (int, error) {
	switch typ {
	case schema.ColumnTypeNumeric:
		x, ok := validation.ParseNumeric(a)
		if !ok {
			return 0, &errors.DataError{ColumnName: colName, Value: a, Expected: string(typ)}
		}
		y, ok := validation.ParseNumeric(b)
		if !ok {
			return 0, &errors.DataError{ColumnName: colName, Value: b, Expected: string(typ)}
		}
		return compareFloat(x, y), nil

	case schema.ColumnTypeDate:
		x, ok := validation.ParseDate(a)
		if !ok {
			return 0, &errors.DataError{ColumnName: colName, Value: a, Expected: string(typ)}
		}
		y, ok := validation.ParseDate(b)
		if !ok {
			return 0, &errors.DataError{ColumnName: colName, Value: b, Expected: string(typ)}
		}
		return x.Compare(y), nil

	default:
		return strings.Compare(a, b), nil
	}
}

// compareFloat treats values closer than Epsilon as equal
func compareFloat(x, y float64) int {
	switch {
	case math.Abs(x-y) < Epsilon:
		return 0
	case x < y:
		return -1
	default:
		return 1
	}
}
