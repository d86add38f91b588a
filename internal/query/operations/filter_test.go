package operations_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leengari/mini-dataframe/internal/domain/errors"
	"github.com/leengari/mini-dataframe/internal/query/operations"
	"github.com/leengari/mini-dataframe/internal/query/operations/testutil"
)

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		column   string
		op       string
		literal  string
		expected []string // names of the matching rows, in order
	}{
		{"numeric greater", "age", "gt", "25", []string{"Alice", "Dan"}},
		{"numeric less or equal", "age", "let", "30", []string{"Alice", "Cara"}},
		{"numeric not equal skips nulls", "age", "neq", "0", []string{"Alice", "Cara", "Dan"}},
		{"numeric equal", "age", "eq", "22", []string{"Cara"}},
		{"date before", "joined", "lt", "2024-02-15", []string{"Alice", "Bob"}},
		{"date on or after", "joined", "get", "2024-02-10", []string{"Bob", "Dan"}},
		{"text equal", "name", "eq", "Bob", []string{"Bob"}},
		{"text greater", "name", "gt", "Bob", []string{"Cara", "Dan"}},
		{"operator is case insensitive", "age", "GT", "25", []string{"Alice", "Dan"}},
		{"unparsable literal matches nothing", "age", "gt", "abc", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			people := testutil.CreatePeopleTable()
			result, err := operations.Filter(people, tt.column, tt.op, tt.literal)
			require.NoError(t, err)

			testutil.AssertRowCount(t, result, len(tt.expected), tt.name)
			assert.Equal(t, tt.expected, testutil.ColumnValues(t, result, "name"))
			testutil.AssertRowsFromSource(t, people, result, "name", tt.name)
		})
	}
}

func TestFilterNullsNeverMatch(t *testing.T) {
	people := testutil.CreatePeopleTable()
	for _, op := range []string{"eq", "neq", "gt", "lt", "get", "let"} {
		for _, literal := range []string{"0", "22", "30", "100"} {
			result, err := operations.Filter(people, "age", op, literal)
			require.NoError(t, err)
			assert.NotContains(t, testutil.ColumnValues(t, result, "name"), "Bob",
				"null age matched %s %s", op, literal)
		}
	}
}

func TestFilterNumericEpsilon(t *testing.T) {
	table := testutil.BuildTable("df0", []string{"x"}, []string{"1"}, []string{"2"}, []string{"1.0"})

	result, err := operations.Filter(table, "x", "eq", "1.00000000000001")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "1.0"}, testutil.ColumnValues(t, result, "x"))
}

func TestFilterLeavesSourceUntouched(t *testing.T) {
	people := testutil.CreatePeopleTable()
	before := people.Clone()

	result, err := operations.Filter(people, "age", "gt", "25")
	require.NoError(t, err)
	require.NotSame(t, people, result)

	testutil.AssertUnchanged(t, before, people, "filter source")
}

func TestFilterErrors(t *testing.T) {
	people := testutil.CreatePeopleTable()

	_, err := operations.Filter(people, "salary", "gt", "1")
	var notFound *errors.ColumnNotFoundError
	assert.ErrorAs(t, err, &notFound)

	_, err = operations.Filter(people, "Age", "gt", "1")
	assert.ErrorAs(t, err, &notFound, "filter column names are case sensitive")

	_, err = operations.Filter(people, "age", "ge", "1")
	var badOp *errors.InvalidOperatorError
	require.ErrorAs(t, err, &badOp)
	assert.Equal(t, "ge", badOp.Operator)
	assert.Equal(t, errors.KindStructural, errors.KindOf(err))
}

func TestParseOperator(t *testing.T) {
	for _, s := range []string{"eq", "neq", "gt", "lt", "get", "let"} {
		op, err := operations.ParseOperator(s)
		require.NoError(t, err)
		assert.Equal(t, operations.Operator(s), op)
	}
	_, err := operations.ParseOperator("==")
	assert.Error(t, err)
}
