package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leengari/mini-dataframe/internal/domain/errors"
)

func filledTable() *Table {
	t := NewTable("df0", []string{"a", "b"}, 3)
	t.Columns[0].Set(0, "x")
	t.Columns[0].Set(1, "y")
	t.Columns[0].Set(2, "z")
	t.Columns[1].Set(0, "1")
	t.Columns[1].MarkNull(1)
	t.Columns[1].Set(2, "3")
	t.RowCount = 3
	return t
}

func TestGrowKeepsRowsAndTrimIsExact(t *testing.T) {
	tbl := NewTable("df0", []string{"a"}, 2)
	tbl.Columns[0].Set(0, "first")
	tbl.Columns[0].MarkNull(1)

	tbl.Grow(2)
	assert.Equal(t, 4, tbl.Capacity())
	assert.Equal(t, "first", tbl.Columns[0].Values[0])
	assert.True(t, tbl.Columns[0].IsNull(1))

	tbl.Columns[0].Set(2, "third")
	tbl.RowCount = 3
	tbl.Trim()
	assert.Equal(t, 3, tbl.Capacity())
	assert.Equal(t, 3, cap(tbl.Columns[0].Values))
	assert.NoError(t, tbl.Validate())
}

func TestNullTracking(t *testing.T) {
	col := NewColumn("a", 3)
	col.Set(1, "stale")
	col.MarkNull(1)

	v, ok := col.Value(1)
	assert.False(t, ok)
	assert.Empty(t, v, "marking null drops the stored value")
	assert.Equal(t, 1, col.NullCount())

	col.Set(1, "fresh")
	assert.False(t, col.IsNull(1))
	assert.Equal(t, 0, col.NullCount())
}

func TestSelectRowsMovesWholeRows(t *testing.T) {
	tbl := filledTable()
	out := tbl.SelectRows([]int{2, 1})

	assert.Equal(t, 2, out.RowCount)
	assert.Equal(t, []string{"z", "y"}, out.Columns[0].Values)
	assert.Equal(t, []bool{false, true}, out.Columns[1].Nulls)
	assert.NoError(t, out.Validate())

	out.Columns[0].Set(0, "changed")
	assert.Equal(t, "z", tbl.Columns[0].Values[2], "source not aliased")
}

func TestColumnLookup(t *testing.T) {
	tbl := filledTable()

	assert.Equal(t, 1, tbl.ColumnIndex("b"))
	assert.Equal(t, -1, tbl.ColumnIndex("B"))
	assert.Equal(t, 1, tbl.ColumnIndexFold("B"))

	_, err := tbl.Column("c")
	var notFound *errors.ColumnNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "c", notFound.ColumnName)
}

func TestRowAndClone(t *testing.T) {
	tbl := filledTable()
	row := tbl.Row(1)
	assert.Equal(t, []string{"y", ""}, row.Values)
	assert.Equal(t, []bool{false, true}, row.Nulls)

	clone := tbl.Clone()
	clone.Columns[0].Set(0, "q")
	assert.Equal(t, "x", tbl.Columns[0].Values[0])
	assert.Equal(t, "df0: 3,2", tbl.String())
}

func TestValidate(t *testing.T) {
	tbl := NewTable("df0", []string{"a", "a"}, 0)
	var dup *errors.DuplicateColumnError
	assert.ErrorAs(t, tbl.Validate(), &dup)

	tbl = NewTable("df0", []string{"a"}, 2)
	tbl.RowCount = 1
	assert.Error(t, tbl.Validate(), "untrimmed capacity")
}
