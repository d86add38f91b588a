package operations

import (
	"log/slog"
	"slices"

	"github.com/leengari/mini-dataframe/internal/domain/schema"
	"github.com/leengari/mini-dataframe/internal/validation"
)

// Direction is a sort order
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// sortKey is the precomputed comparison key of one row. rank orders the
// three classes of cell: parsed values, values that failed to parse under
// the column type, then nulls.
type sortKey struct {
	rank int
	num  float64
	date validation.Date
	text string
}

const (
	rankParsed = iota
	rankUnparsed
	rankNull
)

// Sort reorders whole rows by the named column. The sort is stable, so
// equal keys keep their relative order and sorting twice is a no-op.
// Nulls are placed last in both directions: descending reverses the order of
// present values only, so nulls never lead a descending result.
func Sort(t *schema.Table, column string, dir Direction) (*schema.Table, error) {
	col, err := t.Column(column)
	if err != nil {
		return nil, err
	}

	keys := make([]sortKey, t.RowCount)
	for i := range keys {
		keys[i] = keyFor(col, i)
	}

	perm := make([]int, t.RowCount)
	for i := range perm {
		perm[i] = i
	}

	slices.SortStableFunc(perm, func(a, b int) int {
		ka, kb := keys[a], keys[b]
		if ka.rank != kb.rank {
			return ka.rank - kb.rank
		}
		cmp := compareKeys(col.Type, ka, kb)
		if dir == Descending && ka.rank != rankNull {
			return -cmp
		}
		return cmp
	})

	slog.Debug("sort applied",
		slog.String("table", t.Name),
		slog.String("column", column),
		slog.String("direction", string(dir)),
		slog.Int("rows", t.RowCount),
	)
	return t.SelectRows(perm), nil
}

func keyFor(col *schema.Column, row int) sortKey {
	v, ok := col.Value(row)
	if !ok {
		return sortKey{rank: rankNull}
	}
	switch col.Type {
	case schema.ColumnTypeNumeric:
		if f, ok := validation.ParseNumeric(v); ok {
			return sortKey{rank: rankParsed, num: f}
		}
	case schema.ColumnTypeDate:
		if d, ok := validation.ParseDate(v); ok {
			return sortKey{rank: rankParsed, date: d}
		}
	default:
		return sortKey{rank: rankParsed, text: v}
	}
	return sortKey{rank: rankUnparsed, text: v}
}

func compareKeys(typ schema.ColumnType, a, b sortKey) int {
	switch {
	case a.rank == rankNull:
		return 0
	case a.rank == rankUnparsed:
		return compareText(a.text, b.text)
	case typ == schema.ColumnTypeNumeric:
		return compareFloat(a.num, b.num)
	case typ == schema.ColumnTypeDate:
		return a.date.Compare(b.date)
	default:
		return compareText(a.text, b.text)
	}
}

func compareText(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
