package data

import (
	gojson "github.com/goccy/go-json"
)

// Row is a positional view of one table row.
// Values[i] is meaningful only when Nulls[i] is false.
type Row struct {
	Values []string
	Nulls  []bool
}

// NewRow creates a row with n empty, non-null cells
func NewRow(n int) Row {
	return Row{
		Values: make([]string, n),
		Nulls:  make([]bool, n),
	}
}

// Get returns cell i and whether it is present
func (r Row) Get(i int) (string, bool) {
	if i < 0 || i >= len(r.Values) || r.Nulls[i] {
		return "", false
	}
	return r.Values[i], true
}

// MarshalJSON renders the row as an array with JSON null for missing cells
func (r Row) MarshalJSON() ([]byte, error) {
	cells := make([]*string, len(r.Values))
	for i := range r.Values {
		if r.Nulls[i] {
			continue
		}
		v := r.Values[i]
		cells[i] = &v
	}
	return gojson.Marshal(cells)
}
