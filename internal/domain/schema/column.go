package schema

// ColumnType is the inferred type tag of a column. Values are always stored
// as text; the tag selects the comparator and the formatting.
type ColumnType string

const (
	ColumnTypeText    ColumnType = "Text"
	ColumnTypeNumeric ColumnType = "Numeric"
	ColumnTypeDate    ColumnType = "Date"
)

// Column is one named vector of values with a parallel null-flag vector.
// len(Values) == len(Nulls) always holds; a slot flagged null is never
// read for comparison or arithmetic.
type Column struct {
	Name   string
	Type   ColumnType
	Values []string
	Nulls  []bool
}

// NewColumn allocates a Text column with n empty, non-null slots
func NewColumn(name string, n int) *Column {
	return &Column{
		Name:   name,
		Type:   ColumnTypeText,
		Values: make([]string, n),
		Nulls:  make([]bool, n),
	}
}

func (c *Column) Len() int { return len(c.Values) }

// IsNull reports whether row i is missing
func (c *Column) IsNull(i int) bool {
	return c.Nulls[i]
}

// MarkNull flags row i as missing and drops whatever was stored there
func (c *Column) MarkNull(i int) {
	c.Nulls[i] = true
	c.Values[i] = ""
}

// Set stores a present value at row i
func (c *Column) Set(i int, v string) {
	c.Values[i] = v
	c.Nulls[i] = false
}

// Value returns the stored value and whether it is present
func (c *Column) Value(i int) (string, bool) {
	if c.Nulls[i] {
		return "", false
	}
	return c.Values[i], true
}

// NullCount counts flagged rows
func (c *Column) NullCount() int {
	n := 0
	for _, null := range c.Nulls {
		if null {
			n++
		}
	}
	return n
}

// grow extends both vectors by n zero-valued slots, keeping existing rows
func (c *Column) grow(n int) {
	c.Values = append(c.Values, make([]string, n)...)
	c.Nulls = append(c.Nulls, make([]bool, n)...)
}

// trim cuts both vectors to n rows and releases spare capacity
func (c *Column) trim(n int) {
	values := make([]string, n)
	copy(values, c.Values[:n])
	nulls := make([]bool, n)
	copy(nulls, c.Nulls[:n])
	c.Values = values
	c.Nulls = nulls
}

// gather builds a new column holding rows picked by index, in that order
func (c *Column) gather(rows []int) *Column {
	out := &Column{
		Name:   c.Name,
		Type:   c.Type,
		Values: make([]string, len(rows)),
		Nulls:  make([]bool, len(rows)),
	}
	for dst, src := range rows {
		out.Values[dst] = c.Values[src]
		out.Nulls[dst] = c.Nulls[src]
	}
	return out
}

// Clone returns a deep copy
func (c *Column) Clone() *Column {
	out := &Column{
		Name:   c.Name,
		Type:   c.Type,
		Values: make([]string, len(c.Values)),
		Nulls:  make([]bool, len(c.Nulls)),
	}
	copy(out.Values, c.Values)
	copy(out.Nulls, c.Nulls)
	return out
}
