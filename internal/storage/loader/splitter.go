package loader

import (
	"github.com/leengari/mini-dataframe/internal/validation"
)

// Field is one positional token of a delimited line
type Field struct {
	Value string
	Null  bool
}

// SplitLine splits one raw line into exactly strings.Count(line, sep)+1
// fields. Empty fields are kept in position (leading, trailing and
// consecutive separators all produce a field) and are flagged null, as are
// fields made only of spaces and tabs. The line ends at the first '\r' or
// '\n'. There is no quote handling on read.
func SplitLine(line string, sep byte) []Field {
	end := len(line)
	for i := 0; i < len(line); i++ {
		if line[i] == '\r' || line[i] == '\n' {
			end = i
			break
		}
	}
	line = line[:end]

	fields := make([]Field, 0, countFields(line, sep))
	start := 0
	for i := 0; i <= len(line); i++ {
		if i < len(line) && line[i] != sep {
			continue
		}
		token := line[start:i]
		if validation.IsBlank(token) {
			fields = append(fields, Field{Null: true})
		} else {
			fields = append(fields, Field{Value: token})
		}
		start = i + 1
	}
	return fields
}

// countFields returns the separator count plus one
func countFields(line string, sep byte) int {
	n := 1
	for i := 0; i < len(line); i++ {
		if line[i] == sep {
			n++
		}
	}
	return n
}
