package repl

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leengari/mini-dataframe/internal/domain/data"
	"github.com/leengari/mini-dataframe/internal/engine"
	"github.com/leengari/mini-dataframe/internal/executor"
)

func TestStartSession(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "people.csv")
	require.NoError(t, os.WriteFile(src, []byte("name,age\nAlice,30\nBob,\n"), 0644))

	script := strings.Join([]string{
		"load " + src,
		"",
		"view",
		"bogus command here",
		"help",
		"quit",
		"view", // never reached
	}, "\n")

	var out bytes.Buffer
	require.NoError(t, Start(engine.New(nil), strings.NewReader(script), &out))

	text := out.String()
	assert.Contains(t, text, "[?]:> ")
	assert.Contains(t, text, "[df0: 2,2]:> ")
	assert.Contains(t, text, "name (Text)")
	assert.Contains(t, text, "age (Numeric)")
	assert.Contains(t, text, "NULL")
	assert.Contains(t, text, "Error: parse error: unknown command")
	assert.Contains(t, text, "filter <col>")
	assert.Contains(t, text, "bye")
	assert.Equal(t, 1, strings.Count(text, "2 of 2 rows"), "input after quit is not read")
}

func TestStartEndOfInput(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Start(engine.New(nil), strings.NewReader("list"), &out))
	assert.Contains(t, out.String(), "0 tables")
}

func TestPrintResult(t *testing.T) {
	res := &executor.Result{
		Columns:  []string{"name", "age"},
		Metadata: []executor.ColumnMetadata{{Name: "name", Type: "Text"}, {Name: "age", Type: "Numeric"}},
		Rows: []data.Row{
			{Values: []string{"Alice", "30"}, Nulls: []bool{false, false}},
			{Values: []string{"Bob", ""}, Nulls: []bool{false, true}},
		},
		Message: "2 of 2 rows",
	}

	var out bytes.Buffer
	PrintResult(&out, res)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "2 of 2 rows", lines[0])
	assert.Equal(t, "name (Text)  age (Numeric)", lines[1])
	assert.Equal(t, "Bob          NULL", lines[4])
}

func TestPrintResultMessageOnly(t *testing.T) {
	var out bytes.Buffer
	PrintResult(&out, &executor.Result{Message: "Saved df0 to df0.csv"})
	assert.Equal(t, "Saved df0 to df0.csv\n", out.String())
}
