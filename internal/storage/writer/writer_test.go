package writer

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leengari/mini-dataframe/internal/config"
	"github.com/leengari/mini-dataframe/internal/domain/errors"
	"github.com/leengari/mini-dataframe/internal/domain/schema"
	"github.com/leengari/mini-dataframe/internal/storage/loader"
)

func TestResolvePath(t *testing.T) {
	assert.Equal(t, "df0.csv", ResolvePath("", "df0"))
	assert.Equal(t, "out.csv", ResolvePath("out", "df0"))
	assert.Equal(t, "out.csv", ResolvePath(" out.csv ", "df0"))
	assert.Equal(t, "out.txt.csv", ResolvePath("out.txt", "df0"))
}

func TestWriteTableEscaping(t *testing.T) {
	tbl := schema.NewTable("df0", []string{"name", "note"}, 3)
	tbl.Columns[0].Set(0, "Smith, John")
	tbl.Columns[1].Set(0, `say "hi"`)
	tbl.Columns[0].Set(1, "plain")
	tbl.Columns[1].MarkNull(1)
	tbl.Columns[0].MarkNull(2)
	tbl.Columns[1].Set(2, "x")
	tbl.RowCount = 3

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, tbl, ','))

	want := "name,note\n" +
		`"Smith, John","say ""hi"""` + "\n" +
		"plain,\n" +
		",x\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteTableOtherSeparator(t *testing.T) {
	tbl := schema.NewTable("df0", []string{"a"}, 1)
	tbl.Columns[0].Set(0, "x;y,z")
	tbl.RowCount = 1

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, tbl, ';'))
	assert.Equal(t, "a\n\"x;y,z\"\n", buf.String())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	src := "name,age,joined\nAlice,30,2024-01-05\nBob,,2024-02-10\nCara,22,\nDan,41,2024-03-01\n"

	opts := loader.OptionsFromConfig(config.Default(), 0)
	tbl, err := loader.Load(strings.NewReader(src), "df0", opts)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, SaveTable(tbl, path, ','))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, src, string(got))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file removed")
}

func TestSaveTableUnwritable(t *testing.T) {
	tbl := schema.NewTable("df0", []string{"a"}, 0)
	err := SaveTable(tbl, filepath.Join(t.TempDir(), "missing", "out.csv"), ',')
	assert.Equal(t, errors.KindIO, errors.KindOf(err))
}

func TestSaveTableFileMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}
	tbl := schema.NewTable("df0", []string{"a"}, 0)
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, SaveTable(tbl, path, ','))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}
