package writer

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/leengari/mini-dataframe/internal/domain/errors"
	"github.com/leengari/mini-dataframe/internal/domain/schema"
)

// Extension is enforced on every save target
const Extension = ".csv"

// ResolvePath picks the save target: <tableName>.csv when target is empty,
// otherwise target with .csv appended when it lacks the suffix.
func ResolvePath(target, tableName string) string {
	target = strings.TrimSpace(target)
	if target == "" {
		target = tableName
	}
	if !strings.HasSuffix(target, Extension) {
		target += Extension
	}
	return target
}

// SaveTable writes t to path atomically (temp file + rename)
func SaveTable(t *schema.Table, path string, sep byte) error {
	if t == nil {
		return fmt.Errorf("cannot save table: nil table")
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &errors.IOError{Op: "write", Path: path, Err: err}
	}
	tmpPath := tmp.Name()

	// CreateTemp uses 0600; saved files get the usual 0644
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &errors.IOError{Op: "write", Path: path, Err: err}
	}

	if err := WriteTable(tmp, t, sep); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &errors.IOError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &errors.IOError{Op: "write", Path: path, Err: err}
	}

	// Atomic replace
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return &errors.IOError{Op: "rename", Path: path, Err: err}
	}

	slog.Info("table saved",
		slog.String("table", t.Name),
		slog.String("path", path),
		slog.Int("rows", t.RowCount),
		slog.Int("columns", t.NumColumns()),
	)
	return nil
}

// WriteTable writes the header and every row. Null cells are empty fields;
// fields holding the separator, a double quote or a line break are quoted
// with inner quotes doubled.
func WriteTable(w io.Writer, t *schema.Table, sep byte) error {
	bw := bufio.NewWriter(w)

	for c, col := range t.Columns {
		if c > 0 {
			bw.WriteByte(sep)
		}
		bw.WriteString(escapeField(col.Name, sep))
	}
	bw.WriteByte('\n')

	for r := 0; r < t.RowCount; r++ {
		for c, col := range t.Columns {
			if c > 0 {
				bw.WriteByte(sep)
			}
			if v, ok := col.Value(r); ok {
				bw.WriteString(escapeField(v, sep))
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// escapeField applies RFC 4180 quoting when needed
func escapeField(v string, sep byte) string {
	if !strings.ContainsAny(v, string(sep)+"\"\r\n") {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}
