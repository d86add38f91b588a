package loader

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/gzip"

	"github.com/leengari/mini-dataframe/internal/config"
	"github.com/leengari/mini-dataframe/internal/domain/errors"
	"github.com/leengari/mini-dataframe/internal/domain/schema"
	"github.com/leengari/mini-dataframe/internal/inference"
	"github.com/leengari/mini-dataframe/internal/validation"
)

// Options controls one ingestion run
type Options struct {
	Separator     byte
	BatchSize     int // row slots added per growth step
	MaxColumns    int
	MaxRows       int // 0 = unlimited
	MaxColumnName int
}

// OptionsFromConfig builds ingestion options, using sep when non-zero
func OptionsFromConfig(cfg *config.Config, sep byte) Options {
	if sep == 0 {
		sep = cfg.Separator()
	}
	return Options{
		Separator:     sep,
		BatchSize:     cfg.Ingest.BatchSize,
		MaxColumns:    cfg.Ingest.MaxColumns,
		MaxRows:       cfg.Ingest.MaxRows,
		MaxColumnName: cfg.Ingest.MaxColumnName,
	}
}

// LoadFile ingests a delimited file into a new table named name.
// Files ending in .gz are decompressed on the fly. On any error no table
// is returned.
func LoadFile(path, name string, opts Options) (*schema.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &errors.IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, &errors.IOError{Op: "read", Path: path, Err: err}
		}
		defer gz.Close()
		r = gz
	}

	t, err := Load(r, name, opts)
	if err != nil {
		var ioErr *errors.IOError
		if stderrors.As(err, &ioErr) && ioErr.Path == "" {
			ioErr.Path = path
		}
		var limitErr *errors.ColumnLimitError
		if stderrors.As(err, &limitErr) {
			limitErr.Path = path
		}
		return nil, err
	}
	t.Path = path

	slog.Info("table loaded",
		slog.String("table", t.Name),
		slog.String("path", path),
		slog.Int("rows", t.RowCount),
		slog.Int("columns", t.NumColumns()),
	)
	return t, nil
}

// Load reads a header line and data lines from r. The table starts with
// BatchSize empty rows per column and grows by another batch whenever the
// next row would not fit; it is trimmed to the exact row count and typed
// before being returned.
func Load(r io.Reader, name string, opts Options) (*schema.Table, error) {
	if opts.Separator == 0 {
		opts.Separator = ','
	}
	if opts.BatchSize < 1 {
		return nil, &errors.InvalidArgumentError{Argument: "batch size", Value: opts.BatchSize, Reason: "must be at least 1"}
	}

	br := bufio.NewReader(r)

	header, err := readLine(br)
	if err != nil && err != io.EOF {
		return nil, &errors.IOError{Op: "read", Err: err}
	}
	if header == "" && err == io.EOF {
		return nil, &errors.IOError{Op: "read", Err: fmt.Errorf("missing header line")}
	}

	names, err := headerNames(header, name, opts)
	if err != nil {
		return nil, err
	}

	t := schema.NewTable(name, names, opts.BatchSize)
	row := 0

	for {
		line, readErr := readLine(br)
		if readErr != nil && readErr != io.EOF {
			return nil, &errors.IOError{Op: "read", Err: readErr}
		}
		if line == "" && readErr == io.EOF {
			break
		}

		if opts.MaxRows > 0 && row >= opts.MaxRows {
			return nil, &errors.ResourceError{
				Reason: fmt.Sprintf("more than %d rows", opts.MaxRows),
				Rows:   row,
			}
		}
		if row >= t.Capacity() {
			t.Grow(opts.BatchSize)
			slog.Debug("table storage grown",
				slog.String("table", name),
				slog.Int("rows", row),
				slog.Int("capacity", t.Capacity()),
			)
		}

		fillRow(t, row, SplitLine(line, opts.Separator))
		row++

		if readErr == io.EOF {
			break
		}
	}

	t.RowCount = row
	t.Separator = opts.Separator
	t.Trim()
	inference.InferTable(t)

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// fillRow copies tokens into row; columns without a token are null and
// tokens past the last column are ignored
func fillRow(t *schema.Table, row int, fields []Field) {
	for c, col := range t.Columns {
		if c >= len(fields) || fields[c].Null {
			col.MarkNull(row)
			continue
		}
		col.Set(row, fields[c].Value)
	}
}

// headerNames validates and normalises the header line
func headerNames(header, table string, opts Options) ([]string, error) {
	fields := SplitLine(header, opts.Separator)
	if opts.MaxColumns > 0 && len(fields) > opts.MaxColumns {
		return nil, &errors.ColumnLimitError{Count: len(fields), Limit: opts.MaxColumns}
	}

	names := make([]string, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for i, f := range fields {
		n := validation.TrimBlank(f.Value)
		if f.Null || n == "" {
			n = fmt.Sprintf("column%d", i+1)
		}
		n = truncate(n, opts.MaxColumnName)
		if _, dup := seen[n]; dup {
			return nil, &errors.DuplicateColumnError{TableName: table, ColumnName: n}
		}
		seen[n] = struct{}{}
		names[i] = n
	}
	return names, nil
}

// truncate cuts s to at most max runes
func truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}

// readLine returns the next line without its terminator. The returned
// error is io.EOF when the line was the last one in the input.
func readLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	return line, err
}
