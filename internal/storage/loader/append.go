package loader

import (
	"log/slog"

	"github.com/leengari/mini-dataframe/internal/domain/schema"
	"github.com/leengari/mini-dataframe/internal/query/operations"
)

// AppendFile ingests path with the regular pipeline and returns a new table
// holding dst's rows followed by the file's rows. The file must have the
// same ordered column names as dst. dst is not modified.
func AppendFile(dst *schema.Table, path string, opts Options) (*schema.Table, error) {
	incoming, err := LoadFile(path, dst.Name, opts)
	if err != nil {
		return nil, err
	}

	out, err := operations.Append(dst, incoming)
	if err != nil {
		return nil, err
	}

	slog.Info("rows appended from file",
		slog.String("table", dst.Name),
		slog.String("path", path),
		slog.Int("rows_added", incoming.RowCount),
		slog.Int("rows", out.RowCount),
	)
	return out, nil
}
