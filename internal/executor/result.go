package executor

import (
	"github.com/leengari/mini-dataframe/internal/domain/data"
	"github.com/leengari/mini-dataframe/internal/query/operations"
)

// ColumnMetadata describes a result column
type ColumnMetadata struct {
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// Result is what one command hands back to the session
type Result struct {
	Columns      []string              `json:"columns,omitempty"`
	Metadata     []ColumnMetadata      `json:"metadata,omitempty"`
	Rows         []data.Row            `json:"rows,omitempty"`
	Meta         *operations.TableMeta `json:"meta,omitempty"`
	Message      string                `json:"message,omitempty"`
	RowsAffected int                   `json:"rows_affected"`
	NoMatch      bool                  `json:"no_match,omitempty"` // filter matched nothing, table kept
	Quit         bool                  `json:"-"`
}
