package executor

import (
	"github.com/leengari/mini-dataframe/internal/config"
	"github.com/leengari/mini-dataframe/internal/domain/errors"
	"github.com/leengari/mini-dataframe/internal/domain/schema"
	"github.com/leengari/mini-dataframe/internal/domain/transaction"
	"github.com/leengari/mini-dataframe/internal/storage/loader"
	"github.com/leengari/mini-dataframe/internal/storage/manager"
)

// ExecutionContext provides the session resources a command runs against
type ExecutionContext struct {
	Registry    *manager.Registry
	Config      *config.Config
	Transaction *transaction.Transaction
}

// NewExecutionContext builds a context for one command. A nil config falls
// back to the defaults.
func NewExecutionContext(reg *manager.Registry, cfg *config.Config, tx *transaction.Transaction) *ExecutionContext {
	if cfg == nil {
		cfg = config.Default()
	}
	if tx == nil {
		tx = transaction.NewTransaction()
	}
	return &ExecutionContext{Registry: reg, Config: cfg, Transaction: tx}
}

// active returns the active table or NoActiveTableError
func (ctx *ExecutionContext) active() (*schema.Table, error) {
	t := ctx.Registry.Active()
	if t == nil {
		return nil, &errors.NoActiveTableError{}
	}
	return t, nil
}

// loadOptions resolves ingestion options for an explicit or default separator
func (ctx *ExecutionContext) loadOptions(sep byte) loader.Options {
	return loader.OptionsFromConfig(ctx.Config, sep)
}

// saveSeparator prefers the delimiter the table was read with
func (ctx *ExecutionContext) saveSeparator(t *schema.Table) byte {
	if t.Separator != 0 {
		return t.Separator
	}
	return ctx.Config.Separator()
}
