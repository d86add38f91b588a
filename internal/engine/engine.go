package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/leengari/mini-dataframe/internal/config"
	"github.com/leengari/mini-dataframe/internal/domain/schema"
	"github.com/leengari/mini-dataframe/internal/domain/transaction"
	"github.com/leengari/mini-dataframe/internal/executor"
	"github.com/leengari/mini-dataframe/internal/parser"
	"github.com/leengari/mini-dataframe/internal/parser/ast"
	"github.com/leengari/mini-dataframe/internal/storage/manager"
)

// Engine is one interactive session: the table store, the active table and
// the settings every command runs with. It is not safe for concurrent use;
// commands run one at a time to completion.
type Engine struct {
	registry  *manager.Registry
	cfg       *config.Config
	observers []Observer // Observers for lifecycle events
	closed    bool
}

// New creates a new Engine with an empty table store. A nil config uses
// the defaults.
func New(cfg *config.Config) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Engine{
		registry:  manager.NewRegistry(),
		cfg:       cfg,
		observers: make([]Observer, 0),
	}
}

// Execute parses and runs one command line. Blank lines return an empty
// result.
func (e *Engine) Execute(line string) (*executor.Result, error) {
	tx := transaction.NewTransaction()
	defer tx.Close()

	// 1. Parse
	e.notify(Event{Type: EventParseStart, TxID: tx.ID, Data: line})
	stmt, err := parser.ParseLine(line)
	if err != nil {
		e.notify(Event{Type: EventError, TxID: tx.ID, Data: err.Error()})
		return nil, fmt.Errorf("parse error: %w", err)
	}
	if stmt == nil {
		return &executor.Result{}, nil
	}
	e.notify(Event{Type: EventParseEnd, TxID: tx.ID, Data: stmt.String()})

	return e.run(stmt, tx)
}

// Load reads a file into a new active table, as the load command does
func (e *Engine) Load(path string, sep byte) (*executor.Result, error) {
	tx := transaction.NewTransaction()
	defer tx.Close()
	return e.run(&ast.LoadStatement{Path: path, Separator: sep}, tx)
}

func (e *Engine) run(stmt ast.Statement, tx *transaction.Transaction) (*executor.Result, error) {
	if e.closed {
		return nil, fmt.Errorf("session closed")
	}

	// 2. Execute
	e.notify(Event{Type: EventExecStart, TxID: tx.ID, Data: stmt.TokenLiteral()})
	ctx := executor.NewExecutionContext(e.registry, e.cfg, tx)
	result, err := executor.Execute(stmt, ctx)
	if err != nil {
		e.notify(Event{Type: EventError, TxID: tx.ID, Data: err.Error()})
		return nil, fmt.Errorf("%s: %w", stmt.TokenLiteral(), err)
	}

	// 3. Report swaps
	for _, change := range tx.Changes {
		e.notify(Event{Type: EventSwap, TxID: tx.ID, Data: change})
	}
	e.notify(Event{Type: EventExecEnd, TxID: tx.ID, Data: map[string]interface{}{
		"rows_affected": result.RowsAffected,
		"rows_returned": len(result.Rows),
		"duration":      tx.Duration().String(),
	}})

	return result, nil
}

// Active returns the active table, or nil before the first load
func (e *Engine) Active() *schema.Table {
	return e.registry.Active()
}

// Tables returns the stored tables in load order
func (e *Engine) Tables() []*schema.Table {
	return e.registry.List()
}

// Prompt renders the REPL prompt for the current state
func (e *Engine) Prompt() string {
	t := e.registry.Active()
	if t == nil {
		return "[?]:> "
	}
	return fmt.Sprintf("[%s]:> ", t)
}

// Close releases every stored table. Further commands fail.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	slog.Debug("closing session", "tables", e.registry.Len())
	e.registry.CloseAll()
	e.closed = true
}

// AddObserver registers an observer to receive lifecycle events
func (e *Engine) AddObserver(observer Observer) {
	e.observers = append(e.observers, observer)
}

// RemoveObserver unregisters an observer
func (e *Engine) RemoveObserver(observer Observer) {
	for i, o := range e.observers {
		if o == observer {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (e *Engine) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range e.observers {
		observer.OnEvent(event)
	}
}
