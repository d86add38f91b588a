package manager

import (
	"fmt"
	"log/slog"

	"github.com/leengari/mini-dataframe/internal/domain/errors"
	"github.com/leengari/mini-dataframe/internal/domain/schema"
)

// Registry is the session's table store: tables in load order, addressable
// by unique name, plus the active table. It is owned by a single session
// and is not safe for concurrent use.
type Registry struct {
	tables []*schema.Table
	byName map[string]int // name -> position in tables
	active string
	loaded int // tables ever added, drives default names
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]int),
	}
}

// NextName returns prefix<n> for the next load, skipping names in use
func (r *Registry) NextName(prefix string) string {
	for n := r.loaded; ; n++ {
		name := fmt.Sprintf("%s%d", prefix, n)
		if _, taken := r.byName[name]; !taken {
			return name
		}
	}
}

// Add stores a new table. When activate is true it also becomes active.
func (r *Registry) Add(t *schema.Table, activate bool) error {
	if _, exists := r.byName[t.Name]; exists {
		return &errors.DuplicateTableError{TableName: t.Name}
	}
	r.byName[t.Name] = len(r.tables)
	r.tables = append(r.tables, t)
	r.loaded++

	if activate {
		r.active = t.Name
	}
	slog.Debug("table registered", "table", t.Name, "active", activate, "tables", len(r.tables))
	return nil
}

// Get returns a table by name
func (r *Registry) Get(name string) (*schema.Table, error) {
	idx, ok := r.byName[name]
	if !ok {
		return nil, &errors.TableNotFoundError{TableName: name}
	}
	return r.tables[idx], nil
}

// Has reports whether name is stored
func (r *Registry) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Active returns the active table, or nil when none has been loaded
func (r *Registry) Active() *schema.Table {
	if r.active == "" {
		return nil
	}
	return r.tables[r.byName[r.active]]
}

// Switch makes the named table active
func (r *Registry) Switch(name string) (*schema.Table, error) {
	t, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	r.active = name
	return t, nil
}

// Replace swaps the stored version of next.Name for next and returns the
// previous version, which the caller should drop. The swap is the only
// point at which a transform becomes visible.
func (r *Registry) Replace(next *schema.Table) (*schema.Table, error) {
	idx, ok := r.byName[next.Name]
	if !ok {
		return nil, &errors.TableNotFoundError{TableName: next.Name}
	}
	prev := r.tables[idx]
	r.tables[idx] = next
	return prev, nil
}

// Rename changes a table's name, keeping its position and active state
func (r *Registry) Rename(oldName, newName string) error {
	idx, ok := r.byName[oldName]
	if !ok {
		return &errors.TableNotFoundError{TableName: oldName}
	}
	if oldName == newName {
		return nil
	}
	if _, taken := r.byName[newName]; taken {
		return &errors.DuplicateTableError{TableName: newName}
	}

	renamed := *r.tables[idx]
	renamed.Name = newName
	r.tables[idx] = &renamed

	delete(r.byName, oldName)
	r.byName[newName] = idx
	if r.active == oldName {
		r.active = newName
	}
	return nil
}

// List returns the stored tables in insertion order
func (r *Registry) List() []*schema.Table {
	out := make([]*schema.Table, len(r.tables))
	copy(out, r.tables)
	return out
}

// Len returns the number of stored tables
func (r *Registry) Len() int {
	return len(r.tables)
}

// CloseAll releases every table (call on shutdown)
func (r *Registry) CloseAll() {
	slog.Debug("releasing tables", "count", len(r.tables))
	r.tables = nil
	r.byName = make(map[string]int)
	r.active = ""
}
