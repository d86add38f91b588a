package transaction

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// txIDCounter is an atomic counter giving each command a short sequence number
var txIDCounter uint64

// ChangeType represents the kind of table replacement a command performed
type ChangeType string

const (
	ChangeTypeLoad       ChangeType = "LOAD"
	ChangeTypeAppend     ChangeType = "APPEND"
	ChangeTypeFilter     ChangeType = "FILTER"
	ChangeTypeSort       ChangeType = "SORT"
	ChangeTypeDropNulls  ChangeType = "DROPNULL"
	ChangeTypeDropColumn ChangeType = "DROPCOLUMN"
	ChangeTypeDerive     ChangeType = "DERIVE"
	ChangeTypeRename     ChangeType = "RENAME"
	ChangeTypeSwitch     ChangeType = "SWITCH"
)

// Change records one table swap made inside a transaction
type Change struct {
	Type       ChangeType
	Table      string
	RowsBefore int
	RowsAfter  int
	ColsBefore int
	ColsAfter  int
}

// Transaction is the context of one session command. Changes are recorded
// only after the new table has been fully built and swapped in.
type Transaction struct {
	ID        string    // UUID, used for log correlation
	TxID      uint64    // monotonically increasing sequence number
	Active    bool      // Whether transaction is currently active
	StartTime time.Time // When the transaction began
	Changes   []Change  // Swaps made
}

// NewTransaction creates a new transaction with a unique ID
func NewTransaction() *Transaction {
	return &Transaction{
		ID:        uuid.New().String(),
		TxID:      atomic.AddUint64(&txIDCounter, 1),
		Active:    true,
		StartTime: time.Now(),
		Changes:   make([]Change, 0),
	}
}

// Record appends a change; ignored once the transaction is closed
func (tx *Transaction) Record(c Change) {
	if !tx.Active {
		return
	}
	tx.Changes = append(tx.Changes, c)
}

// Duration returns the time elapsed since the transaction started
func (tx *Transaction) Duration() time.Duration {
	return time.Since(tx.StartTime)
}

// Close marks the transaction as inactive
func (tx *Transaction) Close() {
	tx.Active = false
}
