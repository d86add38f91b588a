package transaction

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	a := NewTransaction()
	b := NewTransaction()

	_, err := uuid.Parse(a.ID)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Greater(t, b.TxID, a.TxID)
	assert.True(t, a.Active)
}

func TestRecordStopsAfterClose(t *testing.T) {
	tx := NewTransaction()
	tx.Record(Change{Type: ChangeTypeSort, Table: "df0", RowsBefore: 4, RowsAfter: 4})
	tx.Close()
	tx.Record(Change{Type: ChangeTypeFilter, Table: "df0"})

	require.Len(t, tx.Changes, 1)
	assert.Equal(t, ChangeTypeSort, tx.Changes[0].Type)
	assert.False(t, tx.Active)
	assert.GreaterOrEqual(t, tx.Duration().Nanoseconds(), int64(0))
}
