package integration

import (
	"path/filepath"
	"testing"

	"github.com/leengari/mini-dataframe/internal/domain/transaction"
	"github.com/leengari/mini-dataframe/internal/engine"
)

// TestCommandLifecycleEvents verifies that all expected events are emitted during a transform
func TestCommandLifecycleEvents(t *testing.T) {
	eng, dir := setupSession(t, nil)
	defer teardownSession(t, eng)
	mustExec(t, eng, "load "+filepath.Join(dir, "people.csv"))

	observer := &MockObserver{}
	eng.AddObserver(observer)

	mustExec(t, eng, "sort age asc")

	expectedEventTypes := []engine.EventType{
		engine.EventParseStart,
		engine.EventParseEnd,
		engine.EventExecStart,
		engine.EventSwap,
		engine.EventExecEnd,
	}

	if len(observer.Events) != len(expectedEventTypes) {
		t.Errorf("Expected %d events, got %d", len(expectedEventTypes), len(observer.Events))
		for i, event := range observer.Events {
			t.Logf("Event %d: %s", i, event.Type)
		}
		return
	}

	// Verify event order and types
	for i, expectedType := range expectedEventTypes {
		if observer.Events[i].Type != expectedType {
			t.Errorf("Event %d: Expected %s, got %s", i, expectedType, observer.Events[i].Type)
		}
	}

	// Verify all events have the same TxID
	txID := observer.Events[0].TxID
	for i, event := range observer.Events {
		if event.TxID != txID {
			t.Errorf("Event %d: TxID mismatch. Expected %s, got %s", i, txID, event.TxID)
		}
	}

	// Verify timestamps are in chronological order
	for i := 1; i < len(observer.Events); i++ {
		if observer.Events[i].Timestamp.Before(observer.Events[i-1].Timestamp) {
			t.Errorf("Event %d timestamp is before event %d", i, i-1)
		}
	}
}

// TestEventDataContent verifies that event data contains expected values
func TestEventDataContent(t *testing.T) {
	eng, dir := setupSession(t, nil)
	defer teardownSession(t, eng)
	mustExec(t, eng, "load "+filepath.Join(dir, "people.csv"))

	observer := &MockObserver{}
	eng.AddObserver(observer)

	mustExec(t, eng, "filter age gt 25")

	if got := observer.Events[0].Data; got != "filter age gt 25" {
		t.Errorf("ParseStart data: expected command line, got %v", got)
	}

	change, ok := observer.Events[3].Data.(transaction.Change)
	if !ok {
		t.Fatalf("Swap data: expected transaction.Change, got %T", observer.Events[3].Data)
	}
	if change.Type != transaction.ChangeTypeFilter || change.RowsBefore != 4 || change.RowsAfter != 2 {
		t.Errorf("Swap data: unexpected change %+v", change)
	}

	end, ok := observer.Events[4].Data.(map[string]interface{})
	if !ok {
		t.Fatalf("ExecEnd data: expected map, got %T", observer.Events[4].Data)
	}
	if end["rows_affected"] != 2 {
		t.Errorf("ExecEnd rows_affected: expected 2, got %v", end["rows_affected"])
	}
}
