package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leengari/mini-dataframe/internal/config"
	"github.com/leengari/mini-dataframe/internal/engine"
	"github.com/leengari/mini-dataframe/internal/executor"
)

const peopleCSV = "name,age,joined\nAlice,30,2024-01-05\nBob,,2024-02-10\nCara,22,\nDan,41,2024-03-01"

// MockObserver records every event it receives
type MockObserver struct {
	Events []engine.Event
}

func (m *MockObserver) OnEvent(event engine.Event) {
	m.Events = append(m.Events, event)
}

// setupSession creates an engine and a scratch directory holding people.csv
func setupSession(t *testing.T, cfg *config.Config) (*engine.Engine, string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "people.csv"), []byte(peopleCSV), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return engine.New(cfg), dir
}

func teardownSession(t *testing.T, eng *engine.Engine) {
	t.Helper()
	eng.Close()
	if eng.Active() != nil {
		t.Error("tables still reachable after close")
	}
}

func mustExec(t *testing.T, eng *engine.Engine, line string) *executor.Result {
	t.Helper()
	res, err := eng.Execute(line)
	if err != nil {
		t.Fatalf("%s: %v", line, err)
	}
	return res
}

// column returns the named column of the active table, nulls as "NULL"
func column(t *testing.T, eng *engine.Engine, name string) []string {
	t.Helper()
	tbl := eng.Active()
	col, err := tbl.Column(name)
	if err != nil {
		t.Fatalf("column %s: %v", name, err)
	}
	out := make([]string, tbl.RowCount)
	for i := range out {
		if v, ok := col.Value(i); ok {
			out[i] = v
		} else {
			out[i] = "NULL"
		}
	}
	return out
}
