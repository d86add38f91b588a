package engine

import "time"

// EventType represents different lifecycle phases of a session command
type EventType string

const (
	EventParseStart EventType = "parse_start"
	EventParseEnd   EventType = "parse_end"
	EventExecStart  EventType = "exec_start"
	EventExecEnd    EventType = "exec_end"
	EventSwap       EventType = "swap"
	EventError      EventType = "error"
)

// Event represents a lifecycle event in command execution
type Event struct {
	Type      EventType   // Type of event
	TxID      string      // Transaction ID for tracing
	Timestamp time.Time   // When the event occurred
	Data      interface{} // Phase-specific data (e.g., command line, statement, change)
}

// Observer interface for event subscribers
// Observers receive events at major execution phases
type Observer interface {
	OnEvent(event Event)
}
