package engine

import (
	"context"
	"log/slog"
)

// LoggingObserver is a simple observer that logs all events using structured logging
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a new logging observer
func NewLoggingObserver() *LoggingObserver {
	return &LoggingObserver{
		logger: slog.Default(),
	}
}

// OnEvent implements the Observer interface. Lifecycle events are verbose,
// so they go out at Debug; errors at Warn.
func (lo *LoggingObserver) OnEvent(event Event) {
	level := slog.LevelDebug
	if event.Type == EventError {
		level = slog.LevelWarn
	}
	lo.logger.Log(context.Background(), level, "command_lifecycle",
		"event", event.Type,
		"tx_id", event.TxID,
		"data", event.Data,
	)
}
