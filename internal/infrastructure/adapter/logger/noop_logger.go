package logger

import (
	"github.com/amirhossein-jamali/cardpay-admin/internal/domain/port/core"
)

// NoopLogger discards everything. Used in tests and when logging is disabled.
type NoopLogger struct {
	level core.LogLevel
}

// NewNoopLogger creates a new no-op logger
func NewNoopLogger() core.Logger {
	return &NoopLogger{level: core.LogLevelInfo}
}

func (l *NoopLogger) SetLevel(level core.LogLevel) { l.level = level }
func (l *NoopLogger) GetLevel() core.LogLevel { return l.level }
func (l *NoopLogger) Debug(_ string, _ map[string]any) {}
func (l *NoopLogger) Info(_ string, _ map[string]any) {}
func (l *NoopLogger) Warn(_ string, _ map[string]any) {}
func (l *NoopLogger) Error(_ string, _ map[string]any) {}
func (l *NoopLogger) Flush() error { return nil }
