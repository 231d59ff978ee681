// Package logger provides logging implementations for consolidator runs.
//
// Loggers report inference, matching and listing events plus leveled free
// text messages. Implementations are thread-safe and support various output
// destinations (console, file, or several at once).
package logger

import (
	"io"
	"strings"
	"time"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// Logger receives run events.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)

	LogInference(summary InferenceSummary)
	LogMatches(template string, matched, total int)
	LogScan(dir, glob string, listed int)
}

// InferenceSummary describes one consolidation run.
type InferenceSummary struct {
	Names     int
	Templates int
	Wildcards int
	Strategy  string
	Duration  time.Duration
}

// Literals returns how many output entries carry no wildcard.
func (s InferenceSummary) Literals() int {
	return s.Templates - s.Wildcards
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))

	switch normalized {
	case "trace", "debug", "info", "warn", "error":
		return normalized
	}
	return "info"
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// levelEnabled reports whether messageLevel passes the configured level.
func levelEnabled(configured, messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(configured)
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func timestamp() string {
	return time.Now().Format("15:04:05")
}

// formatElapsed rounds run durations for display.
func formatElapsed(d time.Duration) string {
	switch {
	case d >= time.Second:
		return d.Round(time.Millisecond).String()
	case d >= time.Millisecond:
		return d.Round(time.Microsecond).String()
	default:
		return d.String()
	}
}

// MultiLogger fans every event out to several loggers.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger creates a MultiLogger. Nil loggers are skipped.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	m := &MultiLogger{}
	for _, l := range loggers {
		if l != nil {
			m.loggers = append(m.loggers, l)
		}
	}
	return m
}

func (m *MultiLogger) LogTrace(message string) {
	for _, l := range m.loggers {
		l.LogTrace(message)
	}
}

func (m *MultiLogger) LogDebug(message string) {
	for _, l := range m.loggers {
		l.LogDebug(message)
	}
}

func (m *MultiLogger) LogInfo(message string) {
	for _, l := range m.loggers {
		l.LogInfo(message)
	}
}

func (m *MultiLogger) LogWarn(message string) {
	for _, l := range m.loggers {
		l.LogWarn(message)
	}
}

func (m *MultiLogger) LogError(message string) {
	for _, l := range m.loggers {
		l.LogError(message)
	}
}

func (m *MultiLogger) LogInference(summary InferenceSummary) {
	for _, l := range m.loggers {
		l.LogInference(summary)
	}
}

func (m *MultiLogger) LogMatches(template string, matched, total int) {
	for _, l := range m.loggers {
		l.LogMatches(template, matched, total)
	}
}

func (m *MultiLogger) LogScan(dir, glob string, listed int) {
	for _, l := range m.loggers {
		l.LogScan(dir, glob, listed)
	}
}

// Close closes every wrapped logger that holds resources and returns the
// first error.
func (m *MultiLogger) Close() error {
	var first error
	for _, l := range m.loggers {
		if c, ok := l.(io.Closer); ok {
			if err := c.Close(); err != nil && first == nil {
				first = err
			}
		}
	}
	return first
}

// NoOpLogger is a Logger implementation that discards all log messages.
// Useful for testing or when logging is disabled.
type NoOpLogger struct{}

// NewNoOpLogger creates a NoOpLogger instance.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

func (n *NoOpLogger) LogTrace(message string)                        {}
func (n *NoOpLogger) LogDebug(message string)                        {}
func (n *NoOpLogger) LogInfo(message string)                         {}
func (n *NoOpLogger) LogWarn(message string)                         {}
func (n *NoOpLogger) LogError(message string)                        {}
func (n *NoOpLogger) LogInference(summary InferenceSummary)          {}
func (n *NoOpLogger) LogMatches(template string, matched, total int) {}
func (n *NoOpLogger) LogScan(dir, glob string, listed int)           {}
