// Package log provides structured logging for stylebook.
// It writes category-tagged entries to a file and is only enabled via the
// --debug flag or STYLEBOOK_DEBUG env, since stdout belongs to the TUI.
package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/stylebook/internal/pubsub"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l Level) String() string {
	if l < LevelDebug || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// Category groups related log messages.
type Category string

const (
	CatCatalog   Category = "catalog"   // catalog tables and catalog files
	CatConfig    Category = "config"    // config file and flags
	CatUI        Category = "ui"        // panes, overlays, toasts
	CatSelection Category = "selection" // selection state changes
	CatClipboard Category = "clipboard" // clipboard writes
	CatCache     Category = "cache"     // preview cache
)

const timeLayout = "2006-01-02T15:04:05"

// Logger writes entries to an io.Writer and republishes them on a broker
// so the debug overlay can follow along.
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	enabled  bool
	minLevel Level
	broker   *pubsub.Broker[string]
}

func newLogger(out io.Writer) *Logger {
	return &Logger{
		out:      out,
		enabled:  true,
		minLevel: LevelDebug,
		broker:   pubsub.NewBroker[string](),
	}
}

// defaultLogger is nil until --debug turns logging on; every call is a
// no-op before that.
var defaultLogger *Logger

// InitWithTeaLog opens path through tea.LogToFile and logs to it.
// The returned func closes the file.
func InitWithTeaLog(path string, prefix string) (func(), error) {
	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	defaultLogger = newLogger(f)
	return func() { _ = f.Close() }, nil
}

// InitWriter routes log output to w. Intended for tests.
func InitWriter(w io.Writer) {
	defaultLogger = newLogger(w)
}

// SetEnabled toggles logging on/off.
func SetEnabled(enabled bool) {
	if l := defaultLogger; l != nil {
		l.mu.Lock()
		l.enabled = enabled
		l.mu.Unlock()
	}
}

// SetMinLevel drops entries below level.
func SetMinLevel(level Level) {
	if l := defaultLogger; l != nil {
		l.mu.Lock()
		l.minLevel = level
		l.mu.Unlock()
	}
}

// Debug logs at debug level. Fields are key, value pairs.
func Debug(cat Category, msg string, fields ...any) { write(LevelDebug, cat, msg, fields) }

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) { write(LevelInfo, cat, msg, fields) }

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) { write(LevelWarn, cat, msg, fields) }

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) { write(LevelError, cat, msg, fields) }

// ErrorErr logs at error level with err appended as the "error" field.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	errText := "<nil>"
	if err != nil {
		errText = err.Error()
	}
	write(LevelError, cat, msg, append(fields, "error", errText))
}

func write(level Level, cat Category, msg string, fields []any) {
	l := defaultLogger
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled || level < l.minLevel {
		return
	}

	entry := formatEntry(time.Now(), level, cat, msg, fields)
	if l.out != nil {
		_, _ = io.WriteString(l.out, entry)
	}
	if l.broker != nil {
		l.broker.Publish(pubsub.LogWritten, entry)
	}
}

// formatEntry renders one line:
//
//	2025-12-06T10:45:00 [INFO] [selection] Style selected id=swiss
//
// A trailing key without a value is written as key=<missing>.
func formatEntry(at time.Time, level Level, cat Category, msg string, fields []any) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] [%s] %s", at.Format(timeLayout), level, cat, msg)
	for i := 0; i < len(fields); i += 2 {
		if i+1 < len(fields) {
			fmt.Fprintf(&b, " %v=%v", fields[i], fields[i+1])
		} else {
			fmt.Fprintf(&b, " %v=<missing>", fields[i])
		}
	}
	b.WriteByte('\n')
	return b.String()
}

// LogEvent is a pubsub event containing a log entry.
type LogEvent = pubsub.Event[string]

// LogListener wraps a continuous listener for log events.
type LogListener = pubsub.ContinuousListener[string]

// NewListener follows log entries until ctx is cancelled. It returns nil
// while logging is off.
func NewListener(ctx context.Context) *LogListener {
	if defaultLogger == nil || defaultLogger.broker == nil {
		return nil
	}
	return pubsub.NewContinuousListener(ctx, defaultLogger.broker)
}
