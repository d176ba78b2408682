// Package log provides structured logging for regdesk.
// Entries carry a level, category and timestamp, are appended to a debug
// log file, kept in an in-memory ring buffer for the in-app log viewer, and
// published to subscribers. Logging is off unless --debug or REGDESK_DEBUG
// enables it.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/regdesk/internal/pubsub"
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
	if l < LevelDebug || l > LevelError {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// Category groups related log messages.
type Category string

const (
	CatConfig Category = "config" // Configuration loading, validation and reloads
	CatUI     Category = "ui"     // UI component updates
	CatMode   Category = "mode"   // Manager view events
	CatStore  Category = "store"  // Collection replacements
	CatTrace  Category = "trace"  // Tracing provider lifecycle
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{CatConfig, CatUI, CatMode, CatStore, CatTrace}
}

// DefaultBufferSize is the number of recent entries kept in memory.
const DefaultBufferSize = 500

// Entry is one log record.
type Entry struct {
	Time     time.Time
	Level    Level
	Category Category
	Message  string
	// Fields is the rendered key=value tail, empty when there are none.
	Fields string
}

// String renders the entry as one line without a trailing newline:
//
//	2026-03-07T10:45:00 [INFO] [store] replaced collection=courses size=4
func (e Entry) String() string {
	line := fmt.Sprintf("%s [%s] [%s] %s", e.Time.Format("2006-01-02T15:04:05"), e.Level, e.Category, e.Message)
	if e.Fields != "" {
		line += " " + e.Fields
	}
	return line
}

func renderFields(fields []any) string {
	var parts []string
	for i := 0; i+1 < len(fields); i += 2 {
		parts = append(parts, fmt.Sprintf("%v=%v", fields[i], fields[i+1]))
	}
	if len(fields)%2 != 0 {
		parts = append(parts, fmt.Sprintf("%v=<missing>", fields[len(fields)-1]))
	}
	return strings.Join(parts, " ")
}

// Logger writes entries and remembers the most recent ones.
type Logger struct {
	mu       sync.Mutex
	writer   io.Writer
	enabled  bool
	minLevel Level
	broker   *pubsub.Broker[Entry]

	ring  []Entry
	start int
	count int
}

var defaultLogger *Logger

// Init opens path for appending and installs the global logger, keeping the
// last bufferSize entries in memory. The returned function closes the file.
func Init(path string, bufferSize int) (func(), error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600) //nolint:gosec // G304: path is the user's debug log path
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	defaultLogger = newLogger(f, bufferSize)
	return func() { _ = f.Close() }, nil
}

// InitWithTeaLog uses tea.LogToFile for initialization so that Bubble Tea's
// own diagnostics land in the same file.
func InitWithTeaLog(path, prefix string, bufferSize int) (func(), error) {
	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	defaultLogger = newLogger(f, bufferSize)
	return func() { _ = f.Close() }, nil
}

// InitWriter installs a logger that writes to w. Used by tests.
func InitWriter(w io.Writer, bufferSize int) {
	defaultLogger = newLogger(w, bufferSize)
}

func newLogger(w io.Writer, bufferSize int) *Logger {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	return &Logger{
		writer:   w,
		enabled:  true,
		minLevel: LevelDebug,
		broker:   pubsub.NewBroker[Entry](),
		ring:     make([]Entry, bufferSize),
	}
}

func withLogger(fn func(l *Logger)) {
	if l := defaultLogger; l != nil {
		l.mu.Lock()
		defer l.mu.Unlock()
		fn(l)
	}
}

// SetEnabled toggles logging on/off.
func SetEnabled(enabled bool) {
	withLogger(func(l *Logger) { l.enabled = enabled })
}

// SetMinLevel sets the minimum log level.
func SetMinLevel(level Level) {
	withLogger(func(l *Logger) { l.minLevel = level })
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	write(LevelDebug, cat, msg, fields)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	write(LevelInfo, cat, msg, fields)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	write(LevelWarn, cat, msg, fields)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	write(LevelError, cat, msg, fields)
}

// ErrorErr logs at error level with err appended as the "error" field.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	text := "<nil>"
	if err != nil {
		text = err.Error()
	}
	write(LevelError, cat, msg, append(fields, "error", text))
}

func write(level Level, cat Category, msg string, fields []any) {
	withLogger(func(l *Logger) {
		if !l.enabled || level < l.minLevel {
			return
		}
		entry := Entry{Time: time.Now(), Level: level, Category: cat, Message: msg, Fields: renderFields(fields)}
		if l.writer != nil {
			_, _ = io.WriteString(l.writer, entry.String()+"\n")
		}
		l.push(entry)
		l.broker.Publish(pubsub.LoggedEvent, entry)
	})
}

// push appends to the ring buffer, overwriting the oldest entry when full.
func (l *Logger) push(entry Entry) {
	size := len(l.ring)
	if l.count < size {
		l.ring[(l.start+l.count)%size] = entry
		l.count++
		return
	}
	l.ring[l.start] = entry
	l.start = (l.start + 1) % size
}

// Recent returns up to n of the most recent entries, oldest first.
func Recent(n int) []Entry {
	var out []Entry
	withLogger(func(l *Logger) {
		n = min(n, l.count)
		for i := l.count - n; i < l.count; i++ {
			out = append(out, l.ring[(l.start+i)%len(l.ring)])
		}
	})
	return out
}

// ClearBuffer empties the in-memory buffer. The log file is untouched.
func ClearBuffer() {
	withLogger(func(l *Logger) {
		l.start = 0
		l.count = 0
	})
}

// LogEvent is delivered to the app for each new entry.
type LogEvent = pubsub.Event[Entry]

// LogListener delivers LogEvents to the Bubble Tea loop.
type LogListener = pubsub.Listener[Entry]

// NewListener subscribes to new entries until ctx is cancelled. It returns
// nil when no logger is installed.
func NewListener(ctx context.Context) *LogListener {
	if defaultLogger == nil {
		return nil
	}
	return pubsub.Listen(ctx, defaultLogger.broker)
}
