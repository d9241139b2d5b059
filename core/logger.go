package core

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Logger is the structured logging interface the executor writes lifecycle
// events through. Implementations can bridge to any logging backend; all
// methods must be safe for concurrent use.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field is a structured key-value pair attached to a log line.
type Field struct {
	Key   string
	Value any
}

// F creates a Field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// taskFields builds the Field set every executor lifecycle log line carries:
// the task's identity, its outcome, and how long its body ran. Centralizing
// this here keeps the logfmt output consistent across the completion,
// failure, and cancel-at-shutdown call sites instead of each one
// hand-assembling the same triple.
func taskFields(id uuid.UUID, status string, duration time.Duration, extra ...Field) []Field {
	fields := append([]Field{
		F("task_id", id),
		F("status", status),
		F("duration", duration),
	}, extra...)
	return fields
}

// DefaultLogger writes logfmt-style lines (key=value, space separated) to
// the standard library's log package.
type DefaultLogger struct{}

// NewDefaultLogger creates a DefaultLogger.
func NewDefaultLogger() *DefaultLogger {
	return &DefaultLogger{}
}

func (l *DefaultLogger) Debug(msg string, fields ...Field) { l.emit("debug", msg, fields) }
func (l *DefaultLogger) Info(msg string, fields ...Field)  { l.emit("info", msg, fields) }
func (l *DefaultLogger) Warn(msg string, fields ...Field)  { l.emit("warn", msg, fields) }
func (l *DefaultLogger) Error(msg string, fields ...Field) { l.emit("error", msg, fields) }

func (l *DefaultLogger) emit(level, msg string, fields []Field) {
	var b strings.Builder
	b.WriteString("level=")
	b.WriteString(level)
	b.WriteString(" msg=")
	b.WriteString(strconv.Quote(msg))

	for _, f := range fields {
		b.WriteByte(' ')
		b.WriteString(f.Key)
		b.WriteByte('=')
		writeFieldValue(&b, f.Value)
	}

	log.Println(b.String())
}

func writeFieldValue(b *strings.Builder, v any) {
	switch s := v.(type) {
	case string:
		b.WriteString(strconv.Quote(s))
	case error:
		b.WriteString(strconv.Quote(s.Error()))
	case fmt.Stringer:
		b.WriteString(strconv.Quote(s.String()))
	default:
		b.WriteString(strconv.Quote(fmt.Sprint(v)))
	}
}

// NoOpLogger discards everything. It is the executor's default so the
// library stays silent unless a caller opts into logging.
type NoOpLogger struct{}

// NewNoOpLogger creates a NoOpLogger.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

func (l *NoOpLogger) Debug(msg string, fields ...Field) {}
func (l *NoOpLogger) Info(msg string, fields ...Field)  {}
func (l *NoOpLogger) Warn(msg string, fields ...Field)  {}
func (l *NoOpLogger) Error(msg string, fields ...Field) {}
