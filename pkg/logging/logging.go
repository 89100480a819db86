// Package logging provides a small structured JSON logger. The algebra
// packages never log; the evaluator exposes an optional hook that uses this
// package for debugging and demos.
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Level represents a log level.
type Level int

const (
	// DebugLevel logs are voluminous and usually disabled.
	DebugLevel Level = iota
	// InfoLevel is the default priority.
	InfoLevel
	// WarnLevel logs need attention but not individual review.
	WarnLevel
	// ErrorLevel logs are high priority.
	ErrorLevel
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Field is a structured key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value any
}

// F builds a field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Logger writes JSON log entries to a writer. It is safe for concurrent use.
type Logger struct {
	mu     sync.Mutex
	writer io.Writer
	level  Level
	fields []Field
}

// New creates a logger writing to w at the given minimum level.
func New(w io.Writer, level Level) *Logger {
	return &Logger{writer: w, level: level}
}

// Default returns a logger writing to stdout at INFO level.
func Default() *Logger {
	return New(os.Stdout, InfoLevel)
}

// With returns a logger that attaches the given fields to every entry.
func (l *Logger) With(fields ...Field) *Logger {
	combined := make([]Field, 0, len(l.fields)+len(fields))
	combined = append(combined, l.fields...)
	combined = append(combined, fields...)
	return &Logger{writer: l.writer, level: l.level, fields: combined}
}

type entry struct {
	Time    string         `json:"time"`
	Level   string         `json:"level"`
	Message string         `json:"msg"`
	Fields  map[string]any `json:"fields,omitempty"`
}

func (l *Logger) log(level Level, msg string, fields []Field) {
	if level < l.level {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	e := entry{
		Time:    time.Now().Format(time.RFC3339Nano),
		Level:   level.String(),
		Message: msg,
	}
	if len(l.fields)+len(fields) > 0 {
		e.Fields = make(map[string]any, len(l.fields)+len(fields))
		for _, f := range l.fields {
			e.Fields[f.Key] = f.Value
		}
		for _, f := range fields {
			e.Fields[f.Key] = f.Value
		}
	}
	data, err := json.Marshal(e)
	if err != nil {
		fmt.Fprintf(l.writer, "[ERROR] marshal log entry: %v\n", err)
		return
	}
	l.writer.Write(data)
	l.writer.Write([]byte("\n"))
}

// Debug logs at debug level.
func (l *Logger) Debug(msg string, fields ...Field) { l.log(DebugLevel, msg, fields) }

// Info logs at info level.
func (l *Logger) Info(msg string, fields ...Field) { l.log(InfoLevel, msg, fields) }

// Warn logs at warn level.
func (l *Logger) Warn(msg string, fields ...Field) { l.log(WarnLevel, msg, fields) }

// Error logs at error level.
func (l *Logger) Error(msg string, fields ...Field) { l.log(ErrorLevel, msg, fields) }
