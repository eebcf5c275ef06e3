// Package logger emits structured JSON log lines. Every surfaced failure in
// the terminal is logged through it before being shown to the user.
package logger

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

// Logger writes one JSON object per event.
type Logger struct {
	component string
	mu        sync.Mutex
	out       io.Writer
}

// New creates a logger for the named component, writing to stderr.
func New(component string) *Logger {
	return &Logger{component: component, out: os.Stderr}
}

// NewWithWriter creates a logger writing to w; used by tests.
func NewWithWriter(component string, w io.Writer) *Logger {
	return &Logger{component: component, out: w}
}

func (l *Logger) log(level, action string, fields map[string]any, err error) {
	entry := map[string]any{
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		"level":     level,
		"component": l.component,
		"action":    action,
	}
	for k, v := range fields {
		entry[k] = v
	}
	if err != nil {
		entry["error"] = err.Error()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_ = json.NewEncoder(l.out).Encode(entry)
}

// Info logs an informational event.
func (l *Logger) Info(action string, fields map[string]any) {
	l.log("INFO", action, fields, nil)
}

// Warn logs a recoverable problem.
func (l *Logger) Warn(action string, fields map[string]any) {
	l.log("WARN", action, fields, nil)
}

// Error logs a failure together with its error.
func (l *Logger) Error(action string, err error, fields map[string]any) {
	l.log("ERROR", action, fields, err)
}
