// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/streak/internal/core/ports"
	"golang.org/x/term"
)

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error.
type messager interface {
	Message() string
}

// metadataer describes an error carrying structured key/value context, as zerr.Error does.
type metadataer interface {
	Metadata() map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	pretty   bool
	output   io.Writer
}

// New creates a new Logger writing to stderr. Records are pretty-printed when
// stderr is a terminal and logfmt text otherwise.
func New() *Logger {
	l := &Logger{pretty: term.IsTerminal(int(os.Stderr.Fd()))}
	l.SetOutput(os.Stderr)
	return l
}

// NewWithWriter creates a new Logger writing text records to w.
func NewWithWriter(w io.Writer) *Logger {
	l := &Logger{}
	l.SetOutput(w)
	return l
}

var _ ports.Logger = (*Logger)(nil)

// SetOutput updates the logger's output destination.
// It preserves the current JSON mode setting. If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(newHandler(w, l.jsonMode, l.pretty))
}

// SetJSON switches between JSON and text records.
// The output destination is preserved from SetOutput calls.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.logger = slog.New(newHandler(l.output, enable, l.pretty))
}

// SetPretty switches text records to the PrettyHandler. JSON mode takes precedence.
func (l *Logger) SetPretty(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pretty = enable
	l.logger = slog.New(newHandler(l.output, l.jsonMode, enable))
}

func newHandler(w io.Writer, jsonMode, pretty bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	switch {
	case jsonMode:
		return slog.NewJSONHandler(w, opts)
	case pretty:
		return NewPrettyHandler(w, opts)
	default:
		return slog.NewTextHandler(w, opts)
	}
}

// Info logs an informational message with optional key/value pairs.
func (l *Logger) Info(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg, args...)
}

// Warn logs a warning message with optional key/value pairs.
func (l *Logger) Warn(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg, args...)
}

// Error logs err. zerr metadata found anywhere in the chain is attached as attributes.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	attrs := metadataAttrs(err)
	if l.jsonMode {
		l.logger.Error("operation failed", append([]any{"error", err.Error()}, attrs...)...)
		return
	}
	l.logger.Error(formatChain(err), attrs...)
}

// formatChain renders the outermost message followed by its causes.
func formatChain(err error) string {
	var messages []string
	current := err

	for current != nil {
		if m, ok := current.(messager); ok {
			if msg := m.Message(); msg != "" {
				messages = append(messages, msg)
			}
			current = errors.Unwrap(current)
		} else {
			messages = append(messages, current.Error())
			break
		}
	}

	var b strings.Builder
	for i, msg := range messages {
		// errors.Join separates its members with newlines
		msg = strings.ReplaceAll(msg, "\n", "; ")
		if i == 0 {
			b.WriteString(msg)
			continue
		}
		b.WriteString(": ")
		b.WriteString(msg)
	}
	return b.String()
}

// metadataAttrs collects zerr metadata along the chain. Outer layers win on key clashes.
func metadataAttrs(err error) []any {
	merged := make(map[string]any)
	for current := err; current != nil; current = errors.Unwrap(current) {
		m, ok := current.(metadataer)
		if !ok {
			continue
		}
		for k, v := range m.Metadata() {
			if _, exists := merged[k]; !exists {
				merged[k] = v
			}
		}
	}

	attrs := make([]any, 0, 2*len(merged))
	for _, k := range slices.Sorted(maps.Keys(merged)) {
		attrs = append(attrs, k, merged[k])
	}
	return attrs
}
