// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/pkghash/internal/core/domain"
)

// messager is implemented by zerr errors, which report their own message without the chain.
type messager interface {
	Message() string
}

// metadater is implemented by zerr errors carrying key/value context.
type metadater interface {
	Metadata() map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	level    slog.LevelVar
	jsonMode bool
	output   io.Writer
}

// New creates a new Logger writing pretty lines to stderr at info level.
func New() *Logger {
	l := &Logger{output: os.Stderr}
	l.level.Set(slog.LevelInfo)
	l.rebuild()
	return l
}

// rebuild replaces the slog handler; callers hold mu.
func (l *Logger) rebuild() {
	w := l.output
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: &l.level}
	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = NewPrettyHandler(w, opts)
	}
	l.logger = slog.New(handler)
}

// SetOutput updates the logger's output destination, keeping the current format.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// SetLevel sets the minimum level that is written.
func (l *Logger) SetLevel(level domain.LogLevel) {
	l.level.Set(slog.Level(level))
}

// Configure applies the logging settings of cfg.
func (l *Logger) Configure(cfg *domain.Config) error {
	level, err := domain.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	l.SetLevel(level)
	l.SetJSON(cfg.LogFormat == domain.LogFormatJSON)
	return nil
}

// Debug logs a diagnostic message.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error, rendering zerr chains one layer per line.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

// errorEntry is one layer of an error chain.
type errorEntry struct {
	message  string
	metadata map[string]any
}

// collectErrorEntries walks the chain of zerr layers down to the first standard error.
// Layers without a message only contribute their metadata to the next layer.
func collectErrorEntries(err error) []errorEntry {
	var (
		entries []errorEntry
		pending map[string]any
	)

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, errorEntry{message: current.Error(), metadata: pending})
			break
		}

		var meta map[string]any
		if md, ok := current.(metadater); ok {
			meta = md.Metadata()
		}
		if len(pending) > 0 {
			if meta == nil {
				meta = make(map[string]any)
			}
			for k, v := range pending {
				if _, exists := meta[k]; !exists {
					meta[k] = v
				}
			}
		}

		if m.Message() == "" {
			pending = meta
		} else {
			entries = append(entries, errorEntry{message: m.Message(), metadata: meta})
			pending = nil
		}
		current = errors.Unwrap(current)
	}

	if len(pending) > 0 && len(entries) > 0 {
		last := &entries[len(entries)-1]
		if last.metadata == nil {
			last.metadata = make(map[string]any)
		}
		for k, v := range pending {
			last.metadata[k] = v
		}
	}
	return entries
}

// formatErrorEntries renders entries as an "Error:" line followed by "Caused by:" arrows.
func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.message, "\n")

		prefix, indent := "    → ", "      "
		if i == 0 {
			prefix, indent = "Error: ", "       "
		} else if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}

		lines = append(lines, prefix+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range slices.Sorted(maps.Keys(entry.metadata)) {
			lines = append(lines, fmt.Sprintf("%s%s=%v", indent, key, entry.metadata[key]))
		}
	}

	return strings.Join(lines, "\n")
}
