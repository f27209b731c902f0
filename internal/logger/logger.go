package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that appends to a file, creating its
// directory when needed. Extra writers receive the same lines.
func NewFileLogger(path string, level log.Level, extra ...io.Writer) (*Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		f.Close()
	}

	if len(extra) > 0 {
		return NewMultiLogger(level, append([]io.Writer{f}, extra...)...), cleanup, nil
	}
	return NewWithLevel(f, level), cleanup, nil
}

// NewMultiLogger creates a logger that writes to multiple outputs
func NewMultiLogger(level log.Level, writers ...io.Writer) *Logger {
	return NewWithLevel(io.MultiWriter(writers...), level)
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// NoteCreated logs a newly assembled interview note
func (l *Logger) NoteCreated(path string, questions int, unresolved int) {
	l.Info("interview note created",
		"path", path,
		"questions", questions,
		"unresolved_links", unresolved)
}

// AnswerPatched logs a candidate answer change
func (l *Logger) AnswerPatched(path, question, action string) {
	l.Info("candidate answer patched",
		"path", path,
		"question", question,
		"action", action)
}

// SectionSorted logs a section reorganized by difficulty
func (l *Logger) SectionSorted(path, section string, questions int) {
	l.Info("section sorted",
		"path", path,
		"section", section,
		"questions", questions)
}

// NotFound logs a lookup that matched nothing
func (l *Logger) NotFound(kind, name string) {
	l.Warn("not found",
		"kind", kind,
		"name", name)
}

// LinkUnresolved logs a template link with no matching note
func (l *Logger) LinkUnresolved(link string) {
	l.Warn("link unresolved",
		"link", link)
}

// ParseIssue logs a recoverable parse problem
func (l *Logger) ParseIssue(path string, err error) {
	l.Debug("parse issue",
		"path", path,
		"error", err)
}

// FileError logs an error for a specific file
func (l *Logger) FileError(file string, err error) {
	l.Error("file error",
		"file", file,
		"error", err)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(vaultDir, dialect string) {
	l.Debug("config loaded",
		"vault_dir", vaultDir,
		"dialect", dialect)
}

// NoteWritten logs a note written back to the vault
func (l *Logger) NoteWritten(path string, duration time.Duration) {
	l.Debug("note written",
		"path", path,
		"duration", duration.Round(time.Microsecond))
}
