package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

// consoleHandler prints bare messages, one per line. Debug records only pass
// when DEBUG is set.
type consoleHandler struct {
	writer io.Writer
	debug  bool
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level > slog.LevelDebug || h.debug
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	_, err := fmt.Fprintln(h.writer, record.Message)
	return err
}

func (h *consoleHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

func (h *consoleHandler) WithGroup(_ string) slog.Handler { return h }

// teeHandler sends each record to every handler that accepts its level
type teeHandler []slog.Handler

func (t teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (t teeHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, h := range t {
		if !h.Enabled(ctx, record.Level) {
			continue
		}
		if err := h.Handle(ctx, record.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(teeHandler, len(t))
	for i, h := range t {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	out := make(teeHandler, len(t))
	for i, h := range t {
		out[i] = h.WithGroup(name)
	}
	return out
}

// envInt reads a positive integer override, keeping def when unset or invalid
func envInt(name string, def int, allowZero bool) int {
	n, err := strconv.Atoi(os.Getenv(name))
	if err != nil || n < 0 || (n == 0 && !allowZero) {
		return def
	}
	return n
}

// newRotatingLog rotates the run log at 1MB, keeping two backups for 30 days
// unless SQUASHMERGE_LOG_MAX_SIZE, _MAX_BACKUPS or _MAX_AGE say otherwise.
func newRotatingLog(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    envInt("SQUASHMERGE_LOG_MAX_SIZE", 1, false),
		MaxBackups: envInt("SQUASHMERGE_LOG_MAX_BACKUPS", 2, true),
		MaxAge:     envInt("SQUASHMERGE_LOG_MAX_AGE", 30, false),
	}
}

// Splog prints progress for the operator and mirrors it, with debug detail,
// to a rotating log file.
type Splog struct {
	logger *slog.Logger
	writer io.Writer
	file   io.WriteCloser
}

// NewSplog creates a console-only splog on stdout
func NewSplog() *Splog {
	splog, _ := NewSplogWithConfig(os.Stdout, "")
	return splog
}

// NewSplogWithConfig creates a splog writing to writer. A non-empty
// logFilePath also records everything, debug included, to that file.
func NewSplogWithConfig(writer io.Writer, logFilePath string) (*Splog, error) {
	splog := &Splog{writer: writer}
	handlers := teeHandler{&consoleHandler{writer: writer, debug: os.Getenv("DEBUG") != ""}}

	if logFilePath != "" {
		if err := os.MkdirAll(filepath.Dir(logFilePath), 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		file := newRotatingLog(logFilePath)
		splog.file = file
		handlers = append(handlers, slog.NewTextHandler(file, &slog.HandlerOptions{
			Level: slog.LevelDebug,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.String(a.Key, a.Value.Time().Format("2006-01-02 15:04:05.000"))
				}
				return a
			},
		}))
	}

	splog.logger = slog.New(handlers)
	return splog, nil
}

// log formats the message only when there are args, so plain strings with a
// literal % pass through untouched.
func (s *Splog) log(level slog.Level, prefix, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	s.logger.Log(context.Background(), level, prefix+msg)
}

// Info writes a progress message
func (s *Splog) Info(format string, args ...interface{}) {
	s.log(slog.LevelInfo, "", format, args)
}

// Warn writes a warning
func (s *Splog) Warn(format string, args ...interface{}) {
	s.log(slog.LevelWarn, "⚠️  ", format, args)
}

// Error writes an error
func (s *Splog) Error(format string, args ...interface{}) {
	s.log(slog.LevelError, "❌ ", format, args)
}

// Tip writes a hint on what to do next
func (s *Splog) Tip(format string, args ...interface{}) {
	s.log(slog.LevelInfo, "💡 ", format, args)
}

// Debug writes detail that reaches the console only when DEBUG is set
func (s *Splog) Debug(format string, args ...interface{}) {
	s.log(slog.LevelDebug, "", format, args)
}

// Newline writes an empty line to the console only
func (s *Splog) Newline() {
	_, _ = fmt.Fprintln(s.writer)
}

// Close closes the log file, if any
func (s *Splog) Close() error {
	if s.file != nil {
		return s.file.Close()
	}
	return nil
}
