package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// SlogHandler adapts a namespace Logger to the slog.Handler interface so
// code written against log/slog can share the DEBUG gating.
type SlogHandler struct {
	logger *Logger
}

// NewSlogHandler wraps an existing Logger in a slog.Handler.
func NewSlogHandler(logger *Logger) *SlogHandler {
	return &SlogHandler{logger: logger}
}

// Enabled reports whether records at the given level are handled. All levels
// are handled whenever the underlying logger is enabled.
func (h *SlogHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return h.logger.Enabled()
}

// Handle formats the record as "message key=value ..." with a level prefix
// and forwards it to the underlying logger.
func (h *SlogHandler) Handle(_ context.Context, r slog.Record) error {
	if !h.logger.Enabled() {
		return nil
	}

	var msg strings.Builder
	msg.WriteString(r.Message)
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&msg, " %s=%s", a.Key, a.Value.String())
		return true
	})

	prefix := ""
	switch r.Level {
	case slog.LevelDebug:
		prefix = "[DEBUG] "
	case slog.LevelInfo:
		prefix = "[INFO] "
	case slog.LevelWarn:
		prefix = "[WARN] "
	case slog.LevelError:
		prefix = "[ERROR] "
	}

	h.logger.Print(prefix + msg.String())
	return nil
}

// WithAttrs returns the handler unchanged; attributes are not persisted.
func (h *SlogHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

// WithGroup returns the handler unchanged; groups are not persisted.
func (h *SlogHandler) WithGroup(_ string) slog.Handler {
	return h
}

// NewSlogLogger creates a slog.Logger backed by a namespace Logger.
func NewSlogLogger(namespace string) *slog.Logger {
	return slog.New(NewSlogHandler(New(namespace)))
}

// Discard returns a slog.Logger that drops all output.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
