package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
)

// Logger emits structured JSON log lines tagged with the service name,
// hostname and the POS session the action belongs to.
type Logger struct {
	service  string
	hostname string
	handler  *slog.Logger
}

// New builds a logger for the given service mode writing to stderr,
// keeping stdout free for the interactive prompt loop.
func New(service string, level slog.Level) *Logger {
	return NewWithWriter(service, level, os.Stderr)
}

// NewWithWriter is New with an explicit sink, used by tests.
func NewWithWriter(service string, level slog.Level, w io.Writer) *Logger {
	hostname, _ := os.Hostname()

	handler := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))

	return &Logger{
		service:  service,
		hostname: hostname,
		handler:  handler,
	}
}

// GenerateSessionID returns a fresh ID to correlate one customer
// session's log lines.
func GenerateSessionID() string {
	return uuid.NewString()
}

func (l *Logger) log(level slog.Level, action, sessionID, message string, extra ...slog.Attr) {
	attrs := append([]slog.Attr{
		slog.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		slog.String("service", l.service),
		slog.String("hostname", l.hostname),
		slog.String("action", action),
		slog.String("session_id", sessionID),
	}, extra...)

	l.handler.LogAttrs(context.Background(), level, message, attrs...)
}

func (l *Logger) Info(action, sessionID, message string) {
	l.log(slog.LevelInfo, action, sessionID, message)
}

func (l *Logger) Debug(action, sessionID, message string) {
	l.log(slog.LevelDebug, action, sessionID, message)
}

func (l *Logger) Error(action, sessionID, message string, err error) {
	l.log(slog.LevelError, action, sessionID, message, slog.Group("error",
		slog.String("msg", err.Error()),
	))
}
