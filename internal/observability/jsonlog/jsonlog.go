package jsonlog

import (
	"encoding/json"
	"io"
	"log"
	"strings"
	"time"
)

// Logger writes one JSON object per line: ts, level, msg, then fields.
type Logger struct {
	base   *log.Logger
	fields map[string]any
	now    func() time.Time
}

func New(w io.Writer) *Logger {
	return &Logger{
		base: log.New(w, "", 0), // no prefix; we emit JSON ourselves
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard)
}

// With returns a child logger that adds fields to every line.
// Fields passed to Info/Error win on key collisions.
func (l *Logger) With(fields map[string]any) *Logger {
	merged := make(map[string]any, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &Logger{base: l.base, fields: merged, now: l.now}
}

func (l *Logger) Info(msg string, fields map[string]any) {
	l.emit("INFO", msg, fields)
}

func (l *Logger) Error(msg string, fields map[string]any) {
	l.emit("ERROR", msg, fields)
}

// StdLogger adapts l for APIs that want a *log.Logger, such as
// http.Server.ErrorLog. Each line becomes an ERROR entry with the given msg.
func (l *Logger) StdLogger(msg string) *log.Logger {
	return log.New(stdWriter{l: l, msg: msg}, "", 0)
}

type stdWriter struct {
	l   *Logger
	msg string
}

func (w stdWriter) Write(p []byte) (int, error) {
	w.l.Error(w.msg, map[string]any{"detail": strings.TrimSpace(string(p))})
	return len(p), nil
}

func (l *Logger) emit(level, msg string, fields map[string]any) {
	m := make(map[string]any, 3+len(l.fields)+len(fields))
	for k, v := range l.fields {
		m[k] = v
	}
	for k, v := range fields {
		m[k] = v
	}
	m["ts"] = l.now().Format(time.RFC3339Nano)
	m["level"] = level
	m["msg"] = msg

	b, err := json.Marshal(m)
	if err != nil {
		b, _ = json.Marshal(map[string]any{
			"ts":    m["ts"],
			"level": "ERROR",
			"msg":   "jsonlog: marshal failed",
			"error": err.Error(),
		})
	}
	l.base.Print(string(b))
}
