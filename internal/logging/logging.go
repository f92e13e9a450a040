// Package logging configures the process-wide logrus logger and carries
// request IDs through contexts.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// RequestIDField is the log field holding the request ID.
const RequestIDField = "request_id"

// L is the shared logger. Diagnostics go to stderr so answers on stdout
// stay pipeable.
var L = newLogger(os.Stderr)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, PadLevelText: true})
	return l
}

// Setup sets the level ("debug", "info", "warn", "error") and format of L.
func Setup(level string, json bool) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	L.SetLevel(lvl)
	if json {
		L.SetFormatter(&logrus.JSONFormatter{})
	} else {
		L.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, PadLevelText: true})
	}
	return nil
}

// SetOutput redirects L, mainly for tests.
func SetOutput(w io.Writer) {
	L.SetOutput(w)
}

// NewRequestID returns a fresh random request ID.
func NewRequestID() string {
	return uuid.New().String()
}

// WithRequestID stores id in ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestID returns the request ID in ctx, or "".
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// FromContext returns an entry tagged with the request ID in ctx, if any.
func FromContext(ctx context.Context) *logrus.Entry {
	e := logrus.NewEntry(L)
	if id := RequestID(ctx); id != "" {
		e = e.WithField(RequestIDField, id)
	}
	return e
}
