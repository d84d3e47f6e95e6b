package logs

import (
	"context"
	"math/rand"
)

// Fields is a collection of key/value pairs attached
// to a log entry
type Fields interface {
	Add(key string, value interface{})
}

// Loggable is implemented by types that know how to
// describe themselves in a log entry
type Loggable interface {
	Log(fields Fields)
}

// MapFields is a map based implementation of Fields. It is
// also a Loggable, so it can be passed directly to a Logger
type MapFields map[string]interface{}

// Add is the implementation of Fields for MapFields
func (f MapFields) Add(key string, value interface{}) {
	f[key] = value
}

// Log is the implementation of Loggable for MapFields
func (f MapFields) Log(fields Fields) {
	for key, value := range f {
		fields.Add(key, value)
	}
}

// LoggableFunc allows a function to act as a Loggable
type LoggableFunc func(fields Fields)

// Log is the implementation of Loggable for LoggableFunc
func (f LoggableFunc) Log(fields Fields) {
	f(fields)
}

// Logger is the logging interface used across the project. Every
// entry carries the trace id found in the context, if any
type Logger interface {
	// Debug logs a message with debug level
	Debug(ctx context.Context, msg string, loggables ...Loggable)

	// Info logs a message with info level
	Info(ctx context.Context, msg string, loggables ...Loggable)

	// Warn logs a message with warn level
	Warn(ctx context.Context, msg string, loggables ...Loggable)

	// Error logs a message with error level
	Error(ctx context.Context, msg string, loggables ...Loggable)

	// ForClass returns a logger that adds the package and
	// class to every entry
	ForClass(pkg string, class string) Logger
}

type contextKey int

// ContextKeyTraceID is the key of the trace id in a context
const ContextKeyTraceID contextKey = iota

// WithTraceID returns a copy of the context carrying the trace id
func WithTraceID(ctx context.Context, traceID int64) context.Context {
	return context.WithValue(ctx, ContextKeyTraceID, traceID)
}

// GetTraceID returns the trace id carried by the context. It
// returns 0 if the context has none
func GetTraceID(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}

	traceID, ok := ctx.Value(ContextKeyTraceID).(int64)
	if !ok {
		return 0
	}

	return traceID
}

// NewTraceID generates a new positive trace id
func NewTraceID() int64 {
	return rand.Int63()
}
