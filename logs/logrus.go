package logs

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// LogrusLoggerProperties are the properties used to create
// a new logrus backed Logger
type LogrusLoggerProperties struct {
	// Level is the minimum level of the entries that are written
	Level logrus.Level

	// Output is where entries are written. Defaults to os.Stderr
	Output io.Writer

	// Formatter of the entries. Defaults to logrus.TextFormatter
	Formatter logrus.Formatter
}

type logrusFields logrus.Fields

func (f logrusFields) Add(key string, value interface{}) {
	f[key] = value
}

type logrusLogger struct {
	logger *logrus.Logger
	fields logrus.Fields
}

// NewLogrus creates a new Logger that uses logrus to write entries
func NewLogrus(props LogrusLoggerProperties) Logger {
	logger := logrus.New()
	logger.SetLevel(props.Level)

	if props.Output != nil {
		logger.SetOutput(props.Output)
	} else {
		logger.SetOutput(os.Stderr)
	}

	if props.Formatter != nil {
		logger.SetFormatter(props.Formatter)
	}

	return NewLogrusFromLogger(logger)
}

// NewLogrusFromLogger wraps an already configured logrus logger
func NewLogrusFromLogger(logger *logrus.Logger) Logger {
	return &logrusLogger{logger: logger, fields: logrus.Fields{}}
}

func (l *logrusLogger) entry(ctx context.Context, loggables []Loggable) *logrus.Entry {
	fields := make(logrusFields, len(l.fields)+1)
	for key, value := range l.fields {
		fields[key] = value
	}

	if traceID := GetTraceID(ctx); traceID != 0 {
		fields["trace_id"] = traceID
	}

	for _, loggable := range loggables {
		if loggable != nil {
			loggable.Log(fields)
		}
	}

	return l.logger.WithFields(logrus.Fields(fields))
}

func (l *logrusLogger) Debug(ctx context.Context, msg string, loggables ...Loggable) {
	l.entry(ctx, loggables).Debug(msg)
}

func (l *logrusLogger) Info(ctx context.Context, msg string, loggables ...Loggable) {
	l.entry(ctx, loggables).Info(msg)
}

func (l *logrusLogger) Warn(ctx context.Context, msg string, loggables ...Loggable) {
	l.entry(ctx, loggables).Warn(msg)
}

func (l *logrusLogger) Error(ctx context.Context, msg string, loggables ...Loggable) {
	l.entry(ctx, loggables).Error(msg)
}

func (l *logrusLogger) ForClass(pkg string, class string) Logger {
	fields := make(logrus.Fields, len(l.fields)+2)
	for key, value := range l.fields {
		fields[key] = value
	}
	fields["package"] = pkg
	fields["class"] = class

	return &logrusLogger{logger: l.logger, fields: fields}
}

// NewFormatter returns the logrus formatter for the format name,
// which can be either "text" or "json"
func NewFormatter(format string) (logrus.Formatter, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return &logrus.TextFormatter{FullTimestamp: true}, nil
	case "json":
		return &logrus.JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
