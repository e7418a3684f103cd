package log

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"

	saltLog "github.com/goto/salt/log"
	expmaps "golang.org/x/exp/maps"
)

// Logger writes leveled messages followed by alternating key/value pairs.
// Keys are strings, values anything printable. Values found in ctx are
// appended by implementations that know how to read them.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
	Fatal(ctx context.Context, msg string, args ...interface{})

	// Level is the lowest level that gets written.
	Level() string
	Writer() io.Writer
}

type LoggerOption func(*CtxLogger)
type metadataContextKey struct{}

// ContextKey is the type of context keys whose string values are copied into
// every log line.
type ContextKey string

type CtxLogger struct {
	log          saltLog.Logger
	keys         []ContextKey
	withMetadata bool
}

// NewCtxLoggerWithSaltLogger wraps log so that values found in the request
// context end up in every line.
func NewCtxLoggerWithSaltLogger(log saltLog.Logger, ctxKeys []ContextKey, opts ...LoggerOption) *CtxLogger {
	ctxLogger := &CtxLogger{log: log, keys: ctxKeys}
	for _, o := range opts {
		o(ctxLogger)
	}

	return ctxLogger
}

// NewCtxLogger is NewCtxLoggerWithSaltLogger over a logrus logger.
func NewCtxLogger(logLevel string, ctxKeys []ContextKey, opts ...LoggerOption) *CtxLogger {
	return NewCtxLoggerWithSaltLogger(saltLog.NewLogrus(saltLog.LogrusWithLevel(logLevel)), ctxKeys, opts...)
}

func (l *CtxLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.log.Debug(msg, l.addCtxToArgs(ctx, args)...)
}

func (l *CtxLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.log.Info(msg, l.addCtxToArgs(ctx, args)...)
}

func (l *CtxLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.log.Warn(msg, l.addCtxToArgs(ctx, args)...)
}

func (l *CtxLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.log.Error(msg, l.addCtxToArgs(ctx, args)...)
}

func (l *CtxLogger) Fatal(ctx context.Context, msg string, args ...interface{}) {
	l.log.Fatal(msg, l.addCtxToArgs(ctx, args)...)
}

func (l *CtxLogger) Level() string {
	return l.log.Level()
}

func (l *CtxLogger) Writer() io.Writer {
	return l.log.Writer()
}

// addCtxToArgs appends the configured context keys and, when enabled, the
// request metadata sorted by key.
func (l *CtxLogger) addCtxToArgs(ctx context.Context, args []interface{}) []interface{} {
	if ctx == nil {
		return args
	}

	for _, key := range l.keys {
		if val, ok := ctx.Value(key).(string); ok {
			args = append(args, string(key), val)
		}
	}
	if !l.withMetadata {
		return args
	}

	md, _ := ctx.Value(metadataContextKey{}).(map[string]interface{})
	keys := expmaps.Keys(md)
	slices.Sort(keys)
	for _, k := range keys {
		args = append(args, k, md[k])
	}
	return args
}

// WithMetadata attaches key/values to ctx that loggers created with
// WithContextMetadata() append to every log line.
func WithMetadata(ctx context.Context, md map[string]interface{}) (context.Context, error) {
	merged := make(map[string]interface{}, len(md))
	if existing := ctx.Value(metadataContextKey{}); existing != nil {
		existingMd, ok := existing.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("unexpected log metadata type %T", existing)
		}
		maps.Copy(merged, existingMd)
	}
	maps.Copy(merged, md)

	return context.WithValue(ctx, metadataContextKey{}, merged), nil
}

func WithContextMetadata() LoggerOption {
	return func(l *CtxLogger) {
		l.withMetadata = true
	}
}
