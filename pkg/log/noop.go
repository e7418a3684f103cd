package log

import (
	"context"
	"io"
)

type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (*Noop) Debug(context.Context, string, ...interface{}) {}
func (*Noop) Info(context.Context, string, ...interface{})  {}
func (*Noop) Warn(context.Context, string, ...interface{})  {}
func (*Noop) Error(context.Context, string, ...interface{}) {}
func (*Noop) Fatal(context.Context, string, ...interface{}) {}
func (*Noop) Level() string                                 { return "" }
func (*Noop) Writer() io.Writer                             { return io.Discard }
