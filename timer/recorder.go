package timer

import (
	"context"
	"log/slog"

	"github.com/rs/zerolog"

	"github.com/ghettovoice/mainloop/log"
)

// ErrorRecorder records failures of scheduled callbacks.
// It is invoked on the loop dispatch goroutine and should not block.
type ErrorRecorder interface {
	RecordFailure(ctx context.Context, f *Failure)
}

// RecorderFunc is a function adapter for [ErrorRecorder].
type RecorderFunc func(ctx context.Context, f *Failure)

// RecordFailure calls fn(ctx, f).
func (fn RecorderFunc) RecordFailure(ctx context.Context, f *Failure) { fn(ctx, f) }

// SlogRecorder records failures as ERROR records of a [slog.Logger].
type SlogRecorder struct {
	log *slog.Logger
}

// NewSlogRecorder creates a new [SlogRecorder].
// If logger is nil, the [log.Default] is used.
func NewSlogRecorder(logger *slog.Logger) *SlogRecorder {
	if logger == nil {
		logger = log.Default()
	}
	return &SlogRecorder{log: logger}
}

// RecordFailure logs f with the message [Failure.Message] and a "failure" group attribute.
func (r *SlogRecorder) RecordFailure(ctx context.Context, f *Failure) {
	r.log.LogAttrs(ctx, slog.LevelError, f.Message, slog.Any("failure", f))
}

// ZerologRecorder records failures as error events of a [zerolog.Logger].
type ZerologRecorder struct {
	log zerolog.Logger
}

// NewZerologRecorder creates a new [ZerologRecorder].
func NewZerologRecorder(logger zerolog.Logger) *ZerologRecorder {
	return &ZerologRecorder{log: logger}
}

// RecordFailure writes f as a single error event.
func (r *ZerologRecorder) RecordFailure(ctx context.Context, f *Failure) {
	ev := r.log.Error().Ctx(ctx)
	if f.Err != nil {
		ev = ev.Str(zerolog.ErrorFieldName, f.Err.Error())
	}
	ev = ev.Str("handle", f.Handle.String()).
		Dur("interval", f.Interval).
		Uint64("invocation", f.Invocation)
	if !f.Args.IsZero() {
		ev = ev.Interface("args", f.Args)
	}
	if len(f.Stack) > 0 {
		ev = ev.Str("stack", string(f.Stack))
	}
	ev.Msg(f.Message)
}
