package timer

import (
	"context"
	"log/slog"
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/mainloop/log"
)

// RegistrarOptions are the options for a [Registrar].
type RegistrarOptions struct {
	// Recorder is the default failure recorder of scheduled callbacks.
	// If nil, a [SlogRecorder] over Log is used.
	Recorder ErrorRecorder
	// Log is the registrar logger.
	// If nil, the [log.Default] is used.
	Log *slog.Logger
}

func (o *RegistrarOptions) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Default()
	}
	return o.Log
}

func (o *RegistrarOptions) recorder() ErrorRecorder {
	if o == nil || o.Recorder == nil {
		return NewSlogRecorder(o.log())
	}
	return o.Recorder
}

// ScheduleOptions are the options for [Registrar.Schedule].
type ScheduleOptions struct {
	// Recorder records failures of this callback.
	// If nil, the registrar default recorder is used.
	Recorder ErrorRecorder
	// Register are loop specific registration options passed to [Loop.RegisterTimer] as is.
	Register *RegisterOptions
}

func (o *ScheduleOptions) recorder(def ErrorRecorder) ErrorRecorder {
	if o == nil || o.Recorder == nil {
		return def
	}
	return o.Recorder
}

func (o *ScheduleOptions) register() *RegisterOptions {
	if o == nil {
		return nil
	}
	return o.Register
}

// Registrar schedules failure-safe callbacks on a [Loop].
//
// Registrar holds no mutable state, all timer bookkeeping belongs to the loop.
// It is safe for concurrent use as far as the loop is.
type Registrar struct {
	loop Loop
	rec  ErrorRecorder
	log  *slog.Logger
}

// NewRegistrar creates a new [Registrar].
// Loop is required argument and expected to be non-nil.
// Options are optional, if nil, default values are used (see [RegistrarOptions]).
// Defaults are resolved once here and shared by all scheduled callbacks.
func NewRegistrar(loop Loop, opts *RegistrarOptions) (*Registrar, error) {
	if loop == nil {
		return nil, errtrace.Wrap(NewInvalidArgumentError("invalid loop"))
	}
	return &Registrar{
		loop: loop,
		rec:  opts.recorder(),
		log:  opts.log(),
	}, nil
}

// Recorder returns the default failure recorder.
func (r *Registrar) Recorder() ErrorRecorder {
	if r == nil {
		return nil
	}
	return r.rec
}

// Logger returns the registrar logger.
func (r *Registrar) Logger() *slog.Logger {
	if r == nil {
		return nil
	}
	return r.log
}

// Schedule registers cb on the loop to be invoked every interval with args.
//
// The callback keeps running while it returns [Continue].
// A returned error or a panic is recorded once with the recorder from opts or
// the registrar default recorder, and the timer is stopped.
// Args are cloned, later changes of the caller's containers are not visible to the callback.
// Context values are available to the callback and the recorder, context cancellation is not
// propagated, use [Registrar.Cancel] to stop the timer.
//
// Errors returned by the loop are returned as is, the handle is zero then.
func (r *Registrar) Schedule(
	ctx context.Context,
	interval time.Duration,
	cb Callback,
	args Args,
	opts *ScheduleOptions,
) (Handle, error) {
	if cb == nil {
		return 0, errtrace.Wrap(NewInvalidArgumentError("invalid callback"))
	}

	g := newGuard(ctx, interval, cb, args.Clone(), opts.recorder(r.rec), r.log)
	h, err := r.loop.RegisterTimer(interval, g.fire, opts.register())
	if err != nil {
		r.log.LogAttrs(ctx, slog.LevelDebug, "failed to register timer",
			slog.Duration("interval", interval),
			slog.Any("error", err),
		)
		return 0, errtrace.Wrap(err)
	}
	g.handle.Store(uint64(h))

	r.log.LogAttrs(ctx, slog.LevelDebug, "timer scheduled",
		slog.String("handle", h.String()),
		slog.Duration("interval", interval),
	)
	return h, nil
}

// ScheduleFunc is like [Registrar.Schedule] for zero-argument closures.
func (r *Registrar) ScheduleFunc(
	ctx context.Context,
	interval time.Duration,
	fn func() (Signal, error),
	opts *ScheduleOptions,
) (Handle, error) {
	if fn == nil {
		return 0, errtrace.Wrap(NewInvalidArgumentError("invalid callback"))
	}
	return errtrace.Wrap2(r.Schedule(ctx, interval, func(context.Context, Args) (Signal, error) {
		return fn()
	}, Args{}, opts))
}

// Cancel removes the timer from the loop.
// The loop result is returned as is, including for timers the loop already removed itself.
func (r *Registrar) Cancel(ctx context.Context, h Handle) (bool, error) {
	ok, err := r.loop.CancelTimer(h)
	if err != nil {
		r.log.LogAttrs(ctx, slog.LevelDebug, "failed to cancel timer",
			slog.String("handle", h.String()),
			slog.Any("error", err),
		)
		return ok, errtrace.Wrap(err)
	}

	r.log.LogAttrs(ctx, slog.LevelDebug, "timer cancelled",
		slog.String("handle", h.String()),
		slog.Bool("removed", ok),
	)
	return ok, nil
}
