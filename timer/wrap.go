package timer

import (
	"context"
	"errors"
	"log/slog"
	"runtime/debug"
	"sync/atomic"
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/mainloop/log"
)

// Callback is a user timer callback.
// It receives the arguments passed at scheduling time and returns the continuation signal.
// A non-nil error stops the timer regardless of the returned signal.
type Callback func(ctx context.Context, args Args) (Signal, error)

// Wrap builds a [TimerFunc] that invokes cb with args and contains its failures.
// Returned errors and panics are recorded with rec and turn into false,
// otherwise the callback signal is returned.
// If rec is nil, a [SlogRecorder] over [log.Default] is used.
//
// Wrap is useful for loops driven outside of [Registrar].
func Wrap(ctx context.Context, cb Callback, args Args, rec ErrorRecorder) TimerFunc {
	if rec == nil {
		rec = NewSlogRecorder(nil)
	}
	return newGuard(ctx, 0, cb, args.Clone(), rec, log.Default()).fire
}

// guard is a failure containing shim around a callback.
type guard struct {
	ctx      context.Context
	interval time.Duration
	cb       Callback
	args     Args
	rec      ErrorRecorder
	log      *slog.Logger

	handle atomic.Uint64
	calls  atomic.Uint64
}

func newGuard(
	ctx context.Context,
	interval time.Duration,
	cb Callback,
	args Args,
	rec ErrorRecorder,
	logger *slog.Logger,
) *guard {
	if ctx == nil {
		ctx = context.Background()
	}
	return &guard{
		// the timer outlives the scheduling call, keep only context values
		ctx:      context.WithoutCancel(ctx),
		interval: interval,
		cb:       cb,
		args:     args,
		rec:      rec,
		log:      logger,
	}
}

func (g *guard) fire() bool {
	n := g.calls.Add(1)
	sig, err := g.invoke()
	if err == nil {
		return sig.Bool()
	}

	f := &Failure{
		Message:    failureMessage,
		Err:        err,
		Handle:     Handle(g.handle.Load()),
		Interval:   g.interval,
		Invocation: n,
		Args:       g.args.Clone(),
		Time:       time.Now(),
	}
	if pe := (*PanicError)(nil); errors.As(err, &pe) {
		f.Stack = pe.Stack
	}
	g.record(f)
	return false
}

func (g *guard) invoke() (sig Signal, err error) {
	defer func() {
		if v := recover(); v != nil {
			sig, err = Stop, errtrace.Wrap(&PanicError{Value: v, Stack: debug.Stack()})
		}
	}()
	// each invocation gets its own containers, so writes never reach the next one
	return errtrace.Wrap2(g.cb(g.ctx, g.args.Clone()))
}

func (g *guard) record(f *Failure) {
	defer func() {
		if v := recover(); v != nil {
			g.log.LogAttrs(g.ctx, slog.LevelError, "timer failure recorder panicked",
				slog.Any("failure", f),
				slog.Any("panic", log.FmtValue(v, false)),
				slog.String("stack", string(debug.Stack())),
			)
		}
	}()
	g.rec.RecordFailure(g.ctx, f)
}
