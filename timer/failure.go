package timer

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ghettovoice/mainloop/log"
)

const failureMessage = "timer callback failed"

// Failure is a structured record of a failed callback invocation.
type Failure struct {
	// Message is a short description of the failure.
	Message string
	// Err is the error returned by the callback or a [*PanicError].
	Err error
	// Handle is the timer handle, zero if the timer fired before the loop returned it.
	Handle Handle
	// Interval is the timer interval.
	Interval time.Duration
	// Invocation is the 1-based number of the failed invocation.
	Invocation uint64
	// Args are the arguments the callback was invoked with.
	Args Args
	// Time is the failure time.
	Time time.Time
	// Stack is the goroutine stack captured at the panic site, empty for returned errors.
	Stack []byte
}

func (f *Failure) Error() string {
	if f == nil {
		return "<nil>"
	}
	if f.Err == nil {
		return f.Message
	}
	return f.Message + ": " + f.Err.Error()
}

func (f *Failure) Unwrap() error {
	if f == nil {
		return nil
	}
	return f.Err
}

// Panicked reports whether the failure was caused by a callback panic.
func (f *Failure) Panicked() bool {
	return f != nil && errors.Is(f.Err, ErrCallbackPanic)
}

func (f *Failure) LogValue() slog.Value {
	if f == nil {
		return slog.GroupValue()
	}

	attrs := make([]slog.Attr, 0, 6)
	if f.Err != nil {
		// plain message, traced errors render their frames otherwise
		attrs = append(attrs, slog.String("error", f.Err.Error()))
	}
	attrs = append(attrs,
		slog.String("handle", f.Handle.String()),
		slog.Duration("interval", f.Interval),
		slog.Uint64("invocation", f.Invocation),
	)
	if !f.Args.IsZero() {
		attrs = append(attrs, slog.Any("args", f.Args))
	}
	if len(f.Stack) > 0 {
		attrs = append(attrs, slog.String("stack", string(f.Stack)))
	}
	return slog.GroupValue(attrs...)
}

// PanicError is an error made from a value recovered from a panicking callback.
// It matches [ErrCallbackPanic] and unwraps to the panic value if that is an error.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %v", ErrCallbackPanic, e.Value)
}

func (e *PanicError) Unwrap() error {
	if e == nil {
		return nil
	}
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

func (e *PanicError) Is(target error) bool { return target == ErrCallbackPanic }

func (e *PanicError) LogValue() slog.Value {
	if e == nil {
		return slog.GroupValue()
	}
	return slog.GroupValue(
		slog.Any("value", log.FmtValue(e.Value, false)),
		slog.String("type", fmt.Sprintf("%T", e.Value)),
	)
}
