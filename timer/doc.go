// Package timer schedules callbacks on an external event loop without letting
// callback failures escape into the loop.
//
// The loop is any type implementing [Loop]: it fires a registered [TimerFunc]
// every interval until the function returns false. [Registrar.Schedule] wraps a
// [Callback] so that a returned error or a panic is turned into a single
// [Failure] record passed to an [ErrorRecorder], and the timer is stopped.
// Successful invocations return the callback's own [Signal].
//
// Basic usage:
//
//	reg, _ := timer.NewRegistrar(loop, nil)
//	h, err := reg.Schedule(ctx, time.Second,
//	    func(ctx context.Context, args timer.Args) (timer.Signal, error) {
//	        if err := ping(ctx, args.At(0).(string)); err != nil {
//	            return timer.Stop, err
//	        }
//	        return timer.Continue, nil
//	    },
//	    timer.NewArgs("example.com"),
//	    nil,
//	)
//	...
//	_, _ = reg.Cancel(ctx, h)
//
// Registration and cancellation errors reported by the loop are returned to
// the caller as is.
package timer

//go:generate go tool errtrace -w .
