package looptest

import (
	"fmt"
	"sync"
	"time"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/mainloop/internal/errorutil"
	"github.com/ghettovoice/mainloop/timer"
)

// ErrNegativeInterval is returned by [ManualLoop.RegisterTimer] for negative intervals.
const ErrNegativeInterval errorutil.Error = "negative timer interval"

// TimerState is a lifecycle state of a timer registered on a [ManualLoop].
type TimerState string

const (
	// StateArmed is a registered timer waiting for its deadline.
	StateArmed TimerState = "armed"
	// StateFiring is a timer whose function is running.
	StateFiring TimerState = "firing"
	// StateRemoved is a timer removed after its function returned false.
	StateRemoved TimerState = "removed"
	// StateCancelled is a timer removed with [ManualLoop.CancelTimer].
	StateCancelled TimerState = "cancelled"
)

type trigger string

const (
	triggerFire   trigger = "fire"
	triggerRearm  trigger = "rearm"
	triggerRemove trigger = "remove"
	triggerCancel trigger = "cancel"
)

func newTimerMachine() *stateless.StateMachine {
	sm := stateless.NewStateMachine(StateArmed)
	sm.Configure(StateArmed).
		Permit(triggerFire, StateFiring).
		Permit(triggerCancel, StateCancelled)
	sm.Configure(StateFiring).
		Permit(triggerRearm, StateArmed).
		Permit(triggerRemove, StateRemoved).
		Permit(triggerCancel, StateCancelled)
	// a timer cancelled from its own function is not re-armed
	sm.Configure(StateCancelled).
		Ignore(triggerRearm).
		Ignore(triggerRemove)
	return sm
}

type entry struct {
	h         timer.Handle
	interval  time.Duration
	deadline  time.Time
	fn        timer.TimerFunc
	opts      *timer.RegisterOptions
	calls     int
	lastRound uint64
	sm        *stateless.StateMachine
}

func (e *entry) state() TimerState { return e.sm.MustState().(TimerState) } //nolint:forcetypeassert

func (e *entry) fire(trg trigger) {
	if err := e.sm.Fire(trg); err != nil {
		panic(fmt.Errorf("%s: %w", e.h, err))
	}
}

func (e *entry) priority() timer.Priority {
	if e.opts == nil {
		return timer.PriorityDefault
	}
	return e.opts.Priority
}

// before reports whether e is dispatched before o.
func (e *entry) before(o *entry) bool {
	if !e.deadline.Equal(o.deadline) {
		return e.deadline.Before(o.deadline)
	}
	if e.priority() != o.priority() {
		return e.priority() < o.priority()
	}
	return e.h < o.h
}

// ManualLoopOptions are the options for a [ManualLoop].
type ManualLoopOptions struct {
	// Start is the initial virtual time.
	// If zero, the Unix epoch is used.
	Start time.Time
}

func (o *ManualLoopOptions) start() time.Time {
	if o == nil || o.Start.IsZero() {
		return time.Unix(0, 0).UTC()
	}
	return o.Start
}

// ManualLoop is a [timer.Loop] on a virtual clock advanced with [ManualLoop.Advance].
// Its methods are safe for concurrent use, timer functions may register and cancel timers.
type ManualLoop struct {
	mu     sync.Mutex
	now    time.Time
	seq    uint64
	round  uint64
	timers map[timer.Handle]*entry
	done   map[timer.Handle]*entry
}

// NewManualLoop creates a new [ManualLoop].
// Options are optional, if nil, default values are used (see [ManualLoopOptions]).
func NewManualLoop(opts *ManualLoopOptions) *ManualLoop {
	return &ManualLoop{
		now:    opts.start(),
		timers: make(map[timer.Handle]*entry),
		done:   make(map[timer.Handle]*entry),
	}
}

// RegisterTimer registers fn to fire every interval of virtual time while it returns true.
// Timers with zero interval fire at most once per [ManualLoop.Advance].
func (l *ManualLoop) RegisterTimer(
	interval time.Duration,
	fn timer.TimerFunc,
	opts *timer.RegisterOptions,
) (timer.Handle, error) {
	if fn == nil {
		return 0, errtrace.Wrap(timer.NewInvalidArgumentError("invalid timer func"))
	}
	if interval < 0 {
		return 0, errtrace.Wrap(errorutil.NewWrapperError(ErrNegativeInterval, "%v", interval))
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	e := &entry{
		h:        timer.Handle(l.seq),
		interval: interval,
		deadline: l.now.Add(interval),
		fn:       fn,
		opts:     opts,
		sm:       newTimerMachine(),
	}
	l.timers[e.h] = e
	return e.h, nil
}

// CancelTimer removes an armed or firing timer.
// It returns false for unknown handles and timers that are already removed.
func (l *ManualLoop) CancelTimer(h timer.Handle) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.timers[h]
	if !ok {
		return false, nil
	}
	e.fire(triggerCancel)
	delete(l.timers, h)
	l.done[h] = e
	return true, nil
}

// Advance moves the virtual clock by d and fires all timers that become due,
// earliest deadline first, then by priority and registration order.
// It returns the number of fired timer functions.
//
// Timer functions run on the calling goroutine without the loop lock held.
// A panic in a timer function propagates to the caller of Advance.
func (l *ManualLoop) Advance(d time.Duration) int {
	if d < 0 {
		d = 0
	}

	l.mu.Lock()
	l.round++
	round := l.round
	until := l.now.Add(d)
	l.mu.Unlock()

	var fired int
	for {
		l.mu.Lock()
		e := l.nextDueLocked(until, round)
		if e == nil {
			l.now = until
			l.mu.Unlock()
			return fired
		}
		if e.deadline.After(l.now) {
			l.now = e.deadline
		}
		e.fire(triggerFire)
		e.calls++
		e.lastRound = round
		l.mu.Unlock()

		again := e.fn()
		fired++

		l.mu.Lock()
		if again {
			e.fire(triggerRearm)
		} else {
			e.fire(triggerRemove)
		}
		if e.state() == StateArmed {
			e.deadline = e.deadline.Add(e.interval)
		} else {
			delete(l.timers, e.h)
			l.done[e.h] = e
		}
		l.mu.Unlock()
	}
}

func (l *ManualLoop) nextDueLocked(until time.Time, round uint64) *entry {
	var next *entry
	for _, e := range l.timers {
		if e.state() != StateArmed || e.deadline.After(until) {
			continue
		}
		if e.interval == 0 && e.lastRound == round {
			continue
		}
		if next == nil || e.before(next) {
			next = e
		}
	}
	return next
}

// Now returns the current virtual time.
func (l *ManualLoop) Now() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.now
}

// Len returns the number of registered timers that are not removed yet.
func (l *ManualLoop) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.timers)
}

// Next returns the deadline of the earliest armed timer.
func (l *ManualLoop) Next() (time.Time, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var next *entry
	for _, e := range l.timers {
		if e.state() == StateArmed && (next == nil || e.before(next)) {
			next = e
		}
	}
	if next == nil {
		return time.Time{}, false
	}
	return next.deadline, true
}

func (l *ManualLoop) lookup(h timer.Handle) (*entry, bool) {
	if e, ok := l.timers[h]; ok {
		return e, true
	}
	e, ok := l.done[h]
	return e, ok
}

// State returns the lifecycle state of the timer.
func (l *ManualLoop) State(h timer.Handle) (TimerState, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.lookup(h)
	if !ok {
		return "", false
	}
	return e.state(), true
}

// Calls returns how many times the timer function was fired.
func (l *ManualLoop) Calls(h timer.Handle) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.lookup(h)
	if !ok {
		return 0
	}
	return e.calls
}

// Options returns the registration options the timer was registered with.
func (l *ManualLoop) Options(h timer.Handle) *timer.RegisterOptions {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.lookup(h)
	if !ok {
		return nil
	}
	return e.opts
}
