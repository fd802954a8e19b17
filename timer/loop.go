package timer

import (
	"strconv"
	"time"
)

// Handle identifies a timer registered on a [Loop].
// It is opaque to this package, zero is never returned for a registered timer.
type Handle uint64

func (h Handle) String() string { return "timer#" + strconv.FormatUint(uint64(h), 10) }

// TimerFunc is the loop's native timer callback.
// The loop invokes it every interval while it returns true and removes the timer once it returns false.
type TimerFunc func() bool

// Priority is a loop dispatch priority, lower values are dispatched first.
type Priority int

// Common priorities, same scale as GLib main loop priorities.
const (
	PriorityHigh        Priority = -100
	PriorityDefault     Priority = 0
	PriorityHighIdle    Priority = 100
	PriorityDefaultIdle Priority = 200
	PriorityLow         Priority = 300
)

// RegisterOptions are loop specific registration options.
// The [Registrar] never inspects them, they are passed to [Loop.RegisterTimer] as is.
type RegisterOptions struct {
	// Priority is the dispatch priority of the timer.
	Priority Priority `json:"priority,omitempty"`
	// Name is a human readable timer name for loop diagnostics.
	Name string `json:"name,omitempty"`
}

//go:generate go tool mockgen -destination ../internal/loopmock/loopmock.go -package loopmock . Loop,ErrorRecorder

// Loop is an event loop timer capability.
type Loop interface {
	// RegisterTimer registers fn to be invoked every interval until it returns false.
	// Options may be nil.
	RegisterTimer(interval time.Duration, fn TimerFunc, opts *RegisterOptions) (Handle, error)
	// CancelTimer removes a previously registered timer.
	// It reports whether a timer was removed.
	CancelTimer(h Handle) (bool, error)
}
