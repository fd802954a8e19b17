package timer

import "github.com/ghettovoice/mainloop/internal/errorutil"

// Common errors.
const (
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrCallbackPanic is matched by errors produced from a recovered callback panic.
	ErrCallbackPanic Error = "timer callback panicked"
)

// Error represents a timer error.
// See [errorutil.Error].
type Error = errorutil.Error

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return errorutil.NewInvalidArgumentError(args...) //errtrace:skip
}
