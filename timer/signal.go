package timer

import (
	"log/slog"
	"strings"

	"braces.dev/errtrace"
)

// Signal is a continuation signal returned by a timer callback.
// The zero value is [Stop], so a callback that does not ask to be repeated runs once.
type Signal uint8

const (
	// Stop tells the loop to remove the timer.
	Stop Signal = iota
	// Continue tells the loop to invoke the timer again after the interval.
	Continue
)

// SignalOf translates the loop's native boolean into a [Signal].
func SignalOf(repeat bool) Signal {
	if repeat {
		return Continue
	}
	return Stop
}

// Bool translates the signal into the loop's native boolean.
// Any value other than [Continue] is false.
func (s Signal) Bool() bool { return s == Continue }

func (s Signal) String() string {
	switch s {
	case Stop:
		return "stop"
	case Continue:
		return "continue"
	default:
		return "unknown"
	}
}

func (s Signal) LogValue() slog.Value { return slog.StringValue(s.String()) }

func (s Signal) MarshalText() ([]byte, error) {
	if s != Stop && s != Continue {
		return nil, errtrace.Wrap(NewInvalidArgumentError("invalid signal %d", uint8(s)))
	}
	return []byte(s.String()), nil
}

func (s *Signal) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "stop":
		*s = Stop
	case "continue":
		*s = Continue
	default:
		return errtrace.Wrap(NewInvalidArgumentError("invalid signal %q", text))
	}
	return nil
}
