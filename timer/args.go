package timer

import (
	"log/slog"
	"maps"
	"slices"
	"strconv"

	"github.com/ghettovoice/mainloop/log"
)

// Args is an argument container forwarded verbatim to a [Callback] on every invocation.
// Positional values keep their order, named values are looked up by key.
type Args struct {
	Positional []any
	Named      map[string]any
}

// NewArgs creates an argument container with the given positional values.
func NewArgs(pos ...any) Args {
	return Args{Positional: pos}
}

// WithNamed returns a copy of args with the named value set.
func (a Args) WithNamed(key string, val any) Args {
	c := a.Clone()
	if c.Named == nil {
		c.Named = make(map[string]any, 1)
	}
	c.Named[key] = val
	return c
}

// Len returns the number of positional values.
func (a Args) Len() int { return len(a.Positional) }

// At returns i-th positional value or nil if out of range.
func (a Args) At(i int) any {
	if i < 0 || i >= len(a.Positional) {
		return nil
	}
	return a.Positional[i]
}

// Get returns the named value.
func (a Args) Get(key string) (any, bool) {
	v, ok := a.Named[key]
	return v, ok
}

// Clone returns a shallow copy of the containers, values themselves are shared.
func (a Args) Clone() Args {
	return Args{
		Positional: slices.Clone(a.Positional),
		Named:      maps.Clone(a.Named),
	}
}

// IsZero reports whether args has neither positional nor named values.
func (a Args) IsZero() bool { return len(a.Positional) == 0 && len(a.Named) == 0 }

// LogValue returns a group of positional values keyed by index followed by sorted named values.
func (a Args) LogValue() slog.Value {
	if a.IsZero() {
		return slog.GroupValue()
	}

	attrs := make([]slog.Attr, 0, len(a.Positional)+len(a.Named))
	for i, v := range a.Positional {
		attrs = append(attrs, slog.Any(strconv.Itoa(i), log.FmtValue(v, false)))
	}
	for _, k := range slices.Sorted(maps.Keys(a.Named)) {
		attrs = append(attrs, slog.Any(k, log.FmtValue(a.Named[k], false)))
	}
	return slog.GroupValue(attrs...)
}
