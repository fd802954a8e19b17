package timer_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/mainloop/timer"
)

func TestArgs(t *testing.T) {
	t.Parallel()

	args := timer.NewArgs("a", 2).WithNamed("host", "example.com")

	if got := args.Len(); got != 2 {
		t.Errorf("args.Len() = %d, want 2", got)
	}
	if got := args.At(0); got != "a" {
		t.Errorf("args.At(0) = %v, want \"a\"", got)
	}
	if got := args.At(5); got != nil {
		t.Errorf("args.At(5) = %v, want nil", got)
	}
	if got, ok := args.Get("host"); !ok || got != "example.com" {
		t.Errorf("args.Get(\"host\") = %v, %v, want \"example.com\", true", got, ok)
	}
	if _, ok := args.Get("port"); ok {
		t.Errorf("args.Get(\"port\") found, want not found")
	}
	if !(timer.Args{}).IsZero() {
		t.Errorf("Args{}.IsZero() = false, want true")
	}
	if args.IsZero() {
		t.Errorf("args.IsZero() = true, want false")
	}
}

func TestArgs_CloneIsolation(t *testing.T) {
	t.Parallel()

	orig := timer.Args{
		Positional: []any{"x"},
		Named:      map[string]any{"k": 1},
	}
	c := orig.Clone()
	if diff := cmp.Diff(c, orig); diff != "" {
		t.Fatalf("orig.Clone() = %+v, want %+v\ndiff (-got +want):\n%v", c, orig, diff)
	}

	orig.Positional[0] = "y"
	orig.Named["k"] = 2
	if c.At(0) != "x" {
		t.Errorf("clone.At(0) = %v after source change, want \"x\"", c.At(0))
	}
	if v, _ := c.Get("k"); v != 1 {
		t.Errorf("clone.Get(\"k\") = %v after source change, want 1", v)
	}

	with := orig.WithNamed("n", true)
	if _, ok := orig.Get("n"); ok {
		t.Errorf("WithNamed modified the source args")
	}
	if v, _ := with.Get("n"); v != true {
		t.Errorf("with.Get(\"n\") = %v, want true", v)
	}
}

func TestArgs_LogValue(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))
	l.Info("call", slog.Any("args", timer.NewArgs("a", 1).WithNamed("z", 2).WithNamed("b", 3)))

	if got, want := buf.String(), "args.0=a args.1=1 args.b=3 args.z=2"; !strings.Contains(got, want) {
		t.Errorf("logged %q, want to contain %q", got, want)
	}
}
