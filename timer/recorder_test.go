package timer_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"braces.dev/errtrace"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/ghettovoice/mainloop/timer"
)

func newFailure() *timer.Failure {
	return &timer.Failure{
		Message:    "timer callback failed",
		Err:        errtrace.Wrap(errors.New("boom")),
		Handle:     7,
		Interval:   100 * time.Millisecond,
		Invocation: 1,
		Args:       timer.NewArgs("a"),
		Time:       time.Now(),
		Stack:      []byte("goroutine 1 [running]:"),
	}
}

func decodeLines(tb testing.TB, buf *bytes.Buffer) []map[string]any {
	tb.Helper()

	var recs []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			tb.Fatalf("json.Unmarshal(%q) error = %v, want nil", line, err)
		}
		recs = append(recs, rec)
	}
	return recs
}

func TestSlogRecorder(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rec := timer.NewSlogRecorder(slog.New(slog.NewJSONHandler(&buf, nil)))
	rec.RecordFailure(t.Context(), newFailure())

	recs := decodeLines(t, &buf)
	if len(recs) != 1 {
		t.Fatalf("logged %d records, want 1:\n%s", len(recs), buf.String())
	}
	got := recs[0]
	if got["level"] != "ERROR" || got["msg"] != "timer callback failed" {
		t.Errorf("record = %v, want ERROR \"timer callback failed\"", got)
	}

	fld, _ := got["failure"].(map[string]any)
	want := map[string]any{
		"error":      "boom",
		"handle":     "timer#7",
		"interval":   float64(100 * time.Millisecond),
		"invocation": float64(1),
		"args":       map[string]any{"0": "a"},
		"stack":      "goroutine 1 [running]:",
	}
	if diff := cmp.Diff(fld, want); diff != "" {
		t.Errorf("failure attr = %v, want %v\ndiff (-got +want):\n%v", fld, want, diff)
	}
}

func TestZerologRecorder(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rec := timer.NewZerologRecorder(zerolog.New(&buf))
	rec.RecordFailure(context.Background(), newFailure())

	recs := decodeLines(t, &buf)
	if len(recs) != 1 {
		t.Fatalf("logged %d events, want 1:\n%s", len(recs), buf.String())
	}
	got := recs[0]
	for k, want := range map[string]any{
		"level":      "error",
		"message":    "timer callback failed",
		"error":      "boom",
		"handle":     "timer#7",
		"invocation": float64(1),
		"stack":      "goroutine 1 [running]:",
	} {
		if got[k] != want {
			t.Errorf("event[%q] = %v, want %v", k, got[k], want)
		}
	}
}

func TestRecorderFunc(t *testing.T) {
	t.Parallel()

	var got *timer.Failure
	rec := timer.RecorderFunc(func(_ context.Context, f *timer.Failure) { got = f })
	f := newFailure()
	rec.RecordFailure(t.Context(), f)
	if got != f {
		t.Errorf("RecorderFunc received %p, want %p", got, f)
	}
}
