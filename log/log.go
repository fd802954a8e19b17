// Package log provides logging utilities.
package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByKind(slog.KindDuration, func(v slog.Value) slog.Value {
		return slog.StringValue(v.Duration().String())
	}),
)

// Def is a default logger.
var Def = slog.New(newHandler(
	console.NewHandler(os.Stdout, &console.HandlerOptions{
		AddSource:  true,
		Level:      slog.LevelDebug,
		TimeFormat: time.RFC3339Nano,
	}),
))

// Dev is a developer logger.
var Dev = slog.New(newHandler(
	devslog.NewHandler(os.Stdout, &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		},
		SortKeys:   true,
		TimeFormat: time.RFC3339Nano,
	}),
))

// Default returns the process default logger [Def].
// Components resolve it once, when they are constructed without an explicit logger.
func Default() *slog.Logger { return Def }

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

type fmtValue struct {
	v        any
	goSyntax bool
}

func (v fmtValue) LogValue() slog.Value {
	if v.goSyntax {
		return slog.StringValue(fmt.Sprintf("%#v", v.v))
	}
	return slog.StringValue(fmt.Sprintf("%+v", v.v))
}

// FmtValue returns a value logger that formats values using '%+v' or '%#v' syntax.
func FmtValue(v any, goSyntax bool) slog.LogValuer { return fmtValue{v, goSyntax} }
