package log

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"braces.dev/errtrace"
	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	"go.yaml.in/yaml/v3"

	"github.com/ghettovoice/mainloop/internal/errorutil"
)

// ErrInvalidConfig is returned when a logger config can not be parsed or applied.
const ErrInvalidConfig errorutil.Error = "invalid log config"

// Format selects the handler built by [New].
type Format string

const (
	// FormatConsole is a human-friendly colored console output.
	FormatConsole Format = "console"
	// FormatDev is a verbose developer output with pretty-printed values.
	FormatDev Format = "dev"
	// FormatJSON is a structured JSON output.
	FormatJSON Format = "json"
	// FormatText is a logfmt-like output.
	FormatText Format = "text"
	// FormatNoop discards all records.
	FormatNoop Format = "noop"
)

// Config is a logger configuration.
// Zero value builds a console logger at INFO level.
type Config struct {
	// Format is the output format, [FormatConsole] if empty.
	Format Format `json:"format,omitempty" yaml:"format,omitempty"`
	// Level is the minimal record level (DEBUG, INFO, WARN, ERROR with optional offset, e.g. INFO+2).
	// INFO if empty.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`
	// AddSource adds the source position to records.
	AddSource bool `json:"add_source,omitempty" yaml:"add_source,omitempty"`
}

func (c Config) format() Format {
	if c.Format == "" {
		return FormatConsole
	}
	return Format(strings.ToLower(string(c.Format)))
}

func (c Config) level() (slog.Level, error) {
	var lvl slog.Level
	if strings.TrimSpace(c.Level) == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.Level))); err != nil {
		return 0, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidConfig, err))
	}
	return lvl, nil
}

// ParseConfig parses a YAML or JSON encoded logger config.
// Unknown fields are rejected. Empty input yields zero config.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidConfig, err))
	}
	return cfg, nil
}

// LoadConfig reads and parses a logger config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(ParseConfig(data))
}

// New builds a logger writing to w according to cfg.
// If w is nil, [os.Stdout] is used.
func New(w io.Writer, cfg Config) (*slog.Logger, error) {
	if w == nil {
		w = os.Stdout
	}

	lvl, err := cfg.level()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	var h slog.Handler
	switch f := cfg.format(); f {
	case FormatConsole:
		h = console.NewHandler(w, &console.HandlerOptions{
			AddSource:  cfg.AddSource,
			Level:      lvl,
			TimeFormat: time.RFC3339Nano,
		})
	case FormatDev:
		h = devslog.NewHandler(w, &devslog.Options{
			HandlerOptions: &slog.HandlerOptions{
				AddSource: cfg.AddSource,
				Level:     lvl,
			},
			SortKeys:   true,
			TimeFormat: time.RFC3339Nano,
		})
	case FormatJSON:
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{AddSource: cfg.AddSource, Level: lvl})
	case FormatText:
		h = slog.NewTextHandler(w, &slog.HandlerOptions{AddSource: cfg.AddSource, Level: lvl})
	case FormatNoop:
		return Noop, nil
	default:
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidConfig, "unknown format %q", f))
	}
	return slog.New(newHandler(h)), nil
}
