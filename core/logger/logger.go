package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type config struct {
	level  slog.Level
	json   bool
	output io.Writer
	attrs  []slog.Attr
}

// Option configures a logger created by New.
type Option func(*config)

// New creates a structured logger. Without options it writes text records at
// info level to stdout.
func New(opts ...Option) *slog.Logger {
	cfg := config{
		level:  slog.LevelInfo,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	ho := &slog.HandlerOptions{Level: cfg.level}

	var h slog.Handler
	if cfg.json {
		h = slog.NewJSONHandler(cfg.output, ho)
	} else {
		h = slog.NewTextHandler(cfg.output, ho)
	}
	if len(cfg.attrs) > 0 {
		h = h.WithAttrs(cfg.attrs)
	}
	return slog.New(h)
}

// WithLevel sets the minimum record level.
func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithJSONFormatter switches the output to JSON records.
func WithJSONFormatter() Option {
	return func(c *config) {
		c.json = true
	}
}

// WithTextFormatter switches the output to logfmt-style text records.
func WithTextFormatter() Option {
	return func(c *config) {
		c.json = false
	}
}

// WithOutput sets the destination writer. Nil keeps the current one.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// WithDevelopment configures text output at debug level.
func WithDevelopment(service string) Option {
	return func(c *config) {
		c.level = slog.LevelDebug
		c.json = false
		c.attrs = append(c.attrs, slog.String("service", service), slog.String("env", "development"))
	}
}

// WithProduction configures JSON output at info level.
func WithProduction(service string) Option {
	return func(c *config) {
		c.level = slog.LevelInfo
		c.json = true
		c.attrs = append(c.attrs, slog.String("service", service), slog.String("env", "production"))
	}
}

// WithFormat selects the formatter by name: "json" or "text".
// Unknown names fall back to text.
func WithFormat(format string) Option {
	return func(c *config) {
		c.json = strings.EqualFold(format, "json")
	}
}

// ParseLevel converts a level name such as "debug" or "WARN" to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(s))
	return level, err
}
