package routemetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dmitrymomot/trierouter/core/router"
)

// Matcher is the part of a router the instrumentation wraps.
type Matcher[H any] interface {
	Match(method, path string) []router.Hit[H]
}

// Config configures the collectors.
type Config struct {
	// Namespace is the metrics namespace (default: "trierouter").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// Buckets are the histogram buckets for match duration.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the instrumented matcher.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithBuckets sets the duration histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "trierouter",
		Buckets:   []float64{1e-7, 2.5e-7, 5e-7, 1e-6, 2.5e-6, 5e-6, 1e-5, 1e-4},
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Instrumented wraps a Matcher and records Prometheus metrics for every match.
// It is safe for concurrent use when the wrapped matcher is.
type Instrumented[H any] struct {
	next     Matcher[H]
	matches  *prometheus.CounterVec
	hits     prometheus.Histogram
	duration *prometheus.HistogramVec
}

// New registers the collectors and returns the instrumented matcher.
// Registering twice on the same registry panics, as promauto does.
func New[H any](next Matcher[H], opts ...Option) *Instrumented[H] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	factory := promauto.With(cfg.Registry)

	return &Instrumented[H]{
		next: next,
		matches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "matches_total",
			Help:      "Total number of route matches by request method and result",
		}, []string{"method", "result"}),

		hits: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "match_hits",
			Help:      "Number of routes returned per match",
			Buckets:   []float64{0, 1, 2, 4, 8, 16},
		}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: cfg.Namespace,
			Subsystem: cfg.Subsystem,
			Name:      "match_duration_seconds",
			Help:      "Route match duration in seconds",
			Buckets:   cfg.Buckets,
		}, []string{"method"}),
	}
}

// Match delegates to the wrapped matcher and records the outcome.
func (m *Instrumented[H]) Match(method, path string) []router.Hit[H] {
	start := time.Now()
	hits := m.next.Match(method, path)
	m.duration.WithLabelValues(method).Observe(time.Since(start).Seconds())

	result := "hit"
	if len(hits) == 0 {
		result = "miss"
	}
	m.matches.WithLabelValues(method, result).Inc()
	m.hits.Observe(float64(len(hits)))

	return hits
}
