package router

import "log/slog"

type options struct {
	logger *slog.Logger
}

// Option configures a Router during creation.
type Option func(*options)

// WithLogger sets the logger used to report route registration.
// Registrations are logged at debug level, rejected patterns at warn level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
