package gesture

import "log/slog"

// Option configures a Controller during creation.
//
// Example:
//
//	c, err := gesture.NewController(host, gesture.DefaultConfig(),
//	    gesture.WithObserver(func(t gesture.Transform) { el.SetTransform(t) }))
type Option func(*controllerOptions)

// controllerOptions holds optional configuration for Controller creation.
type controllerOptions struct {
	observer  func(Transform)
	logger    *slog.Logger
	sessionID string
}

// WithObserver sets the callback invoked every time the displayed
// transform changes. The host renders the transform it receives.
func WithObserver(fn func(Transform)) Option {
	return func(o *controllerOptions) {
		o.observer = fn
	}
}

// WithLogger sets a logger for this controller instead of the package
// logger returned by Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *controllerOptions) {
		o.logger = l
	}
}

// WithSessionID sets the identifier attached to every log record of the
// controller. A random UUID is used by default.
func WithSessionID(id string) Option {
	return func(o *controllerOptions) {
		o.sessionID = id
	}
}
