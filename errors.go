package gesture

import "errors"

var (
	// ErrDegenerateGesture is returned by Resolve when the source span has
	// zero length (two contacts at identical coordinates) or the solve would
	// produce non-finite values.
	ErrDegenerateGesture = errors.New("gesture: degenerate gesture input")

	// ErrInvalidConfig is wrapped by every configuration validation failure.
	ErrInvalidConfig = errors.New("gesture: invalid configuration")

	// ErrClosed is returned by Controller methods called after Close.
	ErrClosed = errors.New("gesture: controller closed")

	// ErrMissingHost is returned by NewController when a required host
	// capability is nil.
	ErrMissingHost = errors.New("gesture: missing host capability")
)
