package gesture

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// Controller turns touch events on one element into a displayed transform.
//
// A Controller is not safe for concurrent use. Every method, and every
// callback it hands to its Host, must run on the same goroutine; the loop
// package provides a host that guarantees this.
type Controller struct {
	cfg      Config
	host     Host
	observer func(Transform)
	log      *slog.Logger
	id       string

	s Session

	// stale forces the next event to capture a new baseline, used after a
	// reset replaced the active transform under the user's fingers.
	stale bool

	tapTimer Timer
	tapSeq   uint64

	anim       *animation
	graceTimer Timer

	unsubscribe func()
	closed      bool
}

// NewController validates cfg and host and returns a controller for the
// element described by host.Element.
func NewController(host Host, cfg Config, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := checkHost(host, cfg); err != nil {
		return nil, err
	}

	var o controllerOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.sessionID == "" {
		o.sessionID = uuid.NewString()
	}
	if o.logger == nil {
		o.logger = Logger()
	}

	c := &Controller{
		cfg:      cfg,
		host:     host,
		observer: o.observer,
		id:       o.sessionID,
		log:      o.logger.With(slog.String("session", o.sessionID)),
		s:        newSession(),
	}
	if host.Touches != nil {
		c.unsubscribe = host.Touches.Subscribe(func(ev TouchEvent) {
			_ = c.HandleTouch(ev)
		})
	}
	if host.Frames == nil {
		c.log.Warn("gesture: no frame scheduler, resets will not animate")
	}
	c.log.Info("gesture: controller attached",
		"rotate", cfg.Rotate,
		"boundaries", cfg.Boundaries,
		"minScale", optional(cfg.MinScale),
		"maxScale", optional(cfg.MaxScale))
	return c, nil
}

func checkHost(h Host, cfg Config) error {
	var errs []error
	if h.Element == nil {
		errs = append(errs, fmt.Errorf("%w: element geometry", ErrMissingHost))
	}
	if h.Timers == nil {
		errs = append(errs, fmt.Errorf("%w: timer service", ErrMissingHost))
	}
	if h.Viewport == nil && (cfg.Boundaries || cfg.MaxScale != nil) {
		errs = append(errs, fmt.Errorf("%w: viewport provider is required for boundaries and maxScale", ErrMissingHost))
	}
	return errors.Join(errs...)
}

func optional(v *float64) any {
	if v == nil {
		return "none"
	}
	return *v
}

// ID returns the session identifier used in log records.
func (c *Controller) ID() string { return c.id }

// Config returns the configuration the controller was created with.
func (c *Controller) Config() Config { return c.cfg }

// Transform returns the transform currently displayed.
func (c *Controller) Transform() Transform { return c.s.Preview }

// Active returns the last committed transform.
func (c *Controller) Active() Transform { return c.s.Active }

// Phase returns the current gesture phase.
func (c *Controller) Phase() Phase { return c.s.Phase() }

// Session returns a copy of the gesture state.
func (c *Controller) Session() Session { return c.s }

// Closed reports whether Close has been called.
func (c *Controller) Closed() bool { return c.closed }

// HandleTouch feeds one touch event into the state machine.
//
// Gesture problems never surface as errors: events are ignored while a reset
// animation runs or when more than two contacts are down, and degenerate
// point pairs fall back to an identity delta. The only error is ErrClosed.
func (c *Controller) HandleTouch(ev TouchEvent) error {
	if c.closed {
		return ErrClosed
	}
	if c.s.Animating {
		c.log.Debug("gesture: event ignored during animation", "kind", ev.Kind)
		return nil
	}

	n := len(ev.Contacts)
	switch nextStep(c.s.Count, n, c.stale) {
	case stepIgnore:
		if n > maxContacts {
			c.log.Debug("gesture: unrecognized contact count", "kind", ev.Kind, "contacts", n)
		}
		return nil
	case stepFinalize:
		c.finalize()
		c.stale = false
	case stepRebase:
		c.finalize()
		c.stale = false
		pts := contactPoints(ev.Contacts, c.host.Element.Bounds().Origin())
		c.s.Source = pts
		c.s.Dest = pts
	case stepPreview:
		c.s.Dest = contactPoints(ev.Contacts, c.host.Element.Bounds().Origin())
		c.preview()
	}
	c.s.Count = n

	if ev.Kind == TouchStart && n == 1 {
		c.detectDoubleTap()
	}
	return nil
}

// finalize commits the displayed transform as the baseline for the next
// incremental gesture.
func (c *Controller) finalize() {
	c.s.Active = c.s.Preview
}

// preview resolves the current gesture, composes it onto the active
// transform, applies the constraints and displays the result.
func (c *Controller) preview() {
	delta, err := Resolve(c.s.Source, c.s.Dest, c.cfg.Rotate)
	if err != nil {
		c.log.Debug("gesture: degenerate gesture, using identity delta", "error", err)
	}
	proposed := delta.Compose(c.s.Active)

	switch v := c.cfg.CheckScale(proposed); v {
	case ScaleBelowMin:
		c.log.Debug("gesture: preview rejected", "verdict", v, "transform", proposed)
		c.reset(true)
		return
	case ScaleAboveMax:
		c.log.Debug("gesture: preview rejected", "verdict", v, "transform", proposed)
		proposed = PinScale(proposed, *c.cfg.MaxScale, c.s.Dest.P0)
	}

	if c.cfg.Boundaries {
		proposed = c.clamp(proposed)
	}
	c.setPreview(proposed)
}

// clamp applies boundary clamping in element-local coordinates.
func (c *Controller) clamp(t Transform) Transform {
	el := c.host.Element.Bounds()
	content := Rect{Width: el.Width, Height: el.Height}
	vp := localRect(c.host.Viewport.Viewport(), el.Origin())
	clamped := ClampBounds(t, content, vp)
	if clamped.B != t.B {
		c.log.Debug("gesture: translation clamped",
			"orientation", OrientationOf(vp),
			"from", t.B, "to", clamped.B)
	}
	return clamped
}

func (c *Controller) setPreview(t Transform) {
	c.s.Preview = t
	if c.observer != nil {
		c.observer(t)
	}
}

// Close tears the controller down: it cancels pending timers, unsubscribes
// from the touch source and drops every host reference. Later calls return
// ErrClosed and callbacks still queued in the host become no-ops.
func (c *Controller) Close() error {
	if c.closed {
		return ErrClosed
	}
	c.closed = true
	if c.tapTimer != nil {
		c.tapTimer.Stop()
		c.tapTimer = nil
	}
	if c.graceTimer != nil {
		c.graceTimer.Stop()
		c.graceTimer = nil
	}
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.anim = nil
	c.observer = nil
	c.host = Host{}
	c.s.DoubleTapPending = false
	c.s.Animating = false
	c.log.Info("gesture: controller closed")
	return nil
}
