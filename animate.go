package gesture

import "time"

// animation is an in-flight interpolation from one transform to another.
type animation struct {
	from, to Transform
	start    time.Duration
	started  bool
}

// Reset returns the element to a resting transform.
//
// The target is the identity, except when MaxScale is configured, the
// active transform is at rest and forceIdentity is false: the target is
// then a MaxScale zoom centered on the viewport (double-tap-to-zoom).
// The reset animates over the configured duration when the host has a
// frame scheduler and applies instantly otherwise. Calling Reset while an
// animation is running has no effect.
func (c *Controller) Reset(forceIdentity bool) error {
	if c.closed {
		return ErrClosed
	}
	c.reset(forceIdentity)
	return nil
}

// Animating reports whether a reset animation or its grace period is in
// progress. Touch events are ignored while it returns true.
func (c *Controller) Animating() bool { return c.s.Animating }

func (c *Controller) reset(forceIdentity bool) {
	if c.s.Animating {
		return
	}
	c.finalize()
	target := c.restingTarget(forceIdentity)
	c.log.Info("gesture: reset", "forceIdentity", forceIdentity, "target", target)

	if c.host.Frames == nil {
		c.s.Active = target
		c.setPreview(target)
		c.stale = true
		return
	}

	c.s.Animating = true
	c.anim = &animation{from: c.s.Active, to: target}
	c.host.Frames.ScheduleFrame(c.frame)
}

// restingTarget selects the transform a reset animates towards.
func (c *Controller) restingTarget(forceIdentity bool) Transform {
	if forceIdentity || c.cfg.MaxScale == nil || !c.s.Active.IsRest() {
		return Identity()
	}
	el := c.host.Element.Bounds()
	content := Rect{Width: el.Width, Height: el.Height}
	vp := localRect(c.host.Viewport.Viewport(), el.Origin())
	t := zoomTarget(*c.cfg.MaxScale, content, vp)
	if c.cfg.Boundaries {
		t = ClampBounds(t, content, vp)
	}
	return t
}

// frame advances the running animation. The first frame fixes the start
// time, so progress is measured from when the animation is first drawn.
func (c *Controller) frame(ts time.Duration) {
	a := c.anim
	if c.closed || a == nil {
		return
	}
	if !a.started {
		a.start = ts
		a.started = true
	}

	progress := float64(ts-a.start) / float64(c.cfg.AnimationDuration)
	if progress < 1 {
		c.setPreview(Interpolate(a.from, a.to, progress))
		c.host.Frames.ScheduleFrame(c.frame)
		return
	}

	c.anim = nil
	c.s.Active = a.to
	c.setPreview(a.to)
	c.stale = true

	// Touch events arriving alongside the final frame are still ignored
	// until the grace period ends.
	c.graceTimer = c.host.Timers.AfterFunc(c.cfg.GracePeriod, func() {
		if c.closed {
			return
		}
		c.graceTimer = nil
		c.s.Animating = false
	})
}
