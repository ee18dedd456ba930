package gesture

// detectDoubleTap runs on every single-contact touch start. The first start
// opens a window; a second start inside the window triggers a reset.
func (c *Controller) detectDoubleTap() {
	if c.s.DoubleTapPending {
		if c.tapTimer != nil {
			c.tapTimer.Stop()
			c.tapTimer = nil
		}
		c.s.DoubleTapPending = false
		c.tapSeq++
		c.log.Debug("gesture: double tap")
		c.reset(false)
		return
	}

	c.s.DoubleTapPending = true
	c.tapSeq++
	seq := c.tapSeq
	c.tapTimer = c.host.Timers.AfterFunc(c.cfg.DoubleTapWindow, func() {
		// A stale expiry can still arrive after the timer was stopped when
		// the host queues callbacks.
		if c.closed || seq != c.tapSeq {
			return
		}
		c.tapTimer = nil
		c.s.DoubleTapPending = false
	})
}
