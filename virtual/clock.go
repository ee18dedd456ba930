// Package virtual provides a deterministic clock that implements the frame
// scheduling and timer capabilities of a gesture host.
//
// Nothing happens on its own: callbacks run only inside Advance, in
// timestamp order, on the caller's goroutine. This makes every animation and
// double-tap window reproducible in tests and replays.
package virtual

import (
	"container/heap"
	"time"

	"github.com/gogpu/gesture"
)

// DefaultFrameInterval approximates a 60 Hz display.
const DefaultFrameInterval = 16 * time.Millisecond

// Option configures a Clock.
type Option func(*Clock)

// WithFrameInterval sets the spacing between display frames.
func WithFrameInterval(d time.Duration) Option {
	return func(c *Clock) {
		if d > 0 {
			c.interval = d
		}
	}
}

// Clock is a manually advanced clock. It is not safe for concurrent use.
type Clock struct {
	now      time.Duration
	interval time.Duration
	seq      uint64
	queue    entryQueue
}

// New returns a clock at time zero.
func New(opts ...Option) *Clock {
	c := &Clock{interval: DefaultFrameInterval}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Now returns the current virtual time.
func (c *Clock) Now() time.Duration { return c.now }

// FrameInterval returns the spacing between frames.
func (c *Clock) FrameInterval() time.Duration { return c.interval }

// Pending returns the number of scheduled, unstopped callbacks.
func (c *Clock) Pending() int {
	n := 0
	for _, e := range c.queue {
		if !e.stopped {
			n++
		}
	}
	return n
}

// ScheduleFrame implements gesture.FrameScheduler. The callback runs at the
// next frame boundary strictly after the current time.
func (c *Clock) ScheduleFrame(f func(ts time.Duration)) {
	at := (c.now/c.interval + 1) * c.interval
	c.push(&entry{at: at, frame: f})
}

// AfterFunc implements gesture.TimerService.
func (c *Clock) AfterFunc(d time.Duration, f func()) gesture.Timer {
	if d < 0 {
		d = 0
	}
	e := &entry{at: c.now + d, fn: f}
	c.push(e)
	return e
}

// Advance moves time forward by d, running every callback that falls due
// on the way. Callbacks scheduled while advancing run too if they fall due
// before the end.
func (c *Clock) Advance(d time.Duration) {
	c.AdvanceTo(c.now + d)
}

// AdvanceTo moves time forward to t. Moving backwards is a no-op.
func (c *Clock) AdvanceTo(t time.Duration) {
	for len(c.queue) > 0 && c.queue[0].at <= t {
		e := heap.Pop(&c.queue).(*entry)
		if e.stopped {
			continue
		}
		c.now = e.at
		e.fired = true
		if e.frame != nil {
			e.frame(e.at)
		} else {
			e.fn()
		}
	}
	if t > c.now {
		c.now = t
	}
}

func (c *Clock) push(e *entry) {
	c.seq++
	e.seq = c.seq
	heap.Push(&c.queue, e)
}

// entry is one scheduled callback. It doubles as the gesture.Timer handle.
type entry struct {
	at      time.Duration
	seq     uint64
	fn      func()
	frame   func(time.Duration)
	stopped bool
	fired   bool
}

// Stop implements gesture.Timer.
func (e *entry) Stop() bool {
	if e.stopped || e.fired {
		return false
	}
	e.stopped = true
	return true
}

// entryQueue orders entries by due time, then by scheduling order.
type entryQueue []*entry

func (q entryQueue) Len() int { return len(q) }
func (q entryQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}
func (q entryQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *entryQueue) Push(x any)   { *q = append(*q, x.(*entry)) }
func (q *entryQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return e
}
