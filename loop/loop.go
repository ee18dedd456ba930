// Package loop provides a real-time gesture host that confines a
// Controller to a single goroutine.
//
// Touch events, timer expiries and display frames arriving from any
// goroutine are queued and executed one at a time, in arrival order, on the
// goroutine running Run. Code that touches a Controller must itself be
// submitted with Post or Do.
package loop

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gogpu/gesture"
)

var (
	// ErrStopped is returned when work is submitted to a loop that has
	// stopped running.
	ErrStopped = errors.New("loop: stopped")

	// ErrRunning is returned by Run when the loop is already running.
	ErrRunning = errors.New("loop: already running")
)

// DefaultFrameInterval approximates a 60 Hz display.
const DefaultFrameInterval = time.Second / 60

const defaultQueueSize = 256

// Option configures a Loop.
type Option func(*Loop)

// WithFrameInterval sets the display frame period.
func WithFrameInterval(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.interval = d
		}
	}
}

// WithQueueSize sets how many tasks may wait before Post blocks.
func WithQueueSize(n int) Option {
	return func(l *Loop) {
		if n > 0 {
			l.queueSize = n
		}
	}
}

// Loop is a serial executor with a frame clock. It implements
// gesture.FrameScheduler and gesture.TimerService.
//
// Thread safety: Post, Do, ScheduleFrame and AfterFunc are safe for
// concurrent use. Submitted functions never run concurrently.
type Loop struct {
	interval  time.Duration
	queueSize int

	// tasks holds work waiting for the loop goroutine.
	tasks chan func()

	// done is closed when Run returns.
	done     chan struct{}
	stopOnce sync.Once

	running atomic.Bool
	epoch   time.Time

	mu     sync.Mutex
	frames []func(time.Duration)
}

// New creates a loop. Work may be posted before Run starts; it runs once
// the loop does.
func New(opts ...Option) *Loop {
	l := &Loop{
		interval:  DefaultFrameInterval,
		queueSize: defaultQueueSize,
		done:      make(chan struct{}),
		epoch:     time.Now(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.tasks = make(chan func(), l.queueSize)
	return l
}

// Run executes queued work and frame callbacks until ctx is cancelled.
// It returns ctx.Err(). A loop can run only once.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer l.stop()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case work := <-l.tasks:
			if work != nil {
				work()
			}
		case now := <-ticker.C:
			l.runFrames(now)
		}
	}
}

func (l *Loop) stop() {
	l.stopOnce.Do(func() { close(l.done) })
}

// Done is closed once Run has returned.
func (l *Loop) Done() <-chan struct{} { return l.done }

// Post queues f to run on the loop goroutine. It blocks while the queue is
// full and returns ErrStopped once the loop has stopped.
func (l *Loop) Post(f func()) error {
	select {
	case <-l.done:
		return ErrStopped
	default:
	}
	select {
	case l.tasks <- f:
		return nil
	case <-l.done:
		return ErrStopped
	}
}

// Do runs f on the loop goroutine and waits for it to return.
func (l *Loop) Do(ctx context.Context, f func()) error {
	finished := make(chan struct{})
	if err := l.Post(func() {
		defer close(finished)
		f()
	}); err != nil {
		return err
	}
	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-l.done:
		return ErrStopped
	}
}

// ScheduleFrame implements gesture.FrameScheduler. The callback runs on the
// next tick with the time elapsed since the loop was created.
func (l *Loop) ScheduleFrame(f func(ts time.Duration)) {
	l.mu.Lock()
	l.frames = append(l.frames, f)
	l.mu.Unlock()
}

func (l *Loop) runFrames(now time.Time) {
	l.mu.Lock()
	frames := l.frames
	l.frames = nil
	l.mu.Unlock()

	ts := now.Sub(l.epoch)
	for _, f := range frames {
		f(ts)
	}
}

// AfterFunc implements gesture.TimerService. The callback is posted to the
// loop when the timer fires; it is dropped if the loop has stopped.
func (l *Loop) AfterFunc(d time.Duration, f func()) gesture.Timer {
	return timer{t: time.AfterFunc(d, func() { _ = l.Post(f) })}
}

type timer struct {
	t *time.Timer
}

// Stop implements gesture.Timer. An expiry that was already queued still
// runs; callers that care must check for staleness themselves.
func (t timer) Stop() bool { return t.t.Stop() }
