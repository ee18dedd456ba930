package loop

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/gesture"
)

func startLoop(t *testing.T, opts ...Option) *Loop {
	t.Helper()
	l := New(opts...)
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- l.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-errc:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(5 * time.Second):
			t.Error("loop did not stop")
		}
	})
	return l
}

func TestLoop_PostOrder(t *testing.T) {
	l := startLoop(t)

	var got []int
	for i := range 100 {
		require.NoError(t, l.Post(func() { got = append(got, i) }))
	}
	require.NoError(t, l.Do(context.Background(), func() {}))

	want := make([]int, 100)
	for i := range want {
		want[i] = i
	}
	assert.Equal(t, want, got)
}

func TestLoop_RunTwice(t *testing.T) {
	l := startLoop(t)
	require.NoError(t, l.Do(context.Background(), func() {}))
	assert.ErrorIs(t, l.Run(context.Background()), ErrRunning)
}

func TestLoop_PostAfterStop(t *testing.T) {
	l := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, l.Run(ctx), context.Canceled)
	<-l.Done()

	assert.ErrorIs(t, l.Post(func() {}), ErrStopped)
	assert.ErrorIs(t, l.Do(context.Background(), func() {}), ErrStopped)
}

func TestLoop_FrameAndTimerRunOnLoop(t *testing.T) {
	l := startLoop(t, WithFrameInterval(time.Millisecond))

	var mu sync.Mutex
	var events []string
	record := func(s string) {
		mu.Lock()
		events = append(events, s)
		mu.Unlock()
	}

	require.NoError(t, l.Post(func() {
		l.ScheduleFrame(func(ts time.Duration) {
			record("frame")
			assert.Positive(t, ts)
		})
		l.AfterFunc(2*time.Millisecond, func() { record("timer") })
	}))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(events) == 2
	}, 2*time.Second, time.Millisecond)
	assert.ElementsMatch(t, []string{"frame", "timer"}, events)
}

func TestLoop_TimerStop(t *testing.T) {
	l := startLoop(t)
	fired := make(chan struct{}, 1)
	tm := l.AfterFunc(50*time.Millisecond, func() { fired <- struct{}{} })
	require.True(t, tm.Stop())

	select {
	case <-fired:
		t.Fatal("stopped timer fired")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSource_DeliversToController(t *testing.T) {
	l := startLoop(t, WithFrameInterval(time.Millisecond))
	src := l.NewSource()

	var (
		mu      sync.Mutex
		last    gesture.Transform
		changes int
	)
	var (
		c    *gesture.Controller
		nerr error
	)
	cfg := gesture.DefaultConfig()
	cfg.AnimationDuration = 20 * time.Millisecond
	cfg.GracePeriod = time.Millisecond

	require.NoError(t, l.Do(context.Background(), func() {
		c, nerr = gesture.NewController(gesture.Host{
			Element:  gesture.StaticRect{Width: 200, Height: 100},
			Viewport: gesture.StaticRect{Width: 200, Height: 100},
			Frames:   l,
			Timers:   l,
			Touches:  src,
		}, cfg, gesture.WithObserver(func(tr gesture.Transform) {
			mu.Lock()
			last = tr
			changes++
			mu.Unlock()
		}))
	}))
	require.NoError(t, nerr)
	assert.Equal(t, 1, src.Subscribers())

	contact := []gesture.Contact{{X: 10, Y: 10}}
	require.NoError(t, src.Dispatch(gesture.TouchEvent{Kind: gesture.TouchStart, Contacts: contact}))
	contact[0] = gesture.Contact{X: 40, Y: 30}
	require.NoError(t, src.Dispatch(gesture.TouchEvent{Kind: gesture.TouchMove, Contacts: contact}))
	require.NoError(t, src.Dispatch(gesture.TouchEvent{Kind: gesture.TouchEnd}))

	var tr gesture.Transform
	require.NoError(t, l.Do(context.Background(), func() { tr = c.Transform() }))
	assert.True(t, tr.Approx(gesture.Translation(gesture.V2(30, 20)), 1e-9), "got %v", tr)

	// Double tap: resets back to identity through the animation.
	require.NoError(t, src.Dispatch(gesture.TouchEvent{Kind: gesture.TouchStart, Contacts: contact}))
	require.NoError(t, src.Dispatch(gesture.TouchEvent{Kind: gesture.TouchEnd}))
	require.NoError(t, src.Dispatch(gesture.TouchEvent{Kind: gesture.TouchStart, Contacts: contact}))

	require.Eventually(t, func() bool {
		var done bool
		_ = l.Do(context.Background(), func() {
			done = !c.Animating() && c.Transform() == gesture.Identity()
		})
		return done
	}, 2*time.Second, 2*time.Millisecond)

	mu.Lock()
	assert.Equal(t, gesture.Identity(), last)
	assert.Greater(t, changes, 1)
	mu.Unlock()

	var cerr error
	require.NoError(t, l.Do(context.Background(), func() { cerr = c.Close() }))
	require.NoError(t, cerr)
	assert.Equal(t, 0, src.Subscribers())
}
