package gesture

import "time"

// Rect is an axis-aligned rectangle in page coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Origin returns the top-left corner.
func (r Rect) Origin() Vec2 { return Vec2{X: r.X, Y: r.Y} }

// Size returns the width and height as a vector.
func (r Rect) Size() Vec2 { return Vec2{X: r.Width, Y: r.Height} }

// Center returns the center point.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// ElementGeometry reports the layout box of the manipulated element: its
// page offset and its untransformed size.
type ElementGeometry interface {
	Bounds() Rect
}

// ViewportProvider reports the visible viewport in page coordinates.
type ViewportProvider interface {
	Viewport() Rect
}

// FrameScheduler runs a callback on the next display frame. The callback
// receives a monotonic timestamp.
type FrameScheduler interface {
	ScheduleFrame(func(ts time.Duration))
}

// Timer is a pending one-shot callback.
type Timer interface {
	// Stop cancels the timer. It returns false if the timer already fired
	// or was stopped.
	Stop() bool
}

// TimerService schedules one-shot callbacks.
type TimerService interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// TouchSource delivers touch events. Subscribe returns a function that
// removes the subscription.
type TouchSource interface {
	Subscribe(func(TouchEvent)) (unsubscribe func())
}

// Host bundles the capabilities a Controller consumes from its environment.
//
// Element and Timers are required. Viewport is required when boundary
// clamping or a maximum scale is configured. Frames is optional: without it
// resets apply instantly. Touches is optional: without it the caller feeds
// events through Controller.HandleTouch.
type Host struct {
	Element  ElementGeometry
	Viewport ViewportProvider
	Frames   FrameScheduler
	Timers   TimerService
	Touches  TouchSource
}

// ElementFunc adapts a function to ElementGeometry.
type ElementFunc func() Rect

// Bounds implements ElementGeometry.
func (f ElementFunc) Bounds() Rect { return f() }

// ViewportFunc adapts a function to ViewportProvider.
type ViewportFunc func() Rect

// Viewport implements ViewportProvider.
func (f ViewportFunc) Viewport() Rect { return f() }

// StaticRect is an ElementGeometry and ViewportProvider with fixed bounds.
type StaticRect Rect

// Bounds implements ElementGeometry.
func (r StaticRect) Bounds() Rect { return Rect(r) }

// Viewport implements ViewportProvider.
func (r StaticRect) Viewport() Rect { return Rect(r) }
