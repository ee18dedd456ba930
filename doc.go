// Package gesture turns multi-touch input on an element into a 2D affine
// transform: pinch-zoom, pan, rotate, double-tap-to-zoom, scale limits,
// boundary clamping and an animated return to a resting transform.
//
// # Overview
//
// A Controller consumes touch events and reports the transform to display
// through an observer callback. It never touches the screen itself: element
// geometry, viewport size, frame scheduling and timers are capabilities the
// host provides through Host.
//
//	clock := virtual.New()
//	c, err := gesture.NewController(gesture.Host{
//	    Element:  gesture.StaticRect{Width: 400, Height: 300},
//	    Viewport: gesture.StaticRect{Width: 400, Height: 300},
//	    Frames:   clock,
//	    Timers:   clock,
//	}, gesture.DefaultConfig(), gesture.WithObserver(render))
//
//	_ = c.HandleTouch(gesture.TouchEvent{
//	    Kind:     gesture.TouchStart,
//	    Contacts: []gesture.Contact{{X: 120, Y: 80}},
//	})
//
// # Gesture model
//
// Only the number of active contacts is tracked. Whenever the count changes
// the displayed transform is committed and the current points become the new
// baseline. While the count stays the same, the baseline and current points
// are resolved into an incremental similarity transform which is composed
// onto the committed one, constrained, and displayed. A single contact is
// paired with a synthetic point one unit away on both axes, so dragging
// resolves to a pure translation.
//
// # Coordinate System
//
// Transforms act in element-local coordinates: the origin is the top-left
// corner of the element's untransformed layout box, X grows right and Y
// grows down. Touch coordinates are page coordinates and are shifted by the
// element origin before use.
//
// # Threading
//
// A Controller must be confined to one goroutine together with the host
// callbacks it schedules. Package loop provides such a host for real time;
// package virtual provides a deterministic clock for tests and replays.
package gesture
