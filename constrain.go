package gesture

import "math"

// ScaleVerdict is the outcome of checking a proposed transform's scale.
type ScaleVerdict uint8

const (
	// ScaleAccept means the proposal is within the configured bounds.
	ScaleAccept ScaleVerdict = iota
	// ScaleBelowMin means both diagonal components are at or below
	// MinScale. The proposal is rejected and a snap-back follows.
	ScaleBelowMin
	// ScaleAboveMax means both diagonal components exceed MaxScale. The
	// proposal is rejected without a reset.
	ScaleAboveMax
)

// String returns the verdict name.
func (v ScaleVerdict) String() string {
	switch v {
	case ScaleAccept:
		return "accept"
	case ScaleBelowMin:
		return "below-min"
	case ScaleAboveMax:
		return "above-max"
	default:
		return "unknown"
	}
}

// CheckScale classifies t against MinScale and MaxScale. The minimum is
// checked first.
func (c Config) CheckScale(t Transform) ScaleVerdict {
	sx, sy := t.A.ScaleX(), t.A.ScaleY()
	if c.MinScale != nil && sx <= *c.MinScale && sy <= *c.MinScale {
		return ScaleBelowMin
	}
	if c.MaxScale != nil && sx > *c.MaxScale && sy > *c.MaxScale {
		return ScaleAboveMax
	}
	return ScaleAccept
}

// PinScale shrinks the linear part of t so that neither diagonal component
// exceeds ceiling, and moves the translation so that the point t mapped onto
// anchor still maps onto anchor. Transforms already within the ceiling are
// returned unchanged.
func PinScale(t Transform, ceiling float64, anchor Vec2) Transform {
	m := t.A.MaxAbsDiagonal()
	if m <= ceiling || m == 0 {
		return t
	}
	k := ceiling / m
	return Transform{
		A: t.A.Mul(k),
		B: anchor.Mul(1 - k).Add(t.B.Mul(k)),
	}
}

// Orientation describes the aspect of a viewport.
type Orientation uint8

const (
	Landscape Orientation = iota
	Portrait
)

// String returns the orientation name.
func (o Orientation) String() string {
	if o == Portrait {
		return "portrait"
	}
	return "landscape"
}

// OrientationOf returns Portrait when r is taller than it is wide.
func OrientationOf(r Rect) Orientation {
	if r.Height > r.Width {
		return Portrait
	}
	return Landscape
}

// ClampBounds adjusts the translation of t so that the transformed content
// never reveals empty viewport space past its own edges. Content and
// viewport are given in the same element-local coordinate space.
//
// Each axis is handled independently on the bounding box of the transformed
// content: when the content is at least as large as the viewport it is
// pushed back against the nearer edge; when it is smaller it is centered.
// The linear part of t is never modified.
func ClampBounds(t Transform, content, viewport Rect) Transform {
	lo, hi := transformedBounds(t, content)
	dx := clampAxis(lo.X, hi.X, viewport.X, viewport.X+viewport.Width)
	dy := clampAxis(lo.Y, hi.Y, viewport.Y, viewport.Y+viewport.Height)
	t.B = t.B.Add(Vec2{X: dx, Y: dy})
	return t
}

// transformedBounds returns the axis-aligned bounding box of r under t.
func transformedBounds(t Transform, r Rect) (lo, hi Vec2) {
	corners := [4]Vec2{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X, Y: r.Y + r.Height},
		{X: r.X + r.Width, Y: r.Y + r.Height},
	}
	lo = Vec2{X: math.Inf(1), Y: math.Inf(1)}
	hi = Vec2{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, c := range corners {
		p := t.Apply(c)
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return lo, hi
}

// clampAxis returns the shift that keeps [lo, hi] covering [vlo, vhi], or
// centers it when it is too short to cover.
func clampAxis(lo, hi, vlo, vhi float64) float64 {
	if hi-lo < vhi-vlo {
		return (vlo+vhi)/2 - (lo+hi)/2
	}
	switch {
	case lo > vlo:
		return vlo - lo
	case hi < vhi:
		return vhi - hi
	}
	return 0
}

// zoomTarget returns the uniform scale by s that maps the content center
// onto the viewport center.
func zoomTarget(s float64, content, viewport Rect) Transform {
	a := UniformScale(s)
	return Transform{A: a, B: viewport.Center().Sub(a.Apply(content.Center()))}
}

// localRect converts a page rectangle into coordinates relative to origin.
func localRect(r Rect, origin Vec2) Rect {
	return Rect{X: r.X - origin.X, Y: r.Y - origin.Y, Width: r.Width, Height: r.Height}
}
