// Package preview rasterizes a gesture transform the way a host would show
// it: the viewport as the canvas and the element's content, a gridded
// rectangle, drawn under the transform.
//
// Basic usage:
//
//	r, err := preview.New(element, viewport)
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//	r.Draw(c.Transform())
//	r.SavePNG("frame.png")
package preview

import (
	"errors"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/gesture"
)

// ErrEmptyViewport is returned by New for a viewport without pixels.
var ErrEmptyViewport = errors.New("preview: viewport has no area")

// Default colors.
var (
	DefaultBackground = gg.RGB(0.12, 0.12, 0.14)
	DefaultContent    = gg.RGB(0.25, 0.5, 0.85)
	DefaultGrid       = gg.RGB(0.9, 0.9, 0.95)
)

// DefaultGridStep is the spacing of grid lines in content units.
const DefaultGridStep = 50.0

// Option configures a Renderer.
type Option func(*Renderer)

// WithColors overrides the background and content fill colors.
func WithColors(background, content gg.RGBA) Option {
	return func(r *Renderer) {
		r.background = background
		r.content = content
	}
}

// WithGrid sets the grid line spacing and color. A step of zero disables
// the grid.
func WithGrid(step float64, col gg.RGBA) Option {
	return func(r *Renderer) {
		r.gridStep = step
		r.grid = col
	}
}

// Renderer draws frames for one element and viewport pair.
type Renderer struct {
	element  gesture.Rect
	viewport gesture.Rect
	dc       *gg.Context

	background, content, grid gg.RGBA
	gridStep                  float64
}

// New creates a renderer whose canvas covers the viewport, one pixel per
// page unit.
func New(element, viewport gesture.Rect, opts ...Option) (*Renderer, error) {
	w, h := int(math.Ceil(viewport.Width)), int(math.Ceil(viewport.Height))
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyViewport
	}
	r := &Renderer{
		element:    element,
		viewport:   viewport,
		background: DefaultBackground,
		content:    DefaultContent,
		grid:       DefaultGrid,
		gridStep:   DefaultGridStep,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.dc = gg.NewContext(w, h)
	return r, nil
}

// Matrix converts a gesture transform to a gg matrix.
func Matrix(t gesture.Transform) gg.Matrix {
	return gg.Matrix{
		A: t.A.R0.X, B: t.A.R0.Y, C: t.B.X,
		D: t.A.R1.X, E: t.A.R1.Y, F: t.B.Y,
	}
}

// Draw replaces the canvas with the element shown under t.
func (r *Renderer) Draw(t gesture.Transform) error {
	dc := r.dc
	dc.ClearWithColor(r.background)

	dc.Push()
	defer dc.Pop()

	// Page space to canvas space, then element-local space under t.
	dc.Translate(r.element.X-r.viewport.X, r.element.Y-r.viewport.Y)
	dc.Transform(Matrix(t))

	w, h := r.element.Width, r.element.Height
	dc.SetRGBA(r.content.R, r.content.G, r.content.B, r.content.A)
	dc.DrawRectangle(0, 0, w, h)
	if err := dc.Fill(); err != nil {
		return err
	}

	if r.gridStep > 0 {
		dc.SetRGBA(r.grid.R, r.grid.G, r.grid.B, r.grid.A)
		dc.SetLineWidth(1)
		for x := r.gridStep; x < w; x += r.gridStep {
			dc.DrawLine(x, 0, x, h)
		}
		for y := r.gridStep; y < h; y += r.gridStep {
			dc.DrawLine(0, y, w, y)
		}
		if err := dc.Stroke(); err != nil {
			return err
		}
	}

	dc.SetRGBA(r.grid.R, r.grid.G, r.grid.B, r.grid.A)
	dc.SetLineWidth(2)
	dc.DrawRectangle(0, 0, w, h)
	return dc.Stroke()
}

// Image returns a snapshot of the canvas.
func (r *Renderer) Image() image.Image { return r.dc.Image() }

// SavePNG writes the canvas to path.
func (r *Renderer) SavePNG(path string) error { return r.dc.SavePNG(path) }

// EncodePNG writes the canvas as PNG to w.
func (r *Renderer) EncodePNG(w io.Writer) error { return r.dc.EncodePNG(w) }

// Close releases the drawing context.
func (r *Renderer) Close() error { return r.dc.Close() }
