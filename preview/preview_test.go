package preview

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/gesture"
)

func near(a, b gg.RGBA) bool {
	const tol = 0.02
	return math.Abs(a.R-b.R) < tol && math.Abs(a.G-b.G) < tol &&
		math.Abs(a.B-b.B) < tol && math.Abs(a.A-b.A) < tol
}

func pixel(r *Renderer, x, y int) gg.RGBA {
	return gg.FromColor(r.Image().At(x, y))
}

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	el := gesture.Rect{X: 10, Y: 10, Width: 100, Height: 100}
	vp := gesture.Rect{X: 10, Y: 10, Width: 200, Height: 200}
	r, err := New(el, vp, WithGrid(0, DefaultGrid))
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestMatrix(t *testing.T) {
	tr := gesture.Transform{
		A: gesture.Mat2{R0: gesture.V2(1, 2), R1: gesture.V2(3, 4)},
		B: gesture.V2(5, 6),
	}
	assert.Equal(t, gg.Matrix{A: 1, B: 2, C: 5, D: 3, E: 4, F: 6}, Matrix(tr))
	assert.Equal(t, gg.Identity(), Matrix(gesture.Identity()))
}

func TestNewEmptyViewport(t *testing.T) {
	_, err := New(gesture.Rect{Width: 10, Height: 10}, gesture.Rect{Width: 0, Height: 10})
	require.ErrorIs(t, err, ErrEmptyViewport)
}

func TestDrawPlacesContent(t *testing.T) {
	tests := []struct {
		name       string
		t          gesture.Transform
		inside     [][2]int
		background [][2]int
	}{
		{
			name:       "identity",
			t:          gesture.Identity(),
			inside:     [][2]int{{50, 50}},
			background: [][2]int{{150, 150}, {150, 50}},
		},
		{
			name:       "translated",
			t:          gesture.Translation(gesture.V2(100, 100)),
			inside:     [][2]int{{150, 150}},
			background: [][2]int{{50, 50}},
		},
		{
			name:       "zoomed",
			t:          gesture.Transform{A: gesture.UniformScale(2)},
			inside:     [][2]int{{50, 50}, {150, 150}},
			background: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRenderer(t)
			require.NoError(t, r.Draw(tt.t))
			for _, p := range tt.inside {
				got := pixel(r, p[0], p[1])
				assert.True(t, near(got, DefaultContent), "pixel %v = %+v, want content", p, got)
			}
			for _, p := range tt.background {
				got := pixel(r, p[0], p[1])
				assert.True(t, near(got, DefaultBackground), "pixel %v = %+v, want background", p, got)
			}
		})
	}
}

func TestDrawReplacesPreviousFrame(t *testing.T) {
	r := newRenderer(t)
	require.NoError(t, r.Draw(gesture.Transform{A: gesture.UniformScale(2)}))
	require.NoError(t, r.Draw(gesture.Identity()))
	assert.True(t, near(pixel(r, 150, 150), DefaultBackground))
}

func TestEncodePNG(t *testing.T) {
	r := newRenderer(t)
	require.NoError(t, r.Draw(gesture.Identity()))

	var buf bytes.Buffer
	require.NoError(t, r.EncodePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())
}
