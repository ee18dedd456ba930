package gesture

import (
	"fmt"

	"golang.org/x/image/math/f64"
)

// restTolerance is the per-component tolerance used to decide whether a
// linear part is close enough to the identity to count as "at rest".
const restTolerance = 1e-6

// Transform is a 2D affine transformation mapping p to A·p + B.
//
// Coordinates are element-local: the origin is the top-left corner of the
// element's untransformed layout box.
type Transform struct {
	A Mat2
	B Vec2
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{A: Identity2()}
}

// Translation returns a pure translation by v.
func Translation(v Vec2) Transform {
	return Transform{A: Identity2(), B: v}
}

// Apply maps a point through the transform.
func (t Transform) Apply(p Vec2) Vec2 {
	return t.A.Apply(p).Add(t.B)
}

// Compose returns the transform that applies u first and then t,
// so that t.Compose(u).Apply(x) == t.Apply(u.Apply(x)).
func (t Transform) Compose(u Transform) Transform {
	return Transform{
		A: t.A.Multiply(u.A),
		B: t.A.Apply(u.B).Add(t.B),
	}
}

// Interpolate blends z and i component-wise as (1-p)·z + p·i.
//
// The blend is linear, not polar: frames between two differently rotated
// transforms are not pure rotations. Interpolate(z, i, 0) is z and
// Interpolate(z, i, 1) is i exactly.
func Interpolate(z, i Transform, p float64) Transform {
	switch {
	case p == 0:
		return z
	case p == 1:
		return i
	}
	q := 1 - p
	return Transform{
		A: z.A.Mul(q).Add(i.A.Mul(p)),
		B: z.B.Mul(q).Add(i.B.Mul(p)),
	}
}

// IsFinite reports whether every component of the transform is finite.
func (t Transform) IsFinite() bool {
	return t.A.IsFinite() && t.B.IsFinite()
}

// IsRest reports whether the linear part is the identity within tolerance,
// regardless of translation.
func (t Transform) IsRest() bool {
	return t.A.Approx(Identity2(), restTolerance)
}

// Approx reports whether every component of t is within tol of u.
func (t Transform) Approx(u Transform, tol float64) bool {
	return t.A.Approx(u.A, tol) && t.B.Approx(u.B, tol)
}

// Aff3 converts the transform to the row-major layout used by
// golang.org/x/image/math/f64: x' = m[0]*x + m[1]*y + m[2].
func (t Transform) Aff3() f64.Aff3 {
	return f64.Aff3{
		t.A.R0.X, t.A.R0.Y, t.B.X,
		t.A.R1.X, t.A.R1.Y, t.B.Y,
	}
}

// FromAff3 converts an f64.Aff3 into a Transform.
func FromAff3(m f64.Aff3) Transform {
	return Transform{
		A: Mat2{R0: Vec2{X: m[0], Y: m[1]}, R1: Vec2{X: m[3], Y: m[4]}},
		B: Vec2{X: m[2], Y: m[5]},
	}
}

// String formats the transform in the CSS matrix(a, b, c, d, e, f) argument
// order, which is column-major.
func (t Transform) String() string {
	return fmt.Sprintf("matrix(%g, %g, %g, %g, %g, %g)",
		t.A.R0.X, t.A.R1.X, t.A.R0.Y, t.A.R1.Y, t.B.X, t.B.Y)
}
