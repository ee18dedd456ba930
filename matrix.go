package gesture

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Mat2 is a 2x2 linear map stored as two rows:
//
//	| R0.X  R0.Y |
//	| R1.X  R1.Y |
type Mat2 struct {
	R0, R1 Vec2
}

// Identity2 returns the 2x2 identity matrix.
func Identity2() Mat2 {
	return Mat2{R0: Vec2{X: 1}, R1: Vec2{Y: 1}}
}

// UniformScale returns s times the identity matrix.
func UniformScale(s float64) Mat2 {
	return Mat2{R0: Vec2{X: s}, R1: Vec2{Y: s}}
}

// Apply multiplies the matrix by a column vector.
func (m Mat2) Apply(v Vec2) Vec2 {
	return Vec2{X: m.R0.Dot(v), Y: m.R1.Dot(v)}
}

// Multiply returns the matrix product m * n.
func (m Mat2) Multiply(n Mat2) Mat2 {
	return Mat2{
		R0: Vec2{
			X: m.R0.X*n.R0.X + m.R0.Y*n.R1.X,
			Y: m.R0.X*n.R0.Y + m.R0.Y*n.R1.Y,
		},
		R1: Vec2{
			X: m.R1.X*n.R0.X + m.R1.Y*n.R1.X,
			Y: m.R1.X*n.R0.Y + m.R1.Y*n.R1.Y,
		},
	}
}

// Mul returns the matrix with every component scaled by s.
func (m Mat2) Mul(s float64) Mat2 {
	return Mat2{R0: m.R0.Mul(s), R1: m.R1.Mul(s)}
}

// Add returns the component-wise sum of two matrices.
func (m Mat2) Add(n Mat2) Mat2 {
	return Mat2{R0: m.R0.Add(n.R0), R1: m.R1.Add(n.R1)}
}

// ScaleX returns the first diagonal component.
func (m Mat2) ScaleX() float64 { return m.R0.X }

// ScaleY returns the second diagonal component.
func (m Mat2) ScaleY() float64 { return m.R1.Y }

// Det returns the determinant.
func (m Mat2) Det() float64 {
	return m.R0.X*m.R1.Y - m.R0.Y*m.R1.X
}

// IsFinite reports whether every component is finite.
func (m Mat2) IsFinite() bool {
	return m.R0.IsFinite() && m.R1.IsFinite()
}

// Approx reports whether every component of m is within tol of n.
func (m Mat2) Approx(n Mat2, tol float64) bool {
	return scalar.EqualWithinAbs(m.R0.X, n.R0.X, tol) &&
		scalar.EqualWithinAbs(m.R0.Y, n.R0.Y, tol) &&
		scalar.EqualWithinAbs(m.R1.X, n.R1.X, tol) &&
		scalar.EqualWithinAbs(m.R1.Y, n.R1.Y, tol)
}

// MaxAbsDiagonal returns the larger magnitude of the two diagonal components.
func (m Mat2) MaxAbsDiagonal() float64 {
	return math.Max(math.Abs(m.R0.X), math.Abs(m.R1.Y))
}
