package gesture

// syntheticOffset is the companion point added next to a lone contact so the
// two-point solve applies uniformly. A single contact then resolves to a
// pure translation.
var syntheticOffset = Vec2{X: 1, Y: 1}

// PointPair holds the two points of a gesture correspondence.
type PointPair struct {
	P0, P1 Vec2
}

// SinglePoint returns the pair used for a single contact at p.
func SinglePoint(p Vec2) PointPair {
	return PointPair{P0: p, P1: p.Add(syntheticOffset)}
}

// Span returns P1 - P0.
func (pp PointPair) Span() Vec2 {
	return pp.P1.Sub(pp.P0)
}

// Resolve computes the incremental transform that maps src onto dst.
//
// With rotate set, the linear part is the unique similarity (rotation plus
// uniform scale) taking the source span onto the destination span. Without
// it, the linear part is a uniform scale by the ratio of span lengths and any
// implied rotation is discarded. The translation always maps src.P0 exactly
// onto dst.P0.
//
// A zero-length source span returns Identity and ErrDegenerateGesture.
func Resolve(src, dst PointPair, rotate bool) (Transform, error) {
	a := src.Span()
	b := dst.Span()

	n := a.Dot(a)
	if n == 0 || !isFinite(n) {
		return Identity(), ErrDegenerateGesture
	}

	var r Mat2
	if rotate {
		cos := a.Dot(b) / n
		sin := a.Wedge(b) / n
		r = Mat2{
			R0: Vec2{X: cos, Y: -sin},
			R1: Vec2{X: sin, Y: cos},
		}
	} else {
		r = UniformScale(b.Length() / a.Length())
	}

	t := Transform{A: r, B: dst.P0.Sub(r.Apply(src.P0))}
	if !t.IsFinite() {
		return Identity(), ErrDegenerateGesture
	}
	return t, nil
}
