package gesture

import (
	"math"
	"math/rand"
	"testing"

	"golang.org/x/image/math/f64"
)

const algebraEpsilon = 1e-9

func randomTransform(r *rand.Rand) Transform {
	f := func() float64 { return r.Float64()*20 - 10 }
	return Transform{
		A: Mat2{R0: V2(f(), f()), R1: V2(f(), f())},
		B: V2(f(), f()),
	}
}

func TestComposeAssociative(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		a, b, c := randomTransform(r), randomTransform(r), randomTransform(r)
		left := a.Compose(b).Compose(c)
		right := a.Compose(b.Compose(c))
		// Components reach ~1e4, so compare with a relative tolerance.
		if !left.Approx(right, 1e-9*1e4) {
			t.Fatalf("(a∘b)∘c = %v, a∘(b∘c) = %v", left, right)
		}
	}
}

func TestComposeIdentityUnit(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		a := randomTransform(r)
		if got := a.Compose(Identity()); !got.Approx(a, algebraEpsilon) {
			t.Fatalf("a∘I = %v, want %v", got, a)
		}
		if got := Identity().Compose(a); !got.Approx(a, algebraEpsilon) {
			t.Fatalf("I∘a = %v, want %v", got, a)
		}
	}
}

func TestComposeOrder(t *testing.T) {
	scale := Transform{A: UniformScale(2)}
	shift := Translation(V2(10, 0))

	// shift after scale: (1,1) -> (2,2) -> (12,2)
	if got := shift.Compose(scale).Apply(V2(1, 1)); got != V2(12, 2) {
		t.Errorf("shift∘scale (1,1) = %v, want (12, 2)", got)
	}
	// scale after shift: (1,1) -> (11,1) -> (22,2)
	if got := scale.Compose(shift).Apply(V2(1, 1)); got != V2(22, 2) {
		t.Errorf("scale∘shift (1,1) = %v, want (22, 2)", got)
	}
}

func TestComposeMatchesApply(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		a, b := randomTransform(r), randomTransform(r)
		p := V2(r.Float64()*100, r.Float64()*100)
		got := a.Compose(b).Apply(p)
		want := a.Apply(b.Apply(p))
		if !got.Approx(want, 1e-6) {
			t.Fatalf("Compose().Apply(%v) = %v, want %v", p, got, want)
		}
	}
}

func TestInterpolateEndpoints(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for i := 0; i < 100; i++ {
		z, id := randomTransform(r), randomTransform(r)
		if got := Interpolate(z, id, 0); got != z {
			t.Fatalf("Interpolate(z, i, 0) = %v, want %v", got, z)
		}
		if got := Interpolate(z, id, 1); got != id {
			t.Fatalf("Interpolate(z, i, 1) = %v, want %v", got, id)
		}
	}
}

func TestInterpolateMidpoint(t *testing.T) {
	z := Transform{A: UniformScale(3), B: V2(10, -10)}
	got := Interpolate(z, Identity(), 0.5)
	want := Transform{A: UniformScale(2), B: V2(5, -5)}
	if !got.Approx(want, algebraEpsilon) {
		t.Errorf("Interpolate(z, I, 0.5) = %v, want %v", got, want)
	}
}

func TestInterpolateIsLinearNotPolar(t *testing.T) {
	quarter := Transform{A: Mat2{R0: V2(0, -1), R1: V2(1, 0)}}
	mid := Interpolate(Identity(), quarter, 0.5)
	// A pure rotation has determinant 1; the linear blend shrinks it.
	if det := mid.A.Det(); math.Abs(det-0.5) > algebraEpsilon {
		t.Errorf("midpoint determinant = %v, want 0.5", det)
	}
}

func TestIsRest(t *testing.T) {
	tests := []struct {
		name string
		t    Transform
		want bool
	}{
		{"identity", Identity(), true},
		{"translated", Translation(V2(40, -3)), true},
		{"near identity", Transform{A: Mat2{R0: V2(1+1e-8, 0), R1: V2(0, 1)}}, true},
		{"scaled", Transform{A: UniformScale(1.5)}, false},
		{"rotated", Transform{A: Mat2{R0: V2(0, -1), R1: V2(1, 0)}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.t.IsRest(); got != tt.want {
				t.Errorf("IsRest() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAff3RoundTrip(t *testing.T) {
	tr := Transform{A: Mat2{R0: V2(1, 2), R1: V2(3, 4)}, B: V2(5, 6)}
	want := f64.Aff3{1, 2, 5, 3, 4, 6}
	if got := tr.Aff3(); got != want {
		t.Errorf("Aff3() = %v, want %v", got, want)
	}
	if got := FromAff3(want); got != tr {
		t.Errorf("FromAff3() = %v, want %v", got, tr)
	}
}

func TestTransformString(t *testing.T) {
	tr := Transform{A: Mat2{R0: V2(1, 2), R1: V2(3, 4)}, B: V2(5, 6)}
	want := "matrix(1, 3, 2, 4, 5, 6)"
	if got := tr.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
