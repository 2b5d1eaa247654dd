package coords

import (
	"errors"
	"math"
	"testing"
)

func TestComposeIdentity(t *testing.T) {
	matrices := []Matrix{
		Identity(),
		Translate(10, -3),
		Rotate(math.Pi / 3),
		Scale(2, 0.5),
		Rotate(0.2).Compose(Translate(5, 7)).Compose(Scale(3, 3)),
	}
	for _, m := range matrices {
		if got := m.Compose(Identity()); !got.ApproxEqual(m) {
			t.Errorf("m.Compose(I) = %v, want %v", got, m)
		}
		if got := Identity().Compose(m); !got.ApproxEqual(m) {
			t.Errorf("I.Compose(m) = %v, want %v", got, m)
		}
	}
}

func TestComposeOrder(t *testing.T) {
	// Compose(o) applies o first: the point goes through the translation,
	// then the rotation, so the origin ends up where a rotated (10, 0)
	// lands.
	m := Rotate(math.Pi / 2).Compose(Translate(10, 0))
	got := m.Apply(Point{0, 0})
	want := Rotate(math.Pi / 2).Apply(Point{10, 0})
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Fatalf("compose order wrong: got %v, want %v", got, want)
	}

	pre := Translate(10, 0).PreCompose(Rotate(math.Pi / 2))
	if !pre.ApproxEqual(m) {
		t.Fatalf("PreCompose mismatch: %v vs %v", pre, m)
	}
}

func TestInvertRoundTrip(t *testing.T) {
	matrices := []Matrix{
		Translate(3, 4),
		Rotate(1.1),
		Scale(2, 5),
		Translate(-2, 9).Compose(Rotate(0.4)).Compose(Scale(1.5, 0.25)),
		Shear(0.3),
	}
	for _, m := range matrices {
		inv, err := m.Invert()
		if err != nil {
			t.Fatalf("Invert(%v): %v", m, err)
		}
		if got := m.Compose(inv); !got.IsIdentity() {
			t.Errorf("m.Compose(m⁻¹) = %v, want identity", got)
		}
		if got := inv.Compose(m); !got.IsIdentity() {
			t.Errorf("m⁻¹.Compose(m) = %v, want identity", got)
		}
	}
}

func TestInvertSingular(t *testing.T) {
	m := Scale(0, 1)
	got, err := m.Invert()
	if !errors.Is(err, ErrSingular) {
		t.Fatalf("Invert(scale 0): err = %v, want ErrSingular", err)
	}
	if got != m {
		t.Fatalf("singular Invert returned %v, want receiver unchanged", got)
	}
}

func TestRotationAdditive(t *testing.T) {
	angles := []float64{0, 0.1, math.Pi / 2, -2.5, 3.7}
	for _, a := range angles {
		for _, b := range angles {
			got := Rotate(a).Compose(Rotate(b))
			if want := Rotate(a + b); !got.ApproxEqual(want) {
				t.Errorf("Rotate(%v)∘Rotate(%v) = %v, want Rotate(%v)", a, b, got, a+b)
			}
		}
	}
}

func TestAnchoredFixesAnchor(t *testing.T) {
	m := Rotate(0.7).Compose(Scale(2, 3))
	anchored := m.Anchored(40, 25)
	got := anchored.Apply(Point{40, 25})
	if math.Abs(got.X-40) > 1e-9 || math.Abs(got.Y-25) > 1e-9 {
		t.Fatalf("anchored transform moved its anchor: %v", got)
	}
	// Away from the anchor it must act like m shifted into anchor space.
	p := Point{50, 25}
	got = anchored.Apply(p)
	want := m.Apply(Point{p.X - 40, p.Y - 25})
	want.X += 40
	want.Y += 25
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
		t.Fatalf("anchored(%v) = %v, want %v", p, got, want)
	}
}

func TestMapRect(t *testing.T) {
	r := Rect{Top: 0, Left: 0, Bottom: 100, Right: 100}
	got := Translate(20, 30).MapRect(r)
	want := Rect{Top: 30, Left: 20, Bottom: 130, Right: 120}
	if got != want {
		t.Fatalf("MapRect translate = %+v, want %+v", got, want)
	}

	// Rotating a square 90° about its center leaves the box in place.
	got = Rotate(math.Pi/2).Anchored(50, 50).MapRect(r)
	for _, d := range []float64{got.Top - 0, got.Left - 0, got.Bottom - 100, got.Right - 100} {
		if math.Abs(d) > 1e-9 {
			t.Fatalf("MapRect rotate about center = %+v, want %+v", got, r)
		}
	}
}

func TestDeterminant(t *testing.T) {
	if got := Scale(2, 3).Determinant(); got != 6 {
		t.Fatalf("Determinant(scale 2,3) = %v, want 6", got)
	}
	if got := Rotate(1.234).Determinant(); math.Abs(got-1) > 1e-12 {
		t.Fatalf("Determinant(rotation) = %v, want 1", got)
	}
}
