package host

import (
	"math"
	"testing"

	"github.com/pagescript/pagescript/coords"
)

func square(t *testing.T) *Frame {
	t.Helper()
	return NewFrame("box", coords.Rect{Top: 0, Left: 0, Bottom: 100, Right: 100})
}

func TestFrameTranslate(t *testing.T) {
	f := square(t)
	f.ApplyMatrix(coords.Translate(20, -10))
	got := f.Bounds()
	want := coords.Rect{Top: -10, Left: 20, Bottom: 90, Right: 120}
	if got != want {
		t.Fatalf("bounds = %+v, want %+v", got, want)
	}
	if rot := f.RotationAngle(); rot != 0 {
		t.Fatalf("translation changed rotation to %v", rot)
	}
	if h, v := f.ScalePercent(); h != 100 || v != 100 {
		t.Fatalf("translation changed scale to %v, %v", h, v)
	}
}

func TestFrameScaleDecomposition(t *testing.T) {
	f := square(t)
	f.ApplyMatrix(coords.Scale(0.5, 2))
	if h, v := f.ScalePercent(); math.Abs(h-50) > 1e-9 || math.Abs(v-200) > 1e-9 {
		t.Fatalf("scale percent = %v, %v; want 50, 200", h, v)
	}
	b := f.Bounds()
	if math.Abs(b.Width()-50) > 1e-9 || math.Abs(b.Height()-200) > 1e-9 {
		t.Fatalf("bounds after scale = %+v", b)
	}
}

func TestFrameRotationDecomposition(t *testing.T) {
	f := square(t)
	// A clockwise matrix rotation reads back as a negative host angle,
	// which is counterclockwise-positive.
	f.ApplyMatrix(coords.Rotate(30 * math.Pi / 180).Anchored(50, 50))
	if got := f.RotationAngle(); math.Abs(got-(-30)) > 1e-9 {
		t.Fatalf("rotation = %v, want -30", got)
	}
	if h, v := f.ScalePercent(); math.Abs(h-100) > 1e-9 || math.Abs(v-100) > 1e-9 {
		t.Fatalf("rotation changed scale to %v, %v", h, v)
	}
	// Rotating a square about its center grows the axis-aligned box.
	b := f.Bounds()
	want := 100 * (math.Cos(30*math.Pi/180) + math.Sin(30*math.Pi/180))
	if math.Abs(b.Width()-want) > 1e-9 {
		t.Fatalf("rotated box width = %v, want %v", b.Width(), want)
	}
}

func TestFrameShearDecomposition(t *testing.T) {
	f := square(t)
	f.ApplyMatrix(coords.Shear(20 * math.Pi / 180))
	if got := f.ShearAngle(); math.Abs(got-20) > 1e-9 {
		t.Fatalf("shear = %v, want 20", got)
	}
	if got := f.RotationAngle(); math.Abs(got) > 1e-9 {
		t.Fatalf("shear changed rotation to %v", got)
	}
}

func TestDocumentLookup(t *testing.T) {
	doc := NewDocument()
	p := doc.AddPage("1", coords.Point{X: 10, Y: 20})
	p.AddFrame("a", coords.Rect{Bottom: 10, Right: 10})
	p2 := doc.AddPage("2", coords.Point{X: 10, Y: 400})
	p2.AddFrame("b", coords.Rect{Bottom: 5, Right: 5})

	if doc.Item("b") == nil || doc.Item("a") == nil {
		t.Fatal("item lookup failed")
	}
	if doc.Item("missing") != nil {
		t.Fatal("lookup invented an item")
	}
	if _, err := doc.Page(2); err == nil {
		t.Fatal("page index out of range accepted")
	}
	got, err := doc.Page(1)
	if err != nil || got.Name != "2" {
		t.Fatalf("Page(1) = %v, %v", got, err)
	}
}

func TestScalingOptions(t *testing.T) {
	doc := NewDocument()
	if o := doc.Scaling(); !o.AdjustStrokeWeight || !o.AdjustEffects {
		t.Fatalf("fresh document scaling = %+v, want everything on", o)
	}
	doc.SetScaling(ScalingOptions{})
	if o := doc.Scaling(); o.AdjustStrokeWeight || o.AdjustEffects {
		t.Fatalf("scaling = %+v after clearing", o)
	}
}
