package units

import (
	"math"
	"testing"
)

func TestConversions(t *testing.T) {
	cases := []struct {
		unit Unit
		v    float64
		pt   float64
	}{
		{Point, 36, 36},
		{Inch, 1, 72},
		{Inch, 0.5, 36},
		{Millimeter, 25.4, 72},
		{Centimeter, 2.54, 72},
		{Pixel, 100, 100},
	}
	for _, c := range cases {
		if got := c.unit.ToPoints(c.v); math.Abs(got-c.pt) > 1e-9 {
			t.Errorf("%v.ToPoints(%v) = %v, want %v", c.unit, c.v, got, c.pt)
		}
		if got := c.unit.FromPoints(c.pt); math.Abs(got-c.v) > 1e-9 {
			t.Errorf("%v.FromPoints(%v) = %v, want %v", c.unit, c.pt, got, c.v)
		}
	}
}

func TestParse(t *testing.T) {
	for name, want := range map[string]Unit{
		"pt": Point, "Points": Point,
		"mm": Millimeter, "millimeters": Millimeter,
		"cm": Centimeter,
		"in": Inch, " Inch ": Inch,
		"px": Pixel,
	} {
		got, err := Parse(name)
		if err != nil || got != want {
			t.Errorf("Parse(%q) = %v, %v; want %v", name, got, err, want)
		}
	}
	if _, err := Parse("furlong"); err == nil {
		t.Fatal("Parse accepted an unknown unit")
	}
}
