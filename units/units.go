// Package units handles the linear measurement systems a document session
// can be switched between. All geometry is stored in points; the active
// unit only changes how values are interpreted on the way in and reported
// on the way out. Angles are always degrees and never unit-converted.
package units

import (
	"fmt"
	"strings"
)

// Unit is a linear measurement system.
type Unit int

const (
	Point Unit = iota
	Millimeter
	Centimeter
	Inch
	Pixel
)

// 1in = 72pt, 1mm = 72/25.4pt, 1cm = 72/2.54pt. Pixels are taken at 72dpi,
// so 1px = 1pt.
const (
	ptPerInch = 72.0
	ptPerMM   = 72.0 / 25.4
	ptPerCM   = 72.0 / 2.54
	ptPerPX   = 1.0
)

func (u Unit) factor() float64 {
	switch u {
	case Millimeter:
		return ptPerMM
	case Centimeter:
		return ptPerCM
	case Inch:
		return ptPerInch
	case Pixel:
		return ptPerPX
	default:
		return 1
	}
}

// ToPoints converts v from u into points.
func (u Unit) ToPoints(v float64) float64 { return v * u.factor() }

// FromPoints converts v from points into u.
func (u Unit) FromPoints(v float64) float64 { return v / u.factor() }

func (u Unit) String() string {
	switch u {
	case Millimeter:
		return "mm"
	case Centimeter:
		return "cm"
	case Inch:
		return "in"
	case Pixel:
		return "px"
	default:
		return "pt"
	}
}

// Parse resolves a unit name ("pt", "mm", "cm", "in", "px").
func Parse(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pt", "point", "points":
		return Point, nil
	case "mm", "millimeter", "millimeters":
		return Millimeter, nil
	case "cm", "centimeter", "centimeters":
		return Centimeter, nil
	case "in", "inch", "inches":
		return Inch, nil
	case "px", "pixel", "pixels":
		return Pixel, nil
	}
	return Point, fmt.Errorf("unknown unit %q (valid: pt, mm, cm, in, px)", s)
}
