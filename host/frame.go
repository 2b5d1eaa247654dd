package host

import (
	"math"

	"github.com/pagescript/pagescript/coords"
)

// Frame is the in-memory page item. It keeps its current axis-aligned
// bounding box and the cumulative linear part of every matrix applied to
// it; rotation, shear and scale are decomposed from that on demand rather
// than tracked separately, so they stay consistent with the geometry no
// matter how transforms are mixed.
type Frame struct {
	Name   string
	bounds coords.Rect
	linear coords.Matrix
}

// NewFrame returns an unrotated, unscaled frame with the given bounds.
func NewFrame(name string, bounds coords.Rect) *Frame {
	return &Frame{Name: name, bounds: bounds, linear: coords.Identity()}
}

// Bounds returns the current bounding box in pasteboard coordinates.
func (f *Frame) Bounds() coords.Rect { return f.bounds }

// ApplyMatrix applies m, already in origin-relative pasteboard form: the
// bounds become the axis-aligned box of the mapped corners and the linear
// part folds into the cumulative item transform.
func (f *Frame) ApplyMatrix(m coords.Matrix) {
	f.bounds = m.MapRect(f.bounds)
	f.linear = linearOf(m).Compose(f.linear)
}

// linearOf strips the translation terms.
func linearOf(m coords.Matrix) coords.Matrix {
	return coords.Matrix{m[0], m[1], 0, m[3], m[4], 0}
}

// RotationAngle returns the absolute rotation in degrees,
// counterclockwise-positive.
func (f *Frame) RotationAngle() float64 {
	rot, _, _, _ := f.decompose()
	return rot
}

// ShearAngle returns the absolute shear angle in degrees.
func (f *Frame) ShearAngle() float64 {
	_, shear, _, _ := f.decompose()
	return shear
}

// ScalePercent returns the horizontal and vertical scale percentages; 100
// means unscaled.
func (f *Frame) ScalePercent() (h, v float64) {
	_, _, sx, sy := f.decompose()
	return sx * 100, sy * 100
}

// decompose factors the cumulative linear matrix as
// rotation ∘ shear ∘ scale, with the rotation counterclockwise in host
// convention. The first column is the image of the x axis and yields scale
// and rotation; undoing the rotation from the second column yields the
// vertical scale and the shear tangent.
func (f *Frame) decompose() (rotDeg, shearDeg, sx, sy float64) {
	a, b := f.linear[0], f.linear[1]
	d, e := f.linear[3], f.linear[4]

	sx = math.Hypot(a, d)
	phi := math.Atan2(d, a)

	sin, cos := math.Sincos(phi)
	u1 := b*cos + e*sin
	u2 := -b*sin + e*cos
	sy = u2

	var shearTan float64
	if u2 != 0 {
		shearTan = u1 / u2
	}
	return phi * 180 / math.Pi, math.Atan(shearTan) * 180 / math.Pi, sx, sy
}
