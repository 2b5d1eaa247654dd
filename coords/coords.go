// Package coords implements the 2D affine geometry used by the transform
// layer: a 2x3 matrix type with composition, inversion and anchor-relative
// rewriting, plus the point and rectangle types the host geometry works in.
//
// The coordinate space is screen-like: x grows to the right, y grows
// downward, and positive rotation angles turn clockwise.
package coords

import (
	"errors"
	"fmt"
	"math"
)

// Matrix holds the six coefficients [a, b, c, d, e, f] of the row-major
// affine map
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix [6]float64

// Identity returns the identity transform.
func Identity() Matrix { return Matrix{1, 0, 0, 0, 1, 0} }

// Translate returns a translation by (tx, ty).
func Translate(tx, ty float64) Matrix { return Matrix{1, 0, tx, 0, 1, ty} }

// Scale returns a scale by (sx, sy) about the origin.
func Scale(sx, sy float64) Matrix { return Matrix{sx, 0, 0, 0, sy, 0} }

// Rotate returns a clockwise rotation by angle radians.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{cos, sin, 0, -sin, cos, 0}
}

// Shear returns a horizontal shear by angle radians: x is displaced in
// proportion to y while y is left alone.
func Shear(angle float64) Matrix { return Matrix{1, math.Tan(angle), 0, 0, 1, 0} }

// Compose returns m ∘ o: the transform that maps a point through o first
// and the receiver second. The order matters everywhere rotation meets
// translation; callers rely on it being exactly this one.
func (m Matrix) Compose(o Matrix) Matrix {
	return Matrix{
		m[0]*o[0] + m[1]*o[3],
		m[0]*o[1] + m[1]*o[4],
		m[0]*o[2] + m[1]*o[5] + m[2],
		m[3]*o[0] + m[4]*o[3],
		m[3]*o[1] + m[4]*o[4],
		m[3]*o[2] + m[4]*o[5] + m[5],
	}
}

// PreCompose returns o ∘ m: the receiver applied first, then o.
func (m Matrix) PreCompose(o Matrix) Matrix { return o.Compose(m) }

// Determinant returns the determinant of the linear 2x2 part.
func (m Matrix) Determinant() float64 { return m[0]*m[4] - m[1]*m[3] }

// ErrSingular is returned by Invert for matrices whose determinant is not
// distinguishably nonzero, e.g. after a zero scale factor.
var ErrSingular = errors.New("coords: singular matrix")

const singularEps = 1e-10

// Invert returns the inverse transform, or the receiver unchanged together
// with ErrSingular when the matrix is not invertible.
func (m Matrix) Invert() (Matrix, error) {
	det := m.Determinant()
	if math.Abs(det) < singularEps {
		return m, ErrSingular
	}
	return Matrix{
		m[4] / det, -m[1] / det, (m[1]*m[5] - m[2]*m[4]) / det,
		-m[3] / det, m[0] / det, (m[2]*m[3] - m[0]*m[5]) / det,
	}, nil
}

// Apply maps the point p through the transform.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m[0]*p.X + m[1]*p.Y + m[2],
		Y: m[3]*p.X + m[4]*p.Y + m[5],
	}
}

// Anchored rewrites the transform so that it acts about (ax, ay) instead of
// the origin: translate the anchor to the origin, apply m, translate back.
// Host geometry engines apply matrices relative to the coordinate origin,
// so every anchor-relative rotation or scale goes through this form.
func (m Matrix) Anchored(ax, ay float64) Matrix {
	return m.Compose(Translate(-ax, -ay)).PreCompose(Translate(ax, ay))
}

// MapRect returns the axis-aligned bounding box of r mapped through m.
func (m Matrix) MapRect(r Rect) Rect {
	p0 := m.Apply(Point{r.Left, r.Top})
	p1 := m.Apply(Point{r.Right, r.Top})
	p2 := m.Apply(Point{r.Right, r.Bottom})
	p3 := m.Apply(Point{r.Left, r.Bottom})
	return Rect{
		Top:    min(p0.Y, min(p1.Y, min(p2.Y, p3.Y))),
		Left:   min(p0.X, min(p1.X, min(p2.X, p3.X))),
		Bottom: max(p0.Y, max(p1.Y, max(p2.Y, p3.Y))),
		Right:  max(p0.X, max(p1.X, max(p2.X, p3.X))),
	}
}

// IsIdentity reports whether m is the identity within floating-point noise.
func (m Matrix) IsIdentity() bool {
	return m.ApproxEqual(Identity())
}

// ApproxEqual reports coefficient-wise equality within a small tolerance.
func (m Matrix) ApproxEqual(o Matrix) bool {
	const eps = 1e-9
	for i := range m {
		if math.Abs(m[i]-o[i]) > eps {
			return false
		}
	}
	return true
}

func (m Matrix) String() string {
	return fmt.Sprintf("[%g %g %g / %g %g %g]", m[0], m[1], m[2], m[3], m[4], m[5])
}

// Point is a location in pasteboard coordinates.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in pasteboard coordinates. With y
// growing downward, Top <= Bottom and Left <= Right.
type Rect struct {
	Top, Left, Bottom, Right float64
}

// Width returns Right - Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom - Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }
