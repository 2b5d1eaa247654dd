package transform

import (
	"math"

	"github.com/pagescript/pagescript/coords"
	"github.com/pagescript/pagescript/host"
)

// Property identifies one transformable aspect of a page item.
type Property int

const (
	PropTranslate Property = iota
	PropRotate
	PropScale
	PropShear
	PropSize
	PropWidth
	PropHeight
	PropPosition
	PropX
	PropY
)

const validKinds = "translate, rotate, scale, shear, size, width, height, position, x, y"

func (p Property) String() string {
	switch p {
	case PropTranslate:
		return "translate"
	case PropRotate:
		return "rotate"
	case PropScale:
		return "scale"
	case PropShear:
		return "shear"
	case PropSize:
		return "size"
	case PropWidth:
		return "width"
	case PropHeight:
		return "height"
	case PropPosition:
		return "position"
	case PropX:
		return "x"
	case PropY:
		return "y"
	}
	return "unknown"
}

// ParseProperty resolves a property name as used by the scripting surface.
func ParseProperty(s string) (Property, error) {
	for p := PropTranslate; p <= PropY; p++ {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, invalidf("unknown transform property %q (valid: %s)", s, validKinds)
}

// Values reported back to callers carry at most 12 meaningful fractional
// digits; the host geometry introduces float noise beyond that.
const precisionScale = 1e12

func round(v float64) float64 {
	return math.Round(v*precisionScale) / precisionScale
}

func deg2rad(d float64) float64 { return d * math.Pi / 180 }

// Transform reads or writes one named geometric property of item, using
// the session's active reference point, unit system and page origin.
//
// With no value the call is a pure read. With values it writes and reports
// the result: scalar properties take one value, size, position and
// translate take a pair, scale takes one (uniform) or two. The returned
// slice has one element for scalar properties and two for pairs.
//
// Linear values are interpreted and reported in the active unit; angles
// are degrees. Writes of position, x and y echo the caller's value, while
// width, height, size, rotate, scale and shear report the recomputed value
// read back from the host geometry.
//
// For the duration of the call the document's scaling adjustments are
// switched off and restored on every exit path, so stroke weights and
// effects are never disturbed by an intermediate scale.
func (s *Session) Transform(item host.Item, prop Property, value ...float64) ([]float64, error) {
	if item == nil {
		return nil, invalidf("transform target has no measurable bounds")
	}
	b := item.Bounds()
	if b.Width() <= 0 || b.Height() <= 0 {
		return nil, invalidf("transform target has no measurable bounds")
	}
	if s.doc != nil {
		saved := s.doc.Scaling()
		s.doc.SetScaling(host.ScalingOptions{})
		defer s.doc.SetScaling(saved)
	}
	return s.apply(item, prop, value)
}

// apply dispatches on the property kind. Internal delegation (x and y via
// position, position via translate, translate reading back through
// position) re-enters here directly so the preference override wraps the
// whole call exactly once.
func (s *Session) apply(item host.Item, prop Property, value []float64) ([]float64, error) {
	switch prop {
	case PropWidth:
		return s.scaleAxis(item, value, PropWidth)
	case PropHeight:
		return s.scaleAxis(item, value, PropHeight)
	case PropSize:
		return s.size(item, value)
	case PropTranslate:
		return s.translate(item, value)
	case PropPosition:
		return s.position(item, value)
	case PropX:
		return s.axis(item, value, 0)
	case PropY:
		return s.axis(item, value, 1)
	case PropRotate:
		return s.rotate(item, value)
	case PropShear:
		return s.shear(item, value)
	case PropScale:
		return s.scale(item, value)
	}
	return nil, invalidf("unknown transform property %d (valid: %s)", int(prop), validKinds)
}

// anchorOf resolves the active reference point to pasteboard coordinates
// within the item's current bounding box.
func (s *Session) anchorOf(item host.Item) coords.Point {
	b := item.Bounds()
	fx, fy := s.ref.factors()
	return coords.Point{X: b.Left + fx*b.Width(), Y: b.Top + fy*b.Height()}
}

func (s *Session) scaleAxis(item host.Item, value []float64, prop Property) ([]float64, error) {
	horizontal := prop == PropWidth
	extent := func(b coords.Rect) float64 {
		if horizontal {
			return b.Width()
		}
		return b.Height()
	}
	if len(value) == 0 {
		return []float64{round(s.unit.FromPoints(extent(item.Bounds())))}, nil
	}
	target := s.unit.ToPoints(value[0])
	if target == 0 {
		return nil, invalidf("%s must be nonzero", prop)
	}
	factor := target / extent(item.Bounds())
	m := coords.Scale(factor, 1)
	if !horizontal {
		m = coords.Scale(1, factor)
	}
	a := s.anchorOf(item)
	item.ApplyMatrix(m.Anchored(a.X, a.Y))
	return []float64{round(s.unit.FromPoints(extent(item.Bounds())))}, nil
}

func (s *Session) size(item host.Item, value []float64) ([]float64, error) {
	b := item.Bounds()
	if len(value) == 0 {
		return []float64{
			round(s.unit.FromPoints(b.Width())),
			round(s.unit.FromPoints(b.Height())),
		}, nil
	}
	if len(value) != 2 {
		return nil, invalidf("size takes a [width, height] pair")
	}
	if value[0] == 0 || value[1] == 0 {
		return nil, invalidf("size must be nonzero")
	}
	sx := s.unit.ToPoints(value[0]) / b.Width()
	sy := s.unit.ToPoints(value[1]) / b.Height()
	a := s.anchorOf(item)
	item.ApplyMatrix(coords.Scale(sx, sy).Anchored(a.X, a.Y))
	nb := item.Bounds()
	return []float64{
		round(s.unit.FromPoints(nb.Width())),
		round(s.unit.FromPoints(nb.Height())),
	}, nil
}

func (s *Session) translate(item host.Item, value []float64) ([]float64, error) {
	if len(value) == 0 {
		return s.position(item, nil)
	}
	if len(value) != 2 {
		return nil, invalidf("translate takes a [dx, dy] pair")
	}
	item.ApplyMatrix(coords.Translate(
		s.unit.ToPoints(value[0]),
		s.unit.ToPoints(value[1]),
	))
	return s.position(item, nil)
}

func (s *Session) position(item host.Item, value []float64) ([]float64, error) {
	a := s.anchorOf(item)
	cur := []float64{
		round(s.unit.FromPoints(a.X - s.origin.X)),
		round(s.unit.FromPoints(a.Y - s.origin.Y)),
	}
	if len(value) == 0 {
		return cur, nil
	}
	if len(value) != 2 {
		return nil, invalidf("position takes an [x, y] pair")
	}
	offset := []float64{value[0] - cur[0], value[1] - cur[1]}
	if _, err := s.translate(item, offset); err != nil {
		return nil, err
	}
	return []float64{value[0], value[1]}, nil
}

func (s *Session) axis(item host.Item, value []float64, idx int) ([]float64, error) {
	cur, err := s.position(item, nil)
	if err != nil {
		return nil, err
	}
	if len(value) == 0 {
		return []float64{cur[idx]}, nil
	}
	target := []float64{cur[0], cur[1]}
	target[idx] = value[0]
	if _, err := s.position(item, target); err != nil {
		return nil, err
	}
	// The caller's value comes straight back, not the rounded read-back.
	return []float64{value[0]}, nil
}

func (s *Session) rotate(item host.Item, value []float64) ([]float64, error) {
	if len(value) == 0 {
		return []float64{-item.RotationAngle()}, nil
	}
	// The write targets an absolute angle through a relative primitive:
	// composing the host-native delta -(current) - value lands the host
	// angle at exactly -value, which reads back as value. The sign dance
	// is load-bearing; the round-trip tests pin it down.
	delta := -item.RotationAngle() - value[0]
	a := s.anchorOf(item)
	item.ApplyMatrix(coords.Rotate(-deg2rad(delta)).Anchored(a.X, a.Y))
	return []float64{round(-item.RotationAngle())}, nil
}

func (s *Session) shear(item host.Item, value []float64) ([]float64, error) {
	if len(value) == 0 {
		return []float64{-item.ShearAngle()}, nil
	}
	delta := -item.ShearAngle() - value[0]
	a := s.anchorOf(item)
	item.ApplyMatrix(coords.Shear(deg2rad(delta)).Anchored(a.X, a.Y))
	return []float64{round(-item.ShearAngle())}, nil
}

func (s *Session) scale(item host.Item, value []float64) ([]float64, error) {
	if len(value) == 0 {
		h, v := item.ScalePercent()
		return []float64{h / 100, v / 100}, nil
	}
	sx := value[0]
	sy := value[0]
	if len(value) > 1 {
		sy = value[1]
	}
	if sx == 0 || sy == 0 {
		return nil, invalidf("scale factors must be nonzero")
	}
	a := s.anchorOf(item)
	item.ApplyMatrix(coords.Scale(sx, sy).Anchored(a.X, a.Y))
	h, v := item.ScalePercent()
	return []float64{round(h / 100), round(v / 100)}, nil
}
