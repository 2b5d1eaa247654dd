package transform

import "strings"

// RefPoint selects which corner, edge midpoint or center of an item's
// bounding box anchors geometry operations: it is held fixed by scale and
// size writes and it is the point reported and set by position, x and y.
type RefPoint int

const (
	TopLeft RefPoint = iota
	TopCenter
	TopRight
	CenterLeft
	Center
	CenterRight
	BottomLeft
	BottomCenter
	BottomRight
)

// factors returns the fractional position of the anchor within a bounding
// box: 0, 0 for the top-left corner, 1, 1 for the bottom-right.
func (r RefPoint) factors() (fx, fy float64) {
	switch r {
	case TopLeft:
		return 0, 0
	case TopCenter:
		return 0.5, 0
	case TopRight:
		return 1, 0
	case CenterLeft:
		return 0, 0.5
	case Center:
		return 0.5, 0.5
	case CenterRight:
		return 1, 0.5
	case BottomLeft:
		return 0, 1
	case BottomCenter:
		return 0.5, 1
	case BottomRight:
		return 1, 1
	}
	return 0, 0
}

func (r RefPoint) String() string {
	switch r {
	case TopLeft:
		return "topLeft"
	case TopCenter:
		return "topCenter"
	case TopRight:
		return "topRight"
	case CenterLeft:
		return "centerLeft"
	case Center:
		return "center"
	case CenterRight:
		return "centerRight"
	case BottomLeft:
		return "bottomLeft"
	case BottomCenter:
		return "bottomCenter"
	case BottomRight:
		return "bottomRight"
	}
	return "topLeft"
}

// numpad digit layout, 7 8 9 across the top row down to 1 2 3.
var numpad = map[int64]RefPoint{
	7: TopLeft, 8: TopCenter, 9: TopRight,
	4: CenterLeft, 5: Center, 6: CenterRight,
	1: BottomLeft, 2: BottomCenter, 3: BottomRight,
}

// ParseRefPoint resolves a reference point from any of the accepted
// spellings: a RefPoint value, a numpad-style digit 1-9, or a name such as
// "topLeft" or "bottom-right".
func ParseRefPoint(v any) (RefPoint, error) {
	switch p := v.(type) {
	case RefPoint:
		if p < TopLeft || p > BottomRight {
			return TopLeft, invalidf("reference point %d out of range", int(p))
		}
		return p, nil
	case int:
		return refPointFromDigit(int64(p))
	case int64:
		return refPointFromDigit(p)
	case float64:
		if p != float64(int64(p)) {
			return TopLeft, invalidf("reference point %v is not a numpad digit", p)
		}
		return refPointFromDigit(int64(p))
	case string:
		return refPointFromName(p)
	}
	return TopLeft, invalidf("cannot resolve a reference point from %T", v)
}

func refPointFromDigit(d int64) (RefPoint, error) {
	if r, ok := numpad[d]; ok {
		return r, nil
	}
	return TopLeft, invalidf("reference point digit %d out of range 1-9", d)
}

func refPointFromName(s string) (RefPoint, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	for r := TopLeft; r <= BottomRight; r++ {
		if strings.ToLower(r.String()) == key {
			return r, nil
		}
	}
	return TopLeft, invalidf("unknown reference point %q", s)
}
