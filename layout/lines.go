package layout

import (
	"math"
)

type LineKind string

const (
	SpouseLine    LineKind = "spouse"
	ChildrenBar   LineKind = "children"
	ConnectorLine LineKind = "connector"
	DropLine      LineKind = "drop"
)

// Line is an axis aligned segment. Double lines mark adoption and spouse links.
type Line struct {
	X1     float64  `json:"x1"`
	Y1     float64  `json:"y1"`
	X2     float64  `json:"x2"`
	Y2     float64  `json:"y2"`
	Double bool     `json:"double"`
	Kind   LineKind `json:"kind"`
}

func HLine(y, x1, x2 float64, double bool, kind LineKind) Line {
	return Line{X1: x1, Y1: y, X2: x2, Y2: y, Double: double, Kind: kind}
}

func VLine(x, y1, y2 float64, double bool, kind LineKind) Line {
	return Line{X1: x, Y1: y1, X2: x, Y2: y2, Double: double, Kind: kind}
}

func (l Line) IsVertical() bool {
	return l.X1 == l.X2
}

func (l Line) Length() float64 {
	return math.Abs(l.X2-l.X1) + math.Abs(l.Y2-l.Y1)
}

func (l Line) Mid() (x, y float64) {
	return (l.X1 + l.X2) / 2, (l.Y1 + l.Y2) / 2
}

// Strokes returns the solid pieces to paint. A double line gets a gap of
// GapWidth at its midpoint unless it is shorter than GapMinLength.
func (l Line) Strokes(style Style) []Line {
	if !l.Double || l.Length() < style.GapMinLength || l.Length() <= style.GapWidth {
		return []Line{l}
	}

	half := style.GapWidth / 2
	mx, my := l.Mid()

	first, second := l, l

	if l.IsVertical() {
		dir := math.Copysign(1, l.Y2-l.Y1)
		first.Y2 = my - dir*half
		second.Y1 = my + dir*half
	} else {
		dir := math.Copysign(1, l.X2-l.X1)
		first.X2 = mx - dir*half
		second.X1 = mx + dir*half
	}

	return []Line{first, second}
}
