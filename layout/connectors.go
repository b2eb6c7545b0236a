package layout

import (
	"cmp"
	"math"
	"slices"
)

type bar struct {
	x1, x2, y float64
}

func (b bar) left() float64 {
	return min(b.x1, b.x2)
}

func (b bar) right() float64 {
	return max(b.x1, b.x2)
}

func (b bar) center() float64 {
	return (b.x1 + b.x2) / 2
}

type router struct {
	style Style
	lines []Line
}

func (r *router) add(l Line) {
	if l.Length() > 0 {
		r.lines = append(r.lines, l)
	}
}

func (r *router) h(y, x1, x2 float64, double bool, kind LineKind) {
	r.add(HLine(y, x1, x2, double, kind))
}

func (r *router) v(x, y1, y2 float64, double bool, kind LineKind) {
	r.add(VLine(x, y1, y2, double, kind))
}

// attachX is where the drop of a child meets the children bar. Children with
// both a biological and an adoptive union get two separate drops.
func (r *router) attachX(c FamilyPerson) float64 {
	x := c.CenterX()

	if !c.BothParents {
		return x
	}

	if c.Adopted {
		return x + r.style.AdoptedShift
	}

	return x - r.style.AdoptedShift
}

// Connectors routes the lines of one union: the spouse bar, the connector
// from spouses to the children bar, the children bar and one drop per child.
// Zero length segments are omitted.
func Connectors(f Family, style Style) []Line {
	r := &router{style: style}

	spouses := slices.Clone(f.Spouses)
	slices.SortStableFunc(spouses, func(a, b FamilyPerson) int {
		return cmp.Compare(a.CenterX(), b.CenterX())
	})

	if len(spouses) > 2 {
		spouses = spouses[:2]
	}

	var upper bar
	straight := false

	if len(spouses) == 2 {
		upper, straight = r.spouseBar(spouses[0], spouses[1])
	}

	children := f.Children

	if len(children) == 0 {
		return r.lines
	}

	lowerY := math.Inf(1)
	left := math.Inf(1)
	right := math.Inf(-1)
	sumX := 0.0

	for _, c := range children {
		top := c.Y

		if c.Adopted {
			top -= style.Margin / 2
		}

		lowerY = min(lowerY, top)

		x := r.attachX(c)
		sumX += x
		left = min(left, x)
		right = max(right, x)
	}

	lowerY -= style.Margin
	lowerX := sumX / float64(len(children))
	double := f.BioCount() == 0 && len(children) == 1

	if len(spouses) > 0 {
		if line, ok := r.straightDrop(spouses, upper, straight, children); ok {
			r.add(line)
			return r.lines
		}

		if len(spouses) == 1 {
			r.singleParent(spouses[0], children, lowerX, lowerY, left, right, double)
		} else {
			r.twoParents(spouses, children, upper, lowerX, lowerY, left, right, double)
		}
	}

	if len(children) > 1 {
		r.h(lowerY, left, right, false, ChildrenBar)
	}

	for _, c := range children {
		r.v(r.attachX(c), lowerY, c.Y-style.Offset, c.Adopted, DropLine)
	}

	return r.lines
}

// spouseBar joins two spouse boxes, a being the left one. It returns the
// horizontal piece at the lower end of the bar.
func (r *router) spouseBar(a, b FamilyPerson) (upper bar, straight bool) {
	s := r.style
	maxTop := max(a.Y, b.Y)
	minBottom := min(a.Bottom(), b.Bottom())
	gap := b.X - a.Right()

	if minBottom-maxTop > s.MinOverlap && gap > 2*s.Offset+s.MinOverlap {
		upper = bar{a.Right() + s.Offset, b.X - s.Offset, (minBottom + maxTop) / 2}
		r.h(upper.y, upper.x1, upper.x2, true, SpouseLine)

		return upper, true
	}

	ay, by := a.CenterY(), b.CenterY()

	var jogX, x1, x2 float64

	switch {
	case gap > 2*s.Margin:
		x1, x2 = a.Right()+s.Offset, b.X-s.Offset

		if ay > by {
			jogX = b.X - s.Margin
		} else {
			jogX = a.Right() + s.Margin
		}

	case ay > by:
		jogX = max(a.Right(), b.Right()) + s.Margin
		x1, x2 = a.Right()+s.Offset, b.Right()+s.Offset

	default:
		jogX = min(a.X, b.X) - s.Margin
		x1, x2 = a.X-s.Offset, b.X-s.Offset
	}

	r.h(ay, x1, jogX, true, SpouseLine)
	r.v(jogX, ay, by, true, SpouseLine)
	r.h(by, jogX, x2, true, SpouseLine)

	if ay > by {
		return bar{x1, jogX, ay}, false
	}

	return bar{jogX, x2, by}, false
}

// straightDrop collapses the whole route of a single child into one vertical
// line when the child sits below the spouse box or the straight spouse bar.
func (r *router) straightDrop(spouses []FamilyPerson, upper bar, straight bool, children []FamilyPerson) (l Line, ok bool) {
	if len(children) != 1 {
		return
	}

	s := r.style
	c := children[0]

	var x1, x2, top float64

	switch {
	case len(spouses) == 1:
		p := spouses[0]
		x1, x2, top = p.X, p.Right(), p.Bottom()+s.Offset
	case straight:
		x1, x2, top = upper.left(), upper.right(), upper.y
	default:
		return
	}

	lo := max(x1, c.X)
	hi := min(x2, c.Right())
	bottom := c.Y - s.Offset

	if hi-lo <= s.MinOverlap || bottom-top < s.Margin {
		return
	}

	return VLine((lo+hi)/2, top, bottom, c.Adopted, DropLine), true
}

// clearX moves x in the direction of dir until no box, widened by Offset,
// contains it. Each move puts x at Margin from the edge of the box it leaves.
func (r *router) clearX(x, dir float64, boxes ...[]FamilyPerson) float64 {
	s := r.style

	for moved := true; moved; {
		moved = false

		for _, list := range boxes {
			for _, b := range list {
				if x <= b.X-s.Offset || x >= b.Right()+s.Offset {
					continue
				}

				if dir < 0 {
					x = b.X - s.Margin
				} else {
					x = b.Right() + s.Margin
				}

				moved = true
			}
		}
	}

	return x
}

func (r *router) singleParent(p FamilyPerson, children []FamilyPerson, lowerX, lowerY, left, right float64, double bool) {
	s := r.style
	px := p.CenterX()
	pb := p.Bottom()

	if pb+s.Margin > lowerY {
		midX := (px + lowerX) / 2

		if lowerY < pb {
			dir := 1.0

			if midX < px {
				dir = -1
			}

			midX = r.clearX(midX, dir, []FamilyPerson{p}, children)
		}

		y := pb + s.Margin

		r.v(px, pb+s.Offset, y, double, ConnectorLine)
		r.h(y, px, midX, double, ConnectorLine)
		r.v(midX, y, lowerY, double, ConnectorLine)
		r.h(lowerY, midX, lowerX, double, ConnectorLine)

		return
	}

	r.v(px, pb+s.Offset, lowerY, double, ConnectorLine)

	if px < left {
		r.h(lowerY, px, left, double, ConnectorLine)
	} else if px > right {
		r.h(lowerY, px, right, double, ConnectorLine)
	}
}

func (r *router) twoParents(spouses, children []FamilyPerson, upper bar, lowerX, lowerY, left, right float64, double bool) {
	s := r.style
	ux := upper.center()

	if upper.y < lowerY {
		lo := max(upper.left(), left)
		hi := min(upper.right(), right)

		if hi-lo > s.MinOverlap {
			r.v((lo+hi)/2, upper.y, lowerY, double, ConnectorLine)
			return
		}

		r.v(ux, upper.y, lowerY, double, ConnectorLine)

		if math.Abs(ux-left) < math.Abs(ux-right) {
			r.h(lowerY, ux, left, double, ConnectorLine)
		} else {
			r.h(lowerY, ux, right, double, ConnectorLine)
		}

		return
	}

	// the jog goes to the side of the children bar midpoint
	dir := 1.0

	if (left+right)/2 < ux {
		dir = -1
	}

	midX := (lowerX + ux) / 2

	if math.Abs(midX-lowerX) <= s.Offset {
		midX = ux + dir*s.Margin
	}

	midX = r.clearX(midX, dir, spouses, children)

	top := upper.y + s.Margin

	for _, p := range spouses {
		top = max(top, p.Bottom()+s.Offset)
	}

	bottom := lowerY - s.Margin

	r.v(ux, upper.y, top, double, ConnectorLine)
	r.h(top, ux, midX, double, ConnectorLine)
	r.v(midX, top, bottom, double, ConnectorLine)
	r.h(bottom, midX, lowerX, double, ConnectorLine)
	r.v(lowerX, bottom, lowerY, double, ConnectorLine)
}
