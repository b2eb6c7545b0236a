package types

const (
	TL = "tl"
	TM = "tm"
	TR = "tr"
	ML = "ml"
	MM = "mm"
	MR = "mr"
	BL = "bl"
	BM = "bm"
	BR = "br"
)

type Pos struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Pos) Move(x, y float64) Pos {
	p.X += x
	p.Y += y
	return p
}

func (p Pos) Add(d Pos) Pos {
	return p.Move(d.X, d.Y)
}

func (p Pos) Distance(target Pos) Pos {
	return Pos{
		X: target.X - p.X,
		Y: target.Y - p.Y,
	}
}

// Rect is a box in model coordinates, X and Y are the top-left corner.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`

	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) Right() float64 {
	return r.X + r.Width
}

func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

func (r Rect) CenterX() float64 {
	return r.X + r.Width/2
}

func (r Rect) CenterY() float64 {
	return r.Y + r.Height/2
}

func (r Rect) ToPos(t string) Pos {
	pos := Pos{
		X: r.X,
		Y: r.Y,
	}

	switch t {
	case TL:
		return pos
	case TM:
		pos.X += r.Width / 2
	case TR:
		pos.X += r.Width
	case ML:
		pos.Y += r.Height / 2
	case MM:
		pos.X += r.Width / 2
		pos.Y += r.Height / 2
	case MR:
		pos.X += r.Width
		pos.Y += r.Height / 2
	case BL:
		pos.Y += r.Height
	case BM:
		pos.X += r.Width / 2
		pos.Y += r.Height
	case BR:
		pos.X += r.Width
		pos.Y += r.Height
	default:
		panic("invalid ToPos type: " + t)
	}

	return pos
}

func (r Rect) Move(x, y float64) Rect {
	r.X += x
	r.Y += y
	return r
}

// Contains reports whether p is strictly inside r.
func (r Rect) Contains(p Pos) bool {
	return r.X < p.X && p.X < r.Right() && r.Y < p.Y && p.Y < r.Bottom()
}

func (r Rect) Union(o Rect) Rect {
	left := min(r.X, o.X)
	top := min(r.Y, o.Y)

	return Rect{
		X:      left,
		Y:      top,
		Width:  max(r.Right(), o.Right()) - left,
		Height: max(r.Bottom(), o.Bottom()) - top,
	}
}
