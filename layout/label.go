package layout

import (
	"github.com/mattn/go-runewidth"
	"github.com/redexp/familychart/i18n"
	"github.com/redexp/familychart/state"
	. "github.com/redexp/familychart/types"
)

type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

type Font struct {
	Size   float64 `json:"size" yaml:"size" mapstructure:"size"`
	Weight int     `json:"weight" yaml:"weight" mapstructure:"weight"`
	Family string  `json:"family" yaml:"family" mapstructure:"family"`
}

type TextSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// GlyphOffsets holds the start of every rune along the text direction.
	GlyphOffsets []float64 `json:"glyphOffsets"`
}

// Measurer is the text measuring service. Clients with a real font engine
// plug their own one in.
type Measurer interface {
	Measure(text string, font Font, orientation Orientation) TextSize
}

// CellMeasurer counts terminal cells: a narrow rune is half the font size
// wide, a wide rune takes the full size. Vertical text stacks runes one font
// size apart.
type CellMeasurer struct{}

func (CellMeasurer) Measure(text string, font Font, orientation Orientation) (size TextSize) {
	cell := font.Size / 2

	if orientation == Horizontal {
		for _, r := range text {
			size.GlyphOffsets = append(size.GlyphOffsets, size.Width)
			size.Width += float64(runewidth.RuneWidth(r)) * cell
		}

		size.Height = font.Size

		return
	}

	for _, r := range text {
		size.GlyphOffsets = append(size.GlyphOffsets, size.Height)
		size.Height += font.Size
		size.Width = max(size.Width, float64(runewidth.RuneWidth(r))*cell)
	}

	return
}

type LabelKind string

const (
	NameLabel    LabelKind = "name"
	BywordsLabel LabelKind = "bywords"
	BirthLabel   LabelKind = "birth"
	DeathLabel   LabelKind = "death"
	SpotLabel    LabelKind = "spot"
)

// LabelPart is one text run. Its Rect is relative to the label top-left corner.
type LabelPart struct {
	Rect

	Kind         LabelKind   `json:"kind"`
	Text         string      `json:"text"`
	Font         Font        `json:"font"`
	Orientation  Orientation `json:"orientation"`
	GlyphOffsets []float64   `json:"glyphOffsets"`
}

type Label struct {
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Parts  []LabelPart `json:"parts"`
}

var _ state.Sizer = (*Labeler)(nil)

// Labeler builds person and spot labels. It also sizes boxes for
// FamilyTree.Resize.
type Labeler struct {
	Style    Style
	Measurer Measurer
}

func NewLabeler(style Style, measurer Measurer) *Labeler {
	if measurer == nil {
		measurer = CellMeasurer{}
	}

	return &Labeler{
		Style:    style,
		Measurer: measurer,
	}
}

func (l *Labeler) part(kind LabelKind, text string, font Font, orientation Orientation) LabelPart {
	size := l.Measurer.Measure(text, font, orientation)

	return LabelPart{
		Rect: Rect{
			Width:  size.Width,
			Height: size.Height,
		},
		Kind:         kind,
		Text:         text,
		Font:         font,
		Orientation:  orientation,
		GlyphOffsets: size.GlyphOffsets,
	}
}

// PersonLabel places the name with bywords next to it on top and the life
// years centered below.
func (l *Labeler) PersonLabel(p *state.Person) (label Label) {
	s := l.Style
	orientation := Horizontal

	if s.Vertical {
		orientation = Vertical
	}

	name := l.part(NameLabel, p.DisplayName(), s.NameFont, orientation)
	upper := []LabelPart{name}
	upperW, upperH := name.Width, name.Height

	if s.ShowBywords && p.Bywords != "" {
		by := l.part(BywordsLabel, p.Bywords, s.BywordsFont, orientation)
		by.X = upperW + s.Spacing
		upperW = by.Right()
		upperH = max(upperH, by.Height)
		upper = append(upper, by)
	}

	var lower []LabelPart

	if s.ShowYears {
		if text, ok := YearText(p.Birthday); ok {
			lower = append(lower, l.part(BirthLabel, i18n.L("born", text), s.YearFont, Horizontal))
		}

		if text, ok := YearText(p.Deathday); ok {
			lower = append(lower, l.part(DeathLabel, i18n.L("died", text), s.YearFont, Horizontal))
		}
	}

	lowerW, lowerH := 0.0, 0.0

	for i := range lower {
		if i > 0 {
			lowerH += s.Spacing
		}

		lower[i].Y = lowerH
		lowerH += lower[i].Height
		lowerW = max(lowerW, lower[i].Width)
	}

	label.Width = max(upperW, lowerW)
	label.Height = upperH

	shift := (label.Width - upperW) / 2

	for i := range upper {
		upper[i].X += shift
	}

	if len(lower) > 0 {
		label.Height += s.Spacing + lowerH

		for i := range lower {
			lower[i].Y += upperH + s.Spacing
			lower[i].X = (label.Width - lower[i].Width) / 2
		}
	}

	label.Parts = append(upper, lower...)

	return
}

func (l *Labeler) SpotLabel(spot *state.Spot) (label Label) {
	part := l.part(SpotLabel, spot.Text, l.Style.SpotFont, Horizontal)

	label.Width = part.Width
	label.Height = part.Height
	label.Parts = []LabelPart{part}

	return
}

func (l *Labeler) PersonSize(p *state.Person) (width, height float64) {
	label := l.PersonLabel(p)

	return label.Width, label.Height
}

func (l *Labeler) SpotSize(spot *state.Spot) (width, height float64) {
	label := l.SpotLabel(spot)

	return label.Width, label.Height
}

// YearText renders the year of a date in the current locale.
func YearText(date *state.Date) (text string, ok bool) {
	if date == nil || date.Year == nil {
		return
	}

	if date.IsBC {
		return i18n.L("year_bc", *date.Year), true
	}

	return i18n.L("year", *date.Year), true
}
