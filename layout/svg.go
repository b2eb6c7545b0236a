package layout

import (
	"fmt"
	"html"
	"strings"

	"github.com/redexp/familychart/state"
	. "github.com/redexp/familychart/types"
)

const svgPadding = 20

// RenderSvg draws the whole chart: person labels, spot labels and every
// connector. Double lines are painted as two strokes around a gap.
func RenderSvg(tree *state.FamilyTree, labeler *Labeler) string {
	style := labeler.Style
	bounds := tree.Bounds()

	for spot := range tree.AllSpots() {
		bounds = bounds.Union(spot.Rect())
	}

	var b strings.Builder

	fmt.Fprintf(
		&b,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s">`+"\n",
		num(bounds.X-svgPadding),
		num(bounds.Y-svgPadding),
		num(bounds.Width+2*svgPadding),
		num(bounds.Height+2*svgPadding),
	)

	fmt.Fprintf(&b, `<title>%s</title>`+"\n", html.EscapeString(tree.Title()))

	for person := range tree.AllPersons() {
		writeLabel(&b, labeler.PersonLabel(person), person.Position)
	}

	for spot := range tree.AllSpots() {
		rect := spot.Rect()
		writeLabel(&b, labeler.SpotLabel(spot), Pos{X: rect.X, Y: rect.Y})
	}

	fmt.Fprintf(&b, `<g stroke="black" stroke-width="%s" fill="none">`+"\n", num(style.LineWidth))

	for _, line := range Draw(tree, style) {
		for _, s := range line.Strokes(style) {
			fmt.Fprintf(
				&b,
				`<line x1="%s" y1="%s" x2="%s" y2="%s" class="%s"/>`+"\n",
				num(s.X1), num(s.Y1), num(s.X2), num(s.Y2), s.Kind,
			)
		}
	}

	b.WriteString("</g>\n</svg>\n")

	return b.String()
}

func writeLabel(b *strings.Builder, label Label, pos Pos) {
	for _, part := range label.Parts {
		x := pos.X + part.X
		y := pos.Y + part.Y
		mode := ""

		if part.Orientation == Vertical {
			x += part.Width / 2
			mode = ` writing-mode="vertical-rl"`
		} else {
			y += part.Height
		}

		fmt.Fprintf(
			b,
			`<text x="%s" y="%s" font-size="%s" font-weight="%d" font-family="%s" class="%s"%s>%s</text>`+"\n",
			num(x), num(y), num(part.Font.Size), part.Font.Weight,
			html.EscapeString(part.Font.Family), part.Kind, mode,
			html.EscapeString(part.Text),
		)
	}
}

func num(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
