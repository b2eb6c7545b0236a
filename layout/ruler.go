package layout

import (
	"math"

	"github.com/redexp/familychart/i18n"
	. "github.com/redexp/familychart/types"
)

type Tick struct {
	Pos  float64 `json:"pos"`
	Text string  `json:"text"`
}

// Ruler is the year grid of the visible area. One grid step is Years years,
// Step model units apart.
type Ruler struct {
	Years      float64   `json:"years"`
	Step       float64   `json:"step"`
	Vertical   []float64 `json:"vertical"`
	Horizontal []float64 `json:"horizontal"`
	Labels     []Tick    `json:"labels"`
}

// TickSpacing picks the years per grid step from the 1, 5, 10, 50, 100...
// series so that a step is at least MinTickSpacing screen units apart.
func TickSpacing(scale float64, style Style) float64 {
	tick := 1.0

	if scale <= 0 || style.MinTickSpacing <= 0 || style.TickMultiplier <= 0 {
		return tick
	}

	unit := style.TickMultiplier * scale

	for !math.IsInf(tick, 1) {
		if tick*unit > style.MinTickSpacing/2.5 {
			break
		}

		tick *= 5

		if tick*unit > style.MinTickSpacing {
			break
		}

		tick *= 2
	}

	return tick
}

// NewRuler lays the grid over view, a rectangle in model coordinates.
func NewRuler(view Rect, scale float64, style Style) (ruler Ruler) {
	multiplier := style.TickMultiplier

	if multiplier <= 0 {
		multiplier = 1
	}

	ruler.Years = TickSpacing(scale, style)
	ruler.Step = ruler.Years * multiplier

	if math.IsInf(ruler.Step, 0) || ruler.Step <= 0 {
		return
	}

	for i := math.Ceil(view.X / ruler.Step); i <= math.Floor(view.Right()/ruler.Step); i++ {
		ruler.Vertical = append(ruler.Vertical, i*ruler.Step)
	}

	for i := math.Ceil(view.Y / ruler.Step); i <= math.Floor(view.Bottom()/ruler.Step); i++ {
		pos := i * ruler.Step
		ruler.Horizontal = append(ruler.Horizontal, pos)
		ruler.Labels = append(ruler.Labels, Tick{
			Pos:  pos,
			Text: RulerYear(int(i * ruler.Years)),
		})
	}

	return
}

// RulerYear renders a grid year. There is no year zero: grid year 0 is 1 BC.
func RulerYear(year int) string {
	if year > 0 {
		return i18n.L("year", year)
	}

	return i18n.L("year_bc", -year+1)
}
