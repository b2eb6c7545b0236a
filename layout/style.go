package layout

import (
	"github.com/mitchellh/mapstructure"
)

// Style holds every drawing constant. It is passed to each layout call.
type Style struct {
	LineWidth    float64 `json:"lineWidth" yaml:"lineWidth" mapstructure:"lineWidth"`
	Offset       float64 `json:"offset" yaml:"offset" mapstructure:"offset"`
	Margin       float64 `json:"margin" yaml:"margin" mapstructure:"margin"`
	AdoptedShift float64 `json:"adoptedShift" yaml:"adoptedShift" mapstructure:"adoptedShift"`
	MinOverlap   float64 `json:"minOverlap" yaml:"minOverlap" mapstructure:"minOverlap"`
	GapWidth     float64 `json:"gapWidth" yaml:"gapWidth" mapstructure:"gapWidth"`
	GapMinLength float64 `json:"gapMinLength" yaml:"gapMinLength" mapstructure:"gapMinLength"`
	Spacing      float64 `json:"spacing" yaml:"spacing" mapstructure:"spacing"`

	NameFont    Font `json:"nameFont" yaml:"nameFont" mapstructure:"nameFont"`
	BywordsFont Font `json:"bywordsFont" yaml:"bywordsFont" mapstructure:"bywordsFont"`
	YearFont    Font `json:"yearFont" yaml:"yearFont" mapstructure:"yearFont"`
	SpotFont    Font `json:"spotFont" yaml:"spotFont" mapstructure:"spotFont"`

	Vertical    bool `json:"vertical" yaml:"vertical" mapstructure:"vertical"`
	ShowBywords bool `json:"showBywords" yaml:"showBywords" mapstructure:"showBywords"`
	ShowYears   bool `json:"showYears" yaml:"showYears" mapstructure:"showYears"`

	MinTickSpacing float64 `json:"minTickSpacing" yaml:"minTickSpacing" mapstructure:"minTickSpacing"`
	TickMultiplier float64 `json:"tickMultiplier" yaml:"tickMultiplier" mapstructure:"tickMultiplier"`
}

func DefaultStyle() Style {
	const lineWidth = 1
	const margin = 20

	return Style{
		LineWidth:    lineWidth,
		Offset:       7,
		Margin:       margin,
		AdoptedShift: margin / 3.0,
		MinOverlap:   5,
		GapWidth:     2 * lineWidth,
		GapMinLength: 4 * lineWidth,
		Spacing:      5,

		NameFont:    Font{Size: 20, Weight: 400, Family: "Yu Mincho"},
		BywordsFont: Font{Size: 8, Weight: 400, Family: "serif"},
		YearFont:    Font{Size: 8, Weight: 400, Family: "serif"},
		SpotFont:    Font{Size: 20, Weight: 600, Family: "MS Gothic"},

		Vertical:    true,
		ShowBywords: true,
		ShowYears:   true,

		MinTickSpacing: 80,
		TickMultiplier: 10,
	}
}

// DecodeStyle overwrites the fields of style that are present in src.
func DecodeStyle(src any, style *Style) error {
	return mapstructure.Decode(src, style)
}
