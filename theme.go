package plotlib

// Theme bundles the default cosmetic settings a Plotter applies before
// any user formatter runs. The zero value is unusable; start from
// DefaultTheme.
type Theme struct {
	FigureWidth  float64 // inches
	FigureHeight float64

	LineWidth float64 // points
	LineType  LineType

	TickFormat string // fmt verb for both axes

	LegendLocation string
	LegendFontSize float64
}

var DefaultTheme = Theme{
	FigureWidth:    10,
	FigureHeight:   8,
	LineWidth:      3,
	LineType:       SolidLine,
	TickFormat:     "%.2f",
	LegendLocation: "center left",
	LegendFontSize: 10,
}
