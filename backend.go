package plotlib

import "image/color"

// Backend creates figures. It is the only contact point between this
// package and an actual plotting library; gonumplot provides the
// production implementation, tests use a recording double.
type Backend interface {
	// NewFigure returns an empty figure of the given size in inches.
	NewFigure(width, height float64) Figure
}

// Figure is one output image holding one set of axes, or two for
// dual-axis plots.
type Figure interface {
	Axes() Axes

	// TwinY returns a second set of axes drawing into the same
	// figure, with its own y scale and the x scale shared with the
	// primary axes.
	TwinY() Axes

	// Save renders the figure to the file at path; the format is
	// chosen by extension.
	Save(path string) error
}

// Axes is one coordinate system of a figure.
type Axes interface {
	// Line draws the series y over x and returns a handle for later
	// styling. Lengths of xs and ys must match.
	Line(xs, ys []float64, label string) Line

	SetTitle(string)
	SetXLabel(string)
	SetYLabel(string)

	// Axis limits; a nil bound leaves that side to the backend's
	// autoscaling.
	SetXLim(lo, hi *float64)
	SetYLim(lo, hi *float64)

	SetXScale(ScaleType)
	SetYScale(ScaleType)

	SetXTickFormat(TickFormatter)
	SetYTickFormat(TickFormatter)
	XTickFormat() TickFormatter
	YTickFormat() TickFormatter

	// HideSpines removes the top and right plot border.
	HideSpines(bool)

	Legend() Legend
}

// Line is the styling handle of one drawn series.
type Line interface {
	SetWidth(float64) // in points
	SetColor(color.Color)
	SetStyle(LineType)
	SetMarker(PointShape)
	SetMarkerSize(float64)
}

// Legend is the styling handle of an axes' legend.
type Legend interface {
	SetLocation(string) // "best", "upper right", "center left", ...
	SetFontSize(float64)
	SetFrame(bool)
	SetDraggable(bool) // ignored by static-image backends
}

// Formatter closures produced by the Make*Formatter factories and
// accepted by every Plotter method. Lines and legend formatters get
// all objects of the figure at once, matching the original call
// signatures.
type (
	AxesFormatter   func(Axes)
	LinesFormatter  func([]Line)
	LegendFormatter func([]Legend)
)
