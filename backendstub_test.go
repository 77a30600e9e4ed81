package plotlib

import "image/color"

// The rec* types implement the backend interfaces and only record
// what was drawn. Shared by the formatter and plotter tests.

type recBackend struct {
	figs []*recFigure
}

func (b *recBackend) NewFigure(w, h float64) Figure {
	f := &recFigure{width: w, height: h}
	b.figs = append(b.figs, f)
	return f
}

// lineCount sums the drawn series over all figures.
func (b *recBackend) lineCount() int {
	n := 0
	for _, f := range b.figs {
		if f.primary != nil {
			n += len(f.primary.lines)
		}
		if f.twin != nil {
			n += len(f.twin.lines)
		}
	}
	return n
}

type recFigure struct {
	width, height float64
	primary, twin *recAxes
	saved         []string
}

func (f *recFigure) Axes() Axes {
	if f.primary == nil {
		f.primary = &recAxes{}
	}
	return f.primary
}

func (f *recFigure) TwinY() Axes {
	if f.twin == nil {
		f.twin = &recAxes{}
	}
	return f.twin
}

func (f *recFigure) Save(path string) error {
	f.saved = append(f.saved, path)
	return nil
}

type recAxes struct {
	lines []*recLine

	title, xlabel, ylabel string
	xlo, xhi, ylo, yhi    *float64
	xscale, yscale        ScaleType
	xfmt, yfmt            TickFormatter
	spinesHidden          bool
	legend                recLegend

	// calls logs the mutating calls in order, for the
	// defaults-then-formatter ordering tests.
	calls []string
}

func (a *recAxes) log(c string) { a.calls = append(a.calls, c) }

func (a *recAxes) Line(xs, ys []float64, label string) Line {
	a.log("Line")
	ln := &recLine{xs: xs, ys: ys, label: label}
	a.lines = append(a.lines, ln)
	return ln
}

func (a *recAxes) SetTitle(s string)  { a.log("SetTitle"); a.title = s }
func (a *recAxes) SetXLabel(s string) { a.log("SetXLabel"); a.xlabel = s }
func (a *recAxes) SetYLabel(s string) { a.log("SetYLabel"); a.ylabel = s }

func (a *recAxes) SetXLim(lo, hi *float64) { a.log("SetXLim"); a.xlo, a.xhi = lo, hi }
func (a *recAxes) SetYLim(lo, hi *float64) { a.log("SetYLim"); a.ylo, a.yhi = lo, hi }

func (a *recAxes) SetXScale(s ScaleType) { a.log("SetXScale"); a.xscale = s }
func (a *recAxes) SetYScale(s ScaleType) { a.log("SetYScale"); a.yscale = s }

func (a *recAxes) SetXTickFormat(f TickFormatter) { a.log("SetXTickFormat"); a.xfmt = f }
func (a *recAxes) SetYTickFormat(f TickFormatter) { a.log("SetYTickFormat"); a.yfmt = f }
func (a *recAxes) XTickFormat() TickFormatter { return a.xfmt }
func (a *recAxes) YTickFormat() TickFormatter { return a.yfmt }

func (a *recAxes) HideSpines(h bool) { a.log("HideSpines"); a.spinesHidden = h }

func (a *recAxes) Legend() Legend { return &a.legend }

type recLine struct {
	xs, ys []float64
	label  string

	width      float64
	color      color.Color
	style      LineType
	marker     PointShape
	markerSize float64

	ops []string
}

func (l *recLine) SetWidth(w float64) { l.ops = append(l.ops, "SetWidth"); l.width = w }
func (l *recLine) SetColor(c color.Color) { l.ops = append(l.ops, "SetColor"); l.color = c }
func (l *recLine) SetStyle(t LineType) { l.ops = append(l.ops, "SetStyle"); l.style = t }
func (l *recLine) SetMarker(s PointShape) { l.ops = append(l.ops, "SetMarker"); l.marker = s }
func (l *recLine) SetMarkerSize(s float64) { l.ops = append(l.ops, "SetMarkerSize"); l.markerSize = s }

type recLegend struct {
	location  string
	fontSize  float64
	frame     bool
	draggable bool
}

func (l *recLegend) SetLocation(s string) { l.location = s }
func (l *recLegend) SetFontSize(s float64) { l.fontSize = s }
func (l *recLegend) SetFrame(f bool) { l.frame = f }
func (l *recLegend) SetDraggable(d bool) { l.draggable = d }
