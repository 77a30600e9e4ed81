package plotlib

import (
	"image/color"
	"sort"
)

// GroupSpec configures one labelled entry of a grouped plot: the
// dataset groups drawn under the label and their style overrides.
type GroupSpec struct {
	Members []int       // dataset group indices
	Style   LineType    // line type override for merged plots
	Color   color.Color // nil: take the color from the colormap
}

// GroupConfig maps plot labels to their GroupSpec. It is supplied per
// call and not owned by the DataSet.
type GroupConfig map[string]GroupSpec

// PlotOptions carries the optional per-call formatters of the plot
// methods. NegLogX/NegLogY draw the magnitude of the values on a log
// scale with minus-prefixed tick labels, for quantities that are
// negative in the raw data (e.g. the imaginary part of an impedance).
type PlotOptions struct {
	Axes   AxesFormatter
	Lines  LinesFormatter
	Legend LegendFormatter

	NegLogX bool
	NegLogY bool
}

// XYYOptions is the dual-axis variant of PlotOptions with one slot per
// axis plus a combined callback running last.
type XYYOptions struct {
	Axes1, Axes2     AxesFormatter
	Lines1, Lines2   LinesFormatter
	Legend1, Legend2 LegendFormatter

	NegLogX1, NegLogY1 bool
	NegLogX2, NegLogY2 bool

	// Custom sees both axes at once, after everything else.
	Custom func(ax1, ax2 Axes)
}

// Plotter renders a DataSet through a Backend. All validation happens
// before the first draw call of a method; on error no figure is
// produced.
type Plotter struct {
	ds      *DataSet
	backend Backend

	Theme    Theme
	Colormap Colormap

	// Groups configures GroupPlot. An empty config falls back to
	// PlotLines.
	Groups GroupConfig

	// XCol and YCol are the group-local column indices plotted by
	// PlotLines and GroupPlot.
	XCol, YCol int

	// PlotRange caps the number of rows drawn per series. Zero means
	// all rows; values beyond the row count are clamped; negative
	// values are rejected.
	PlotRange int
}

// NewPlotter returns a Plotter over ds with the default theme, plasma
// colormap and x/y at group-local columns 0 and 1.
func NewPlotter(ds *DataSet, backend Backend) *Plotter {
	return &Plotter{
		ds:       ds,
		backend:  backend,
		Theme:    DefaultTheme,
		Colormap: Plasma,
		XCol:     0,
		YCol:     1,
	}
}

// series pairs the two columns of one drawn line.
type series struct {
	x, y Column
}

// resolveSeries looks up the x/y columns of every listed group. It
// runs before any figure exists, so a group that lacks one of the
// requested columns (a legal result of a selection) fails the whole
// call without a single draw.
func (p *Plotter) resolveSeries(groups []int, xLocal, yLocal int) ([]series, error) {
	out := make([]series, 0, len(groups))
	for _, g := range groups {
		xc, err := p.ds.groupColumn(g, xLocal)
		if err != nil {
			return nil, err
		}
		yc, err := p.ds.groupColumn(g, yLocal)
		if err != nil {
			return nil, err
		}
		out = append(out, series{x: xc, y: yc})
	}
	return out, nil
}

// PlotLines draws one series per dataset group into a single figure,
// x from XCol and y from YCol of each group.
func (p *Plotter) PlotLines(opts PlotOptions) (Figure, error) {
	if err := p.checkLocals(p.XCol, p.YCol); err != nil {
		return nil, err
	}
	n, err := p.rowRange()
	if err != nil {
		return nil, err
	}
	all, err := p.resolveSeries(p.ds.Groups(), p.XCol, p.YCol)
	if err != nil {
		return nil, err
	}

	fig := p.backend.NewFigure(p.Theme.FigureWidth, p.Theme.FigureHeight)
	ax := fig.Axes()

	var lines []Line
	var xUnit, yUnit string
	for i, s := range all {
		xUnit, yUnit = s.x.Unit, s.y.Unit

		xs := seriesValues(s.x.Data[:n], negLogTransform(opts.NegLogX))
		ys := seriesValues(s.y.Data[:n], negLogTransform(opts.NegLogY))
		line := ax.Line(xs, ys, s.y.Name)
		p.defaultLine(line)
		line.SetColor(p.groupColor(i, len(all)))
		lines = append(lines, line)
	}

	p.defaultAxes(ax, xUnit, yUnit)
	p.applyFormatters(ax, lines, opts)
	applyNegLog(ax, opts.NegLogX, opts.NegLogY)
	return fig, nil
}

// GroupPlot draws the groups configured in p.Groups. With merge false
// every label gets its own figure; with merge true all labels share
// one figure and the per-label style overrides keep them apart. An
// empty config falls back to PlotLines.
func (p *Plotter) GroupPlot(merge bool, opts PlotOptions) ([]Figure, error) {
	if len(p.Groups) == 0 {
		fig, err := p.PlotLines(opts)
		if err != nil {
			return nil, err
		}
		return []Figure{fig}, nil
	}

	if err := p.checkLocals(p.XCol, p.YCol); err != nil {
		return nil, err
	}
	n, err := p.rowRange()
	if err != nil {
		return nil, err
	}
	present := NewIntSetFrom(p.ds.GroupsIdx)
	labels := make([]string, 0, len(p.Groups))
	for label := range p.Groups {
		labels = append(labels, label)
		for _, g := range p.Groups[label].Members {
			if !present.Contains(g) {
				return nil, &RangeError{What: "group", Index: g, Limit: p.ds.NumGroups}
			}
		}
	}
	sort.Strings(labels) // map order must not leak into the output

	// Every column lookup of every label happens before the first
	// figure exists.
	resolved := make([][]series, len(labels))
	for i, label := range labels {
		s, err := p.resolveSeries(p.Groups[label].Members, p.XCol, p.YCol)
		if err != nil {
			return nil, err
		}
		resolved[i] = s
	}

	var figs []Figure
	var fig Figure
	var ax Axes
	var lines []Line
	var xUnit, yUnit string

	if merge {
		fig = p.backend.NewFigure(p.Theme.FigureWidth, p.Theme.FigureHeight)
		ax = fig.Axes()
		figs = append(figs, fig)
	}

	total := p.ds.NumGroups
	for i, label := range labels {
		spec := p.Groups[label]
		if !merge {
			fig = p.backend.NewFigure(p.Theme.FigureWidth, p.Theme.FigureHeight)
			ax = fig.Axes()
			figs = append(figs, fig)
			lines = nil
		}

		for _, s := range resolved[i] {
			xUnit, yUnit = s.x.Unit, s.y.Unit

			xs := seriesValues(s.x.Data[:n], negLogTransform(opts.NegLogX))
			ys := seriesValues(s.y.Data[:n], negLogTransform(opts.NegLogY))
			line := ax.Line(xs, ys, s.y.Name)
			p.defaultLine(line)

			if merge {
				// One look per label: the label's color and line
				// type, not per-group colors.
				col := spec.Color
				if col == nil {
					col = p.groupColor(spec.Members[0], total)
				}
				line.SetColor(col)
				if spec.Style != BlankLine {
					line.SetStyle(spec.Style)
				}
			} else {
				line.SetColor(p.groupColor(s.y.GroupIdx, total))
			}
			lines = append(lines, line)
		}

		if !merge {
			p.defaultAxes(ax, xUnit, yUnit)
			p.applyFormatters(ax, lines, opts)
			applyNegLog(ax, opts.NegLogX, opts.NegLogY)
		}
	}

	if merge {
		p.defaultAxes(ax, xUnit, yUnit)
		p.applyFormatters(ax, lines, opts)
		applyNegLog(ax, opts.NegLogX, opts.NegLogY)
	}
	return figs, nil
}

// SubplotYY draws one figure per dataset group correlating two of its
// columns, e.g. Z' against -Z'' for a Nyquist plot.
func (p *Plotter) SubplotYY(y1, y2 int, opts PlotOptions) ([]Figure, error) {
	if err := p.checkLocals(y1, y2); err != nil {
		return nil, err
	}
	n, err := p.rowRange()
	if err != nil {
		return nil, err
	}
	all, err := p.resolveSeries(p.ds.Groups(), y1, y2)
	if err != nil {
		return nil, err
	}

	var figs []Figure
	for _, s := range all {
		fig := p.backend.NewFigure(p.Theme.FigureWidth, p.Theme.FigureHeight)
		ax := fig.Axes()
		line := ax.Line(
			seriesValues(s.x.Data[:n], negLogTransform(opts.NegLogX)),
			seriesValues(s.y.Data[:n], negLogTransform(opts.NegLogY)),
			s.x.Name)
		p.defaultLine(line)

		p.defaultAxes(ax, s.x.Unit, s.y.Unit)
		ax.Legend().SetLocation("lower right")
		p.applyFormatters(ax, []Line{line}, opts)
		applyNegLog(ax, opts.NegLogX, opts.NegLogY)
		figs = append(figs, fig)
	}
	return figs, nil
}

// SubplotXYY draws one dual-axis figure per dataset group: the series
// (x1,y1) on the left y axis and (x2,y2) on the right one, both
// sharing the x scale.
func (p *Plotter) SubplotXYY(x1, y1, x2, y2 int, opts XYYOptions) ([]Figure, error) {
	if err := p.checkLocals(x1, y1, x2, y2); err != nil {
		return nil, err
	}
	n, err := p.rowRange()
	if err != nil {
		return nil, err
	}
	groups := p.ds.Groups()
	left, err := p.resolveSeries(groups, x1, y1)
	if err != nil {
		return nil, err
	}
	right, err := p.resolveSeries(groups, x2, y2)
	if err != nil {
		return nil, err
	}

	var figs []Figure
	for i := range groups {
		fig := p.backend.NewFigure(p.Theme.FigureWidth, p.Theme.FigureHeight)
		ax1 := fig.Axes()
		line1 := ax1.Line(
			seriesValues(left[i].x.Data[:n], negLogTransform(opts.NegLogX1)),
			seriesValues(left[i].y.Data[:n], negLogTransform(opts.NegLogY1)),
			left[i].y.Name)
		p.defaultLine(line1)
		line1.SetColor(BuiltinColors["red"])

		ax2 := fig.TwinY()
		line2 := ax2.Line(
			seriesValues(right[i].x.Data[:n], negLogTransform(opts.NegLogX2)),
			seriesValues(right[i].y.Data[:n], negLogTransform(opts.NegLogY2)),
			right[i].y.Name)
		p.defaultLine(line2)
		line2.SetColor(BuiltinColors["blue"])

		p.defaultAxes(ax1, left[i].x.Unit, left[i].y.Unit)
		ax2.SetYLabel(right[i].y.Unit)
		ax2.SetYTickFormat(FormatTicks(p.Theme.TickFormat, 1))
		ax1.Legend().SetLocation("lower right")

		p.applyFormatters(ax1, []Line{line1}, PlotOptions{
			Axes: opts.Axes1, Lines: opts.Lines1, Legend: opts.Legend1,
		})
		p.applyFormatters(ax2, []Line{line2}, PlotOptions{
			Axes: opts.Axes2, Lines: opts.Lines2, Legend: opts.Legend2,
		})
		if opts.Custom != nil {
			opts.Custom(ax1, ax2)
		}
		applyNegLog(ax1, opts.NegLogX1, opts.NegLogY1)
		applyNegLog(ax2, opts.NegLogX2, opts.NegLogY2)
		figs = append(figs, fig)
	}
	return figs, nil
}

// -------------------------------------------------------------------------
// Internals

// checkLocals rejects group-local indices outside the dataset's group
// width. Runs before the backend is touched.
func (p *Plotter) checkLocals(locals ...int) error {
	w := p.ds.groupWidth()
	for _, l := range locals {
		if l < 0 || l >= w {
			return &RangeError{What: "group-local index", Index: l, Limit: w}
		}
	}
	return nil
}

// rowRange resolves PlotRange against the actual row count.
func (p *Plotter) rowRange() (int, error) {
	rows := p.ds.Rows()
	switch {
	case p.PlotRange < 0:
		return 0, &RangeError{What: "plot range", Index: p.PlotRange, Limit: rows + 1}
	case p.PlotRange == 0, p.PlotRange > rows:
		return rows, nil
	}
	return p.PlotRange, nil
}

func (p *Plotter) groupColor(i, total int) color.Color {
	if total <= 0 {
		total = 1
	}
	return p.Colormap.At(float64(i) / float64(total))
}

// defaultLine applies the theme's line style before any override.
func (p *Plotter) defaultLine(line Line) {
	line.SetWidth(p.Theme.LineWidth)
	line.SetStyle(p.Theme.LineType)
}

// defaultAxes applies the theme before any user formatter runs.
func (p *Plotter) defaultAxes(ax Axes, xLabel, yLabel string) {
	ax.SetXLabel(xLabel)
	ax.SetYLabel(yLabel)
	ax.SetXTickFormat(FormatTicks(p.Theme.TickFormat, 1))
	ax.SetYTickFormat(FormatTicks(p.Theme.TickFormat, 1))
	leg := ax.Legend()
	leg.SetLocation(p.Theme.LegendLocation)
	leg.SetFontSize(p.Theme.LegendFontSize)
	leg.SetFrame(false)
}

func (p *Plotter) applyFormatters(ax Axes, lines []Line, opts PlotOptions) {
	if opts.Axes != nil {
		opts.Axes(ax)
	}
	if opts.Lines != nil {
		opts.Lines(lines)
	}
	if opts.Legend != nil {
		opts.Legend([]Legend{ax.Legend()})
	}
}

// seriesValues copies the series through the value transform of its
// axis.
func seriesValues(src []float64, t ScaleTransform) []float64 {
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = t.Trans(v)
	}
	return out
}

// negLogTransform picks the transform of an axis that draws negated
// quantities, IdentityScale otherwise.
func negLogTransform(neg bool) ScaleTransform {
	if neg {
		return NegLogScale
	}
	return IdentityScale
}

// applyNegLog switches an axis to the negated-log scale with
// minus-prefixed tick labels. It runs after the user formatters, like
// the original pipeline: defaults, user formatters, negated-log
// decoration.
func applyNegLog(ax Axes, negX, negY bool) {
	if negX {
		ax.SetXScale(NegLogScale.Scale)
		ax.SetXTickFormat(NegLogScale.Labels(ax.XTickFormat()))
	}
	if negY {
		ax.SetYScale(NegLogScale.Scale)
		ax.SetYTickFormat(NegLogScale.Labels(ax.YTickFormat()))
	}
}
