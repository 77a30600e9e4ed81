// Package gonumplot implements plotlib.Backend on gonum.org/v1/plot.
//
// Figures are rendered lazily: draw calls only record state on the
// underlying *plot.Plot, the image is produced by Save. Dual-axis
// figures are composed from two plots drawn into one canvas.
package gonumplot

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/SJRBCXK/PlotLib"
)

// Backend creates gonum/plot figures.
type Backend struct{}

// New returns a ready to use backend.
func New() *Backend { return &Backend{} }

func (b *Backend) NewFigure(width, height float64) plotlib.Figure {
	return &figure{
		width:  vg.Length(width) * vg.Inch,
		height: vg.Length(height) * vg.Inch,
	}
}

type figure struct {
	width, height vg.Length
	primary       *axes
	twin          *axes
}

func (f *figure) Axes() plotlib.Axes {
	if f.primary == nil {
		f.primary = newAxes()
	}
	return f.primary
}

func (f *figure) TwinY() plotlib.Axes {
	if f.twin == nil {
		f.Axes() // the primary owns the x axis
		f.twin = newAxes()
		f.twin.p.HideX()
	}
	return f.twin
}

func (f *figure) Save(path string) error {
	if f.primary == nil {
		return fmt.Errorf("save %s: empty figure", path)
	}
	if f.twin == nil {
		return f.primary.p.Save(f.width, f.height, path)
	}

	// Dual axis: share the primary's x range, then draw both plots
	// into one canvas.
	f.twin.p.X.Min = f.primary.p.X.Min
	f.twin.p.X.Max = f.primary.p.X.Max
	f.twin.p.X.Scale = f.primary.p.X.Scale

	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		c := vgsvg.New(f.width, f.height)
		dc := draw.New(c)
		f.primary.p.Draw(dc)
		f.twin.p.Draw(dc)
		w, err := os.Create(path)
		if err != nil {
			return err
		}
		defer w.Close()
		_, err = c.WriteTo(w)
		return err
	default:
		c := vgimg.New(f.width, f.height)
		dc := draw.New(c)
		f.primary.p.Draw(dc)
		f.twin.p.Draw(dc)
		w, err := os.Create(path)
		if err != nil {
			return err
		}
		defer w.Close()
		_, err = vgimg.PngCanvas{Canvas: c}.WriteTo(w)
		return err
	}
}

type axes struct {
	p          *plot.Plot
	xFmt, yFmt plotlib.TickFormatter
	xLog, yLog bool
}

func newAxes() *axes {
	p, err := plot.New()
	if err != nil {
		// plot.New only fails when the default font cannot be
		// loaded, which makes every later draw pointless too.
		panic(err)
	}
	return &axes{p: p}
}

func (a *axes) Line(xs, ys []float64, label string) plotlib.Line {
	pts := make(plotter.XYs, 0, len(xs))
	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			continue
		}
		pts = append(pts, plotter.XY{X: xs[i], Y: ys[i]})
	}
	ln, err := plotter.NewLine(pts)
	if err != nil {
		panic(err) // cannot happen, NewLine only copies the points
	}
	a.p.Add(ln)
	if label != "" {
		a.p.Legend.Add(label, ln)
	}
	return &line{ax: a, ln: ln, pts: pts, label: label}
}

func (a *axes) SetTitle(s string)  { a.p.Title.Text = s }
func (a *axes) SetXLabel(s string) { a.p.X.Label.Text = s }
func (a *axes) SetYLabel(s string) { a.p.Y.Label.Text = s }

func (a *axes) SetXLim(lo, hi *float64) {
	if lo != nil {
		a.p.X.Min = *lo
	}
	if hi != nil {
		a.p.X.Max = *hi
	}
}

func (a *axes) SetYLim(lo, hi *float64) {
	if lo != nil {
		a.p.Y.Min = *lo
	}
	if hi != nil {
		a.p.Y.Max = *hi
	}
}

func (a *axes) SetXScale(s plotlib.ScaleType) {
	a.xLog = s == plotlib.LogScale
	if a.xLog {
		a.p.X.Scale = plot.LogScale{}
	} else {
		a.p.X.Scale = plot.LinearScale{}
	}
	a.syncTicks()
}

func (a *axes) SetYScale(s plotlib.ScaleType) {
	a.yLog = s == plotlib.LogScale
	if a.yLog {
		a.p.Y.Scale = plot.LogScale{}
	} else {
		a.p.Y.Scale = plot.LinearScale{}
	}
	a.syncTicks()
}

func (a *axes) SetXTickFormat(f plotlib.TickFormatter) {
	a.xFmt = f
	a.syncTicks()
}

func (a *axes) SetYTickFormat(f plotlib.TickFormatter) {
	a.yFmt = f
	a.syncTicks()
}

func (a *axes) XTickFormat() plotlib.TickFormatter { return a.xFmt }
func (a *axes) YTickFormat() plotlib.TickFormatter { return a.yFmt }

// syncTicks rebuilds the tick markers so scale and label format stay
// consistent no matter in which order they were set.
func (a *axes) syncTicks() {
	a.p.X.Tick.Marker = makeTicker(a.xLog, a.xFmt)
	a.p.Y.Tick.Marker = makeTicker(a.yLog, a.yFmt)
}

func makeTicker(log bool, f plotlib.TickFormatter) plot.Ticker {
	var base plot.Ticker = plot.DefaultTicks{}
	if log {
		base = plot.LogTicks{}
	}
	if f == nil {
		return base
	}
	return formattedTicks{base: base, format: f}
}

// formattedTicks relabels the ticks of a base ticker.
type formattedTicks struct {
	base   plot.Ticker
	format plotlib.TickFormatter
}

func (t formattedTicks) Ticks(min, max float64) []plot.Tick {
	ticks := t.base.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = t.format(ticks[i].Value)
		}
	}
	return ticks
}

// HideSpines is a no-op: gonum/plot draws no top or right border to
// begin with.
func (a *axes) HideSpines(bool) {}

func (a *axes) Legend() plotlib.Legend { return &legend{p: a.p} }

type line struct {
	ax      *axes
	ln      *plotter.Line
	scatter *plotter.Scatter
	pts     plotter.XYs
	label   string
}

func (l *line) SetWidth(w float64) { l.ln.LineStyle.Width = vg.Points(w) }

func (l *line) SetColor(c color.Color) {
	l.ln.LineStyle.Color = c
	if l.scatter != nil {
		l.scatter.GlyphStyle.Color = c
	}
}

func (l *line) SetStyle(t plotlib.LineType) {
	if t == plotlib.BlankLine {
		l.ln.LineStyle.Width = 0
		return
	}
	dashes := t.Dashes()
	pattern := make([]vg.Length, len(dashes))
	for i, d := range dashes {
		pattern[i] = vg.Points(d)
	}
	l.ln.LineStyle.Dashes = pattern
}

func (l *line) SetMarker(s plotlib.PointShape) {
	if s == plotlib.BlankPoint {
		if l.scatter != nil {
			l.scatter.GlyphStyle.Radius = 0
		}
		return
	}
	if l.scatter == nil {
		sc, err := plotter.NewScatter(l.pts)
		if err != nil {
			panic(err) // cannot happen, NewScatter only copies the points
		}
		sc.GlyphStyle.Color = l.ln.LineStyle.Color
		sc.GlyphStyle.Radius = vg.Points(3)
		l.ax.p.Add(sc)
		l.scatter = sc
	}
	l.scatter.GlyphStyle.Shape = glyph(s)
}

func (l *line) SetMarkerSize(size float64) {
	if l.scatter == nil {
		l.SetMarker(plotlib.CirclePoint)
	}
	l.scatter.GlyphStyle.Radius = vg.Points(size / 2)
}

func glyph(s plotlib.PointShape) draw.GlyphDrawer {
	switch s {
	case plotlib.CirclePoint:
		return draw.RingGlyph{}
	case plotlib.SolidCirclePoint:
		return draw.CircleGlyph{}
	case plotlib.SquarePoint, plotlib.DiamondPoint:
		// no diamond glyph in gonum/plot
		return draw.SquareGlyph{}
	case plotlib.SolidSquarePoint:
		return draw.BoxGlyph{}
	case plotlib.DeltaPoint:
		return draw.TriangleGlyph{}
	case plotlib.NablaPoint:
		return draw.PyramidGlyph{}
	case plotlib.CrossPoint:
		return draw.CrossGlyph{}
	case plotlib.PlusPoint:
		return draw.PlusGlyph{}
	}
	return draw.RingGlyph{}
}

type legend struct {
	p *plot.Plot
}

// SetLocation maps matplotlib style location names onto the two
// corner flags gonum/plot legends have.
func (l *legend) SetLocation(loc string) {
	switch loc {
	case "upper left", "center left", "left":
		l.p.Legend.Top = true
		l.p.Legend.Left = true
	case "lower left":
		l.p.Legend.Top = false
		l.p.Legend.Left = true
	case "lower right":
		l.p.Legend.Top = false
		l.p.Legend.Left = false
	default: // "best", "upper right", ...
		l.p.Legend.Top = true
		l.p.Legend.Left = false
	}
}

func (l *legend) SetFontSize(size float64) {
	l.p.Legend.TextStyle.Font.Size = vg.Points(size)
}

// SetFrame is a no-op: gonum/plot legends are always frameless.
func (l *legend) SetFrame(bool) {}

// SetDraggable is a no-op on a static image backend.
func (l *legend) SetDraggable(bool) {}
