package gonumplot

import (
	"math"
	"testing"

	"gonum.org/v1/plot"

	"github.com/SJRBCXK/PlotLib"
)

func TestLineSkipsNaN(t *testing.T) {
	fig := New().NewFigure(4, 3)
	ax := fig.Axes().(*axes)

	ln := ax.Line([]float64{0, 1, math.NaN(), 3}, []float64{1, math.NaN(), 2, 4}, "s").(*line)
	if len(ln.pts) != 2 {
		t.Errorf("Got %d points, want 2", len(ln.pts))
	}
	if len(ln.pts) == 2 && (ln.pts[1].X != 3 || ln.pts[1].Y != 4) {
		t.Errorf("Got last point (%g, %g), want (3, 4)", ln.pts[1].X, ln.pts[1].Y)
	}

	clean := ax.Line([]float64{0, 1, 2}, []float64{1, 2, 3}, "").(*line)
	if len(clean.pts) != 3 {
		t.Errorf("Got %d points, want 3", len(clean.pts))
	}
}

func TestFormattedTicks(t *testing.T) {
	f := plotlib.FormatTicks("%.1f", 1)
	ticker := makeTicker(false, f)
	ticks := ticker.Ticks(0, 10)
	if len(ticks) == 0 {
		t.Fatalf("no ticks")
	}
	for _, tick := range ticks {
		if tick.Label == "" {
			continue // minor tick
		}
		want := f(tick.Value)
		if tick.Label != want {
			t.Errorf("tick at %g labelled %q, want %q", tick.Value, tick.Label, want)
		}
	}

	// Without a formatter the base ticker passes through untouched.
	if _, ok := makeTicker(false, nil).(plot.DefaultTicks); !ok {
		t.Errorf("nil formatter should keep the default ticker")
	}
	if _, ok := makeTicker(true, nil).(plot.LogTicks); !ok {
		t.Errorf("log scale should use log ticks")
	}
}

func TestAxesState(t *testing.T) {
	fig := New().NewFigure(4, 3)
	ax := fig.Axes().(*axes)

	ax.SetTitle("t")
	ax.SetXLabel("x")
	ax.SetYLabel("y")
	if ax.p.Title.Text != "t" || ax.p.X.Label.Text != "x" || ax.p.Y.Label.Text != "y" {
		t.Errorf("labels not applied")
	}

	lo, hi := 1.0, 9.0
	ax.SetXLim(&lo, &hi)
	ax.SetYLim(nil, &hi)
	if ax.p.X.Min != 1 || ax.p.X.Max != 9 || ax.p.Y.Max != 9 {
		t.Errorf("limits not applied: x [%g %g], y max %g", ax.p.X.Min, ax.p.X.Max, ax.p.Y.Max)
	}

	ax.SetYScale(plotlib.LogScale)
	if _, ok := ax.p.Y.Scale.(plot.LogScale); !ok {
		t.Errorf("y scale is not logarithmic")
	}
	if _, ok := ax.p.Y.Tick.Marker.(plot.LogTicks); !ok {
		t.Errorf("y ticks do not follow the log scale")
	}
}

func TestLegendLocation(t *testing.T) {
	tests := []struct {
		loc       string
		top, left bool
	}{
		{"best", true, false},
		{"upper left", true, true},
		{"center left", true, true},
		{"lower right", false, false},
		{"lower left", false, true},
	}
	for _, test := range tests {
		fig := New().NewFigure(4, 3)
		ax := fig.Axes().(*axes)
		ax.Legend().SetLocation(test.loc)
		if ax.p.Legend.Top != test.top || ax.p.Legend.Left != test.left {
			t.Errorf("%q: got top=%v left=%v, want top=%v left=%v",
				test.loc, ax.p.Legend.Top, ax.p.Legend.Left, test.top, test.left)
		}
	}
}

func TestGlyphMapping(t *testing.T) {
	shapes := []plotlib.PointShape{
		plotlib.CirclePoint, plotlib.SolidCirclePoint,
		plotlib.SquarePoint, plotlib.SolidSquarePoint,
		plotlib.DeltaPoint, plotlib.NablaPoint,
		plotlib.CrossPoint, plotlib.PlusPoint,
	}
	for _, s := range shapes {
		if glyph(s) == nil {
			t.Errorf("shape %v has no glyph", s)
		}
	}
}
