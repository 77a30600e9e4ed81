package plotlib

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/aclements/go-moremath/vec"
)

// -------------------------------------------------------------------------
// Points

type PointShape int

const (
	BlankPoint PointShape = iota
	CirclePoint
	SquarePoint
	DiamondPoint
	DeltaPoint
	NablaPoint
	SolidCirclePoint
	SolidSquarePoint
	CrossPoint
	PlusPoint
)

func String2PointShape(s string) PointShape {
	n, err := strconv.Atoi(s)
	if err == nil {
		return PointShape(n % (int(PlusPoint) + 1))
	}
	switch s {
	case "circle":
		return CirclePoint
	case "square":
		return SquarePoint
	case "diamond":
		return DiamondPoint
	case "delta":
		return DeltaPoint
	case "nabla":
		return NablaPoint
	case "solid-circle":
		return SolidCirclePoint
	case "solid-square":
		return SolidSquarePoint
	case "cross":
		return CrossPoint
	case "plus":
		return PlusPoint
	}
	return BlankPoint
}

// -------------------------------------------------------------------------
// Lines

type LineType int

const (
	BlankLine LineType = iota
	SolidLine
	DashedLine
	DottedLine
	DotDashLine
	LongdashLine
	TwodashLine
)

func String2LineType(s string) LineType {
	n, err := strconv.Atoi(s)
	if err == nil {
		return LineType(n % (int(TwodashLine) + 1))
	}
	switch s {
	case "blank":
		return BlankLine
	case "solid":
		return SolidLine
	case "dashed":
		return DashedLine
	case "dotted":
		return DottedLine
	case "dotdash":
		return DotDashLine
	case "longdash":
		return LongdashLine
	case "twodash":
		return TwodashLine
	default:
		return BlankLine
	}
}

// Dashes returns the dash pattern of t in units of line width.
// A nil pattern is a solid line, an empty drawing for BlankLine is
// the backend's business.
func (t LineType) Dashes() []float64 {
	switch t {
	case DashedLine:
		return []float64{4, 4}
	case DottedLine:
		return []float64{1, 3}
	case DotDashLine:
		return []float64{1, 3, 4, 3}
	case LongdashLine:
		return []float64{7, 3}
	case TwodashLine:
		return []float64{2, 2, 6, 2}
	}
	return nil
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.RGBA{
	"red":     color.RGBA{0xff, 0x00, 0x00, 0xff},
	"green":   color.RGBA{0x00, 0xff, 0x00, 0xff},
	"blue":    color.RGBA{0x00, 0x00, 0xff, 0xff},
	"cyan":    color.RGBA{0x00, 0xff, 0xff, 0xff},
	"magenta": color.RGBA{0xff, 0x00, 0xff, 0xff},
	"yellow":  color.RGBA{0xff, 0xff, 0x00, 0xff},
	"orange":  color.RGBA{0xff, 0x7f, 0x00, 0xff},
	"white":   color.RGBA{0xff, 0xff, 0xff, 0xff},
	"gray20":  color.RGBA{0x33, 0x33, 0x33, 0xff},
	"gray40":  color.RGBA{0x66, 0x66, 0x66, 0xff},
	"gray":    color.RGBA{0x7f, 0x7f, 0x7f, 0xff},
	"gray60":  color.RGBA{0x99, 0x99, 0x99, 0xff},
	"gray80":  color.RGBA{0xcc, 0xcc, 0xcc, 0xff},
	"black":   color.RGBA{0x00, 0x00, 0x00, 0xff},
}

func String2Color(s string) color.Color {
	if strings.HasPrefix(s, "#") && len(s) >= 7 {
		var r, g, b, a uint8
		fmt.Sscanf(s[1:3], "%2x", &r)
		fmt.Sscanf(s[3:5], "%2x", &g)
		fmt.Sscanf(s[5:7], "%2x", &b)
		a = 0xff
		if len(s) >= 9 {
			fmt.Sscanf(s[7:9], "%2x", &a)
		}
		return color.RGBA{r, g, b, a}
	}
	if col, ok := BuiltinColors[s]; ok {
		return col
	}

	return color.RGBA{0xaa, 0x66, 0x77, 0x7f}
}

// SetAlpha sets alpha to a in color c, discarding any alpha c had.
func SetAlpha(c color.Color, a float64) color.Color {
	r, g, b, _ := c.RGBA()
	r >>= 8
	g >>= 8
	b >>= 8
	a *= float64(0xff)
	return color.NRGBA{uint8(r), uint8(g), uint8(b), uint8(a)}
}

// -------------------------------------------------------------------------
// Colormaps

// Colormap maps a value in [0,1] to a color by piecewise linear
// interpolation between its stops.
type Colormap struct {
	Stops []color.RGBA
	pos   []float64
}

// NewColormap builds a colormap with evenly spaced stops.
func NewColormap(stops ...color.RGBA) Colormap {
	if len(stops) == 0 {
		stops = []color.RGBA{{0, 0, 0, 0xff}, {0xff, 0xff, 0xff, 0xff}}
	}
	if len(stops) == 1 {
		stops = append(stops, stops[0])
	}
	return Colormap{
		Stops: stops,
		pos:   vec.Linspace(0, 1, len(stops)),
	}
}

// At returns the color at t. Values outside [0,1] are clamped.
func (m Colormap) At(t float64) color.Color {
	if t <= 0 {
		return m.Stops[0]
	}
	if t >= 1 {
		return m.Stops[len(m.Stops)-1]
	}
	i := 1
	for i < len(m.pos)-1 && m.pos[i] < t {
		i++
	}
	lo, hi := m.Stops[i-1], m.Stops[i]
	f := (t - m.pos[i-1]) / (m.pos[i] - m.pos[i-1])
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + f*(float64(b)-float64(a)))
	}
	return color.RGBA{
		R: lerp(lo.R, hi.R),
		G: lerp(lo.G, hi.G),
		B: lerp(lo.B, hi.B),
		A: lerp(lo.A, hi.A),
	}
}

// Plasma approximates matplotlib's plasma map, the default group
// colormap of the plotter.
var Plasma = NewColormap(
	color.RGBA{0x0d, 0x08, 0x87, 0xff},
	color.RGBA{0x6a, 0x00, 0xa8, 0xff},
	color.RGBA{0xb1, 0x2a, 0x90, 0xff},
	color.RGBA{0xe1, 0x66, 0x62, 0xff},
	color.RGBA{0xfc, 0xa6, 0x36, 0xff},
	color.RGBA{0xf0, 0xf9, 0x21, 0xff},
)
