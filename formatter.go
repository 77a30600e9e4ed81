package plotlib

import "fmt"

// Options is the argument bag of the formatter factories. Every
// factory validates the keys against its recognized set and the value
// types before anything is drawn; an unknown key is a ConfigError.
type Options map[string]interface{}

func (o Options) float(key string, def float64) (float64, error) {
	v, ok := o[key]
	if !ok {
		return def, nil
	}
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	}
	return 0, &ConfigError{Key: key, Reason: fmt.Sprintf("want a number, got %T", v)}
}

// optFloat distinguishes "absent" from a given value, for one-sided
// axis limits.
func (o Options) optFloat(key string) (*float64, error) {
	if _, ok := o[key]; !ok {
		return nil, nil
	}
	v, err := o.float(key, 0)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (o Options) str(key, def string) (string, error) {
	v, ok := o[key]
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", &ConfigError{Key: key, Reason: fmt.Sprintf("want a string, got %T", v)}
	}
	return s, nil
}

func (o Options) boolean(key string, def bool) (bool, error) {
	v, ok := o[key]
	if !ok {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, &ConfigError{Key: key, Reason: fmt.Sprintf("want a bool, got %T", v)}
	}
	return b, nil
}

func (o Options) checkKeys(recognized StringSet) error {
	for key := range o {
		if !recognized.Contains(key) {
			return &ConfigError{Key: key, Reason: "unrecognized option"}
		}
	}
	return nil
}

// -------------------------------------------------------------------------
// Axes formatter

var axesOptions = NewStringSetFrom([]string{
	"xlim_left", "xlim_right", "ylim_bottom", "ylim_top",
	"xscale", "yscale", "xscaler", "yscaler",
	"x_format", "y_format", "hide_spines", "custom",
})

// MakeAxesFormatter builds a reusable axes preset. Recognized options:
//
//	xlim_left, xlim_right    float64  axis limits, each side optional
//	ylim_bottom, ylim_top    float64
//	xscale, yscale           string   "linear" (default) or "log"
//	xscaler, yscaler         float64  tick value multiplier, default 1
//	x_format, y_format       string   fmt verb for ticks, default "%.2f"
//	hide_spines              bool     drop top/right border, default true
//	custom                   []func(Axes)  applied last, in order
func MakeAxesFormatter(opts Options) (AxesFormatter, error) {
	if err := opts.checkKeys(axesOptions); err != nil {
		return nil, err
	}

	xlo, err := opts.optFloat("xlim_left")
	if err != nil {
		return nil, err
	}
	xhi, err := opts.optFloat("xlim_right")
	if err != nil {
		return nil, err
	}
	ylo, err := opts.optFloat("ylim_bottom")
	if err != nil {
		return nil, err
	}
	yhi, err := opts.optFloat("ylim_top")
	if err != nil {
		return nil, err
	}

	xscaleName, err := opts.str("xscale", "linear")
	if err != nil {
		return nil, err
	}
	xscale, err := String2ScaleType(xscaleName)
	if err != nil {
		return nil, err
	}
	yscaleName, err := opts.str("yscale", "linear")
	if err != nil {
		return nil, err
	}
	yscale, err := String2ScaleType(yscaleName)
	if err != nil {
		return nil, err
	}

	xscaler, err := opts.float("xscaler", 1)
	if err != nil {
		return nil, err
	}
	yscaler, err := opts.float("yscaler", 1)
	if err != nil {
		return nil, err
	}
	xFormat, err := opts.str("x_format", "%.2f")
	if err != nil {
		return nil, err
	}
	yFormat, err := opts.str("y_format", "%.2f")
	if err != nil {
		return nil, err
	}
	hideSpines, err := opts.boolean("hide_spines", true)
	if err != nil {
		return nil, err
	}
	custom, err := axesCallbacks(opts)
	if err != nil {
		return nil, err
	}

	return func(ax Axes) {
		ax.SetXScale(xscale)
		ax.SetXLim(xlo, xhi)
		ax.SetXTickFormat(FormatTicks(xFormat, xscaler))
		ax.SetYScale(yscale)
		ax.SetYLim(ylo, yhi)
		ax.SetYTickFormat(FormatTicks(yFormat, yscaler))
		ax.HideSpines(hideSpines)
		for _, f := range custom {
			f(ax)
		}
	}, nil
}

func axesCallbacks(opts Options) ([]func(Axes), error) {
	v, ok := opts["custom"]
	if !ok {
		return nil, nil
	}
	fns, ok := v.([]func(Axes))
	if !ok {
		return nil, &ConfigError{Key: "custom", Reason: fmt.Sprintf("want []func(Axes), got %T", v)}
	}
	return fns, nil
}

// -------------------------------------------------------------------------
// Lines formatter

var linesOptions = NewStringSetFrom([]string{
	"width", "color", "style", "marker", "marker_size", "custom",
})

// MakeLinesFormatter builds a reusable line-style preset. Recognized
// options:
//
//	width        float64  line width in points, default 3
//	color        string   style.go color syntax, default "blue"
//	style        string   line type name, default "solid"
//	marker       string   point shape name, default none
//	marker_size  float64  default 6
//	custom       []func(Line)  applied last, in order
func MakeLinesFormatter(opts Options) (LinesFormatter, error) {
	if err := opts.checkKeys(linesOptions); err != nil {
		return nil, err
	}

	width, err := opts.float("width", 3)
	if err != nil {
		return nil, err
	}
	colorName, err := opts.str("color", "blue")
	if err != nil {
		return nil, err
	}
	styleName, err := opts.str("style", "solid")
	if err != nil {
		return nil, err
	}
	markerName, err := opts.str("marker", "")
	if err != nil {
		return nil, err
	}
	markerSize, err := opts.float("marker_size", 6)
	if err != nil {
		return nil, err
	}
	var custom []func(Line)
	if v, ok := opts["custom"]; ok {
		fns, ok := v.([]func(Line))
		if !ok {
			return nil, &ConfigError{Key: "custom", Reason: fmt.Sprintf("want []func(Line), got %T", v)}
		}
		custom = fns
	}

	col := String2Color(colorName)
	style := String2LineType(styleName)
	marker := String2PointShape(markerName)

	return func(lines []Line) {
		for _, line := range lines {
			line.SetWidth(width)
			line.SetColor(col)
			line.SetStyle(style)
			line.SetMarker(marker)
			if marker != BlankPoint {
				line.SetMarkerSize(markerSize)
			}
			for _, f := range custom {
				f(line)
			}
		}
	}, nil
}

// -------------------------------------------------------------------------
// Legend formatter

var legendOptions = NewStringSetFrom([]string{
	"location", "font_size", "frame", "draggable", "custom",
})

// MakeLegendFormatter builds a reusable legend preset. Recognized
// options:
//
//	location   string   legend placement, default "best"
//	font_size  float64  default 12
//	frame      bool     draw a frame, default false
//	draggable  bool     default true; static backends ignore it
//	custom     []func(Legend)  applied last, in order
func MakeLegendFormatter(opts Options) (LegendFormatter, error) {
	if err := opts.checkKeys(legendOptions); err != nil {
		return nil, err
	}

	location, err := opts.str("location", "best")
	if err != nil {
		return nil, err
	}
	fontSize, err := opts.float("font_size", 12)
	if err != nil {
		return nil, err
	}
	frame, err := opts.boolean("frame", false)
	if err != nil {
		return nil, err
	}
	draggable, err := opts.boolean("draggable", true)
	if err != nil {
		return nil, err
	}
	var custom []func(Legend)
	if v, ok := opts["custom"]; ok {
		fns, ok := v.([]func(Legend))
		if !ok {
			return nil, &ConfigError{Key: "custom", Reason: fmt.Sprintf("want []func(Legend), got %T", v)}
		}
		custom = fns
	}

	return func(legends []Legend) {
		for _, leg := range legends {
			leg.SetFontSize(fontSize)
			leg.SetFrame(frame)
			leg.SetDraggable(draggable)
			leg.SetLocation(location)
			for _, f := range custom {
				f(leg)
			}
		}
	}, nil
}
