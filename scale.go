package plotlib

import (
	"fmt"
	"math"
)

// ScaleType selects how an axis maps values to positions.
type ScaleType int

const (
	LinearScale ScaleType = iota
	LogScale
)

func String2ScaleType(s string) (ScaleType, error) {
	switch s {
	case "", "linear":
		return LinearScale, nil
	case "log":
		return LogScale, nil
	}
	return LinearScale, &ConfigError{Key: s, Reason: "unknown scale type"}
}

// -------------------------------------------------------------------------
// Scale Transformations

// ScaleTransform bundles everything an axis needs to draw transformed
// values: the axis scale, the per-value transform applied to the
// series, and the decoration of the tick labels.
type ScaleTransform struct {
	Scale  ScaleType
	Trans  func(float64) float64
	Format func(string) string
}

// Labels wraps a tick formatter with the transform's label decoration.
// A nil base falls back to the default format.
func (t ScaleTransform) Labels(base TickFormatter) TickFormatter {
	if base == nil {
		base = FormatTicks("", 1)
	}
	return func(x float64) string {
		return t.Format(base(x))
	}
}

var IdentityScale = ScaleTransform{
	Scale:  LinearScale,
	Trans:  func(x float64) float64 { return x },
	Format: func(s string) string { return s },
}

// NegLogScale displays magnitudes of negative quantities on a log
// axis, e.g. the imaginary impedance -Z'' of a Nyquist plot. Values
// are drawn as their magnitude and the tick labels get a minus prefix.
var NegLogScale = ScaleTransform{
	Scale:  LogScale,
	Trans:  math.Abs,
	Format: func(s string) string { return "-" + s },
}

// -------------------------------------------------------------------------
// Tick formatting

// TickFormatter renders a tick value as its label.
type TickFormatter func(float64) string

// FormatTicks returns a formatter applying the fmt verb to the tick
// value multiplied by scaler. An empty verb means "%.2f".
func FormatTicks(verb string, scaler float64) TickFormatter {
	if verb == "" {
		verb = "%.2f"
	}
	if scaler == 0 {
		scaler = 1
	}
	return func(x float64) string {
		return fmt.Sprintf(verb, x*scaler)
	}
}
