// Package plotlib loads grouped experiment data and renders standard
// chart types through a pluggable plotting backend.
//
// # Input Data
//
// Input files are tabular with a fixed column rhythm: every
// ColumnsPerDataset columns form one group describing one experimental
// dataset, led by an identifier column. Row 0 carries the group name
// (in the identifier column) and the units (in the data columns), all
// further rows are numeric samples:
//
//	| File1 | m/s | Pa  | K   | J  | W   | File2 | ... |
//	| -     | 1.2 | 101 | 300 | 50 | 100 | -     | ... |
//
// The Loader infers this shape and produces a DataSet: the numeric
// matrix plus per-column name, unit, group index and group-local
// index. Identifier columns load as NaN columns at group-local
// index 0.
//
// # Selection
//
// A ProcessLayer selects columns declaratively and chainable:
//
//	layer, err := plotlib.NewProcessLayer(ds).Select("group", []int{0, 1})
//	layer, err = layer.By(1)
//	sub := layer.Selected()
//
// # Plotting
//
// A Plotter walks the groups of a DataSet and issues draw calls to a
// Backend; gonumplot implements the Backend on gonum.org/v1/plot.
// Cosmetic presets are built once with MakeAxesFormatter,
// MakeLinesFormatter and MakeLegendFormatter and reused across plots.
package plotlib
