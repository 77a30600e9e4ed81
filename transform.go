package plotlib

import (
	"math"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/mat"
)

// Transformer derives new columns and summary statistics from a
// DataSet. The source is read-only; results are fresh DataSets.
type Transformer struct {
	ds *DataSet
}

func NewTransformer(ds *DataSet) *Transformer {
	return &Transformer{ds: ds}
}

// NormOptions configures Transformer.Norm.
type NormOptions struct {
	Order int   // norm order, 0 means 2 (Euclidean)
	Cols  []int // source columns, nil means all

	Name string // result name, "" to derive from the sources
	Unit string // result unit, "" to derive from the sources

	// Group forces the group index of the result. When nil the group
	// is taken from the sources if they agree, or freshly allocated
	// when NewGroup is set.
	Group    *int
	NewGroup bool
}

// Norm computes the row-wise p-norm across the chosen columns and
// returns it as a one-column DataSet. NaN cells propagate into the
// result. Mixed source groups need an explicit Group or NewGroup,
// otherwise the result's group would be ambiguous.
func (t *Transformer) Norm(opts NormOptions) (*DataSet, error) {
	cols := opts.Cols
	if cols == nil {
		cols = make([]int, t.ds.Cols())
		for i := range cols {
			cols[i] = i
		}
	}
	if len(cols) == 0 {
		return nil, &ConfigError{Key: "Cols", Reason: "norm needs at least one column"}
	}
	for _, c := range cols {
		if c < 0 || c >= t.ds.Cols() {
			return nil, &RangeError{What: "column", Index: c, Limit: t.ds.Cols()}
		}
	}
	order := opts.Order
	if order == 0 {
		order = 2
	}

	group, local, err := t.resultGroup(cols, opts)
	if err != nil {
		return nil, err
	}

	rows := t.ds.Rows()
	values := make([]float64, rows)
	p := float64(order)
	for r := 0; r < rows; r++ {
		sum := 0.0
		for _, c := range cols {
			sum += math.Pow(math.Abs(t.ds.Data.At(r, c)), p)
		}
		values[r] = math.Pow(sum, 1/p)
	}

	out := newEmptyDataSet()
	out.Data = mat.NewDense(rows, 1, values)
	out.Names = []string{t.resultName(cols, opts.Name)}
	out.Units = []string{t.resultUnit(cols, opts.Unit)}
	out.GroupsIdx = []int{group}
	out.GroupLocalIdx = []int{local}
	out.FatherIdx = []int{-1}
	out.InitialIdx = []int{-1}
	out.NumGroups = 1
	if err := out.check(); err != nil {
		return nil, err
	}
	return out, nil
}

func (t *Transformer) resultGroup(cols []int, opts NormOptions) (group, local int, err error) {
	switch {
	case opts.Group != nil:
		group = *opts.Group
	case opts.NewGroup:
		for _, g := range t.ds.GroupsIdx {
			if g >= group {
				group = g + 1
			}
		}
	default:
		groups := NewIntSet()
		for _, c := range cols {
			groups.Add(t.ds.GroupsIdx[c])
		}
		if len(groups) != 1 {
			return 0, 0, &ConfigError{Key: "Group", Reason: "sources span several groups, set Group or NewGroup"}
		}
		group = groups.Elements()[0]
	}

	// Next free slot inside the target group.
	for i, g := range t.ds.GroupsIdx {
		if g == group && t.ds.GroupLocalIdx[i] >= local {
			local = t.ds.GroupLocalIdx[i] + 1
		}
	}
	return group, local, nil
}

func (t *Transformer) resultName(cols []int, name string) string {
	if name != "" {
		return name
	}
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = t.ds.Names[c]
	}
	if len(names) == 1 {
		return names[0]
	}
	if len(NewStringSetFrom(names)) == 1 {
		return "Norm_of_" + names[0]
	}
	return "Norm_of_" + strings.Join(names, "_")
}

func (t *Transformer) resultUnit(cols []int, unit string) string {
	if unit != "" {
		return unit
	}
	units := NewStringSet()
	for _, c := range cols {
		units.Add(t.ds.Units[c])
	}
	if len(units) == 1 {
		return units.Elements()[0]
	}
	return "unitless"
}

// Summary holds descriptive statistics of one column. NaN cells are
// excluded.
type Summary struct {
	N              int
	Mean, StdDev   float64
	Min, Max       float64
	Median, Q1, Q3 float64
}

// Summarize computes descriptive statistics for column c.
func (t *Transformer) Summarize(c int) (Summary, error) {
	if c < 0 || c >= t.ds.Cols() {
		return Summary{}, &RangeError{What: "column", Index: c, Limit: t.ds.Cols()}
	}
	var xs []float64
	for r := 0; r < t.ds.Rows(); r++ {
		if v := t.ds.Data.At(r, c); !math.IsNaN(v) {
			xs = append(xs, v)
		}
	}
	s := stats.Sample{Xs: xs}
	min, max := s.Bounds()
	return Summary{
		N:      len(xs),
		Mean:   s.Mean(),
		StdDev: s.StdDev(),
		Min:    min,
		Max:    max,
		Median: s.Quantile(0.5),
		Q1:     s.Quantile(0.25),
		Q3:     s.Quantile(0.75),
	}, nil
}
