package plotlib

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gonum.org/v1/gonum/mat"
)

// DataSet is a read-only bundle of a numeric matrix and per-column
// metadata. Columns come in repeated groups of fixed width; each group
// describes one experimental dataset and is led by an identifier column.
//
// A DataSet is never modified after construction. Selections and
// transforms produce new DataSets.
type DataSet struct {
	// Data holds the numeric matrix, rows are samples. Nil for a
	// DataSet with zero columns.
	Data *mat.Dense

	Names []string // group name, repeated over the group's columns
	Units []string // unit row of the input, "" where absent

	GroupsIdx     []int // group a column belongs to, 0-based
	GroupLocalIdx []int // position of a column inside its group, 0-based

	// FatherIdx and InitialIdx track the lineage of selected columns:
	// the position in the immediate parent and in the originally
	// loaded DataSet.
	FatherIdx  []int
	InitialIdx []int

	NumGroups int
}

// Column is a per-column view into a DataSet. Data is a copy.
type Column struct {
	Idx           int
	Name          string
	Unit          string
	GroupIdx      int
	GroupLocalIdx int
	FatherIdx     int
	InitialIdx    int
	Data          []float64
}

func newEmptyDataSet() *DataSet {
	return &DataSet{}
}

// Cols returns the number of columns.
func (ds *DataSet) Cols() int {
	if ds.Data == nil {
		return 0
	}
	_, c := ds.Data.Dims()
	return c
}

// Rows returns the number of samples.
func (ds *DataSet) Rows() int {
	if ds.Data == nil {
		return 0
	}
	r, _ := ds.Data.Dims()
	return r
}

// Groups returns the distinct group indices in ascending order.
func (ds *DataSet) Groups() []int {
	return NewIntSetFrom(ds.GroupsIdx).Elements()
}

// check validates the metadata against the matrix. Every construction
// path runs it before the DataSet is handed out.
func (ds *DataSet) check() error {
	c := ds.Cols()
	if len(ds.Names) != c || len(ds.Units) != c ||
		len(ds.GroupsIdx) != c || len(ds.GroupLocalIdx) != c ||
		len(ds.FatherIdx) != c || len(ds.InitialIdx) != c {
		return fmt.Errorf("metadata length mismatch: %d/%d/%d/%d/%d/%d for %d columns",
			len(ds.Names), len(ds.Units), len(ds.GroupsIdx),
			len(ds.GroupLocalIdx), len(ds.FatherIdx), len(ds.InitialIdx), c)
	}

	// Columns at the same group-local position must agree on their
	// unit. An empty unit is a wildcard: absent unit cells load as ""
	// and must not fail.
	unitByLocal := map[int]string{}
	for i, local := range ds.GroupLocalIdx {
		u := ds.Units[i]
		if u == "" {
			continue
		}
		if prev, ok := unitByLocal[local]; ok && prev != u {
			return fmt.Errorf("unit mismatch at group-local index %d: %q vs %q", local, prev, u)
		}
		unitByLocal[local] = u
	}
	return nil
}

// refreshGroupLocalIdx recomputes GroupLocalIdx as the running
// per-group counter over GroupsIdx, and NumGroups.
func (ds *DataSet) refreshGroupLocalIdx() {
	counter := map[int]int{}
	ds.GroupLocalIdx = make([]int, len(ds.GroupsIdx))
	for i, g := range ds.GroupsIdx {
		ds.GroupLocalIdx[i] = counter[g]
		counter[g]++
	}
	ds.NumGroups = len(counter)
}

// Take returns a new DataSet holding the given columns in the given
// order, with lineage tracked through FatherIdx/InitialIdx.
func (ds *DataSet) Take(cols []int) (*DataSet, error) {
	n := ds.Cols()
	for _, c := range cols {
		if c < 0 || c >= n {
			return nil, &RangeError{What: "column", Index: c, Limit: n}
		}
	}

	sub := newEmptyDataSet()
	if len(cols) > 0 {
		r := ds.Rows()
		data := mat.NewDense(r, len(cols), nil)
		buf := make([]float64, r)
		for j, c := range cols {
			mat.Col(buf, c, ds.Data)
			data.SetCol(j, buf)
		}
		sub.Data = data
	}
	for _, c := range cols {
		sub.Names = append(sub.Names, ds.Names[c])
		sub.Units = append(sub.Units, ds.Units[c])
		sub.GroupsIdx = append(sub.GroupsIdx, ds.GroupsIdx[c])
		// Group-local indices survive selection: a column keeps the
		// position it had inside its group in the loaded file.
		sub.GroupLocalIdx = append(sub.GroupLocalIdx, ds.GroupLocalIdx[c])
		sub.FatherIdx = append(sub.FatherIdx, c)
		sub.InitialIdx = append(sub.InitialIdx, ds.InitialIdx[c])
	}
	sub.NumGroups = len(NewIntSetFrom(sub.GroupsIdx))
	if err := sub.check(); err != nil {
		return nil, err
	}
	return sub, nil
}

// Append glues the columns of other onto ds. Both must have the same
// number of rows. Used while assembling selections and derived columns;
// not part of the read-only surface of a finished DataSet.
func (ds *DataSet) Append(other *DataSet) error {
	if other.Cols() == 0 {
		return nil
	}
	if ds.Cols() == 0 {
		ds.Data = mat.DenseCopyOf(other.Data)
	} else {
		if ds.Rows() != other.Rows() {
			return fmt.Errorf("row count mismatch: %d vs %d", ds.Rows(), other.Rows())
		}
		r, c1 := ds.Data.Dims()
		c2 := other.Cols()
		joined := mat.NewDense(r, c1+c2, nil)
		joined.Slice(0, r, 0, c1).(*mat.Dense).Copy(ds.Data)
		joined.Slice(0, r, c1, c1+c2).(*mat.Dense).Copy(other.Data)
		ds.Data = joined
	}
	ds.Names = append(ds.Names, other.Names...)
	ds.Units = append(ds.Units, other.Units...)
	ds.GroupsIdx = append(ds.GroupsIdx, other.GroupsIdx...)
	ds.GroupLocalIdx = append(ds.GroupLocalIdx, other.GroupLocalIdx...)
	ds.FatherIdx = append(ds.FatherIdx, other.FatherIdx...)
	ds.InitialIdx = append(ds.InitialIdx, other.InitialIdx...)
	ds.NumGroups = len(NewIntSetFrom(ds.GroupsIdx))
	return ds.check()
}

// Column returns a view of column i. The data slice is a copy.
func (ds *DataSet) Column(i int) (Column, error) {
	if i < 0 || i >= ds.Cols() {
		return Column{}, &RangeError{What: "column", Index: i, Limit: ds.Cols()}
	}
	data := make([]float64, ds.Rows())
	mat.Col(data, i, ds.Data)
	return Column{
		Idx:           i,
		Name:          ds.Names[i],
		Unit:          ds.Units[i],
		GroupIdx:      ds.GroupsIdx[i],
		GroupLocalIdx: ds.GroupLocalIdx[i],
		FatherIdx:     ds.FatherIdx[i],
		InitialIdx:    ds.InitialIdx[i],
		Data:          data,
	}, nil
}

// Columns returns views of all columns.
func (ds *DataSet) Columns() []Column {
	cols := make([]Column, ds.Cols())
	for i := range cols {
		cols[i], _ = ds.Column(i)
	}
	return cols
}

// groupColumn finds the column of group with the given group-local
// index.
func (ds *DataSet) groupColumn(group, local int) (Column, error) {
	for i := range ds.GroupsIdx {
		if ds.GroupsIdx[i] == group && ds.GroupLocalIdx[i] == local {
			return ds.Column(i)
		}
	}
	return Column{}, &MissingColumnError{Group: group, Local: local}
}

// groupWidth returns the column count of the widest group.
func (ds *DataSet) groupWidth() int {
	w := 0
	for _, l := range ds.GroupLocalIdx {
		if l+1 > w {
			w = l + 1
		}
	}
	return w
}

// Fprint writes an aligned dump of the DataSet to w: a metadata header
// followed by the data rows.
func (ds *DataSet) Fprint(w io.Writer) {
	tw := tabwriter.NewWriter(w, 2, 8, 1, ' ', 0)
	defer tw.Flush()

	for _, n := range ds.Names {
		fmt.Fprintf(tw, "%s\t", n)
	}
	fmt.Fprintln(tw)
	for _, u := range ds.Units {
		fmt.Fprintf(tw, "%s\t", u)
	}
	fmt.Fprintln(tw)
	for i := range ds.GroupsIdx {
		fmt.Fprintf(tw, "%d/%d\t", ds.GroupsIdx[i], ds.GroupLocalIdx[i])
	}
	fmt.Fprintln(tw)

	for r := 0; r < ds.Rows(); r++ {
		for c := 0; c < ds.Cols(); c++ {
			fmt.Fprintf(tw, "%g\t", ds.Data.At(r, c))
		}
		fmt.Fprintln(tw)
	}
}
