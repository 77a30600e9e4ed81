package plotlib

import "fmt"

// ProcessLayer is a chainable column selector over a fixed DataSet.
//
// Select accepts a small declarative vocabulary and replaces the
// current selection; By then narrows it by group-local index. The
// source DataSet is never modified, every selection is a fresh
// DataSet:
//
//	layer := NewProcessLayer(ds)
//	layer, err := layer.Select("group", []int{0, 1})
//	layer, err = layer.By(1, 2)
//	sub := layer.Selected()
type ProcessLayer struct {
	dataset  *DataSet
	selected *DataSet
	chained  bool // a Select happened and no By consumed it yet
}

// NewProcessLayer returns a selector over ds with an empty selection.
func NewProcessLayer(ds *DataSet) *ProcessLayer {
	return &ProcessLayer{
		dataset:  ds,
		selected: newEmptyDataSet(),
	}
}

// Select resolves each term independently against the source DataSet
// and selects the union of the results, de-duplicated, in ascending
// original column order. Recognized terms:
//
//	"all"                  every column
//	"group", []int{...}    all columns of the given groups
//	any other string       columns matching by name, else by unit
//	int, []int             explicit column indices
//	[]interface{}          nested terms, resolved recursively
//
// A name or unit matching nothing selects nothing; an empty selection
// is legal. Select always replaces the previous selection.
func (l *ProcessLayer) Select(terms ...interface{}) (*ProcessLayer, error) {
	picked, err := l.resolve(terms)
	if err != nil {
		return l, err
	}
	sub, err := l.dataset.Take(picked.Elements())
	if err != nil {
		return l, err
	}
	l.selected = sub
	l.chained = true
	return l, nil
}

func (l *ProcessLayer) resolve(terms []interface{}) (IntSet, error) {
	picked := NewIntSet()
	skip := false
	for i, term := range terms {
		if skip {
			skip = false
			continue
		}
		switch v := term.(type) {
		case string:
			if v == "all" {
				for c := 0; c < l.dataset.Cols(); c++ {
					picked.Add(c)
				}
				continue
			}
			if v == "group" {
				if i+1 >= len(terms) {
					return nil, &ConfigError{Key: "group", Reason: "needs a following []int of group indices"}
				}
				idxs, ok := terms[i+1].([]int)
				if !ok {
					return nil, &ConfigError{Key: "group", Reason: fmt.Sprintf("needs a following []int, got %T", terms[i+1])}
				}
				want := NewIntSetFrom(idxs)
				for c, g := range l.dataset.GroupsIdx {
					if want.Contains(g) {
						picked.Add(c)
					}
				}
				skip = true
				continue
			}
			// Names first, units second, exact match only.
			matched := false
			for c, n := range l.dataset.Names {
				if n == v {
					picked.Add(c)
					matched = true
				}
			}
			if matched {
				continue
			}
			for c, u := range l.dataset.Units {
				if u == v {
					picked.Add(c)
				}
			}
		case int:
			if v < 0 || v >= l.dataset.Cols() {
				return nil, &RangeError{What: "column", Index: v, Limit: l.dataset.Cols()}
			}
			picked.Add(v)
		case []int:
			for _, c := range v {
				if c < 0 || c >= l.dataset.Cols() {
					return nil, &RangeError{What: "column", Index: c, Limit: l.dataset.Cols()}
				}
				picked.Add(c)
			}
		case []interface{}:
			nested, err := l.resolve(v)
			if err != nil {
				return nil, err
			}
			picked.Join(nested)
		default:
			return nil, &ConfigError{Key: fmt.Sprintf("%T", term), Reason: "unsupported selection term"}
		}
	}
	return picked, nil
}

// By narrows the current selection to the columns whose group-local
// index is among locals, independently within each selected group. It
// consumes the preceding Select: calling By first, or twice in a row,
// returns ErrSelectFirst.
func (l *ProcessLayer) By(locals ...int) (*ProcessLayer, error) {
	if !l.chained {
		return l, ErrSelectFirst
	}
	l.chained = false

	want := NewIntSetFrom(locals)
	var keep []int
	for c, local := range l.selected.GroupLocalIdx {
		if want.Contains(local) {
			keep = append(keep, c)
		}
	}
	sub, err := l.selected.Take(keep)
	if err != nil {
		return l, err
	}
	l.selected = sub
	return l, nil
}

// Selected returns the current selection. It is never nil; before any
// Select it is a DataSet with zero columns.
func (l *ProcessLayer) Selected() *DataSet {
	return l.selected
}
