package plotlib

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ReadGrid reads the raw string table from path without interpreting
// it, using the same format dispatch as Load. Useful for tools that
// rearrange a file before it is turned into a DataSet.
func (l *Loader) ReadGrid(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return l.readXLSX(path)
	case ".txt", ".dat":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return readText(f)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return l.readCSV(f)
	}
}

// ReorderGroups permutes (and optionally drops) whole group blocks of a
// raw grid. The grid's width must be a multiple of w; every entry of
// order names a source group by index and may appear at most once.
// Rows shorter than the full width are passed through with "" in the
// missing cells.
func ReorderGroups(grid [][]string, w int, order []int) ([][]string, error) {
	if len(grid) == 0 {
		return nil, ErrEmptyInput
	}
	if w <= 0 {
		return nil, &ConfigError{Key: "cols", Reason: "columns per dataset must be positive"}
	}
	cols := len(grid[0])
	if cols < w || cols%w != 0 {
		return nil, &ShapeError{Cols: cols, Want: w, Row: -1}
	}
	groups := cols / w

	seen := NewIntSet()
	for _, g := range order {
		if g < 0 || g >= groups {
			return nil, &RangeError{What: "group", Index: g, Limit: groups}
		}
		if seen.Contains(g) {
			return nil, &RangeError{What: "duplicate group", Index: g, Limit: groups}
		}
		seen.Add(g)
	}

	out := make([][]string, len(grid))
	for r, row := range grid {
		nr := make([]string, 0, len(order)*w)
		for _, g := range order {
			for c := g * w; c < (g+1)*w; c++ {
				if c < len(row) {
					nr = append(nr, row[c])
				} else {
					nr = append(nr, "")
				}
			}
		}
		out[r] = nr
	}
	return out, nil
}

// WriteGridCSV writes a raw grid as CSV.
func WriteGridCSV(w io.Writer, grid [][]string, comma rune) error {
	cw := csv.NewWriter(w)
	if comma != 0 {
		cw.Comma = comma
	}
	if err := cw.WriteAll(grid); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
