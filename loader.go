package plotlib

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gonum.org/v1/gonum/mat"
)

// Format names a text-based input layout for LoadReader.
type Format int

const (
	FormatCSV  Format = iota // comma separated, or Comma from the config
	FormatText               // whitespace separated
)

// LoaderConfig configures the shape inference of the Loader.
//
// DatasetFraction exists for compatibility with the historical call
// sites that supplied both values: zero means "derive it as
// 1/ColumnsPerDataset", anything else is cross-checked against
// ColumnsPerDataset, so the two can never silently disagree.
type LoaderConfig struct {
	ColumnsPerDataset int     // columns per group, identifier column included
	DatasetFraction   float64 // groups per column, 0 to derive
	MissingMarker     string  // cell content treated as NaN, default "-"
	Comma             rune    // CSV delimiter, default ','
}

// DefaultLoaderConfig returns the config for the common 6-column
// layout: one identifier column and five data columns per group.
func DefaultLoaderConfig() LoaderConfig {
	return LoaderConfig{
		ColumnsPerDataset: 6,
		MissingMarker:     "-",
		Comma:             ',',
	}
}

// Loader reads a grouped tabular file into a DataSet.
type Loader struct {
	cfg LoaderConfig
}

// NewLoader validates cfg and returns a Loader.
func NewLoader(cfg LoaderConfig) (*Loader, error) {
	if cfg.ColumnsPerDataset <= 0 {
		return nil, &ConfigError{Key: "ColumnsPerDataset", Reason: "must be positive"}
	}
	if cfg.DatasetFraction == 0 {
		cfg.DatasetFraction = 1 / float64(cfg.ColumnsPerDataset)
	} else if math.Abs(cfg.DatasetFraction*float64(cfg.ColumnsPerDataset)-1) > 1e-9 {
		return nil, &ConfigError{
			Key:    "DatasetFraction",
			Reason: fmt.Sprintf("%g is not the reciprocal of ColumnsPerDataset %d", cfg.DatasetFraction, cfg.ColumnsPerDataset),
		}
	}
	if cfg.MissingMarker == "" {
		cfg.MissingMarker = "-"
	}
	if cfg.Comma == 0 {
		cfg.Comma = ','
	}
	return &Loader{cfg: cfg}, nil
}

// Load reads the file at path and returns the parsed DataSet. The
// format is chosen by extension: .csv, .txt/.dat (whitespace separated)
// and .xlsx/.xls.
func (l *Loader) Load(path string) (*DataSet, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		grid, err := l.readXLSX(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		ds, err := l.build(grid)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		return ds, nil
	case ".txt", ".dat":
		return l.loadFile(path, FormatText)
	default:
		return l.loadFile(path, FormatCSV)
	}
}

func (l *Loader) loadFile(path string, format Format) (*DataSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ds, err := l.LoadReader(f, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return ds, nil
}

// LoadReader parses a CSV or whitespace-separated table from r.
func (l *Loader) LoadReader(r io.Reader, format Format) (*DataSet, error) {
	var grid [][]string
	var err error
	switch format {
	case FormatCSV:
		grid, err = l.readCSV(r)
	case FormatText:
		grid, err = readText(r)
	default:
		return nil, &ConfigError{Key: "format", Reason: "unknown input format"}
	}
	if err != nil {
		return nil, err
	}
	return l.build(grid)
}

func (l *Loader) readCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = l.cfg.Comma
	cr.FieldsPerRecord = -1 // row widths are validated in build
	cr.TrimLeadingSpace = true
	return cr.ReadAll()
}

func readText(r io.Reader) ([][]string, error) {
	var grid [][]string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		grid = append(grid, strings.Fields(line))
	}
	return grid, sc.Err()
}

func (l *Loader) readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	grid, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	// excelize trims trailing empty cells per row; pad back to the
	// header width so absent units and identifier cells survive.
	if len(grid) > 0 {
		width := len(grid[0])
		for i, row := range grid {
			for len(row) < width {
				row = append(row, "")
			}
			grid[i] = row
		}
	}
	return grid, nil
}

// build turns the raw grid into a DataSet: row 0 carries the group
// names (identifier columns) and units (data columns), every further
// row is a sample.
func (l *Loader) build(grid [][]string) (*DataSet, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyInput
	}

	w := l.cfg.ColumnsPerDataset
	cols := len(grid[0])
	if cols < w || cols%w != 0 {
		return nil, &ShapeError{Cols: cols, Want: w, Row: -1}
	}
	groups := cols / w
	if g := int(math.Round(float64(cols) * l.cfg.DatasetFraction)); g != groups {
		return nil, &ConfigError{
			Key:    "DatasetFraction",
			Reason: fmt.Sprintf("predicts %d groups for %d columns, division by ColumnsPerDataset gives %d", g, cols, groups),
		}
	}

	rows := len(grid) - 1
	if rows == 0 {
		return nil, ErrEmptyInput
	}

	ds := newEmptyDataSet()
	ds.Names = make([]string, cols)
	ds.Units = make([]string, cols)
	ds.GroupsIdx = make([]int, cols)
	ds.FatherIdx = make([]int, cols)
	ds.InitialIdx = make([]int, cols)
	for c := 0; c < cols; c++ {
		g := c / w
		ds.GroupsIdx[c] = g
		ds.FatherIdx[c] = c
		ds.InitialIdx[c] = c
		ds.Names[c] = strings.TrimSpace(grid[0][g*w])
		if c%w != 0 {
			// The identifier cell of the header row is the group
			// name, not a unit; it stays out of Units.
			ds.Units[c] = strings.TrimSpace(grid[0][c])
		}
	}

	data := mat.NewDense(rows, cols, nil)
	for r := 1; r < len(grid); r++ {
		row := grid[r]
		if len(row) != cols {
			return nil, &ShapeError{Cols: len(row), Want: cols, Row: r}
		}
		for c, cell := range row {
			v, err := l.parseCell(cell)
			if err != nil {
				return nil, &ParseError{Row: r, Col: c, Cell: cell}
			}
			data.Set(r-1, c, v)
		}
	}
	ds.Data = data
	ds.refreshGroupLocalIdx()

	if err := ds.check(); err != nil {
		return nil, err
	}
	return ds, nil
}

func (l *Loader) parseCell(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" || cell == l.cfg.MissingMarker {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(cell, 64)
}
