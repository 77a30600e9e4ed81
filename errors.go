package plotlib

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned by the loader when the input file contains
// no data at all.
var ErrEmptyInput = errors.New("plotlib: empty input")

// ErrSelectFirst is returned by By when no selection has been made yet.
// By refines an existing selection and cannot stand on its own.
var ErrSelectFirst = errors.New("plotlib: By called before Select")

// ShapeError reports a column layout that does not match the expected
// width. Row is >= 0 when a single data row has the wrong width; Want
// is then the full row width, otherwise the configured group width.
type ShapeError struct {
	Cols int // columns found
	Want int // columns expected
	Row  int // offending row, or -1 for a whole-file mismatch
}

func (e *ShapeError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("row %d has %d columns, want %d", e.Row, e.Cols, e.Want)
	}
	return fmt.Sprintf("%d columns cannot be split into groups of %d", e.Cols, e.Want)
}

// ParseError reports a cell that should contain a number but does not.
type ParseError struct {
	Row  int
	Col  int
	Cell string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cell (%d,%d): cannot parse %q as number", e.Row, e.Col, e.Cell)
}

// ConfigError reports an unrecognized or inconsistent option.
type ConfigError struct {
	Key    string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("option %q: %s", e.Key, e.Reason)
}

// RangeError reports an index outside its valid range. What names the
// kind of index, e.g. "column" or "group-local index".
type RangeError struct {
	What  string
	Index int
	Limit int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [0,%d)", e.What, e.Index, e.Limit)
}

// MissingColumnError reports a group that has no column at the
// requested group-local index. Distinct from RangeError: the index is
// inside the dataset's group width, but a selection dropped that
// column from this particular group.
type MissingColumnError struct {
	Group int
	Local int
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("group %d has no column at local index %d", e.Group, e.Local)
}
