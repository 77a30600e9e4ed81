package plotlib

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestTake(t *testing.T) {
	ds := loadSample(t)

	sub, err := ds.Take([]int{2, 5})
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if sub.Cols() != 2 || sub.Rows() != 3 {
		t.Fatalf("Got %dx%d, want 3x2", sub.Rows(), sub.Cols())
	}

	// Metadata travels with the columns; the group-local position is
	// the one from the loaded file, not a renumbering.
	if sub.Names[0] != "Alpha" || sub.Names[1] != "Beta" {
		t.Errorf("Got names %v", sub.Names)
	}
	if sub.GroupLocalIdx[0] != 2 || sub.GroupLocalIdx[1] != 2 {
		t.Errorf("Got group-local indices %v, want [2 2]", sub.GroupLocalIdx)
	}
	if sub.FatherIdx[0] != 2 || sub.FatherIdx[1] != 5 {
		t.Errorf("Got father indices %v, want [2 5]", sub.FatherIdx)
	}
	if sub.InitialIdx[0] != 2 || sub.InitialIdx[1] != 5 {
		t.Errorf("Got initial indices %v, want [2 5]", sub.InitialIdx)
	}
	if sub.NumGroups != 2 {
		t.Errorf("Got %d groups, want 2", sub.NumGroups)
	}
	if got := sub.Data.At(0, 1); got != 20 {
		t.Errorf("Data[0,1] = %g, want 20", got)
	}

	// Lineage stays relative to the first selection's source.
	subsub, err := sub.Take([]int{1})
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if subsub.FatherIdx[0] != 1 || subsub.InitialIdx[0] != 5 {
		t.Errorf("Got lineage %d/%d, want 1/5", subsub.FatherIdx[0], subsub.InitialIdx[0])
	}
}

func TestTakeOutOfRange(t *testing.T) {
	ds := loadSample(t)
	var re *RangeError
	if _, err := ds.Take([]int{0, 6}); !errors.As(err, &re) {
		t.Errorf("Got %v, want RangeError", err)
	}
	if _, err := ds.Take([]int{-1}); !errors.As(err, &re) {
		t.Errorf("Got %v, want RangeError", err)
	}
}

func TestTakeEmpty(t *testing.T) {
	ds := loadSample(t)
	sub, err := ds.Take(nil)
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if sub.Cols() != 0 || sub.Rows() != 0 || sub.NumGroups != 0 {
		t.Errorf("empty selection is not empty: %dx%d, %d groups",
			sub.Rows(), sub.Cols(), sub.NumGroups)
	}
}

func TestAppend(t *testing.T) {
	ds := loadSample(t)
	a, err := ds.Take([]int{1, 2})
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	b, err := ds.Take([]int{4, 5})
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}

	if err := a.Append(b); err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if a.Cols() != 4 || a.Rows() != 3 {
		t.Fatalf("Got %dx%d, want 3x4", a.Rows(), a.Cols())
	}
	if !NewIntSetFrom(a.GroupsIdx).Equals([]int{0, 1}) {
		t.Errorf("Got groups %v", a.GroupsIdx)
	}
	if got := a.Data.At(2, 3); got != 22 {
		t.Errorf("Data[2,3] = %g, want 22", got)
	}

	// Appending onto an empty DataSet adopts the other's shape.
	empty := newEmptyDataSet()
	if err := empty.Append(b); err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if empty.Cols() != 2 || empty.Rows() != 3 {
		t.Errorf("Got %dx%d, want 3x2", empty.Rows(), empty.Cols())
	}
}

func TestAppendRowMismatch(t *testing.T) {
	ds := loadSample(t)
	a, _ := ds.Take([]int{1})
	short, err := sampleLoader(t).LoadReader(
		strings.NewReader("Run,s,V\n-,1,2\n"), FormatCSV)
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if err := a.Append(short); err == nil {
		t.Errorf("expected a row count mismatch error")
	}
}

func TestColumn(t *testing.T) {
	ds := loadSample(t)

	c, err := ds.Column(4)
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if c.Name != "Beta" || c.Unit != "s" || c.GroupIdx != 1 || c.GroupLocalIdx != 1 {
		t.Errorf("Got column %+v", c)
	}
	if len(c.Data) != 3 || c.Data[2] != 2 {
		t.Errorf("Got data %v", c.Data)
	}

	// The view is a copy, writing through it must not reach the matrix.
	c.Data[0] = 99
	if ds.Data.At(0, 4) == 99 {
		t.Errorf("column data is not a copy")
	}

	var re *RangeError
	if _, err := ds.Column(6); !errors.As(err, &re) {
		t.Errorf("Got %v, want RangeError", err)
	}
}

func TestGroupColumn(t *testing.T) {
	ds := loadSample(t)
	c, err := ds.groupColumn(1, 2)
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if c.Idx != 5 {
		t.Errorf("Got column %d, want 5", c.Idx)
	}
	var me *MissingColumnError
	if _, err := ds.groupColumn(1, 7); !errors.As(err, &me) {
		t.Fatalf("Got %v, want MissingColumnError", err)
	}
	if got := me.Error(); got != "group 1 has no column at local index 7" {
		t.Errorf("Got message %q", got)
	}
}

func TestGroups(t *testing.T) {
	ds := loadSample(t)
	groups := ds.Groups()
	if len(groups) != 2 || groups[0] != 0 || groups[1] != 1 {
		t.Errorf("Got groups %v, want [0 1]", groups)
	}
	if ds.groupWidth() != 3 {
		t.Errorf("Got group width %d, want 3", ds.groupWidth())
	}
}

func TestUnitCoherence(t *testing.T) {
	in := "Alpha,s,V,Beta,s,A\n-,1,2,-,3,4\n"
	if _, err := sampleLoader(t).LoadReader(strings.NewReader(in), FormatCSV); err == nil {
		t.Errorf("expected a unit mismatch error for V vs A")
	}
}

func TestFprint(t *testing.T) {
	ds := loadSample(t)
	var buf bytes.Buffer
	ds.Fprint(&buf)
	out := buf.String()
	for _, want := range []string{"Alpha", "Beta", "0/1", "NaN", "22"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump misses %q:\n%s", want, out)
		}
	}
}
