package plotlib

import "sort"

// IntSet collects column and group indices while resolving selections:
// terms add their matches, duplicates collapse, Elements hands the
// result back in ascending order.
type IntSet map[int]struct{}

func NewIntSet() IntSet {
	return make(IntSet)
}

func NewIntSetFrom(init []int) IntSet {
	s := NewIntSet()
	for _, v := range init {
		s.Add(v)
	}
	return s
}

// Add adds x to s.
func (s IntSet) Add(x int) {
	s[x] = struct{}{}
}

// Contains reports membership of x in s.
func (s IntSet) Contains(x int) bool {
	_, ok := s[x]
	return ok
}

// Join adds all elements of t to s.
func (s IntSet) Join(t IntSet) {
	for x := range t {
		s[x] = struct{}{}
	}
}

// Equals reports whether s holds exactly the values of the slice t.
func (s IntSet) Equals(t []int) bool {
	if len(s) != len(t) {
		return false
	}
	for _, x := range t {
		if _, ok := s[x]; !ok {
			return false
		}
	}
	return true
}

// Elements returns the elements of s in ascending order.
func (s IntSet) Elements() []int {
	elems := make([]int, 0, len(s))
	for x := range s {
		elems = append(elems, x)
	}
	sort.Ints(elems)
	return elems
}

// StringSet is the string counterpart, used for option-key vocabularies
// and unit deduplication.
type StringSet map[string]struct{}

func NewStringSet() StringSet {
	return make(StringSet)
}

func NewStringSetFrom(init []string) StringSet {
	s := NewStringSet()
	for _, v := range init {
		s.Add(v)
	}
	return s
}

// Add adds x to s.
func (s StringSet) Add(x string) {
	s[x] = struct{}{}
}

// Contains reports membership of x in s.
func (s StringSet) Contains(x string) bool {
	_, ok := s[x]
	return ok
}

// Equals reports whether s holds exactly the values of the slice t.
func (s StringSet) Equals(t []string) bool {
	if len(s) != len(t) {
		return false
	}
	for _, x := range t {
		if _, ok := s[x]; !ok {
			return false
		}
	}
	return true
}

// Elements returns the elements of s in ascending order.
func (s StringSet) Elements() []string {
	elems := make([]string, 0, len(s))
	for x := range s {
		elems = append(elems, x)
	}
	sort.Strings(elems)
	return elems
}
