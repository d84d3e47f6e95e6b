package interval

import (
	"github.com/eaugeas/linkedbst/container/tree"
)

// IntLesser orders intervals by their lower bound only. Two
// intervals with the same lower bound are equal for a tree
type IntLesser struct{}

func (IntLesser) Less(a, b Int) int {
	return tree.IntLesser{}.Less(a.min, b.min)
}

// Int is the closed interval of integers [min, max]. Values
// of Int are immutable
type Int struct {
	min int
	max int
}

// NewInt creates the interval [min, max]. It panics if min
// is greater than max
func NewInt(min, max int) Int {
	if min > max {
		panic("interval lower bound greater than upper bound")
	}

	return Int{min: min, max: max}
}

// Min is the lower bound
func (i Int) Min() int {
	return i.min
}

// Max is the upper bound
func (i Int) Max() int {
	return i.max
}

// Len is the number of integers in the interval
func (i Int) Len() int {
	return i.max - i.min + 1
}

// Contains reports whether every integer of j is in i
func (i Int) Contains(j Int) bool {
	return i.min <= j.min && j.max <= i.max
}

// Disjoints reports whether i and j have no integer in common
func (i Int) Disjoints(j Int) bool {
	return j.min > i.max || i.min > j.max
}

// Intersection returns the integers that i and j have in
// common. It panics if they are disjoint
func (i Int) Intersection(j Int) Int {
	if i.Disjoints(j) {
		panic("intersection of disjoint intervals")
	}

	return Int{min: max(i.min, j.min), max: min(i.max, j.max)}
}

// CanMerge reports whether the union of i and j is itself an
// interval, which is the case when they overlap or when one
// starts right after the other ends, as [1, 3] and [4, 6]
func (i Int) CanMerge(j Int) bool {
	return !i.Disjoints(j) || j.max+1 == i.min || i.max+1 == j.min
}

// Merge returns the union of i and j. It panics if the union
// is not an interval
func (i Int) Merge(j Int) Int {
	if !i.CanMerge(j) {
		panic("union of intervals is not an interval")
	}

	return Int{min: min(i.min, j.min), max: max(i.max, j.max)}
}

// IntSet is a set of integers stored as the fewest disjoint
// intervals that cover them, kept in a binary search tree
// ordered by lower bound. Inserting [4, 4] into {[1, 3], [5, 9]}
// leaves the single interval [1, 9].
type IntSet struct {
	intervals *tree.Tree[Int]
}

// NewIntSet creates an empty set
func NewIntSet() *IntSet {
	return &IntSet{intervals: tree.New[Int](IntLesser{})}
}

// Len returns the number of disjoint intervals
func (s *IntSet) Len() int {
	return s.intervals.Len()
}

// Intervals returns the disjoint intervals of the set
// sorted by their minimum
func (s *IntSet) Intervals() []Int {
	return s.intervals.Items()
}

// Contains reports whether every integer of i is in the set
func (s *IntSet) Contains(i Int) bool {
	lower, ok := s.lower(i)
	if !ok {
		return false
	}

	return lower.Contains(i)
}

// Insert adds the integers of i to the set. Intervals of the
// set that overlap or touch i are merged with it
func (s *IntSet) Insert(i Int) {
	if lower, ok := s.lower(i); ok && i.CanMerge(lower) {
		s.remove(lower)
		i = i.Merge(lower)
	}

	for {
		higher, ok := s.higher(i)
		if !ok || !i.CanMerge(higher) {
			break
		}

		s.remove(higher)
		i = i.Merge(higher)
	}

	s.intervals.Add(i)
}

// Overlapping returns the intervals of the set that are
// not disjoint with i, sorted by their minimum
func (s *IntSet) Overlapping(i Int) []Int {
	var res []Int
	if lower, ok := s.intervals.Predecessor(i); ok && !lower.Disjoints(i) {
		res = append(res, lower)
	}

	// every interval with its minimum within i overlaps with it
	return append(res, s.intervals.RangeFind(Int{min: i.min}, Int{min: i.max})...)
}

// Balance rebuilds the underlying tree when it is far
// from a perfectly balanced tree. It returns true if the
// tree was rebuilt
func (s *IntSet) Balance() bool {
	if s.intervals.IsBalanced() {
		return false
	}

	s.intervals.Rebalance()
	return true
}

func (s *IntSet) remove(i Int) {
	if _, err := s.intervals.Remove(i); err != nil {
		panic("failed to remove interval: " + err.Error())
	}
}

// higher returns the interval with the lowest minimum
// that is greater or equal than the minimum of i
func (s *IntSet) higher(i Int) (Int, bool) {
	if found, ok := s.intervals.FindIter(i); ok {
		return found, true
	}

	return s.intervals.Successor(i)
}

// lower returns the interval with the highest minimum
// that is lower or equal than the minimum of i
func (s *IntSet) lower(i Int) (Int, bool) {
	if found, ok := s.intervals.FindIter(i); ok {
		return found, true
	}

	return s.intervals.Predecessor(i)
}
