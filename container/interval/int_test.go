package interval

import (
	"testing"

	"github.com/google/btree"
	"github.com/stretchr/testify/assert"
)

func TestNewInt(t *testing.T) {
	i := NewInt(-2, 4)
	assert.Equal(t, -2, i.Min())
	assert.Equal(t, 4, i.Max())
	assert.Equal(t, 7, i.Len())
	assert.Equal(t, 1, NewInt(3, 3).Len())

	assert.Panics(t, func() { NewInt(2, 1) })
}

func TestIntRelations(t *testing.T) {
	base := NewInt(10, 20)

	tests := []struct {
		name      string
		other     Int
		contains  bool
		disjoints bool
		canMerge  bool
	}{
		{"same", NewInt(10, 20), true, false, true},
		{"inner", NewInt(12, 18), true, false, true},
		{"left edge", NewInt(10, 10), true, false, true},
		{"right edge", NewInt(20, 20), true, false, true},
		{"overlaps left", NewInt(5, 10), false, false, true},
		{"overlaps right", NewInt(15, 25), false, false, true},
		{"covers", NewInt(0, 30), false, false, true},
		{"adjacent left", NewInt(2, 9), false, true, true},
		{"adjacent right", NewInt(21, 22), false, true, true},
		{"apart left", NewInt(0, 8), false, true, false},
		{"apart right", NewInt(22, 40), false, true, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.contains, base.Contains(test.other))
			assert.Equal(t, test.disjoints, base.Disjoints(test.other))
			assert.Equal(t, test.disjoints, test.other.Disjoints(base))
			assert.Equal(t, test.canMerge, base.CanMerge(test.other))
			assert.Equal(t, test.canMerge, test.other.CanMerge(base))
		})
	}
}

func TestIntIntersection(t *testing.T) {
	base := NewInt(10, 20)

	assert.Equal(t, NewInt(12, 18), base.Intersection(NewInt(12, 18)))
	assert.Equal(t, NewInt(10, 20), base.Intersection(NewInt(0, 30)))
	assert.Equal(t, NewInt(15, 20), base.Intersection(NewInt(15, 99)))
	assert.Equal(t, NewInt(20, 20), base.Intersection(NewInt(20, 21)))
	assert.Equal(t, NewInt(10, 10), NewInt(-5, 10).Intersection(base))

	assert.Panics(t, func() { base.Intersection(NewInt(21, 30)) })
}

func TestIntMerge(t *testing.T) {
	base := NewInt(10, 20)

	assert.Equal(t, NewInt(10, 20), base.Merge(NewInt(11, 19)))
	assert.Equal(t, NewInt(0, 20), base.Merge(NewInt(0, 9)))
	assert.Equal(t, NewInt(10, 30), base.Merge(NewInt(21, 30)))
	assert.Equal(t, NewInt(5, 25), base.Merge(NewInt(5, 25)))

	assert.Panics(t, func() { base.Merge(NewInt(22, 30)) })
	assert.Panics(t, func() { base.Merge(NewInt(0, 8)) })
}

func newIntSet(intervals ...Int) *IntSet {
	s := NewIntSet()
	for _, i := range intervals {
		s.Insert(i)
	}
	return s
}

func TestIntSetContains(t *testing.T) {
	s := newIntSet(NewInt(40, 45), NewInt(0, 4), NewInt(20, 29))

	for _, i := range []Int{NewInt(0, 4), NewInt(2, 3), NewInt(20, 20), NewInt(29, 29), NewInt(41, 45)} {
		assert.True(t, s.Contains(i), "%v", i)
	}

	for _, i := range []Int{NewInt(-1, 0), NewInt(4, 5), NewInt(10, 12), NewInt(19, 21), NewInt(28, 40), NewInt(46, 50)} {
		assert.False(t, s.Contains(i), "%v", i)
	}

	assert.False(t, NewIntSet().Contains(NewInt(0, 0)))
}

func TestIntSetInsert(t *testing.T) {
	tests := []struct {
		name     string
		inserted []Int
		expected []Int
	}{
		{
			name:     "disjoint",
			inserted: []Int{NewInt(8, 9), NewInt(0, 2), NewInt(4, 6)},
			expected: []Int{NewInt(0, 2), NewInt(4, 6), NewInt(8, 9)},
		},
		{
			name:     "adjacent",
			inserted: []Int{NewInt(0, 2), NewInt(3, 5), NewInt(6, 6)},
			expected: []Int{NewInt(0, 6)},
		},
		{
			name:     "fills a gap",
			inserted: []Int{NewInt(0, 2), NewInt(6, 8), NewInt(3, 5)},
			expected: []Int{NewInt(0, 8)},
		},
		{
			name:     "contained",
			inserted: []Int{NewInt(0, 10), NewInt(3, 4)},
			expected: []Int{NewInt(0, 10)},
		},
		{
			name: "covers many",
			inserted: []Int{NewInt(0, 1), NewInt(4, 5), NewInt(8, 9), NewInt(12, 13),
				NewInt(20, 21), NewInt(3, 14)},
			expected: []Int{NewInt(0, 1), NewInt(3, 14), NewInt(20, 21)},
		},
		{
			name:     "same minimum",
			inserted: []Int{NewInt(5, 6), NewInt(5, 9), NewInt(5, 5)},
			expected: []Int{NewInt(5, 9)},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newIntSet(test.inserted...)

			assert.Equal(t, len(test.expected), s.Len())
			assert.Equal(t, test.expected, s.Intervals())
		})
	}
}

func TestIntSetOverlapping(t *testing.T) {
	s := newIntSet(NewInt(0, 4), NewInt(10, 14), NewInt(20, 24), NewInt(30, 34))

	assert.Equal(t, []Int{NewInt(0, 4)}, s.Overlapping(NewInt(3, 3)))
	assert.Equal(t, []Int{NewInt(0, 4), NewInt(10, 14)}, s.Overlapping(NewInt(4, 10)))
	assert.Equal(t, []Int{NewInt(10, 14), NewInt(20, 24), NewInt(30, 34)}, s.Overlapping(NewInt(12, 30)))
	assert.Equal(t, []Int{NewInt(20, 24)}, s.Overlapping(NewInt(20, 20)))
	assert.Empty(t, s.Overlapping(NewInt(5, 9)))
	assert.Empty(t, s.Overlapping(NewInt(35, 90)))
	assert.Empty(t, NewIntSet().Overlapping(NewInt(0, 0)))
}

func TestIntSetBalance(t *testing.T) {
	s := NewIntSet()
	for i := 0; i < 100; i++ {
		s.Insert(NewInt(10*i, 10*i+5))
	}

	assert.Equal(t, 100, s.Len())
	assert.True(t, s.Balance())
	assert.False(t, s.Balance())
	assert.Len(t, s.Intervals(), 100)

	assert.True(t, s.Contains(NewInt(500, 505)))
	assert.False(t, s.Contains(NewInt(505, 510)))

	s.Insert(NewInt(6, 9))
	assert.Equal(t, 99, s.Len())
	assert.Equal(t, NewInt(0, 15), s.Intervals()[0])
}

func BenchmarkIntSetInsertSeq(b *testing.B) {
	s := NewIntSet()
	for i := 0; i < b.N; i++ {
		s.Insert(NewInt(2*i, 2*i))
	}
}

func BenchmarkBTreeInsertSeq(b *testing.B) {
	bt := btree.NewG[Int](16, func(a, b Int) bool { return a.min < b.min })
	for i := 0; i < b.N; i++ {
		bt.ReplaceOrInsert(NewInt(2*i, 2*i))
	}
}
