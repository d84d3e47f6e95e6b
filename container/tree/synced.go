package tree

import "sync"

// Synced is a Tree protected by a single lock. Every operation
// holds the lock for its whole duration, so operations on a
// Synced tree never interleave. Traversals return slices
// collected while the lock is held
type Synced[T any] struct {
	mu   sync.Mutex
	tree *Tree[T]
}

// NewSynced wraps the tree. The tree must not be used directly
// after it is wrapped
func NewSynced[T any](tree *Tree[T]) *Synced[T] {
	if tree == nil {
		panic("tree must be set")
	}

	return &Synced[T]{tree: tree}
}

// Len returns the number of items in the tree
func (s *Synced[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Len()
}

// Empty returns true if the tree has no items
func (s *Synced[T]) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Empty()
}

// Clear removes all the items from the tree
func (s *Synced[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.Clear()
}

// Add inserts the item into the tree
func (s *Synced[T]) Add(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.AddIter(item)
}

// AddAll adds the items under a single acquisition of the lock
// and returns the stats of the tree right after they are added
func (s *Synced[T]) AddAll(items ...T) Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range items {
		s.tree.AddIter(item)
	}

	return s.stats()
}

// Remove deletes the first item equal to the one provided
func (s *Synced[T]) Remove(item T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Remove(item)
}

// Find returns the first item equal to the one provided
func (s *Synced[T]) Find(item T) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.FindIter(item)
}

// Contains returns true if the tree holds an item equal
// to the one provided
func (s *Synced[T]) Contains(item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Contains(item)
}

// PreOrder returns the items in pre order
func (s *Synced[T]) PreOrder() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Collect(s.tree.PreOrder())
}

// InOrder returns the items in ascending order
func (s *Synced[T]) InOrder() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Items()
}

// PostOrder returns the items in post order
func (s *Synced[T]) PostOrder() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Collect(s.tree.PostOrder())
}

// LevelOrder returns the items level by level, from left to right
func (s *Synced[T]) LevelOrder() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Collect(s.tree.LevelOrder())
}

// Height returns the height of the tree
func (s *Synced[T]) Height() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Height()
}

// IsBalanced returns true if the tree is close to
// a perfectly balanced tree
func (s *Synced[T]) IsBalanced() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.IsBalanced()
}

// RangeFind returns the items x such that low <= x <= high
func (s *Synced[T]) RangeFind(low, high T) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.RangeFind(low, high)
}

// Successor returns the lowest item greater than item
func (s *Synced[T]) Successor(item T) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Successor(item)
}

// Predecessor returns the highest item lower than item
func (s *Synced[T]) Predecessor(item T) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree.Predecessor(item)
}

// Rebalance rebuilds the tree with minimum height
func (s *Synced[T]) Rebalance() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree.Rebalance()
}

// Stats returns the size, height and balance of the tree
// as observed under a single acquisition of the lock
func (s *Synced[T]) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats()
}

func (s *Synced[T]) stats() Stats {
	h, err := s.tree.Height()
	return Stats{
		Len:      s.tree.Len(),
		Height:   h,
		Empty:    err != nil,
		Balanced: s.tree.IsBalanced(),
	}
}

// Stats of the shape of a tree
type Stats struct {
	Len      int  `json:"len"`
	Height   int  `json:"height"`
	Empty    bool `json:"empty"`
	Balanced bool `json:"balanced"`
}
