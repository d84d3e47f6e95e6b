package tree

import (
	"cmp"
	"fmt"
	"strings"
)

// Tree represents a binary search tree. Items are ordered with
// a Lesser: every item in the left subtree of a node is strictly
// lower than the item in the node, and every item in the right subtree
// is greater or equal. Duplicates are accepted and always routed
// to the right. Removing a node with two children may leave items
// equal to the lifted item in its left subtree; lookups still stop
// at the first equal item they meet.
//
// The shape of the tree depends exclusively on the order of the insert
// and delete operations performed on it. No balancing is applied on
// mutation; Rebalance restores a minimum height shape on demand.
//
// A Tree is not safe for concurrent use. Look at Synced for a version
// protected by a lock.
type Tree[T any] struct {
	root *node[T]
	cmp  Lesser[T]
	len  int
}

// New creates a new tree ordered by cmp that contains the
// provided items, inserted in order
func New[T any](cmp Lesser[T], items ...T) *Tree[T] {
	if cmp == nil {
		panic("lesser must be set")
	}

	t := &Tree[T]{cmp: cmp}
	for _, item := range items {
		t.Add(item)
	}

	return t
}

// NewOrdered creates a new tree for types that support the
// < operator
func NewOrdered[T cmp.Ordered](items ...T) *Tree[T] {
	return New[T](OrderedLesser[T]{}, items...)
}

// Len returns the number of items in the tree
func (t *Tree[T]) Len() int {
	return t.len
}

// Empty returns true if the tree has no items
func (t *Tree[T]) Empty() bool {
	return t.len == 0
}

// Clear removes all the items from the tree
func (t *Tree[T]) Clear() {
	t.root = nil
	t.len = 0
}

// Min returns the lowest item in the tree. It returns
// false if the tree is empty
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}

	return t.root.min().item, true
}

// Max returns the highest item in the tree. It returns
// false if the tree is empty
func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}

	return t.root.max().item, true
}

// Contains returns true if the tree contains at
// least one item equal to the one provided
func (t *Tree[T]) Contains(item T) bool {
	_, ok := t.FindIter(item)
	return ok
}

// Find returns the first item in the tree that is equal
// to the one provided. It returns false if there is no such item
func (t *Tree[T]) Find(item T) (T, bool) {
	return t.find(t.root, item)
}

func (t *Tree[T]) find(n *node[T], item T) (T, bool) {
	if n == nil {
		var zero T
		return zero, false
	}

	switch c := t.cmp.Less(item, n.item); {
	case c == 0:
		return n.item, true
	case c < 0:
		return t.find(n.left, item)
	default:
		return t.find(n.right, item)
	}
}

// FindIter is the same operation as Find but the tree is
// descended with a loop, so the stack does not grow with the
// height of the tree
func (t *Tree[T]) FindIter(item T) (T, bool) {
	for curr := t.root; curr != nil; {
		c := t.cmp.Less(item, curr.item)
		if c == 0 {
			return curr.item, true
		}

		if c < 0 {
			curr = curr.left
		} else {
			curr = curr.right
		}
	}

	var zero T
	return zero, false
}

// Replace swaps the first item in the tree equal to item for
// newItem and returns the item that was stored. It returns false
// if there is no such item. newItem must be equal to item in
// the order of the tree, otherwise the tree stops being a binary
// search tree
func (t *Tree[T]) Replace(item, newItem T) (T, bool) {
	for curr := t.root; curr != nil; {
		c := t.cmp.Less(item, curr.item)
		if c == 0 {
			old := curr.item
			curr.item = newItem
			return old, true
		}

		if c < 0 {
			curr = curr.left
		} else {
			curr = curr.right
		}
	}

	var zero T
	return zero, false
}

// String returns a representation of the tree rotated 90
// degrees counterclockwise. Each level of depth is indented
// with "| "
func (t *Tree[T]) String() string {
	var b strings.Builder

	var recurse func(n *node[T], level int)
	recurse = func(n *node[T], level int) {
		if n == nil {
			return
		}

		recurse(n.right, level+1)
		b.WriteString(strings.Repeat("| ", level))
		fmt.Fprintf(&b, "%v\n", n.item)
		recurse(n.left, level+1)
	}

	recurse(t.root, 0)
	return b.String()
}
