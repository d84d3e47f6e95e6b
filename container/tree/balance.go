package tree

import "math"

// Height returns the number of edges in the longest path from
// the root to a leaf. A tree with a single node has height 0.
// The height of an empty tree is undefined and ErrEmptyTree
// is returned
func (t *Tree[T]) Height() (int, error) {
	if t.root == nil {
		return 0, ErrEmptyTree{}
	}

	return height(t.root), nil
}

func height[T any](n *node[T]) int {
	if n.isLeaf() {
		return 0
	}

	h := 0
	if n.left != nil {
		h = height(n.left)
	}
	if n.right != nil {
		h = max(h, height(n.right))
	}

	return h + 1
}

// IsBalanced returns true if the height of the tree is lower
// than 2 * log2(len + 1) - 1. This is a heuristic that tells
// whether the tree is close to a perfectly balanced tree of the
// same size, it is not an AVL or red-black invariant checked on
// every node. An empty tree is considered balanced
func (t *Tree[T]) IsBalanced() bool {
	if t.root == nil {
		return true
	}

	return float64(height(t.root)) < 2*math.Log2(float64(t.len+1))-1
}

// Rebalance rebuilds the tree with the same items so that it has
// the minimum height possible, floor(log2(len)). Every node is
// recreated, the items are kept
func (t *Tree[T]) Rebalance() {
	t.root = t.build(t.Items())
}

// build creates a tree out of a sorted slice by making the middle
// item the root of each subrange
func (t *Tree[T]) build(items []T) *node[T] {
	if len(items) == 0 {
		return nil
	}

	mid := len(items) / 2

	// items equal to the middle one must not end up on its left
	for mid > 0 && t.cmp.Less(items[mid-1], items[mid]) == 0 {
		mid--
	}

	n := newNode(items[mid])
	n.left = t.build(items[:mid])
	n.right = t.build(items[mid+1:])
	return n
}
