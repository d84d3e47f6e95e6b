package tree

// node of a tree. A node is owned by exactly one parent link, or
// by the tree itself when it is the root
type node[T any] struct {
	item  T
	left  *node[T]
	right *node[T]
}

func newNode[T any](item T) *node[T] {
	return &node[T]{item: item}
}

func (n *node[T]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// min returns the leftmost node of the subtree
func (n *node[T]) min() *node[T] {
	curr := n
	for curr.left != nil {
		curr = curr.left
	}
	return curr
}

// max returns the rightmost node of the subtree
func (n *node[T]) max() *node[T] {
	curr := n
	for curr.right != nil {
		curr = curr.right
	}
	return curr
}
