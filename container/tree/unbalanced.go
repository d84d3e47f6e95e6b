package tree

// Add inserts the item into the tree by preserving the Binary Search
// Tree properties but without applying any balancing algorithm.
// Items lower than a node go to its left, everything else goes
// to its right
func (t *Tree[T]) Add(item T) {
	if t.root == nil {
		t.root = newNode(item)
	} else {
		t.add(t.root, item)
	}

	t.len++
}

func (t *Tree[T]) add(n *node[T], item T) {
	if t.cmp.Less(item, n.item) < 0 {
		if n.left == nil {
			n.left = newNode(item)
		} else {
			t.add(n.left, item)
		}
		return
	}

	if n.right == nil {
		n.right = newNode(item)
	} else {
		t.add(n.right, item)
	}
}

// AddIter is the same operation as Add but the insertion
// point is found with a loop. For the same sequence of items
// both produce the same tree
func (t *Tree[T]) AddIter(item T) {
	var parent *node[T]
	var isLeft bool

	curr := t.root

	for curr != nil {
		parent = curr
		if t.cmp.Less(item, curr.item) < 0 {
			isLeft = true
			curr = curr.left
		} else {
			isLeft = false
			curr = curr.right
		}
	}

	n := newNode(item)

	switch {
	case parent == nil:
		t.root = n
	case isLeft:
		parent.left = n
	default:
		parent.right = n
	}

	t.len++
}

// Remove deletes the first node of the tree that holds an item equal
// to the one provided and returns the item it held. If there is no
// such item ErrKeyNotPresent is returned and the tree is not modified.
//
// A node with two children is not unlinked. Instead, it takes the
// item of the maximum node of its left subtree and that node is
// unlinked in its place.
func (t *Tree[T]) Remove(item T) (T, error) {
	var zero T

	// preRoot sits above the root so that replacing the root
	// follows the same path as replacing any other child
	preRoot := &node[T]{left: t.root}
	parent := preRoot
	isLeft := true
	curr := t.root

	for curr != nil {
		c := t.cmp.Less(item, curr.item)
		if c == 0 {
			break
		}

		parent = curr
		if c < 0 {
			isLeft = true
			curr = curr.left
		} else {
			isLeft = false
			curr = curr.right
		}
	}

	if curr == nil {
		return zero, ErrKeyNotPresent{Item: item}
	}

	removed := curr.item

	if curr.left != nil && curr.right != nil {
		liftMaxInLeftSubtree(curr)
	} else {
		child := curr.left
		if child == nil {
			child = curr.right
		}

		if isLeft {
			parent.left = child
		} else {
			parent.right = child
		}
	}

	t.len--
	if t.len == 0 {
		t.root = nil
	} else {
		t.root = preRoot.left
	}

	return removed, nil
}

// liftMaxInLeftSubtree replaces the item of top with the maximum item
// in its left subtree and unlinks the node that held it. top must
// have a left child
func liftMaxInLeftSubtree[T any](top *node[T]) {
	parent := top
	curr := top.left
	for curr.right != nil {
		parent = curr
		curr = curr.right
	}

	top.item = curr.item

	// curr has no right child, so its left subtree takes its place
	if parent == top {
		top.left = curr.left
	} else {
		parent.right = curr.left
	}
}
