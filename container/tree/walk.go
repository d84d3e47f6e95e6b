package tree

// Iterator yields the items of a tree in the order of a
// traversal. An Iterator can only be consumed once; a new
// traversal is required to iterate again. Modifying the tree
// while an Iterator is in use leads to undefined results
type Iterator[T any] struct {
	next func() (*node[T], bool)
}

// Next returns the next item of the traversal. It returns
// false once the traversal is exhausted
func (it *Iterator[T]) Next() (T, bool) {
	n, ok := it.next()
	if !ok {
		var zero T
		return zero, false
	}

	return n.item, true
}

// Collect drains the iterator and returns the remaining
// items in a slice
func Collect[T any](it *Iterator[T]) []T {
	var items []T
	for {
		item, ok := it.Next()
		if !ok {
			return items
		}

		items = append(items, item)
	}
}

func exhausted[T any]() (*node[T], bool) {
	return nil, false
}

// PreOrder returns an iterator that visits each node before its
// left subtree and then its right subtree
func (t *Tree[T]) PreOrder() *Iterator[T] {
	if t.root == nil {
		return &Iterator[T]{next: exhausted[T]}
	}

	stack := []*node[T]{t.root}

	return &Iterator[T]{next: func() (*node[T], bool) {
		if len(stack) == 0 {
			return nil, false
		}

		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// push right first so that the left subtree is popped first
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}

		return n, true
	}}
}

// InOrder returns an iterator that visits the items of the
// tree in ascending order
func (t *Tree[T]) InOrder() *Iterator[T] {
	var stack []*node[T]
	curr := t.root

	return &Iterator[T]{next: func() (*node[T], bool) {
		for curr != nil {
			stack = append(stack, curr)
			curr = curr.left
		}

		if len(stack) == 0 {
			return nil, false
		}

		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		curr = n.right
		return n, true
	}}
}

// PostOrder returns an iterator that visits the left subtree
// and the right subtree of a node before the node itself
func (t *Tree[T]) PostOrder() *Iterator[T] {
	var stack []*node[T]
	var last *node[T]
	curr := t.root

	return &Iterator[T]{next: func() (*node[T], bool) {
		for {
			for curr != nil {
				stack = append(stack, curr)
				curr = curr.left
			}

			if len(stack) == 0 {
				return nil, false
			}

			top := stack[len(stack)-1]
			if top.right != nil && top.right != last {
				// the right subtree has not been visited yet
				curr = top.right
				continue
			}

			stack = stack[:len(stack)-1]
			last = top
			return top, true
		}
	}}
}

// LevelOrder returns an iterator that visits the tree breadth
// first, from left to right within each level
func (t *Tree[T]) LevelOrder() *Iterator[T] {
	if t.root == nil {
		return &Iterator[T]{next: exhausted[T]}
	}

	queue := []*node[T]{t.root}

	return &Iterator[T]{next: func() (*node[T], bool) {
		if len(queue) == 0 {
			return nil, false
		}

		n := queue[0]
		queue[0] = nil
		queue = queue[1:]

		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}

		return n, true
	}}
}

// PreOrderWalk implements a recursive pre order walk
// on the tree
func (t *Tree[T]) PreOrderWalk(fn func(T)) {
	var recurse func(n *node[T])
	recurse = func(n *node[T]) {
		if n == nil {
			return
		}

		fn(n.item)
		recurse(n.left)
		recurse(n.right)
	}

	recurse(t.root)
}

// InOrderWalk implements a recursive in order walk
// on the tree
func (t *Tree[T]) InOrderWalk(fn func(T)) {
	var recurse func(n *node[T])
	recurse = func(n *node[T]) {
		if n == nil {
			return
		}

		recurse(n.left)
		fn(n.item)
		recurse(n.right)
	}

	recurse(t.root)
}

// PostOrderWalk implements a recursive post order walk
// on the tree
func (t *Tree[T]) PostOrderWalk(fn func(T)) {
	var recurse func(n *node[T])
	recurse = func(n *node[T]) {
		if n == nil {
			return
		}

		recurse(n.left)
		recurse(n.right)
		fn(n.item)
	}

	recurse(t.root)
}

// Items returns all the items of the tree in ascending order
func (t *Tree[T]) Items() []T {
	items := make([]T, 0, t.len)
	for it := t.InOrder(); ; {
		item, ok := it.Next()
		if !ok {
			return items
		}
		items = append(items, item)
	}
}
