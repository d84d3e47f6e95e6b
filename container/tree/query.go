package tree

// RangeFind returns in ascending order all the items x in the
// tree such that low <= x <= high. Subtrees that cannot hold
// items within the bounds are not visited
func (t *Tree[T]) RangeFind(low, high T) []T {
	var items []T
	var stack []*node[T]
	curr := t.root

	for curr != nil || len(stack) > 0 {
		for curr != nil {
			stack = append(stack, curr)

			// the left subtree only holds items lower or equal than curr
			if t.cmp.Less(low, curr.item) <= 0 {
				curr = curr.left
			} else {
				curr = nil
			}
		}

		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if t.cmp.Less(n.item, high) > 0 {
			// every item left to visit is greater than n
			break
		}

		if t.cmp.Less(low, n.item) <= 0 {
			items = append(items, n.item)
		}

		curr = n.right
	}

	return items
}

// Successor returns the lowest item in the tree that is strictly
// greater than item. It returns false if there is no such item
func (t *Tree[T]) Successor(item T) (T, bool) {
	var succ *node[T]

	for curr := t.root; curr != nil; {
		if t.cmp.Less(item, curr.item) < 0 {
			succ = curr
			curr = curr.left
		} else {
			curr = curr.right
		}
	}

	if succ == nil {
		var zero T
		return zero, false
	}

	return succ.item, true
}

// Predecessor returns the highest item in the tree that is strictly
// lower than item. It returns false if there is no such item
func (t *Tree[T]) Predecessor(item T) (T, bool) {
	var pred *node[T]

	for curr := t.root; curr != nil; {
		if t.cmp.Less(curr.item, item) < 0 {
			pred = curr
			curr = curr.right
		} else {
			curr = curr.left
		}
	}

	if pred == nil {
		var zero T
		return zero, false
	}

	return pred.item, true
}
