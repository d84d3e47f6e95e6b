package tree

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeHeightEmpty(t *testing.T) {
	tree := NewOrdered[int]()

	_, err := tree.Height()

	assert.Equal(t, ErrEmptyTree{}, err)
	assert.True(t, tree.IsBalanced())
}

func TestTreeHeight(t *testing.T) {
	h, err := NewOrdered(1).Height()
	require.NoError(t, err)
	assert.Equal(t, 0, h)

	h, err = exampleTree().Height()
	require.NoError(t, err)
	assert.Equal(t, 2, h)

	h, err = prePopulatedTree().Height()
	require.NoError(t, err)
	assert.Equal(t, 3, h)

	h, err = NewOrdered(1, 2, 3, 4, 5).Height()
	require.NoError(t, err)
	assert.Equal(t, 4, h)
}

func TestTreeIsBalanced(t *testing.T) {
	assert.True(t, NewOrdered(1).IsBalanced())
	assert.True(t, exampleTree().IsBalanced())

	linear := NewOrdered[int]()
	for i := 0; i < 10; i++ {
		linear.Add(i)
	}
	assert.False(t, linear.IsBalanced())

	linear.Rebalance()
	assert.True(t, linear.IsBalanced())
}

func TestTreeRebalanceShape(t *testing.T) {
	tree := NewOrdered(1, 2, 3, 4, 5, 6, 7)

	tree.Rebalance()

	assert.Equal(t, 7, tree.Len())
	assertEqualTree(t, [][]interface{}{
		{4},
		{2, 6},
		{1, 3, 5, 7},
	}, tree)
}

func TestTreeRebalanceEmpty(t *testing.T) {
	tree := NewOrdered[int]()

	tree.Rebalance()

	assert.Nil(t, tree.root)
	assert.Equal(t, 0, tree.Len())
}

func TestTreeRebalanceMinimumHeight(t *testing.T) {
	r := rand.New(rand.NewSource(11))

	for _, n := range []int{1, 2, 3, 8, 100, 1023, 1024, 5000} {
		var tree *Tree[int]
		if n > 8 {
			tree = NewOrdered(r.Perm(n)...)
		} else {
			tree = NewOrdered[int]()
			for i := 0; i < n; i++ {
				tree.AddIter(i)
			}
		}

		before := tree.Items()
		tree.Rebalance()

		assert.Equal(t, before, tree.Items())
		assert.Equal(t, n, tree.Len())
		assert.Equal(t, n, count(tree.root))

		h, err := tree.Height()
		require.NoError(t, err)
		assert.Equal(t, int(math.Floor(math.Log2(float64(n)))), h, "n = %d", n)
		assertOrdered(t, tree)
	}
}

func TestTreeRebalanceDuplicates(t *testing.T) {
	tree := NewOrdered(3, 1, 3, 3, 2, 1, 3, 5)

	before := tree.Items()
	tree.Rebalance()

	assert.Equal(t, before, tree.Items())
	assertOrdered(t, tree)

	for _, v := range []int{1, 2, 3, 5} {
		assert.True(t, tree.Contains(v))
	}

	for i := 0; i < 4; i++ {
		_, err := tree.Remove(3)
		require.NoError(t, err)
	}
	assert.False(t, tree.Contains(3))
	assert.Equal(t, []int{1, 1, 2, 5}, tree.Items())
}

func TestTreeRebalanceKeepsWorking(t *testing.T) {
	tree := exampleTree()

	tree.Rebalance()
	tree.Add(6)
	_, err := tree.Remove(5)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3, 4, 6, 7, 8, 9}, tree.Items())
	assert.Equal(t, 7, tree.Len())
}
