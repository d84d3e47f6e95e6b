package tree

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncedConcurrentAdd(t *testing.T) {
	const workers = 8
	const perWorker = 250

	tree := NewSynced(NewOrdered[int]())
	wg := sync.WaitGroup{}
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				tree.Add(w*perWorker + i)
			}
		}(w)
	}

	wg.Wait()

	items := tree.InOrder()
	assert.Equal(t, workers*perWorker, tree.Len())
	require.Len(t, items, workers*perWorker)
	for i, item := range items {
		assert.Equal(t, i, item)
	}
}

func TestSyncedConcurrentAddAll(t *testing.T) {
	const workers = 8
	const batch = 50

	tree := NewSynced(NewOrdered[int]())
	results := make([]Stats, workers)
	wg := sync.WaitGroup{}
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			items := make([]int, batch)
			for i := range items {
				items[i] = w*batch + i
			}
			results[w] = tree.AddAll(items...)
		}(w)
	}

	wg.Wait()

	seen := map[int]bool{}
	for _, stats := range results {
		// every batch lands whole, so each observed length is a multiple
		// of the batch size and no two batches observe the same length
		assert.Zero(t, stats.Len%batch)
		assert.False(t, stats.Empty)
		assert.False(t, seen[stats.Len])
		seen[stats.Len] = true
	}
	assert.True(t, seen[workers*batch])
	assert.Equal(t, workers*batch, tree.Len())
}

func TestSyncedAddAllEmpty(t *testing.T) {
	tree := NewSynced(NewOrdered[int]())
	stats := tree.AddAll()
	assert.Equal(t, Stats{Len: 0, Height: 0, Empty: true, Balanced: true}, stats)
}

func TestSyncedConcurrentReadWrite(t *testing.T) {
	tree := NewSynced(NewOrdered[int]())
	for i := 0; i < 100; i++ {
		tree.Add(i)
	}

	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 100; i += 2 {
			_, err := tree.Remove(i)
			assert.NoError(t, err)
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			tree.Contains(i)
			tree.Stats()
		}
	}()

	wg.Wait()

	assert.Equal(t, 50, tree.Len())
	assert.False(t, tree.Contains(0))
	assert.True(t, tree.Contains(1))
}

func TestSyncedOperations(t *testing.T) {
	tree := NewSynced(exampleTree())

	assert.False(t, tree.Empty())
	assert.Equal(t, []int{5, 3, 1, 4, 8, 7, 9}, tree.PreOrder())
	assert.Equal(t, []int{1, 4, 3, 7, 9, 8, 5}, tree.PostOrder())
	assert.Equal(t, []int{5, 3, 8, 1, 4, 7, 9}, tree.LevelOrder())
	assert.Equal(t, []int{4, 5, 7, 8}, tree.RangeFind(4, 8))

	item, ok := tree.Find(8)
	assert.True(t, ok)
	assert.Equal(t, 8, item)

	succ, ok := tree.Successor(5)
	assert.True(t, ok)
	assert.Equal(t, 7, succ)

	pred, ok := tree.Predecessor(5)
	assert.True(t, ok)
	assert.Equal(t, 4, pred)

	h, err := tree.Height()
	require.NoError(t, err)
	assert.Equal(t, 2, h)
	assert.True(t, tree.IsBalanced())

	_, err = tree.Remove(6)
	assert.IsType(t, ErrKeyNotPresent{}, err)

	tree.Rebalance()
	assert.Equal(t, Stats{Len: 7, Height: 2, Balanced: true}, tree.Stats())

	tree.Clear()
	assert.True(t, tree.Empty())
	assert.Equal(t, Stats{Empty: true, Balanced: true}, tree.Stats())
}

func TestSyncedNilTreePanics(t *testing.T) {
	assert.Panics(t, func() { NewSynced[int](nil) })
}
