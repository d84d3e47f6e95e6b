package tree

import "fmt"

// ErrKeyNotPresent is returned when attempting to remove
// an item that is not stored in the tree
type ErrKeyNotPresent struct {
	Item interface{}
}

func (e ErrKeyNotPresent) Error() string {
	return fmt.Sprintf("item %v not present in tree", e.Item)
}

// ErrEmptyTree is returned by operations that require
// the tree to have a root
type ErrEmptyTree struct{}

func (e ErrEmptyTree) Error() string {
	return "operation requires a non-empty tree"
}
