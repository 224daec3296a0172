package avl

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// Tree is an ordered map from int keys to values of type V, kept as an AVL
// tree.
//
// A tree created by
//
//	Tree[V]{}
//
// is a valid, empty tree.
//
// The tree caches its nodes with the smallest and biggest keys, so Min and Max
// are constant time operations.
type Tree[V any] struct {
	root *Node[V]
	min  *Node[V] // node with the smallest key
	max  *Node[V] // node with the biggest key
	size int
}

// New creates an empty tree.
func New[V any]() *Tree[V] {
	return &Tree[V]{}
}

// fromSubtree makes the detached subtree rooted at n a tree of its own.
// The cached extremes are left unset and must be provided by the caller.
func fromSubtree[V any](n *Node[V]) *Tree[V] {
	if n != nil {
		n.parent = nil
	}
	return &Tree[V]{root: n, size: n.Size()}
}

// reset makes t an empty tree.
func (t *Tree[V]) reset() {
	*t = Tree[V]{}
}

// adopt moves the state of other into t and empties other.
func (t *Tree[V]) adopt(other *Tree[V]) {
	if t == other {
		return
	}
	*t = *other
	other.reset()
}

// Empty reports whether the tree holds no keys.
func (t *Tree[V]) Empty() bool {
	return t == nil || t.size == 0
}

// Size returns the number of keys in the tree.
func (t *Tree[V]) Size() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Height returns the rank of the root, or −1 for an empty tree.
func (t *Tree[V]) Height() int {
	if t == nil {
		return -1
	}
	return t.root.Rank()
}

// Root returns the root node as a read-only traversal handle.
// Clients must not use it for anything but navigation.
func (t *Tree[V]) Root() (*Node[V], error) {
	if t.Empty() {
		return nil, ErrEmptyTree
	}
	return t.root, nil
}

// find looks up key.
// It returns the position where a node with key is or would be attached, and
// the parent of that position. *pos is non-nil if key is present.
func (t *Tree[V]) find(key int) (pos **Node[V], parent *Node[V]) {
	pos = &t.root
	for x := *pos; x != nil; x = *pos {
		if x.key == key {
			break
		}
		parent = x
		if x.key > key {
			pos = &x.left
		} else {
			pos = &x.right
		}
	}
	return pos, parent
}

// Search returns the value stored under key, or ErrKeyNotFound.
func (t *Tree[V]) Search(key int) (V, error) {
	if t != nil {
		if pos, _ := t.find(key); *pos != nil {
			return (*pos).value, nil
		}
	}
	var zero V
	return zero, fmt.Errorf("%w: %d", ErrKeyNotFound, key)
}

// Contains reports whether key is present.
func (t *Tree[V]) Contains(key int) bool {
	if t == nil {
		return false
	}
	pos, _ := t.find(key)
	return *pos != nil
}

// Min returns the value stored under the smallest key.
func (t *Tree[V]) Min() (V, error) {
	if t.Empty() {
		var zero V
		return zero, ErrEmptyTree
	}
	return t.min.value, nil
}

// Max returns the value stored under the biggest key.
func (t *Tree[V]) Max() (V, error) {
	if t.Empty() {
		var zero V
		return zero, ErrEmptyTree
	}
	return t.max.value, nil
}
