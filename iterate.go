package avl

import "iter"

// KeysInOrder returns all keys in ascending order.
func (t *Tree[V]) KeysInOrder() []int {
	keys := make([]int, 0, t.Size())
	if t != nil {
		walkInOrder(t.root, func(n *Node[V]) {
			keys = append(keys, n.key)
		})
	}
	return keys
}

// ValuesInOrder returns all values, ordered by their keys.
func (t *Tree[V]) ValuesInOrder() []V {
	values := make([]V, 0, t.Size())
	if t != nil {
		walkInOrder(t.root, func(n *Node[V]) {
			values = append(values, n.value)
		})
	}
	return values
}

// walkInOrder calls fn for every node below n, in key order.
// Recursion depth is bounded by the tree height.
func walkInOrder[V any](n *Node[V], fn func(*Node[V])) {
	if n == nil {
		return
	}
	walkInOrder(n.left, fn)
	fn(n)
	walkInOrder(n.right, fn)
}

// All returns an iterator over the key/value pairs of t in ascending key
// order. The tree must not be modified during iteration.
func (t *Tree[V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		if t == nil {
			return
		}
		for n := t.min; n != nil; n = t.Successor(n) {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}
