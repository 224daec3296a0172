package avl

import "fmt"

// At returns the key and value at position index in key order, counting from 0.
func (t *Tree[V]) At(index int) (int, V, error) {
	var zero V
	if index < 0 || index >= t.Size() {
		return 0, zero, fmt.Errorf("%w: %d", ErrIndexOutOfBounds, index)
	}
	n := t.root
	for {
		l := n.left.Size()
		switch {
		case index < l:
			n = n.left
		case index == l:
			return n.key, n.value, nil
		default:
			index -= l + 1
			n = n.right
		}
		assert(n != nil, "At: subtree sizes are inconsistent")
	}
}

// IndexOf returns the position of key in key order, counting from 0.
func (t *Tree[V]) IndexOf(key int) (int, error) {
	var n *Node[V]
	if t != nil {
		n = t.root
	}
	index := 0
	for n != nil {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			index += n.left.Size() + 1
			n = n.right
		default:
			return index + n.left.Size(), nil
		}
	}
	return -1, fmt.Errorf("%w: %d", ErrKeyNotFound, key)
}
