package avl

// Successor returns the node with the next bigger key after n, or nil if n is
// the maximum (or nil).
func (t *Tree[V]) Successor(n *Node[V]) *Node[V] {
	if n == nil || n == t.max {
		return nil
	}
	if n.right != nil {
		return leftmost(n.right)
	}
	for p := n.parent; p != nil; n, p = p, p.parent {
		if p.left == n {
			return p
		}
	}
	return nil
}

// Predecessor returns the node with the next smaller key before n, or nil if
// n is the minimum (or nil).
func (t *Tree[V]) Predecessor(n *Node[V]) *Node[V] {
	if n == nil || n == t.min {
		return nil
	}
	if n.left != nil {
		return rightmost(n.left)
	}
	for p := n.parent; p != nil; n, p = p, p.parent {
		if p.right == n {
			return p
		}
	}
	return nil
}

// First returns the node with the smallest key, or nil for an empty tree.
func (t *Tree[V]) First() *Node[V] {
	return t.min
}

// Last returns the node with the biggest key, or nil for an empty tree.
func (t *Tree[V]) Last() *Node[V] {
	return t.max
}
