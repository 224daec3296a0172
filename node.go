package avl

// Node is a vertex of an AVL tree, holding one key/value pair.
//
// The absent child is represented by a nil *Node. All accessors may be called
// on a nil node: it reports rank −1, size 0 and is not real. Height and size
// arithmetic therefore never needs to special-case missing children.
//
// Clients receive nodes as read-only handles for traversal (see Tree.Root) and
// create detached nodes with NewNode to serve as separators for Tree.Join.
type Node[V any] struct {
	key    int
	value  V
	rank   int // AVL height; 0 for a leaf
	size   int // number of nodes in the subtree rooted here
	left   *Node[V]
	right  *Node[V]
	parent *Node[V] // back-reference, never owning
}

// NewNode creates a detached leaf node, usable as a separator for Join.
func NewNode[V any](key int, value V) *Node[V] {
	return &Node[V]{key: key, value: value, size: 1}
}

// Key returns the node's key, or 0 for the absent node.
func (n *Node[V]) Key() int {
	if n == nil {
		return 0
	}
	return n.key
}

// Value returns the node's value, or the zero value for the absent node.
func (n *Node[V]) Value() V {
	if n == nil {
		var zero V
		return zero
	}
	return n.value
}

// Left returns the left child. The result is nil if there is none.
func (n *Node[V]) Left() *Node[V] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child. The result is nil if there is none.
func (n *Node[V]) Right() *Node[V] {
	if n == nil {
		return nil
	}
	return n.right
}

// Parent returns the parent node, or nil for a root.
func (n *Node[V]) Parent() *Node[V] {
	if n == nil {
		return nil
	}
	return n.parent
}

// Rank returns the AVL height of the node: 0 for a leaf, −1 for the absent node.
func (n *Node[V]) Rank() int {
	if n == nil {
		return -1
	}
	return n.rank
}

// Size returns the number of nodes in the subtree rooted at n.
func (n *Node[V]) Size() int {
	if n == nil {
		return 0
	}
	return n.size
}

// IsReal reports whether n is a node holding a key, as opposed to the absent child.
func (n *Node[V]) IsReal() bool {
	return n != nil
}

// gaps returns the rank differences to the left and right child.
func (n *Node[V]) gaps() (dl, dr int) {
	return n.rank - n.left.Rank(), n.rank - n.right.Rank()
}

// balanced reports whether rank gaps (dl, dr) are legal for an AVL node:
// both in {1, 2}, but not both 2.
func balanced(dl, dr int) bool {
	return dl >= 1 && dl <= 2 && dr >= 1 && dr <= 2 && dl+dr < 4
}

func (n *Node[V]) setLeft(c *Node[V]) {
	n.left = c
	if c != nil {
		c.parent = n
	}
}

func (n *Node[V]) setRight(c *Node[V]) {
	n.right = c
	if c != nil {
		c.parent = n
	}
}

// resize recomputes the subtree size of n from its children.
func (n *Node[V]) resize() {
	n.size = 1 + n.left.Size() + n.right.Size()
}

// repair recomputes rank and size of n from its children.
// It is used by the rotation engine only; rebalancers change ranks by
// explicit promotion or demotion.
func (n *Node[V]) repair() {
	n.rank = 1 + max(n.left.Rank(), n.right.Rank())
	n.resize()
}

// detach turns n into a single, unlinked leaf.
func (n *Node[V]) detach() {
	n.left, n.right, n.parent = nil, nil, nil
	n.rank, n.size = 0, 1
}

func leftmost[V any](n *Node[V]) *Node[V] {
	for n != nil && n.left != nil {
		n = n.left
	}
	return n
}

func rightmost[V any](n *Node[V]) *Node[V] {
	for n != nil && n.right != nil {
		n = n.right
	}
	return n
}
