package avl

// replaceChild links x into the slot of old below p, or makes x the root if
// p is nil.
func (t *Tree[V]) replaceChild(p, old, x *Node[V]) {
	switch {
	case p == nil:
		assert(t.root == old, "replaceChild: parent-less node is not the root")
		t.root = x
		if x != nil {
			x.parent = nil
		}
	case p.left == old:
		p.setLeft(x)
	case p.right == old:
		p.setRight(x)
	default:
		panic("replaceChild: corrupt parent link")
	}
}

// rotateRight lifts n, the left child of its parent p, into the place of p,
// turning (p (n a b) c) into (n a (p b c)).
func (t *Tree[V]) rotateRight(n *Node[V]) {
	p := n.parent
	if p == nil {
		return
	}
	assert(p.left == n, "rotateRight: node is not a left child")
	t.replaceChild(p.parent, p, n)
	p.setLeft(n.right)
	n.setRight(p)
	p.repair()
	n.repair()
}

// rotateLeft lifts n, the right child of its parent p, into the place of p,
// turning (p a (n b c)) into (n (p a b) c).
func (t *Tree[V]) rotateLeft(n *Node[V]) {
	p := n.parent
	if p == nil {
		return
	}
	assert(p.right == n, "rotateLeft: node is not a right child")
	t.replaceChild(p.parent, p, n)
	p.setRight(n.left)
	n.setLeft(p)
	p.repair()
	n.repair()
}
