package avl

import "fmt"

// Delete removes key from the tree.
//
// It returns the number of rebalancing steps: a demotion or a single rotation
// counts as one step, a double rotation as two. Deleting an absent key returns
// ErrKeyNotFound and leaves the tree unchanged.
func (t *Tree[V]) Delete(key int) (int, error) {
	pos, _ := t.find(key)
	z := *pos
	if z == nil {
		return 0, fmt.Errorf("%w: %d", ErrKeyNotFound, key)
	}
	first, last := t.min, t.max
	if z == first {
		first = t.Successor(z)
	}
	if z == last {
		last = t.Predecessor(z)
	}
	start := t.splice(z)
	t.min, t.max = first, last
	t.size--
	z.detach()
	return t.rebalanceDelete(start), nil
}

// splice unlinks z from the tree and returns the lowest node whose subtree
// changed shape, where rebalancing has to start. The result is nil if z was
// a root with at most one child.
//
// A node with two children is replaced by its in-order successor, which is
// physically moved into z's slot and takes over z's rank.
func (t *Tree[V]) splice(z *Node[V]) *Node[V] {
	if z.left == nil || z.right == nil {
		child := z.left
		if child == nil {
			child = z.right
		}
		p := z.parent
		t.replaceChild(p, z, child)
		return p
	}
	y := leftmost(z.right)
	T().Debugf("avl: delete %d relocates successor %d", z.key, y.key)
	var start *Node[V]
	if y.parent == z {
		start = y
	} else {
		start = y.parent
		start.setLeft(y.right)
		y.setRight(z.right)
	}
	t.replaceChild(z.parent, z, y)
	y.setLeft(z.left)
	y.rank = z.rank
	return start
}

// rebalanceDelete walks from a to the root, fixing sizes and restoring the
// AVL invariant. A demotion may trigger further demotions above it, so the
// walk never stops early.
func (t *Tree[V]) rebalanceDelete(a *Node[V]) (steps int) {
	for ; a != nil; a = a.parent {
		a.resize()
		dl, dr := a.gaps()
		switch {
		case balanced(dl, dr):
		case dl == 2 && dr == 2:
			a.rank--
			steps++
		default:
			top, n := t.rotateDelete(a, dl)
			steps += n
			a = top
		}
	}
	return steps
}

// rotateDelete repairs a 3-1 or 1-3 node a and returns the new top of the
// subtree together with the number of steps taken.
func (t *Tree[V]) rotateDelete(a *Node[V], dl int) (*Node[V], int) {
	assert(dl == 1 || dl == 3, "rotateDelete: node is not a 3-1 or 1-3 node")
	if dl == 1 { // left side is heavy
		c := a.left
		cl, cr := c.gaps()
		if cl == 2 && cr == 1 {
			g := c.right
			t.rotateLeft(g)
			t.rotateRight(g)
			return g, 2
		}
		t.rotateRight(c)
		return c, 1
	}
	c := a.right
	cl, cr := c.gaps()
	if cl == 1 && cr == 2 {
		g := c.left
		t.rotateRight(g)
		t.rotateLeft(g)
		return g, 2
	}
	t.rotateLeft(c)
	return c, 1
}
