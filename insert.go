package avl

import "fmt"

// Insert stores value under key.
//
// It returns the number of rebalancing steps: a promotion or a single rotation
// counts as one step, a double rotation as two. Inserting a key which is
// already present returns ErrDuplicateKey and leaves the tree unchanged.
func (t *Tree[V]) Insert(key int, value V) (int, error) {
	pos, parent := t.find(key)
	if *pos != nil {
		return 0, fmt.Errorf("%w: %d", ErrDuplicateKey, key)
	}
	return t.attach(NewNode(key, value), pos, parent), nil
}

// attach links the detached leaf x at pos below parent, fixes up sizes and
// the cached extremes and rebalances.
func (t *Tree[V]) attach(x *Node[V], pos **Node[V], parent *Node[V]) int {
	*pos = x
	x.parent = parent
	if t.min == nil || x.key < t.min.key {
		t.min = x
	}
	if t.max == nil || x.key > t.max.key {
		t.max = x
	}
	t.size++
	for a := parent; a != nil; a = a.parent {
		a.size++
	}
	return t.rebalanceInsert(x)
}

// rebalanceInsert restores the AVL invariant on the path from x upwards,
// after the subtree rooted at x has grown by one rank.
//
// Ranks below each visited ancestor are exact, sizes are expected to be
// correct already.
func (t *Tree[V]) rebalanceInsert(x *Node[V]) (steps int) {
	for a := x.parent; a != nil; a = a.parent {
		dl, dr := a.gaps()
		if balanced(dl, dr) {
			return steps
		}
		if dl+dr == 1 { // 0-1 node: a pure height increase of one child
			a.rank++
			steps++
			continue
		}
		top, n, grown := t.rotateInsert(a, dl)
		steps += n
		if !grown {
			return steps
		}
		a = top
	}
	return steps
}

// rotateInsert repairs a 0-2 node a by a single or double rotation.
// It returns the new top of the subtree, the number of steps and whether the
// subtree ended up taller than before the violation. The latter happens only
// when the heavy child is a 1-1 node, which join can produce but insertion
// cannot.
func (t *Tree[V]) rotateInsert(a *Node[V], dl int) (top *Node[V], steps int, grown bool) {
	h := a.rank
	if dl == 0 {
		c := a.left
		if c.rank-c.left.Rank() == 1 {
			t.rotateRight(c)
			return c, 1, c.rank > h
		}
		g := c.right
		t.rotateLeft(g)
		t.rotateRight(g)
		return g, 2, g.rank > h
	}
	c := a.right
	if c.rank-c.right.Rank() == 1 {
		t.rotateLeft(c)
		return c, 1, c.rank > h
	}
	g := c.left
	t.rotateRight(g)
	t.rotateLeft(g)
	return g, 2, g.rank > h
}
