package avl

import "fmt"

// Join merges the separator node x and the tree other into t.
//
// x has to be a detached node, e.g. created by NewNode, and its key has to
// separate the keys of t from the keys of other: either all keys of t are
// smaller than x and all keys of other are bigger, or vice versa. Either tree
// may be empty. On success, t holds all keys and other is left empty.
//
// Join returns the cost of the operation, |rank(t) − rank(other)| + 1, where
// an empty tree has rank −1.
func (t *Tree[V]) Join(x *Node[V], other *Tree[V]) (int, error) {
	if t == nil || other == nil || other == t {
		return 0, fmt.Errorf("%w: join needs two distinct trees", ErrIllegalArguments)
	}
	if x == nil || x.left != nil || x.right != nil || x.parent != nil ||
		x == t.root || x == other.root {
		return 0, fmt.Errorf("%w: separator must be a detached node", ErrIllegalArguments)
	}
	if !separates(t, x.key, other) && !separates(other, x.key, t) {
		return 0, fmt.Errorf("%w: separator %d", ErrOverlappingRanges, x.key)
	}
	x.detach()
	return t.join(x, other), nil
}

// separates reports whether all keys of lower are smaller than key and all keys
// of higher are bigger.
func separates[V any](lower *Tree[V], key int, higher *Tree[V]) bool {
	return (lower.Empty() || lower.max.key < key) && (higher.Empty() || key < higher.min.key)
}

// join is Join without argument checks. It is the building block of split,
// where the cached extremes of the trees involved may be unset.
func (t *Tree[V]) join(x *Node[V], other *Tree[V]) int {
	d := t.Height() - other.Height()
	cost := max(d, -d) + 1
	T().Debugf("avl: join %d with ranks %d, %d", x.key, t.Height(), other.Height())
	switch {
	case t.Empty() && other.Empty():
		t.root, t.min, t.max, t.size = x, x, x, 1
	case t.Empty():
		t.adopt(other)
		pos, parent := t.find(x.key)
		t.attach(x, pos, parent)
	case other.Empty():
		pos, parent := t.find(x.key)
		t.attach(x, pos, parent)
	case t.root.key < other.root.key:
		t.link(t, x, other)
	default:
		t.link(other, x, t)
	}
	other.reset()
	return cost
}

// link builds the tree lower + x + higher in t. Both input trees are
// non-empty and t is one of them.
func (t *Tree[V]) link(lower *Tree[V], x *Node[V], higher *Tree[V]) {
	rl, rh := lower.root.rank, higher.root.rank
	size := lower.size + higher.size + 1
	first, last := lower.min, higher.max
	switch {
	case rl > rh+1: // lower is deeper: hang x into its right spine
		p := lower.root
		for p.right.Rank() > rh {
			p = p.right
		}
		x.setLeft(p.right)
		x.setRight(higher.root)
		x.rank = rh + 1
		x.resize()
		p.setRight(x)
		t.root = lower.root
		t.growPath(x)
	case rh > rl+1: // higher is deeper: hang x into its left spine
		p := higher.root
		for p.left.Rank() > rl {
			p = p.left
		}
		x.setRight(p.left)
		x.setLeft(lower.root)
		x.rank = rl + 1
		x.resize()
		p.setLeft(x)
		t.root = higher.root
		t.growPath(x)
	default:
		x.setLeft(lower.root)
		x.setRight(higher.root)
		x.rank = max(rl, rh) + 1
		x.resize()
		t.root = x
	}
	t.size = size
	t.min, t.max = first, last
}

// growPath fixes the sizes above the freshly linked node x and rebalances.
func (t *Tree[V]) growPath(x *Node[V]) {
	for a := x.parent; a != nil; a = a.parent {
		a.resize()
	}
	t.rebalanceInsert(x)
}
