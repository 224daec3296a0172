package avl

import "fmt"

// Check validates the structural invariants of t: key order, AVL balance of
// the ranks, subtree sizes, parent links and the cached extremes.
//
// The checker visits every node and is meant for tests and debugging.
func (t *Tree[V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	if err := t.check(); err != nil {
		T().Errorf("avl: %v", err)
		return err
	}
	return nil
}

func (t *Tree[V]) check() error {
	if t.root == nil {
		if t.size != 0 || t.min != nil || t.max != nil {
			return fmt.Errorf("%w: empty tree with size=%d, min=%v, max=%v",
				ErrInvariantViolated, t.size, t.min != nil, t.max != nil)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root %d has a parent", ErrInvariantViolated, t.root.key)
	}
	if t.size != t.root.size {
		return fmt.Errorf("%w: tree size %d != root size %d", ErrInvariantViolated, t.size, t.root.size)
	}
	if t.min != leftmost(t.root) {
		return fmt.Errorf("%w: cached min %d is not the smallest key", ErrInvariantViolated, t.min.Key())
	}
	if t.max != rightmost(t.root) {
		return fmt.Errorf("%w: cached max %d is not the biggest key", ErrInvariantViolated, t.max.Key())
	}
	_, err := checkNode(t.root, nil, nil)
	return err
}

// checkNode validates the subtree at n, whose keys must lie strictly between
// the keys of the bounding nodes lo and hi (if present), and returns its size.
func checkNode[V any](n, lo, hi *Node[V]) (int, error) {
	if n == nil {
		return 0, nil
	}
	if (lo != nil && n.key <= lo.key) || (hi != nil && n.key >= hi.key) {
		return 0, fmt.Errorf("%w: key %d out of order", ErrInvariantViolated, n.key)
	}
	for _, c := range []*Node[V]{n.left, n.right} {
		if c != nil && c.parent != n {
			return 0, fmt.Errorf("%w: broken parent link at %d", ErrInvariantViolated, c.key)
		}
	}
	if dl, dr := n.gaps(); !balanced(dl, dr) {
		return 0, fmt.Errorf("%w: node %d has rank gaps %d,%d", ErrInvariantViolated, n.key, dl, dr)
	}
	ls, err := checkNode(n.left, lo, n)
	if err != nil {
		return 0, err
	}
	rs, err := checkNode(n.right, n, hi)
	if err != nil {
		return 0, err
	}
	if n.size != 1+ls+rs {
		return 0, fmt.Errorf("%w: node %d has size %d, counted %d", ErrInvariantViolated, n.key, n.size, 1+ls+rs)
	}
	return n.size, nil
}
