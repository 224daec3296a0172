package avl

import "fmt"

// JoinStats collects the costs of the joins performed during a split.
type JoinStats struct {
	Joins int // number of joins
	Total int // sum of all join costs
	Max   int // most expensive single join
}

// Mean returns the average cost of a join, or 0 if there were none.
func (s JoinStats) Mean() float64 {
	if s.Joins == 0 {
		return 0
	}
	return float64(s.Total) / float64(s.Joins)
}

func (s *JoinStats) add(cost int) {
	s.Joins++
	s.Total += cost
	s.Max = max(s.Max, cost)
}

// Split partitions t around key, which must be present.
//
// It returns a tree with all keys smaller than key and a tree with all keys
// bigger than key. The node holding key is dropped and t is left empty, as
// all of its other nodes are moved into the result trees. If key is absent,
// Split returns ErrKeyNotFound and t is unchanged.
func (t *Tree[V]) Split(key int) (smaller, bigger *Tree[V], err error) {
	smaller, bigger, _, err = t.SplitWithStats(key)
	return smaller, bigger, err
}

// SplitWithStats is Split, additionally reporting the costs of the joins
// which re-assembled the subtrees along the path to the pivot.
func (t *Tree[V]) SplitWithStats(key int) (smaller, bigger *Tree[V], stats JoinStats, err error) {
	if t == nil {
		return nil, nil, stats, fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	pos, _ := t.find(key)
	x := *pos
	if x == nil {
		return nil, nil, stats, fmt.Errorf("%w: cannot split at %d", ErrKeyNotFound, key)
	}
	pred, succ := t.Predecessor(x), t.Successor(x)
	first, last := t.min, t.max
	smaller, bigger = fromSubtree(x.left), fromSubtree(x.right)
	// Walk up to the root. Every ancestor p is detached and re-used as the
	// separator joining its far subtree to the side the path came from.
	for n, p := x, x.parent; p != nil; {
		next := p.parent
		if p.left == n {
			rest := fromSubtree(p.right)
			p.detach()
			stats.add(bigger.join(p, rest))
		} else {
			rest := fromSubtree(p.left)
			p.detach()
			stats.add(smaller.join(p, rest))
		}
		n, p = p, next
	}
	x.detach()
	smaller.min, smaller.max = nil, nil
	if !smaller.Empty() {
		smaller.min, smaller.max = first, pred
	}
	bigger.min, bigger.max = nil, nil
	if !bigger.Empty() {
		bigger.min, bigger.max = succ, last
	}
	T().Debugf("avl: split at %d into %d | %d keys, %d joins, max cost %d",
		key, smaller.size, bigger.size, stats.Joins, stats.Max)
	t.reset()
	return smaller, bigger, stats, nil
}
