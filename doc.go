/*
Package avl implements an ordered, integer-keyed container on top of a
rank-balanced AVL tree.

Every node carries its rank (the AVL height, with the absent child at rank −1)
and the size of the subtree it roots. Ranks drive rebalancing, sizes give
order statistics. Besides the usual lookup, insertion and deletion, trees
support two structural operations:

  - Split partitions a tree around a present key into the trees of all smaller
    and all bigger keys.
  - Join merges two trees and a separating node into one tree. Its cost is
    proportional to the rank difference of the inputs, which is what keeps
    split at O(log n): the join costs along the pivot's root path telescope.

Insertion and deletion report the number of rebalancing steps they performed,
counting a promotion, demotion or single rotation as one step and a double
rotation as two.

	Operation     |  Time
	--------------+-----------
	Search        |  O(log n)
	Insert        |  O(log n)
	Delete        |  O(log n)
	Min, Max      |  O(1)
	Successor     |  O(log n)
	At, IndexOf   |  O(log n)
	Join          |  O(|rank(A) − rank(B)| + 1)
	Split         |  O(log n)

Trees are not safe for concurrent use. Nodes keep back-references to their
parents, so every operation requires exclusive access to the tree.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package avl

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
