package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/avl"
)

type nodeids[V any] struct {
	idTable map[*avl.Node[V]]int
	max     int
}

func newtable[V any]() nodeids[V] {
	return nodeids[V]{
		idTable: make(map[*avl.Node[V]]int),
		max:     1,
	}
}

func (ids nodeids[V]) find(node *avl.Node[V]) int {
	return ids.idTable[node]
}

func (ids *nodeids[V]) alloc(node *avl.Node[V]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Dot outputs the structure of an AVL tree in Graphviz DOT format
// (for debugging purposes). Every node is labelled with its key and rank,
// and missing children are drawn as small empty circles.
//
// highlight may name keys to be drawn with a different fill color.
func Dot[V any](w io.Writer, tree *avl.Tree[V], highlight ...int) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[V]()
	nodelist, edgelist := &strings.Builder{}, &strings.Builder{}
	hl := make(map[int]bool, len(highlight))
	for _, k := range highlight {
		hl[k] = true
	}
	nilid := 10000
	var walk func(node *avl.Node[V])
	walk = func(node *avl.Node[V]) {
		ID := ids.alloc(node)
		fmt.Fprintf(nodelist, "\"%d\" [label=\"%d\\nr%d\" %s];\n", ID, node.Key(), node.Rank(),
			nodeDotStyles(node.Size() == 1, hl[node.Key()]))
		if node.Size() == 1 {
			return
		}
		for _, child := range [...]*avl.Node[V]{node.Left(), node.Right()} {
			if !child.IsReal() {
				nilid++
				fmt.Fprintf(nodelist, "\"%d\" %s;\n", nilid, emptyNode)
				fmt.Fprintf(edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			fmt.Fprintf(edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			walk(child)
		}
	}
	if root, err := tree.Root(); err == nil {
		walk(root)
	}
	b.WriteString(nodelist.String())
	b.WriteString(edgelist.String())
	b.WriteString("}\n")
	T().Debugf("tree DOT: %d nodes", ids.max-1)
	_, err := io.WriteString(w, b.String())
	return err
}

const emptyNode = "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"

func nodeDotStyles(isleaf bool, highlight bool) string {
	s := ",style=filled,color=black,shape=circle"
	if highlight {
		s += ",fillcolor=\"#FFAA66\""
	} else if isleaf {
		s += ",fillcolor=white"
	} else {
		s += ",fillcolor=\"#a3d7e4\""
	}
	return s
}
