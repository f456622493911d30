package jsonsel

import "github.com/ericchiang/jsonsel/internal/domnode"

// frame is one level of the iterative depth-first walk: the node
// itself, plus a cursor into the index of the next child to descend
// into. Its size does not depend on how many nodes have been visited,
// only on the node's position in the tree, which is what keeps the
// iterator's working state proportional to the document's depth
// rather than its size.
type frame struct {
	n        *domnode.Node
	visited  bool
	childIdx int
}

// walker is the bounded-state, stack-based pre-order traversal the
// evaluator drives one step at a time. Document order is depth-first
// pre-order, visiting an object's members (or an array's elements) in
// the order Children() returns them.
type walker struct {
	stack []frame
}

func newWalker(root *domnode.Node) *walker {
	return &walker{stack: []frame{{n: root}}}
}

// next returns the next node in document order, or ok=false once the
// whole tree has been visited.
func (w *walker) next() (n *domnode.Node, ok bool) {
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if !top.visited {
			top.visited = true
			return top.n, true
		}
		children := top.n.Children()
		if top.childIdx < len(children) {
			child := children[top.childIdx]
			top.childIdx++
			w.stack = append(w.stack, frame{n: child})
			continue
		}
		w.stack = w.stack[:len(w.stack)-1]
	}
	return nil, false
}
