package gf2

import "slices"

// NodeVisitor represents a visitor that can be passed to WalkNode().
type NodeVisitor interface {
	// Executed for every visited node. Return a nil visitor to replace the
	// node with other and skip its children. Otherwise the node is kept and
	// its children are visited with the returned visitor.
	Visit(n Node) (other Node, w NodeVisitor)
}

// WalkNode walks n depth-first and replaces nodes as the visitor requests.
// Nodes on the path to a replaced descendant get a new argument list, sorted
// again, so trees sharing argument lists with n are not affected. Returns true
// if any node was replaced.
func WalkNode(v NodeVisitor, n *Node) bool {
	other, w := v.Visit(*n)
	if w == nil {
		*n = other
		return true
	}

	var args Args
	for i := range n.args {
		c := n.args[i]
		if !WalkNode(w, &c) {
			continue
		}
		if args == nil {
			args = slices.Clone(n.args)
		}
		args[i] = c
	}
	if args == nil {
		return false
	}
	args.Sort()
	n.args = args
	return true
}

// symbolVisitor collects the symbol indices of a tree.
type symbolVisitor struct {
	fn func(index uint32)
}

func (v *symbolVisitor) Visit(n Node) (Node, NodeVisitor) {
	if n.kind == KindSym {
		v.fn(n.index)
	}
	return n, v
}
