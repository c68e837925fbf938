package gf2

// Or returns the canonical disjunction of a and b.
func Or(a, b Node) Node {
	if a.Equal(b) {
		return a.Clone()
	}

	// Order operands so that a has the lowest kind.
	if a.kind.rank() > b.kind.rank() {
		a, b = b, a
	}

	if b.kind == KindImm {
		if b.value {
			return Imm(true)
		}
		return a.Clone()
	}

	if a.kind == KindOr {
		args := a.args.Clone()
		if b.kind == KindOr {
			args.Merge(b.args.Clone(), MergeKeepFirst)
		} else {
			args.Insert(b.Clone())
		}
		return collapse(KindOr, args)
	}
	return newArgsNode(KindOr, pair(a, b))
}

// Add returns the canonical XOR of a and b.
func Add(a, b Node) Node {
	if a.kind == b.kind {
		if a.Equal(b) {
			return Imm(false)
		}
		switch a.kind {
		case KindAdd:
			args := a.args.Clone()
			args.Merge(b.args.Clone(), MergeCancel)
			return collapse(KindAdd, args)
		case KindImm:
			return Imm(a.value != b.value)
		}
		return newArgsNode(KindAdd, pair(a, b))
	}

	// Order operands so that a has the lowest kind.
	if a.kind.rank() > b.kind.rank() {
		a, b = b, a
	}
	if b.IsFalse() {
		return a.Clone()
	}

	// Extend an existing addition with the other operand.
	if b.kind == KindAdd {
		a, b = b, a
	}
	if a.kind == KindAdd {
		args := a.args.Clone()
		args.InsertXor(b.Clone())
		return collapse(KindAdd, args)
	}
	return newArgsNode(KindAdd, pair(a, b))
}

// Mul returns the canonical conjunction of a and b.
func Mul(a, b Node) Node {
	if a.Equal(b) {
		return a.Clone()
	}

	// Order operands so that a has the lowest kind.
	if a.kind.rank() > b.kind.rank() {
		a, b = b, a
	}

	if b.kind == KindImm {
		if !b.value {
			return Imm(false)
		}
		return a.Clone()
	}

	// Extend an existing product with the other operand.
	if b.kind == KindMul {
		a, b = b, a
	}
	if a.kind == KindMul {
		args := a.args.Clone()
		if b.kind == KindMul {
			args.Merge(b.args.Clone(), MergeKeepFirst)
		} else {
			args.Insert(b.Clone())
		}
		return collapse(KindMul, args)
	}
	return newArgsNode(KindMul, pair(a, b))
}

// Not returns the complement of a, which is a + 1 in GF(2).
func Not(a Node) Node {
	return Add(a, Imm(true))
}

// Sum returns the XOR of all nodes. An empty sum is false.
func Sum(nodes ...Node) Node {
	ret := Imm(false)
	for _, n := range nodes {
		ret.addAssign(n)
	}
	return ret
}

// Product returns the conjunction of all nodes. An empty product is true.
func Product(nodes ...Node) Node {
	ret := Imm(true)
	for _, n := range nodes {
		ret.mulAssign(n)
	}
	return ret
}

// Any returns the disjunction of all nodes. An empty disjunction is false.
func Any(nodes ...Node) Node {
	ret := Imm(false)
	for _, n := range nodes {
		ret.orAssign(n)
	}
	return ret
}

// AddAssign sets n to n + o. Nodes sharing the argument list of n are not
// affected.
func (n *Node) AddAssign(o Node) {
	n.ownArgs()
	n.addAssign(o)
}

// MulAssign sets n to n * o. Nodes sharing the argument list of n are not
// affected.
func (n *Node) MulAssign(o Node) {
	n.ownArgs()
	n.mulAssign(o)
}

// OrAssign sets n to n | o. Nodes sharing the argument list of n are not
// affected.
func (n *Node) OrAssign(o Node) {
	n.ownArgs()
	n.orAssign(o)
}

// addAssign extends an addition receiver in place. The receiver must own its
// argument list.
func (n *Node) addAssign(o Node) {
	if n.kind != KindAdd {
		*n = Add(*n, o)
		return
	}

	switch o.kind {
	case KindAdd:
		n.args.Merge(o.args.Clone(), MergeCancel)
	case KindImm:
		if o.value {
			n.args.InsertXor(o)
		}
	default:
		n.args.InsertXor(o.Clone())
	}
	n.fixArity()
}

func (n *Node) mulAssign(o Node) {
	if n.kind != KindMul {
		*n = Mul(*n, o)
		return
	}

	switch o.kind {
	case KindMul:
		n.args.Merge(o.args.Clone(), MergeKeepFirst)
	case KindImm:
		if !o.value {
			*n = Imm(false)
		}
	default:
		n.args.Insert(o.Clone())
	}
}

func (n *Node) orAssign(o Node) {
	if n.kind != KindOr {
		*n = Or(*n, o)
		return
	}

	switch o.kind {
	case KindOr:
		n.args.Merge(o.args.Clone(), MergeKeepFirst)
	case KindImm:
		if o.value {
			*n = Imm(true)
		}
	default:
		n.args.Insert(o.Clone())
	}
}

// pair returns sorted copies of a and b as an argument list.
func pair(a, b Node) Args {
	if lessNode(b, a) {
		a, b = b, a
	}
	return Args{a.Clone(), b.Clone()}
}

// collapse returns an operator node over args with the arity rules applied.
func collapse(kind Kind, args Args) Node {
	n := newArgsNode(kind, args)
	n.fixArity()
	return n
}
