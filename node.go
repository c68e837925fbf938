package gf2

import (
	"fmt"
	"slices"
)

// Kind identifies the variant of a Node.
type Kind uint8

// Node kinds. The zero Node is an immediate false.
const (
	KindImm Kind = iota
	KindSym
	KindAdd
	KindMul
	KindESF
	KindOr
)

var kindNames = [...]string{
	KindImm: "Imm",
	KindSym: "Sym",
	KindAdd: "Add",
	KindMul: "Mul",
	KindESF: "ESF",
	KindOr:  "Or",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind<%d>", k)
}

// HasArgs returns true for the operator kinds.
func (k Kind) HasArgs() bool {
	return k >= KindAdd && k <= KindOr
}

// rank returns the sort priority of the kind. Operators sort before leaves:
// Or < ESF < Mul < Add < Sym < Imm.
// Only used internally for equality checks and sorting.
func (k Kind) rank() int {
	switch k {
	case KindOr:
		return 0
	case KindESF:
		return 1
	case KindMul:
		return 2
	case KindAdd:
		return 3
	case KindSym:
		return 4
	case KindImm:
		return 5
	default:
		panic("unreachable")
	}
}

// Node represents one element of the boolean algebra.
//
// A Node is a value. Assigning it shares the argument list of operator nodes.
// Operators never mutate their inputs, and the assignment methods and rewrite
// passes copy the arguments they modify, so a copy keeps its value when the
// original is rewritten.
type Node struct {
	kind   Kind
	value  bool   // KindImm
	index  uint32 // KindSym
	degree uint8  // KindESF
	args   Args   // operator kinds
}

// Imm returns an immediate node.
func Imm(v bool) Node {
	return Node{kind: KindImm, value: v}
}

// Sym returns a symbol node for the given symbol index.
func Sym(index uint32) Node {
	return Node{kind: KindSym, index: index}
}

// NewNode returns an operator node of the given kind over args. The arguments
// are sorted but not collapsed; run Simplify for a canonical node. Leaf kinds
// and ESF (which needs a degree) are rejected.
func NewNode(kind Kind, args ...Node) (Node, error) {
	switch kind {
	case KindAdd, KindMul, KindOr:
	default:
		return Node{}, &BadConstructionError{Kind: kind}
	}
	n := Node{kind: kind, args: cloneArgs(args)}
	n.args.Sort()
	return n, nil
}

// newArgsNode returns an operator node that takes ownership of args.
func newArgsNode(kind Kind, args Args) Node {
	assert(kind.HasArgs(), "newArgsNode: invalid kind %s", kind)
	return Node{kind: kind, args: args}
}

// ESF returns the elementary symmetric function of the given degree over args.
// Degree 1 is stored as an Add and a degree equal to the number of arguments
// is stored as a Mul. Degree 0 is true and a degree above the number of
// arguments is false.
func ESF(degree uint8, args ...Node) Node {
	n := Node{kind: KindESF, degree: degree, args: cloneArgs(args)}
	n.args.Sort()
	n.fixESF()
	return n
}

// fixESF retags an ESF whose degree makes it an addition or a product.
func (n *Node) fixESF() {
	if n.kind != KindESF {
		return
	}
	switch {
	case n.degree == 0:
		*n = Imm(true)
	case int(n.degree) > len(n.args):
		*n = Imm(false)
	case n.degree == 1:
		n.kind, n.degree = KindAdd, 0
	case int(n.degree) == len(n.args):
		n.kind, n.degree = KindMul, 0
	}
}

// Kind returns the variant of the node.
func (n Node) Kind() Kind { return n.kind }

// HasArgs returns true if the node is an operator.
func (n Node) HasArgs() bool { return n.kind.HasArgs() }

// IsImm returns true if n is an immediate.
func (n Node) IsImm() bool { return n.kind == KindImm }

// IsSym returns true if n is a symbol.
func (n Node) IsSym() bool { return n.kind == KindSym }

// IsFalse returns true if n is the immediate false.
func (n Node) IsFalse() bool { return n.kind == KindImm && !n.value }

// IsTrue returns true if n is the immediate true.
func (n Node) IsTrue() bool { return n.kind == KindImm && n.value }

// isOrESF returns true for the kinds sorted before Mul.
func (n Node) isOrESF() bool { return n.kind == KindOr || n.kind == KindESF }

// Args returns the argument list of an operator node. The returned slice is
// shared with n and its copies and must not be modified.
func (n Node) Args() (Args, error) {
	if !n.HasArgs() {
		return nil, fmt.Errorf("%w: %s node", ErrNotOperator, n.kind)
	}
	return n.args, nil
}

// NArgs returns the number of arguments, zero for leaves.
func (n Node) NArgs() int { return len(n.args) }

// Arg returns the i-th argument. Panics if n is a leaf or i is out of range.
func (n Node) Arg(i int) Node {
	assert(n.HasArgs(), "Arg: %s node has no arguments", n.kind)
	return n.args[i]
}

// SymbolIndex returns the index of a symbol node.
func (n Node) SymbolIndex() (uint32, error) {
	if n.kind != KindSym {
		return 0, &WrongKindError{Want: KindSym, Got: n.kind}
	}
	return n.index, nil
}

// ImmValue returns the value of an immediate node.
func (n Node) ImmValue() (bool, error) {
	if n.kind != KindImm {
		return false, &WrongKindError{Want: KindImm, Got: n.kind}
	}
	return n.value, nil
}

// ESFDegree returns the degree of an ESF node.
func (n Node) ESFDegree() (uint8, error) {
	if n.kind != KindESF {
		return 0, &WrongKindError{Want: KindESF, Got: n.kind}
	}
	return n.degree, nil
}

// Clone returns a deep copy of n.
func (n Node) Clone() Node {
	if n.args != nil {
		n.args = cloneArgs(n.args)
	}
	return n
}

// own replaces the argument tree of n with a private deep copy. In-place
// passes call it first so nodes sharing arguments with n are not affected.
func (n *Node) own() {
	if n.args != nil {
		n.args = cloneArgs(n.args)
	}
}

// ownArgs replaces the top-level argument list of n with a private copy.
func (n *Node) ownArgs() {
	if n.args != nil {
		n.args = slices.Clone(n.args)
	}
}

// FixUnary replaces a single-argument operator node with its argument.
func (n *Node) FixUnary() {
	if n.HasArgs() && len(n.args) == 1 {
		*n = n.args[0]
	}
}

// fixArity collapses a unary operator to its argument and an empty
// Add/Mul/Or to the immediate false.
func (n *Node) fixArity() {
	if !n.HasArgs() || n.kind == KindESF {
		return
	}
	switch len(n.args) {
	case 0:
		*n = Imm(false)
	case 1:
		*n = n.args[0]
	}
}

// Equal returns true if n and o are structurally equal.
func (n Node) Equal(o Node) bool {
	return CompareNode(n, o) == 0
}

// Hash returns a hash of the node. Only meaningful on canonical nodes.
func (n Node) Hash() uint64 {
	switch n.kind {
	case KindImm:
		var v uint64
		if n.value {
			v = 1
		}
		return uint64(n.kind)<<1 | v
	case KindSym:
		return uint64(n.kind)<<32 | uint64(n.index)
	default:
		ret := uint64(n.kind)<<8 | uint64(n.degree)
		for _, a := range n.args {
			ret = (ret << 4) | uint64(a.kind)
			ret = ret*0x5555555555555555 + a.Hash()
		}
		return ret
	}
}

// CompareNode returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func CompareNode(a, b Node) int {
	if ak, bk := a.kind.rank(), b.kind.rank(); ak < bk {
		return -1
	} else if ak > bk {
		return 1
	}

	switch a.kind {
	case KindImm:
		return compareImm(a, b)
	case KindSym:
		return compareSym(a, b)
	case KindESF:
		if a.degree < b.degree {
			return -1
		} else if a.degree > b.degree {
			return 1
		}
		return compareArgs(a.args, b.args)
	default:
		return compareArgs(a.args, b.args)
	}
}

func compareImm(a, b Node) int {
	if a.value == b.value {
		return 0
	} else if !a.value {
		return -1
	}
	return 1
}

func compareSym(a, b Node) int {
	if a.index < b.index {
		return -1
	} else if a.index > b.index {
		return 1
	}
	return 0
}

// compareArgs orders argument lists by length, then lexicographically.
func compareArgs(a, b Args) int {
	if len(a) < len(b) {
		return -1
	} else if len(a) > len(b) {
		return 1
	}
	for i := range a {
		if cmp := CompareNode(a[i], b[i]); cmp != 0 {
			return cmp
		}
	}
	return 0
}

// lessNode reports whether a sorts before b.
func lessNode(a, b Node) bool {
	return CompareNode(a, b) < 0
}
