package gf2

import (
	"slices"

	"github.com/hashicorp/go-set/v3"
)

// IsANF returns true if e is an addition of symbols, products of symbols and
// the immediate true.
func IsANF(e Node) bool {
	if e.kind != KindAdd {
		return false
	}
	for _, a := range e.args {
		switch a.kind {
		case KindMul:
			for _, s := range a.args {
				if !s.IsSym() {
					return false
				}
			}
		case KindImm:
			if !a.value {
				return false
			}
		case KindSym:
		default:
			return false
		}
	}
	return true
}

// ANFESFMaxDegree returns the degree of the largest product of an ANF
// addition, or zero if it has none. Products sort by size, so this is the
// size of the last one.
func ANFESFMaxDegree(e Node) int {
	assert(IsANF(e), "ANFESFMaxDegree: not in ANF: %s", e)
	for i := len(e.args) - 1; i >= 0; i-- {
		if e.args[i].kind == KindMul {
			return len(e.args[i].args)
		}
	}
	return 0
}

// Contains returns true if o is an argument of e, or if e and o have the same
// kind and the arguments of o are a subset of those of e. Both must be sorted.
func Contains(e, o Node) bool {
	if e.kind != o.kind {
		return e.HasArgs() && e.args.Contains(o)
	}
	if !e.HasArgs() || len(o.args) == len(e.args) {
		return e.Equal(o)
	}
	if len(o.args) > len(e.args) || (e.kind == KindESF && e.degree != o.degree) {
		return false
	}

	start := 0
	for _, a := range o.args {
		i, ok := e.args.lowerBound(a, start)
		if !ok {
			return false
		}
		start = i + 1
	}
	return true
}

// SymbolSet returns the set of symbol indices used by nodes.
func SymbolSet(nodes ...Node) *set.Set[uint32] {
	s := set.New[uint32](0)
	v := &symbolVisitor{fn: func(index uint32) { s.Insert(index) }}
	for i := range nodes {
		n := nodes[i]
		WalkNode(v, &n)
	}
	return s
}

// SortedSymbols returns the symbol indices used by nodes in ascending order.
func SortedSymbols(nodes ...Node) []uint32 {
	a := SymbolSet(nodes...).Slice()
	slices.Sort(a)
	return a
}
