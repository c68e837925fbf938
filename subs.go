package gf2

import (
	"github.com/benbjohnson/immutable"
	"github.com/bits-and-blooms/bitset"
)

// Subs replaces every symbol of e whose index is set in syms with the
// immediate of the same index in values.
func Subs(e *Node, syms, values *bitset.BitSet) bool {
	return WalkNode(&bitsetVisitor{syms: syms, values: values}, e)
}

// SubsVector applies Subs to every entry of v.
func SubsVector(v Vector, syms, values *bitset.BitSet) bool {
	var changed bool
	for i := range v {
		changed = Subs(&v[i], syms, values) || changed
	}
	return changed
}

// SubsMatrix applies Subs to every entry of m.
func SubsMatrix(m *Matrix, syms, values *bitset.BitSet) bool {
	return SubsVector(m.elts, syms, values)
}

type bitsetVisitor struct {
	syms, values *bitset.BitSet
}

func (v *bitsetVisitor) Visit(n Node) (Node, NodeVisitor) {
	if n.kind == KindSym && v.syms.Test(uint(n.index)) {
		return Imm(v.values.Test(uint(n.index))), nil
	}
	return n, v
}

// BindVectors returns the bit sets binding the symbols of every vecs[i] to the
// bits of values[i]: entry j of vecs[i] takes bit j of values[i].
// Entries of vecs must be symbols.
func BindVectors(vecs []Vector, values []uint64) (syms, vals *bitset.BitSet, err error) {
	if len(vecs) != len(values) {
		return nil, nil, opErrorf(opSubsVecs, ErrNotApplicable)
	}

	syms, vals = bitset.New(0), bitset.New(0)
	for i, vec := range vecs {
		if len(vec) > 64 {
			return nil, nil, opErrorf(opSubsVecs, ErrNotApplicable)
		}
		for j, sym := range vec {
			if sym.kind != KindSym {
				return nil, nil, opErrorf(opSubsVecs, &WrongKindError{Want: KindSym, Got: sym.kind})
			}
			syms.Set(uint(sym.index))
			if values[i]&(1<<uint(j)) != 0 {
				vals.Set(uint(sym.index))
			}
		}
	}
	return syms, vals, nil
}

// SubsVectors binds the symbols of vecs to values with BindVectors and
// substitutes them in e.
func SubsVectors(e *Node, vecs []Vector, values []uint64) (bool, error) {
	syms, vals, err := BindVectors(vecs, values)
	if err != nil {
		return false, err
	}
	return Subs(e, syms, vals), nil
}

// SubsVectorsVector binds the symbols of vecs to values once and substitutes
// them in every entry of v.
func SubsVectorsVector(v Vector, vecs []Vector, values []uint64) (bool, error) {
	syms, vals, err := BindVectors(vecs, values)
	if err != nil {
		return false, err
	}
	return SubsVector(v, syms, vals), nil
}

// SubsVectorsMatrix binds the symbols of vecs to values once and substitutes
// them in every entry of m.
func SubsVectorsMatrix(m *Matrix, vecs []Vector, values []uint64) (bool, error) {
	return SubsVectorsVector(m.elts, vecs, values)
}

// SubsSymbols replaces every symbol syms[i] of e with the immediate values[i].
func SubsSymbols(e *Node, syms Vector, values []bool) (bool, error) {
	if len(syms) != len(values) {
		return false, opErrorf(opSubsSyms, ErrNotApplicable)
	}

	symSet, valSet := bitset.New(0), bitset.New(0)
	for i, sym := range syms {
		if sym.kind != KindSym {
			return false, opErrorf(opSubsSyms, &WrongKindError{Want: KindSym, Got: sym.kind})
		}
		symSet.Set(uint(sym.index))
		if values[i] {
			valSet.Set(uint(sym.index))
		}
	}
	return Subs(e, symSet, valSet), nil
}

// SubsExprs replaces every subtree of e equal to a key of m with its
// value. Matches are searched top-down and the replacement is not searched
// again. No simplification is performed.
func SubsExprs(e *Node, m ExprMap) bool {
	if m.Len() == 0 {
		return false
	}
	return WalkNode(&exprMapVisitor{m: m}, e)
}

// SubsExprsVector applies SubsExprs to every entry of v.
func SubsExprsVector(v Vector, m ExprMap) bool {
	var changed bool
	for i := range v {
		changed = SubsExprs(&v[i], m) || changed
	}
	return changed
}

// SubsExprsMatrix applies SubsExprs to every entry of m.
func SubsExprsMatrix(m *Matrix, em ExprMap) bool {
	return SubsExprsVector(m.elts, em)
}

type exprMapVisitor struct {
	m ExprMap
}

func (v *exprMapVisitor) Visit(n Node) (Node, NodeVisitor) {
	if other, ok := v.m.Get(n); ok {
		return other.Clone(), nil
	}
	return n, v
}

// ExprMap is a persistent sorted map from nodes to nodes. The zero value is an
// empty map.
type ExprMap struct {
	m *immutable.SortedMap
}

// NewExprMap returns a map of keys[i] to values[i].
func NewExprMap(keys, values []Node) ExprMap {
	assert(len(keys) == len(values), "key/value count mismatch: %d != %d", len(keys), len(values))

	var m ExprMap
	for i := range keys {
		m = m.Set(keys[i], values[i])
	}
	return m
}

// Len returns the number of entries.
func (m ExprMap) Len() int {
	if m.m == nil {
		return 0
	}
	return m.m.Len()
}

// Get returns the value of key.
func (m ExprMap) Get(key Node) (Node, bool) {
	if m.m == nil {
		return Node{}, false
	}
	v, ok := m.m.Get(key)
	if !ok {
		return Node{}, false
	}
	return v.(Node), true
}

// Set returns a copy of m with key mapped to value.
func (m ExprMap) Set(key, value Node) ExprMap {
	sm := m.m
	if sm == nil {
		sm = immutable.NewSortedMap(&nodeComparer{})
	}
	return ExprMap{m: sm.Set(key.Clone(), value.Clone())}
}

// Delete returns a copy of m without key.
func (m ExprMap) Delete(key Node) ExprMap {
	if m.m == nil {
		return m
	}
	return ExprMap{m: m.m.Delete(key)}
}

// Each calls fn for every entry in key order.
func (m ExprMap) Each(fn func(key, value Node)) {
	if m.m == nil {
		return
	}
	itr := m.m.Iterator()
	for !itr.Done() {
		k, v := itr.Next()
		fn(k.(Node), v.(Node))
	}
}

// nodeComparer compares two nodes. Implements immutable.Comparer.
type nodeComparer struct{}

// Compare returns -1 if a sorts before b, returns 1 if a sorts after b, and
// returns 0 if a is equal to b. Panic if a or b is not a Node.
func (c *nodeComparer) Compare(a, b interface{}) int {
	return CompareNode(a.(Node), b.(Node))
}
