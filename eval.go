package gf2

import "fmt"

// NodeEvaluator evaluates nodes using known symbol values.
type NodeEvaluator struct {
	m map[uint32]bool // mapping of symbol index to value
}

// NewNodeEvaluator returns a new instance of NodeEvaluator with the given
// symbol/value mapping.
func NewNodeEvaluator(values map[uint32]bool) *NodeEvaluator {
	return &NodeEvaluator{m: values}
}

// NewNodeEvaluatorFromVector returns an evaluator binding symbol syms[i] to
// the bit i of x.
func NewNodeEvaluatorFromVector(syms Vector, x uint64) *NodeEvaluator {
	assert(len(syms) <= 64, "too many symbols: %d", len(syms))

	m := make(map[uint32]bool, len(syms))
	for i, s := range syms {
		assert(s.IsSym(), "not a symbol: %s", s)
		m[s.index] = x&(1<<uint(i)) != 0
	}
	return &NodeEvaluator{m: m}
}

// Evaluate evaluates e to a boolean.
// Returns an error if an unbound symbol is encountered.
func (ev *NodeEvaluator) Evaluate(e Node) (bool, error) {
	switch e.kind {
	case KindImm:
		return e.value, nil
	case KindSym:
		v, ok := ev.m[e.index]
		if !ok {
			return false, fmt.Errorf("gf2: unbound symbol %s", e)
		}
		return v, nil
	case KindAdd:
		var ret bool
		for _, a := range e.args {
			v, err := ev.Evaluate(a)
			if err != nil {
				return false, err
			}
			ret = ret != v
		}
		return ret, nil
	case KindMul:
		for _, a := range e.args {
			if v, err := ev.Evaluate(a); err != nil {
				return false, err
			} else if !v {
				return false, nil
			}
		}
		return len(e.args) > 0, nil
	case KindOr:
		for _, a := range e.args {
			if v, err := ev.Evaluate(a); err != nil {
				return false, err
			} else if v {
				return true, nil
			}
		}
		return false, nil
	case KindESF:
		// ESF(k) of n true arguments is C(n, k) mod 2.
		var n int
		for _, a := range e.args {
			v, err := ev.Evaluate(a)
			if err != nil {
				return false, err
			} else if v {
				n++
			}
		}
		return binomialParity(n, int(e.degree)), nil
	default:
		panic("unreachable")
	}
}

// EvaluateVector evaluates every entry of v.
func (ev *NodeEvaluator) EvaluateVector(v Vector) ([]bool, error) {
	ret := make([]bool, len(v))
	for i := range v {
		b, err := ev.Evaluate(v[i])
		if err != nil {
			return nil, err
		}
		ret[i] = b
	}
	return ret, nil
}
