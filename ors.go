package gf2

import (
	"log/slog"
	"math"
	"slices"
)

// OrToESF recursively rewrites every disjunction over n arguments into the
// sum of the ESFs of degree 1 to n over the same arguments. Run Simplify
// afterward to canonicalize the result.
func OrToESF(e *Node) bool {
	e.own()
	return orToESFRec(e)
}

func orToESFRec(e *Node) bool {
	var changed bool
	for i := range e.args {
		changed = orToESFRec(&e.args[i]) || changed
	}
	if changed {
		e.args.Sort()
	}
	return OrToESFNoRec(e) || changed
}

// OrToESFCopy returns a copy of e with disjunctions rewritten into ESFs.
func OrToESFCopy(e Node) Node {
	OrToESF(&e)
	return e
}

// OrToESFNoRec rewrites e if it is a disjunction. ESF degrees fit in a byte,
// so a disjunction over more than 255 arguments is left unchanged.
func OrToESFNoRec(e *Node) bool {
	if e.kind != KindOr {
		return false
	}
	n := len(e.args)
	if n > math.MaxUint8 {
		slog.Debug("disjunction too wide for ESF conversion", "arity", n)
		return false
	}

	args := make(Args, 0, n)
	for d := 1; d <= n; d++ {
		args = append(args, ESF(uint8(d), e.args...))
	}
	args.Sort()
	*e = newArgsNode(KindAdd, args)
	return true
}

// ExpandESF recursively replaces every ESF node with the sum of its products
// and runs the single node simplification on the result.
func ExpandESF(e *Node) bool {
	e.own()
	return expandESFRec(e)
}

func expandESFRec(e *Node) bool {
	if !e.HasArgs() {
		return false
	}
	var changed bool
	for i := range e.args {
		changed = expandESFRec(&e.args[i]) || changed
	}
	if changed {
		e.args.Sort()
	}
	if e.kind != KindESF {
		return changed
	}
	expandESFNode(e)
	simplifyNoRec(e)
	return true
}

// ExpandESFCopy returns a copy of e with every ESF expanded.
func ExpandESFCopy(e Node) Node {
	ExpandESF(&e)
	return e
}

// expandESFNode rewrites an ESF of degree k into the sum of every product of
// k of its arguments. Products with a false factor are skipped.
func expandESFNode(e *Node) {
	if e.degree == 1 {
		e.kind, e.degree = KindAdd, 0
		return
	}

	var terms Args
	DrawWithoutReplacement(int(e.degree), len(e.args), func(idx []int) bool {
		p := Imm(true)
		for _, i := range idx {
			if e.args[i].IsFalse() {
				return true
			}
			p.mulAssign(e.args[i])
		}
		terms.InsertDup(p)
		return true
	})
	*e = newArgsNode(KindAdd, terms)
	e.FixUnary()
}

// IdentifyOrs recursively replaces the sums of ESF, product and symbol terms
// that form a disjunction with that disjunction. Nodes must be sorted.
func IdentifyOrs(e *Node) bool {
	e.own()
	return identifyOrsRec(e)
}

func identifyOrsRec(e *Node) bool {
	if !e.HasArgs() {
		return false
	}
	changed := identifyOrsNoRec(e)

	var sub bool
	for i := range e.args {
		sub = identifyOrsRec(&e.args[i]) || sub
	}
	if sub {
		e.args.Sort()
	}
	return changed || sub
}

// IdentifyOrsCopy returns a copy of e with disjunctions identified.
func IdentifyOrsCopy(e Node) Node {
	IdentifyOrs(&e)
	return e
}

// IdentifyOrsNoRec looks for disjunctions in a sorted addition.
//
// a|b|...|z over k symbols is the sum of the symbols, of the ESFs of degree 2
// to k-1 over them and of their product. Candidate subsets of the symbol terms
// are searched from the largest to the smallest. After every match the terms
// involved are removed and the search restarts.
func IdentifyOrsNoRec(e *Node) bool {
	e.ownArgs()
	return identifyOrsNoRec(e)
}

func identifyOrsNoRec(e *Node) bool {
	if e.kind != KindAdd {
		return false
	}
	assert(e.args.IsSorted(), "IdentifyOrsNoRec: unsorted arguments")

	args := e.args
	var ors Args
	for {
		or, remove, ok := findOr(args)
		if !ok {
			break
		}
		slog.Debug("identified disjunction", "arity", len(or.args))

		slices.Sort(remove)
		for i := len(remove) - 1; i >= 0; i-- {
			args.Delete(remove[i])
		}
		ors.InsertDup(or)
	}

	if len(ors) == 0 {
		return false
	}
	if len(args) == 0 && len(ors) == 1 {
		*e = ors[0]
		return true
	}
	for _, or := range ors {
		args.InsertDup(or)
	}
	e.args = args
	e.FixUnary()
	return true
}

// findOr returns the first disjunction found in args and the positions of the
// terms it replaces.
func findOr(args Args) (or Node, remove []int, ok bool) {
	var esfs, muls, syms []int
	for i, a := range args {
		switch a.kind {
		case KindESF:
			esfs = append(esfs, i)
		case KindMul:
			muls = append(muls, i)
		case KindSym:
			syms = append(syms, i)
		}
	}
	if len(muls) == 0 || len(syms) < 2 {
		return Node{}, nil, false
	}

	// findMul returns the position of the product over orArgs.
	findMul := func(orArgs Args) int {
		for _, i := range muls {
			if compareArgs(args[i].args, orArgs) == 0 {
				return i
			}
		}
		return -1
	}

	for k := len(syms); k >= 2; k-- {
		DrawWithoutReplacement(k, len(syms), func(idx []int) bool {
			orArgs := make(Args, len(idx))
			for i, j := range idx {
				orArgs[i] = args[syms[j]]
			}

			// ESFs of degree 2 to k-1 must be present.
			var matched []int
			degree := 2
			for _, i := range esfs {
				if degree == k {
					break
				}
				if d := int(args[i].degree); d > degree {
					break
				} else if d == degree && compareArgs(args[i].args, orArgs) == 0 {
					matched = append(matched, i)
					degree++
				}
			}
			if degree != k {
				return true
			}

			mul := findMul(orArgs)
			if mul < 0 {
				return true
			}

			remove = append(matched, mul)
			for _, j := range idx {
				remove = append(remove, syms[j])
			}
			or, ok = newArgsNode(KindOr, orArgs.Clone()), true
			return false
		})
		if ok {
			return or, remove, true
		}
	}
	return Node{}, nil, false
}
