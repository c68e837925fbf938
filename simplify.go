package gf2

// Simplify rewrites e to its canonical simplified form. OR/ESF
// conversion and ESF expansion are not part of it; see OrToESF, ExpandESF and
// IdentifyOrs.
//
// e takes a private copy of its arguments first, so nodes sharing argument
// lists with e keep their value.
func Simplify(e *Node) {
	e.own()
	sortRec(e)
	simplifyRec(e)
}

// SimplifyCopy returns a simplified copy of e.
func SimplifyCopy(e Node) Node {
	Simplify(&e)
	return e
}

func simplifyRec(e *Node) bool {
	if !e.HasArgs() {
		return false
	}

	var changed bool
	for i := range e.args {
		if simplifyRec(&e.args[i]) {
			changed = true
		}
	}
	if changed {
		e.args.Sort()
	}
	if simplifyNoRec(e) {
		changed = true
	}
	return changed
}

// simplifyNoRec runs the single node pipeline until distribution stops
// producing new terms. The terms produced by a distribution are simplified
// before the next round.
func simplifyNoRec(e *Node) bool {
	var changed bool
	for {
		changed = ConstantsPropNoRec(e) || changed
		changed = FlattenNoRec(e) || changed
		changed = constantsPropSortedNoRec(e) || changed
		changed = removeDeadOpsNoRec(e) || changed
		changed = FlattenNoRec(e) || changed
		if !ExpandNoRec(e) {
			return changed
		}
		changed = true

		// Distribution builds terms whose own arguments may need work.
		var sub bool
		for i := range e.args {
			sub = simplifyRec(&e.args[i]) || sub
		}
		if sub {
			e.args.Sort()
		}
	}
}

// Sort recursively sorts the argument lists of e.
func Sort(e *Node) {
	e.own()
	sortRec(e)
}

func sortRec(e *Node) {
	if !e.HasArgs() {
		return
	}
	for i := range e.args {
		sortRec(&e.args[i])
	}
	e.args.Sort()
}

// Flatten recursively absorbs operator children into parents of the same kind.
func Flatten(e *Node) bool {
	e.own()
	return flattenRec(e)
}

func flattenRec(e *Node) bool {
	if !e.HasArgs() {
		return false
	}
	var changed bool
	for i := range e.args {
		changed = flattenRec(&e.args[i]) || changed
	}
	return FlattenNoRec(e) || changed
}

// FlattenNoRec absorbs the children of e that have the same kind as e until
// none is left. ESF nodes are never flattened.
func FlattenNoRec(e *Node) bool {
	var changed bool
	for flattenOnce(e) {
		changed = true
	}
	return changed
}

func flattenOnce(e *Node) bool {
	if !e.HasArgs() {
		return false
	}
	switch {
	case len(e.args) == 0:
		*e = Imm(false)
		return true
	case e.kind == KindESF:
		return false
	case len(e.args) == 1:
		*e = e.args[0]
		return true
	}

	var found bool
	for _, a := range e.args {
		if a.kind == e.kind {
			found = true
			break
		}
	}
	if !found {
		return false
	}

	args := make(Args, 0, len(e.args))
	switch e.kind {
	case KindMul, KindOr:
		for _, a := range e.args {
			if a.kind != e.kind {
				args.Insert(a)
				continue
			}
			for _, c := range a.args {
				args.Insert(c)
			}
		}
		e.args = args
	default:
		for _, a := range e.args {
			if a.kind != KindAdd {
				args.InsertXor(a)
				continue
			}
			for _, c := range a.args {
				args.InsertXor(c)
			}
		}
		e.args = args
		e.FixUnary()
	}
	return true
}

// ConstantsProp recursively folds products containing false.
func ConstantsProp(e *Node) bool {
	e.own()
	return constantsPropRec(e)
}

func constantsPropRec(e *Node) bool {
	var changed bool
	for i := range e.args {
		changed = constantsPropRec(&e.args[i]) || changed
	}
	return ConstantsPropNoRec(e) || changed
}

// ConstantsPropNoRec replaces a product containing false with false and a
// disjunction containing true with true.
func ConstantsPropNoRec(e *Node) bool {
	if e.kind != KindMul && e.kind != KindOr {
		return false
	}
	absorbing := e.kind == KindOr
	for _, a := range e.args {
		if a.IsImm() && a.value == absorbing {
			*e = Imm(absorbing)
			return true
		}
	}
	return false
}

// ConstantsPropSortedNoRec removes the trailing false arguments of a sorted
// ESF node. The node becomes a product when exactly degree arguments remain
// and false when fewer remain. An ESF over immediates only is evaluated.
func ConstantsPropSortedNoRec(e *Node) bool {
	e.ownArgs()
	return constantsPropSortedNoRec(e)
}

func constantsPropSortedNoRec(e *Node) bool {
	if e.kind != KindESF {
		return false
	}

	// Immediates sort last, so the first argument tells if all are.
	if len(e.args) > 0 && e.args[0].IsImm() {
		var n int
		for _, a := range e.args {
			if a.value {
				n++
			}
		}
		*e = Imm(binomialParity(n, int(e.degree)))
		return true
	}

	// False sorts before true.
	end := len(e.args)
	for end > 0 && e.args[end-1].IsTrue() {
		end--
	}
	start := end
	for start > 0 && e.args[start-1].IsFalse() {
		start--
	}
	if start == end {
		return false
	}

	if start == 0 && end == len(e.args) {
		*e = Imm(false)
		return true
	}
	e.args = append(e.args[:start], e.args[end:]...)
	switch n := len(e.args); {
	case n == int(e.degree):
		e.kind, e.degree = KindMul, 0
	case n < int(e.degree):
		*e = Imm(false)
	}
	return true
}

// RemoveDeadOps recursively removes dead arguments.
func RemoveDeadOps(e *Node) bool {
	e.own()
	return removeDeadOpsRec(e)
}

func removeDeadOpsRec(e *Node) bool {
	var changed bool
	for i := range e.args {
		changed = removeDeadOpsRec(&e.args[i]) || changed
	}
	changed = ConstantsPropNoRec(e) || changed
	return removeDeadOpsNoRec(e) || changed
}

// RemoveDeadOpsNoRec removes arguments of a sorted node that do not affect its
// value: duplicates and a trailing identity for products and disjunctions,
// pairs of equal terms and false for additions.
func RemoveDeadOpsNoRec(e *Node) bool {
	e.ownArgs()
	return removeDeadOpsNoRec(e)
}

func removeDeadOpsNoRec(e *Node) bool {
	if !e.HasArgs() || e.kind == KindESF {
		return false
	}

	var changed bool
	switch e.kind {
	case KindMul, KindOr:
		changed = e.args.Unique()
		if n := len(e.args); n > 1 {
			// 1 is the identity of products and 0 the identity of disjunctions.
			if last := e.args[n-1]; last.IsImm() && last.value == (e.kind == KindMul) {
				e.args = e.args[:n-1]
				changed = true
			}
		}
	default:
		changed = removeCancelling(&e.args)
	}

	switch len(e.args) {
	case 0:
		*e = Imm(false)
		return true
	case 1:
		*e = e.args[0]
		return true
	}
	return changed
}

// removeCancelling keeps one element of every run of equal elements with odd
// length and drops false.
func removeCancelling(a *Args) bool {
	src := *a
	out := src[:0]
	for i := 0; i < len(src); {
		j := i + 1
		for j < len(src) && src[j].Equal(src[i]) {
			j++
		}
		if (j-i)&1 == 1 && !src[i].IsFalse() {
			out = append(out, src[i])
		}
		i = j
	}
	*a = out
	return len(out) != len(src)
}

// Expand recursively distributes products over additions.
func Expand(e *Node) bool {
	e.own()
	return expandRec(e)
}

func expandRec(e *Node) bool {
	if !e.HasArgs() {
		return false
	}
	var changed bool
	for i := range e.args {
		changed = expandRec(&e.args[i]) || changed
	}
	return ExpandNoRec(e) || changed
}

// ExpandNoRec distributes a sorted product over its addition arguments.
//
// Or and ESF factors sort first and are kept as factors of the distributed
// addition; they are only expanded once converted with OrToESF and ExpandESF.
func ExpandNoRec(e *Node) bool {
	if e.kind != KindMul || len(e.args) == 0 {
		return false
	}
	args := e.args
	n := len(args)

	if n == 2 && args[0].isOrESF() && args[1].kind == KindAdd {
		return false
	}

	addStart := 0
	for addStart < n && args[addStart].kind != KindAdd {
		addStart++
	}
	if addStart == n {
		return false
	} else if addStart > 0 && addStart == n-1 {
		// A single addition behind Or/ESF factors: nothing to distribute.
		return false
	}

	// Multiply the consecutive additions together.
	terms := args[addStart].args.Clone()
	i := addStart + 1
	for ; i < n && args[i].kind == KindAdd; i++ {
		terms = expandAddAdd(terms, args[i].args)
	}

	// Multiply the remaining factors into every term.
	if i < n {
		factor := newArgsNode(KindMul, args[i:].Clone())
		factor.FixUnary()
		for j := range terms {
			terms[j].mulAssign(factor)
		}
	}
	terms.Sort()

	if addStart == 0 {
		*e = newArgsNode(KindAdd, terms)
		return true
	}

	// Keep the leading Or/ESF factors.
	ret := newArgsNode(KindMul, args[:addStart].Clone())
	ret.mulAssign(collapse(KindAdd, terms))
	*e = ret
	return true
}

// expandAddAdd returns the terms of (a0 + a1 + ...) * (b0 + b1 + ...).
func expandAddAdd(a, b Args) Args {
	ret := make(Args, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			if p := Mul(x, y); !p.IsFalse() {
				ret.InsertXor(p)
			}
		}
	}
	return ret
}
