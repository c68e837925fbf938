package gf2

import (
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Vector is a fixed-length sequence of nodes.
type Vector []Node

// NewVector returns a vector of n false immediates.
func NewVector(n int) Vector {
	return make(Vector, n)
}

// NewSymbolVector returns the vector of the n symbols starting at index start.
func NewSymbolVector(start uint32, n int) Vector {
	v := make(Vector, n)
	for i := range v {
		v[i] = Sym(start + uint32(i))
	}
	return v
}

// NewVectorFromUint64 returns the nbits immediates of x, least significant
// bit first.
func NewVectorFromUint64(x uint64, nbits int) Vector {
	var v Vector
	v.SetUint64BE(x, nbits)
	return v
}

// Clone returns a deep copy of v.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	return Vector(cloneArgs(v))
}

// Equal returns true if v and o have equal entries.
func (v Vector) Equal(o Vector) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if !v[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// Add returns the entrywise XOR of v and o.
func (v Vector) Add(o Vector) (Vector, error) {
	return v.zip(opAdd, o, Add)
}

// Mul returns the entrywise conjunction of v and o.
func (v Vector) Mul(o Vector) (Vector, error) {
	return v.zip(opMul, o, Mul)
}

// Or returns the entrywise disjunction of v and o.
func (v Vector) Or(o Vector) (Vector, error) {
	return v.zip(opOr, o, Or)
}

// Scale returns the conjunction of every entry of v with e.
func (v Vector) Scale(e Node) Vector {
	ret := make(Vector, len(v))
	for i := range v {
		ret[i] = Mul(v[i], e)
	}
	return ret
}

func (v Vector) zip(tag string, o Vector, fn func(a, b Node) Node) (Vector, error) {
	if len(v) != len(o) {
		return nil, opErrorf(tag, ErrSizeMismatch)
	}
	ret := make(Vector, len(v))
	for i := range v {
		ret[i] = fn(v[i], o[i])
	}
	return ret, nil
}

// AddAssign sets v to v + o.
func (v Vector) AddAssign(o Vector) error {
	if len(v) != len(o) {
		return opErrorf(opAdd, ErrSizeMismatch)
	}
	for i := range v {
		v[i].AddAssign(o[i])
	}
	return nil
}

// MulAssign sets v to v * o.
func (v Vector) MulAssign(o Vector) error {
	if len(v) != len(o) {
		return opErrorf(opMul, ErrSizeMismatch)
	}
	for i := range v {
		v[i].MulAssign(o[i])
	}
	return nil
}

// OrAssign sets v to v | o.
func (v Vector) OrAssign(o Vector) error {
	if len(v) != len(o) {
		return opErrorf(opOr, ErrSizeMismatch)
	}
	for i := range v {
		v[i].OrAssign(o[i])
	}
	return nil
}

// ScaleAssign multiplies every entry of v by e.
func (v Vector) ScaleAssign(e Node) {
	for i := range v {
		v[i].MulAssign(e)
	}
}

// Shr returns v with its entries moved n positions toward the end. The first
// n entries are false.
func (v Vector) Shr(n int) Vector {
	ret := make(Vector, len(v))
	if n < len(v) {
		copy(ret[n:], v[:len(v)-n].Clone())
	}
	return ret
}

// Shl returns v with its entries moved n positions toward the start. The last
// n entries are false.
func (v Vector) Shl(n int) Vector {
	ret := make(Vector, len(v))
	if n < len(v) {
		copy(ret, v[n:].Clone())
	}
	return ret
}

// Uint64BE returns the integer whose bit i is entry i. Returns false if one of
// the first 64 entries is not an immediate.
func (v Vector) Uint64BE() (uint64, bool) {
	n := min(len(v), 64)
	var x uint64
	for i := 0; i < n; i++ {
		if !v[i].IsImm() {
			return 0, false
		} else if v[i].value {
			x |= 1 << uint(i)
		}
	}
	return x, true
}

// Uint64LE returns the integer whose bit n-1-i is entry i.
func (v Vector) Uint64LE() (uint64, bool) {
	n := min(len(v), 64)
	var x uint64
	for i := 0; i < n; i++ {
		if !v[i].IsImm() {
			return 0, false
		} else if v[i].value {
			x |= 1 << uint(n-i-1)
		}
	}
	return x, true
}

// SetUint64BE sets v to the nbits immediates of x, bit i in entry i.
func (v *Vector) SetUint64BE(x uint64, nbits int) {
	*v = make(Vector, nbits)
	for i := 0; i < nbits && i < 64; i++ {
		(*v)[i] = Imm(x&(1<<uint(i)) != 0)
	}
}

// SetUint64LE sets v to the nbits immediates of x, bit nbits-1-i in entry i.
func (v *Vector) SetUint64LE(x uint64, nbits int) {
	*v = make(Vector, nbits)
	for i := nbits - 1; i >= 0 && x > 0; i-- {
		(*v)[i] = Imm(x&1 == 1)
		x >>= 1
	}
}

// SimplifyVector simplifies every entry of v in place. Entries are
// independent and are processed by a pool of workers.
func SimplifyVector(v Vector, opts ...Option) {
	forEach(v, "simplify", Simplify, opts)
}

// ExpandESFVector applies ExpandESF to every entry of v.
func ExpandESFVector(v Vector, opts ...Option) {
	forEach(v, "expand_esf", func(e *Node) { ExpandESF(e) }, opts)
}

// OrToESFVector applies OrToESF to every entry of v.
func OrToESFVector(v Vector, opts ...Option) {
	forEach(v, "or_to_esf", func(e *Node) { OrToESF(e) }, opts)
}

// IdentifyOrsVector applies IdentifyOrs to every entry of v.
func IdentifyOrsVector(v Vector, opts ...Option) {
	forEach(v, "identify_ors", func(e *Node) { IdentifyOrs(e) }, opts)
}

// forEach runs fn on every entry of v on the configured worker pool. Entries
// may share argument lists, so fn must copy them before writing.
func forEach(v Vector, name string, fn func(e *Node), opts []Option) {
	c := newConfig(opts)
	if c.workers <= 1 || len(v) < 2 {
		for i := range v {
			fn(&v[i])
		}
		return
	}

	slog.Debug("vector pass", "pass", name, "entries", len(v), "workers", c.workers)

	var g errgroup.Group
	g.SetLimit(c.workers)
	for i := range v {
		g.Go(func() error {
			fn(&v[i])
			return nil
		})
	}
	_ = g.Wait()
}
