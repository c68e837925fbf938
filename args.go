package gf2

import (
	"slices"

	"golang.org/x/sync/errgroup"
)

// linearSearchLimit is the range size under which lookups scan linearly
// instead of bisecting. Argument lists are usually small.
const linearSearchLimit = 8

// parallelSortThreshold is the length from which Sort splits the work across
// goroutines.
const parallelSortThreshold = 4096

// Args is a sorted sequence of nodes holding the operands of an operator.
//
// Sortedness is maintained by the insertion methods. Whether equal elements
// may coexist depends on the operator: Mul and Or arguments form a set, Add
// arguments cancel in pairs and ESF arguments keep duplicates.
type Args []Node

// cloneArgs returns a deep copy of a.
func cloneArgs(a []Node) Args {
	if a == nil {
		return nil
	}
	other := make(Args, len(a))
	for i := range a {
		other[i] = a[i].Clone()
	}
	return other
}

// Clone returns a deep copy of the container.
func (a Args) Clone() Args { return cloneArgs(a) }

// IsSorted returns true if the elements are in ascending order.
func (a Args) IsSorted() bool {
	return slices.IsSortedFunc(a, CompareNode)
}

// lowerBound returns the position of the first element not less than v,
// searching from start, and whether an element equal to v was found there.
func (a Args) lowerBound(v Node, start int) (int, bool) {
	if start >= len(a) {
		return start, false
	}
	switch cmp := CompareNode(v, a[start]); {
	case cmp == 0:
		return start, true
	case cmp < 0:
		return start, false
	}

	end := len(a)
	for end-start > linearSearchLimit {
		mid := start + (end-start)/2
		switch cmp := CompareNode(v, a[mid]); {
		case cmp == 0:
			return mid, true
		case cmp < 0:
			end = mid
		default:
			start = mid
		}
	}
	for start < len(a) {
		cmp := CompareNode(a[start], v)
		if cmp == 0 {
			return start, true
		} else if cmp > 0 {
			break
		}
		start++
	}
	return start, false
}

// LowerBound returns the position of the first element not less than v.
func (a Args) LowerBound(v Node) int {
	i, _ := a.lowerBound(v, 0)
	return i
}

// LowerBoundFrom is like LowerBound but starts the search at start. Elements
// before start must be less than v.
func (a Args) LowerBoundFrom(v Node, start int) int {
	i, _ := a.lowerBound(v, start)
	return i
}

// Find returns the position of an element equal to v or -1.
func (a Args) Find(v Node) int {
	return a.FindFrom(v, 0)
}

// FindFrom is like Find but starts the search at start.
func (a Args) FindFrom(v Node, start int) int {
	if i, ok := a.lowerBound(v, start); ok {
		return i
	}
	return -1
}

// Contains returns true if an element equal to v is present.
func (a Args) Contains(v Node) bool {
	return a.Find(v) >= 0
}

// Insert adds v at its sorted position unless an equal element exists.
// Returns the position of v and whether it was inserted.
func (a *Args) Insert(v Node) (int, bool) {
	i, found := a.lowerBound(v, 0)
	if found {
		return i, false
	}
	*a = slices.Insert(*a, i, v)
	return i, true
}

// InsertDup adds v at its sorted position even if equal elements exist.
func (a *Args) InsertDup(v Node) int {
	i, _ := a.lowerBound(v, 0)
	*a = slices.Insert(*a, i, v)
	return i
}

// InsertXor adds v unless an equal element exists, in which case that
// element is removed. This is the GF(2) addition of v into a multiset.
func (a *Args) InsertXor(v Node) {
	i, found := a.lowerBound(v, 0)
	if found {
		*a = slices.Delete(*a, i, i+1)
		return
	}
	*a = slices.Insert(*a, i, v)
}

// Delete removes the element at position i.
func (a *Args) Delete(i int) {
	*a = slices.Delete(*a, i, i+1)
}

// MergePolicy selects what Merge does when an incoming element is equal to an
// existing one.
type MergePolicy int

const (
	// MergeKeepFirst drops the incoming element.
	MergeKeepFirst MergePolicy = iota
	// MergeReplace replaces the existing element with the incoming one.
	MergeReplace
	// MergeCancel drops both elements (XOR semantics).
	MergeCancel
	// MergeKeepBoth keeps both elements.
	MergeKeepBoth
)

// Merge inserts the sorted sequence b into a in O(len(a)+len(b)).
func (a *Args) Merge(b []Node, policy MergePolicy) {
	switch policy {
	case MergeKeepFirst:
		a.MergeFunc(b, func(existing, _ Node) (Node, bool) { return existing, true })
	case MergeReplace:
		a.MergeFunc(b, func(_, incoming Node) (Node, bool) { return incoming, true })
	case MergeCancel:
		a.MergeFunc(b, func(_, _ Node) (Node, bool) { return Node{}, false })
	case MergeKeepBoth:
		a.mergeDup(b)
	default:
		panic("unreachable")
	}
}

// MergeFunc inserts the sorted sequence b into a. When an incoming element is
// equal to an existing one, onExisting returns the element to keep, or false
// to delete the existing element and drop the incoming one.
func (a *Args) MergeFunc(b []Node, onExisting func(existing, incoming Node) (Node, bool)) {
	assert(a.IsSorted() && Args(b).IsSorted(), "MergeFunc: unsorted input")
	if len(b) == 0 {
		return
	}
	src := *a
	out := make(Args, 0, len(src)+len(b))
	i, j := 0, 0
	for i < len(src) && j < len(b) {
		switch cmp := CompareNode(src[i], b[j]); {
		case cmp < 0:
			out = append(out, src[i])
			i++
		case cmp > 0:
			out = append(out, b[j])
			j++
		default:
			if v, ok := onExisting(src[i], b[j]); ok {
				out = append(out, v)
			}
			i++
			j++
		}
	}
	out = append(out, src[i:]...)
	out = append(out, b[j:]...)
	*a = out
}

func (a *Args) mergeDup(b []Node) {
	if len(b) == 0 {
		return
	}
	src := *a
	out := make(Args, 0, len(src)+len(b))
	i, j := 0, 0
	for i < len(src) && j < len(b) {
		if CompareNode(b[j], src[i]) < 0 {
			out = append(out, b[j])
			j++
		} else {
			out = append(out, src[i])
			i++
		}
	}
	out = append(out, src[i:]...)
	out = append(out, b[j:]...)
	*a = out
}

// Unique removes adjacent equal elements and reports whether any was removed.
func (a *Args) Unique() bool {
	n := len(*a)
	*a = slices.CompactFunc(*a, Node.Equal)
	return len(*a) != n
}

// Sort sorts the elements. Large containers are sorted in parallel chunks that
// are merged afterward; the result does not depend on the strategy.
func (a Args) Sort() {
	if len(a) < parallelSortThreshold {
		slices.SortStableFunc(a, CompareNode)
		return
	}
	a.parallelSort()
}

func (a Args) parallelSort() {
	const chunks = 4
	size := (len(a) + chunks - 1) / chunks

	var g errgroup.Group
	parts := make([]Args, 0, chunks)
	for start := 0; start < len(a); start += size {
		part := a[start:min(start+size, len(a))]
		parts = append(parts, part)
		g.Go(func() error {
			slices.SortStableFunc(part, CompareNode)
			return nil
		})
	}
	_ = g.Wait()

	merged := Args(slices.Clone(parts[0]))
	for _, part := range parts[1:] {
		merged.mergeDup(part)
	}
	copy(a, merged)
}
