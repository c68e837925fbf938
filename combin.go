package gf2

// DrawWithoutReplacement calls fn for every strictly increasing k-tuple of
// indices in [0,n), in lexicographic order. Enumeration stops early when fn
// returns false. The slice passed to fn is reused between calls.
//
// k==0 yields a single empty tuple and k>n yields nothing.
func DrawWithoutReplacement(k, n int, fn func(idx []int) bool) {
	switch {
	case k < 0 || k > n:
		return
	case k == 0:
		fn(nil)
		return
	case k == 1:
		idx := []int{0}
		for i := 0; i < n; i++ {
			idx[0] = i
			if !fn(idx) {
				return
			}
		}
		return
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if !fn(idx) {
			return
		}

		// Advance the rightmost position that still has room, then reset
		// everything to its right to the smallest increasing suffix.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// binomialParity returns C(n, k) mod 2. By Lucas' theorem it is odd iff the
// bits of k are a subset of the bits of n.
func binomialParity(n, k int) bool {
	if k < 0 || k > n {
		return false
	}
	return n&k == k
}
