package gf2_test

import (
	"slices"
	"testing"

	"github.com/benbjohnson/gf2"
	"github.com/google/go-cmp/cmp"
)

// draw returns every tuple yielded by DrawWithoutReplacement.
func draw(k, n int) [][]int {
	var ret [][]int
	gf2.DrawWithoutReplacement(k, n, func(idx []int) bool {
		ret = append(ret, slices.Clone(idx))
		return true
	})
	return ret
}

func TestDrawWithoutReplacement(t *testing.T) {
	t.Run("TwoOfFour", func(t *testing.T) {
		want := [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
		if diff := cmp.Diff(want, draw(2, 4)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("One", func(t *testing.T) {
		if diff := cmp.Diff([][]int{{0}, {1}, {2}}, draw(1, 3)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("All", func(t *testing.T) {
		if diff := cmp.Diff([][]int{{0, 1, 2}}, draw(3, 3)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("Zero", func(t *testing.T) {
		if got := draw(0, 3); len(got) != 1 || len(got[0]) != 0 {
			t.Fatalf("unexpected tuples: %v", got)
		}
	})

	t.Run("TooMany", func(t *testing.T) {
		if got := draw(4, 3); len(got) != 0 {
			t.Fatalf("unexpected tuples: %v", got)
		}
	})

	t.Run("Count", func(t *testing.T) {
		binomial := func(n, k int) int {
			ret := 1
			for i := 0; i < k; i++ {
				ret = ret * (n - i) / (i + 1)
			}
			return ret
		}
		for n := 0; n <= 8; n++ {
			for k := 0; k <= n; k++ {
				tuples := draw(k, n)
				if len(tuples) != binomial(n, k) {
					t.Fatalf("C(%d,%d): unexpected count: %d", n, k, len(tuples))
				}
				for _, idx := range tuples {
					if !slices.IsSorted(idx) || len(slices.Compact(slices.Clone(idx))) != k {
						t.Fatalf("invalid tuple: %v", idx)
					}
				}
			}
		}
	})

	t.Run("Stop", func(t *testing.T) {
		for _, k := range []int{1, 2} {
			var calls int
			gf2.DrawWithoutReplacement(k, 5, func(idx []int) bool {
				calls++
				return calls < 3
			})
			if calls != 3 {
				t.Fatalf("k=%d: unexpected calls: %d", k, calls)
			}
		}
	})
}
