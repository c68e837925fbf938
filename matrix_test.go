package gf2_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/benbjohnson/gf2"
	"github.com/google/go-cmp/cmp"
)

// MustBitMatrix returns a matrix of immediates from rows of bits.
func MustBitMatrix(tb testing.TB, rows ...[]int) *gf2.Matrix {
	tb.Helper()
	var elts []gf2.Node
	for _, row := range rows {
		for _, x := range row {
			elts = append(elts, gf2.Imm(x != 0))
		}
	}
	m, err := gf2.NewMatrixFrom(len(rows[0]), elts...)
	if err != nil {
		tb.Fatal(err)
	}
	return m
}

func TestMatrix_Inverse(t *testing.T) {
	m := MustBitMatrix(t,
		[]int{1, 0, 1, 0},
		[]int{1, 1, 0, 0},
		[]int{0, 0, 0, 1},
		[]int{1, 1, 1, 1},
	)

	inv := m.Inverse()
	want := MustBitMatrix(t,
		[]int{1, 1, 1, 1},
		[]int{1, 0, 1, 1},
		[]int{0, 1, 1, 1},
		[]int{0, 0, 1, 0},
	)
	if diff := cmp.Diff(want, inv); diff != "" {
		t.Fatal(diff)
	}

	p, err := inv.Mul(m)
	if err != nil {
		t.Fatal(err)
	}
	gf2.SimplifyMatrix(p)
	if diff := cmp.Diff(gf2.Identity(4), p); diff != "" {
		t.Fatal(diff)
	}

	t.Run("Singular", func(t *testing.T) {
		m := MustBitMatrix(t, []int{1, 1}, []int{1, 1})
		if inv := m.Inverse(); !inv.IsEmpty() {
			t.Fatalf("unexpected inverse:\n%s", gf2.FormatMatrix(inv, nil))
		}
	})

	t.Run("NotSquare", func(t *testing.T) {
		m := MustBitMatrix(t, []int{1, 0, 0}, []int{0, 1, 0})
		if inv := m.Inverse(); !inv.IsEmpty() {
			t.Fatalf("unexpected inverse:\n%s", gf2.FormatMatrix(inv, nil))
		}
	})

	t.Run("Identity", func(t *testing.T) {
		if diff := cmp.Diff(gf2.Identity(3), gf2.Identity(3).Inverse()); diff != "" {
			t.Fatal(diff)
		}
	})
}

func TestMatrix_Inverse_Random(t *testing.T) {
	rnd := rand.New(rand.NewSource(0))
	var n int
	for i := 0; i < 500; i++ {
		size := 1 + rnd.Intn(6)
		m := gf2.NewMatrix(size, size, gf2.Imm(false))
		for j := 0; j < size; j++ {
			for k := 0; k < size; k++ {
				m.Set(j, k, gf2.Imm(rnd.Intn(2) == 1))
			}
		}

		inv := m.Inverse()
		if inv.IsEmpty() {
			if _, _, _, rank := m.TFactorize(); rank == size {
				t.Fatalf("full rank matrix not inverted:\n%s", gf2.FormatMatrix(m, nil))
			}
			continue
		}
		n++

		for _, pair := range [][2]*gf2.Matrix{{inv, m}, {m, inv}} {
			p, err := pair[0].Mul(pair[1])
			if err != nil {
				t.Fatal(err)
			} else if !p.Equal(gf2.Identity(size)) {
				t.Fatalf("not an inverse:\n%s\n%s", gf2.FormatMatrix(m, nil), gf2.FormatMatrix(inv, nil))
			}
		}
	}
	if n == 0 {
		t.Fatal("no invertible matrix generated")
	}
}

func TestMatrix_TFactorize(t *testing.T) {
	m := MustBitMatrix(t,
		[]int{1, 1, 0},
		[]int{0, 1, 1},
		[]int{1, 0, 1},
	)
	tm, u, perm, rank := m.TFactorize()
	if rank != 2 {
		t.Fatalf("rank=%d", rank)
	} else if len(perm) != 3 {
		t.Fatalf("perm=%v", perm)
	}

	// The recorded row operations reproduce u up to the column permutation.
	p, err := tm.Mul(m)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if diff := cmp.Diff(u.At(i, j), p.At(i, perm[j])); diff != "" {
				t.Fatalf("entry (%d, %d): %s", i, j, diff)
			}
		}
	}

	// m is left untouched.
	if diff := cmp.Diff(MustBitMatrix(t, []int{1, 1, 0}, []int{0, 1, 1}, []int{1, 0, 1}), m); diff != "" {
		t.Fatal(diff)
	}
}

func TestMatrix_Mul(t *testing.T) {
	x := MustBitMatrix(t, []int{1, 0, 1}, []int{0, 1, 1})
	y := MustBitMatrix(t, []int{1}, []int{1}, []int{1})

	p, err := x.Mul(y)
	if err != nil {
		t.Fatal(err)
	} else if p.NRows() != 2 || p.NCols() != 1 {
		t.Fatalf("shape=%dx%d", p.NRows(), p.NCols())
	} else if diff := cmp.Diff(MustBitMatrix(t, []int{0}, []int{0}), p); diff != "" {
		t.Fatal(diff)
	}

	if _, err := x.Mul(x); !errors.Is(err, gf2.ErrSizeMismatch) {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Vector", func(t *testing.T) {
		v, err := x.MulVector(gf2.Vector{a, b, c})
		if err != nil {
			t.Fatal(err)
		} else if diff := cmp.Diff(gf2.Vector{gf2.Add(a, c), gf2.Add(b, c)}, v); diff != "" {
			t.Fatal(diff)
		}

		if _, err := x.MulVector(gf2.Vector{a}); !errors.Is(err, gf2.ErrSizeMismatch) {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestMatrix_Add(t *testing.T) {
	x := MustBitMatrix(t, []int{1, 0}, []int{1, 1})
	sum, err := x.Add(gf2.Identity(2))
	if err != nil {
		t.Fatal(err)
	} else if diff := cmp.Diff(MustBitMatrix(t, []int{0, 0}, []int{1, 0}), sum); diff != "" {
		t.Fatal(diff)
	}

	if _, err := x.Add(gf2.Identity(3)); !errors.Is(err, gf2.ErrSizeMismatch) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMatrix_Lines(t *testing.T) {
	m := MustBitMatrix(t, []int{1, 0, 0}, []int{0, 1, 1})

	for _, step := range []struct {
		name string
		fn   func()
		want *gf2.Matrix
	}{
		{"AddLines", func() { m.AddLines(0, 1) }, MustBitMatrix(t, []int{1, 1, 1}, []int{0, 1, 1})},
		{"SwapLines", func() { m.SwapLines(0, 1) }, MustBitMatrix(t, []int{0, 1, 1}, []int{1, 1, 1})},
		{"SwapCols", func() { m.SwapCols(0, 2) }, MustBitMatrix(t, []int{1, 1, 0}, []int{1, 1, 1})},
		{"PermuteRows", func() { m.PermuteRows([]int{1, 0}) }, MustBitMatrix(t, []int{1, 1, 1}, []int{1, 1, 0})},
	} {
		step.fn()
		if diff := cmp.Diff(step.want, m); diff != "" {
			t.Fatalf("%s: %s", step.name, diff)
		}
	}

	if diff := cmp.Diff(gf2.Vector{gf2.Imm(true), gf2.Imm(true), gf2.Imm(false)}, m.Row(1)); diff != "" {
		t.Fatal(diff)
	}

	// Entries sharing argument lists are updated independently.
	t.Run("Symbolic", func(t *testing.T) {
		x := gf2.Add(a, b)
		m := gf2.NewMatrix(2, 1, x)
		m.Set(1, 0, x)
		m.AddLines(0, 1)
		if diff := cmp.Diff(gf2.Imm(false), m.At(0, 0)); diff != "" {
			t.Fatal(diff)
		} else if diff := cmp.Diff(gf2.Add(a, b), m.At(1, 0)); diff != "" {
			t.Fatal(diff)
		}
	})
}

func TestNewMatrixFrom(t *testing.T) {
	m, err := gf2.NewMatrixFrom(2, a, b, c, d)
	if err != nil {
		t.Fatal(err)
	} else if m.NRows() != 2 {
		t.Fatalf("NRows=%d", m.NRows())
	} else if diff := cmp.Diff(c, m.At(1, 0)); diff != "" {
		t.Fatal(diff)
	}

	for _, elts := range [][]gf2.Node{{a}, {a, b, c}, nil} {
		cols := 2
		if len(elts) == 1 {
			cols = 0
		}
		if _, err := gf2.NewMatrixFrom(cols, elts...); !errors.Is(err, gf2.ErrSizeMismatch) {
			t.Fatalf("unexpected error for %d entries: %v", len(elts), err)
		}
	}
}

func TestSimplifyMatrix(t *testing.T) {
	m := gf2.NewMatrix(2, 2, gf2.Add(a, gf2.Add(a, b)))
	m.Set(0, 1, gf2.Mul(a, gf2.Not(a)))
	gf2.SimplifyMatrix(m, gf2.WithWorkers(2))

	want, err := gf2.NewMatrixFrom(2, b, gf2.Imm(false), b, b)
	if err != nil {
		t.Fatal(err)
	} else if diff := cmp.Diff(want, m); diff != "" {
		t.Fatal(diff)
	}
}
