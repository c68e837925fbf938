package gf2_test

import (
	"math/rand"
	"testing"

	"github.com/benbjohnson/gf2"
	"github.com/google/go-cmp/cmp"
)

func TestAdd(t *testing.T) {
	for _, tt := range []struct {
		name string
		x, y gf2.Node
		want gf2.Node
	}{
		{"Same", a, a, gf2.Imm(false)},
		{"False", a, gf2.Imm(false), a},
		{"True", a, gf2.Imm(true), MustNode(t, gf2.KindAdd, a, gf2.Imm(true))},
		{"Imm", gf2.Imm(true), gf2.Imm(true), gf2.Imm(false)},
		{"Symbols", b, a, MustNode(t, gf2.KindAdd, a, b)},
		{"Cancel", gf2.Add(a, b), gf2.Add(b, c), MustNode(t, gf2.KindAdd, a, c)},
		{"CancelAll", gf2.Add(a, b), gf2.Add(b, a), gf2.Imm(false)},
		{"Extend", a, gf2.Add(b, c), MustNode(t, gf2.KindAdd, a, b, c)},
		{"ExtendCancel", gf2.Add(a, b), a, b},
		{"Mixed", c, gf2.Mul(a, b), MustNode(t, gf2.KindAdd, gf2.Mul(a, b), c)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, gf2.Add(tt.x, tt.y)); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestMul(t *testing.T) {
	for _, tt := range []struct {
		name string
		x, y gf2.Node
		want gf2.Node
	}{
		{"Same", a, a, a},
		{"False", a, gf2.Imm(false), gf2.Imm(false)},
		{"True", a, gf2.Imm(true), a},
		{"Symbols", b, a, MustNode(t, gf2.KindMul, a, b)},
		{"Merge", gf2.Mul(a, b), gf2.Mul(b, c), MustNode(t, gf2.KindMul, a, b, c)},
		{"ExtendLeft", gf2.Mul(a, b), c, MustNode(t, gf2.KindMul, a, b, c)},
		{"ExtendRight", c, gf2.Mul(a, b), MustNode(t, gf2.KindMul, a, b, c)},
		{"ExtendDup", gf2.Mul(a, b), a, MustNode(t, gf2.KindMul, a, b)},
		{"Add", a, gf2.Add(b, c), MustNode(t, gf2.KindMul, gf2.Add(b, c), a)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, gf2.Mul(tt.x, tt.y)); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestOr(t *testing.T) {
	for _, tt := range []struct {
		name string
		x, y gf2.Node
		want gf2.Node
	}{
		{"Same", a, a, a},
		{"False", a, gf2.Imm(false), a},
		{"True", a, gf2.Imm(true), gf2.Imm(true)},
		{"Symbols", b, a, MustNode(t, gf2.KindOr, a, b)},
		{"Merge", gf2.Or(a, b), gf2.Or(b, c), MustNode(t, gf2.KindOr, a, b, c)},
		{"Extend", c, gf2.Or(a, b), MustNode(t, gf2.KindOr, a, b, c)},
		{"Mul", gf2.Mul(a, b), c, MustNode(t, gf2.KindOr, gf2.Mul(a, b), c)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, gf2.Or(tt.x, tt.y)); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestNot(t *testing.T) {
	if diff := cmp.Diff(a, gf2.Not(gf2.Not(a))); diff != "" {
		t.Fatal(diff)
	} else if diff := cmp.Diff(gf2.Imm(false), gf2.Not(gf2.Imm(true))); diff != "" {
		t.Fatal(diff)
	}
}

func TestFolds(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		if diff := cmp.Diff(gf2.Imm(false), gf2.Sum()); diff != "" {
			t.Fatal(diff)
		} else if diff := cmp.Diff(gf2.Imm(true), gf2.Product()); diff != "" {
			t.Fatal(diff)
		} else if diff := cmp.Diff(gf2.Imm(false), gf2.Any()); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("Sum", func(t *testing.T) {
		if diff := cmp.Diff(MustNode(t, gf2.KindAdd, a, c), gf2.Sum(c, b, a, b)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("Product", func(t *testing.T) {
		if diff := cmp.Diff(MustNode(t, gf2.KindMul, a, b, c), gf2.Product(c, b, a, b)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("Any", func(t *testing.T) {
		if diff := cmp.Diff(MustNode(t, gf2.KindOr, a, b, c), gf2.Any(c, b, a, b)); diff != "" {
			t.Fatal(diff)
		}
	})
}

func TestOperators_DoNotMutate(t *testing.T) {
	x, y := gf2.Add(a, b), gf2.Add(b, c)
	_ = gf2.Add(x, y)
	_ = gf2.Mul(gf2.Mul(a, b), gf2.Mul(c, d))
	if diff := cmp.Diff(MustNode(t, gf2.KindAdd, a, b), x); diff != "" {
		t.Fatal(diff)
	} else if diff := cmp.Diff(MustNode(t, gf2.KindAdd, b, c), y); diff != "" {
		t.Fatal(diff)
	}
}

// Copies of a node share its argument list until one of them is modified.
func TestOperators_AssignToCopy(t *testing.T) {
	for _, tt := range []struct {
		name string
		x    gf2.Node
		fn   func(n *gf2.Node)
		want gf2.Node
	}{
		{"AddInsert", gf2.Sum(b, c, d), func(n *gf2.Node) { n.AddAssign(a) }, MustNode(t, gf2.KindAdd, a, b, c, d)},
		{"AddCancel", gf2.Sum(b, c, d), func(n *gf2.Node) { n.AddAssign(b) }, MustNode(t, gf2.KindAdd, c, d)},
		{"AddTrue", gf2.Sum(b, c, d), func(n *gf2.Node) { n.AddAssign(gf2.Imm(true)) }, MustNode(t, gf2.KindAdd, b, c, d, gf2.Imm(true))},
		{"Mul", gf2.Product(b, c, d), func(n *gf2.Node) { n.MulAssign(a) }, MustNode(t, gf2.KindMul, a, b, c, d)},
		{"Or", gf2.Any(b, c, d), func(n *gf2.Node) { n.OrAssign(a) }, MustNode(t, gf2.KindOr, a, b, c, d)},
		{"Simplify", MustNode(t, gf2.KindAdd, b, b, c), gf2.Simplify, c},
		{"RemoveDeadOps", MustNode(t, gf2.KindAdd, b, b, c, d), func(n *gf2.Node) { gf2.RemoveDeadOps(n) }, MustNode(t, gf2.KindAdd, c, d)},
		{"Subs", gf2.Sum(b, c, d), func(n *gf2.Node) { gf2.SubsExprs(n, gf2.NewExprMap(gf2.Vector{c}, gf2.Vector{a})) }, MustNode(t, gf2.KindAdd, a, b, d)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			orig := tt.x.Clone()
			y := tt.x
			tt.fn(&y)
			if diff := cmp.Diff(tt.want, y); diff != "" {
				t.Fatal(diff)
			} else if diff := cmp.Diff(orig, tt.x); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestOperators_Properties(t *testing.T) {
	rnd := rand.New(rand.NewSource(0))
	syms := gf2.Vector{a, b, c, d}

	ops := []struct {
		name   string
		kind   gf2.Kind
		op     func(x, y gf2.Node) gf2.Node
		assign func(x *gf2.Node, y gf2.Node)
		eval   func(x, y bool) bool
	}{
		{"Add", gf2.KindAdd, gf2.Add, (*gf2.Node).AddAssign, func(x, y bool) bool { return x != y }},
		{"Mul", gf2.KindMul, gf2.Mul, (*gf2.Node).MulAssign, func(x, y bool) bool { return x && y }},
		{"Or", gf2.KindOr, gf2.Or, (*gf2.Node).OrAssign, func(x, y bool) bool { return x || y }},
	}

	for i := 0; i < 300; i++ {
		x, y := RandomNode(rnd, 3), RandomNode(rnd, 3)
		gf2.Simplify(&x)
		gf2.Simplify(&y)

		for _, op := range ops {
			xy, yx := op.op(x, y), op.op(y, x)
			if diff := cmp.Diff(xy, yx); diff != "" {
				t.Fatalf("%s(%s, %s) is not commutative: %s", op.name, x, y, diff)
			}

			z := x.Clone()
			op.assign(&z, y)
			if diff := cmp.Diff(xy, z); diff != "" {
				t.Fatalf("%s(%s, %s) differs from its assign form: %s", op.name, x, y, diff)
			}

			lhs, rhs := gf2.SimplifyCopy(xy), MustNode(t, op.kind, y, x)
			gf2.Simplify(&rhs)
			if diff := cmp.Diff(lhs, rhs); diff != "" {
				t.Fatalf("%s(%s, %s) simplifies differently: %s", op.name, x, y, diff)
			}

			for v := uint64(0); v < 16; v++ {
				ev := gf2.NewNodeEvaluatorFromVector(syms, v)
				xv, _ := ev.Evaluate(x)
				yv, _ := ev.Evaluate(y)
				if got, err := ev.Evaluate(xy); err != nil {
					t.Fatal(err)
				} else if got != op.eval(xv, yv) {
					t.Fatalf("%s(%s, %s) at %#x: unexpected value %v", op.name, x, y, v, got)
				}
			}
		}
	}
}

// RandomNode returns a random unsimplified tree over the symbols a to d.
func RandomNode(rnd *rand.Rand, depth int) gf2.Node {
	if depth == 0 || rnd.Float64() < 0.25 {
		if rnd.Float64() < 0.15 {
			return gf2.Imm(rnd.Intn(2) == 1)
		}
		return gf2.Sym(uint32(rnd.Intn(4)))
	}

	args := make([]gf2.Node, 2+rnd.Intn(2))
	for i := range args {
		args[i] = RandomNode(rnd, depth-1)
	}

	var n gf2.Node
	switch rnd.Intn(5) {
	case 0:
		n, _ = gf2.NewNode(gf2.KindAdd, args...)
	case 1:
		n, _ = gf2.NewNode(gf2.KindMul, args...)
	case 2:
		n, _ = gf2.NewNode(gf2.KindOr, args...)
	case 3:
		n = gf2.ESF(uint8(1+rnd.Intn(len(args))), args...)
	default:
		n, _ = gf2.NewNode(gf2.KindAdd, args[0], gf2.Imm(true))
	}
	return n
}
