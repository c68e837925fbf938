// Package parse reads boolean formulas written with the expr-lang syntax.
//
// Identifiers are symbols and 0, 1, true and false are immediates. XOR is
// written + or ^, AND is written *, && or and, OR is written || or or, and
// NOT is written ! or not. esf(k, a, b, ...) is the elementary symmetric
// function of degree k. Note that ^ binds tighter than *.
package parse

import (
	"fmt"

	"github.com/benbjohnson/gf2"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
)

// Error is returned for input that is not a boolean formula.
type Error struct {
	Src string
	Msg string
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %q: %s: %s", e.Src, e.Msg, e.Err)
	}
	return fmt.Sprintf("parse %q: %s", e.Src, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Parse parses src into a node. Symbols are interned in syms.
func Parse(src string, syms *gf2.Symbols) (gf2.Node, error) {
	tree, err := parser.Parse(src)
	if err != nil {
		return gf2.Node{}, &Error{Src: src, Msg: "syntax error", Err: err}
	}

	p := &nodeParser{src: src, syms: syms}
	return p.node(tree.Node)
}

// ParseVector parses every source into a vector.
func ParseVector(srcs []string, syms *gf2.Symbols) (gf2.Vector, error) {
	v := make(gf2.Vector, len(srcs))
	for i, src := range srcs {
		n, err := Parse(src, syms)
		if err != nil {
			return nil, err
		}
		v[i] = n
	}
	return v, nil
}

type nodeParser struct {
	src  string
	syms *gf2.Symbols
}

func (p *nodeParser) errorf(format string, args ...interface{}) error {
	return &Error{Src: p.src, Msg: fmt.Sprintf(format, args...)}
}

func (p *nodeParser) node(n ast.Node) (gf2.Node, error) {
	switch n := n.(type) {
	case *ast.IdentifierNode:
		return p.syms.Symbol(n.Value), nil
	case *ast.BoolNode:
		return gf2.Imm(n.Value), nil
	case *ast.IntegerNode:
		if n.Value != 0 && n.Value != 1 {
			return gf2.Node{}, p.errorf("invalid immediate: %d", n.Value)
		}
		return gf2.Imm(n.Value == 1), nil
	case *ast.UnaryNode:
		return p.unary(n)
	case *ast.BinaryNode:
		return p.binary(n)
	case *ast.CallNode:
		return p.call(n)
	default:
		return gf2.Node{}, p.errorf("unsupported expression: %T", n)
	}
}

func (p *nodeParser) unary(n *ast.UnaryNode) (gf2.Node, error) {
	x, err := p.node(n.Node)
	if err != nil {
		return gf2.Node{}, err
	}
	switch n.Operator {
	case "!", "not":
		return gf2.Not(x), nil
	default:
		return gf2.Node{}, p.errorf("unsupported operator: %s", n.Operator)
	}
}

func (p *nodeParser) binary(n *ast.BinaryNode) (gf2.Node, error) {
	var op func(a, b gf2.Node) gf2.Node
	switch n.Operator {
	case "+", "^":
		op = gf2.Add
	case "*", "&&", "and":
		op = gf2.Mul
	case "||", "or":
		op = gf2.Or
	default:
		return gf2.Node{}, p.errorf("unsupported operator: %s", n.Operator)
	}

	lhs, err := p.node(n.Left)
	if err != nil {
		return gf2.Node{}, err
	}
	rhs, err := p.node(n.Right)
	if err != nil {
		return gf2.Node{}, err
	}
	return op(lhs, rhs), nil
}

func (p *nodeParser) call(n *ast.CallNode) (gf2.Node, error) {
	callee, ok := n.Callee.(*ast.IdentifierNode)
	if !ok || callee.Value != "esf" {
		return gf2.Node{}, p.errorf("unsupported function call")
	}
	if len(n.Arguments) < 2 {
		return gf2.Node{}, p.errorf("esf: expected a degree and at least one argument")
	}

	degree, ok := n.Arguments[0].(*ast.IntegerNode)
	if !ok || degree.Value < 0 || degree.Value > 255 {
		return gf2.Node{}, p.errorf("esf: invalid degree")
	}

	args := make([]gf2.Node, 0, len(n.Arguments)-1)
	for _, a := range n.Arguments[1:] {
		x, err := p.node(a)
		if err != nil {
			return gf2.Node{}, err
		}
		args = append(args, x)
	}
	return gf2.ESF(uint8(degree.Value), args...), nil
}
