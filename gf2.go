// Package gf2 implements a canonical-form symbolic algebra over GF(2).
//
// Boolean formulas are trees of immediates, symbols, XOR additions, AND
// multiplications, ORs and elementary symmetric functions (ESF). Operators keep
// every tree sorted and collapsed, and Simplify rewrites a tree to a fixed
// point. Vectors and matrices of nodes support GF(2) linear algebra and the
// decomposition of boolean vector functions into affine and nonlinear parts.
package gf2

import (
	"errors"
	"fmt"
)

var (
	// ErrSizeMismatch is returned when vector or matrix operands have
	// incompatible shapes.
	ErrSizeMismatch = errors.New("gf2: size mismatch")

	// ErrNotApplicable is returned when substitution inputs cannot be paired.
	ErrNotApplicable = errors.New("gf2: substitution not applicable")

	// ErrNotOperator is returned when the arguments of a leaf node are
	// requested.
	ErrNotOperator = errors.New("gf2: not an operator")
)

// Operation tags used to wrap errors.
const (
	opAdd       = "Add"
	opMul       = "Mul"
	opOr        = "Or"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opAffApp    = "AffApp"
	opVectorApp = "VectorApp"
	opDecomp    = "VectorialDecomp"
	opSubsVecs  = "SubsVectors"
	opSubsSyms  = "SubsSymbols"
	opNewMatrix = "NewMatrix"
)

// opErrorf wraps err with an operation tag. errors.Is still matches err.
func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// WrongKindError is returned when a node accessor is used on the wrong variant.
type WrongKindError struct {
	Want Kind
	Got  Kind
}

func (e *WrongKindError) Error() string {
	return fmt.Sprintf("gf2: wrong node kind: expected %s, got %s", e.Want, e.Got)
}

// BadConstructionError is returned when a generic constructor is asked for a
// kind that needs a dedicated constructor.
type BadConstructionError struct {
	Kind Kind
}

func (e *BadConstructionError) Error() string {
	return fmt.Sprintf("gf2: cannot construct %s node from an argument list", e.Kind)
}

// UnknownSymbolError is returned by VectorialDecomp when a linear term
// references a symbol missing from the input symbol vector.
type UnknownSymbolError struct {
	Symbol Node
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("gf2: unknown symbol %s", e.Symbol)
}

// assert panics if condition is false.
func assert(condition bool, format string, args ...interface{}) {
	if !condition {
		panic(fmt.Sprintf("assert: "+format, args...))
	}
}
