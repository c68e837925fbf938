package gf2

// AffApp represents the affine application X -> M*X + V.
type AffApp struct {
	m *Matrix
	v Vector
}

// NewAffApp returns the affine application of m and v. The number of rows of
// m must be the size of v.
func NewAffApp(m *Matrix, v Vector) (*AffApp, error) {
	if m.NRows() != len(v) {
		return nil, opErrorf(opAffApp, ErrSizeMismatch)
	}
	return &AffApp{m: m, v: v}, nil
}

// Matrix returns the linear part.
func (a *AffApp) Matrix() *Matrix { return a.m }

// Constant returns the constant part.
func (a *AffApp) Constant() Vector { return a.v }

// Apply returns M*x + V.
func (a *AffApp) Apply(x Vector) (Vector, error) {
	mx, err := a.m.MulVector(x)
	if err != nil {
		return nil, err
	}
	return mx.Add(a.v)
}

// VectorApp represents the application defined by a vector of expressions
// over a set of input symbols.
type VectorApp struct {
	v     Vector
	nargs int
}

// NewVectorApp returns the application mapping x to v with every symbol
// symbols[i] replaced by x[i].
func NewVectorApp(symbols, v Vector) *VectorApp {
	keys, values := make([]Node, len(symbols)), make([]Node, len(symbols))
	for i := range symbols {
		keys[i], values[i] = symbols[i], ArgSymbol(i)
	}

	other := v.Clone()
	SubsExprsVector(other, NewExprMap(keys, values))
	return &VectorApp{v: other, nargs: len(symbols)}
}

// Vector returns the expressions over argument symbols.
func (a *VectorApp) Vector() Vector { return a.v }

// NArgs returns the number of arguments.
func (a *VectorApp) NArgs() int { return a.nargs }

// Apply returns the vector with every argument symbol i replaced by x[i].
func (a *VectorApp) Apply(x Vector) (Vector, error) {
	if len(x) != a.nargs {
		return nil, opErrorf(opVectorApp, ErrSizeMismatch)
	}

	keys, values := make([]Node, len(x)), make([]Node, len(x))
	for i := range x {
		keys[i], values[i] = ArgSymbol(i), x[i]
	}

	ret := a.v.Clone()
	SubsExprsVector(ret, NewExprMap(keys, values))
	return ret, nil
}

// App represents the application X -> NL(X) + M*X + V.
type App struct {
	NL  *VectorApp
	Aff *AffApp
}

// Apply returns NL(x) + M*x + V.
func (a *App) Apply(x Vector) (Vector, error) {
	nl, err := a.NL.Apply(x)
	if err != nil {
		return nil, err
	}
	aff, err := a.Aff.Apply(x)
	if err != nil {
		return nil, err
	}
	return nl.Add(aff)
}
