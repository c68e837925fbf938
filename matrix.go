package gf2

// Matrix is a row-major matrix of nodes.
type Matrix struct {
	elts  Vector
	nrows int
	ncols int
}

// NewMatrix returns a rows x cols matrix with every entry set to fill.
func NewMatrix(rows, cols int, fill Node) *Matrix {
	assert(rows >= 0 && cols >= 0, "invalid matrix shape: %dx%d", rows, cols)
	m := &Matrix{elts: make(Vector, rows*cols), nrows: rows, ncols: cols}
	for i := range m.elts {
		m.elts[i] = fill.Clone()
	}
	return m
}

// NewMatrixFrom returns a matrix with cols columns from row-major entries.
func NewMatrixFrom(cols int, elts ...Node) (*Matrix, error) {
	if cols <= 0 || len(elts) == 0 || len(elts)%cols != 0 {
		return nil, opErrorf(opNewMatrix, ErrSizeMismatch)
	}
	return &Matrix{elts: Vector(elts).Clone(), nrows: len(elts) / cols, ncols: cols}, nil
}

// Identity returns the n x n identity matrix.
func Identity(n int) *Matrix {
	m := NewMatrix(n, n, Imm(false))
	for i := 0; i < n; i++ {
		m.Set(i, i, Imm(true))
	}
	return m
}

// NRows returns the number of rows.
func (m *Matrix) NRows() int { return m.nrows }

// NCols returns the number of columns.
func (m *Matrix) NCols() int { return m.ncols }

// IsEmpty returns true if the matrix has no entries.
func (m *Matrix) IsEmpty() bool { return len(m.elts) == 0 }

// At returns the entry at row i and column j.
func (m *Matrix) At(i, j int) Node { return m.elts[i*m.ncols+j] }

// Set sets the entry at row i and column j.
func (m *Matrix) Set(i, j int, e Node) { m.elts[i*m.ncols+j] = e }

// Elements returns the entries in row-major order. The vector is owned by m.
func (m *Matrix) Elements() Vector { return m.elts }

// Row returns a copy of row i.
func (m *Matrix) Row(i int) Vector {
	return m.elts[i*m.ncols : (i+1)*m.ncols].Clone()
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{elts: m.elts.Clone(), nrows: m.nrows, ncols: m.ncols}
}

// Equal returns true if m and o have the same shape and entries.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	return m.nrows == o.nrows && m.ncols == o.ncols && m.elts.Equal(o.elts)
}

func (m *Matrix) sameShape(o *Matrix) bool {
	return m.nrows == o.nrows && m.ncols == o.ncols
}

// Add returns the entrywise XOR of m and o.
func (m *Matrix) Add(o *Matrix) (*Matrix, error) {
	if !m.sameShape(o) {
		return nil, opErrorf(opAdd, ErrSizeMismatch)
	}
	elts, err := m.elts.Add(o.elts)
	if err != nil {
		return nil, err
	}
	return &Matrix{elts: elts, nrows: m.nrows, ncols: m.ncols}, nil
}

// Mul returns the matrix product m * o.
func (m *Matrix) Mul(o *Matrix) (*Matrix, error) {
	if m.ncols != o.NRows() {
		return nil, opErrorf(opMul, ErrSizeMismatch)
	}

	nrows, ncols := m.NRows(), o.ncols
	ret := NewMatrix(nrows, ncols, Imm(false))
	for i := 0; i < nrows; i++ {
		for j := 0; j < ncols; j++ {
			sum := Imm(false)
			for k := 0; k < m.ncols; k++ {
				sum.addAssign(Mul(m.At(i, k), o.At(k, j)))
			}
			ret.Set(i, j, sum)
		}
	}
	return ret, nil
}

// MulVector returns the product of m with the column vector v.
func (m *Matrix) MulVector(v Vector) (Vector, error) {
	if len(v) != m.ncols {
		return nil, opErrorf(opMatVec, ErrSizeMismatch)
	}

	nrows := m.NRows()
	ret := make(Vector, nrows)
	for i := 0; i < nrows; i++ {
		sum := Imm(false)
		for j := 0; j < m.ncols; j++ {
			sum.addAssign(Mul(m.At(i, j), v[j]))
		}
		ret[i] = sum
	}
	return ret, nil
}

// AddLines adds row b to row a.
func (m *Matrix) AddLines(a, b int) {
	for j := 0; j < m.ncols; j++ {
		e := m.At(a, j)
		e.AddAssign(m.At(b, j))
		m.Set(a, j, e)
	}
}

// SwapLines swaps rows a and b.
func (m *Matrix) SwapLines(a, b int) {
	for j := 0; j < m.ncols; j++ {
		ia, ib := a*m.ncols+j, b*m.ncols+j
		m.elts[ia], m.elts[ib] = m.elts[ib], m.elts[ia]
	}
}

// SwapCols swaps columns a and b.
func (m *Matrix) SwapCols(a, b int) {
	for i, n := 0, m.NRows(); i < n; i++ {
		ia, ib := i*m.ncols+a, i*m.ncols+b
		m.elts[ia], m.elts[ib] = m.elts[ib], m.elts[ia]
	}
}

// PermuteRows moves row i to row perm[i].
func (m *Matrix) PermuteRows(perm []int) {
	tmp := m.Clone()
	for i, n := 0, m.NRows(); i < n; i++ {
		for j := 0; j < m.ncols; j++ {
			m.Set(perm[i], j, tmp.At(i, j))
		}
	}
}

// TFactorize runs a Gaussian elimination over GF(2). It returns the record t
// of the row operations, the row reduced matrix u, the column permutation
// applied to u and the rank of m. Pivots are true immediates, so entries
// should be simplified to immediates first.
func (m *Matrix) TFactorize() (t, u *Matrix, perm []int, rank int) {
	nrows, ncols := m.NRows(), m.ncols
	t, u = Identity(nrows), m.Clone()
	perm = make([]int, ncols)
	for i := range perm {
		perm[i] = i
	}

	for j := 0; j < nrows; j++ {
		i1, j1, ok := u.findPivot(j)
		if !ok {
			return t, u, perm, j
		}

		u.SwapLines(i1, j)
		t.SwapLines(i1, j)
		u.SwapCols(j1, j)
		perm[j], perm[j1] = perm[j1], perm[j]

		for i := j + 1; i < nrows; i++ {
			if u.At(i, j).IsTrue() {
				u.AddLines(i, j)
				t.AddLines(i, j)
			}
		}
	}
	return t, u, perm, nrows
}

// findPivot returns the first true entry at or below row j and at or right
// of column j.
func (m *Matrix) findPivot(j int) (int, int, bool) {
	for i := j; i < m.NRows(); i++ {
		for k := j; k < m.ncols; k++ {
			if m.At(i, k).IsTrue() {
				return i, k, true
			}
		}
	}
	return 0, 0, false
}

// Inverse returns the inverse of m. Returns an empty matrix if m is not square
// or not invertible.
func (m *Matrix) Inverse() *Matrix {
	n := m.ncols
	if m.nrows != n || n == 0 {
		return &Matrix{}
	}

	t, u, perm, rank := m.TFactorize()
	if rank != n {
		return &Matrix{}
	}

	// Clear the entries above the diagonal.
	for i := n - 2; i >= 0; i-- {
		for j := n - 1; j > i; j-- {
			if u.At(i, j).IsTrue() {
				u.AddLines(i, j)
				t.AddLines(i, j)
			}
		}
	}
	t.PermuteRows(perm)
	return t
}

// SimplifyMatrix simplifies every entry of m in place.
func SimplifyMatrix(m *Matrix, opts ...Option) {
	SimplifyVector(m.elts, opts...)
}
