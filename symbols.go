package gf2

import (
	"fmt"
	"sync"
)

// argSymbolFlag marks the symbol indices reserved for positional arguments.
const argSymbolFlag = 0xF0000000

// ArgSymbol returns the symbol standing for the n-th argument of a VectorApp.
func ArgSymbol(n int) Node {
	assert(n >= 0 && n < argSymbolFlag, "invalid argument symbol: %d", n)
	return Sym(uint32(n) | argSymbolFlag)
}

// IsArgSymbol returns true if n is an argument symbol.
func IsArgSymbol(n Node) bool {
	return n.kind == KindSym && n.index&argSymbolFlag == argSymbolFlag
}

// SymbolNamer resolves symbol indices to names.
type SymbolNamer interface {
	Name(index uint32) (string, bool)
}

// Symbols interns symbol names. Indices are assigned in creation order
// starting at zero. The zero value is ready to use and safe for concurrent use.
type Symbols struct {
	mu      sync.RWMutex
	names   []string
	indices map[string]uint32
}

// NewSymbols returns a new symbol table.
func NewSymbols() *Symbols {
	return &Symbols{}
}

// Symbol returns the symbol named name, creating it if needed.
func (s *Symbols) Symbol(name string) Node {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx, ok := s.indices[name]; ok {
		return Sym(idx)
	}
	if s.indices == nil {
		s.indices = make(map[string]uint32)
	}
	idx := uint32(len(s.names))
	assert(idx < argSymbolFlag, "symbol table full")
	s.names = append(s.names, name)
	s.indices[name] = idx
	return Sym(idx)
}

// Lookup returns the symbol named name if it exists.
func (s *Symbols) Lookup(name string) (Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.indices[name]
	if !ok {
		return Node{}, false
	}
	return Sym(idx), true
}

// Name returns the name of the symbol index.
func (s *Symbols) Name(index uint32) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if int64(index) >= int64(len(s.names)) {
		return "", false
	}
	return s.names[index], true
}

// Len returns the number of symbols.
func (s *Symbols) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.names)
}

// Vector returns the symbols named prefix0 to prefix{n-1}.
func (s *Symbols) Vector(prefix string, n int) Vector {
	v := make(Vector, n)
	for i := range v {
		v[i] = s.Symbol(fmt.Sprintf("%s%d", prefix, i))
	}
	return v
}
