// Package symbols implements the scope tree used during semantic analysis.
package symbols

// SymbolKind classifies how a name was introduced.
type SymbolKind int

const (
	KindGlobal SymbolKind = iota
	KindLocal
	KindParam
	KindFunction
)

// Symbol is the resolution record for one name in one scope.
type Symbol struct {
	Name string
	Kind SymbolKind
}

// Scope maps names to symbols and links to its parent. The global scope
// has a nil parent; function scopes link directly to the global scope
// (Slate has no closures, so there is never a deeper chain).
type Scope struct {
	parent  *Scope
	symbols map[string]*Symbol
}

// NewScope creates the global scope.
func NewScope() *Scope {
	return &Scope{symbols: make(map[string]*Symbol)}
}

// NewChildScope creates a scope nested in parent.
func NewChildScope(parent *Scope) *Scope {
	return &Scope{parent: parent, symbols: make(map[string]*Symbol)}
}

// IsGlobal reports whether this is the root scope.
func (s *Scope) IsGlobal() bool {
	return s.parent == nil
}

// Define binds name in this scope, replacing any prior binding here.
// A binding in a parent scope is shadowed, not touched.
func (s *Scope) Define(name string, kind SymbolKind) *Symbol {
	sym := &Symbol{Name: name, Kind: kind}
	s.symbols[name] = sym
	return sym
}

// Resolve looks name up in this scope, then walks the parent chain.
func (s *Scope) Resolve(name string) (*Symbol, bool) {
	for scope := s; scope != nil; scope = scope.parent {
		if sym, ok := scope.symbols[name]; ok {
			return sym, true
		}
	}
	return nil, false
}

// ResolveLocal looks name up in this scope only.
func (s *Scope) ResolveLocal(name string) (*Symbol, bool) {
	sym, ok := s.symbols[name]
	return sym, ok
}
