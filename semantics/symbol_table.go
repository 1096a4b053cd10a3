package semantics

import (
	"github.com/SpazzPy/AnalizadorSemantico/internals"
	"github.com/SpazzPy/AnalizadorSemantico/lexer"
)

type SymbolKind = string

const (
	SymbolVariable SymbolKind = "variable"
	SymbolFunction SymbolKind = "function"
	SymbolClass    SymbolKind = "class"
)

type Symbol struct {
	Name string
	Kind SymbolKind
	Type SemanticType
}

// Scope holds the bindings introduced by one construct, innermost wins
type Scope = map[string]Symbol

// ScopeStack implements lexical nesting, the base scope is the module scope
// and stays alive for the whole run
type ScopeStack struct {
	scopes []Scope
}

func NewScopeStack() *ScopeStack {
	return &ScopeStack{
		scopes: []Scope{{}},
	}
}

func (s *ScopeStack) PushScope() {
	s.scopes = append(s.scopes, Scope{})
}

func (s *ScopeStack) PopScope() *internals.Diagnostic {
	if len(s.scopes) == 1 {
		return internals.Errorf(internals.Internal, lexer.Token{}, "the module scope cannot be popped")
	}
	s.scopes = s.scopes[:len(s.scopes)-1]
	return nil
}

// Declare inserts sym in the innermost scope, an existing binding with the
// same name is replaced, not mutated
func (s *ScopeStack) Declare(name string, sym Symbol) {
	s.scopes[len(s.scopes)-1][name] = sym
}

// Resolve walks the scopes innermost to outermost and returns the first match
func (s *ScopeStack) Resolve(name string) (Symbol, bool) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if sym, ok := s.scopes[i][name]; ok {
			return sym, true
		}
	}
	return Symbol{}, false
}

func (s *ScopeStack) Depth() int {
	return len(s.scopes)
}
