package semantics_test

import (
	"testing"

	"github.com/go-test/deep"

	"github.com/SpazzPy/AnalizadorSemantico/internals"
	"github.com/SpazzPy/AnalizadorSemantico/semantics"
)

func TestShadowingAcrossScopes(t *testing.T) {
	scopes := semantics.NewScopeStack()
	scopes.Declare("x", semantics.Symbol{Name: "x", Kind: semantics.SymbolVariable, Type: semantics.TypeInt})

	scopes.PushScope()
	scopes.Declare("x", semantics.Symbol{Name: "x", Kind: semantics.SymbolVariable, Type: semantics.TypeStr})

	sym, ok := scopes.Resolve("x")
	if !ok || sym.Type != semantics.TypeStr {
		t.Errorf("expected the inner binding to shadow, got %v (found %v)", sym.Type, ok)
	}

	if diag := scopes.PopScope(); diag != nil {
		t.Fatalf("unexpected diagnostic on pop: %v", diag)
	}

	sym, ok = scopes.Resolve("x")
	if !ok || sym.Type != semantics.TypeInt {
		t.Errorf("expected the outer binding back after pop, got %v (found %v)", sym.Type, ok)
	}
}

func TestResolveWalksOutward(t *testing.T) {
	scopes := semantics.NewScopeStack()
	scopes.Declare("outer", semantics.Symbol{Name: "outer", Kind: semantics.SymbolVariable, Type: semantics.TypeFloat})

	scopes.PushScope()
	scopes.PushScope()

	sym, ok := scopes.Resolve("outer")
	if !ok {
		t.Fatal("expected the module binding to stay reachable from nested scopes")
	}

	output := semantics.Symbol{Name: "outer", Kind: semantics.SymbolVariable, Type: semantics.TypeFloat}
	if diff := deep.Equal(sym, output); diff != nil {
		t.Error(diff)
	}
}

func TestResolveMissing(t *testing.T) {
	scopes := semantics.NewScopeStack()

	if _, ok := scopes.Resolve("ghost"); ok {
		t.Error("expected the lookup to miss")
	}
}

func TestDeclareReplacesInSameScope(t *testing.T) {
	scopes := semantics.NewScopeStack()
	scopes.Declare("x", semantics.Symbol{Name: "x", Kind: semantics.SymbolVariable, Type: semantics.TypeInt})
	scopes.Declare("x", semantics.Symbol{Name: "x", Kind: semantics.SymbolVariable, Type: semantics.TypeFloat})

	sym, _ := scopes.Resolve("x")
	if sym.Type != semantics.TypeFloat {
		t.Errorf("expected the rebinding to win, got %v", sym.Type)
	}
	if scopes.Depth() != 1 {
		t.Errorf("expected a single scope, got %d", scopes.Depth())
	}
}

func TestPopModuleScope(t *testing.T) {
	scopes := semantics.NewScopeStack()

	diag := scopes.PopScope()
	if diag == nil {
		t.Fatal("expected a diagnostic when popping the module scope")
	}
	if diag.Kind != internals.Internal {
		t.Errorf("expected an internal diagnostic, got %v", diag.Kind)
	}
}
