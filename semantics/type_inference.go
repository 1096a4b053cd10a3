package semantics

import (
	"github.com/SpazzPy/AnalizadorSemantico/ast"
	"github.com/SpazzPy/AnalizadorSemantico/internals"
)

// TypeInference computes the semantic type of an expression node, it reads
// the scope stack but never mutates it
type TypeInference struct {
	scopes *ScopeStack
}

func NewTypeInference(scopes *ScopeStack) *TypeInference {
	return &TypeInference{
		scopes: scopes,
	}
}

// ResolveReference looks an identifier up through the reachable scopes and
// yields the type its binding carries
func (ti *TypeInference) ResolveReference(ident *ast.Identifier) (SemanticType, *internals.Diagnostic) {
	sym, ok := ti.scopes.Resolve(ident.Value)
	if !ok {
		return TypeUnknown, internals.Errorf(internals.UndefinedName, ident.Token,
			"%v is not declared in any reachable scope", ident.Value)
	}
	return sym.Type, nil
}

func (ti *TypeInference) Infer(expr ast.Expression) (SemanticType, *internals.Diagnostic) {
	switch expr := expr.(type) {
	case *ast.Identifier:
		return ti.ResolveReference(expr)
	case *ast.IntegerLiteral:
		return TypeInt, nil
	case *ast.FloatLiteral:
		return TypeFloat, nil
	case *ast.StringLiteral:
		return TypeStr, nil
	case *ast.BinaryExpression:
		left, diag := ti.Infer(expr.Left)
		if diag != nil {
			return TypeUnknown, diag
		}
		right, diag := ti.Infer(expr.Right)
		if diag != nil {
			return TypeUnknown, diag
		}
		return Combine(left, right, expr.Operator, expr.Token)
	default:
		return TypeUnknown, internals.Errorf(internals.UnsupportedExpression, expr.GetToken(),
			"no type can be inferred for %T", expr)
	}
}
