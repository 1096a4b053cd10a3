package semantics

import (
	"github.com/SpazzPy/AnalizadorSemantico/ast"
	"github.com/SpazzPy/AnalizadorSemantico/internals"
)

// Analyzer drives one depth-first pass over the program, every rule check is
// delegated to the scope stack and the type inference
type Analyzer struct {
	scopes    *ScopeStack
	inference *TypeInference
}

func NewAnalyzer() *Analyzer {
	scopes := NewScopeStack()
	for _, name := range builtInFunctions {
		scopes.Declare(name, Symbol{Name: name, Kind: SymbolFunction, Type: TypeFunction})
	}

	return &Analyzer{
		scopes:    scopes,
		inference: NewTypeInference(scopes),
	}
}

// Analyze checks one program and reports the first violated rule, a nil
// return means the program passed
func Analyze(program *ast.Program) error {
	a := NewAnalyzer()
	for _, stmt := range program.Statements {
		if diag := a.walkStatement(stmt); diag != nil {
			return diag
		}
	}
	return nil
}

func (a *Analyzer) walkStatement(node ast.Statement) *internals.Diagnostic {
	switch node := node.(type) {
	case *ast.FunctionDeclaration:
		return a.walkFunctionDeclaration(node)
	case *ast.ClassDeclaration:
		return a.walkClassDeclaration(node)
	case *ast.AssignStatement:
		return a.walkAssignStatement(node)
	case *ast.ExpressionStatement:
		return a.walkExpression(node.Expression)
	default:
		return internals.Errorf(internals.UnsupportedNode, node.GetToken(),
			"%T is not analyzable", node)
	}
}

func (a *Analyzer) walkFunctionDeclaration(node *ast.FunctionDeclaration) *internals.Diagnostic {
	a.scopes.Declare(node.Name.Value, Symbol{
		Name: node.Name.Value,
		Kind: SymbolFunction,
		Type: TypeFunction,
	})

	// params and body live in their own scope, nothing leaks out of it
	return a.inScope(func() *internals.Diagnostic {
		for _, param := range node.Params {
			a.scopes.Declare(param.Value, Symbol{
				Name: param.Value,
				Kind: SymbolVariable,
				Type: TypeUnknown,
			})
		}
		return a.walkBlock(node.Body)
	})
}

func (a *Analyzer) walkClassDeclaration(node *ast.ClassDeclaration) *internals.Diagnostic {
	a.scopes.Declare(node.Name.Value, Symbol{
		Name: node.Name.Value,
		Kind: SymbolClass,
		Type: TypeClass,
	})

	return a.inScope(func() *internals.Diagnostic {
		return a.walkBlock(node.Body)
	})
}

func (a *Analyzer) walkAssignStatement(node *ast.AssignStatement) *internals.Diagnostic {
	if len(node.Targets) != 1 {
		return internals.Errorf(internals.UnsupportedAssignmentTarget, node.GetToken(),
			"expected a single assignment target, got %v", len(node.Targets))
	}

	ident, ok := node.Targets[0].(*ast.Identifier)
	if !ok {
		return internals.Errorf(internals.UnsupportedAssignmentTarget, node.Targets[0].GetToken(),
			"assignment target %v is not a plain name", node.Targets[0])
	}

	inferred, diag := a.inference.Infer(node.Value)
	if diag != nil {
		return diag
	}

	// a reassignment rebinds the name with the fresh type
	a.scopes.Declare(ident.Value, Symbol{
		Name: ident.Value,
		Kind: SymbolVariable,
		Type: inferred,
	})
	return nil
}

func (a *Analyzer) walkCallExpression(node *ast.CallExpression) *internals.Diagnostic {
	ident, ok := node.Function.(*ast.Identifier)
	if !ok {
		return internals.Errorf(internals.UndefinedCall, node.GetToken(),
			"call target %v is not a plain name", node.Function)
	}

	sym, found := a.scopes.Resolve(ident.Value)
	if !found || sym.Kind != SymbolFunction {
		return internals.Errorf(internals.UndefinedCall, ident.Token,
			"%v is not a declared function", ident.Value)
	}

	for _, arg := range node.Args {
		if diag := a.walkExpression(arg); diag != nil {
			return diag
		}
	}
	return nil
}

func (a *Analyzer) walkExpression(node ast.Expression) *internals.Diagnostic {
	switch node := node.(type) {
	case *ast.Identifier:
		_, diag := a.inference.ResolveReference(node)
		return diag
	case *ast.CallExpression:
		return a.walkCallExpression(node)
	case *ast.BinaryExpression:
		if diag := a.walkExpression(node.Left); diag != nil {
			return diag
		}
		if diag := a.walkExpression(node.Right); diag != nil {
			return diag
		}
		// run inference over the whole node to validate the combination
		_, diag := a.inference.Infer(node)
		return diag
	default:
		_, diag := a.inference.Infer(node)
		return diag
	}
}

func (a *Analyzer) walkBlock(block *ast.BlockStatement) *internals.Diagnostic {
	for _, stmt := range block.Body {
		if diag := a.walkStatement(stmt); diag != nil {
			return diag
		}
	}
	return nil
}

// inScope pairs every push with exactly one pop, the failure path included,
// so a diagnostic inside a body never leaks a stale scope
func (a *Analyzer) inScope(body func() *internals.Diagnostic) *internals.Diagnostic {
	a.scopes.PushScope()
	diag := body()
	if perr := a.scopes.PopScope(); perr != nil && diag == nil {
		diag = perr
	}
	return diag
}
