package semantics

import (
	"github.com/SpazzPy/AnalizadorSemantico/internals"
	"github.com/SpazzPy/AnalizadorSemantico/lexer"
)

type SemanticType int

const (
	// TypeUnknown marks a binding whose type the analyzer cannot pin down
	// yet, a plain function parameter for example, it combines with anything
	TypeUnknown SemanticType = iota
	TypeInt
	TypeFloat
	TypeStr
	TypeFunction
	TypeClass
)

func (t SemanticType) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeStr:
		return "str"
	case TypeFunction:
		return "function"
	case TypeClass:
		return "class"
	default:
		return "unknown"
	}
}

// Combine is the one authority on which operand types a binary operator
// accepts and what comes out:
//
//	(int, int)     -> int
//	(float, float) -> float
//	(int, float)   -> float
//	(float, int)   -> float
//	(str, str)     -> str,  + only
//
// function and class names are never valid operands
func Combine(left, right SemanticType, op lexer.Operator, tok lexer.Token) (SemanticType, *internals.Diagnostic) {
	if left == TypeFunction || left == TypeClass || right == TypeFunction || right == TypeClass {
		return TypeUnknown, internals.Errorf(internals.TypeMismatch, tok,
			"operator %v cannot combine %v and %v", op, left, right)
	}

	if left == TypeUnknown {
		return right, nil
	}
	if right == TypeUnknown {
		return left, nil
	}

	if op == "+" && left == TypeStr && right == TypeStr {
		return TypeStr, nil
	}

	switch {
	case left == TypeInt && right == TypeInt:
		return TypeInt, nil
	case left == TypeFloat && right == TypeFloat:
		return TypeFloat, nil
	case left == TypeInt && right == TypeFloat:
		return TypeFloat, nil
	case left == TypeFloat && right == TypeInt:
		return TypeFloat, nil
	}

	return TypeUnknown, internals.Errorf(internals.TypeMismatch, tok,
		"operator %v cannot combine %v and %v", op, left, right)
}
