package internals

// This file handles the diagnostic obj raised by the analysis pass

import (
	"fmt"

	"github.com/SpazzPy/AnalizadorSemantico/lexer"
)

type ErrorKind int

const (
	UndefinedName ErrorKind = iota
	UndefinedCall
	UnsupportedAssignmentTarget
	TypeMismatch
	UnsupportedExpression
	UnsupportedNode
	Internal
)

func (k ErrorKind) String() string {
	switch k {
	case UndefinedName:
		return "undefined name"
	case UndefinedCall:
		return "undefined call"
	case UnsupportedAssignmentTarget:
		return "unsupported assignment target"
	case TypeMismatch:
		return "type mismatch"
	case UnsupportedExpression:
		return "unsupported expression"
	case UnsupportedNode:
		return "unsupported node"
	default:
		return "internal"
	}
}

// Diagnostic is the first rule violation found by an analysis run, analysis
// stops the moment one is produced
type Diagnostic struct {
	Kind    ErrorKind
	Row     int
	Col     int
	Message string
}

func (d *Diagnostic) Error() string {
	if d.Row == 0 {
		return fmt.Sprintf("%v: %v", d.Kind, d.Message)
	}
	return fmt.Sprintf("%d:%d: %v: %v", d.Row, d.Col, d.Kind, d.Message)
}

func Errorf(kind ErrorKind, tok lexer.Token, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Kind:    kind,
		Row:     tok.Row,
		Col:     tok.Col,
		Message: fmt.Sprintf(format, args...),
	}
}
