package ast

import (
	"bytes"
	"fmt"

	"github.com/SpazzPy/AnalizadorSemantico/lexer"
)

type Node interface {
	TokenLiteral() string
	String() string
	GetToken() lexer.Token
}

type Statement interface {
	Node
	statementNode()
}

type Expression interface {
	Node
	expressionNode()
}

type Program struct {
	Node
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	} else {
		return ""
	}
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

type Identifier struct {
	Token lexer.Token
	Value string
}

func (i *Identifier) expressionNode()       {}
func (i *Identifier) TokenLiteral() string  { return i.Token.Text }
func (i *Identifier) GetToken() lexer.Token { return i.Token }
func (i *Identifier) String() string        { return i.Value }

type IntegerLiteral struct {
	Token lexer.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()       {}
func (il *IntegerLiteral) TokenLiteral() string  { return il.Token.Text }
func (il *IntegerLiteral) GetToken() lexer.Token { return il.Token }
func (il *IntegerLiteral) String() string        { return fmt.Sprintf("%d", il.Value) }

type FloatLiteral struct {
	Token lexer.Token
	Value float64
}

func (fl *FloatLiteral) expressionNode()       {}
func (fl *FloatLiteral) TokenLiteral() string  { return fl.Token.Text }
func (fl *FloatLiteral) GetToken() lexer.Token { return fl.Token }
func (fl *FloatLiteral) String() string        { return fmt.Sprintf("%v", fl.Value) }

type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (sl *StringLiteral) expressionNode()       {}
func (sl *StringLiteral) TokenLiteral() string  { return sl.Token.Text }
func (sl *StringLiteral) GetToken() lexer.Token { return sl.Token }
func (sl *StringLiteral) String() string        { return fmt.Sprintf("%q", sl.Value) }

type UnaryExpression struct {
	Token    lexer.Token
	Operator lexer.Operator
	Right    Expression
}

func (u *UnaryExpression) expressionNode()       {}
func (u *UnaryExpression) TokenLiteral() string  { return u.Token.Text }
func (u *UnaryExpression) GetToken() lexer.Token { return u.Token }
func (u *UnaryExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(u.Operator)
	out.WriteString(u.Right.String())
	out.WriteString(")")
	return out.String()
}

type BinaryExpression struct {
	Token    lexer.Token
	Operator lexer.Operator
	Left     Expression
	Right    Expression
}

func (b *BinaryExpression) expressionNode()       {}
func (b *BinaryExpression) TokenLiteral() string  { return b.Token.Text }
func (b *BinaryExpression) GetToken() lexer.Token { return b.Token }
func (b *BinaryExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(b.Left.String())
	out.WriteString(" " + b.Operator + " ")
	out.WriteString(b.Right.String())
	out.WriteString(")")
	return out.String()
}

type CallExpression struct {
	Token    lexer.Token // the ( token
	Function Expression
	Args     []Expression
}

func (ce *CallExpression) expressionNode()       {}
func (ce *CallExpression) TokenLiteral() string  { return ce.Token.Text }
func (ce *CallExpression) GetToken() lexer.Token { return ce.Token }
func (ce *CallExpression) String() string {
	var out bytes.Buffer
	out.WriteString(ce.Function.String())
	out.WriteString("(")
	for idx, arg := range ce.Args {
		out.WriteString(arg.String())
		if idx < len(ce.Args)-1 {
			out.WriteString(", ")
		}
	}
	out.WriteString(")")
	return out.String()
}

type ExpressionStatement struct {
	Token      lexer.Token
	Expression Expression
}

func (es *ExpressionStatement) statementNode()        {}
func (es *ExpressionStatement) TokenLiteral() string  { return es.Token.Text }
func (es *ExpressionStatement) GetToken() lexer.Token { return es.Token }
func (es *ExpressionStatement) String() string {
	if es.Expression != nil {
		return es.Expression.String()
	}
	return ""
}

type AssignStatement struct {
	Token   lexer.Token // the first token of the target list
	Targets []Expression
	Value   Expression
}

func (as *AssignStatement) statementNode()        {}
func (as *AssignStatement) TokenLiteral() string  { return as.Token.Text }
func (as *AssignStatement) GetToken() lexer.Token { return as.Token }
func (as *AssignStatement) String() string {
	var out bytes.Buffer
	for idx, target := range as.Targets {
		out.WriteString(target.String())
		if idx < len(as.Targets)-1 {
			out.WriteString(", ")
		}
	}
	out.WriteString(" = ")
	if as.Value != nil {
		out.WriteString(as.Value.String())
	}
	return out.String()
}

type BlockStatement struct {
	Token lexer.Token // the { token
	Body  []Statement
}

func (bs *BlockStatement) statementNode()        {}
func (bs *BlockStatement) TokenLiteral() string  { return bs.Token.Text }
func (bs *BlockStatement) GetToken() lexer.Token { return bs.Token }
func (bs *BlockStatement) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for _, stmt := range bs.Body {
		out.WriteString(stmt.String())
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}

type FunctionDeclaration struct {
	Token  lexer.Token // the fn token
	Name   *Identifier
	Params []*Identifier
	Body   *BlockStatement
}

func (fd *FunctionDeclaration) statementNode()        {}
func (fd *FunctionDeclaration) TokenLiteral() string  { return fd.Token.Text }
func (fd *FunctionDeclaration) GetToken() lexer.Token { return fd.Token }
func (fd *FunctionDeclaration) String() string {
	var out bytes.Buffer
	out.WriteString("fn ")
	out.WriteString(fd.Name.String())
	out.WriteString("(")
	for idx, param := range fd.Params {
		out.WriteString(param.String())
		if idx < len(fd.Params)-1 {
			out.WriteString(", ")
		}
	}
	out.WriteString(") ")
	out.WriteString(fd.Body.String())
	return out.String()
}

type ClassDeclaration struct {
	Token lexer.Token // the class token
	Name  *Identifier
	Body  *BlockStatement
}

func (cd *ClassDeclaration) statementNode()        {}
func (cd *ClassDeclaration) TokenLiteral() string  { return cd.Token.Text }
func (cd *ClassDeclaration) GetToken() lexer.Token { return cd.Token }
func (cd *ClassDeclaration) String() string {
	var out bytes.Buffer
	out.WriteString("class ")
	out.WriteString(cd.Name.String())
	out.WriteString(" ")
	out.WriteString(cd.Body.String())
	return out.String()
}

type ImportStatement struct {
	Token      lexer.Token // the import token
	ModuleName *StringLiteral
}

func (is *ImportStatement) statementNode()        {}
func (is *ImportStatement) TokenLiteral() string  { return is.Token.Text }
func (is *ImportStatement) GetToken() lexer.Token { return is.Token }
func (is *ImportStatement) String() string {
	return "import " + is.ModuleName.String()
}
