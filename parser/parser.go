package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/SpazzPy/AnalizadorSemantico/ast"
	"github.com/SpazzPy/AnalizadorSemantico/lexer"
)

const (
	_ int = iota
	LOWEST
	SUM     // + -
	PRODUCT // * /
	PREFIX  // -x
	CALL    // f(x)
)

var precedences = map[lexer.TokenKind]int{
	lexer.TokenPlus:      SUM,
	lexer.TokenMinus:     SUM,
	lexer.TokenSlash:     PRODUCT,
	lexer.TokenMultiply:  PRODUCT,
	lexer.TokenBraceOpen: CALL,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

type Parser struct {
	lexer    *lexer.Lexer
	FilePath string
	Errors   []error

	prevToken lexer.Token
	curToken  lexer.Token
	peekToken lexer.Token

	prefixParseFns map[lexer.TokenKind]prefixParseFn
	infixParseFns  map[lexer.TokenKind]infixParseFn
}

func NewParser(lex *lexer.Lexer, filePath string) *Parser {
	p := Parser{
		lexer:          lex,
		FilePath:       filePath,
		Errors:         []error{},
		prefixParseFns: make(map[lexer.TokenKind]prefixParseFn),
		infixParseFns:  make(map[lexer.TokenKind]infixParseFn),
	}

	// prefix/unary operators
	p.registerPrefix(lexer.TokenIdentifier, p.parseIdentifier)
	p.registerPrefix(lexer.TokenInt, p.parseIntLiteral)
	p.registerPrefix(lexer.TokenFloat, p.parseFloatLiteral)
	p.registerPrefix(lexer.TokenString, p.parseStringLiteral)
	p.registerPrefix(lexer.TokenMinus, p.parsePrefixExpression)
	p.registerPrefix(lexer.TokenBraceOpen, p.parseGroupedExpression)

	// infix/binary operators
	p.registerInfix(lexer.TokenPlus, p.parseInfixExpression)
	p.registerInfix(lexer.TokenMinus, p.parseInfixExpression)
	p.registerInfix(lexer.TokenSlash, p.parseInfixExpression)
	p.registerInfix(lexer.TokenMultiply, p.parseInfixExpression)
	p.registerInfix(lexer.TokenBraceOpen, p.parseCallExpression)

	// set the tok position
	p.nextToken()
	p.nextToken()

	return &p
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Kind]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) nextToken() {
	p.prevToken = p.curToken
	p.curToken = p.peekToken
	p.peekToken = p.lexer.NextToken()
}

func (p *Parser) add(err error) {
	if len(err.Error()) > 0 {
		p.Errors = append(p.Errors, err)
	}
}

// sync drops the rest of the current row, so the next statement starts clean
func (p *Parser) sync() {
	row := p.curToken.Row
	for p.curToken.Row == row && !p.curTokenKindIs(lexer.TokenEOF) {
		p.nextToken()
	}
}

func (p *Parser) curTokenKindIs(kind lexer.TokenKind) bool {
	return p.curToken.Kind == kind
}

func (p *Parser) peekTokenKindIs(kind lexer.TokenKind) bool {
	return p.peekToken.Kind == kind
}

func (p *Parser) error(tok lexer.Token, msg ...interface{}) error {
	errMsg := fmt.Sprintf("%s:%d:%d: ERROR: %s", p.FilePath, tok.Row, tok.Col, fmt.Sprint(msg...))

	return errors.New(errMsg)
}

func (p *Parser) registerPrefix(tokenType lexer.TokenKind, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}
func (p *Parser) registerInfix(tokenType lexer.TokenKind, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}

// Parse consumes the token stream into a program, it returns nil when any
// statement failed to parse, the details live in p.Errors.
func (p *Parser) Parse() *ast.Program {
	program := ast.Program{
		Statements: []ast.Statement{},
	}

	for !p.curTokenKindIs(lexer.TokenEOF) {
		stmt, err := p.parseStatement()

		if err != nil {
			p.add(err)
			p.sync()
			continue
		}

		program.Statements = append(program.Statements, stmt)
	}

	if len(p.Errors) > 0 {
		return nil
	}

	return &program
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.curToken.Kind {
	case lexer.TokenFn:
		return p.parseFunctionDeclaration()
	case lexer.TokenClass:
		return p.parseClassDeclaration()
	case lexer.TokenImport:
		return p.parseImportStatement()
	default:
		return p.parseSimpleStatement()
	}
}

func (p *Parser) parseFunctionDeclaration() (*ast.FunctionDeclaration, error) {
	stmt := &ast.FunctionDeclaration{Token: p.curToken}

	if !p.peekTokenKindIs(lexer.TokenIdentifier) {
		return nil, p.error(p.peekToken, "expected a function name, instead got ", p.peekToken.Text)
	}
	p.nextToken()
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Text}

	if !p.peekTokenKindIs(lexer.TokenBraceOpen) {
		return nil, p.error(p.peekToken, "expected ( after the function name")
	}
	p.nextToken()
	p.nextToken()

	for !p.curTokenKindIs(lexer.TokenBraceClose) {
		if !p.curTokenKindIs(lexer.TokenIdentifier) {
			return nil, p.error(p.curToken, "expected a parameter name, instead got ", p.curToken.Text)
		}
		stmt.Params = append(stmt.Params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Text})
		p.nextToken()

		if p.curTokenKindIs(lexer.TokenComma) {
			p.nextToken()
		} else if !p.curTokenKindIs(lexer.TokenBraceClose) {
			return nil, p.error(p.curToken, "expected , or ) in the parameter list")
		}
	}
	p.nextToken() // consume the )

	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	stmt.Body = body

	return stmt, nil
}

func (p *Parser) parseClassDeclaration() (*ast.ClassDeclaration, error) {
	stmt := &ast.ClassDeclaration{Token: p.curToken}

	if !p.peekTokenKindIs(lexer.TokenIdentifier) {
		return nil, p.error(p.peekToken, "expected a class name, instead got ", p.peekToken.Text)
	}
	p.nextToken()
	stmt.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Text}
	p.nextToken()

	body, err := p.parseBlockStatement()
	if err != nil {
		return nil, err
	}
	stmt.Body = body

	return stmt, nil
}

func (p *Parser) parseImportStatement() (*ast.ImportStatement, error) {
	stmt := &ast.ImportStatement{Token: p.curToken}

	if !p.peekTokenKindIs(lexer.TokenString) {
		return nil, p.error(p.peekToken, "expected a quoted module name after import")
	}
	p.nextToken()
	stmt.ModuleName = &ast.StringLiteral{Token: p.curToken, Value: p.curToken.Text}
	p.nextToken()

	return stmt, nil
}

func (p *Parser) parseBlockStatement() (*ast.BlockStatement, error) {
	if !p.curTokenKindIs(lexer.TokenCurlyBraceOpen) {
		return nil, p.error(p.curToken, "expected { to open the body, instead got ", p.curToken.Text)
	}
	block := &ast.BlockStatement{Token: p.curToken}
	p.nextToken()

	for !p.curTokenKindIs(lexer.TokenCurlyBraceClose) {
		if p.curTokenKindIs(lexer.TokenEOF) {
			return nil, p.error(p.curToken, "expected } to close the body")
		}

		stmt, err := p.parseStatement()
		if err != nil {
			p.add(err)
			p.sync()
			continue
		}
		block.Body = append(block.Body, stmt)
	}
	p.nextToken() // consume the }

	return block, nil
}

// parseSimpleStatement covers both plain expression statements and
// assignments, the two only diverge once the target list has been read
func (p *Parser) parseSimpleStatement() (ast.Statement, error) {
	tok := p.curToken

	first := p.parseExpression(LOWEST)
	if first == nil {
		return nil, fmt.Errorf("")
	}

	targets := []ast.Expression{first}
	for p.curTokenKindIs(lexer.TokenComma) {
		p.nextToken()
		next := p.parseExpression(LOWEST)
		if next == nil {
			return nil, fmt.Errorf("")
		}
		targets = append(targets, next)
	}

	if p.curTokenKindIs(lexer.TokenAssign) {
		p.nextToken()
		value := p.parseExpression(LOWEST)
		if value == nil {
			return nil, fmt.Errorf("")
		}
		return &ast.AssignStatement{Token: tok, Targets: targets, Value: value}, nil
	}

	if len(targets) > 1 {
		return nil, p.error(tok, "expected = after the target list")
	}

	return &ast.ExpressionStatement{Token: tok, Expression: first}, nil
}

func (p *Parser) parseExpression(precedence int) ast.Expression {
	cur := p.curToken

	if cur.Kind == lexer.TokenError {
		p.add(p.error(cur, "unrecognized token ", cur.Text))
		return nil
	}

	prefix := p.prefixParseFns[cur.Kind]

	if prefix == nil {
		p.add(p.error(cur, "unexpected token ", cur.Text))
		return nil
	}

	leftExp := prefix()
	if leftExp == nil {
		return nil
	}

	// an operator only continues the expression when it sits on the same row,
	// a row break ends the statement
	for precedence < p.curPrecedence() && p.curToken.Row == p.prevToken.Row {
		infix := p.infixParseFns[p.curToken.Kind]
		if infix == nil {
			return leftExp
		}
		leftExp = infix(leftExp)
		if leftExp == nil {
			return nil
		}
	}

	return leftExp
}

func (p *Parser) parseIdentifier() ast.Expression {
	tok := p.curToken
	p.nextToken()

	return &ast.Identifier{Token: tok, Value: tok.Text}
}

func (p *Parser) parseIntLiteral() ast.Expression {
	tok := p.curToken
	p.nextToken()

	num, err := strconv.ParseInt(tok.Text, 0, 64)
	if err != nil {
		p.add(p.error(tok, "invalid integer literal ", tok.Text))
		return nil
	}
	return &ast.IntegerLiteral{
		Token: tok,
		Value: num,
	}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	tok := p.curToken
	p.nextToken()

	num, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		p.add(p.error(tok, "invalid float literal ", tok.Text))
		return nil
	}
	return &ast.FloatLiteral{
		Token: tok,
		Value: num,
	}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	tok := p.curToken
	p.nextToken()

	return &ast.StringLiteral{
		Token: tok,
		Value: tok.Text,
	}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()

	right := p.parseExpression(PREFIX)
	if right == nil {
		return nil
	}

	// negative number literals fold in place, anything else stays unary
	switch lit := right.(type) {
	case *ast.IntegerLiteral:
		lit.Token = tok
		lit.Value = -lit.Value
		return lit
	case *ast.FloatLiteral:
		lit.Token = tok
		lit.Value = -lit.Value
		return lit
	}

	return &ast.UnaryExpression{
		Token:    tok,
		Operator: lexer.UnaryOperators[tok.Kind],
		Right:    right,
	}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()

	exp := p.parseExpression(LOWEST)
	if exp == nil {
		return nil
	}

	if !p.curTokenKindIs(lexer.TokenBraceClose) {
		p.add(p.error(p.curToken, "expected ) to close the grouped expression"))
		return nil
	}
	p.nextToken()

	return exp
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	tok := p.curToken

	precedence := p.curPrecedence()
	p.nextToken()

	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}

	return &ast.BinaryExpression{
		Token:    tok,
		Operator: lexer.BinOperators[tok.Kind],
		Left:     left,
		Right:    right,
	}
}

func (p *Parser) parseCallExpression(left ast.Expression) ast.Expression {
	exp := &ast.CallExpression{Token: p.curToken, Function: left}
	p.nextToken()

	for !p.curTokenKindIs(lexer.TokenBraceClose) {
		if p.curTokenKindIs(lexer.TokenEOF) {
			p.add(p.error(p.curToken, "expected ) to close the argument list"))
			return nil
		}

		arg := p.parseExpression(LOWEST)
		if arg == nil {
			return nil
		}
		exp.Args = append(exp.Args, arg)

		if p.curTokenKindIs(lexer.TokenComma) {
			p.nextToken()
		} else if !p.curTokenKindIs(lexer.TokenBraceClose) {
			p.add(p.error(p.curToken, "expected , or ) in the argument list"))
			return nil
		}
	}
	p.nextToken() // consume the )

	return exp
}
