package lexer

type Operator = string

var (
	Keywords = map[string]TokenKind{
		"fn":     TokenFn,
		"class":  TokenClass,
		"import": TokenImport,
	}

	BinOperators = map[TokenKind]Operator{
		TokenMultiply: "*",
		TokenSlash:    "/",
		TokenPlus:     "+",
		TokenMinus:    "-",
	}

	UnaryOperators = map[TokenKind]Operator{
		TokenMinus: "-",
	}
)
