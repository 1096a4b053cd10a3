package lexer

import (
	"unicode"
)

func NewLexer(filePath string, content string) *Lexer {
	lexer := Lexer{
		Content:  []rune(content),
		FilePath: filePath,
		Row:      1,
		Col:      1,
		Cur:      0,
	}
	return &lexer
}

func (l *Lexer) readChar() {
	if l.Cur >= len(l.Content) {
		// reach end of file
		return
	}

	char := l.Content[l.Cur]

	switch char {
	case '\n':
		l.Row++
		l.Col = 1
	default:
		l.Col++
	}

	// increment to deal with the next char
	l.Cur++
}

type Token struct {
	LiteralToken
	Row int
	Col int
}

func (l *Lexer) NextToken() Token {
	l.skipWhiteSpace()
	l.skipComment()

	token := Token{
		Row: l.Row,
		Col: l.Col,
	}

	if l.Cur >= len(l.Content) {
		token.LiteralToken = LiteralToken{
			Kind: TokenEOF,
			Text: "",
		}
		return token
	}

	char := l.Content[l.Cur]

	switch string(char) {
	case TokenCurlyBraceOpen:
		l.readChar()
		token.LiteralToken = LiteralToken{
			Kind: TokenCurlyBraceOpen,
			Text: "{",
		}
	case TokenCurlyBraceClose:
		l.readChar()
		token.LiteralToken = LiteralToken{
			Kind: TokenCurlyBraceClose,
			Text: "}",
		}
	case TokenBraceOpen:
		l.readChar()
		token.LiteralToken = LiteralToken{
			Kind: TokenBraceOpen,
			Text: "(",
		}
	case TokenBraceClose:
		l.readChar()
		token.LiteralToken = LiteralToken{
			Kind: TokenBraceClose,
			Text: ")",
		}
	case TokenComma:
		l.readChar()
		token.LiteralToken = LiteralToken{
			Kind: TokenComma,
			Text: ",",
		}
	case TokenMinus:
		l.readChar()
		token.LiteralToken = LiteralToken{
			Kind: TokenMinus,
			Text: "-",
		}
	case TokenPlus:
		l.readChar()
		token.LiteralToken = LiteralToken{
			Kind: TokenPlus,
			Text: "+",
		}
	case TokenMultiply:
		l.readChar()
		token.LiteralToken = LiteralToken{
			Kind: TokenMultiply,
			Text: "*",
		}
	case TokenSlash:
		l.readChar()
		token.LiteralToken = LiteralToken{
			Kind: TokenSlash,
			Text: "/",
		}
	case TokenAssign:
		l.readChar()
		token.LiteralToken = LiteralToken{
			Kind: TokenAssign,
			Text: "=",
		}
	case TokenQuote:
		return l.readString()
	default:
		if isLetter(char) {
			return l.readIdentifier()
		} else if isDigit(char) {
			return l.readNumber()
		} else {
			l.readChar()
			token.LiteralToken = LiteralToken{
				Kind: TokenError,
				Text: string(char),
			}
		}
	}
	return token
}

func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			break
		}
	}
	return tokens
}

func isLetter(char rune) bool {
	return unicode.IsLetter(char) || char == '_'
}

func isDigit(char rune) bool {
	return unicode.IsDigit(char)
}

func (l *Lexer) readIdentifier() Token {
	startPos := l.Cur

	// save them to return
	row := l.Row
	col := l.Col

	for l.Cur < len(l.Content) {
		char := l.Content[l.Cur]
		if isLetter(char) || isDigit(char) {
			l.readChar()
		} else {
			break
		}
	}

	text := string(l.Content[startPos:l.Cur])

	if tokenKind, isKeyword := Keywords[text]; isKeyword {
		return Token{LiteralToken: LiteralToken{
			Kind: tokenKind,
			Text: text,
		}, Row: row, Col: col}
	}

	return Token{
		LiteralToken: LiteralToken{
			Kind: TokenIdentifier,
			Text: text,
		},
		Row: row,
		Col: col,
	}
}

func (l *Lexer) readString() Token {
	start := l.Cur + 1 // skip the opening quote
	row, col := l.Row, l.Col

	l.readChar()

	for l.Cur < len(l.Content) && l.Content[l.Cur] != '"' {
		l.readChar()
	}

	if l.Cur >= len(l.Content) {
		// unterminated quote, surface it as an error token instead of dying here
		return Token{
			LiteralToken: LiteralToken{
				Kind: TokenError,
				Text: string(l.Content[start-1:]),
			},
			Row: row,
			Col: col,
		}
	}

	end := l.Cur
	l.readChar() // consume the closing quote

	return Token{
		LiteralToken: LiteralToken{
			Kind: TokenString,
			Text: string(l.Content[start:end]),
		},
		Row: row,
		Col: col,
	}
}

func (l *Lexer) readNumber() Token {
	startPos := l.Cur
	row := l.Row
	col := l.Col

	// Read integer part
	for l.Cur < len(l.Content) && isDigit(l.Content[l.Cur]) {
		l.readChar()
	}

	if l.Cur < len(l.Content) && l.Content[l.Cur] == '.' {
		l.readChar() // consume '.'

		// Read fractional part
		for l.Cur < len(l.Content) && isDigit(l.Content[l.Cur]) {
			l.readChar()
		}

		return Token{
			LiteralToken: LiteralToken{
				Kind: TokenFloat,
				Text: string(l.Content[startPos:l.Cur]),
			},
			Row: row,
			Col: col,
		}
	}

	return Token{
		LiteralToken: LiteralToken{
			Kind: TokenInt,
			Text: string(l.Content[startPos:l.Cur]),
		},
		Row: row,
		Col: col,
	}
}

func (l *Lexer) skipComment() {
	for l.Cur < len(l.Content) && l.Content[l.Cur] == '#' {
		for l.Cur < len(l.Content) && l.Content[l.Cur] != '\n' {
			l.readChar()
		}
		l.skipWhiteSpace()
	}
}

func (l *Lexer) skipWhiteSpace() {
	for l.Cur < len(l.Content) && unicode.IsSpace(l.Content[l.Cur]) {
		l.readChar()
	}
}
