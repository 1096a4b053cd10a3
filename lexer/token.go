package lexer

type TokenKind = string

const (

	// Keywords
	TokenFn     TokenKind = "fn"
	TokenClass  TokenKind = "class"
	TokenImport TokenKind = "import"

	// Units
	TokenCurlyBraceOpen  TokenKind = "{"
	TokenCurlyBraceClose TokenKind = "}"
	TokenBraceOpen       TokenKind = "("
	TokenBraceClose      TokenKind = ")"
	TokenQuote           TokenKind = `"`
	TokenComma           TokenKind = ","

	// Arithmetic Operators
	TokenMinus    TokenKind = "-"
	TokenPlus     TokenKind = "+"
	TokenMultiply TokenKind = "*"
	TokenSlash    TokenKind = "/"

	// Bind Operators
	TokenAssign TokenKind = "="

	// Comment
	TokenComment TokenKind = "#"

	// Var Naming
	TokenIdentifier TokenKind = "identifier"

	// Literals
	TokenString TokenKind = "string"
	TokenInt    TokenKind = "int"
	TokenFloat  TokenKind = "float"

	// Error
	TokenError TokenKind = "error"

	// EOF
	TokenEOF TokenKind = "end of file"
)

type LiteralToken struct {
	Text string
	Kind TokenKind
}

type Lexer struct {
	Content []rune
	// help mainly in error detection when having multi file execution
	FilePath string
	Row      int
	Col      int
	Cur      int
}
