package lexer_test

import (
	"testing"

	"github.com/go-test/deep"

	"github.com/SpazzPy/AnalizadorSemantico/lexer"
)

func TestTokenizeAssignments(t *testing.T) {
	code := "x = 1.5 # comment\ny = \"hi\""

	output := []lexer.Token{
		{LiteralToken: lexer.LiteralToken{Text: "x", Kind: lexer.TokenIdentifier}, Row: 1, Col: 1},
		{LiteralToken: lexer.LiteralToken{Text: "=", Kind: lexer.TokenAssign}, Row: 1, Col: 3},
		{LiteralToken: lexer.LiteralToken{Text: "1.5", Kind: lexer.TokenFloat}, Row: 1, Col: 5},
		{LiteralToken: lexer.LiteralToken{Text: "y", Kind: lexer.TokenIdentifier}, Row: 2, Col: 1},
		{LiteralToken: lexer.LiteralToken{Text: "=", Kind: lexer.TokenAssign}, Row: 2, Col: 3},
		{LiteralToken: lexer.LiteralToken{Text: "hi", Kind: lexer.TokenString}, Row: 2, Col: 5},
		{LiteralToken: lexer.LiteralToken{Text: "", Kind: lexer.TokenEOF}, Row: 2, Col: 9},
	}

	tokens := lexer.NewLexer("", code).Tokenize()

	if diff := deep.Equal(tokens, output); diff != nil {
		t.Error(diff)
	}
}

func TestTokenizeKeywordsAndUnits(t *testing.T) {
	code := `fn add(a, b) { a + b }`

	kinds := []lexer.TokenKind{
		lexer.TokenFn,
		lexer.TokenIdentifier,
		lexer.TokenBraceOpen,
		lexer.TokenIdentifier,
		lexer.TokenComma,
		lexer.TokenIdentifier,
		lexer.TokenBraceClose,
		lexer.TokenCurlyBraceOpen,
		lexer.TokenIdentifier,
		lexer.TokenPlus,
		lexer.TokenIdentifier,
		lexer.TokenCurlyBraceClose,
		lexer.TokenEOF,
	}

	tokens := lexer.NewLexer("", code).Tokenize()

	got := make([]lexer.TokenKind, 0, len(tokens))
	for _, tok := range tokens {
		got = append(got, tok.Kind)
	}

	if diff := deep.Equal(got, kinds); diff != nil {
		t.Error(diff)
	}
}

func TestUnterminatedStringIsErrorToken(t *testing.T) {
	tokens := lexer.NewLexer("", `x = "oops`).Tokenize()

	found := false
	for _, tok := range tokens {
		if tok.Kind == lexer.TokenError {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an error token, got %v", tokens)
	}
}
