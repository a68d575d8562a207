/*
File    : hydrogen/lexer/lexer_test.go
Package : lexer
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prakhar479/hydrogen/internal/diag"
)

func kinds(tokens []Token) []Kind {
	out := make([]Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestLex_TokenBoundary_Semicolons(t *testing.T) {
	tokens, err := Lex("; ; ;")
	require.NoError(t, err)
	assert.Equal(t, []Kind{EOS, EOS, EOS}, kinds(tokens))
}

func TestLex_TokenBoundary_NoWhitespace(t *testing.T) {
	tokens, err := Lex("a;b")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, Token{Kind: IDENT, Lexeme: "a", Line: 1, Col: 1}, tokens[0])
	assert.Equal(t, EOS, tokens[1].Kind)
	assert.Equal(t, Token{Kind: IDENT, Lexeme: "b", Line: 1, Col: 3}, tokens[2])
}

func TestLex_KeywordVersusIdentifier(t *testing.T) {
	tokens, err := Lex("exits exit")
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, IDENT, tokens[0].Kind)
	assert.Equal(t, "exits", tokens[0].Lexeme)
	assert.Equal(t, EXIT, tokens[1].Kind)
}

func TestLex_EqualityVersusAssignment(t *testing.T) {
	tokens, err := Lex("a==b")
	require.NoError(t, err)
	assert.Equal(t, []Kind{IDENT, EQ, IDENT}, kinds(tokens))

	tokens, err = Lex("a=b")
	require.NoError(t, err)
	assert.Equal(t, []Kind{IDENT, ASSIGN, IDENT}, kinds(tokens))
}

func TestLex_AllKeywords(t *testing.T) {
	src := "exit if else for while let define return"
	tokens, err := Lex(src)
	require.NoError(t, err)
	assert.Equal(t, []Kind{EXIT, IF, ELSE, FOR, WHILE, LET, DEFINE, RETURN}, kinds(tokens))
}

func TestLex_Punctuation(t *testing.T) {
	tokens, err := Lex("(){}*%+-<>")
	require.NoError(t, err)
	assert.Equal(t, []Kind{LPAREN, RPAREN, LBRACE, RBRACE, STAR, PERCENT, PLUS, MINUS, LT, GT}, kinds(tokens))
}

func TestLex_LineComment(t *testing.T) {
	tokens, err := Lex("let x = 1; /> this is ignored\nlet y = 2;")
	require.NoError(t, err)
	assert.Equal(t, []Kind{LET, IDENT, ASSIGN, INT, EOS, LET, IDENT, ASSIGN, INT, EOS}, kinds(tokens))
}

func TestLex_NoTrailingEOS(t *testing.T) {
	tokens, err := Lex("let x = 1")
	require.NoError(t, err)
	assert.Equal(t, []Kind{LET, IDENT, ASSIGN, INT}, kinds(tokens))
}

func TestLex_MalformedInteger(t *testing.T) {
	_, err := Lex("let x = 12ab;")
	require.Error(t, err)
	var derr *diag.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, diag.Lexical, derr.Category)
}

func TestLex_UnknownCharacter(t *testing.T) {
	_, err := Lex("let x = 1 @ 2;")
	require.Error(t, err)
	var derr *diag.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, diag.Lexical, derr.Category)
}

func TestLex_SlashWithoutGreaterThanIsError(t *testing.T) {
	_, err := Lex("1 / 2")
	require.Error(t, err)
}

func TestLex_IsDeterministic(t *testing.T) {
	src := "define main() { let a = 2; return a + 3 * 4; }"
	first, err := Lex(src)
	require.NoError(t, err)
	second, err := Lex(src)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLex_FullProgram(t *testing.T) {
	src := `define add(x; y) {
		return x + y;
	}
	define main() {
		let a = 2;
		let b = 3;
		return add(a; b);
	}`
	tokens, err := Lex(src)
	require.NoError(t, err)
	assert.Equal(t, []Kind{
		DEFINE, IDENT, LPAREN, IDENT, EOS, IDENT, RPAREN, LBRACE,
		RETURN, IDENT, PLUS, IDENT, EOS,
		RBRACE,
		DEFINE, IDENT, LPAREN, RPAREN, LBRACE,
		LET, IDENT, ASSIGN, INT, EOS,
		LET, IDENT, ASSIGN, INT, EOS,
		RETURN, IDENT, LPAREN, IDENT, EOS, IDENT, RPAREN, EOS,
		RBRACE,
	}, kinds(tokens))
}
