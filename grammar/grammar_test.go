package grammar

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/dhamidi/corona/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedGrammarVerifies(t *testing.T) {
	g, err := Check(Filename, bytes.NewReader(Source()), Start)
	require.NoError(t, err, "%v", Errors(err))
	assert.Contains(t, g, Start)
}

func TestCheckReportsEveryError(t *testing.T) {
	// B is undefined and C is unreachable from A.
	_, err := Check("bad.ebnf", strings.NewReader("A = B .\nC = \"x\" .\n"), "A")
	require.Error(t, err)
	assert.GreaterOrEqual(t, len(Errors(err)), 2)

	_, err = Check("syntax.ebnf", strings.NewReader("A = "), "")
	assert.Error(t, err)

	assert.Nil(t, Errors(nil))
}

func TestGrammarCoversLexer(t *testing.T) {
	g, err := Load()
	require.NoError(t, err)
	terminals := Terminals(g)

	for _, word := range lexer.Keywords() {
		assert.Contains(t, terminals, word)
	}
	for _, op := range lexer.Operators() {
		assert.Contains(t, terminals, op)
	}
}

func TestMatcher(t *testing.T) {
	g, err := Load()
	require.NoError(t, err)
	m := NewMatcher(g)

	tests := []struct {
		production string
		text       string
		matches    bool
	}{
		{"identifier", "x_1", true},
		{"identifier", "1x", false},
		{"float", "1.5e-3", true},
		{"float", ".5", true},
		{"float", "15", false},
		{"decimal_imaginary", "2im", true},
		{"hex_integer", "0xff", true},
		{"hex_integer", "0x", false},
		{"number", "0b1010", true},
		{"number", "1_000", true},
		{"string", `"a\"b"`, true},
		{"string", `rb'x'`, true},
		{"string", `"""doc"""`, true},
		{"string", `"open`, false},
		{"newline", "\r\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.production+"/"+tt.text, func(t *testing.T) {
			assert.Equal(t, tt.matches, m.Match(tt.production, tt.text))
		})
	}
}

func TestCheckTokens(t *testing.T) {
	g, err := Load()
	require.NoError(t, err)

	src := "def f(a: int = 0x1f) -> int:\n    s = rb'raw' \"x\"\n    return a ^ 2 + 1.5e3im if s else √a²\n"
	tokens, err := lexer.Tokenize([]byte(src))
	require.NoError(t, err)
	assert.Empty(t, CheckTokens(g, tokens))

	bad := []lexer.Token{
		{Kind: lexer.TokenOperator, Data: "$", Row: 1, Column: 1},
		{Kind: lexer.TokenIdentifier, Data: "9x", Row: 1, Column: 3},
	}
	errs := CheckTokens(g, bad)
	require.Len(t, errs, 2)
	var tokErr *TokenError
	require.True(t, errors.As(errs[1], &tokErr))
	assert.Equal(t, "9x", tokErr.Token.Data)
}
