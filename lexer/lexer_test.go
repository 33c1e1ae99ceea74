package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cppdoc/cppdoc/lexer"
	"github.com/cppdoc/cppdoc/token"
)

func TestLexIdentifiersAndKeywords(t *testing.T) {
	toks, err := lexer.Lex("foo true false _bar1")
	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, token.Ident, toks[0].Kind)
	assert.Equal(t, token.KeywordTrue, toks[1].Kind)
	assert.Equal(t, token.KeywordFalse, toks[2].Kind)
	assert.Equal(t, "_bar1", toks[3].Spelling)
}

func TestLexNumberWithSuffix(t *testing.T) {
	toks, err := lexer.Lex("123ull 0.5f")
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, token.Number, toks[0].Kind)
	assert.Equal(t, "123ull", toks[0].Spelling)
	assert.Equal(t, "0.5f", toks[1].Spelling)
}

func TestLexStringAndCharWithEscapes(t *testing.T) {
	toks, err := lexer.Lex(`"a\"b" '\''`)
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, token.String, toks[0].Kind)
	assert.Equal(t, `"a\"b"`, toks[0].Spelling)
	assert.Equal(t, token.Char, toks[1].Kind)
	assert.Equal(t, `'\''`, toks[1].Spelling)
}

func TestLexSkipsLineAndBlockComments(t *testing.T) {
	toks, err := lexer.Lex("a // comment\nb /* block\ncomment */ c")
	require.NoError(t, err)
	require.Len(t, toks, 3)
	for _, tk := range toks {
		assert.Equal(t, token.Ident, tk.Kind)
	}
}

func TestLexPunctuationLongestMatchFirst(t *testing.T) {
	toks, err := lexer.Lex("a::b->c ... x:y")
	require.NoError(t, err)
	kinds := make([]token.Kind, len(toks))
	for i, tk := range toks {
		kinds[i] = tk.Kind
	}
	assert.Equal(t, []token.Kind{
		token.Ident, token.ColonColon, token.Ident, token.Arrow, token.Ident,
		token.DotDotDot, token.Ident, token.Colon, token.Ident,
	}, kinds)
}

func TestLexAmpNeverMergesIntoAndKind(t *testing.T) {
	// The token vocabulary has no dedicated "&&" kind - "&&" is two
	// adjacent Amp tokens, distinguished from a separated "& &" only by
	// token.Cursor.Adjacent.
	toks, err := lexer.Lex("a && b")
	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, token.Amp, toks[1].Kind)
	assert.Equal(t, token.Amp, toks[2].Kind)
}

func TestLexUnrecognizedByteErrors(t *testing.T) {
	_, err := lexer.Lex("a @ b")
	assert.Error(t, err)
}
