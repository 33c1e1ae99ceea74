package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cppdoc/cppdoc/token"
)

func toks(specs ...token.Token) []token.Token {
	return specs
}

func TestCursorPeekAdvance(t *testing.T) {
	c := token.New(toks(
		token.Token{Kind: token.Ident, Spelling: "a"},
		token.Token{Kind: token.Ident, Spelling: "b"},
	))
	assert.Equal(t, "a", c.Peek().Spelling)
	assert.Equal(t, "b", c.PeekN(1).Spelling)

	c2 := c.Advance()
	assert.Equal(t, "b", c2.Peek().Spelling)
	assert.Equal(t, "a", c.Peek().Spelling, "Advance must not mutate the receiver")
	assert.False(t, c.Same(c2))
}

func TestCursorEOF(t *testing.T) {
	c := token.New(nil)
	require.True(t, c.IsEOF())
	assert.Equal(t, token.EOF, c.Peek().Kind)
	assert.Equal(t, c, c.Advance(), "advancing past EOF is a no-op")
}

func TestCursorAdjacent(t *testing.T) {
	// "->*" spelled as three adjacent single-char tokens, offsets 0,1,2.
	c := token.New(toks(
		token.Token{Kind: token.Sub, Spelling: "-", Start: 0},
		token.Token{Kind: token.Gt, Spelling: ">", Start: 1},
		token.Token{Kind: token.Mul, Spelling: "*", Start: 2},
	))
	assert.True(t, c.Adjacent(0))
	assert.True(t, c.Adjacent(1))

	// Same kinds but with a gap between the second and third token.
	c2 := token.New(toks(
		token.Token{Kind: token.Sub, Spelling: "-", Start: 0},
		token.Token{Kind: token.Gt, Spelling: ">", Start: 1},
		token.Token{Kind: token.Mul, Spelling: "*", Start: 5},
	))
	assert.True(t, c2.Adjacent(0))
	assert.False(t, c2.Adjacent(1))
}

func TestCursorAdjacentAtEOF(t *testing.T) {
	c := token.New(toks(token.Token{Kind: token.Ident, Spelling: "a", Start: 0}))
	assert.False(t, c.Adjacent(0), "no following token means not adjacent")
}
