package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowCow/compilercore/grammar"
	"github.com/shadowCow/compilercore/lr"
)

func tok(typeName string) SimpleToken {
	return SimpleToken{TypeName: typeName, Text: typeName}
}

func TestDriver_ParenGrammar_AcceptsBalanced(t *testing.T) {
	// spec §8 scenario 4: S -> (S) | ε
	S := grammar.NT("S")
	g := grammar.New(S, []grammar.Production{
		{Left: S, Right: []grammar.Sym{grammar.T("("), S, grammar.T(")")}},
		{Left: S, Right: nil},
	})
	result := lr.BuildLALR(g)
	require.Empty(t, result.Table.Conflicts)

	driver := NewDriver(result.Table)

	assert.True(t, driver.Accepts([]Token{tok("("), tok("("), tok(")"), tok(")")}))
	assert.True(t, driver.Accepts([]Token{tok("("), tok(")")}))
	assert.True(t, driver.Accepts(nil))
	assert.False(t, driver.Accepts([]Token{tok("("), tok("("), tok(")")}))
}

func TestDriver_ABGrammar_StillAcceptsAB(t *testing.T) {
	// spec §8 scenario 6. The table keeps a reduce/reduce conflict on $
	// after "ab" (A -> b vs B -> b); whichever reduction the first-wins
	// table kept, "ab" is accepted.
	S, A, B := grammar.NT("S"), grammar.NT("A"), grammar.NT("B")
	a, b := grammar.T("a"), grammar.T("b")
	g := grammar.New(S, []grammar.Production{
		{Left: S, Right: []grammar.Sym{a, A}},
		{Left: S, Right: []grammar.Sym{a, B}},
		{Left: A, Right: []grammar.Sym{b}},
		{Left: B, Right: []grammar.Sym{b}},
	})
	result := lr.BuildLALR(g)
	driver := NewDriver(result.Table)

	assert.True(t, driver.Accepts([]Token{tok("a"), tok("b")}))
}

func TestDriver_SyntaxErrorReportsPosition(t *testing.T) {
	S := grammar.NT("S")
	g := grammar.New(S, []grammar.Production{
		{Left: S, Right: []grammar.Sym{grammar.T("("), S, grammar.T(")")}},
		{Left: S, Right: nil},
	})
	result := lr.BuildLALR(g)
	driver := NewDriver(result.Table)

	ok, _, err := driver.Run([]Token{tok("("), tok("x")})
	require.False(t, ok)
	require.Error(t, err)
	syntaxErr, isSyntaxErr := err.(*SyntaxError)
	require.True(t, isSyntaxErr)
	assert.Equal(t, 1, syntaxErr.Position)
}

func TestSymbolOf_FallsBackToLexemeWhenTypeEmpty(t *testing.T) {
	typed := SimpleToken{TypeName: "IDENT", Text: "foo"}
	untyped := SimpleToken{Text: "+"}
	assert.Equal(t, "IDENT", symbolOf(typed))
	assert.Equal(t, "+", symbolOf(untyped))
}

func TestDriver_BuildsParseTreeOnAccept(t *testing.T) {
	S := grammar.NT("S")
	g := grammar.New(S, []grammar.Production{
		{Left: S, Right: []grammar.Sym{grammar.T("("), S, grammar.T(")")}},
		{Left: S, Right: nil},
	})
	result := lr.BuildLALR(g)
	driver := NewDriver(result.Table)

	ok, root, err := driver.Run([]Token{tok("("), tok(")")})
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, root)
	assert.Equal(t, "S", root.Symbol.Name)
	assert.False(t, root.Terminal)
}
