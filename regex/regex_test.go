package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPostfix_ConcatenationAndStar(t *testing.T) {
	// spec §8 scenario 1
	got, err := ToPostfix("a(b|c)*")
	require.NoError(t, err)
	assert.Equal(t, "abc|*·", got)
}

func TestToPostfix_Deterministic(t *testing.T) {
	// shunting-yard round-trip soundness (spec §8): repeated runs agree.
	first, err := ToPostfix("a(b|c)*")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := ToPostfix("a(b|c)*")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestToPostfix_UnbalancedParens(t *testing.T) {
	_, err := ToPostfix("a(b|c")
	assert.Error(t, err)

	_, err = ToPostfix("a(b|c))")
	assert.Error(t, err)
}

func TestCompile_AcceptReject(t *testing.T) {
	// spec §8 scenario 2
	re, err := Compile("a(b|c)*")
	require.NoError(t, err)

	for _, w := range []string{"a", "ab", "ac", "abcbc"} {
		assert.Truef(t, re.MatchString(w), "expected %q to be accepted", w)
	}
	for _, w := range []string{"", "b", "ba"} {
		assert.Falsef(t, re.MatchString(w), "expected %q to be rejected", w)
	}
}

func TestCompile_PlusRequiresOneIteration(t *testing.T) {
	re, err := Compile("a+")
	require.NoError(t, err)

	assert.True(t, re.MatchString("a"))
	assert.True(t, re.MatchString("aaa"))
	assert.False(t, re.MatchString(""))
}

func TestCompile_Optional(t *testing.T) {
	re, err := Compile("ab?c")
	require.NoError(t, err)

	assert.True(t, re.MatchString("abc"))
	assert.True(t, re.MatchString("ac"))
	assert.False(t, re.MatchString("abbc"))
}

func TestMinimize_AltOfAAndAA(t *testing.T) {
	// spec §8 scenario 3: DFA for a|aa minimizes to exactly 3 states
	// (start, after-one-a accepting, after-two-a accepting) and
	// minimization never increases the state count.
	postfix, err := ToPostfix("a|aa")
	require.NoError(t, err)

	builder, frag, err := buildNFA(postfix)
	require.NoError(t, err)
	builder.MarkAccepting(frag.End, "", 0)
	nfa := builder.Build(frag.Start)

	alphabet := []rune{'a'}
	dfa := subsetConstruct(nfa, alphabet)

	minimized := minimizeDFA(dfa, alphabet)
	assert.LessOrEqual(t, len(minimized.States), len(dfa.States))
	assert.Len(t, minimized.States, 3)

	assert.True(t, minimized.Accepts("a"))
	assert.True(t, minimized.Accepts("aa"))
	assert.False(t, minimized.Accepts(""))
	assert.False(t, minimized.Accepts("aaa"))
}

func TestSubsetConstruction_EmptyAlphabetIsDegenerate(t *testing.T) {
	// spec §7: invalid/empty alphabet is not an error, just a degenerate
	// DFA with only a non-accepting start state.
	postfix, err := ToPostfix("a")
	require.NoError(t, err)
	builder, frag, err := buildNFA(postfix)
	require.NoError(t, err)
	builder.MarkAccepting(frag.End, "", 0)
	nfa := builder.Build(frag.Start)

	dfa := subsetConstruct(nfa, nil)
	assert.Len(t, dfa.States, 1)
	assert.False(t, dfa.States[0].Accepting)
}

func TestBuildLexerDFA_PriorityTieBreak(t *testing.T) {
	dfa, err := BuildLexerDFA([]TokenDef{
		{TokenType: "KEYWORD", Pattern: "if", Priority: 0},
		{TokenType: "IDENT", Pattern: "if", Priority: 1},
	})
	require.NoError(t, err)

	lex := NewLexer(dfa, "if")
	toks, err := lex.Tokenize()
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, "KEYWORD", toks[0].Type)
}

func TestLexer_LongestMatch(t *testing.T) {
	dfa, err := BuildLexerDFA([]TokenDef{
		{TokenType: "NUM", Pattern: "123", Priority: 0},
		{TokenType: "DIGIT", Pattern: "1", Priority: 0},
	})
	require.NoError(t, err)

	lex := NewLexer(dfa, "123")
	toks, err := lex.Tokenize()
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, "NUM", toks[0].Type)
	assert.Equal(t, "123", toks[0].Value)
}
