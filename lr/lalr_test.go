package lr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowCow/compilercore/grammar"
)

func TestBuildLALR_ParenGrammarHasNoConflicts(t *testing.T) {
	// spec §8 scenario 4: S -> (S) | ε has zero LALR conflicts.
	S := grammar.NT("S")
	g := grammar.New(S, []grammar.Production{
		{Left: S, Right: []grammar.Sym{grammar.T("("), S, grammar.T(")")}},
		{Left: S, Right: nil},
	})

	result := BuildLALR(g)
	assert.Empty(t, result.Table.Conflicts)
}

func TestBuildLALR_ExprAmbiguityHasShiftReduceConflict(t *testing.T) {
	// spec §8 scenario 5: E -> E + E | id has at least one shift/reduce
	// conflict.
	E := grammar.NT("E")
	g := grammar.New(E, []grammar.Production{
		{Left: E, Right: []grammar.Sym{E, grammar.T("+"), E}},
		{Left: E, Right: []grammar.Sym{grammar.T("id")}},
	})

	result := BuildLALR(g)
	require.NotEmpty(t, result.Table.Conflicts)

	foundShiftReduce := false
	for _, c := range result.Table.Conflicts {
		if c.Category() == "shift/reduce" {
			foundShiftReduce = true
		}
	}
	assert.True(t, foundShiftReduce)
}

func TestBuildLALR_ABGrammarKeepsOneReduceReduceConflict(t *testing.T) {
	// spec §8 scenario 6 grammar: S -> aA | aB, A -> b, B -> b. Both A and B
	// derive b, so after shifting 'a' and 'b' the single state
	// {[A -> b·, $], [B -> b·, $]} wants two reductions on $. No two
	// canonical LR(1) states of this grammar share a kernel, so the merge
	// leaves the state count unchanged and never exceeds the LR(1) count.
	S, A, B := grammar.NT("S"), grammar.NT("A"), grammar.NT("B")
	a, b := grammar.T("a"), grammar.T("b")
	g := grammar.New(S, []grammar.Production{
		{Left: S, Right: []grammar.Sym{a, A}},
		{Left: S, Right: []grammar.Sym{a, B}},
		{Left: A, Right: []grammar.Sym{b}},
		{Left: B, Right: []grammar.Sym{b}},
	})

	result := BuildLALR(g)
	assert.LessOrEqual(t, len(result.LALR.States), len(result.LR1.States))
	require.Len(t, result.Table.Conflicts, 1)
	assert.Equal(t, "reduce/reduce", result.Table.Conflicts[0].Category())
}
