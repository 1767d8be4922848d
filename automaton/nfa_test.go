package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_AddStateAssignsMonotonicIDs(t *testing.T) {
	b := NewBuilder()
	s0 := b.AddState()
	s1 := b.AddState()
	assert.Equal(t, 0, s0)
	assert.Equal(t, 1, s1)
	assert.Equal(t, 2, b.Len())
}

func TestBuilder_MarkAcceptingSetsPriorityAndTokenType(t *testing.T) {
	b := NewBuilder()
	s := b.AddState()
	assert.Equal(t, MaxPriority, b.State(s).Priority)

	b.MarkAccepting(s, "IDENT", 3)
	assert.True(t, b.State(s).Accepting)
	assert.Equal(t, "IDENT", b.State(s).TokenType)
	assert.Equal(t, 3, b.State(s).Priority)
}

func TestBuilder_EpsilonBackEdgeDoesNotRequireOwnershipCycle(t *testing.T) {
	// Kleene star introduces a back-edge from the loop end to the loop
	// start; since states are addressed by id rather than by pointer, this
	// is just another transition entry, not a structural cycle.
	b := NewBuilder()
	start := b.AddState()
	loop := b.AddState()
	b.AddSymbol(start, 'a', loop)
	b.AddEpsilon(loop, start)

	nfa := b.Build(start)
	assert.Len(t, nfa.State(loop).Transitions, 1)
	assert.Equal(t, start, nfa.State(loop).Transitions[0].To)
	assert.True(t, nfa.State(loop).Transitions[0].Epsilon)
}

func TestUnion_RenumbersStatesWithoutCollision(t *testing.T) {
	b1 := NewBuilder()
	s1Start := b1.AddState()
	s1End := b1.AddState()
	b1.AddSymbol(s1Start, 'a', s1End)
	b1.MarkAccepting(s1End, "A", 0)
	n1 := b1.Build(s1Start)

	b2 := NewBuilder()
	s2Start := b2.AddState()
	s2End := b2.AddState()
	b2.AddSymbol(s2Start, 'b', s2End)
	b2.MarkAccepting(s2End, "B", 1)
	n2 := b2.Build(s2Start)

	merged := Union([]*NFA{n1, n2})

	// fresh start + 2 states from n1 + 2 states from n2
	assert.Len(t, merged.States, 5)
	assert.Len(t, merged.State(merged.Start).Transitions, 2)
	for _, tr := range merged.State(merged.Start).Transitions {
		assert.True(t, tr.Epsilon)
	}

	var tokenTypes []string
	for _, s := range merged.States {
		if s.Accepting {
			tokenTypes = append(tokenTypes, s.TokenType)
		}
	}
	assert.ElementsMatch(t, []string{"A", "B"}, tokenTypes)
}

func TestUnion_EmptyInputYieldsSingleNonAcceptingState(t *testing.T) {
	merged := Union(nil)
	assert.Len(t, merged.States, 1)
	assert.False(t, merged.State(merged.Start).Accepting)
}
