package automaton

import (
	"sort"
	"strconv"
	"strings"
)

// DFAState is a state of a deterministic automaton. Its identity is the set
// of NFA states it names; Id is an assigned integer used only for stable
// ordering and as a minimization representative, never for equality.
type DFAState struct {
	ID          int
	Name        []int // sorted, canonical NFA-state set
	Transitions map[rune]int
	Accepting   bool
	TokenType   string
}

// DFA is the result of subset construction (possibly followed by
// minimization): a start state plus every state reachable from it, in
// discovery order.
type DFA struct {
	Start  int
	States []*DFAState
}

// State returns the state for id.
func (d *DFA) State(id int) *DFAState {
	return d.States[id]
}

// Step returns the destination state id for (state, symbol), or (-1, false)
// if no such transition exists — DFA transitions are functional, so there is
// at most one destination per (state, symbol) pair.
func (d *DFA) Step(state int, symbol rune) (int, bool) {
	to, ok := d.States[state].Transitions[symbol]
	if !ok {
		return -1, false
	}
	return to, true
}

// Accepts runs w against the DFA from its start state, consuming the whole
// string before checking acceptance.
func (d *DFA) Accepts(w string) bool {
	cur := d.Start
	for _, r := range w {
		next, ok := d.Step(cur, r)
		if !ok {
			return false
		}
		cur = next
	}
	return d.States[cur].Accepting
}

// NameKey canonicalizes an NFA-state set into a string suitable as a map key:
// a sorted list of ids, so two sets with the same members always collide to
// the same key regardless of discovery order. Exported for use by regex's
// subset construction, which builds DFAState.Name sets outside this package.
func NameKey(name []int) string {
	if len(name) == 0 {
		return ""
	}
	parts := make([]string, len(name))
	for i, id := range name {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// SortedSetFromBits converts a set membership map into a canonical sorted
// slice. Exported for the same reason as NameKey.
func SortedSetFromBits(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
