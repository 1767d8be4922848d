package regex

import "github.com/shadowCow/compilercore/automaton"

// epsilonClosure computes the smallest set of NFA states containing states
// and closed under ε transitions, via a worklist (spec §4.3).
func epsilonClosure(nfa *automaton.NFA, states map[int]bool) map[int]bool {
	closure := make(map[int]bool, len(states))
	var worklist []int
	for id := range states {
		closure[id] = true
		worklist = append(worklist, id)
	}

	for len(worklist) > 0 {
		cur := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for _, t := range nfa.State(cur).Transitions {
			if t.Epsilon && !closure[t.To] {
				closure[t.To] = true
				worklist = append(worklist, t.To)
			}
		}
	}
	return closure
}

// move returns the set of NFA states reachable from states by a transition
// labelled exactly symbol.
func move(nfa *automaton.NFA, states map[int]bool, symbol rune) map[int]bool {
	out := make(map[int]bool)
	for id := range states {
		for _, t := range nfa.State(id).Transitions {
			if !t.Epsilon && t.Symbol == symbol {
				out[t.To] = true
			}
		}
	}
	return out
}

// acceptingInfo derives whether a set of NFA states is accepting, and if so
// the token type of the winning member: minimum priority, ties broken by
// lowest id (spec §4.3).
func acceptingInfo(nfa *automaton.NFA, set []int) (accepting bool, tokenType string) {
	bestPriority := automaton.MaxPriority + 1
	bestID := -1
	for _, id := range set {
		s := nfa.State(id)
		if !s.Accepting {
			continue
		}
		if s.Priority < bestPriority || (s.Priority == bestPriority && id < bestID) {
			bestPriority = s.Priority
			bestID = id
			accepting = true
			tokenType = s.TokenType
		}
	}
	return accepting, tokenType
}

// subsetConstruct converts nfa to a DFA over alphabet via subset
// construction (spec §4.3). alphabet order determines discovery order of
// new DFA states, which in turn determines emitted state ids — callers that
// need reproducible ids across runs must pass a deterministic alphabet
// order.
func subsetConstruct(nfa *automaton.NFA, alphabet []rune) *automaton.DFA {
	startSet := epsilonClosure(nfa, map[int]bool{nfa.Start: true})
	startName := automaton.SortedSetFromBits(startSet)

	dfa := &automaton.DFA{}
	byName := map[string]int{}

	newState := func(name []int) int {
		id := len(dfa.States)
		accepting, tokenType := acceptingInfo(nfa, name)
		st := &automaton.DFAState{
			ID:          id,
			Name:        name,
			Transitions: make(map[rune]int),
			Accepting:   accepting,
			TokenType:   tokenType,
		}
		dfa.States = append(dfa.States, st)
		byName[automaton.NameKey(name)] = id
		return id
	}

	startID := newState(startName)
	dfa.Start = startID

	type pending struct {
		id  int
		set map[int]bool
	}
	queue := []pending{{id: startID, set: startSet}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, a := range alphabet {
			moved := move(nfa, cur.set, a)
			if len(moved) == 0 {
				continue
			}
			closure := epsilonClosure(nfa, moved)
			name := automaton.SortedSetFromBits(closure)
			key := automaton.NameKey(name)

			targetID, exists := byName[key]
			if !exists {
				targetID = newState(name)
				queue = append(queue, pending{id: targetID, set: closure})
			}
			dfa.States[cur.id].Transitions[a] = targetID
		}
	}

	return dfa
}
