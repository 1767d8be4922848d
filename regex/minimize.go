package regex

import "github.com/shadowCow/compilercore/automaton"

type statePair struct {
	lo, hi int // canonicalized: lo < hi
}

func canonPair(a, b int) statePair {
	if a < b {
		return statePair{a, b}
	}
	return statePair{b, a}
}

// unionFind is a standard union-find with path compression, used to collapse
// table-filling equivalence classes (spec §4.4 step 4).
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{parent: p}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	// lower id as root keeps "lowest id" a stable representative pick.
	if ra < rb {
		u.parent[rb] = ra
	} else {
		u.parent[ra] = rb
	}
}

// minimizeDFA implements table-filling equivalence (spec §4.4): every pair of
// distinct states is marked distinguishable iff their acceptance differs, or
// iff they transition (on some alphabet symbol) to a distinguishable pair,
// iterated to a fixed point. Surviving pairs are merged via union-find; each
// class's representative is its lowest-id member.
func minimizeDFA(dfa *automaton.DFA, alphabet []rune) *automaton.DFA {
	n := len(dfa.States)
	distinguishable := make(map[statePair]bool)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if dfa.States[i].Accepting != dfa.States[j].Accepting {
				distinguishable[statePair{i, j}] = true
			}
		}
	}

	for changed := true; changed; {
		changed = false
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				pair := statePair{i, j}
				if distinguishable[pair] {
					continue
				}
				for _, a := range alphabet {
					pi, oki := dfa.States[i].Transitions[a]
					pj, okj := dfa.States[j].Transitions[a]
					if !oki && !okj {
						continue
					}
					if oki != okj {
						distinguishable[pair] = true
						changed = true
						break
					}
					if distinguishable[canonPair(pi, pj)] {
						distinguishable[pair] = true
						changed = true
						break
					}
				}
			}
		}
	}

	uf := newUnionFind(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !distinguishable[statePair{i, j}] {
				uf.union(i, j)
			}
		}
	}

	// Map each original state to its class representative, then renumber
	// representatives to dense ids in ascending representative order.
	repOf := make([]int, n)
	for i := 0; i < n; i++ {
		repOf[i] = uf.find(i)
	}
	repToNewID := map[int]int{}
	var reps []int
	for i := 0; i < n; i++ {
		r := repOf[i]
		if _, ok := repToNewID[r]; !ok {
			repToNewID[r] = len(reps)
			reps = append(reps, r)
		}
	}

	out := &automaton.DFA{Start: repToNewID[repOf[dfa.Start]]}
	for _, r := range reps {
		rep := dfa.States[r]

		// Accepting / token type are decided across the whole class, not
		// just the representative: "accepting" is "any member accepts", and
		// the token type is taken from the lowest-id accepting member. DFA
		// states don't carry NFA priority, so priority plays no part here.
		accepting := false
		tokenType := ""
		bestID := -1
		for i := 0; i < n; i++ {
			if repOf[i] != r {
				continue
			}
			if dfa.States[i].Accepting && (bestID == -1 || i < bestID) {
				accepting = true
				tokenType = dfa.States[i].TokenType
				bestID = i
			}
		}

		transitions := make(map[rune]int, len(rep.Transitions))
		for a, to := range rep.Transitions {
			transitions[a] = repToNewID[repOf[to]]
		}

		out.States = append(out.States, &automaton.DFAState{
			ID:          repToNewID[r],
			Name:        rep.Name,
			Transitions: transitions,
			Accepting:   accepting,
			TokenType:   tokenType,
		})
	}

	return out
}
