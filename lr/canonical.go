package lr

import "github.com/shadowCow/compilercore/grammar"

// Collection is the canonical LR(1) collection: a list of distinct states
// (by set equality) plus the GOTO transitions discovered between them,
// stored as state-index -> symbol -> state-index (spec §4.5).
type Collection struct {
	States      []State
	Transitions []map[grammar.Sym]int
}

// Closure computes CLOSURE(I) (spec §4.5): a worklist algorithm that, for
// every item [A -> α · B β, a] with B a non-terminal, adds [B -> · γ, b]
// for every production B -> γ and every b in FIRST(βa).
func Closure(g grammar.Grammar, first *grammar.FirstSets, items []Item) State {
	seen := map[string]bool{}
	var out []Item

	add := func(it Item) bool {
		k := it.Key()
		if seen[k] {
			return false
		}
		seen[k] = true
		out = append(out, it)
		return true
	}

	var worklist []Item
	for _, it := range items {
		if add(it) {
			worklist = append(worklist, it)
		}
	}

	for len(worklist) > 0 {
		it := worklist[0]
		worklist = worklist[1:]

		b, ok := it.NextSymbol()
		if !ok || b.Kind != grammar.NonTerminal {
			continue
		}

		beta := it.Prod.Right[it.Dot+1:]
		lookaheads, _ := first.FirstOfSequence(append(append([]grammar.Sym{}, beta...), it.Lookahead))

		for _, prod := range g.ProductionsFor(b) {
			for la := range lookaheads {
				newItem := Item{Prod: prod, Dot: 0, Lookahead: la}
				if add(newItem) {
					worklist = append(worklist, newItem)
				}
			}
		}
	}

	return State{Items: out}
}

// Goto computes GOTO(I, X) (spec §4.5): advance every item in I whose next
// symbol is X, then close the result.
func Goto(g grammar.Grammar, first *grammar.FirstSets, state State, x grammar.Sym) State {
	var advanced []Item
	for _, it := range state.Items {
		next, ok := it.NextSymbol()
		if ok && next == x {
			advanced = append(advanced, it.Advance())
		}
	}
	return Closure(g, first, advanced)
}

// BuildCollection builds the canonical LR(1) collection for augmented
// grammar g (which must already be Grammar.Augment's result) starting from
// CLOSURE({[S' -> ·S, $]}) (spec §4.5). Symbol iteration order is
// terminals-then-non-terminals in g's declaration order, giving
// reproducible state ids and transition tables for a fixed grammar.
func BuildCollection(g grammar.Grammar, startProd grammar.Production, first *grammar.FirstSets) *Collection {
	startItem := Item{Prod: startProd, Dot: 0, Lookahead: grammar.End}
	initial := Closure(g, first, []Item{startItem})

	col := &Collection{}
	index := map[string]int{}

	addState := func(s State) (int, bool) {
		k := s.key()
		if id, ok := index[k]; ok {
			return id, false
		}
		id := len(col.States)
		index[k] = id
		col.States = append(col.States, s)
		col.Transitions = append(col.Transitions, map[grammar.Sym]int{})
		return id, true
	}

	symbols := allSymbols(g)

	id, _ := addState(initial)
	var worklist []int
	worklist = append(worklist, id)

	for len(worklist) > 0 {
		i := worklist[0]
		worklist = worklist[1:]

		for _, x := range symbols {
			j := Goto(g, first, col.States[i], x)
			if len(j.Items) == 0 {
				continue
			}
			jID, isNew := addState(j)
			col.Transitions[i][x] = jID
			if isNew {
				worklist = append(worklist, jID)
			}
		}
	}

	return col
}

// allSymbols returns terminals followed by non-terminals, in g's
// declaration order — the deterministic grammar-symbol iteration order
// spec §5 requires.
func allSymbols(g grammar.Grammar) []grammar.Sym {
	out := make([]grammar.Sym, 0, len(g.Terminals)+len(g.NonTerminals))
	out = append(out, g.Terminals...)
	out = append(out, g.NonTerminals...)
	return out
}
