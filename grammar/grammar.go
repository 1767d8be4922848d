package grammar

// Grammar is the "grammar loader contract" spec §6 describes: a start
// symbol, an ordered collection of terminals, non-terminals, and
// productions. Declaration order of Productions/NonTerminals/Terminals is
// the deterministic iteration order spec §5 requires for reproducible
// builds — callers should construct a Grammar once and treat it as
// immutable afterward.
type Grammar struct {
	Start        Sym
	Terminals    []Sym
	NonTerminals []Sym
	Productions  []Production
}

// New builds a Grammar, deriving Terminals/NonTerminals from the symbols
// actually mentioned in start and productions, in first-seen declaration
// order ($ and ε are not listed as terminals).
func New(start Sym, productions []Production) Grammar {
	g := Grammar{Start: start, Productions: productions}

	seenT := map[Sym]bool{}
	seenNT := map[Sym]bool{}

	addSym := func(s Sym) {
		if s.Kind == Terminal {
			if s == End || s == Epsilon || seenT[s] {
				return
			}
			seenT[s] = true
			g.Terminals = append(g.Terminals, s)
			return
		}
		if seenNT[s] {
			return
		}
		seenNT[s] = true
		g.NonTerminals = append(g.NonTerminals, s)
	}

	addSym(start)
	for _, p := range productions {
		addSym(p.Left)
		for _, s := range p.Right {
			addSym(s)
		}
	}

	return g
}

// Augment returns the augmented grammar S' -> S (spec §4.5): a fresh
// non-terminal whose name is the start symbol's name plus "'" (with further
// "'" appended while that name is already one of g's non-terminals), and a
// single new production flagged Augmented so callers never need to rely on
// the name convention to recognize it.
func (g Grammar) Augment() (augmented Grammar, startProd Production) {
	primed := NT(g.Start.Name + "'")
	for taken := true; taken; {
		taken = false
		for _, nt := range g.NonTerminals {
			if nt == primed {
				primed = NT(primed.Name + "'")
				taken = true
				break
			}
		}
	}
	startProd = Production{Left: primed, Right: []Sym{g.Start}, Augmented: true}

	augmented = Grammar{
		Start:        primed,
		Terminals:    g.Terminals,
		NonTerminals: append([]Sym{primed}, g.NonTerminals...),
		Productions:  append([]Production{startProd}, g.Productions...),
	}
	return augmented, startProd
}

// ProductionsFor returns every production whose left-hand side is nt, in
// declaration order.
func (g Grammar) ProductionsFor(nt Sym) []Production {
	var out []Production
	for _, p := range g.Productions {
		if p.Left == nt {
			out = append(out, p)
		}
	}
	return out
}
