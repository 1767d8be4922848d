package grammar

// FirstSets holds the FIRST set of every symbol in a grammar (spec §4.5).
type FirstSets struct {
	sets map[Sym]map[Sym]bool
}

// Get returns FIRST(symbol). For a terminal this is always {symbol}; for $
// it is {$}.
func (fs *FirstSets) Get(symbol Sym) map[Sym]bool {
	if symbol.Kind == Terminal {
		return map[Sym]bool{symbol: true}
	}
	if set, ok := fs.sets[symbol]; ok {
		return set
	}
	return map[Sym]bool{}
}

// ComputeFirstSets computes FIRST sets for every non-terminal in g by
// iterating productions to a fixed point (spec §4.5): for A -> X1...Xn, add
// FIRST(Xi)\{ε} up to (and including) the first Xi whose FIRST doesn't
// contain ε; if every Xi is nullable (or the production is empty), add ε to
// FIRST(A).
func ComputeFirstSets(g Grammar) *FirstSets {
	fs := &FirstSets{sets: map[Sym]map[Sym]bool{}}
	for _, nt := range g.NonTerminals {
		fs.sets[nt] = map[Sym]bool{}
	}

	for changed := true; changed; {
		changed = false
		for _, p := range g.Productions {
			before := len(fs.sets[p.Left])
			nullableBefore := fs.sets[p.Left][Epsilon]

			firstOfRHS, nullable := fs.FirstOfSequence(p.Right)
			for t := range firstOfRHS {
				if t != Epsilon {
					fs.sets[p.Left][t] = true
				}
			}
			if nullable {
				fs.sets[p.Left][Epsilon] = true
			}

			if len(fs.sets[p.Left]) != before || fs.sets[p.Left][Epsilon] != nullableBefore {
				changed = true
			}
		}
	}

	return fs
}

// FirstOfSequence computes FIRST(X1...Xk) (spec §4.5): accumulate non-ε
// members of FIRST(Xi) until one lacks ε; if every Xi contains ε (including
// the empty sequence), the sequence itself is nullable.
func (fs *FirstSets) FirstOfSequence(seq []Sym) (map[Sym]bool, bool) {
	result := map[Sym]bool{}
	if len(seq) == 0 {
		return result, true
	}

	for _, x := range seq {
		firstX := fs.Get(x)
		nullableX := firstX[Epsilon]
		for t := range firstX {
			if t != Epsilon {
				result[t] = true
			}
		}
		if !nullableX {
			return result, false
		}
	}
	return result, true
}

// IsNullable reports whether symbol can derive ε.
func (fs *FirstSets) IsNullable(symbol Sym) bool {
	if symbol.Kind == Terminal {
		return false
	}
	return fs.sets[symbol][Epsilon]
}
