package lr

import "github.com/shadowCow/compilercore/grammar"

// ActionKind distinguishes the three driver actions (spec §4.7, Glossary).
type ActionKind int

const (
	Shift ActionKind = iota
	Reduce
	Accept
)

func (k ActionKind) String() string {
	switch k {
	case Shift:
		return "shift"
	case Reduce:
		return "reduce"
	case Accept:
		return "accept"
	default:
		return "unknown"
	}
}

// Action is one ACTION table cell.
type Action struct {
	Kind  ActionKind
	State int                // target state, for Shift
	Prod  grammar.Production // production to reduce by, for Reduce
}

// Conflict records an attempted overwrite of an ACTION cell during table
// fill (spec §4.6): a state and symbol wanted by two distinct actions.
type Conflict struct {
	State    int
	Symbol   grammar.Sym
	Existing ActionKind
	New      ActionKind
}

// Category classifies a conflict: shift/reduce, reduce/reduce, or the rare
// accept conflict.
func (c Conflict) Category() string {
	switch {
	case c.Existing == Shift && c.New == Reduce, c.Existing == Reduce && c.New == Shift:
		return "shift/reduce"
	case c.Existing == Reduce && c.New == Reduce:
		return "reduce/reduce"
	default:
		return "accept"
	}
}

// Table is the ACTION/GOTO table produced by FillTable (spec §4.6, §6):
// ACTION maps (state, terminal) -> {Shift|Reduce|Accept}; GOTO maps (state,
// non-terminal) -> state. Conflicted cells keep their first-written action
// (first-wins — spec.md leaves this unspecified; DESIGN.md records the
// choice) so the table is still consultable for inspection.
type Table struct {
	Action    map[int]map[grammar.Sym]Action
	Goto      map[int]map[grammar.Sym]int
	Initial   int
	Conflicts []Conflict
}

// FillTable builds ACTION/GOTO from a merged LALR collection (spec §4.6).
// LALR build never fails outright — conflicts are recorded, never thrown.
func FillTable(lalr *LALRCollection) *Table {
	t := &Table{
		Action:  make(map[int]map[grammar.Sym]Action),
		Goto:    make(map[int]map[grammar.Sym]int),
		Initial: lalr.Initial,
	}

	addAction := func(state int, sym grammar.Sym, action Action) {
		if t.Action[state] == nil {
			t.Action[state] = map[grammar.Sym]Action{}
		}
		if existing, ok := t.Action[state][sym]; ok {
			if existing.Kind != action.Kind || existing.State != action.State || !existing.Prod.Equal(action.Prod) {
				t.Conflicts = append(t.Conflicts, Conflict{
					State:    state,
					Symbol:   sym,
					Existing: existing.Kind,
					New:      action.Kind,
				})
			}
			return // first-wins: never overwrite
		}
		t.Action[state][sym] = action
	}

	for s, trans := range lalr.Transitions {
		for x, target := range trans {
			if x.Kind == grammar.Terminal {
				addAction(s, x, Action{Kind: Shift, State: target})
			} else {
				if t.Goto[s] == nil {
					t.Goto[s] = map[grammar.Sym]int{}
				}
				t.Goto[s][x] = target
			}
		}
	}

	for s, state := range lalr.States {
		for _, it := range state.Items {
			if !it.AtEnd() {
				continue
			}
			if it.Prod.Augmented && it.Lookahead == grammar.End {
				addAction(s, grammar.End, Action{Kind: Accept})
				continue
			}
			addAction(s, it.Lookahead, Action{Kind: Reduce, Prod: it.Prod})
		}
	}

	return t
}
