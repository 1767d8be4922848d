// Package lr builds the canonical LR(1) collection for an augmented
// grammar (C6), merges it into an LALR(1) automaton and fills its
// ACTION/GOTO table (C7) — spec §4.5, §4.6.
package lr

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shadowCow/compilercore/grammar"
)

// Item is an LR(1) item: a triple (production, dot position, lookahead
// terminal). Equality and hashing are structural on all three (spec §3).
type Item struct {
	Prod      grammar.Production
	Dot       int
	Lookahead grammar.Sym
}

// Kernel is an item stripped of its lookahead: (production, dot position).
// Two LR(1) states belong to the same LALR class iff their kernel sets are
// equal (spec §4.6).
type Kernel struct {
	Prod grammar.Production
	Dot  int
}

// Kernel returns it without its lookahead.
func (it Item) Kernel() Kernel {
	return Kernel{Prod: it.Prod, Dot: it.Dot}
}

// IsStarter reports whether the dot is at position 0 (spec §3).
func (it Item) IsStarter() bool {
	return it.Dot == 0
}

// IsKernelItem reports whether dot > 0, or the item is the augmented start
// item (which is a kernel item by convention even at dot 0).
func (it Item) IsKernelItem() bool {
	return it.Dot > 0 || it.Prod.Augmented
}

// AtEnd reports whether the dot has reached the end of the production's
// right-hand side.
func (it Item) AtEnd() bool {
	return it.Dot >= len(it.Prod.Right)
}

// NextSymbol returns the symbol immediately after the dot, if any.
func (it Item) NextSymbol() (grammar.Sym, bool) {
	if it.AtEnd() {
		return grammar.Sym{}, false
	}
	return it.Prod.Right[it.Dot], true
}

// Advance returns the item with the dot moved one position to the right.
func (it Item) Advance() Item {
	return Item{Prod: it.Prod, Dot: it.Dot + 1, Lookahead: it.Lookahead}
}

// Key returns a string uniquely identifying this item by structural
// content, for use as a map key.
func (it Item) Key() string {
	var b strings.Builder
	b.WriteString(it.Prod.Key())
	b.WriteByte(0)
	b.WriteString(strconv.Itoa(it.Dot))
	b.WriteByte(0)
	b.WriteString(it.Lookahead.Name)
	return b.String()
}

// Key returns a string uniquely identifying this kernel.
func (k Kernel) Key() string {
	return k.Prod.Key() + "#" + strconv.Itoa(k.Dot)
}

// State is a set of LR(1) items; its identity is structural equality of
// that set (spec §3).
type State struct {
	Items []Item
}

// key canonicalizes the item set into a sorted, deduplicated string so two
// States with the same items (in any order) compare equal.
func (s State) key() string {
	keys := make([]string, 0, len(s.Items))
	for _, it := range s.Items {
		keys = append(keys, it.Key())
	}
	sort.Strings(keys)
	return strings.Join(keys, "\x1f")
}

// Kernels returns the kernel set of this state: kernel items' (production,
// dot) pairs with dot > 0, union the augmented start item if present (spec
// §4.6).
func (s State) Kernels() map[Kernel]bool {
	out := map[Kernel]bool{}
	for _, it := range s.Items {
		if it.IsKernelItem() {
			out[it.Kernel()] = true
		}
	}
	return out
}
