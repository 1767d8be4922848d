package lr

import (
	"sort"
	"strings"

	"github.com/shadowCow/compilercore/grammar"
)

// LALRCollection is the canonical LR(1) collection collapsed by kernel
// equivalence (spec §4.6). Transitions mirror Collection's shape.
type LALRCollection struct {
	States      []State
	Transitions []map[grammar.Sym]int
	Initial     int
}

// kernelSetKey canonicalizes a kernel set the same way State.key
// canonicalizes an item set, so kernel-equivalent LR(1) states collide to
// the same group key regardless of item order.
func kernelSetKey(kernels map[Kernel]bool) string {
	keys := make([]string, 0, len(kernels))
	for k := range kernels {
		keys = append(keys, k.Key())
	}
	sort.Strings(keys)
	return strings.Join(keys, "\x1f")
}

// MergeLALR groups LR(1) states by kernel equivalence and builds one LALR
// state per group: for each kernel present in the group, one kernel item per
// lookahead in the union of lookaheads attached to that kernel across every
// state in the group (spec §4.6). The unioned kernel items are then re-closed
// with Closure so the group's non-kernel items — in particular completed
// items produced by ε-productions, which never qualify as kernel items (see
// Item.IsKernelItem) — are present with their correct (unioned) lookaheads
// instead of silently dropped. The initial state's kernel is the augmented
// start item (a kernel item by convention, see Item.IsKernelItem), so it is
// included in the general grouping pass rather than special-cased.
func MergeLALR(g grammar.Grammar, first *grammar.FirstSets, col *Collection) *LALRCollection {
	groupOf := make([]int, len(col.States)) // LR(1) state id -> LALR group id
	groupKeyToID := map[string]int{}
	var groupKernels []map[Kernel]bool

	for i, s := range col.States {
		kernels := s.Kernels()
		key := kernelSetKey(kernels)
		gid, ok := groupKeyToID[key]
		if !ok {
			gid = len(groupKernels)
			groupKeyToID[key] = gid
			groupKernels = append(groupKernels, kernels)
		}
		groupOf[i] = gid
	}

	// For each group, union the lookaheads attached to each kernel across
	// every member state.
	lookaheadsByKernel := make([]map[Kernel]map[grammar.Sym]bool, len(groupKernels))
	for gi := range lookaheadsByKernel {
		lookaheadsByKernel[gi] = map[Kernel]map[grammar.Sym]bool{}
	}
	for i, s := range col.States {
		gi := groupOf[i]
		for _, it := range s.Items {
			k := it.Kernel()
			set, ok := lookaheadsByKernel[gi][k]
			if !ok {
				set = map[grammar.Sym]bool{}
				lookaheadsByKernel[gi][k] = set
			}
			set[it.Lookahead] = true
		}
	}

	out := &LALRCollection{}
	for grp, kernels := range groupKernels {
		var kernelItems []Item
		for k := range kernels {
			for la := range lookaheadsByKernel[grp][k] {
				kernelItems = append(kernelItems, Item{Prod: k.Prod, Dot: k.Dot, Lookahead: la})
			}
		}
		// Re-close: the merge above only unions lookaheads over kernel
		// items, so non-kernel items (e.g. completed ε-production items)
		// and their lookaheads must be rederived here, not carried over
		// from the per-state LR(1) closures.
		out.States = append(out.States, Closure(g, first, kernelItems))
		out.Transitions = append(out.Transitions, map[grammar.Sym]int{})
	}

	for i, trans := range col.Transitions {
		srcGroup := groupOf[i]
		for x, j := range trans {
			dstGroup := groupOf[j]
			out.Transitions[srcGroup][x] = dstGroup // duplicates coalesce: same key, same value
		}
	}

	out.Initial = groupOf[0]
	return out
}
