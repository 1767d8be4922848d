package lr

import (
	"github.com/shadowCow/compilercore/grammar"
	"github.com/shadowCow/compilercore/internal/diag"
)

// Result bundles everything BuildLALR produces: the canonical LR(1)
// collection (useful for §8's "LALR state count <= LR(1) state count"
// property and for debugging), the merged LALR collection, and the filled
// ACTION/GOTO table.
type Result struct {
	LR1   *Collection
	LALR  *LALRCollection
	Table *Table
}

// BuildLALR runs the full grammar pipeline (spec §4.5, §4.6): augment,
// compute FIRST sets, build the canonical LR(1) collection, merge it by
// kernel equivalence into LALR states, and fill ACTION/GOTO. It never fails;
// conflicts are recorded on the returned Table.
func BuildLALR(g grammar.Grammar) *Result {
	augmented, startProd := g.Augment()
	first := grammar.ComputeFirstSets(augmented)

	lr1 := BuildCollection(augmented, startProd, first)
	lalr := MergeLALR(augmented, first, lr1)
	table := FillTable(lalr)

	diag.L().Debugw("compiled grammar to LALR(1)",
		"lr1_states", len(lr1.States),
		"lalr_states", len(lalr.States),
		"conflicts", len(table.Conflicts),
	)
	for _, c := range table.Conflicts {
		diag.L().Debugw("parse table conflict",
			"state", c.State, "symbol", c.Symbol.Name, "category", c.Category())
	}

	return &Result{LR1: lr1, LALR: lalr, Table: table}
}
