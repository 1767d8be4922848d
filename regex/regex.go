// Package regex compiles an infix regular expression (spec §6 operator
// alphabet: | * ? + ( ) ·) through Thompson construction, subset
// construction, and table-filling minimization into a minimized DFA
// (components C2–C5).
package regex

import (
	"github.com/shadowCow/compilercore/automaton"
	"github.com/shadowCow/compilercore/internal/diag"
)

// Regex is a compiled, minimized automaton for one pattern.
type Regex struct {
	Pattern string
	Postfix string
	DFA     *automaton.DFA
}

// Compile runs the full regex pipeline: preprocess, Thompson construction,
// subset construction over the pattern's own operand alphabet, then
// minimization.
func Compile(pattern string) (*Regex, error) {
	postfix, err := ToPostfix(pattern)
	if err != nil {
		return nil, err
	}

	builder, frag, err := buildNFA(postfix)
	if err != nil {
		return nil, err
	}
	builder.MarkAccepting(frag.End, "", 0)
	nfa := builder.Build(frag.Start)

	alphabet := operandAlphabet(pattern)
	dfa := subsetConstruct(nfa, alphabet)
	minimized := minimizeDFA(dfa, alphabet)

	diag.L().Debugw("compiled regex",
		"pattern", pattern,
		"postfix", postfix,
		"nfa_states", len(nfa.States),
		"dfa_states", len(dfa.States),
		"minimized_states", len(minimized.States),
	)

	return &Regex{Pattern: pattern, Postfix: postfix, DFA: minimized}, nil
}

// MatchString reports whether the whole of s is accepted by the compiled
// DFA (spec §8: subset construction / minimization soundness properties).
func (r *Regex) MatchString(s string) bool {
	return r.DFA.Accepts(s)
}

// operandAlphabet collects the distinct operand (non-operator) runes that
// appear in pattern, in first-seen order — the deterministic alphabet
// iteration order spec §5 requires for reproducible state ids.
func operandAlphabet(pattern string) []rune {
	seen := make(map[rune]bool)
	var order []rune
	for _, r := range pattern {
		if isOperand(r) && r != opConcat && !seen[r] {
			seen[r] = true
			order = append(order, r)
		}
	}
	return order
}
