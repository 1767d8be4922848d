package regex

import "github.com/shadowCow/compilercore/automaton"

// TokenDef describes one lexer token: the regex Pattern that recognizes it,
// its TokenType tag, and a Priority used to break ties when several
// patterns match the same input (lower wins, matching spec §4.3's NFA
// accepting-state tie-break).
type TokenDef struct {
	TokenType string
	Pattern   string
	Priority  int
}

// BuildLexerDFA wires the spec's union(list of NFAs) entry point (§4.2) into
// a concrete producer for the token contract §6 describes but leaves
// external: each definition is Thompson-compiled independently, its accept
// state tagged with its token type and priority, the resulting NFAs are
// combined with automaton.Union, and the union is subset-constructed and
// minimized into one DFA whose accepting states carry the winning token
// type. Grounded on the teacher's CompileLexicalGrammar/combineNFAs
// (lang/automata/compiler.go), generalized from EBNF lexical patterns to
// raw infix regex strings.
func BuildLexerDFA(defs []TokenDef) (*automaton.DFA, error) {
	var fragments []*automaton.NFA
	alphabetSeen := make(map[rune]bool)
	var alphabet []rune

	for _, def := range defs {
		postfix, err := ToPostfix(def.Pattern)
		if err != nil {
			return nil, err
		}
		builder, frag, err := buildNFA(postfix)
		if err != nil {
			return nil, err
		}
		builder.MarkAccepting(frag.End, def.TokenType, def.Priority)
		fragments = append(fragments, builder.Build(frag.Start))

		for _, r := range operandAlphabet(def.Pattern) {
			if !alphabetSeen[r] {
				alphabetSeen[r] = true
				alphabet = append(alphabet, r)
			}
		}
	}

	if len(fragments) == 0 {
		return subsetConstruct(automaton.Union(nil), nil), nil
	}

	combined := automaton.Union(fragments)
	dfa := subsetConstruct(combined, alphabet)
	return minimizeDFA(dfa, alphabet), nil
}
