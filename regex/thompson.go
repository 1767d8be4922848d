package regex

import "github.com/shadowCow/compilercore/automaton"

// buildNFA runs Thompson construction (spec §4.2) over a postfix token
// stream, maintaining a stack of fragments in a single shared arena so that
// concatenation and alternation never need to renumber ids — only Union
// (used to combine independently-built per-pattern NFAs for a lexer table)
// needs that.
func buildNFA(postfix string) (*automaton.Builder, automaton.Fragment, error) {
	b := automaton.NewBuilder()
	var stack []automaton.Fragment

	pop := func() automaton.Fragment {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return top
	}

	for _, r := range postfix {
		switch r {
		case opConcat:
			if len(stack) < 2 {
				return nil, automaton.Fragment{}, newSyntaxError(postfix, "concatenation missing operand")
			}
			rhs := pop()
			lhs := pop()
			b.AddEpsilon(lhs.End, rhs.Start)
			stack = append(stack, automaton.Fragment{Start: lhs.Start, End: rhs.End})

		case opAlt:
			if len(stack) < 2 {
				return nil, automaton.Fragment{}, newSyntaxError(postfix, "alternation missing operand")
			}
			rhs := pop()
			lhs := pop()
			s := b.AddState()
			e := b.AddState()
			b.AddEpsilon(s, lhs.Start)
			b.AddEpsilon(s, rhs.Start)
			b.AddEpsilon(lhs.End, e)
			b.AddEpsilon(rhs.End, e)
			stack = append(stack, automaton.Fragment{Start: s, End: e})

		case opStar:
			if len(stack) < 1 {
				return nil, automaton.Fragment{}, newSyntaxError(postfix, "'*' missing operand")
			}
			a := pop()
			s := b.AddState()
			e := b.AddState()
			b.AddEpsilon(s, a.Start)
			b.AddEpsilon(s, e)
			b.AddEpsilon(a.End, a.Start)
			b.AddEpsilon(a.End, e)
			stack = append(stack, automaton.Fragment{Start: s, End: e})

		case opPlus:
			if len(stack) < 1 {
				return nil, automaton.Fragment{}, newSyntaxError(postfix, "'+' missing operand")
			}
			a := pop()
			s := b.AddState()
			e := b.AddState()
			b.AddEpsilon(s, a.Start)
			b.AddEpsilon(a.End, a.Start)
			b.AddEpsilon(a.End, e)
			stack = append(stack, automaton.Fragment{Start: s, End: e})

		case opQuestion:
			if len(stack) < 1 {
				return nil, automaton.Fragment{}, newSyntaxError(postfix, "'?' missing operand")
			}
			a := pop()
			s := b.AddState()
			e := b.AddState()
			b.AddEpsilon(s, a.Start)
			b.AddEpsilon(s, e)
			b.AddEpsilon(a.End, e)
			stack = append(stack, automaton.Fragment{Start: s, End: e})

		case opLParen, opRParen:
			return nil, automaton.Fragment{}, newSyntaxError(postfix, "unexpected parenthesis in postfix stream")

		default:
			s := b.AddState()
			e := b.AddState()
			b.AddSymbol(s, r, e)
			stack = append(stack, automaton.Fragment{Start: s, End: e})
		}
	}

	if len(stack) != 1 {
		return nil, automaton.Fragment{}, newSyntaxError(postfix, "postfix stack did not reduce to one fragment")
	}

	return b, stack[0], nil
}
