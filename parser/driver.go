package parser

import (
	"fmt"

	"github.com/shadowCow/compilercore/grammar"
	"github.com/shadowCow/compilercore/lr"
)

// Driver is the stack-based shift-reduce parser (spec §4.7): an integer
// state stack seeded with the table's initial state, and an input cursor
// over a token stream with a sentinel $ appended.
type Driver struct {
	table *lr.Table
}

// NewDriver wraps an LALR(1) table built by lr.BuildLALR/lr.FillTable.
func NewDriver(table *lr.Table) *Driver {
	return &Driver{table: table}
}

// SyntaxError reports the position of the token that caused parsing to
// fail. The driver performs no error recovery (spec §1, §7): the first
// failure terminates parsing.
type SyntaxError struct {
	Position int
	Symbol   string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at token %d: unexpected %q", e.Position, e.Symbol)
}

// Run executes the driver over tokens, building a parse tree as it reduces.
// It reports true/nil on ACCEPT, or false/*SyntaxError on the first
// unrecoverable state (spec §4.7, §7). Popping an empty stack or a missing
// GOTO entry during reduction is an internal invariant breach (spec §7) and
// panics rather than returning an error — it means the table itself is
// malformed, not that the input is rejected.
func (d *Driver) Run(tokens []Token) (bool, *Node, error) {
	stack := []int{d.table.Initial}
	var nodes []*Node

	cursor := 0
	peek := func() (Token, grammar.Sym) {
		if cursor >= len(tokens) {
			return nil, grammar.End
		}
		t := tokens[cursor]
		return t, grammar.Sym{Name: symbolOf(t), Kind: grammar.Terminal}
	}

	for {
		top := stack[len(stack)-1]
		tok, sym := peek()

		action, ok := d.table.Action[top][sym]
		if !ok {
			pos := cursor
			lexeme := "$"
			if tok != nil {
				lexeme = symbolOf(tok)
			}
			return false, nil, &SyntaxError{Position: pos, Symbol: lexeme}
		}

		switch action.Kind {
		case lr.Shift:
			stack = append(stack, action.State)
			if tok != nil {
				nodes = append(nodes, &Node{Terminal: true, Token: tok})
			}
			cursor++

		case lr.Reduce:
			n := len(action.Prod.Right)
			var children []*Node
			if n > 0 {
				children = append(children, nodes[len(nodes)-n:]...)
				stack = stack[:len(stack)-n]
				nodes = nodes[:len(nodes)-n]
			}
			newTop := stack[len(stack)-1]
			target, ok := d.table.Goto[newTop][action.Prod.Left]
			if !ok {
				panic(fmt.Sprintf("internal error: missing GOTO(%d, %s)", newTop, action.Prod.Left.Name))
			}
			stack = append(stack, target)
			nodes = append(nodes, &Node{Symbol: action.Prod.Left, Children: children})

		case lr.Accept:
			var root *Node
			if len(nodes) > 0 {
				root = nodes[len(nodes)-1]
			}
			return true, root, nil
		}
	}
}

// Accepts is a convenience wrapper over Run for callers that only care
// about accept/reject (spec §8's parser-soundness property).
func (d *Driver) Accepts(tokens []Token) bool {
	ok, _, _ := d.Run(tokens)
	return ok
}
