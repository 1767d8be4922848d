package parser

import (
	"fmt"
	"strings"

	"github.com/shadowCow/compilercore/grammar"
)

// Node is a parse tree node built incrementally as the driver reduces.
// Adapted from the teacher's tooling/parsetree package: a terminal node
// wraps the matched token, a non-terminal node wraps its reduced children.
type Node struct {
	Terminal bool
	Token    Token // set when Terminal
	Symbol   grammar.Sym
	Children []*Node
}

// String renders the tree for debugging, mirroring the teacher's
// parsetree.ParseTree.String() format.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.Terminal {
		return fmt.Sprintf("Terminal{%s:%q}", n.Token.Type(), n.Token.Lexeme())
	}
	if len(n.Children) == 0 {
		return fmt.Sprintf("NonTerminal{%s}", n.Symbol.Name)
	}
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = c.String()
	}
	return fmt.Sprintf("NonTerminal{%s: [%s]}", n.Symbol.Name, strings.Join(parts, ", "))
}
