package regex

import (
	"fmt"

	"github.com/pkg/errors"
)

// SyntaxError is returned for malformed regex input: unbalanced parentheses,
// an unknown operator encountered during postfix evaluation, or a postfix
// stream that didn't reduce to exactly one fragment.
type SyntaxError struct {
	Pattern string
	Reason  string
}

func (e *SyntaxError) Error() string {
	return "malformed regex " + quote(e.Pattern) + ": " + e.Reason
}

func quote(s string) string {
	return "\"" + s + "\""
}

func newSyntaxError(pattern, reason string) error {
	return errors.WithStack(&SyntaxError{Pattern: pattern, Reason: reason})
}

// LexError is returned when a Lexer finds no non-empty prefix of the
// remaining input that is a whole registered token; it reports the position
// and character where that token would have started.
type LexError struct {
	Line, Column int
	Rune         rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("unexpected character at line %d, column %d: %q", e.Line, e.Column, e.Rune)
}

func newLexError(line, column int, r rune) error {
	return errors.WithStack(&LexError{Line: line, Column: column, Rune: r})
}
