package regex

import (
	"unicode/utf8"

	"github.com/shadowCow/compilercore/automaton"
)

// Lexer performs longest-match tokenization against a compiled lexer DFA
// (produced by BuildLexerDFA). Adapted from the teacher's
// tooling/lexer/lexer.go, generalized to run over automaton.DFA instead of a
// map[rune]string-keyed DFA.
type Lexer struct {
	dfa    *automaton.DFA
	source string
	offset int
	line   int
	column int
}

// Token is a single lexical token recognized by Lexer.
type Token struct {
	Type   string
	Value  string
	Line   int
	Column int
	Offset int
}

// NewLexer creates a lexer over source using dfa.
func NewLexer(dfa *automaton.DFA, source string) *Lexer {
	return &Lexer{dfa: dfa, source: source, line: 1, column: 1}
}

// Tokenize returns every token in the source, in order.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for l.offset < len(l.source) {
		tok, err := l.next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// next scans the longest prefix of the remaining source accepted by the
// DFA, backtracking to the last accepting state seen.
func (l *Lexer) next() (Token, error) {
	startOffset, startLine, startColumn := l.offset, l.line, l.column

	state := l.dfa.Start
	lastAcceptState := -1
	lastAcceptOffset := -1
	lastAcceptLine, lastAcceptColumn := l.line, l.column

	for l.offset < len(l.source) {
		r, size := utf8.DecodeRuneInString(l.source[l.offset:])
		if r == utf8.RuneError && size == 1 {
			break
		}

		next, ok := l.dfa.Step(state, r)
		if !ok {
			break
		}
		state = next
		l.offset += size
		if r == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}

		if l.dfa.State(state).Accepting {
			lastAcceptState = state
			lastAcceptOffset = l.offset
			lastAcceptLine, lastAcceptColumn = l.line, l.column
		}
	}

	if lastAcceptOffset > startOffset {
		tokenType := l.dfa.State(lastAcceptState).TokenType
		value := l.source[startOffset:lastAcceptOffset]

		l.offset = lastAcceptOffset
		l.line = lastAcceptLine
		l.column = lastAcceptColumn

		return Token{
			Type:   tokenType,
			Value:  value,
			Line:   startLine,
			Column: startColumn,
			Offset: startOffset,
		}, nil
	}

	r, _ := utf8.DecodeRuneInString(l.source[startOffset:])
	return Token{}, newLexError(startLine, startColumn, r)
}
