package grammar

import (
	"strconv"
	"strings"
)

// Production is an ordered pair (left non-terminal, right sequence of
// symbols); Right may be empty for an ε-production. Productions compare by
// structural equality — Sym is comparable and []Sym isn't, so Production
// itself needs an explicit Equal rather than relying on ==.
type Production struct {
	Left  Sym
	Right []Sym

	// Augmented marks the single synthetic production S' -> S introduced by
	// Grammar.Augment. Tagging by identity (this field) rather than by a
	// name-suffix convention on Left resolves spec.md §9's stated open
	// question: a user grammar containing a symbol literally named "S'"
	// can never be mistaken for the augmented production.
	Augmented bool
}

// Equal reports structural equality: same left symbol and same right-hand
// sequence in the same order.
func (p Production) Equal(other Production) bool {
	if p.Left != other.Left || len(p.Right) != len(other.Right) {
		return false
	}
	for i := range p.Right {
		if p.Right[i] != other.Right[i] {
			return false
		}
	}
	return true
}

// Key returns a string uniquely identifying this production by structural
// content, suitable as a map key (Production itself isn't comparable with
// == because Right is a slice). Each symbol contributes both Name and Kind,
// so a terminal and non-terminal sharing a name never collide.
func (p Production) Key() string {
	var b strings.Builder
	writeSym := func(s Sym) {
		b.WriteString(s.Name)
		b.WriteByte(0)
		b.WriteString(strconv.Itoa(int(s.Kind)))
	}
	writeSym(p.Left)
	b.WriteByte(1)
	for _, s := range p.Right {
		writeSym(s)
		b.WriteByte(1)
	}
	if p.Augmented {
		b.WriteByte(2)
	}
	return b.String()
}

func (p Production) String() string {
	if len(p.Right) == 0 {
		return p.Left.Name + " -> ε"
	}
	parts := make([]string, len(p.Right))
	for i, s := range p.Right {
		parts[i] = s.Name
	}
	return p.Left.Name + " -> " + strings.Join(parts, " ")
}
