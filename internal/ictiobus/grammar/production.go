package grammar

import "strings"

// Production is a single grammar rule, lhs -> rhs. An empty rhs is an
// epsilon production. Productions are compared by value; stable identity
// within a Grammar comes from the production's position in
// Grammar.Productions, not from any field here.
type Production struct {
	LHS NonTerminal
	RHS []Symbol
}

// NewProduction builds a Production from an lhs and an rhs sequence.
func NewProduction(lhs NonTerminal, rhs ...Symbol) Production {
	cp := make([]Symbol, len(rhs))
	copy(cp, rhs)
	return Production{LHS: lhs, RHS: cp}
}

// IsEpsilon reports whether p has an empty right-hand side.
func (p Production) IsEpsilon() bool {
	return len(p.RHS) == 0
}

// Equal reports whether p and o have the same lhs and rhs, symbol for
// symbol.
func (p Production) Equal(o Production) bool {
	if p.LHS != o.LHS || len(p.RHS) != len(o.RHS) {
		return false
	}
	for i := range p.RHS {
		if p.RHS[i] != o.RHS[i] {
			return false
		}
	}
	return true
}

// String renders p as "A -> X Y Z", or "A -> ε" for an epsilon production.
// This is the stable display form named in spec.md §6; rendering it into DOT
// or LaTeX is an external formatter's job, not this library's.
func (p Production) String() string {
	var sb strings.Builder
	sb.WriteString(p.LHS.Name())
	sb.WriteString(" -> ")
	if p.IsEpsilon() {
		sb.WriteString("ε")
		return sb.String()
	}
	for i, sym := range p.RHS {
		if i > 0 {
			sb.WriteRune(' ')
		}
		sb.WriteString(sym.Name())
	}
	return sb.String()
}
