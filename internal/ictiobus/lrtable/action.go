// Package lrtable holds the ACTION/GOTO table type and the Algorithm-4.56-
// style derivation rules shared by the lr1 and lalr1 builders, so neither
// package duplicates the other's shift/reduce/accept logic or conflict
// detection. Grounded in the teacher's internal/ictiobus/parse/lraction.go
// (LRAction/LRActionType) and the Action/Goto methods of
// internal/ictiobus/parse/clr1.go's canonicalLR1Table and
// internal/ictiobus/parse/lalr.go's lalr1Table, which are identical modulo
// which CanonicalCollection they were built from.
package lrtable

import "fmt"

// ActionKind distinguishes the three kinds of ACTION table entry.
type ActionKind int

const (
	Shift ActionKind = iota
	Reduce
	Accept
)

func (k ActionKind) String() string {
	switch k {
	case Shift:
		return "shift"
	case Reduce:
		return "reduce"
	case Accept:
		return "accept"
	default:
		return "invalid"
	}
}

// LRAction is a single ACTION table entry: what to do on a given
// (state, terminal) cell. For Shift, State is the destination state. For
// Reduce, ProdIndex is the production to reduce by. Accept carries neither.
type LRAction struct {
	Kind      ActionKind
	State     int
	ProdIndex int
}

func (a LRAction) String() string {
	switch a.Kind {
	case Shift:
		return fmt.Sprintf("shift %d", a.State)
	case Reduce:
		return fmt.Sprintf("reduce %d", a.ProdIndex)
	case Accept:
		return "accept"
	default:
		return "error"
	}
}

// Equal reports whether a and o are the same action.
func (a LRAction) Equal(o LRAction) bool {
	return a.Kind == o.Kind && a.State == o.State && a.ProdIndex == o.ProdIndex
}
