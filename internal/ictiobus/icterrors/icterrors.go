// Package icterrors holds the error taxonomy shared by the grammar, automaton,
// ll1, lr1, lalr1 and lrtable packages: sentinel errors for the kinds named in
// spec.md §7, and
// the structured conflict values that the LL(1)/LR(1)/LALR(1) table builders
// attach to them.
package icterrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the error kinds named in spec.md §7. Callers identify
// the kind of a returned error with errors.Is against these, and pull
// structured detail back out with errors.As against the *ConflictError or
// *CollisionError types below.
var (
	// ErrUndefinedNonTerminal marks a symbol that appears on some rhs but is
	// never the lhs of any production. It is non-fatal: FIRST/FOLLOW/closure
	// degrade to empty sets for it rather than failing. Grammar.Validate does
	// not check for it; Grammar.UndefinedNonTerminalsError wraps it, and
	// automaton.Construct surfaces that advisory alongside its canonical
	// collection.
	ErrUndefinedNonTerminal = errors.New("undefined non-terminal")

	// ErrStartSymbolCollision marks that a grammar already defined a
	// non-terminal with the name the augmented-grammar builder wanted to use
	// for its fresh start symbol. It is advisory: the builder picks a
	// disambiguated name and proceeds.
	ErrStartSymbolCollision = errors.New("augmented start symbol collides with an existing non-terminal")

	// ErrLL1Conflict marks that a cell of the LL(1) table received more than
	// one production. The table is still returned with the cell populated;
	// this error is diagnostic only.
	ErrLL1Conflict = errors.New("LL(1) table has a conflict cell")

	// ErrLRConflict marks a shift/reduce or reduce/reduce conflict in an
	// LR(1) or LALR(1) ACTION table cell.
	ErrLRConflict = errors.New("LR ACTION table has a conflict cell")

	// ErrEmptyGrammar marks a grammar with no productions, or whose start
	// symbol has no production. Fatal for all analyses.
	ErrEmptyGrammar = errors.New("grammar has no productions for its start symbol")
)

// CollisionError carries the disambiguated name chosen after a
// StartSymbolCollision.
type CollisionError struct {
	Wanted string // the name that was already taken
	Chosen string // the disambiguated name actually used
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("%s: wanted %q, using %q instead", ErrStartSymbolCollision, e.Wanted, e.Chosen)
}

func (e *CollisionError) Unwrap() error {
	return ErrStartSymbolCollision
}

// ConflictKind distinguishes the two ways an LR ACTION cell can conflict.
type ConflictKind int

const (
	// ShiftReduce is a conflict between a shift and a reduce entry.
	ShiftReduce ConflictKind = iota
	// ReduceReduce is a conflict between two distinct reduce entries.
	ReduceReduce
)

func (k ConflictKind) String() string {
	if k == ShiftReduce {
		return "shift/reduce"
	}
	return "reduce/reduce"
}

// ConflictError is a structured LR(1)/LALR(1) ACTION-table conflict: it names
// the state, the terminal the conflict occurred on, and the text of both
// competing entries, per spec.md §7 ("surfaced as a structured error value
// naming (state index, terminal, entries)").
type ConflictError struct {
	Kind     ConflictKind
	State    int
	Terminal string
	Entries  [2]string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict in state %d on terminal %q: %s vs %s",
		e.Kind, e.State, e.Terminal, e.Entries[0], e.Entries[1])
}

func (e *ConflictError) Unwrap() error {
	return ErrLRConflict
}

// LL1ConflictError is the LL(1)-table analogue of ConflictError: a cell at
// (NonTerminal, Terminal) received more than one production.
type LL1ConflictError struct {
	NonTerminal string
	Terminal    string
	Productions []string
}

func (e *LL1ConflictError) Error() string {
	return fmt.Sprintf("%s at (%s, %s): %v", ErrLL1Conflict, e.NonTerminal, e.Terminal, e.Productions)
}

func (e *LL1ConflictError) Unwrap() error {
	return ErrLL1Conflict
}

// joinedError combines two advisory errors so a caller can still errors.Is
// against either sentinel, without depending on errors.Join (added after this
// module's go directive).
type joinedError struct {
	errs []error
}

func (e *joinedError) Error() string {
	parts := make([]string, len(e.errs))
	for i, err := range e.errs {
		parts[i] = err.Error()
	}
	return strings.Join(parts, "; ")
}

// Is reports whether target matches any of e's wrapped errors, so
// errors.Is(joined, ErrStartSymbolCollision) and
// errors.Is(joined, ErrUndefinedNonTerminal) both work regardless of which
// one e was built from.
func (e *joinedError) Is(target error) bool {
	for _, err := range e.errs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Join combines non-nil advisory errors into one, dropping nils. It returns
// nil if every argument is nil, the lone error unchanged if exactly one is
// non-nil, and a *joinedError otherwise.
func Join(errs ...error) error {
	var present []error
	for _, err := range errs {
		if err != nil {
			present = append(present, err)
		}
	}
	switch len(present) {
	case 0:
		return nil
	case 1:
		return present[0]
	default:
		return &joinedError{errs: present}
	}
}
