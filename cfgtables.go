// Package cfgtables is the external facade over internal/ictiobus: grammar
// construction and the FIRST/FOLLOW/LL(1)/LR(1)/LALR(1) table builders,
// re-exported under names a caller doesn't need an internal import path to
// reach. Grounded in the teacher's internal/ictiobus/ictiobus.go, which plays
// the same role for its lexer/parser/SDD facade (Lexer, Parser, SDD, and the
// NewLALR1Parser/NewCLRParser/NewLL1Parser constructors); the driver-facing
// half of that file (Frontend, Analyze/AnalyzeString) has no equivalent
// here, since this module produces tables rather than runnable parsers.
package cfgtables

import (
	"github.com/ondrea-voss/cfgtables/internal/ictiobus/automaton"
	"github.com/ondrea-voss/cfgtables/internal/ictiobus/grammar"
	"github.com/ondrea-voss/cfgtables/internal/ictiobus/icterrors"
	"github.com/ondrea-voss/cfgtables/internal/ictiobus/lalr1"
	"github.com/ondrea-voss/cfgtables/internal/ictiobus/ll1"
	"github.com/ondrea-voss/cfgtables/internal/ictiobus/lr1"
	"github.com/ondrea-voss/cfgtables/internal/ictiobus/lrtable"
)

// Re-exported symbol-model types and constructors.
type (
	Terminal    = grammar.Terminal
	NonTerminal = grammar.NonTerminal
	Symbol      = grammar.Symbol
	Production  = grammar.Production
	Grammar     = grammar.Grammar
)

var (
	NewTerminal      = grammar.NewTerminal
	NewNonTerminal   = grammar.NewNonTerminal
	Term             = grammar.Term
	NonTerm          = grammar.NonTerm
	Terminals        = grammar.Terminals
	NonTerminals     = grammar.NonTerminals
	Seq              = grammar.Seq
	NewGrammar       = grammar.New
	ParseGrammar     = grammar.Parse
	MustParseGrammar = grammar.MustParse

	EndOfInput = grammar.EndOfInput
)

// First computes FIRST(seq) for the given grammar; see grammar.First.
func First(g Grammar, seq ...Symbol) grammar.FirstSet {
	return grammar.First(g, seq...)
}

// Follow computes FOLLOW(nt) for the given grammar; see grammar.Follow.
func Follow(g Grammar, nt NonTerminal) grammar.FollowSet {
	return grammar.Follow(g, nt)
}

// LL1Table is an LL(1) predictive parsing table.
type LL1Table = ll1.Table

// NewLL1ParsingTable builds the LL(1) table for g; see ll1.ConstructParsingTable.
func NewLL1ParsingTable(g Grammar) (LL1Table, error) {
	return ll1.ConstructParsingTable(g)
}

// ParsingTable is an LR-family ACTION/GOTO table, shared by the LR(1) and
// LALR(1) builders below.
type ParsingTable = lrtable.ParsingTable

// CanonicalCollection is the canonical collection of LR item sets underlying
// an LR(1) or LALR(1) table.
type CanonicalCollection = automaton.CanonicalCollection

// ConflictError is a structured shift/reduce or reduce/reduce conflict.
type ConflictError = icterrors.ConflictError

// NewCanonicalLR1Set builds the canonical LR(1) collection for g; see
// lr1.ConstructCanonicalSet.
func NewCanonicalLR1Set(g Grammar) (*CanonicalCollection, error) {
	return lr1.ConstructCanonicalSet(g)
}

// NewLR1ParsingTable builds the canonical LR(1) ACTION/GOTO table for g,
// failing fast on the first conflict; see lr1.ConstructParsingTable.
func NewLR1ParsingTable(g Grammar) (*ParsingTable, error) {
	return lr1.ConstructParsingTable(g)
}

// NewLR1ParsingTableAllConflicts is NewLR1ParsingTable's permissive
// counterpart; see lr1.ConstructParsingTableAllConflicts.
func NewLR1ParsingTableAllConflicts(g Grammar) (*ParsingTable, []*ConflictError, error) {
	return lr1.ConstructParsingTableAllConflicts(g)
}

// NewCanonicalLALR1Set builds the LALR(1) collection for g (the canonical
// LR(1) collection with same-core states merged); see
// lalr1.ConstructCanonicalSet.
func NewCanonicalLALR1Set(g Grammar) (*CanonicalCollection, error) {
	return lalr1.ConstructCanonicalSet(g)
}

// NewLALR1ParsingTable builds the LALR(1) ACTION/GOTO table for g, failing
// fast on the first conflict; see lalr1.ConstructParsingTable.
func NewLALR1ParsingTable(g Grammar) (*ParsingTable, error) {
	return lalr1.ConstructParsingTable(g)
}

// NewLALR1ParsingTableAllConflicts is NewLALR1ParsingTable's permissive
// counterpart; see lalr1.ConstructParsingTableAllConflicts.
func NewLALR1ParsingTableAllConflicts(g Grammar) (*ParsingTable, []*ConflictError, error) {
	return lalr1.ConstructParsingTableAllConflicts(g)
}
