// Package lr1 builds the canonical LR(1) collection and ACTION/GOTO table
// for a grammar, spec.md §4.4–§4.6. Grounded in the teacher's
// internal/ictiobus/parse/clr1.go (GenerateCanonicalLR1Parser,
// constructCanonicalLR1ParseTable), with the collection-building work
// delegated to the automaton package and the table-derivation rules shared
// with lalr1 via lrtable.
package lr1

import (
	"github.com/ondrea-voss/cfgtables/internal/ictiobus/automaton"
	"github.com/ondrea-voss/cfgtables/internal/ictiobus/grammar"
	"github.com/ondrea-voss/cfgtables/internal/ictiobus/icterrors"
	"github.com/ondrea-voss/cfgtables/internal/ictiobus/lrtable"
)

// ConstructCanonicalSet builds the canonical LR(1) collection of item sets
// for g, augmenting it internally with a fresh start production first.
func ConstructCanonicalSet(g grammar.Grammar) (*automaton.CanonicalCollection, error) {
	return automaton.Construct(g)
}

// ConstructParsingTable builds the canonical LR(1) ACTION/GOTO table for g.
// Fails fast on the first shift/reduce or reduce/reduce conflict, wrapped in
// icterrors.ErrLRConflict; use ConstructParsingTableAllConflicts for the
// permissive variant. A non-nil err alongside a non-nil table is advisory
// (see automaton.Construct); only a nil table means the build failed.
func ConstructParsingTable(g grammar.Grammar) (*lrtable.ParsingTable, error) {
	cc, err := ConstructCanonicalSet(g)
	if cc == nil {
		return nil, err
	}
	table, buildErr := lrtable.BuildTable(cc)
	if buildErr != nil {
		return nil, buildErr
	}
	return table, err
}

// ConstructParsingTableAllConflicts is ConstructParsingTable's permissive
// counterpart: it always returns a table, alongside every ACTION-table
// conflict found, instead of stopping at the first one. Per spec.md §4.6's
// explicit allowance for "a permissive mode that collects all conflicts
// before returning."
func ConstructParsingTableAllConflicts(g grammar.Grammar) (*lrtable.ParsingTable, []*icterrors.ConflictError, error) {
	cc, err := ConstructCanonicalSet(g)
	if cc == nil {
		return nil, nil, err
	}
	table, conflicts := lrtable.BuildTableAllConflicts(cc)
	return table, conflicts, err
}
