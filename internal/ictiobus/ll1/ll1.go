// Package ll1 builds an LL(1) predictive parsing table, spec.md §4.3.
// Grounded in the teacher's internal/ictiobus/parse/ll1.go, which builds its
// table via grammar.Grammar.LLParseTable and wraps it in a driver; the driver
// is out of scope here (spec.md §1: "Any parser driver ... this library
// produces tables, it does not execute them"), so only table construction is
// kept.
package ll1

import (
	"fmt"

	"github.com/ondrea-voss/cfgtables/internal/ictiobus/grammar"
	"github.com/ondrea-voss/cfgtables/internal/ictiobus/icterrors"
)

// cell addresses a single LL(1) table entry: which production(s) to predict
// when parsing A with lookahead a.
type cell struct {
	NT grammar.NonTerminal
	T  grammar.Terminal
}

// Table is an LL(1) parsing table: for each (non-terminal, terminal) pair,
// the production(s) to predict. A cell with more than one production is a
// conflict, per spec.md §4.3; conflicting cells are still populated (with
// every candidate production, in the order they were discovered) rather than
// rejected, since an LL(1) conflict describes a property of the grammar, not
// a construction failure.
type Table struct {
	g       grammar.Grammar
	entries map[cell][]grammar.Production
}

// Predict returns the production(s) predicted for (nt, a). An empty result
// means there is no production to apply; a result of length > 1 is a
// conflict.
func (t Table) Predict(nt grammar.NonTerminal, a grammar.Terminal) []grammar.Production {
	return append([]grammar.Production(nil), t.entries[cell{NT: nt, T: a}]...)
}

// Conflicts returns every (non-terminal, terminal) cell that received more
// than one production, as structured *icterrors.LL1ConflictError values, in
// a stable order (non-terminals then terminals, both in the grammar's
// first-occurrence order).
func (t Table) Conflicts() []*icterrors.LL1ConflictError {
	var out []*icterrors.LL1ConflictError
	terms := t.g.Terminals()
	terms = append(terms, grammar.EndOfInput)

	for _, nt := range t.g.NonTerminals() {
		for _, term := range terms {
			prods := t.entries[cell{NT: nt, T: term}]
			if len(prods) < 2 {
				continue
			}
			var texts []string
			for _, p := range prods {
				texts = append(texts, p.String())
			}
			out = append(out, &icterrors.LL1ConflictError{
				NonTerminal: nt.Name(),
				Terminal:    term.Name(),
				Productions: texts,
			})
		}
	}
	return out
}

// ConstructParsingTable builds the LL(1) table for g: for every production
// A -> alpha, add A -> alpha to cell (A, a) for every a in FIRST(alpha); if
// alpha is nullable, also add it to (A, b) for every b in FOLLOW(A), and to
// (A, $) if $ is in FOLLOW(A). Implements spec.md §4.3.
//
// Returns an error only for icterrors.ErrEmptyGrammar (g has no productions,
// or its start symbol is never defined); LL(1) conflicts are not fatal and
// are instead inspectable via Table.Conflicts.
func ConstructParsingTable(g grammar.Grammar) (Table, error) {
	if err := g.Validate(); err != nil {
		return Table{}, fmt.Errorf("ll1: %w", err)
	}

	table := Table{g: g, entries: map[cell][]grammar.Production{}}

	for _, nt := range g.NonTerminals() {
		for _, p := range g.ProductionsFor(nt) {
			first := grammar.First(g, p.RHS...)

			for term := range first.Terminals {
				table.add(nt, term, p)
			}

			if first.HasEpsilon {
				follow := grammar.Follow(g, nt)
				for term := range follow.Terminals {
					table.add(nt, term, p)
				}
			}
		}
	}

	return table, nil
}

func (t Table) add(nt grammar.NonTerminal, term grammar.Terminal, p grammar.Production) {
	key := cell{NT: nt, T: term}
	for _, existing := range t.entries[key] {
		if existing.Equal(p) {
			return
		}
	}
	t.entries[key] = append(t.entries[key], p)
}
