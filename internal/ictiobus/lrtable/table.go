package lrtable

import (
	"fmt"
	"sort"

	"github.com/dekarrin/rosed"
	"github.com/ondrea-voss/cfgtables/internal/ictiobus/automaton"
	"github.com/ondrea-voss/cfgtables/internal/ictiobus/grammar"
	"github.com/ondrea-voss/cfgtables/internal/ictiobus/icterrors"
)

// actionCell addresses a single ACTION table entry.
type actionCell struct {
	State    int
	Terminal grammar.Terminal
}

// gotoCell addresses a single GOTO table entry.
type gotoCell struct {
	State int
	NT    grammar.NonTerminal
}

// ParsingTable is an ACTION/GOTO table built from a canonical collection, per
// spec.md §4.6 (Algorithm 4.56). It is produced by both the lr1 and lalr1
// packages; the only difference between an LR(1) and an LALR(1) table is
// which CanonicalCollection was passed to BuildTable.
//
// Per spec.md §6, a ParsingTable exposes its states (the ordered item sets
// it was built from), its action/goto maps, and the augmented productions
// list, for a downstream driver's reduce-side semantic actions — a driver
// this library does not itself provide.
type ParsingTable struct {
	Augmented grammar.Grammar
	States    []*automaton.ItemSet
	NumStates int

	action map[actionCell]LRAction
	goTo   map[gotoCell]int
}

// Productions returns the augmented grammar's productions, in index order;
// a Reduce(p) action's ProdIndex refers into this slice.
func (t *ParsingTable) Productions() []grammar.Production {
	return t.Augmented.Productions()
}

// Action returns the ACTION entry for (state, a), and true, or the zero
// value and false if that cell has no action (an error entry).
func (t *ParsingTable) Action(state int, a grammar.Terminal) (LRAction, bool) {
	act, ok := t.action[actionCell{State: state, Terminal: a}]
	return act, ok
}

// Goto returns the GOTO entry for (state, nt), and true, or (0, false) if
// there is no such transition.
func (t *ParsingTable) Goto(state int, nt grammar.NonTerminal) (int, bool) {
	idx, ok := t.goTo[gotoCell{State: state, NT: nt}]
	return idx, ok
}

// BuildTable derives the ACTION/GOTO table from cc using Algorithm 4.56:
// shift entries from transitions on terminals, reduce entries from items at
// end-of-production, and the accept entry from the augmented start item at
// end-of-production on end-of-input. Returns a wrapped *icterrors.ConflictError
// on the first shift/reduce or reduce/reduce conflict found, in state-then-
// terminal order for reproducibility; the table itself is not returned in
// that case, since a conflicting grammar has no valid LR(1)/LALR(1) table.
//
// For the permissive mode spec.md §4.6 allows, see BuildTableAllConflicts.
func BuildTable(cc *automaton.CanonicalCollection) (*ParsingTable, error) {
	table, conflicts := build(cc)
	if len(conflicts) > 0 {
		return nil, conflicts[0]
	}
	return table, nil
}

// BuildTableAllConflicts is BuildTable's permissive counterpart: it always
// returns a table (with one arbitrarily-but-deterministically chosen entry
// per conflicting cell) alongside every conflict found, instead of stopping
// at the first one. Per spec.md §4.6's explicit allowance for "a permissive
// mode that collects all conflicts before returning."
func BuildTableAllConflicts(cc *automaton.CanonicalCollection) (*ParsingTable, []*icterrors.ConflictError) {
	return build(cc)
}

func build(cc *automaton.CanonicalCollection) (*ParsingTable, []*icterrors.ConflictError) {
	aug := cc.Augmented
	startNT := aug.StartSymbol()
	startProdIdx := aug.ProductionIndicesFor(startNT)[0]

	table := &ParsingTable{
		Augmented: aug,
		States:    cc.States,
		NumStates: len(cc.States),
		action:    map[actionCell]LRAction{},
		goTo:      map[gotoCell]int{},
	}

	var conflicts []*icterrors.ConflictError

	terms := aug.Terminals()
	terms = append(terms, grammar.EndOfInput)

	for i, state := range cc.States {
		for _, t := range terms {
			for _, it := range state.Items() {
				sym, hasNext := it.NextSymbol(aug)

				// (a) [A -> alpha . a beta, b] and GOTO(Ii, a) = Ij: shift j.
				if hasNext && sym.IsTerminal() && sym.AsTerminal() == t {
					if j, ok := cc.Goto(i, sym); ok {
						mergeAction(table, &conflicts, i, t, LRAction{Kind: Shift, State: j})
					}
					continue
				}

				if hasNext {
					continue
				}

				prod := aug.Productions()[it.ProdIndex]

				// (c) [S' -> S ., $]: accept.
				if it.ProdIndex == startProdIdx && t == grammar.EndOfInput && it.Lookahead == grammar.EndOfInput {
					mergeAction(table, &conflicts, i, t, LRAction{Kind: Accept})
					continue
				}

				// (b) [A -> alpha ., a], A != S': reduce A -> alpha.
				if prod.LHS != startNT && it.Lookahead == t {
					mergeAction(table, &conflicts, i, t, LRAction{Kind: Reduce, ProdIndex: it.ProdIndex})
				}
			}
		}

		for _, nt := range aug.NonTerminals() {
			if nt == startNT {
				continue
			}
			if j, ok := cc.Goto(i, grammar.NonTerm(nt)); ok {
				table.goTo[gotoCell{State: i, NT: nt}] = j
			}
		}
	}

	sort.Slice(conflicts, func(i, j int) bool {
		if conflicts[i].State != conflicts[j].State {
			return conflicts[i].State < conflicts[j].State
		}
		return conflicts[i].Terminal < conflicts[j].Terminal
	})

	return table, conflicts
}

// mergeAction installs newAct into table's ACTION[state, t] cell. If the
// cell is already occupied by a different action, it records a conflict
// (appended to *conflicts) and keeps whichever action sorts first by String
// form, so BuildTableAllConflicts is deterministic across runs.
func mergeAction(table *ParsingTable, conflicts *[]*icterrors.ConflictError, state int, t grammar.Terminal, newAct LRAction) {
	key := actionCell{State: state, Terminal: t}
	existing, ok := table.action[key]
	if !ok {
		table.action[key] = newAct
		return
	}
	if existing.Equal(newAct) {
		return
	}

	kind := icterrors.ShiftReduce
	if existing.Kind == Reduce && newAct.Kind == Reduce {
		kind = icterrors.ReduceReduce
	}

	a, b := existing.String(), newAct.String()
	winner := existing
	if b < a {
		a, b = b, a
		winner = newAct
	}

	*conflicts = append(*conflicts, &icterrors.ConflictError{
		Kind:     kind,
		State:    state,
		Terminal: t.Name(),
		Entries:  [2]string{a, b},
	})

	table.action[key] = winner
}

// String renders t as a state-by-state ACTION/GOTO table, formatted with
// rosed.InsertTableOpts exactly as the teacher's canonicalLR1Table.String and
// lalr1Table.String do.
func (t *ParsingTable) String() string {
	terms := t.Augmented.Terminals()
	terms = append(terms, grammar.EndOfInput)
	nts := t.Augmented.NonTerminals()

	var data [][]string
	headers := []string{"State", "|"}
	for _, term := range terms {
		headers = append(headers, fmt.Sprintf("A:%s", term.Name()))
	}
	headers = append(headers, "|")
	for _, nt := range nts {
		if nt == t.Augmented.StartSymbol() {
			continue
		}
		headers = append(headers, fmt.Sprintf("G:%s", nt.Name()))
	}
	data = append(data, headers)

	for i := 0; i < t.NumStates; i++ {
		row := []string{fmt.Sprintf("%d", i), "|"}
		for _, term := range terms {
			cellStr := ""
			if act, ok := t.Action(i, term); ok {
				cellStr = act.String()
			}
			row = append(row, cellStr)
		}
		row = append(row, "|")
		for _, nt := range nts {
			if nt == t.Augmented.StartSymbol() {
				continue
			}
			cellStr := ""
			if j, ok := t.Goto(i, nt); ok {
				cellStr = fmt.Sprintf("%d", j)
			}
			row = append(row, cellStr)
		}
		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
