package automaton

import (
	"fmt"
	"strconv"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/ondrea-voss/cfgtables/internal/ictiobus/grammar"
	"github.com/ondrea-voss/cfgtables/internal/ictiobus/icterrors"
)

// Transition is a single edge in the canonical collection: From a state, on
// symbol Sym, To another state. Grounded in npillmayer-gorgo/lr/tables.go's
// cfsmEdge.
type Transition struct {
	From int
	Sym  grammar.Symbol
	To   int
}

// edge is an alias kept for the unexported fields used internally; the
// exported Transition type above is what callers outside the package see.
type edge = Transition

// CanonicalCollection is the canonical LR(1) collection of item sets (states)
// for a grammar, plus the GOTO transitions between them. States are numbered
// by discovery order, starting with state 0 for the augmented start item's
// closure, per spec.md §4.5.
type CanonicalCollection struct {
	// Augmented is the grammar g with its fresh start production prepended;
	// production indices used by every Item in every state refer to
	// Augmented.Productions(), not to the grammar originally passed to
	// Construct.
	Augmented grammar.Grammar

	States      []*ItemSet
	transitions []edge
}

// pendingState pairs a discovered-but-unprocessed item set with the state
// index it has already been assigned, for the treeset worklist below.
type pendingState struct {
	index int
	items *ItemSet
}

// stateComparator orders pendingState values by their assigned index, giving
// the treeset worklist FIFO discovery-order semantics. Grounded in
// npillmayer-gorgo/lr/tables.go's stateComparator (utils.IntComparator over
// CFSMState.ID).
func stateComparator(a, b interface{}) int {
	return utils.IntComparator(a.(pendingState).index, b.(pendingState).index)
}

// Construct builds the canonical LR(1) collection for g: g is augmented with
// a fresh start production internally, then states are discovered by a BFS
// worklist starting from the closure of the augmented start item, exactly as
// spec.md §4.5 describes. Grounded in the teacher's
// automaton.NewLR1ViablePrefixDFA, restructured around gods' treeset/
// arraylist the way npillmayer-gorgo/lr/tables.go's TableGenerator.buildCFSM
// drives its worklist.
//
// Construct is the one place spec.md §7's EmptyGrammar check is fatal for
// every LR-family analysis (both lr1 and lalr1 route through here): a grammar
// that fails g.Validate() returns a nil collection and a wrapped
// icterrors.ErrEmptyGrammar. A non-nil collection may still come back
// alongside a non-nil advisory error — a disambiguated augmented start name
// (icterrors.ErrStartSymbolCollision) or an undefined non-terminal
// (icterrors.ErrUndefinedNonTerminal) — neither of which invalidates cc;
// callers that don't care can check cc == nil to tell fatal from advisory.
func Construct(g grammar.Grammar) (*CanonicalCollection, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("automaton: %w", err)
	}

	aug, collisionErr := g.Augmented()
	advisory := icterrors.Join(collisionErr, g.UndefinedNonTerminalsError())

	startProd := aug.ProductionIndicesFor(aug.StartSymbol())[0]
	startItem := Item{ProdIndex: startProd, Dot: 0, Lookahead: grammar.EndOfInput}
	startSet := NewItemSet()
	startSet.Add(startItem)
	startClosure := Closure(aug, startSet)

	cc := &CanonicalCollection{Augmented: aug}
	cc.States = append(cc.States, startClosure)

	byKey := map[string]int{startClosure.Key(): 0}

	worklist := treeset.NewWith(stateComparator)
	worklist.Add(pendingState{index: 0, items: startClosure})

	symbols := orderedSymbols(aug)

	for worklist.Size() > 0 {
		values := worklist.Values()
		next := values[0].(pendingState)
		worklist.Remove(next)

		for _, X := range symbols {
			target := Goto(aug, next.items, X)
			if target.Len() == 0 {
				continue
			}

			key := target.Key()
			toIdx, exists := byKey[key]
			if !exists {
				toIdx = len(cc.States)
				byKey[key] = toIdx
				cc.States = append(cc.States, target)
				worklist.Add(pendingState{index: toIdx, items: target})
			}

			cc.transitions = append(cc.transitions, edge{From: next.index, Sym: X, To: toIdx})
		}
	}

	return cc, advisory
}

// orderedSymbols returns every terminal, then every non-terminal, of g in
// first-occurrence order, per spec.md §4.5's requirement that state
// discovery order (and hence numbering) be reproducible.
func orderedSymbols(g grammar.Grammar) []grammar.Symbol {
	var out []grammar.Symbol
	for _, t := range g.Terminals() {
		out = append(out, grammar.Term(t))
	}
	for _, nt := range g.NonTerminals() {
		out = append(out, grammar.NonTerm(nt))
	}
	return out
}

// Goto returns the state index reached from state i on symbol X, and true,
// or (0, false) if there is no such transition.
func (cc *CanonicalCollection) Goto(i int, X grammar.Symbol) (int, bool) {
	for _, e := range cc.transitions {
		if e.From == i && e.Sym == X {
			return e.To, true
		}
	}
	return 0, false
}

// Transitions returns every (from, symbol, to) edge, in discovery order. Used
// by LALR(1) construction to remap edges after merging states by core;
// lrtable's builders look edges up one at a time through Goto instead.
func (cc *CanonicalCollection) Transitions() []Transition {
	out := make([]Transition, len(cc.transitions))
	copy(out, cc.transitions)
	return out
}

// FromMerged builds a CanonicalCollection directly from already-computed
// states and transitions, skipping worklist discovery. Used by LALR(1)
// construction to assemble the core-merged collection from an existing
// LR(1) CanonicalCollection's (grouped, unioned) states and (deduplicated,
// remapped) transitions.
func FromMerged(aug grammar.Grammar, states []*ItemSet, transitions []Transition) *CanonicalCollection {
	cc := &CanonicalCollection{Augmented: aug, States: states}
	cc.transitions = append(cc.transitions, transitions...)
	return cc
}

// edgeList renders cc's transitions into a gods arraylist, used only by
// String for stable iteration; kept as a thin wrapper so the dependency is
// actually exercised here too, not just in the worklist above.
func (cc *CanonicalCollection) edgeList() *arraylist.List {
	l := arraylist.New()
	for _, e := range cc.transitions {
		l.Add(e)
	}
	return l
}

// String renders cc state by state: a "State i:" header line, the state's
// items one per line, then one line per outgoing transition.
func (cc *CanonicalCollection) String() string {
	var out string
	for i, s := range cc.States {
		out += "State " + strconv.Itoa(i) + ":\n" + s.String(cc.Augmented) + "\n"
		edges := cc.edgeList()
		edges.Each(func(_ int, value interface{}) {
			e := value.(edge)
			if e.From == i {
				out += "  on " + e.Sym.Name() + " -> " + strconv.Itoa(e.To) + "\n"
			}
		})
	}
	return out
}
