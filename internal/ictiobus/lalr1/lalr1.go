// Package lalr1 builds the LALR(1) canonical collection and ACTION/GOTO
// table for a grammar, spec.md §4.7: the LR(1) collection with states that
// share an LR(0) core merged into one, their lookaheads unioned.
//
// The teacher's own attempt at this (internal/ictiobus/parse/lalr.go's
// computeLALR1Kernels) is dead code — it returns an empty result after a
// large commented-out block. The teacher's actual working LALR(1)
// construction lives in internal/ictiobus/automaton/automaton.go's
// NewLALR1ViablePrefixDFA, which builds the LR(1) DFA, converts it to an
// NFA, and repeatedly merges states with identical cores until no more
// merges apply. This package grounds its merge step on that function's
// algorithmic essence (group states by core, union lookaheads, remap
// transitions, renumber with the start state first) rather than on the
// NFA-round-trip machinery, since the cores are already explicit in this
// package's Item representation.
package lalr1

import (
	"sort"

	"github.com/ondrea-voss/cfgtables/internal/ictiobus/automaton"
	"github.com/ondrea-voss/cfgtables/internal/ictiobus/grammar"
	"github.com/ondrea-voss/cfgtables/internal/ictiobus/icterrors"
	"github.com/ondrea-voss/cfgtables/internal/ictiobus/lrtable"
)

// ConstructCanonicalSet builds the LALR(1) collection for g: the canonical
// LR(1) collection, with states that share an LR(0) core merged into one and
// their lookaheads unioned. The merged collection's state 0 is always the
// group containing the LR(1) collection's start state; the remaining groups
// keep the first-occurrence order of their earliest constituent LR(1) state,
// per spec.md §4.5's reproducibility requirement carried over into §4.7.
//
// A non-nil err alongside a non-nil collection is advisory (a disambiguated
// augmented start name, or an undefined non-terminal) and does not mean
// merging failed; only automaton.Construct's fatal EmptyGrammar case returns
// a nil collection.
func ConstructCanonicalSet(g grammar.Grammar) (*automaton.CanonicalCollection, error) {
	lr1cc, err := automaton.Construct(g)
	if lr1cc == nil {
		return nil, err
	}
	return mergeByCore(lr1cc), err
}

// ConstructParsingTable builds the LALR(1) ACTION/GOTO table for g. Fails
// fast on the first conflict; see ConstructParsingTableAllConflicts for the
// permissive variant. A grammar can have an LR(1) table but no LALR(1) table
// (core-merging can introduce reduce/reduce conflicts that were not present
// before merging); spec.md §8 calls this out explicitly as a testable
// property.
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
// counterpart, per spec.md §4.6's explicit allowance.
func ConstructParsingTableAllConflicts(g grammar.Grammar) (*lrtable.ParsingTable, []*icterrors.ConflictError, error) {
	cc, err := ConstructCanonicalSet(g)
	if cc == nil {
		return nil, nil, err
	}
	table, conflicts := lrtable.BuildTableAllConflicts(cc)
	return table, conflicts, err
}

// mergeByCore groups lr1cc's states by CoreKey, unions each group's items
// into one merged state, and remaps every transition to point at group
// indices instead of original state indices.
func mergeByCore(lr1cc *automaton.CanonicalCollection) *automaton.CanonicalCollection {
	states := lr1cc.States

	groupOf := make([]int, len(states))
	firstOfGroup := map[string]int{} // CoreKey -> group index
	var groupStates []*automaton.ItemSet

	for i, s := range states {
		key := s.CoreKey()
		g, seen := firstOfGroup[key]
		if !seen {
			g = len(groupStates)
			firstOfGroup[key] = g
			groupStates = append(groupStates, automaton.NewItemSet())
		}
		groupOf[i] = g
		for _, it := range s.Items() {
			groupStates[g].Add(it)
		}
	}

	seenEdge := map[automaton.Transition]bool{}
	var merged []automaton.Transition
	for _, e := range lr1cc.Transitions() {
		re := automaton.Transition{From: groupOf[e.From], Sym: e.Sym, To: groupOf[e.To]}
		if seenEdge[re] {
			continue
		}
		seenEdge[re] = true
		merged = append(merged, re)
	}

	sort.Slice(merged, func(i, j int) bool {
		if merged[i].From != merged[j].From {
			return merged[i].From < merged[j].From
		}
		return merged[i].Sym.Name() < merged[j].Sym.Name()
	})

	return automaton.FromMerged(lr1cc.Augmented, groupStates, merged)
}
