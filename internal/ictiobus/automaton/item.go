// Package automaton builds the LR(1) viable-prefix automaton: items, item
// sets, closure, GOTO, and the canonical collection of states these combine
// into. Grounded in the teacher's internal/ictiobus/grammar/item.go (item
// representation and display) and internal/ictiobus/automaton/automaton.go
// (closure/GOTO/worklist construction), and in npillmayer-gorgo/lr/tables.go
// for the ordered-worklist/state-registry idiom.
package automaton

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cnf/structhash"
	"github.com/ondrea-voss/cfgtables/internal/ictiobus/grammar"
)

// Item is a single LR(1) item: a production (identified by its index into
// the augmented grammar's Productions()), a dot position within that
// production's rhs, and a single lookahead terminal. Item is a plain
// comparable struct so it can be used directly as a map key, unlike the
// teacher's string-keyed LR1Item.
type Item struct {
	ProdIndex int
	Dot       int
	Lookahead grammar.Terminal
}

// AtEnd reports whether the dot is at the end of the production's rhs (a
// candidate for reduction).
func (it Item) AtEnd(g grammar.Grammar) bool {
	rhs := g.Productions()[it.ProdIndex].RHS
	return it.Dot >= len(rhs)
}

// NextSymbol returns the symbol immediately after the dot, and true, or the
// zero Symbol and false if the dot is at the end.
func (it Item) NextSymbol(g grammar.Grammar) (grammar.Symbol, bool) {
	rhs := g.Productions()[it.ProdIndex].RHS
	if it.Dot >= len(rhs) {
		return grammar.Symbol{}, false
	}
	return rhs[it.Dot], true
}

// Advance returns the item with the dot moved one position to the right.
// Callers must check NextSymbol first; Advance does not bounds-check.
func (it Item) Advance() Item {
	return Item{ProdIndex: it.ProdIndex, Dot: it.Dot + 1, Lookahead: it.Lookahead}
}

// String renders it as "A -> α . β, a", the stable display form named in
// spec.md §6.
func (it Item) String(g grammar.Grammar) string {
	p := g.Productions()[it.ProdIndex]

	var parts []string
	for i, sym := range p.RHS {
		if i == it.Dot {
			parts = append(parts, ".")
		}
		parts = append(parts, sym.Name())
	}
	if it.Dot >= len(p.RHS) {
		parts = append(parts, ".")
	}

	return fmt.Sprintf("%s -> %s, %s", p.LHS.Name(), strings.Join(parts, " "), it.Lookahead.Name())
}

// Core is the (ProdIndex, Dot) pair of it with the lookahead stripped. Two
// items with the same Core but different lookaheads belong to the same LR(0)
// core; LALR(1) construction merges states whose item sets share a core.
type Core struct {
	ProdIndex int
	Dot       int
}

func (it Item) core() Core {
	return Core{ProdIndex: it.ProdIndex, Dot: it.Dot}
}

// ItemSet is a set of items that also tracks insertion order: Items returns
// members in the order they were added, while Key sorts them first and so
// does not depend on construction order.
type ItemSet struct {
	members map[Item]struct{}
	order   []Item
}

// NewItemSet returns an empty ItemSet.
func NewItemSet() *ItemSet {
	return &ItemSet{members: make(map[Item]struct{})}
}

// Add inserts it into s if not already present, returning true if s grew.
func (s *ItemSet) Add(it Item) bool {
	if _, ok := s.members[it]; ok {
		return false
	}
	s.members[it] = struct{}{}
	s.order = append(s.order, it)
	return true
}

// Has reports whether it is in s.
func (s *ItemSet) Has(it Item) bool {
	_, ok := s.members[it]
	return ok
}

// Items returns s's members in insertion order.
func (s *ItemSet) Items() []Item {
	out := make([]Item, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of items in s.
func (s *ItemSet) Len() int {
	return len(s.order)
}

// sortedItems returns s's items sorted by (ProdIndex, Dot, Lookahead name),
// the canonical order spec.md §9 specifies for hashing an item set: "normalize
// by sorting items by (production index, dot, lookahead-name) before
// hashing."
func (s *ItemSet) sortedItems() []Item {
	out := s.Items()
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.ProdIndex != b.ProdIndex {
			return a.ProdIndex < b.ProdIndex
		}
		if a.Dot != b.Dot {
			return a.Dot < b.Dot
		}
		return a.Lookahead.Name() < b.Lookahead.Name()
	})
	return out
}

// hashable is the shape handed to structhash: a plain, exported-field
// struct built from the normalized item list, so the hash only depends on
// item content, never on map iteration order.
type hashable struct {
	Items []Item
}

// Key returns a content-addressed, order-independent key for s, suitable for
// deduplicating item sets discovered via different transition paths.
// Grounded in npillmayer-gorgo/lr/earley's structhash.Hash(item, state)
// cache-key idiom.
func (s *ItemSet) Key() string {
	h, err := structhash.Hash(hashable{Items: s.sortedItems()}, 1)
	if err != nil {
		// structhash only fails on unsupported field kinds; Item's fields
		// are all structhash-safe (ints and a string-backed struct).
		panic(fmt.Sprintf("automaton: hashing item set: %v", err))
	}
	return h
}

// CoreKey returns a content-addressed key over the set of distinct Core
// values among s's items, ignoring lookaheads and ignoring how many items
// share a core. Two item sets with the same CoreKey are candidates for
// LALR(1) merging: per spec.md §4.7, a state's core is "the set of
// (production index, dot position) pairs," not a per-item multiset, so two
// states pairing the same cores with different numbers of lookaheads apiece
// must still hash equal here.
func (s *ItemSet) CoreKey() string {
	seen := make(map[Core]struct{})
	for _, it := range s.Items() {
		seen[it.core()] = struct{}{}
	}

	cores := make([]Core, 0, len(seen))
	for c := range seen {
		cores = append(cores, c)
	}
	sort.Slice(cores, func(i, j int) bool {
		if cores[i].ProdIndex != cores[j].ProdIndex {
			return cores[i].ProdIndex < cores[j].ProdIndex
		}
		return cores[i].Dot < cores[j].Dot
	})

	h, err := structhash.Hash(struct{ Cores []Core }{Cores: cores}, 1)
	if err != nil {
		panic(fmt.Sprintf("automaton: hashing item set core: %v", err))
	}
	return h
}

// String renders s as its items, one per line, via Item.String.
func (s *ItemSet) String(g grammar.Grammar) string {
	var sb strings.Builder
	for i, it := range s.sortedItems() {
		if i > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(it.String(g))
	}
	return sb.String()
}
