package grammar

import (
	"fmt"
	"strings"

	"github.com/ondrea-voss/cfgtables/internal/ictiobus/icterrors"
)

// Grammar is a context-free grammar: a start symbol plus an ordered sequence
// of productions. Productions are referenced by their position in that
// sequence, which is also their insertion order; callers rely on that order
// for deterministic table construction (spec.md §5).
//
// Mutation is confined to AddProduction, and is meant to happen only during
// construction. Once FIRST/FOLLOW or a table builder has run, treat the
// Grammar as read-only; nothing here stops a caller from mutating it later,
// but doing so invalidates anything already computed from it.
type Grammar struct {
	start       NonTerminal
	productions []Production

	// terminals and nonTerminals record first-occurrence order: the order in
	// which each symbol was first seen, either as the lhs of an added
	// production (non-terminals) or somewhere in an rhs (either). This is the
	// order spec.md §4.5 uses to make state-numbering reproducible.
	terminals    []Terminal
	nonTerminals []NonTerminal

	seenTerm  map[string]bool
	seenNT    map[string]bool
	prodIndex map[string]int // "LHS -> RHS" display form -> index, for idempotent AddProduction
}

// New returns an empty Grammar with the given start symbol. The start symbol
// is registered as a non-terminal immediately, even before any production
// names it as an lhs; Grammar.Validate (called implicitly by the table
// builders) reports a grammar whose start symbol never gets a production.
func New(start NonTerminal) Grammar {
	g := Grammar{
		start:     start,
		seenTerm:  map[string]bool{},
		seenNT:    map[string]bool{},
		prodIndex: map[string]int{},
	}
	g.noteNonTerminal(start)
	return g
}

func (g *Grammar) noteNonTerminal(nt NonTerminal) {
	if !g.seenNT[nt.name] {
		g.seenNT[nt.name] = true
		g.nonTerminals = append(g.nonTerminals, nt)
	}
}

func (g *Grammar) noteTerminal(t Terminal) {
	if !g.seenTerm[t.name] {
		g.seenTerm[t.name] = true
		g.terminals = append(g.terminals, t)
	}
}

// AddProduction appends a production lhs -> rhs to g. Appending the same
// (lhs, rhs) pair more than once has no additional effect: the operation is
// idempotent, per spec.md §4.1.
//
// No validation is performed on the symbols used; a rhs may reference
// non-terminals that are never themselves given a production (see
// Grammar.UndefinedNonTerminals).
func (g *Grammar) AddProduction(lhs NonTerminal, rhs []Symbol) {
	p := NewProduction(lhs, rhs...)
	key := p.String()
	if _, ok := g.prodIndex[key]; ok {
		return
	}

	g.prodIndex[key] = len(g.productions)
	g.productions = append(g.productions, p)

	g.noteNonTerminal(lhs)
	for _, sym := range rhs {
		if sym.IsTerminal() {
			g.noteTerminal(sym.AsTerminal())
		} else {
			g.noteNonTerminal(sym.AsNonTerminal())
		}
	}
}

// StartSymbol returns g's start non-terminal.
func (g Grammar) StartSymbol() NonTerminal {
	return g.start
}

// Productions returns g's productions in insertion order. The returned slice
// is a copy; mutating it does not affect g.
func (g Grammar) Productions() []Production {
	out := make([]Production, len(g.productions))
	copy(out, g.productions)
	return out
}

// ProductionsFor returns the sub-sequence of productions with lhs nt,
// preserving insertion order.
func (g Grammar) ProductionsFor(nt NonTerminal) []Production {
	var out []Production
	for _, p := range g.productions {
		if p.LHS == nt {
			out = append(out, p)
		}
	}
	return out
}

// ProductionIndicesFor returns the indices into Productions() of the
// productions with lhs nt, preserving insertion order. Table builders use
// this to attach a stable production index to the items and reduce actions
// they generate.
func (g Grammar) ProductionIndicesFor(nt NonTerminal) []int {
	var out []int
	for i, p := range g.productions {
		if p.LHS == nt {
			out = append(out, i)
		}
	}
	return out
}

// Terminals returns every terminal used anywhere in g's productions, in
// first-occurrence order. EndOfInput is not included; it is not part of any
// user production.
func (g Grammar) Terminals() []Terminal {
	out := make([]Terminal, len(g.terminals))
	copy(out, g.terminals)
	return out
}

// NonTerminals returns every non-terminal defined or referenced in g, in
// first-occurrence order, starting with the start symbol.
func (g Grammar) NonTerminals() []NonTerminal {
	out := make([]NonTerminal, len(g.nonTerminals))
	copy(out, g.nonTerminals)
	return out
}

// HasNonTerminal reports whether nt is known to g, either as a production lhs
// or as a symbol appearing in some rhs.
func (g Grammar) HasNonTerminal(nt NonTerminal) bool {
	return g.seenNT[nt.name]
}

// definesNonTerminal reports whether nt is the lhs of at least one
// production, as opposed to merely being referenced.
func (g Grammar) definesNonTerminal(nt NonTerminal) bool {
	for _, p := range g.productions {
		if p.LHS == nt {
			return true
		}
	}
	return false
}

// UndefinedNonTerminals returns, in first-occurrence order, every
// non-terminal that appears in some production's rhs but is never itself the
// lhs of a production. Per spec.md §7 these are non-fatal: FIRST, FOLLOW, and
// closure treat them as having an empty set rather than erroring.
func (g Grammar) UndefinedNonTerminals() []NonTerminal {
	var undefined []NonTerminal
	for _, nt := range g.nonTerminals {
		if !g.definesNonTerminal(nt) {
			undefined = append(undefined, nt)
		}
	}
	return undefined
}

// UndefinedNonTerminalsError wraps UndefinedNonTerminals into a reportable
// advisory error: nil if g has no undefined non-terminals, otherwise an error
// naming all of them and wrapping icterrors.ErrUndefinedNonTerminal.
// automaton.Construct surfaces this alongside its canonical collection so the
// warning spec.md §7 describes ("emitted lazily during FIRST/closure
// computation") is actually reachable by a caller, rather than only available
// by calling UndefinedNonTerminals directly.
func (g Grammar) UndefinedNonTerminalsError() error {
	undefined := g.UndefinedNonTerminals()
	if len(undefined) == 0 {
		return nil
	}
	names := make([]string, len(undefined))
	for i, nt := range undefined {
		names[i] = nt.Name()
	}
	return fmt.Errorf("%w: %s", icterrors.ErrUndefinedNonTerminal, strings.Join(names, ", "))
}

// Validate reports ErrEmptyGrammar if g has no productions, or if its start
// symbol is never the lhs of a production.
func (g Grammar) Validate() error {
	if len(g.productions) == 0 {
		return fmt.Errorf("%w: no productions", icterrors.ErrEmptyGrammar)
	}
	if !g.definesNonTerminal(g.start) {
		return fmt.Errorf("%w: start symbol %q has no production", icterrors.ErrEmptyGrammar, g.start.Name())
	}
	return nil
}

// Copy returns a deep copy of g.
func (g Grammar) Copy() Grammar {
	cp := Grammar{
		start:        g.start,
		productions:  g.Productions(),
		terminals:    g.Terminals(),
		nonTerminals: g.NonTerminals(),
		seenTerm:     make(map[string]bool, len(g.seenTerm)),
		seenNT:       make(map[string]bool, len(g.seenNT)),
		prodIndex:    make(map[string]int, len(g.prodIndex)),
	}
	for k, v := range g.seenTerm {
		cp.seenTerm[k] = v
	}
	for k, v := range g.seenNT {
		cp.seenNT[k] = v
	}
	for k, v := range g.prodIndex {
		cp.prodIndex[k] = v
	}
	return cp
}

// generateUniqueNonTerminalName returns a name derived from base that is not
// currently used by g as a non-terminal, by appending "'" until it is unique.
// Grounded in the teacher's Grammar.GenerateUniqueTerminal.
func (g Grammar) generateUniqueNonTerminalName(base string) string {
	name := base
	for g.seenNT[name] {
		name += "'"
	}
	return name
}

// Augmented returns a new grammar with a fresh production S' -> start
// prepended, where S' is a non-terminal not already present in g. Per
// spec.md §3, S' is the augmented start and its production always has
// index 0.
//
// If the conventional name "S'" is already used by g, a disambiguated name
// is generated instead (appending primes until unique) and a non-fatal
// *icterrors.CollisionError wrapping icterrors.ErrStartSymbolCollision is
// returned alongside the valid, augmented grammar: callers that don't care
// about the exact augmented-start name can ignore the error.
func (g Grammar) Augmented() (Grammar, error) {
	wanted := "S'"
	name := g.generateUniqueNonTerminalName(wanted)

	augmentedStart := NewNonTerminal(name)
	aug := New(augmentedStart)
	aug.AddProduction(augmentedStart, []Symbol{NonTerm(g.start)})
	for _, p := range g.productions {
		aug.AddProduction(p.LHS, p.RHS)
	}
	// AddProduction only records symbols that occur in a production; make
	// sure every symbol g has ever seen (including unreferenced terminals
	// declared only via occurrence) is still tracked in the same order.
	for _, t := range g.terminals {
		aug.noteTerminal(t)
	}
	for _, nt := range g.nonTerminals {
		aug.noteNonTerminal(nt)
	}
	// re-sort first-occurrence lists so the augmented start leads and the
	// rest keeps g's original relative order.
	aug.nonTerminals = append([]NonTerminal{augmentedStart}, g.nonTerminals...)
	aug.terminals = append([]Terminal{}, g.terminals...)

	if name != wanted {
		return aug, fmt.Errorf("grammar: %w", &icterrors.CollisionError{Wanted: wanted, Chosen: name})
	}
	return aug, nil
}
