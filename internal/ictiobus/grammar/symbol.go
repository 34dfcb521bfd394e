// Package grammar holds the value types for context-free grammars: terminals,
// non-terminals, productions, the grammar container, and the nullable/FIRST/
// FOLLOW fixed-point engine that the table builders in ll1 and automaton
// consume.
package grammar

import "fmt"

// Terminal is an atom of input, identified by name. Two Terminals with the
// same name are the same terminal; construction is by value, not by a
// registry, so callers get interning for free by comparing names.
type Terminal struct {
	name string
}

// NewTerminal returns the Terminal with the given name.
func NewTerminal(name string) Terminal {
	return Terminal{name: name}
}

// Name returns the terminal's display name.
func (t Terminal) Name() string {
	return t.name
}

func (t Terminal) String() string {
	return t.name
}

// EndOfInput is the distinguished end-of-input terminal, "$". It is always
// present; grammars need not (and should not) declare it themselves.
var EndOfInput = NewTerminal("$")

// NonTerminal is a grammar variable, identified by name. Disjoint from
// Terminal: a Terminal and a NonTerminal that happen to share a name are
// still distinct symbols.
type NonTerminal struct {
	name string
}

// NewNonTerminal returns the NonTerminal with the given name.
func NewNonTerminal(name string) NonTerminal {
	return NonTerminal{name: name}
}

func (nt NonTerminal) Name() string {
	return nt.name
}

func (nt NonTerminal) String() string {
	return nt.name
}

// Terminals is a convenience batch constructor: given a sequence of names, it
// returns the corresponding Terminal values in the same order.
func Terminals(names ...string) []Terminal {
	ts := make([]Terminal, len(names))
	for i, n := range names {
		ts[i] = NewTerminal(n)
	}
	return ts
}

// NonTerminals is a convenience batch constructor, the NonTerminal analogue
// of Terminals.
func NonTerminals(names ...string) []NonTerminal {
	nts := make([]NonTerminal, len(names))
	for i, n := range names {
		nts[i] = NewNonTerminal(n)
	}
	return nts
}

// symbolKind tags which variant a Symbol holds.
type symbolKind int

const (
	symTerminal symbolKind = iota
	symNonTerminal
)

// Symbol is the tagged union of Terminal and NonTerminal used in production
// right-hand sides, items, and the ACTION/GOTO tables. The zero Symbol is not
// valid; always construct via Term or NonTerm.
type Symbol struct {
	kind symbolKind
	name string
}

// Term wraps a Terminal as a Symbol.
func Term(t Terminal) Symbol {
	return Symbol{kind: symTerminal, name: t.name}
}

// NonTerm wraps a NonTerminal as a Symbol.
func NonTerm(nt NonTerminal) Symbol {
	return Symbol{kind: symNonTerminal, name: nt.name}
}

// IsTerminal reports whether s holds a Terminal.
func (s Symbol) IsTerminal() bool {
	return s.kind == symTerminal
}

// IsNonTerminal reports whether s holds a NonTerminal.
func (s Symbol) IsNonTerminal() bool {
	return s.kind == symNonTerminal
}

// AsTerminal returns the wrapped Terminal. It panics if s does not hold one;
// callers should check IsTerminal first, exactly as they'd type-switch a
// tagged union.
func (s Symbol) AsTerminal() Terminal {
	if s.kind != symTerminal {
		panic(fmt.Sprintf("grammar: Symbol %q is not a Terminal", s.name))
	}
	return Terminal{name: s.name}
}

// AsNonTerminal returns the wrapped NonTerminal. It panics if s does not hold
// one.
func (s Symbol) AsNonTerminal() NonTerminal {
	if s.kind != symNonTerminal {
		panic(fmt.Sprintf("grammar: Symbol %q is not a NonTerminal", s.name))
	}
	return NonTerminal{name: s.name}
}

// Name returns the underlying terminal or non-terminal's display name.
func (s Symbol) Name() string {
	return s.name
}

func (s Symbol) String() string {
	return s.name
}

// key returns a kind-prefixed string uniquely identifying s, used as a map
// key where Terminal and NonTerminal namespaces must not collide.
func (s Symbol) key() string {
	if s.kind == symTerminal {
		return "T:" + s.name
	}
	return "N:" + s.name
}

// Seq wraps a mix of terminals/non-terminals as Symbol values, in order.
// It's a thin helper for building production right-hand sides.
func Seq(syms ...Symbol) []Symbol {
	out := make([]Symbol, len(syms))
	copy(out, syms)
	return out
}
