package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNullable(t *testing.T) {
	assert := assert.New(t)

	g := MustParse("S -> A C A | A a ; A -> B B | ; B -> b | ;")

	assert.True(Nullable(g, NewNonTerminal("A")))
	assert.True(Nullable(g, NewNonTerminal("B")))
	assert.False(Nullable(g, NewNonTerminal("S")))
}

func TestFirst_ofSingleNonTerminal(t *testing.T) {
	assert := assert.New(t)

	g := MustParse("E -> T plus E | T ; T -> id | lparen E rparen ;")

	fs := First(g, NonTerm(NewNonTerminal("E")))
	assert.False(fs.HasEpsilon)
	assert.True(fs.Terminals.Has(NewTerminal("id")))
	assert.True(fs.Terminals.Has(NewTerminal("lparen")))
	assert.False(fs.Terminals.Has(NewTerminal("plus")))
}

func TestFirst_epsilonPropagatesThroughSequence(t *testing.T) {
	assert := assert.New(t)

	g := MustParse("S -> A B c ; A -> a | ; B -> b | ;")

	fs := First(g, NonTerm(NewNonTerminal("A")), NonTerm(NewNonTerminal("B")))
	assert.True(fs.HasEpsilon)
	assert.True(fs.Terminals.Has(NewTerminal("a")))
	assert.True(fs.Terminals.Has(NewTerminal("b")))

	fsAll := First(g, NonTerm(NewNonTerminal("S")))
	assert.False(fsAll.HasEpsilon)
	assert.True(fsAll.Terminals.Has(NewTerminal("c")))
}

func TestFollow_startSymbolGetsEndOfInput(t *testing.T) {
	assert := assert.New(t)

	g := MustParse("S -> A ; A -> a ;")

	followS := Follow(g, NewNonTerminal("S"))
	assert.True(followS.Terminals.Has(EndOfInput))

	followA := Follow(g, NewNonTerminal("A"))
	assert.True(followA.Terminals.Has(EndOfInput))
}

func TestFollow_throughNullableTail(t *testing.T) {
	assert := assert.New(t)

	// classic dragon-book-style example: FOLLOW(B) is {d}, and FOLLOW(C)
	// must inherit FOLLOW(B) because C ends B's production (its tail is
	// empty, hence nullable).
	g := MustParse("S -> A B d ; A -> a ; B -> b C ; C -> c | ;")

	followB := Follow(g, NewNonTerminal("B"))
	assert.True(followB.Terminals.Has(NewTerminal("d")))

	followC := Follow(g, NewNonTerminal("C"))
	assert.True(followC.Terminals.Has(NewTerminal("d")))
}
