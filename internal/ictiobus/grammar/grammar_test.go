package grammar

import (
	"errors"
	"testing"

	"github.com/ondrea-voss/cfgtables/internal/ictiobus/icterrors"
	"github.com/stretchr/testify/assert"
)

func TestAddProduction_idempotent(t *testing.T) {
	assert := assert.New(t)

	S := NewNonTerminal("S")
	a := NewTerminal("a")

	g := New(S)
	g.AddProduction(S, Seq(Term(a)))
	g.AddProduction(S, Seq(Term(a)))

	assert.Len(g.Productions(), 1)
}

func TestProductionsFor_preservesOrder(t *testing.T) {
	assert := assert.New(t)

	g := MustParse("S -> a | b | a S ;")

	prods := g.ProductionsFor(NewNonTerminal("S"))
	assert.Len(prods, 3)
	assert.Equal("S -> a", prods[0].String())
	assert.Equal("S -> b", prods[1].String())
	assert.Equal("S -> a S", prods[2].String())
}

func TestTerminalsAndNonTerminals_firstOccurrenceOrder(t *testing.T) {
	assert := assert.New(t)

	g := MustParse("S -> b A ; A -> c | ;")

	var names []string
	for _, term := range g.Terminals() {
		names = append(names, term.Name())
	}
	assert.Equal([]string{"b", "c"}, names)

	var ntNames []string
	for _, nt := range g.NonTerminals() {
		ntNames = append(ntNames, nt.Name())
	}
	assert.Equal([]string{"S", "A"}, ntNames)
}

func TestUndefinedNonTerminals(t *testing.T) {
	assert := assert.New(t)

	g := MustParse("S -> A b ;")

	undef := g.UndefinedNonTerminals()
	assert.Len(undef, 1)
	assert.Equal("A", undef[0].Name())
}

func TestUndefinedNonTerminalsError_wrapsSentinel(t *testing.T) {
	assert := assert.New(t)

	g := MustParse("S -> A b ;")

	err := g.UndefinedNonTerminalsError()
	assert.True(errors.Is(err, icterrors.ErrUndefinedNonTerminal))
	assert.Contains(err.Error(), "A")
}

func TestUndefinedNonTerminalsError_nilWhenAllDefined(t *testing.T) {
	assert := assert.New(t)

	g := MustParse("S -> a | b ;")
	assert.NoError(g.UndefinedNonTerminalsError())
}

func TestValidate_emptyGrammar(t *testing.T) {
	assert := assert.New(t)

	g := New(NewNonTerminal("S"))
	err := g.Validate()
	assert.True(errors.Is(err, icterrors.ErrEmptyGrammar))
}

func TestAugmented_prependsFreshStart(t *testing.T) {
	assert := assert.New(t)

	g := MustParse("E -> E plus T | T ; T -> id ;")
	aug, err := g.Augmented()

	assert.NoError(err)
	prods := aug.Productions()
	assert.Equal("S' -> E", prods[0].String())
	assert.Equal("S'", aug.StartSymbol().Name())
}

func TestAugmented_collisionDisambiguates(t *testing.T) {
	assert := assert.New(t)

	start := NewNonTerminal("E")
	collider := NewNonTerminal("S'")
	g := New(start)
	g.AddProduction(start, Seq(NonTerm(collider)))
	g.AddProduction(collider, Seq(Term(NewTerminal("x"))))

	aug, err := g.Augmented()
	assert.Error(err)

	var collErr *icterrors.CollisionError
	assert.True(errors.As(err, &collErr))
	assert.Equal("S'", collErr.Wanted)
	assert.NotEqual("S'", collErr.Chosen)

	assert.Equal(collErr.Chosen, aug.StartSymbol().Name())
}
