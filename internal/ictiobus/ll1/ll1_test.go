package ll1

import (
	"testing"

	"github.com/ondrea-voss/cfgtables/internal/ictiobus/grammar"
	"github.com/stretchr/testify/assert"
)

func TestConstructParsingTable_predictsByFirst(t *testing.T) {
	assert := assert.New(t)

	g := grammar.MustParse("E -> T Eprime ; Eprime -> plus T Eprime | ; T -> id ;")
	table, err := ConstructParsingTable(g)
	assert.NoError(err)

	E := grammar.NewNonTerminal("E")
	id := grammar.NewTerminal("id")

	prods := table.Predict(E, id)
	assert.Len(prods, 1)
	assert.Equal("E -> T Eprime", prods[0].String())
}

func TestConstructParsingTable_nullableUsesFollow(t *testing.T) {
	assert := assert.New(t)

	g := grammar.MustParse("E -> T Eprime ; Eprime -> plus T Eprime | ; T -> id ;")
	table, err := ConstructParsingTable(g)
	assert.NoError(err)

	Eprime := grammar.NewNonTerminal("Eprime")
	prods := table.Predict(Eprime, grammar.EndOfInput)
	assert.Len(prods, 1)
	assert.True(prods[0].IsEpsilon())
}

func TestConstructParsingTable_detectsConflict(t *testing.T) {
	assert := assert.New(t)

	// A -> a | a b is not LL(1): FIRST(both alts) share "a".
	g := grammar.MustParse("S -> A ; A -> a | a b ;")
	table, err := ConstructParsingTable(g)
	assert.NoError(err)

	conflicts := table.Conflicts()
	assert.Len(conflicts, 1)
	assert.Equal("A", conflicts[0].NonTerminal)
	assert.Equal("a", conflicts[0].Terminal)
}

func TestConstructParsingTable_emptyGrammarErrors(t *testing.T) {
	assert := assert.New(t)

	g := grammar.New(grammar.NewNonTerminal("S"))
	_, err := ConstructParsingTable(g)
	assert.Error(err)
}
