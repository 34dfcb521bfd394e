package lr1

import (
	"testing"

	"github.com/ondrea-voss/cfgtables/internal/ictiobus/automaton"
	"github.com/ondrea-voss/cfgtables/internal/ictiobus/grammar"
	"github.com/stretchr/testify/assert"
)

func TestConstructCanonicalSet_startsAtAugmentedItem(t *testing.T) {
	assert := assert.New(t)

	g := grammar.MustParse("S -> C C ; C -> c C | d ;")
	cc, err := ConstructCanonicalSet(g)

	assert.NoError(err)
	assert.True(len(cc.States) > 0)

	startProd := cc.Augmented.ProductionIndicesFor(cc.Augmented.StartSymbol())[0]
	assert.True(cc.States[0].Has(automaton.Item{ProdIndex: startProd, Dot: 0, Lookahead: grammar.EndOfInput}))
}

func TestConstructParsingTable_unambiguousGrammarBuilds(t *testing.T) {
	assert := assert.New(t)

	g := grammar.MustParse("S -> C C ; C -> c C | d ;")
	table, err := ConstructParsingTable(g)

	assert.NoError(err)
	assert.NotNil(table)
}

func TestConstructParsingTable_conflictingGrammarErrors(t *testing.T) {
	assert := assert.New(t)

	g := grammar.MustParse("S -> E ; E -> E plus E | id ;")
	_, err := ConstructParsingTable(g)

	assert.Error(err)
}

func TestConstructParsingTableAllConflicts_reportsEveryConflict(t *testing.T) {
	assert := assert.New(t)

	g := grammar.MustParse("S -> E ; E -> E plus E | id ;")
	table, conflicts, err := ConstructParsingTableAllConflicts(g)

	assert.NoError(err)
	assert.NotNil(table)
	assert.True(len(conflicts) > 0)
}
