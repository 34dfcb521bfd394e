package cfgtables_test

import (
	"testing"

	cfgtables "github.com/ondrea-voss/cfgtables"
	"github.com/stretchr/testify/assert"
)

func TestEndToEnd_LL1(t *testing.T) {
	assert := assert.New(t)

	g := cfgtables.MustParseGrammar("E -> T Eprime ; Eprime -> plus T Eprime | ; T -> id ;")

	table, err := cfgtables.NewLL1ParsingTable(g)
	assert.NoError(err)
	assert.Empty(table.Conflicts())
}

func TestEndToEnd_LR1AndLALR1AgreeOnUnambiguousGrammar(t *testing.T) {
	assert := assert.New(t)

	g := cfgtables.MustParseGrammar("S -> C C ; C -> c C | d ;")

	lr1Table, err := cfgtables.NewLR1ParsingTable(g)
	assert.NoError(err)
	assert.NotNil(lr1Table)

	lalrTable, err := cfgtables.NewLALR1ParsingTable(g)
	assert.NoError(err)
	assert.NotNil(lalrTable)
}

func TestEndToEnd_LALR1CanDivergeFromLR1(t *testing.T) {
	assert := assert.New(t)

	g := cfgtables.MustParseGrammar("S -> a A d | b B d | a B e | b A e ; A -> c ; B -> c ;")

	_, err := cfgtables.NewLR1ParsingTable(g)
	assert.NoError(err)

	_, err = cfgtables.NewLALR1ParsingTable(g)
	assert.Error(err)
}
