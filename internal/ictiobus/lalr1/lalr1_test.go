package lalr1

import (
	"testing"

	"github.com/ondrea-voss/cfgtables/internal/ictiobus/grammar"
	"github.com/ondrea-voss/cfgtables/internal/ictiobus/lr1"
	"github.com/stretchr/testify/assert"
)

// TestConstructCanonicalSet_hasFewerOrEqualStatesThanLR1 checks the dragon-
// book state counts for S -> C C ; C -> c C | d (LR(1): 10 states, LALR(1): 7
// states) and that the reduction actually comes from unioning states that
// share a CoreKey, not merely from the assertion being a non-strict <=.
func TestConstructCanonicalSet_hasFewerOrEqualStatesThanLR1(t *testing.T) {
	assert := assert.New(t)

	g := grammar.MustParse("S -> C C ; C -> c C | d ;")

	lr1cc, err := lr1.ConstructCanonicalSet(g)
	assert.NoError(err)
	assert.Len(lr1cc.States, 10, "LR(1) collection for this grammar has 10 states")

	lalrcc, err := ConstructCanonicalSet(g)
	assert.NoError(err)
	assert.Len(lalrcc.States, 7, "LALR(1) collection for this grammar has 7 states")

	groups := map[string][]int{}
	for i, s := range lr1cc.States {
		key := s.CoreKey()
		groups[key] = append(groups[key], i)
	}
	assert.Len(groups, len(lalrcc.States),
		"distinct CoreKeys among the LR(1) states must equal the LALR(1) state count")

	var actuallyMerged int
	for _, members := range groups {
		if len(members) > 1 {
			actuallyMerged++
		}
	}
	assert.True(actuallyMerged > 0,
		"at least one group of equal-CoreKey LR(1) states must have been unioned into a single LALR(1) state")
}

func TestConstructCanonicalSet_startStateStaysZero(t *testing.T) {
	assert := assert.New(t)

	g := grammar.MustParse("S -> C C ; C -> c C | d ;")
	cc, err := ConstructCanonicalSet(g)
	assert.NoError(err)

	startProd := cc.Augmented.ProductionIndicesFor(cc.Augmented.StartSymbol())[0]
	found := false
	for _, it := range cc.States[0].Items() {
		if it.ProdIndex == startProd && it.Dot == 0 {
			found = true
		}
	}
	assert.True(found)
}

// TestLR1VsLALR1_knownDivergence is the standard witness grammar where a
// grammar has a valid LR(1) table but core-merging introduces a
// reduce/reduce conflict in the LALR(1) table.
func TestLR1VsLALR1_knownDivergence(t *testing.T) {
	assert := assert.New(t)

	g := grammar.MustParse(
		"S -> a A d | b B d | a B e | b A e ; A -> c ; B -> c ;")

	_, err := lr1.ConstructParsingTable(g)
	assert.NoError(err, "this grammar is LR(1)")

	_, err = ConstructParsingTable(g)
	assert.Error(err, "core-merging should introduce a reduce/reduce conflict for this grammar")
}

func TestConstructParsingTable_unambiguousGrammarBuilds(t *testing.T) {
	assert := assert.New(t)

	g := grammar.MustParse("S -> C C ; C -> c C | d ;")
	table, err := ConstructParsingTable(g)

	assert.NoError(err)
	assert.NotNil(table)
}
