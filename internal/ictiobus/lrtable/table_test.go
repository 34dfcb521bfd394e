package lrtable

import (
	"errors"
	"testing"

	"github.com/ondrea-voss/cfgtables/internal/ictiobus/automaton"
	"github.com/ondrea-voss/cfgtables/internal/ictiobus/grammar"
	"github.com/ondrea-voss/cfgtables/internal/ictiobus/icterrors"
	"github.com/stretchr/testify/assert"
)

func TestBuildTable_startStateHasNoActionOnEndOfInput(t *testing.T) {
	assert := assert.New(t)

	g := grammar.MustParse("S -> C C ; C -> c C | d ;")
	cc, err := automaton.Construct(g)
	assert.NoError(err)

	table, err := BuildTable(cc)
	assert.NoError(err)

	act, ok := table.Action(0, grammar.EndOfInput)
	_ = act
	assert.False(ok, "state 0 should have no action on $ before any input is consumed")
}

func TestBuildTable_acceptReachableFromStart(t *testing.T) {
	assert := assert.New(t)

	g := grammar.MustParse("S -> C C ; C -> c C | d ;")
	cc, err := automaton.Construct(g)
	assert.NoError(err)

	table, err := BuildTable(cc)
	assert.NoError(err)

	found := false
	for i := 0; i < table.NumStates; i++ {
		if act, ok := table.Action(i, grammar.EndOfInput); ok && act.Kind == Accept {
			found = true
			break
		}
	}
	assert.True(found, "some state must accept on $")
}

func TestBuildTable_detectsShiftReduceConflict(t *testing.T) {
	assert := assert.New(t)

	// an ambiguous grammar: after "E plus E", with "plus" as lookahead, the
	// parser can either shift "plus" or reduce by "E -> E plus E". The
	// ambiguity is genuine, so no lookahead splitting removes the conflict.
	g := grammar.MustParse("S -> E ; E -> E plus E | id ;")
	cc, err := automaton.Construct(g)
	assert.NoError(err)

	_, err = BuildTable(cc)
	assert.Error(err)
	if err != nil {
		var ce *icterrors.ConflictError
		assert.True(errors.As(err, &ce))
		assert.True(errors.Is(err, icterrors.ErrLRConflict))
	}
}

func TestBuildTableAllConflicts_neverFails(t *testing.T) {
	assert := assert.New(t)

	g := grammar.MustParse("S -> E ; E -> E plus E | id ;")
	cc, err := automaton.Construct(g)
	assert.NoError(err)

	table, conflicts := BuildTableAllConflicts(cc)
	assert.NotNil(table)
	_ = conflicts
}
