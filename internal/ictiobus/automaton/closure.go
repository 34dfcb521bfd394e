package automaton

import "github.com/ondrea-voss/cfgtables/internal/ictiobus/grammar"

// Closure computes the closure of item set I under g: repeatedly, for every
// item [A -> α . B β, a] in the set with B a non-terminal, add
// [B -> . γ, b] for every production B -> γ and every b in FIRST(β a),
// until no item set addition is possible. Implements spec.md §4.4.
//
// Grounded in the teacher's automaton.go worklist loop that backs
// NewLR1ViablePrefixDFA's per-state closure computation (there inlined; here
// factored out since both closure and canonical-collection construction need
// it independently of whether the result feeds LR(1) or LALR(1)).
func Closure(g grammar.Grammar, I *ItemSet) *ItemSet {
	result := NewItemSet()
	for _, it := range I.Items() {
		result.Add(it)
	}

	prods := g.Productions()

	for {
		changed := false
		for _, it := range result.Items() {
			sym, ok := it.NextSymbol(g)
			if !ok || sym.IsTerminal() {
				continue
			}
			B := sym.AsNonTerminal()

			rhs := prods[it.ProdIndex].RHS
			beta := rhs[it.Dot+1:]

			lookaheads := firstOfBetaA(g, beta, it.Lookahead)

			for _, idx := range g.ProductionIndicesFor(B) {
				for _, a := range lookaheads {
					newItem := Item{ProdIndex: idx, Dot: 0, Lookahead: a}
					if result.Add(newItem) {
						changed = true
					}
				}
			}
		}
		if !changed {
			break
		}
	}

	return result
}

// firstOfBetaA computes FIRST(beta a): FIRST of beta, and if beta is
// nullable, a itself is also a valid lookahead.
func firstOfBetaA(g grammar.Grammar, beta []grammar.Symbol, a grammar.Terminal) []grammar.Terminal {
	fs := grammar.First(g, beta...)
	var out []grammar.Terminal
	for t := range fs.Terminals {
		out = append(out, t)
	}
	if fs.HasEpsilon {
		out = append(out, a)
	}
	return out
}

// Goto computes GOTO(I, X): the closure of the set of items advanced past X,
// for every item in I whose next symbol is X. Implements spec.md §4.4.
func Goto(g grammar.Grammar, I *ItemSet, X grammar.Symbol) *ItemSet {
	advanced := NewItemSet()
	for _, it := range I.Items() {
		sym, ok := it.NextSymbol(g)
		if !ok || sym != X {
			continue
		}
		advanced.Add(it.Advance())
	}
	return Closure(g, advanced)
}
