package grammar

// firstfollow.go implements the nullable/FIRST/FOLLOW fixed-point engine,
// spec.md §4.2/§4.3. All three fixed points (nullable, FIRST, FOLLOW) are
// computed by repeated sweeps over every production until a pass adds
// nothing; convergence is checked by comparing each set's size (and the
// nullable/ε flags) before and after an update, not by deep-equality, since
// a monotonically growing set can only ever add entries once initialized
// empty.

// TerminalSet is an unordered collection of terminals with deterministic
// iteration unavailable; callers that need a stable order should intersect
// against Grammar.Terminals().
type TerminalSet map[Terminal]struct{}

func newTerminalSet(ts ...Terminal) TerminalSet {
	s := make(TerminalSet, len(ts))
	for _, t := range ts {
		s[t] = struct{}{}
	}
	return s
}

// Has reports whether t is in s.
func (s TerminalSet) Has(t Terminal) bool {
	_, ok := s[t]
	return ok
}

// add inserts t into s, returning true if s grew.
func (s TerminalSet) add(t Terminal) bool {
	if _, ok := s[t]; ok {
		return false
	}
	s[t] = struct{}{}
	return true
}

// addAll inserts every terminal of o into s, returning true if s grew.
func (s TerminalSet) addAll(o TerminalSet) bool {
	grew := false
	for t := range o {
		if s.add(t) {
			grew = true
		}
	}
	return grew
}

// Slice returns s's members in the order they appear in order, which should
// normally be g.Terminals() for a grammar g; terminals not present in order
// are omitted.
func (s TerminalSet) Slice(order []Terminal) []Terminal {
	var out []Terminal
	for _, t := range order {
		if s.Has(t) {
			out = append(out, t)
		}
	}
	return out
}

// nullableTable caches, per non-terminal, whether it can derive ε.
type nullableTable map[NonTerminal]bool

// computeNullable computes, for every non-terminal in g, whether it can
// derive the empty string. A non-terminal is nullable if it has an epsilon
// production, or a production all of whose rhs symbols are themselves
// nullable non-terminals.
func computeNullable(g Grammar) nullableTable {
	table := make(nullableTable, len(g.nonTerminals))
	for _, nt := range g.nonTerminals {
		table[nt] = false
	}

	for {
		changed := false
		for _, p := range g.productions {
			if table[p.LHS] {
				continue
			}
			if isRHSNullable(p.RHS, table) {
				table[p.LHS] = true
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return table
}

func isRHSNullable(rhs []Symbol, table nullableTable) bool {
	for _, sym := range rhs {
		if sym.IsTerminal() {
			return false
		}
		if !table[sym.AsNonTerminal()] {
			return false
		}
	}
	return true
}

// Nullable reports whether nt can derive the empty string in g. Undefined
// non-terminals (per Grammar.UndefinedNonTerminals) are never nullable.
func Nullable(g Grammar, nt NonTerminal) bool {
	return computeNullable(g)[nt]
}

// FirstSet is the result of a FIRST computation: the terminals that can
// begin some derivation of the analyzed sequence, plus whether that sequence
// can also derive ε.
type FirstSet struct {
	Terminals  TerminalSet
	HasEpsilon bool
}

// firstTable caches FIRST(X) for every single symbol X (terminal or
// non-terminal) in g; FIRST of a longer sequence is then derived from this
// table on demand by First.
type firstTable struct {
	terms map[Terminal]FirstSet
	nts   map[NonTerminal]FirstSet
}

func computeAllFirst(g Grammar, nullable nullableTable) firstTable {
	tbl := firstTable{
		terms: make(map[Terminal]FirstSet, len(g.terminals)),
		nts:   make(map[NonTerminal]FirstSet, len(g.nonTerminals)),
	}
	for _, t := range g.terminals {
		tbl.terms[t] = FirstSet{Terminals: newTerminalSet(t)}
	}
	for _, nt := range g.nonTerminals {
		tbl.nts[nt] = FirstSet{Terminals: TerminalSet{}, HasEpsilon: nullable[nt]}
	}

	for {
		changed := false
		for _, p := range g.productions {
			cur := tbl.nts[p.LHS]
			before := len(cur.Terminals)
			beforeEps := cur.HasEpsilon

			seqEpsilon := true
			for _, sym := range p.RHS {
				var symFirst FirstSet
				if sym.IsTerminal() {
					symFirst = tbl.terms[sym.AsTerminal()]
				} else {
					symFirst = tbl.nts[sym.AsNonTerminal()]
				}
				cur.Terminals.addAll(symFirst.Terminals)
				if !symFirst.HasEpsilon {
					seqEpsilon = false
					break
				}
			}
			if p.IsEpsilon() || seqEpsilon {
				cur.HasEpsilon = true
			}

			tbl.nts[p.LHS] = cur
			if len(cur.Terminals) != before || cur.HasEpsilon != beforeEps {
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return tbl
}

// First computes FIRST(seq) in g: the set of terminals that can begin a
// derivation of seq, together with whether seq itself can derive ε. An empty
// seq trivially has HasEpsilon true and an empty terminal set.
func First(g Grammar, seq ...Symbol) FirstSet {
	tbl := computeAllFirst(g, computeNullable(g))
	return firstOfSeq(tbl, seq)
}

func firstOfSeq(tbl firstTable, seq []Symbol) FirstSet {
	result := FirstSet{Terminals: TerminalSet{}, HasEpsilon: true}
	for _, sym := range seq {
		var symFirst FirstSet
		if sym.IsTerminal() {
			symFirst = tbl.terms[sym.AsTerminal()]
		} else {
			symFirst = tbl.nts[sym.AsNonTerminal()]
		}
		result.Terminals.addAll(symFirst.Terminals)
		if !symFirst.HasEpsilon {
			result.HasEpsilon = false
			return result
		}
	}
	return result
}

// FollowSet is the result of a FOLLOW computation: the terminals that can
// immediately follow a non-terminal in some derivation from the start
// symbol.
type FollowSet struct {
	Terminals TerminalSet
}

func computeAllFollow(g Grammar, first firstTable) map[NonTerminal]FollowSet {
	follow := make(map[NonTerminal]FollowSet, len(g.nonTerminals))
	for _, nt := range g.nonTerminals {
		follow[nt] = FollowSet{Terminals: TerminalSet{}}
	}
	follow[g.start].Terminals.add(EndOfInput)

	for {
		changed := false
		for _, p := range g.productions {
			for i, sym := range p.RHS {
				if sym.IsTerminal() {
					continue
				}
				nt := sym.AsNonTerminal()
				beta := p.RHS[i+1:]
				betaFirst := firstOfSeq(first, beta)

				before := len(follow[nt].Terminals)
				follow[nt].Terminals.addAll(betaFirst.Terminals)
				if betaFirst.HasEpsilon {
					follow[nt].Terminals.addAll(follow[p.LHS].Terminals)
				}
				if len(follow[nt].Terminals) != before {
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}
	return follow
}

// Follow computes FOLLOW(nt) in g: the terminals (including EndOfInput) that
// can immediately follow nt in some sentential form derivable from g's start
// symbol.
func Follow(g Grammar, nt NonTerminal) FollowSet {
	nullable := computeNullable(g)
	first := computeAllFirst(g, nullable)
	return computeAllFollow(g, first)[nt]
}
