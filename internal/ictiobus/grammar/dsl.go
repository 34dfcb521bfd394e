package grammar

import (
	"fmt"
	"strings"
)

// dsl.go is a construction convenience, not part of the analysis engine: it
// lets a grammar be written as source text instead of built with repeated
// AddProduction calls. Grounded in the teacher's grammar.MustParse, used
// throughout its test suite to write grammars like "S -> C C ; C -> c C | d".
//
// Grammar text is a sequence of rules, each terminated by ";":
//
//	S -> A b | ε ;
//	A -> a A | ;
//
// Each rule is "LHS -> ALT1 | ALT2 | ...", where each ALT is a
// whitespace-separated sequence of symbol names, or empty/"ε" for an epsilon
// alternative. A symbol name is a terminal if it is entirely lowercase,
// and a non-terminal otherwise, following the teacher's convention
// (ll1.go: "strings.ToLower(sym) == sym" marks a terminal).

// Parse parses grammar source text into a Grammar. The start symbol is the
// lhs of the first rule. Returns an error if the text is malformed.
func Parse(text string) (Grammar, error) {
	var g Grammar
	started := false

	for _, rule := range splitRules(text) {
		rule = strings.TrimSpace(rule)
		if rule == "" {
			continue
		}

		arrow := strings.Index(rule, "->")
		if arrow < 0 {
			return Grammar{}, fmt.Errorf("grammar: rule %q missing '->'", rule)
		}
		lhsName := strings.TrimSpace(rule[:arrow])
		if lhsName == "" {
			return Grammar{}, fmt.Errorf("grammar: rule %q has empty lhs", rule)
		}
		lhs := NewNonTerminal(lhsName)

		if !started {
			g = New(lhs)
			started = true
		}

		for _, alt := range strings.Split(rule[arrow+2:], "|") {
			alt = strings.TrimSpace(alt)
			rhs := parseAlt(alt)
			g.AddProduction(lhs, rhs)
		}
	}

	if !started {
		return Grammar{}, fmt.Errorf("grammar: no rules in input")
	}
	return g, nil
}

// MustParse is Parse, panicking on error. Intended for tests and examples
// where the grammar text is a fixed literal known to be valid.
func MustParse(text string) Grammar {
	g, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return g
}

func parseAlt(alt string) []Symbol {
	if alt == "" || alt == "ε" {
		return nil
	}
	fields := strings.Fields(alt)
	rhs := make([]Symbol, 0, len(fields))
	for _, f := range fields {
		if f == "ε" {
			continue
		}
		if strings.ToLower(f) == f {
			rhs = append(rhs, Term(NewTerminal(f)))
		} else {
			rhs = append(rhs, NonTerm(NewNonTerminal(f)))
		}
	}
	return rhs
}

// splitRules splits grammar text on ";" while tolerating a missing trailing
// semicolon on the final rule.
func splitRules(text string) []string {
	parts := strings.Split(text, ";")
	return parts
}
