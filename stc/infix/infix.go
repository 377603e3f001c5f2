// Package infix ships string-rendering destinations: they convert a
// sentence tree into a human-readable infix expression instead of a truth
// value, demonstrating that conversion targets are arbitrary domains.
package infix

import (
	"strings"

	"github.com/teranos/STC/errors"
	"github.com/teranos/STC/stc"
)

// Relation renders an atom as its arguments joined by symbol: Relation("=")
// turns =(0,0) into "0=0". Constants must already resolve to strings;
// Bind maps each constant to its own name.
func Relation(symbol string) stc.Reducer {
	return stc.ReducerFunc(func(args []any, _ stc.Sentence) (any, error) {
		parts, err := stringInputs(args)
		if err != nil {
			return nil, err
		}
		return strings.Join(parts, symbol), nil
	})
}

// Operator renders a compound as its children joined by symbol inside
// parentheses: Operator(" | ") turns (or A B) into "(A | B)".
func Operator(symbol string) stc.Reducer {
	return stc.ReducerFunc(func(args []any, _ stc.Sentence) (any, error) {
		parts, err := stringInputs(args)
		if err != nil {
			return nil, err
		}
		return "(" + strings.Join(parts, symbol) + ")", nil
	})
}

// Prefix renders a single-child compound with a leading symbol:
// Prefix("!") turns (not A) into "!A".
func Prefix(symbol string) stc.Reducer {
	return stc.ReducerFunc(func(args []any, _ stc.Sentence) (any, error) {
		if len(args) != 1 {
			return nil, errors.Newf("prefix operator %q takes exactly one sentence, got %d", symbol, len(args))
		}
		parts, err := stringInputs(args)
		if err != nil {
			return nil, err
		}
		return symbol + parts[0], nil
	})
}

// Bind wires a default infix rendering into an interpreter: every declared
// constant renders as its own name, every declared predicate as an infix
// relation on its name, and the common connectives as conventional
// operators.
func Bind(in *stc.Interpreter, vocab *stc.Vocabulary) error {
	for _, c := range vocab.Constants() {
		if err := in.BindConstant(c, c); err != nil {
			return err
		}
	}
	for _, p := range vocab.Predicates() {
		if err := in.BindPredicate(p, Relation(p)); err != nil {
			return err
		}
	}
	connectives := map[string]stc.Reducer{
		"not":     Prefix("!"),
		"and":     Operator(" & "),
		"or":      Operator(" | "),
		"xor":     Operator(" ^ "),
		"implies": Operator(" -> "),
	}
	for name, r := range connectives {
		if err := in.BindConnective(name, r); err != nil {
			return err
		}
	}
	return nil
}

func stringInputs(args []any) ([]string, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		s, ok := a.(string)
		if !ok {
			return nil, errors.Newf("expected a rendered string, got %T", a)
		}
		parts[i] = s
	}
	return parts, nil
}
