package stc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/STC/errors"
)

// equalityModel builds the "=" over digits 0..9 boolean interpretation used
// throughout these tests.
func equalityModel(t *testing.T) (*Vocabulary, *Interpreter) {
	t.Helper()
	v := NewVocabulary()
	require.NoError(t, v.DeclarePredicate("=", 2))
	for i := 0; i < 10; i++ {
		name := string(rune('0' + i))
		require.NoError(t, v.DeclareConstant(name))
	}

	in := NewInterpreter(v)
	for i := 0; i < 10; i++ {
		name := string(rune('0' + i))
		require.NoError(t, in.BindConstant(name, i))
	}
	require.NoError(t, in.BindPredicate("=", ReducerFunc(func(args []any, _ Sentence) (any, error) {
		return args[0] == args[1], nil
	})))
	require.NoError(t, in.BindConnective("not", ReducerFunc(func(args []any, _ Sentence) (any, error) {
		return !args[0].(bool), nil
	})))
	require.NoError(t, in.BindConnective("or", ReducerFunc(func(args []any, _ Sentence) (any, error) {
		for _, a := range args {
			if a.(bool) {
				return true, nil
			}
		}
		return false, nil
	})))
	require.NoError(t, in.BindConnective("and", ReducerFunc(func(args []any, _ Sentence) (any, error) {
		for _, a := range args {
			if !a.(bool) {
				return false, nil
			}
		}
		return true, nil
	})))
	return v, in
}

func TestConvertBooleanModel(t *testing.T) {
	v, in := equalityModel(t)

	eq00, err := v.NewAtom("=", "0", "0")
	require.NoError(t, err)
	eq10, err := v.NewAtom("=", "1", "0")
	require.NoError(t, err)

	tests := []struct {
		name     string
		sentence Sentence
		expected bool
	}{
		{"atom true", Encoded("=(0,0)"), true},
		{"atom false", Encoded("=(1,0)"), false},
		{"or", S("or", Encoded("=(0,0)"), Encoded("=(1,0)")), true},
		{"and", S("and", Encoded("=(0,0)"), Encoded("=(1,0)")), false},
		{"mixed atom forms", S("and", eq00, S("not", eq10)), true},
		{"nested", S("or", S("not", Encoded("=(0,0)")), eq10), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := in.Convert(tt.sentence)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestConvertRenderingModel(t *testing.T) {
	// The same trees under a string-building interpretation: conversion is
	// generic over the target domain.
	v := NewVocabulary()
	require.NoError(t, v.DeclarePredicate("=", 2))
	for _, c := range []string{"0", "1"} {
		require.NoError(t, v.DeclareConstant(c))
	}

	in := NewInterpreter(v)
	require.NoError(t, in.BindConstant("0", "0"))
	require.NoError(t, in.BindConstant("1", "1"))
	require.NoError(t, in.BindPredicate("=", ReducerFunc(func(args []any, _ Sentence) (any, error) {
		return args[0].(string) + "=" + args[1].(string), nil
	})))
	require.NoError(t, in.BindConnective("not", ReducerFunc(func(args []any, _ Sentence) (any, error) {
		return "!" + args[0].(string), nil
	})))
	join := func(sep string) Reducer {
		return ReducerFunc(func(args []any, _ Sentence) (any, error) {
			parts := make([]string, len(args))
			for i, a := range args {
				parts[i] = a.(string)
			}
			return "(" + strings.Join(parts, sep) + ")", nil
		})
	}
	require.NoError(t, in.BindConnective("or", join(" | ")))
	require.NoError(t, in.BindConnective("and", join(" & ")))

	tests := []struct {
		sentence Sentence
		expected string
	}{
		{Encoded("=(0,0)"), "0=0"},
		{Encoded("=(1,0)"), "1=0"},
		{S("or", Encoded("=(0,0)"), Encoded("=(1,0)")), "(0=0 | 1=0)"},
		{S("and", Encoded("=(0,0)"), S("not", Encoded("=(1,0)"))), "(0=0 & !1=0)"},
	}
	for _, tt := range tests {
		got, err := in.Convert(tt.sentence)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, got)
	}
}

func TestConvertStringObjectEquivalence(t *testing.T) {
	v, in := equalityModel(t)

	for _, args := range [][]string{{"0", "0"}, {"1", "0"}, {"7", "7"}} {
		atom, err := v.NewAtom("=", args...)
		require.NoError(t, err)

		fromAtom, err := in.Convert(atom)
		require.NoError(t, err)
		fromText, err := in.Convert(Encoded(atom.String()))
		require.NoError(t, err)
		assert.Equal(t, fromAtom, fromText, "atom %s", atom)
	}
}

func TestConvertUnknownSymbols(t *testing.T) {
	_, in := equalityModel(t)

	_, err := in.Convert(S("xor", Encoded("=(0,0)")))
	assert.True(t, errors.Is(err, ErrUnknownSymbol), "unbound connective: %v", err)

	v2 := NewVocabulary()
	require.NoError(t, v2.DeclarePredicate("p", 0))
	in2 := NewInterpreter(v2)
	_, err = in2.Convert(Encoded("p()"))
	assert.True(t, errors.Is(err, ErrUnknownSymbol), "unbound predicate: %v", err)

	// Declared constant without a bound destination.
	v3 := NewVocabulary()
	require.NoError(t, v3.DeclarePredicate("q", 1))
	require.NoError(t, v3.DeclareConstant("A"))
	in3 := NewInterpreter(v3)
	require.NoError(t, in3.BindPredicate("q", ReducerFunc(func(args []any, _ Sentence) (any, error) {
		return args, nil
	})))
	_, err = in3.Convert(Encoded("q(A)"))
	assert.True(t, errors.Is(err, ErrUnknownSymbol), "unbound constant: %v", err)
}

func TestConvertMalformedShapes(t *testing.T) {
	_, in := equalityModel(t)

	_, err := in.Convert(nil)
	assert.True(t, errors.Is(err, ErrMalformedSentence), "nil sentence: %v", err)

	_, err = in.Convert(Atom{})
	assert.True(t, errors.Is(err, ErrMalformedSentence), "zero atom: %v", err)

	_, err = in.Convert(Encoded("not a sentence"))
	assert.True(t, errors.Is(err, ErrParse), "garbage text: %v", err)
}

func TestConvertEmptyInputs(t *testing.T) {
	v := NewVocabulary()
	require.NoError(t, v.DeclarePredicate("ready", 0))

	in := NewInterpreter(v)
	require.NoError(t, in.BindPredicate("ready", ReducerFunc(func(args []any, _ Sentence) (any, error) {
		return len(args) == 0, nil
	})))
	require.NoError(t, in.BindConnective("all", ReducerFunc(func(args []any, _ Sentence) (any, error) {
		// Vacuous truth over no children.
		for _, a := range args {
			if !a.(bool) {
				return false, nil
			}
		}
		return true, nil
	})))

	got, err := in.Convert(Encoded("ready()"))
	require.NoError(t, err)
	assert.Equal(t, true, got, "arity-0 predicate receives an empty input list")

	got, err = in.Convert(S("all"))
	require.NoError(t, err)
	assert.Equal(t, true, got, "childless connective receives an empty input list")
}

func TestConvertNoShortCircuit(t *testing.T) {
	_, in := equalityModel(t)

	// The right branch is a tree that fails to convert. A short-circuiting
	// "and" would return false on the left branch; the contract is that
	// every child converts before the reducer runs, so the error wins.
	_, err := in.Convert(S("and", Encoded("=(1,0)"), S("mystery")))
	assert.True(t, errors.Is(err, ErrUnknownSymbol),
		"children must be converted even when an 'and' is already decided: %v", err)
}

func TestConvertContextNode(t *testing.T) {
	v := NewVocabulary()
	require.NoError(t, v.DeclarePredicate("p", 0))

	in := NewInterpreter(v)
	var sawAtom, sawCompound bool
	require.NoError(t, in.BindPredicate("p", ReducerFunc(func(_ []any, node Sentence) (any, error) {
		atom, ok := node.(Atom)
		sawAtom = ok && atom.String() == "p()"
		return true, nil
	})))
	require.NoError(t, in.BindConnective("id", ReducerFunc(func(args []any, node Sentence) (any, error) {
		c, ok := node.(Compound)
		sawCompound = ok && c.Connective == "id"
		return args[0], nil
	})))

	// A string leaf reaches the predicate reducer as the decoded Atom.
	_, err := in.Convert(S("id", Encoded("p()")))
	require.NoError(t, err)
	assert.True(t, sawAtom, "predicate reducer should receive the Atom node")
	assert.True(t, sawCompound, "connective reducer should receive the Compound node")
}

func TestBindIdempotence(t *testing.T) {
	v := NewVocabulary()
	require.NoError(t, v.DeclareConstant("T"))

	in := NewInterpreter(v)

	// Constants: same value twice is fine, different value conflicts.
	require.NoError(t, in.BindConstant("T", true))
	require.NoError(t, in.BindConstant("T", true))
	err := in.BindConstant("T", false)
	assert.True(t, errors.Is(err, ErrDuplicateSymbol), "conflicting constant: %v", err)

	// Reducers: the identical function twice is fine, a different one
	// conflicts.
	same := ReducerFunc(func(args []any, _ Sentence) (any, error) { return args, nil })
	require.NoError(t, in.BindConnective("and", same))
	require.NoError(t, in.BindConnective("and", same))
	err = in.BindConnective("and", ReducerFunc(func(args []any, _ Sentence) (any, error) { return nil, nil }))
	assert.True(t, errors.Is(err, ErrDuplicateSymbol), "conflicting connective: %v", err)

	err = in.BindConnective("bad name", same)
	assert.True(t, errors.Is(err, ErrInvalidName), "connective name validation: %v", err)
}

func TestStrictNamespaces(t *testing.T) {
	v := NewVocabulary()
	r := ReducerFunc(func(args []any, _ Sentence) (any, error) { return args, nil })

	// Default: a name may be both a predicate and a connective.
	in := NewInterpreter(v)
	require.NoError(t, in.BindPredicate("=", r))
	require.NoError(t, in.BindConnective("=", r))

	// Strict: the two tables share one namespace.
	strict := NewInterpreter(v)
	strict.StrictNamespaces()
	require.NoError(t, strict.BindPredicate("=", r))
	err := strict.BindConnective("=", r)
	assert.True(t, errors.Is(err, ErrDuplicateSymbol), "strict overlap: %v", err)
}

func TestInterpreterClear(t *testing.T) {
	_, in := equalityModel(t)

	got, err := in.Convert(Encoded("=(0,0)"))
	require.NoError(t, err)
	require.Equal(t, true, got)

	in.Clear()

	_, err = in.Convert(Encoded("=(0,0)"))
	assert.True(t, errors.Is(err, ErrUnknownSymbol), "bindings should be gone after Clear: %v", err)

	// Re-binding with different destinations succeeds after Clear.
	require.NoError(t, in.BindPredicate("=", ReducerFunc(func(args []any, _ Sentence) (any, error) {
		return "rebound", nil
	})))
}
