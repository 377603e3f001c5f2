// Package boolean ships truth-functional destinations for stc sentences:
// the usual connectives plus equality-style predicates, addressable by
// name so a vocabulary file can reference them.
package boolean

import (
	"reflect"
	"sort"

	"github.com/teranos/STC/errors"
	"github.com/teranos/STC/stc"
)

// Equal is true when every resolved constant is deeply equal to the first.
// Vacuously true on an empty input list.
var Equal = stc.ReducerFunc(func(args []any, _ stc.Sentence) (any, error) {
	if len(args) == 0 {
		return true, nil
	}
	for _, a := range args[1:] {
		if !reflect.DeepEqual(args[0], a) {
			return false, nil
		}
	}
	return true, nil
})

// Distinct is the negation of Equal: true when some input differs.
var Distinct = stc.ReducerFunc(func(args []any, node stc.Sentence) (any, error) {
	eq, err := Equal(args, node)
	if err != nil {
		return nil, err
	}
	return !eq.(bool), nil
})

// Not negates its single child.
var Not = stc.ReducerFunc(func(args []any, _ stc.Sentence) (any, error) {
	if len(args) != 1 {
		return nil, errors.Newf("not takes exactly one sentence, got %d", len(args))
	}
	b, err := truth(args[0])
	if err != nil {
		return nil, err
	}
	return !b, nil
})

// And is true when no child is false. Vacuously true with no children.
var And = stc.ReducerFunc(func(args []any, _ stc.Sentence) (any, error) {
	for _, a := range args {
		b, err := truth(a)
		if err != nil {
			return nil, err
		}
		if !b {
			return false, nil
		}
	}
	return true, nil
})

// Or is true when some child is true. Vacuously false with no children.
var Or = stc.ReducerFunc(func(args []any, _ stc.Sentence) (any, error) {
	for _, a := range args {
		b, err := truth(a)
		if err != nil {
			return nil, err
		}
		if b {
			return true, nil
		}
	}
	return false, nil
})

// Xor is true when an odd number of children are true.
var Xor = stc.ReducerFunc(func(args []any, _ stc.Sentence) (any, error) {
	odd := false
	for _, a := range args {
		b, err := truth(a)
		if err != nil {
			return nil, err
		}
		if b {
			odd = !odd
		}
	}
	return odd, nil
})

// Implies is material implication over exactly two children.
var Implies = stc.ReducerFunc(func(args []any, _ stc.Sentence) (any, error) {
	if len(args) != 2 {
		return nil, errors.Newf("implies takes exactly two sentences, got %d", len(args))
	}
	p, err := truth(args[0])
	if err != nil {
		return nil, err
	}
	q, err := truth(args[1])
	if err != nil {
		return nil, err
	}
	return !p || q, nil
})

// Reducers maps the names usable in vocabulary files to their reducers.
var Reducers = map[string]stc.Reducer{
	"equal":    Equal,
	"distinct": Distinct,
	"not":      Not,
	"and":      And,
	"or":       Or,
	"xor":      Xor,
	"implies":  Implies,
}

// Lookup resolves a reducer by its published name.
func Lookup(name string) (stc.Reducer, error) {
	r, ok := Reducers[name]
	if !ok {
		return nil, errors.WithHintf(
			errors.Mark(errors.Newf("no boolean reducer named %q", name), stc.ErrUnknownSymbol),
			"known reducers: %v", names())
	}
	return r, nil
}

func names() []string {
	out := make([]string, 0, len(Reducers))
	for name := range Reducers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func truth(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, errors.Newf("expected a boolean sentence value, got %T", v)
	}
	return b, nil
}
