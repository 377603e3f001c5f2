package stc

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/teranos/STC/errors"
)

// Reducer folds already-resolved inputs into a target-domain value.
//
// For a predicate binding, inputs are the destination values of the atom's
// constants in positional order and node is the Atom itself. For a
// connective binding, inputs are the converted child values left to right
// and node is the Compound. Either list may be empty (arity-0 predicates,
// childless connectives); a Reducer must handle that.
type Reducer interface {
	Reduce(inputs []any, node Sentence) (any, error)
}

// ReducerFunc adapts an ordinary function to the Reducer interface.
type ReducerFunc func(inputs []any, node Sentence) (any, error)

// Reduce calls f.
func (f ReducerFunc) Reduce(inputs []any, node Sentence) (any, error) {
	return f(inputs, node)
}

// Interpreter maps a vocabulary's symbols into a target domain and
// converts sentence trees into values of that domain.
//
// Constants map to values, predicates and connectives map to Reducers.
// The vocabulary supplies grammar only; interpretations are registered
// here and cleared independently of it.
//
// Like Vocabulary, an Interpreter is caller-owned and not internally
// synchronized: bind everything first, then convert.
type Interpreter struct {
	vocab       *Vocabulary
	constants   map[string]any
	predicates  map[string]Reducer
	connectives map[string]Reducer

	// strictNamespaces forbids one name being bound as both a predicate
	// and a connective. Off by default; the two live in separate tables.
	strictNamespaces bool

	log *zap.SugaredLogger
}

// NewInterpreter returns an empty interpreter over the given vocabulary.
// The vocabulary is required: Encoded leaves are decoded against it.
// Panics on nil, as that is a programming error rather than input.
func NewInterpreter(vocab *Vocabulary) *Interpreter {
	if vocab == nil {
		panic("stc: NewInterpreter requires a vocabulary")
	}
	return &Interpreter{
		vocab:       vocab,
		constants:   make(map[string]any),
		predicates:  make(map[string]Reducer),
		connectives: make(map[string]Reducer),
		log:         zap.NewNop().Sugar(),
	}
}

// SetLogger installs a logger for conversion tracing. Pass nil to silence.
func (in *Interpreter) SetLogger(log *zap.SugaredLogger) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	in.log = log
}

// StrictNamespaces makes predicate and connective names mutually
// exclusive: binding a name in one table after the other fails with
// ErrDuplicateSymbol. The default permits the overlap, since atoms and
// compounds are dispatched by shape, never by name alone.
func (in *Interpreter) StrictNamespaces() {
	in.strictNamespaces = true
}

// BindConstant registers the destination value of a constant.
// Re-binding the same (deeply equal) value is a no-op; a different value
// fails with ErrDuplicateSymbol.
func (in *Interpreter) BindConstant(name string, value any) error {
	if existing, ok := in.constants[name]; ok {
		if reflect.DeepEqual(existing, value) {
			return nil
		}
		return errors.Mark(errors.Newf("constant %q already bound to a different value", name), ErrDuplicateSymbol)
	}
	in.constants[name] = value
	return nil
}

// BindPredicate registers the Reducer a predicate converts through.
// Re-binding the identical reducer is a no-op; anything else fails with
// ErrDuplicateSymbol.
func (in *Interpreter) BindPredicate(name string, r Reducer) error {
	if in.strictNamespaces {
		if _, ok := in.connectives[name]; ok {
			return errors.Mark(errors.Newf("name %q already bound as a connective", name), ErrDuplicateSymbol)
		}
	}
	if existing, ok := in.predicates[name]; ok {
		if sameReducer(existing, r) {
			return nil
		}
		return errors.Mark(errors.Newf("predicate %q already bound", name), ErrDuplicateSymbol)
	}
	in.predicates[name] = r
	return nil
}

// BindConnective registers the Reducer a connective converts through.
// Connective names share the symbol alphabet with everything else; an
// invalid name fails with ErrInvalidName. Re-binding the identical reducer
// is a no-op; anything else fails with ErrDuplicateSymbol.
func (in *Interpreter) BindConnective(name string, r Reducer) error {
	if !ValidName(name) {
		return errors.Mark(errors.Newf("connective name %q outside symbol alphabet", name), ErrInvalidName)
	}
	if in.strictNamespaces {
		if _, ok := in.predicates[name]; ok {
			return errors.Mark(errors.Newf("name %q already bound as a predicate", name), ErrDuplicateSymbol)
		}
	}
	if existing, ok := in.connectives[name]; ok {
		if sameReducer(existing, r) {
			return nil
		}
		return errors.Mark(errors.Newf("connective %q already bound", name), ErrDuplicateSymbol)
	}
	in.connectives[name] = r
	return nil
}

// sameReducer reports whether two reducers are recognizably the same
// registration. Function values are compared by code pointer; comparable
// non-func implementations by interface equality. When identity cannot be
// established the answer is false and the caller reports a conflict.
func sameReducer(a, b Reducer) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() == reflect.Func || vb.Kind() == reflect.Func {
		return va.Kind() == vb.Kind() && va.Pointer() == vb.Pointer()
	}
	if va.Type() != vb.Type() || !va.Type().Comparable() {
		return false
	}
	return a == b
}

// Clear drops every binding, returning the interpreter to its initial
// empty state over the same vocabulary.
func (in *Interpreter) Clear() {
	in.constants = make(map[string]any)
	in.predicates = make(map[string]Reducer)
	in.connectives = make(map[string]Reducer)
}

// Convert reduces a sentence tree to a single target-domain value.
//
// The walk is depth-first and post-order: every child is fully converted,
// left to right, before its parent's reducer runs. There is no
// short-circuiting — an "and" whose first child is false still converts
// the rest — and no memoization; structurally identical subtrees are
// recomputed because each occurrence is its own context node.
//
// Failures: an Encoded leaf that does not decode surfaces ErrParse /
// ErrUnknownSymbol / ErrArityMismatch from the vocabulary; an unbound
// constant, predicate or connective is ErrUnknownSymbol; a nil node or a
// Compound-free non-sentence shape is ErrMalformedSentence. Every failure
// aborts the whole conversion with no partial result.
func (in *Interpreter) Convert(s Sentence) (any, error) {
	return in.convert(s, 0)
}

func (in *Interpreter) convert(s Sentence, depth int) (any, error) {
	switch node := s.(type) {
	case Encoded:
		atom, err := in.vocab.ParseAtom(string(node))
		if err != nil {
			return nil, errors.Wrapf(err, "decoding %q", string(node))
		}
		return in.convertAtom(atom, depth)

	case Atom:
		if node.zero() {
			return nil, errors.Mark(errors.New("zero-value atom in sentence tree"), ErrMalformedSentence)
		}
		return in.convertAtom(node, depth)

	case Compound:
		reducer, ok := in.connectives[node.Connective]
		if !ok {
			return nil, errors.Mark(errors.Newf("unknown connective %q", node.Connective), ErrUnknownSymbol)
		}
		inputs := make([]any, len(node.Children))
		for i, child := range node.Children {
			value, err := in.convert(child, depth+1)
			if err != nil {
				return nil, err
			}
			inputs[i] = value
		}
		in.log.Debugw("reduce connective",
			"connective", node.Connective,
			"children", len(node.Children),
			"depth", depth,
		)
		return reducer.Reduce(inputs, node)

	case nil:
		return nil, errors.Mark(errors.New("nil sentence node"), ErrMalformedSentence)

	default:
		return nil, errors.Mark(errors.Newf("unrecognized sentence shape %T", s), ErrMalformedSentence)
	}
}

// convertAtom resolves an atom's constants and dispatches its predicate.
func (in *Interpreter) convertAtom(atom Atom, depth int) (any, error) {
	reducer, ok := in.predicates[atom.Predicate()]
	if !ok {
		return nil, errors.WithHint(
			errors.Mark(errors.Newf("no destination for predicate %q", atom.Predicate()), ErrUnknownSymbol),
			"bind the predicate before converting")
	}
	args := atom.Args()
	inputs := make([]any, len(args))
	for i, c := range args {
		value, ok := in.constants[c]
		if !ok {
			return nil, errors.WithHint(
				errors.Mark(errors.Newf("no destination for constant %q", c), ErrUnknownSymbol),
				"bind the constant before converting")
		}
		inputs[i] = value
	}
	in.log.Debugw("reduce atom",
		"atom", atom.String(),
		"depth", depth,
	)
	return reducer.Reduce(inputs, atom)
}
