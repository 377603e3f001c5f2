package stc

import (
	"regexp"
	"sort"

	"github.com/teranos/STC/errors"
)

// namePattern is the symbol alphabet for constants, predicates and
// connectives. It is disjoint from the structural characters of the
// canonical atom grammar: '(', ')' and ','.
var namePattern = regexp.MustCompile(`^[a-zA-Z0-9_+@&|*%/~^=!-]+$`)

// ValidName reports whether name is a legal symbol name.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// predicateInfo is the declared metadata of a predicate.
type predicateInfo struct {
	arity      int
	observable bool
}

// Vocabulary is the grammar registry: the set of declared constants and
// predicates that atoms are validated against.
//
// A Vocabulary is a plain caller-owned value. Declarations are idempotent
// under identical metadata and conflict otherwise; a failed declaration
// never partially registers.
type Vocabulary struct {
	constants  map[string]struct{}
	predicates map[string]predicateInfo
}

// NewVocabulary returns an empty vocabulary.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{
		constants:  make(map[string]struct{}),
		predicates: make(map[string]predicateInfo),
	}
}

// DeclareConstant registers a constant name. Re-declaring an existing
// constant is a no-op.
func (v *Vocabulary) DeclareConstant(name string) error {
	if !ValidName(name) {
		return errors.Mark(errors.Newf("constant name %q outside symbol alphabet", name), ErrInvalidName)
	}
	v.constants[name] = struct{}{}
	return nil
}

// DeclarePredicate registers an observable predicate with the given arity.
// Re-declaring with identical metadata is a no-op; a conflicting arity or
// observability fails with ErrDuplicateSymbol.
func (v *Vocabulary) DeclarePredicate(name string, arity int) error {
	return v.declarePredicate(name, arity, true)
}

// DeclareHiddenPredicate registers a predicate whose truth is not directly
// observable. Grammar-wise it behaves exactly like an observable one; the
// flag is metadata for interpretations that distinguish the two.
func (v *Vocabulary) DeclareHiddenPredicate(name string, arity int) error {
	return v.declarePredicate(name, arity, false)
}

func (v *Vocabulary) declarePredicate(name string, arity int, observable bool) error {
	if !ValidName(name) {
		return errors.Mark(errors.Newf("predicate name %q outside symbol alphabet", name), ErrInvalidName)
	}
	if arity < 0 {
		return errors.Mark(errors.Newf("predicate %q declared with negative arity %d", name, arity), ErrInvalidName)
	}
	if existing, ok := v.predicates[name]; ok {
		if existing.arity != arity {
			return errors.Mark(
				errors.Newf("predicate %q already declared with arity %d, not %d", name, existing.arity, arity),
				ErrDuplicateSymbol)
		}
		if existing.observable != observable {
			return errors.Mark(
				errors.Newf("predicate %q already declared with observable=%t", name, existing.observable),
				ErrDuplicateSymbol)
		}
		return nil
	}
	v.predicates[name] = predicateInfo{arity: arity, observable: observable}
	return nil
}

// Arity returns the declared arity of a predicate.
func (v *Vocabulary) Arity(name string) (int, error) {
	info, ok := v.predicates[name]
	if !ok {
		return 0, errors.Mark(errors.Newf("unknown predicate %q", name), ErrUnknownSymbol)
	}
	return info.arity, nil
}

// Observable reports whether a predicate was declared observable.
func (v *Vocabulary) Observable(name string) (bool, error) {
	info, ok := v.predicates[name]
	if !ok {
		return false, errors.Mark(errors.Newf("unknown predicate %q", name), ErrUnknownSymbol)
	}
	return info.observable, nil
}

// HasConstant reports whether name is a declared constant.
func (v *Vocabulary) HasConstant(name string) bool {
	_, ok := v.constants[name]
	return ok
}

// HasPredicate reports whether name is a declared predicate.
func (v *Vocabulary) HasPredicate(name string) bool {
	_, ok := v.predicates[name]
	return ok
}

// Constants returns the declared constant names in sorted order.
func (v *Vocabulary) Constants() []string {
	out := make([]string, 0, len(v.constants))
	for name := range v.constants {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Predicates returns the declared predicate names in sorted order.
func (v *Vocabulary) Predicates() []string {
	out := make([]string, 0, len(v.predicates))
	for name := range v.predicates {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Clear removes every declaration, returning the vocabulary to its initial
// empty state. Atoms constructed before the reset keep their data but will
// no longer validate or re-parse against this vocabulary.
func (v *Vocabulary) Clear() {
	v.constants = make(map[string]struct{})
	v.predicates = make(map[string]predicateInfo)
}
