package stc

import (
	"strings"

	"github.com/teranos/STC/errors"
)

// Atom is an atomic sentence: a predicate applied to exactly as many
// declared constants as its arity. Atoms are immutable values; two atoms
// are equal iff their predicate and positional constant sequence are equal.
//
// The canonical text form is name(arg1,...,argN) with no whitespace;
// arity 0 encodes as name().
type Atom struct {
	predicate string
	args      []string
	text      string // cached canonical encoding
}

// NewAtom constructs a validated atom over this vocabulary.
//
// Fails with ErrUnknownSymbol if the predicate or any constant is
// undeclared, and with ErrArityMismatch if the constant count disagrees
// with the predicate's declared arity.
func (v *Vocabulary) NewAtom(predicate string, constants ...string) (Atom, error) {
	info, ok := v.predicates[predicate]
	if !ok {
		return Atom{}, errors.WithHint(
			errors.Mark(errors.Newf("unknown predicate %q", predicate), ErrUnknownSymbol),
			"declare the predicate before constructing atoms")
	}
	for _, c := range constants {
		if _, ok := v.constants[c]; !ok {
			return Atom{}, errors.WithHint(
				errors.Mark(errors.Newf("unknown constant %q", c), ErrUnknownSymbol),
				"declare the constant before constructing atoms")
		}
	}
	if len(constants) != info.arity {
		return Atom{}, errors.Mark(
			errors.Newf("predicate %q takes %d constants, got %d", predicate, info.arity, len(constants)),
			ErrArityMismatch)
	}
	args := make([]string, len(constants))
	copy(args, constants)
	return Atom{
		predicate: predicate,
		args:      args,
		text:      encodeAtom(predicate, args),
	}, nil
}

// ParseAtom decodes the canonical text form of an atom and validates it
// against this vocabulary, exactly as NewAtom would.
//
// The grammar is strict: name '(' (name (',' name)*)? ')' with names drawn
// from any characters except '(', ')' and ','. No whitespace is stripped;
// a non-canonical but semantically equivalent spelling does not parse.
// Malformed text fails with ErrParse.
func (v *Vocabulary) ParseAtom(text string) (Atom, error) {
	open := strings.IndexByte(text, '(')
	if open == -1 {
		return Atom{}, errors.Mark(errors.Newf("no opening parenthesis in %q", text), ErrParse)
	}
	if open == 0 {
		return Atom{}, errors.Mark(errors.Newf("empty predicate name in %q", text), ErrParse)
	}
	if text[len(text)-1] != ')' {
		return Atom{}, errors.Mark(errors.Newf("no closing parenthesis at end of %q", text), ErrParse)
	}
	predicate := text[:open]
	if strings.ContainsAny(predicate, "),") {
		return Atom{}, errors.Mark(errors.Newf("structural character in predicate name of %q", text), ErrParse)
	}
	inner := text[open+1 : len(text)-1]
	if strings.ContainsAny(inner, "()") {
		return Atom{}, errors.Mark(errors.Newf("nested parenthesis in %q", text), ErrParse)
	}

	var args []string
	if inner != "" {
		args = strings.Split(inner, ",")
		for _, a := range args {
			if a == "" {
				return Atom{}, errors.Mark(errors.Newf("empty constant name in %q", text), ErrParse)
			}
		}
	}
	return v.NewAtom(predicate, args...)
}

// encodeAtom builds the canonical text form.
func encodeAtom(predicate string, args []string) string {
	var b strings.Builder
	b.Grow(len(predicate) + 2 + 8*len(args))
	b.WriteString(predicate)
	b.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(a)
	}
	b.WriteByte(')')
	return b.String()
}

// Predicate returns the atom's predicate name.
func (a Atom) Predicate() string { return a.predicate }

// Args returns the atom's constant names in positional order. The returned
// slice is a copy; the atom stays immutable.
func (a Atom) Args() []string {
	out := make([]string, len(a.args))
	copy(out, a.args)
	return out
}

// String returns the canonical text encoding. Total and deterministic;
// ParseAtom(a.String()) reconstructs an equal atom under the declaring
// vocabulary.
func (a Atom) String() string { return a.text }

// Equal reports whether two atoms have the same predicate and the same
// constant sequence. Positional: x(A,B) and x(B,A) are distinct.
func (a Atom) Equal(b Atom) bool { return a.text == b.text && a.text != "" }

// zero reports whether the atom is the zero value (never produced by a
// successful NewAtom or ParseAtom).
func (a Atom) zero() bool { return a.text == "" }
