package stc

import "github.com/teranos/STC/errors"

// Error kinds. Every error returned by this package is marked with exactly
// one of these sentinels; classify with errors.Is.
var (
	// ErrDuplicateSymbol: re-declaration or re-binding of a name with
	// conflicting metadata. Identical re-registration is not an error.
	ErrDuplicateSymbol = errors.New("duplicate symbol")

	// ErrUnknownSymbol: a constant, predicate or connective was used
	// before being declared or bound.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrArityMismatch: an atom carries the wrong number of constants for
	// its predicate.
	ErrArityMismatch = errors.New("arity mismatch")

	// ErrParse: malformed canonical atom text.
	ErrParse = errors.New("parse error")

	// ErrMalformedSentence: a sentence node is none of the three
	// recognized shapes.
	ErrMalformedSentence = errors.New("malformed sentence")

	// ErrInvalidName: a declared name falls outside the symbol alphabet.
	ErrInvalidName = errors.New("invalid name")
)
