// Package stc implements a minimal algebra for logical sentences: atomic
// sentences built from declared predicates and constants, composed into
// trees by connectives, and reduced to values in an arbitrary target
// domain by a recursive interpreter.
//
// The three moving parts:
//
//   - Vocabulary: the grammar registry. Declares constants and predicates
//     (with arity) and validates atoms against them.
//   - Atom / Sentence: the data. An Atom is predicate(c1,...,cN) with a
//     canonical text form; a Sentence is an Atom, its canonical text, or a
//     connective applied to sub-sentences.
//   - Interpreter: the semantics. Maps constants to target-domain values
//     and predicates/connectives to Reducers, then folds a Sentence tree
//     bottom-up into a single value.
//
// Grammar and semantics are configured separately: a Vocabulary says which
// sentences are well-formed, an Interpreter says what they mean. Both are
// plain caller-owned values with no package-level state; independent
// configurations can coexist.
//
// Typical use:
//
//	v := stc.NewVocabulary()
//	v.DeclarePredicate("=", 2)
//	v.DeclareConstant("T")
//	v.DeclareConstant("F")
//
//	in := stc.NewInterpreter(v)
//	in.BindConstant("T", true)
//	in.BindConstant("F", false)
//	in.BindPredicate("=", stc.ReducerFunc(func(args []any, _ stc.Sentence) (any, error) {
//		return args[0] == args[1], nil
//	}))
//	in.BindConnective("and", boolean.And)
//
//	out, err := in.Convert(stc.S("and", stc.Encoded("=(T,T)"), stc.Encoded("=(T,F)")))
//
// Neither type is internally synchronized: configure first, then convert
// from a single goroutine or under external locking.
package stc
