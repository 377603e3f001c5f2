// Package vocab loads STC vocabulary files: TOML documents that declare a
// grammar (constants, predicates) and, optionally, a boolean model for it.
//
// A vocabulary file looks like:
//
//	constants = ["T", "F"]
//
//	[predicates]
//	"=" = 2
//
//	[hidden_predicates]
//	guilty = 1
//
//	[model.constants]
//	T = true
//	F = false
//
//	[model.predicates]
//	"=" = "equal"
//
//	[model.connectives]
//	and = "and"
//	or  = "or"
//	not = "not"
//
// The grammar sections build an stc.Vocabulary; the [model] section binds
// an stc.Interpreter through the named reducers of stc/boolean.
package vocab

import (
	"github.com/teranos/STC/errors"
	"github.com/teranos/STC/stc"
	"github.com/teranos/STC/stc/boolean"
)

// File is a parsed vocabulary file.
type File struct {
	Constants        []string       `toml:"constants"`
	Predicates       map[string]int `toml:"predicates"`
	HiddenPredicates map[string]int `toml:"hidden_predicates"`
	Model            Model          `toml:"model"`
}

// Model is the optional boolean interpretation section.
type Model struct {
	Constants   map[string]bool   `toml:"constants"`
	Predicates  map[string]string `toml:"predicates"`
	Connectives map[string]string `toml:"connectives"`
}

// Empty reports whether no model section was present.
func (m Model) Empty() bool {
	return len(m.Constants) == 0 && len(m.Predicates) == 0 && len(m.Connectives) == 0
}

// Validate checks the file for problems that declaration would only
// surface one symbol at a time.
func (f *File) Validate() error {
	for _, name := range f.Constants {
		if !stc.ValidName(name) {
			return errors.WithHint(
				errors.Mark(errors.Newf("constant name %q outside symbol alphabet", name), stc.ErrInvalidName),
				"names may use letters, digits and _+@&|*%/~^=!-")
		}
	}
	for name, arity := range f.Predicates {
		if _, hidden := f.HiddenPredicates[name]; hidden {
			return errors.Mark(
				errors.Newf("predicate %q appears in both [predicates] and [hidden_predicates]", name),
				stc.ErrDuplicateSymbol)
		}
		if arity < 0 {
			return errors.Mark(errors.Newf("predicate %q has negative arity %d", name, arity), stc.ErrInvalidName)
		}
	}
	for name, reducer := range f.Model.Predicates {
		if _, ok := f.Predicates[name]; !ok {
			if _, ok := f.HiddenPredicates[name]; !ok {
				return errors.WithHint(
					errors.Mark(errors.Newf("model binds undeclared predicate %q", name), stc.ErrUnknownSymbol),
					"add it to [predicates] or [hidden_predicates]")
			}
		}
		if _, err := boolean.Lookup(reducer); err != nil {
			return errors.Wrapf(err, "model predicate %q", name)
		}
	}
	for name, reducer := range f.Model.Connectives {
		if _, err := boolean.Lookup(reducer); err != nil {
			return errors.Wrapf(err, "model connective %q", name)
		}
	}
	for name := range f.Model.Constants {
		if !constantDeclared(f.Constants, name) {
			return errors.WithHint(
				errors.Mark(errors.Newf("model binds undeclared constant %q", name), stc.ErrUnknownSymbol),
				"add it to the constants list")
		}
	}
	return nil
}

// Vocabulary builds the grammar registry declared by the file.
func (f *File) Vocabulary() (*stc.Vocabulary, error) {
	v := stc.NewVocabulary()
	for _, name := range f.Constants {
		if err := v.DeclareConstant(name); err != nil {
			return nil, err
		}
	}
	for name, arity := range f.Predicates {
		if err := v.DeclarePredicate(name, arity); err != nil {
			return nil, err
		}
	}
	for name, arity := range f.HiddenPredicates {
		if err := v.DeclareHiddenPredicate(name, arity); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// BindModel wires the [model] section into an interpreter using the named
// reducers from stc/boolean.
func (f *File) BindModel(in *stc.Interpreter) error {
	for name, value := range f.Model.Constants {
		if err := in.BindConstant(name, value); err != nil {
			return err
		}
	}
	for name, reducerName := range f.Model.Predicates {
		r, err := boolean.Lookup(reducerName)
		if err != nil {
			return err
		}
		if err := in.BindPredicate(name, r); err != nil {
			return err
		}
	}
	for name, reducerName := range f.Model.Connectives {
		r, err := boolean.Lookup(reducerName)
		if err != nil {
			return err
		}
		if err := in.BindConnective(name, r); err != nil {
			return err
		}
	}
	return nil
}

func constantDeclared(declared []string, name string) bool {
	for _, c := range declared {
		if c == name {
			return true
		}
	}
	return false
}
