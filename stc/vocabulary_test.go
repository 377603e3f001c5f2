package stc

import (
	"testing"

	"github.com/teranos/STC/errors"
)

func TestDeclarePredicate(t *testing.T) {
	v := NewVocabulary()

	if err := v.DeclarePredicate("x", 2); err != nil {
		t.Fatalf("DeclarePredicate() failed: %v", err)
	}

	arity, err := v.Arity("x")
	if err != nil {
		t.Fatalf("Arity() failed: %v", err)
	}
	if arity != 2 {
		t.Errorf("expected arity 2, got %d", arity)
	}

	// Identical re-declaration is idempotent.
	if err := v.DeclarePredicate("x", 2); err != nil {
		t.Errorf("identical re-declaration should succeed, got %v", err)
	}

	// Conflicting arity is a duplicate-symbol error.
	err = v.DeclarePredicate("x", 3)
	if !errors.Is(err, ErrDuplicateSymbol) {
		t.Errorf("conflicting arity should be ErrDuplicateSymbol, got %v", err)
	}
}

func TestDeclarePredicateNames(t *testing.T) {
	tests := []struct {
		name  string
		arity int
		ok    bool
	}{
		{"x", 2, true},
		{"Z", 1, true},
		{"0x", 1, true},
		{"_a", 1, true},
		{"-1", 1, true},
		{"=", 2, true},
		{"&|", 0, true},
		{"", 0, false},
		{"a b", 1, false},
		{"f(x)", 1, false},
		{"a,b", 1, false},
		{"neg", -1, false},
	}
	for _, tt := range tests {
		v := NewVocabulary()
		err := v.DeclarePredicate(tt.name, tt.arity)
		if tt.ok && err != nil {
			t.Errorf("DeclarePredicate(%q, %d) failed: %v", tt.name, tt.arity, err)
		}
		if !tt.ok && !errors.Is(err, ErrInvalidName) {
			t.Errorf("DeclarePredicate(%q, %d) should be ErrInvalidName, got %v", tt.name, tt.arity, err)
		}
	}
}

func TestDeclareConstant(t *testing.T) {
	v := NewVocabulary()
	for _, name := range []string{"+", "_a", "aa", "A", "-", "+"} {
		if err := v.DeclareConstant(name); err != nil {
			t.Fatalf("DeclareConstant(%q) failed: %v", name, err)
		}
	}

	want := []string{"+", "-", "A", "_a", "aa"}
	got := v.Constants()
	if len(got) != len(want) {
		t.Fatalf("expected %d constants, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Constants()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if err := v.DeclareConstant("a b"); !errors.Is(err, ErrInvalidName) {
		t.Errorf("whitespace in constant name should be ErrInvalidName, got %v", err)
	}
}

func TestObservability(t *testing.T) {
	v := NewVocabulary()
	if err := v.DeclarePredicate("seen", 1); err != nil {
		t.Fatal(err)
	}
	if err := v.DeclareHiddenPredicate("guilty", 1); err != nil {
		t.Fatal(err)
	}

	if obs, err := v.Observable("seen"); err != nil || !obs {
		t.Errorf("Observable(seen) = %v, %v; want true, nil", obs, err)
	}
	if obs, err := v.Observable("guilty"); err != nil || obs {
		t.Errorf("Observable(guilty) = %v, %v; want false, nil", obs, err)
	}
	if _, err := v.Observable("absent"); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("Observable on undeclared predicate should be ErrUnknownSymbol, got %v", err)
	}

	// Re-declaring with flipped observability conflicts.
	if err := v.DeclarePredicate("guilty", 1); !errors.Is(err, ErrDuplicateSymbol) {
		t.Errorf("observability conflict should be ErrDuplicateSymbol, got %v", err)
	}
}

func TestClearResetsVocabulary(t *testing.T) {
	v := NewVocabulary()
	if err := v.DeclarePredicate("x", 2); err != nil {
		t.Fatal(err)
	}
	if err := v.DeclareConstant("A"); err != nil {
		t.Fatal(err)
	}

	v.Clear()

	if _, err := v.Arity("x"); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("cleared predicate should be unknown, got %v", err)
	}
	if v.HasConstant("A") {
		t.Error("cleared constant should be unknown")
	}

	// A fresh declaration with different metadata succeeds after Clear.
	if err := v.DeclarePredicate("x", 5); err != nil {
		t.Errorf("re-declaration after Clear should succeed, got %v", err)
	}
	if arity, _ := v.Arity("x"); arity != 5 {
		t.Errorf("expected arity 5 after re-declaration, got %d", arity)
	}
}
