package stc

// Sentence is the recursive sentence union. Exactly three shapes implement
// it:
//
//   - Atom: an atomic sentence value
//   - Encoded: the canonical text of an atomic sentence, decoded when the
//     tree is interpreted
//   - Compound: a connective applied to zero or more sub-sentences
//
// A Sentence tree is unchecked at construction; names are resolved and
// validated only when the tree is interpreted.
type Sentence interface {
	sentence()
}

func (Atom) sentence() {}

// Encoded is a sentence leaf carrying the canonical text encoding of an
// atomic sentence. It is decoded against the interpreter's vocabulary at
// conversion time.
type Encoded string

func (Encoded) sentence() {}

// Compound is a connective applied to an ordered sequence of
// sub-sentences. Zero children is legal; the connective's reducer decides
// what an empty application means.
type Compound struct {
	Connective string
	Children   []Sentence
}

func (Compound) sentence() {}

// S builds a Compound. It reads like the tree it denotes:
//
//	S("and", Encoded("=(0,0)"), S("not", Encoded("=(1,0)")))
func S(connective string, children ...Sentence) Compound {
	return Compound{Connective: connective, Children: children}
}
