package stc

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/teranos/STC/errors"
)

// DecodeYAML reads a sentence tree from YAML.
//
// The mapping is structural: a scalar is the canonical text of an atomic
// sentence (an Encoded leaf), a sequence is a compound whose first element
// is the connective name and whose remaining elements are sub-sentences.
//
//	- and
//	- =(0,0)
//	- - not
//	  - =(1,0)
//
// decodes to S("and", Encoded("=(0,0)"), S("not", Encoded("=(1,0)"))).
// Nothing is resolved against a vocabulary here; like any other sentence
// tree, validation happens at conversion.
func DecodeYAML(data []byte) (Sentence, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "invalid YAML"), ErrMalformedSentence)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, errors.Mark(errors.New("expected exactly one YAML document"), ErrMalformedSentence)
	}
	return sentenceFromNode(doc.Content[0])
}

// DecodeYAMLAll reads a multi-document YAML stream, one sentence per
// document.
func DecodeYAMLAll(data []byte) ([]Sentence, error) {
	var docs []yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var doc yaml.Node
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Mark(errors.Wrap(err, "invalid YAML"), ErrMalformedSentence)
		}
		docs = append(docs, doc)
	}
	sentences := make([]Sentence, 0, len(docs))
	for _, doc := range docs {
		node := &doc
		if node.Kind == yaml.DocumentNode {
			if len(node.Content) != 1 {
				return nil, errors.Mark(errors.New("empty YAML document in stream"), ErrMalformedSentence)
			}
			node = node.Content[0]
		}
		s, err := sentenceFromNode(node)
		if err != nil {
			return nil, err
		}
		sentences = append(sentences, s)
	}
	return sentences, nil
}

func sentenceFromNode(node *yaml.Node) (Sentence, error) {
	// Follow aliases so anchored subtrees can be reused across a document.
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value == "" {
			return nil, errors.Mark(
				errors.Newf("empty scalar at line %d cannot be a sentence", node.Line),
				ErrMalformedSentence)
		}
		return Encoded(node.Value), nil

	case yaml.SequenceNode:
		if len(node.Content) == 0 {
			return nil, errors.Mark(
				errors.Newf("empty sequence at line %d cannot be a sentence", node.Line),
				ErrMalformedSentence)
		}
		head := node.Content[0]
		if head.Kind == yaml.AliasNode {
			head = head.Alias
		}
		if head.Kind != yaml.ScalarNode || head.Value == "" {
			return nil, errors.Mark(
				errors.Newf("sequence at line %d must start with a connective name", node.Line),
				ErrMalformedSentence)
		}
		// Left as nil when childless so the result matches S(name) exactly.
		var children []Sentence
		for _, c := range node.Content[1:] {
			child, err := sentenceFromNode(c)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return Compound{Connective: head.Value, Children: children}, nil

	default:
		return nil, errors.Mark(
			errors.Newf("YAML node at line %d is neither scalar nor sequence", node.Line),
			ErrMalformedSentence)
	}
}
