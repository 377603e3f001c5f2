package commands

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/STC/config"
	"github.com/teranos/STC/errors"
	"github.com/teranos/STC/stc"
	"github.com/teranos/STC/vocab"
)

// loadVocabulary resolves the --vocab flag (falling back to the configured
// default) into a parsed vocabulary file and its grammar registry.
func loadVocabulary(cmd *cobra.Command) (*vocab.File, *stc.Vocabulary, error) {
	path, _ := cmd.Flags().GetString("vocab")
	if path == "" {
		if cfg, err := config.Load(); err == nil {
			path = cfg.DefaultVocab
		}
	}
	if path == "" {
		return nil, nil, errors.WithHint(
			errors.New("no vocabulary file given"),
			"pass --vocab path/to/vocab.toml or set default_vocab in stc.toml")
	}
	file, err := vocab.LoadFromFile(path)
	if err != nil {
		return nil, nil, err
	}
	v, err := file.Vocabulary()
	if err != nil {
		return nil, nil, err
	}
	return file, v, nil
}

// gatherSentences collects the sentences a command operates on: positional
// arguments are canonical atom texts, --file contributes one sentence tree
// per YAML document.
func gatherSentences(cmd *cobra.Command, args []string) ([]stc.Sentence, error) {
	sentences := make([]stc.Sentence, 0, len(args))
	for _, a := range args {
		sentences = append(sentences, stc.Encoded(a))
	}

	path, _ := cmd.Flags().GetString("file")
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read sentence file %s", path)
		}
		fromFile, err := stc.DecodeYAMLAll(data)
		if err != nil {
			return nil, err
		}
		sentences = append(sentences, fromFile...)
	}

	if len(sentences) == 0 {
		return nil, errors.WithHint(
			errors.New("no sentences given"),
			"pass canonical atoms as arguments or a tree file via --file")
	}
	return sentences, nil
}

// describeSentence gives a one-line label for result tables.
func describeSentence(s stc.Sentence) string {
	switch node := s.(type) {
	case stc.Encoded:
		return string(node)
	case stc.Atom:
		return node.String()
	case stc.Compound:
		label := "(" + node.Connective
		for _, c := range node.Children {
			label += " " + describeSentence(c)
		}
		return label + ")"
	default:
		return "?"
	}
}

// reportError prints a colored diagnostic with any attached hints.
func reportError(err error) {
	pterm.Error.Println(err.Error())
	for _, hint := range errors.GetAllHints(err) {
		pterm.Info.Println("hint: " + hint)
	}
}
