package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/STC/errors"
	"github.com/teranos/STC/logger"
	"github.com/teranos/STC/stc"
	"github.com/teranos/STC/stc/infix"
)

// RenderCmd renders sentence trees as infix expressions.
var RenderCmd = &cobra.Command{
	Use:   "render [SENTENCE...]",
	Short: "Render sentence trees as infix expressions",
	Long: `Render sentences as infix strings instead of evaluating them.

Every constant renders as its own name, every predicate as an infix
relation, and the connectives not/and/or/xor/implies as !, &, |, ^ and ->.
The same sentence sources as eval apply: canonical atoms as arguments,
trees from --file.

Example:
  stc render --file sentences.yaml --vocab truth.toml
  # (T=T & !T=F)`,
	RunE: runRender,
}

func init() {
	RenderCmd.Flags().String("file", "", "YAML file of sentence trees (one per document)")
}

func runRender(cmd *cobra.Command, args []string) error {
	_, v, err := loadVocabulary(cmd)
	if err != nil {
		reportError(err)
		return err
	}

	in := stc.NewInterpreter(v)
	in.SetLogger(logger.Logger)
	if err := infix.Bind(in, v); err != nil {
		reportError(err)
		return err
	}

	sentences, err := gatherSentences(cmd, args)
	if err != nil {
		reportError(err)
		return err
	}

	failed := 0
	for _, s := range sentences {
		rendered, err := in.Convert(s)
		if err != nil {
			failed++
			reportError(errors.Wrapf(err, "%s", describeSentence(s)))
			continue
		}
		pterm.Println(rendered)
	}

	if failed > 0 {
		return errors.Newf("%d of %d sentences failed to render", failed, len(sentences))
	}
	return nil
}
