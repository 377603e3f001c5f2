package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/STC/errors"
	"github.com/teranos/STC/logger"
	"github.com/teranos/STC/stc"
)

// EvalCmd evaluates sentence trees under the vocabulary's boolean model.
var EvalCmd = &cobra.Command{
	Use:   "eval [SENTENCE...]",
	Short: "Evaluate sentence trees under the vocabulary's boolean model",
	Long: `Evaluate sentences under the [model] section of the vocabulary file.

Positional arguments are canonical atomic sentences. Compound sentences
(connectives applied to sub-sentences) are read from a YAML file via
--file, one sentence per document: a scalar is a canonical atom, a
sequence is a connective name followed by its sub-sentences.

Examples:
  stc eval '=(T,T)' '=(T,F)' --vocab truth.toml
  stc eval --file sentences.yaml --vocab truth.toml

Sentence file:
  - and
  - =(T,T)
  - - not
    - =(T,F)`,
	RunE: runEval,
}

func init() {
	EvalCmd.Flags().String("file", "", "YAML file of sentence trees (one per document)")
}

func runEval(cmd *cobra.Command, args []string) error {
	file, v, err := loadVocabulary(cmd)
	if err != nil {
		reportError(err)
		return err
	}
	if file.Model.Empty() {
		err := errors.WithHint(
			errors.New("vocabulary file has no [model] section"),
			"eval needs [model.constants], [model.predicates] and [model.connectives]")
		reportError(err)
		return err
	}

	in := stc.NewInterpreter(v)
	in.SetLogger(logger.Logger)
	if err := file.BindModel(in); err != nil {
		reportError(err)
		return err
	}

	sentences, err := gatherSentences(cmd, args)
	if err != nil {
		reportError(err)
		return err
	}

	rows := pterm.TableData{{"Sentence", "Value"}}
	failed := 0
	for _, s := range sentences {
		value, err := in.Convert(s)
		if err != nil {
			failed++
			reportError(errors.Wrapf(err, "%s", describeSentence(s)))
			continue
		}
		rows = append(rows, []string{describeSentence(s), fmt.Sprintf("%v", value)})
	}

	if len(rows) > 1 {
		if err := pterm.DefaultTable.WithHasHeader().WithData(rows).Render(); err != nil {
			return err
		}
	}
	if failed > 0 {
		return errors.Newf("%d of %d sentences failed to evaluate", failed, len(sentences))
	}
	return nil
}
