package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/STC/errors"
	"github.com/teranos/STC/logger"
)

// ParseCmd parses and validates canonical atomic sentences.
var ParseCmd = &cobra.Command{
	Use:   "parse ATOM...",
	Short: "Parse and validate canonical atomic sentences",
	Long: `Parse canonical atomic sentences against a vocabulary.

Each argument must be in canonical form: name(arg1,arg2,...,argN) with no
whitespace, or name() for a predicate of arity 0. The predicate and every
constant must be declared in the vocabulary file, and the argument count
must match the predicate's declared arity.

Examples:
  stc parse '=(T,F)' --vocab truth.toml
  stc parse 'ready()' 'link(A,B)' --vocab graph.toml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	_, v, err := loadVocabulary(cmd)
	if err != nil {
		reportError(err)
		return err
	}

	logger.Logger.Debugw("parsing atoms", "count", len(args))

	failed := 0
	for _, text := range args {
		atom, err := v.ParseAtom(text)
		if err != nil {
			failed++
			reportError(errors.Wrapf(err, "%s", text))
			continue
		}
		pterm.Success.Printfln("%s  predicate=%s arity=%d", atom, atom.Predicate(), len(atom.Args()))
	}

	if failed > 0 {
		return errors.Newf("%d of %d atoms failed to parse", failed, len(args))
	}
	return nil
}
