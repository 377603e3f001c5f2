package commands

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// VocabCmd groups vocabulary inspection subcommands.
var VocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Inspect a vocabulary file",
}

var vocabShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the declared symbols and model bindings",
	Long: `Show a vocabulary file's declared constants and predicates, and the
boolean model bindings if a [model] section is present.

Example:
  stc vocab show --vocab truth.toml`,
	RunE: runVocabShow,
}

func init() {
	VocabCmd.AddCommand(vocabShowCmd)
}

func runVocabShow(cmd *cobra.Command, args []string) error {
	file, v, err := loadVocabulary(cmd)
	if err != nil {
		reportError(err)
		return err
	}

	pterm.DefaultSection.Println("Constants")
	constants := pterm.TableData{{"Name", "Model value"}}
	for _, name := range v.Constants() {
		value := ""
		if bound, ok := file.Model.Constants[name]; ok {
			value = strconv.FormatBool(bound)
		}
		constants = append(constants, []string{name, value})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(constants).Render(); err != nil {
		return err
	}

	pterm.DefaultSection.Println("Predicates")
	predicates := pterm.TableData{{"Name", "Arity", "Observable", "Model reducer"}}
	for _, name := range v.Predicates() {
		arity, err := v.Arity(name)
		if err != nil {
			return err
		}
		observable, err := v.Observable(name)
		if err != nil {
			return err
		}
		predicates = append(predicates, []string{
			name,
			strconv.Itoa(arity),
			strconv.FormatBool(observable),
			file.Model.Predicates[name],
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(predicates).Render(); err != nil {
		return err
	}

	if len(file.Model.Connectives) > 0 {
		pterm.DefaultSection.Println("Connectives")
		names := make([]string, 0, len(file.Model.Connectives))
		for name := range file.Model.Connectives {
			names = append(names, name)
		}
		sort.Strings(names)
		connectives := pterm.TableData{{"Name", "Model reducer"}}
		for _, name := range names {
			connectives = append(connectives, []string{name, file.Model.Connectives[name]})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(connectives).Render(); err != nil {
			return err
		}
	}

	fmt.Println()
	return nil
}
