package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/STC/cmd/stc/commands"
	"github.com/teranos/STC/config"
	"github.com/teranos/STC/logger"
)

var rootCmd = &cobra.Command{
	Use:   "stc",
	Short: "STC - Sentence tree calculus",
	Long: `STC - Sentence tree calculus.

Declare a vocabulary of constants and predicates, build or parse atomic
sentences over it, compose them with connectives, and evaluate the
resulting trees under a configurable interpretation.

Available commands:
  parse   - Parse and validate canonical atomic sentences
  eval    - Evaluate sentence trees under the vocabulary's boolean model
  render  - Render sentence trees as infix expressions
  vocab   - Inspect a vocabulary file
  version - Show version information

Examples:
  stc parse '=(T,F)' --vocab truth.toml
  stc eval '=(T,T)' --vocab truth.toml
  stc eval --file sentences.yaml --vocab truth.toml
  stc render --file sentences.yaml --vocab truth.toml
  stc vocab show --vocab truth.toml`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonOutput, _ := cmd.Flags().GetBool("json-logs")
		if cfg, err := config.Load(); err == nil {
			verbosity += cfg.Logging.Verbosity
			jsonOutput = jsonOutput || cfg.Logging.JSON
		}
		if err := logger.Initialize(jsonOutput, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit logs as structured JSON")
	rootCmd.PersistentFlags().String("vocab", "", "Path to the vocabulary TOML file")

	rootCmd.AddCommand(commands.ParseCmd)
	rootCmd.AddCommand(commands.EvalCmd)
	rootCmd.AddCommand(commands.RenderCmd)
	rootCmd.AddCommand(commands.VocabCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
