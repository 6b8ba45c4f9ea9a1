package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/plan-dataset/internal"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	envFile string
	version string = "dev"
	commit  string = "unknown"
	date    string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "plan-dataset",
	Short: "Assemble research-plan fine-tuning datasets",
	Long: `A CLI tool to assemble the merged JSONL training dataset used to fine-tune
the research-plan assistant.

The build merges, in priority order:
  1. Curated complete examples (system, user, assistant)
  2. The built-in mobile banking catalog (complete and prompt-only)
  3. Reward fine-tuning prompts, skipping any whose user message
     (case- and whitespace-insensitive) was already seen

Quick Start:
  plan-dataset build                               # Merge with defaults
  plan-dataset build --out merged.jsonl --manifest run.yaml
  plan-dataset inspect merged.jsonl                # Check an existing dataset
  plan-dataset catalog                             # List built-in examples

Paths can also be set in the environment or a .env file
(PLAN_DATASET_CURATED, PLAN_DATASET_PROMPTS, PLAN_DATASET_OUTPUT).`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		internal.SetVerbose(verbose)
		return internal.LoadEnvFile(envFile, cmd.Flags().Changed("env-file"))
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Load configuration from this env file if present")

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
