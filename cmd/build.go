package cmd

import (
	"context"
	"fmt"

	"github.com/iksnae/plan-dataset/internal"
	"github.com/iksnae/plan-dataset/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	curatedPath  string
	promptsPath  string
	outputPath   string
	format       string
	systemPrompt string
	dedupeAll    bool
	sqlitePath   string
	manifestPath string
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Merge sources into one training dataset",
	Long: `Merge curated examples, the built-in catalog and reward prompts into a
single dataset file.

Curated examples and catalog records are always kept. Reward prompts whose
user message matches one already collected are skipped. Use --dedupe-all to
also drop repeats among curated and catalog records.

Flags override PLAN_DATASET_* environment variables, which override the
built-in defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := buildConfig(cmd)

		p, err := pipeline.New(cfg, nil)
		if err != nil {
			return err
		}

		report, err := p.Run(context.Background())
		if err != nil {
			return err
		}

		printReport(report)
		return nil
	},
}

// buildConfig layers changed flags over the environment defaults
func buildConfig(cmd *cobra.Command) internal.Config {
	cfg := internal.DefaultConfig()
	flags := cmd.Flags()
	if flags.Changed("curated") {
		cfg.CuratedPath = curatedPath
	}
	if flags.Changed("prompts") {
		cfg.PromptsPath = promptsPath
	}
	if flags.Changed("out") {
		cfg.OutputPath = outputPath
	}
	if flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Changed("system-prompt") {
		cfg.SystemPrompt = systemPrompt
	}
	if dedupeAll {
		cfg.Policy = internal.PolicyStrict
	}
	cfg.SQLitePath = sqlitePath
	cfg.ManifestPath = manifestPath
	return cfg
}

func printReport(r *pipeline.Report) {
	internal.PrintInfo(fmt.Sprintf("Loaded %d curated example(s)", r.CuratedLoaded))
	internal.PrintInfo(fmt.Sprintf("Generated %d catalog example(s) (%d complete, %d prompt-only)",
		r.Generated.Total, r.Generated.Complete, r.Generated.PromptOnly))
	internal.PrintInfo(fmt.Sprintf("Added %d reward prompt(s), skipped %d duplicate(s)", r.Added, r.Skipped))
	if r.Merge.Skipped > r.Skipped {
		internal.PrintWarning(fmt.Sprintf("Dropped %d repeated curated/catalog record(s)", r.Merge.Skipped-r.Skipped))
	}

	internal.PrintSuccess(fmt.Sprintf("Total: %d training example(s) written to %s", r.Output.Total, r.OutputPath))
	internal.PrintInfo(fmt.Sprintf("  - Complete (with assistant response): %d", r.Output.Complete))
	internal.PrintInfo(fmt.Sprintf("  - Prompt-only (for reward fine-tuning): %d", r.Output.PromptOnly))
	if r.SQLitePath != "" {
		internal.PrintInfo(fmt.Sprintf("SQLite snapshot: %s", r.SQLitePath))
	}
	if r.ManifestPath != "" {
		internal.PrintInfo(fmt.Sprintf("Manifest: %s", r.ManifestPath))
	}
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVar(&curatedPath, "curated", internal.DefaultCuratedPath, "Curated complete examples (JSONL), merged first")
	buildCmd.Flags().StringVar(&promptsPath, "prompts", internal.DefaultPromptsPath, "Reward fine-tuning prompts (JSONL), merged last")
	buildCmd.Flags().StringVarP(&outputPath, "out", "o", internal.DefaultOutputPath, "Output file")
	buildCmd.Flags().StringVarP(&format, "format", "f", internal.DefaultFormat, "Output format (jsonl, json, yaml, md)")
	buildCmd.Flags().StringVar(&systemPrompt, "system-prompt", internal.DefaultSystemPrompt, "System prompt for catalog records")
	buildCmd.Flags().BoolVar(&dedupeAll, "dedupe-all", false, "Deduplicate curated and catalog records too")
	buildCmd.Flags().StringVar(&sqlitePath, "sqlite", "", "Also write a SQLite snapshot of the dataset")
	buildCmd.Flags().StringVar(&manifestPath, "manifest", "", "Write a YAML run manifest")
}
