package cmd

import (
	"fmt"

	"github.com/iksnae/plan-dataset/internal"
	"github.com/spf13/cobra"
)

var (
	inspectStrict bool
	inspectLimit  int
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <dataset.jsonl>",
	Short: "Check a JSONL dataset for duplicates and invalid plans",
	Long: `Load a JSONL dataset and report:
  • Record counts (complete, prompt-only, other)
  • Records whose user message repeats an earlier one
  • Complete records whose assistant reply is not a valid research plan

Examples:
  plan-dataset inspect merged_training_data.jsonl
  plan-dataset inspect merged_training_data.jsonl --strict   # Fail on findings`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := internal.LoadRecords(args[0])
		if err != nil {
			return err
		}

		in := internal.Inspect(records)
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%s %s\n\n", headerStyle.Render("Dataset"), args[0])
		fmt.Fprintf(out, "  Records:     %s\n", countStyle.Render(fmt.Sprint(in.Summary.Total)))
		fmt.Fprintf(out, "  Complete:    %d\n", in.Summary.Complete)
		fmt.Fprintf(out, "  Prompt-only: %d\n", in.Summary.PromptOnly)
		if in.Other > 0 {
			fmt.Fprintf(out, "  Other:       %d\n", in.Other)
		}

		printFindings(cmd, "Duplicate prompts", in.Duplicates)
		printFindings(cmd, "Invalid research plans", in.BadPlans)

		if in.OK() {
			fmt.Fprintln(out, "\nNo problems found")
			return nil
		}
		if inspectStrict {
			return fmt.Errorf("%d duplicate(s), %d invalid plan(s)", len(in.Duplicates), len(in.BadPlans))
		}
		return nil
	},
}

func printFindings(cmd *cobra.Command, title string, findings []internal.Finding) {
	if len(findings) == 0 {
		return
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n%s (%d)\n", titleStyle.Render(title), len(findings))
	for i, f := range findings {
		if inspectLimit > 0 && i >= inspectLimit {
			fmt.Fprintf(out, "  ... %d more\n", len(findings)-i)
			break
		}
		fmt.Fprintf(out, "  %s %s\n", idStyle.Render(fmt.Sprintf("#%d", f.Line)), f.Message)
	}
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().BoolVar(&inspectStrict, "strict", false, "Exit with an error when findings are reported")
	inspectCmd.Flags().IntVar(&inspectLimit, "limit", 20, "Maximum findings listed per category (0 for all)")
}
