package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/plan-dataset/internal"
	"github.com/spf13/cobra"
)

var catalogPrompts bool

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the built-in banking research examples",
	Long: `List the curated mobile banking examples compiled into the tool.

Complete examples are shown with their plan title and section count.
Use --prompts to list the prompt-only entries instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := internal.LoadCatalog()
		if err != nil {
			return err
		}

		if catalogPrompts {
			displayPrompts(cmd, catalog.Prompts)
		} else {
			displayExamples(cmd, catalog.Examples)
		}
		return nil
	},
}

func displayExamples(cmd *cobra.Command, examples []internal.CatalogExample) {
	out := cmd.OutOrStdout()
	if len(examples) == 0 {
		fmt.Fprintln(out, headerStyle.Render("No catalog examples"))
		return
	}

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%d complete example(s)", len(examples))))
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(w, titleStyle.Render("#")+"\t"+titleStyle.Render("Title")+"\t"+titleStyle.Render("Sections")+"\t"+titleStyle.Render("Prompt")+"\t")
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 100))

	for i, ex := range examples {
		sections := countStyle.Render(strconv.Itoa(len(ex.Sections)))
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
			idStyle.Render(strconv.Itoa(i+1)),
			truncate(ex.Title, 50),
			sections,
			promptStyle.Render(truncate(ex.Prompt, 60)))
	}
	_ = w.Flush()
}

func displayPrompts(cmd *cobra.Command, prompts []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%d prompt-only example(s)", len(prompts))))
	fmt.Fprintln(out)
	for i, p := range prompts {
		fmt.Fprintf(out, "%s %s\n", idStyle.Render(fmt.Sprintf("%3d", i+1)), p)
	}
}

// truncate shortens s to at most n runes, ending in "..." when there is room
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		if n < 0 {
			n = 0
		}
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().BoolVar(&catalogPrompts, "prompts", false, "List prompt-only entries")
}
