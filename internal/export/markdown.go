package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/plan-dataset/internal"
)

// MarkdownExporter renders records as a readable review document
type MarkdownExporter struct{}

// Export exports records to Markdown format
func (e *MarkdownExporter) Export(records []internal.Record, w io.Writer) error {
	summary := internal.Summarize(records)
	_, _ = fmt.Fprintf(w, "# Training Dataset\n\n")
	_, _ = fmt.Fprintf(w, "**Records:** %d  \n", summary.Total)
	_, _ = fmt.Fprintf(w, "**Complete:** %d  \n", summary.Complete)
	_, _ = fmt.Fprintf(w, "**Prompt-only:** %d\n\n", summary.PromptOnly)

	for i, record := range records {
		_, _ = fmt.Fprintf(w, "---\n\n")
		prompt, _ := record.FirstUserMessage()
		_, _ = fmt.Fprintf(w, "## %d. %s\n\n", i+1, escapeMarkdown(strings.TrimSpace(prompt)))
		_, _ = fmt.Fprintf(w, "*%s*\n\n", record.Kind())

		content, ok := record.AssistantContent()
		if !ok {
			continue
		}
		resp, err := internal.DecodePlanResponse(content)
		if err != nil {
			// not a research plan, show it verbatim
			_, _ = fmt.Fprintf(w, "```\n%s\n```\n\n", content)
			continue
		}

		_, _ = fmt.Fprintf(w, "> %s\n\n", escapeMarkdown(resp.ChatResponse))
		_, _ = fmt.Fprintf(w, "### %s\n\n", escapeMarkdown(resp.ResearchPlan.Title))
		for _, section := range resp.ResearchPlan.Sections {
			_, _ = fmt.Fprintf(w, "**%s** (`%s`)\n\n", escapeMarkdown(section.Title), section.ID)
			for _, q := range section.Questions {
				_, _ = fmt.Fprintf(w, "- %s\n", escapeMarkdown(q))
			}
			_, _ = fmt.Fprintf(w, "\n")
		}
	}

	return nil
}

// escapeMarkdown escapes emphasis markers in free text
func escapeMarkdown(text string) string {
	text = strings.ReplaceAll(text, "**", "\\*\\*")
	text = strings.ReplaceAll(text, "__", "\\_\\_")
	return text
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
