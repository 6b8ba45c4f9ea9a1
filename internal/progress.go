package internal

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	progressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// SetConsoleOutput redirects status and summary output, mainly for tests
func SetConsoleOutput(out, errOut io.Writer) {
	stdout = out
	stderr = errOut
}

// ProgressStep represents a single step in a multi-step process
type ProgressStep struct {
	Message string
	Fn      func() error
}

// RunSteps runs steps one after another, stopping at the first error.
// Each step reports a ✓/✗ status line on stderr.
func RunSteps(ctx context.Context, steps []ProgressStep) error {
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		msg := fmt.Sprintf("[%d/%d] %s", i+1, len(steps), step.Message)
		LogDebug("Starting step: %s", step.Message)

		start := time.Now()
		err := step.Fn()
		elapsed := time.Since(start).Round(time.Millisecond)

		if err != nil {
			printStatus(stderr, errorStyle, "✗", msg)
			return fmt.Errorf("%s: %w", step.Message, err)
		}
		printStatus(stderr, successStyle, "✓", msg)
		LogDebug("Finished step %q in %s", step.Message, elapsed)
	}
	return nil
}

func printStatus(w io.Writer, style lipgloss.Style, symbol, message string) {
	if isTerminal(w) {
		fmt.Fprintf(w, "%s %s\n", style.Render(symbol), message)
	} else {
		fmt.Fprintf(w, "%s %s\n", symbol, message)
	}
}

// isTerminal checks if the writer is a terminal
func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
	return false
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	if isTerminal(stdout) {
		fmt.Fprintf(stdout, "%s %s\n", successStyle.Render("✓"), message)
	} else {
		fmt.Fprintln(stdout, message)
	}
}

// PrintError prints an error message
func PrintError(message string) {
	if isTerminal(stderr) {
		fmt.Fprintf(stderr, "%s %s\n", errorStyle.Render("✗"), message)
	} else {
		fmt.Fprintln(stderr, message)
	}
}

// PrintInfo prints an info message
func PrintInfo(message string) {
	if isTerminal(stdout) {
		fmt.Fprintf(stdout, "%s %s\n", progressStyle.Render("ℹ"), message)
	} else {
		fmt.Fprintln(stdout, message)
	}
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	if isTerminal(stderr) {
		fmt.Fprintf(stderr, "%s %s\n", warningStyle.Render("⚠"), message)
	} else {
		fmt.Fprintf(stderr, "WARNING: %s\n", message)
	}
}
