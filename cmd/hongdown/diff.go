package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	diff "github.com/shogoki/gotextdiff"
	"github.com/spf13/cobra"
)

var (
	diffAddStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	diffDelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	diffHunkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	diffHeaderStyle = lipgloss.NewStyle().Bold(true)
)

// printDiff writes a unified diff between old and new to cmd's stdout,
// colorized when stdout is a terminal (spec.md §6, "--diff").
func printDiff(cmd *cobra.Command, label, old, updated string) error {
	if old == updated {
		return nil
	}
	raw := diff.Diff(label, []byte(old), label, []byte(updated))
	if len(raw) == 0 {
		return nil
	}

	out := cmd.OutOrStdout()
	color := isatty.IsTerminal(os.Stdout.Fd())

	if _, err := fmt.Fprintln(out, renderLine(diffHeaderStyle, "--- "+label, color)); err != nil {
		return err
	}

	lines := splitLines(string(raw))
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		var rendered string
		switch line[0] {
		case '@':
			rendered = renderLine(diffHunkStyle, line, color)
		case '+':
			rendered = renderLine(diffAddStyle, line, color)
		case '-':
			rendered = renderLine(diffDelStyle, line, color)
		default:
			rendered = line
		}
		if _, err := fmt.Fprintln(out, rendered); err != nil {
			return err
		}
	}
	return nil
}

func renderLine(style lipgloss.Style, line string, color bool) string {
	if !color {
		return line
	}
	return style.Render(line)
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
