package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hongdown/hongdown/internal/config"
)

// cliFlags holds the resolved values of hongdown's global flags, mirroring
// the teacher's package-level var block for flags bound with StringVarP
// et al. (see the AddCommand/Flags wiring in the pack's cobra-based
// examples), rather than a flags struct threaded through every call.
var cliFlags struct {
	write      bool
	check      bool
	diff       bool
	lineWidth  int
	configPath string
	stdin      bool
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "hongdown [flags] [file|pattern]...",
		Short: "Format Markdown files",
		Long: "hongdown reformats Markdown to a consistent, idempotent style: " +
			"wrapped prose, normalized lists and tables, sentence-cased headings, " +
			"and optional external code-block formatting.",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE:         runFormat,
	}

	root.Flags().BoolVarP(&cliFlags.write, "write", "w", false, "write result to each file instead of stdout")
	root.Flags().BoolVar(&cliFlags.check, "check", false, "exit 1 if any file is not already formatted, without writing")
	root.Flags().BoolVar(&cliFlags.diff, "diff", false, "print a unified diff of the changes instead of the formatted output")
	root.Flags().IntVar(&cliFlags.lineWidth, "line-width", 0, "override the configured prose line width")
	root.Flags().StringVar(&cliFlags.configPath, "config", "", "path to hongdown.toml (default: discovered by walking up from the target)")
	root.Flags().BoolVar(&cliFlags.stdin, "stdin", false, "read a single document from stdin, write the result to stdout")

	return root
}

// exitCodeFor maps a returned error to spec.md §6's exit-code contract:
// 0 on success, 1 when --check finds pending changes, 2 for configuration
// or input errors.
func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	var pending *pendingChangesError
	if errors.As(err, &pending) {
		return 1
	}
	var cfgErr *config.ConfigError
	if errors.As(err, &cfgErr) {
		return 2
	}
	return 2
}

// pendingChangesError is returned by runFormat when --check finds at
// least one file whose formatted output differs from its current
// content. It carries the number of such files for its message and is a
// distinct type so exitCodeFor can recognize it with errors.As.
type pendingChangesError struct {
	count int
}

func (e *pendingChangesError) Error() string {
	if e.count == 1 {
		return "1 file would be reformatted"
	}
	return fmt.Sprintf("%d files would be reformatted", e.count)
}
