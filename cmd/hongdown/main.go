// Command hongdown formats Markdown files per spec.md's rules: fenced
// code blocks, sentence-cased headings, wrapped prose, and normalized
// lists and tables. It is the CLI surface over internal/hongdown, built
// the way the teacher assembles its own command surface — a thin
// main.go delegating to the package that holds the real logic.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}
