package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hongdown/hongdown/internal/codeformatter"
	"github.com/hongdown/hongdown/internal/config"
	"github.com/hongdown/hongdown/internal/hongdown"
	"github.com/hongdown/hongdown/internal/options"
)

func runFormat(cmd *cobra.Command, args []string) error {
	if cliFlags.stdin || len(args) == 0 {
		return runStdin(cmd)
	}

	files, err := expandArgs(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return runStdin(cmd)
	}
	sort.Strings(files)

	results := make([]fileResult, len(files))
	g, ctx := errgroup.WithContext(context.Background())
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			r, err := processFile(f)
			if err != nil {
				return fmt.Errorf("%s: %w", f, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	pending := 0
	for _, r := range results {
		if err := r.emit(cmd); err != nil {
			return err
		}
		if r.changed {
			pending++
		}
	}
	if cliFlags.check && pending > 0 {
		return &pendingChangesError{count: pending}
	}
	return nil
}

func runStdin(cmd *cobra.Command) error {
	source, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return err
	}
	opts, err := resolveOptions(".")
	if err != nil {
		return err
	}
	out, _, err := hongdown.FormatWithWarnings(source, opts)
	if err != nil {
		return err
	}
	if cliFlags.diff {
		return printDiff(cmd, "stdin", string(source), out)
	}
	_, err = cmd.OutOrStdout().Write([]byte(out))
	return err
}

// expandArgs resolves CLI arguments that may be literal paths or
// doublestar glob patterns into a de-duplicated list of Markdown files.
func expandArgs(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	add := func(p string) {
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		if !seen[abs] {
			seen[abs] = true
			out = append(out, p)
		}
	}

	for _, a := range args {
		if info, err := os.Stat(a); err == nil && !info.IsDir() {
			add(a)
			continue
		}
		matches, err := doublestar.FilepathGlob(a)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", a, err)
		}
		for _, m := range matches {
			if info, err := os.Stat(m); err == nil && !info.IsDir() {
				add(m)
			}
		}
	}
	return out, nil
}

type fileResult struct {
	path     string
	original string
	out      string
	changed  bool
}

func processFile(path string) (fileResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileResult{}, err
	}
	opts, err := resolveOptions(filepath.Dir(path))
	if err != nil {
		return fileResult{}, err
	}
	hook := codeformatter.NewProcess(opts.CodeBlock.Formatters)
	out, _, err := hongdown.FormatWithCodeFormatter(data, opts, hook)
	if err != nil {
		return fileResult{}, err
	}
	return fileResult{
		path:     path,
		original: string(data),
		out:      out,
		changed:  out != string(data),
	}, nil
}

func (r fileResult) emit(cmd *cobra.Command) error {
	switch {
	case cliFlags.check:
		return nil
	case cliFlags.write:
		if !r.changed {
			return nil
		}
		return os.WriteFile(r.path, []byte(r.out), 0644)
	case cliFlags.diff:
		if !r.changed {
			return nil
		}
		return printDiff(cmd, r.path, r.original, r.out)
	default:
		_, err := fmt.Fprint(cmd.OutOrStdout(), r.out)
		return err
	}
}

func resolveOptions(dir string) (options.Options, error) {
	path := cliFlags.configPath
	if path == "" {
		path = config.Discover(dir)
	}
	opts, err := config.Load(path)
	if err != nil {
		return opts, err
	}
	if cliFlags.lineWidth > 0 {
		opts.LineWidth = cliFlags.lineWidth
	}
	return opts, nil
}
