// Package codeformatter provides serializer.CodeFormatterHook
// implementations. Process pipes a code block's literal into an external
// formatter's stdin and reads the formatted result back from stdout,
// generalizing the teacher's os/exec subprocess technique (see
// internal/util/clipboard.go's pbcopy/pbpaste pair) from a fire-and-forget
// clipboard call into a request/response pipe with a timeout.
package codeformatter

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/hongdown/hongdown/internal/options"
)

// DefaultTimeout is used when a formatter spec doesn't set one (spec.md
// §4.2: "external formatters are bounded by a timeout, 5s by default").
const DefaultTimeout = 5 * time.Second

// Process formats code by piping it to an external command's stdin and
// reading the formatted result from stdout. One Process value is shared
// across a serializer run; it holds no per-language state itself, so it
// is safe to reuse across concurrent invocations provided opts isn't
// mutated concurrently.
type Process struct {
	opts map[string]options.FormatterSpec
}

// NewProcess builds a Process from the configured formatters map.
func NewProcess(formatters map[string]options.FormatterSpec) *Process {
	return &Process{opts: formatters}
}

// Format implements serializer.CodeFormatterHook.
func (p *Process) Format(language, code string) (string, error) {
	spec, ok := p.opts[language]
	if !ok {
		return code, nil
	}
	if spec.Command == "" {
		return code, fmt.Errorf("codeformatter: empty command configured for language %q", language)
	}

	timeout := DefaultTimeout
	if spec.Timeout > 0 {
		timeout = time.Duration(spec.Timeout) * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, spec.Command, spec.Args...)
	cmd.Stdin = bytes.NewReader([]byte(code))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return code, fmt.Errorf("codeformatter: %q timed out after %s", spec.Command, timeout)
	}
	if err != nil {
		msg := stderr.String()
		if msg == "" {
			msg = err.Error()
		}
		return code, fmt.Errorf("codeformatter: %q failed: %s", spec.Command, msg)
	}
	return stdout.String(), nil
}
