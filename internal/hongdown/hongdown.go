// Package hongdown is the library entry point: it wires
// internal/parseradapter, internal/directive, and internal/serializer
// into the three functions callers actually need (spec.md §6). Neither
// cmd/hongdown nor cmd/hongdown-wasm talk to those packages directly —
// they go through here, the way the teacher keeps its TUI's model/update
// logic out of main.go's CLI-argument layer.
package hongdown

import (
	"github.com/hongdown/hongdown/internal/directive"
	"github.com/hongdown/hongdown/internal/options"
	"github.com/hongdown/hongdown/internal/parseradapter"
	"github.com/hongdown/hongdown/internal/serializer"
)

// Warning is re-exported so callers never need to import
// internal/serializer directly.
type Warning = serializer.Warning

// CodeFormatterHook is re-exported for the same reason; implementations
// live in internal/codeformatter and cmd/hongdown-wasm.
type CodeFormatterHook = serializer.CodeFormatterHook

// Format reformats source under opts and discards any warnings. Most
// callers that don't need the warning list should use this.
func Format(source []byte, opts options.Options) (string, error) {
	out, _, err := FormatWithWarnings(source, opts)
	return out, err
}

// FormatWithWarnings reformats source under opts, returning any
// recoverable warnings alongside the output (spec.md §7).
func FormatWithWarnings(source []byte, opts options.Options) (string, []Warning, error) {
	return FormatWithCodeFormatter(source, opts, nil)
}

// FormatWithCodeFormatter is the full-control entry point: hook is
// consulted for any code block whose language has a configured external
// formatter (spec.md §4.2, §9). hook may be nil.
func FormatWithCodeFormatter(source []byte, opts options.Options, hook CodeFormatterHook) (string, []Warning, error) {
	doc := parseradapter.Parse(source)
	dirs := directive.Scan(doc)
	out, warnings := serializer.Serialize(doc, opts, source, dirs, hook)
	return out, warnings, nil
}

// IsIdempotent reports whether formatting source a second time changes
// nothing, per spec.md §3's fixed-point guarantee. It is a convenience
// for tests and for --check-style callers that want to verify the
// guarantee rather than assume it.
func IsIdempotent(source []byte, opts options.Options) (bool, error) {
	first, err := Format(source, opts)
	if err != nil {
		return false, err
	}
	second, err := Format([]byte(first), opts)
	if err != nil {
		return false, err
	}
	return first == second, nil
}
