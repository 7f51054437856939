//go:build js && wasm

// Command hongdown-wasm exposes internal/hongdown to JavaScript hosts
// (browsers, Node) via syscall/js. There is no third-party substitute
// for this boundary: syscall/js is the only way a Go program built with
// GOOS=js GOARCH=wasm talks to its host, so this package is necessarily
// standard-library-only (documented in DESIGN.md).
package main

import (
	"syscall/js"

	"github.com/hongdown/hongdown/internal/hongdown"
	"github.com/hongdown/hongdown/internal/options"
)

func main() {
	js.Global().Set("hongdownFormat", js.FuncOf(formatJS))
	select {} // keep the Go runtime alive for callback dispatch
}

// formatJS implements the hongdownFormat(source, options) -> {output,
// warnings, error} JS entry point. options, if given, is a plain JS object
// that optionsFromJS overlays onto options.Default() the same way
// internal/config overlays a TOML file.
func formatJS(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return jsError("hongdown: format requires at least a source string argument")
	}
	source := args[0].String()

	opts := options.Default()
	if len(args) > 1 && args[1].Truthy() {
		var err error
		opts, err = optionsFromJS(args[1])
		if err != nil {
			return jsError(err.Error())
		}
	}

	hook := newJSFormatterHook(opts.CodeBlock.Formatters)
	out, warnings, err := hongdown.FormatWithCodeFormatter([]byte(source), opts, hook)
	if err != nil {
		return jsError(err.Error())
	}

	warningValues := make([]any, len(warnings))
	for i, w := range warnings {
		warningValues[i] = map[string]any{
			"line":    w.Line,
			"kind":    int(w.Kind),
			"message": w.Message,
		}
	}

	return js.ValueOf(map[string]any{
		"output":   out,
		"warnings": warningValues,
		"error":    nil,
	})
}

func jsError(msg string) any {
	return js.ValueOf(map[string]any{
		"output":   "",
		"warnings": []any{},
		"error":    msg,
	})
}
