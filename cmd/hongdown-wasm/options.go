//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	"github.com/hongdown/hongdown/internal/options"
)

// optionsFromJS reads a plain JS object shaped like hongdown.toml's
// sections, with camelCase field names (lineWidth, heading.setextH1,
// codeBlock.fenceChar, ...) in place of the TOML snake_case keys, and overlays
// it onto options.Default(), mirroring internal/config's apply-over-
// defaults behavior without a TOML decode step.
func optionsFromJS(v js.Value) (options.Options, error) {
	opts := options.Default()

	if lw := v.Get("lineWidth"); !lw.IsUndefined() {
		opts.LineWidth = lw.Int()
	}
	if h := v.Get("heading"); !h.IsUndefined() {
		if x := h.Get("setextH1"); !x.IsUndefined() {
			opts.Heading.SetextH1 = x.Bool()
		}
		if x := h.Get("setextH2"); !x.IsUndefined() {
			opts.Heading.SetextH2 = x.Bool()
		}
		if x := h.Get("sentenceCase"); !x.IsUndefined() {
			opts.Heading.SentenceCase = x.Bool()
		}
		opts.Heading.ProperNouns = append(opts.Heading.ProperNouns, stringSlice(h.Get("properNouns"))...)
		opts.Heading.CommonNouns = append(opts.Heading.CommonNouns, stringSlice(h.Get("commonNouns"))...)
	}
	if l := v.Get("list"); !l.IsUndefined() {
		if x := l.Get("unorderedMarker"); !x.IsUndefined() && len(x.String()) > 0 {
			opts.List.UnorderedMarker = options.UnorderedMarker(x.String()[0])
		}
		if x := l.Get("indentWidth"); !x.IsUndefined() {
			opts.List.IndentWidth = x.Int()
		}
	}
	if cb := v.Get("codeBlock"); !cb.IsUndefined() {
		if x := cb.Get("fenceChar"); !x.IsUndefined() && len(x.String()) > 0 {
			opts.CodeBlock.FenceChar = options.FenceChar(x.String()[0])
		}
	}

	return opts, nil
}

func stringSlice(v js.Value) []string {
	if v.IsUndefined() || v.IsNull() {
		return nil
	}
	n := v.Length()
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, v.Index(i).String())
	}
	return out
}

// jsFormatterHook backs serializer.CodeFormatterHook with a JS callback
// supplied by the host, e.g. a browser-side Prettier or gofmt-wasm
// integration. languages with no matching JS function fall through to
// the unformatted literal, same as internal/codeformatter.Process does
// for an unconfigured language.
type jsFormatterHook struct {
	callbacks map[string]js.Value
}

func newJSFormatterHook(formatters map[string]options.FormatterSpec) *jsFormatterHook {
	// The host registers callbacks directly on globalThis.hongdownFormatters
	// keyed by language; formatters from opts.CodeBlock.Formatters only
	// gate *whether* a language is eligible, not which JS function runs.
	h := &jsFormatterHook{callbacks: make(map[string]js.Value)}
	registry := js.Global().Get("hongdownFormatters")
	if registry.IsUndefined() || registry.IsNull() {
		return h
	}
	for lang := range formatters {
		fn := registry.Get(lang)
		if fn.Type() == js.TypeFunction {
			h.callbacks[lang] = fn
		}
	}
	return h
}

func (h *jsFormatterHook) Format(language, code string) (string, error) {
	fn, ok := h.callbacks[language]
	if !ok {
		return code, nil
	}
	result := fn.Invoke(code)
	if result.Type() == js.TypeString {
		return result.String(), nil
	}
	return code, fmt.Errorf("hongdown-wasm: formatter for %q returned a non-string result", language)
}
