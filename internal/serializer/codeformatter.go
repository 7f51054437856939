package serializer

import "strings"

// CodeFormatterHook is the single-method external collaborator the block
// emitter calls for fenced code blocks with a configured formatter
// (spec.md §9: "model as an injectable interface with one method
// format(language, code) -> result"). Concrete implementations —
// subprocess-backed on native builds (internal/codeformatter) and
// JS-callback-backed under WASM (cmd/hongdown-wasm); the serializer depends only on this
// interface, never on exec.Cmd or syscall/js directly.
type CodeFormatterHook interface {
	Format(language, code string) (string, error)
}

// formatCode invokes hook if present and language has a configured
// formatter, recovering from any error by keeping the original literal
// and recording a warning (spec.md §4.2, §5: "External hook failures are
// always recovered").
func (s *state) formatCode(line int, language, literal string) string {
	if s.hook == nil {
		return literal
	}
	if _, ok := s.opts.CodeBlock.Formatters[language]; !ok {
		return literal
	}
	out, err := s.hook.Format(language, literal)
	if err != nil {
		kind := WarnExternalFormatterFailed
		if strings.Contains(err.Error(), "timed out") {
			kind = WarnExternalFormatterTimeout
		}
		s.warn(line, kind, "external formatter for "+language+" failed: "+err.Error()+".")
		return literal
	}
	return out
}
