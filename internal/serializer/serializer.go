package serializer

import (
	"github.com/hongdown/hongdown/internal/ast"
	"github.com/hongdown/hongdown/internal/directive"
	"github.com/hongdown/hongdown/internal/options"
)

// Serialize walks doc and emits formatted Markdown bytes plus any
// warnings accumulated along the way (spec.md §6's entry-point
// contract). source is the original input, needed verbatim for disabled
// regions and code/front-matter content; dirs carries the document-wide
// proper/common-noun augmentations and any directive-parsing warnings
// found by internal/directive's pre-pass. hook may be nil, in which case
// code blocks with a configured formatter are left unformatted.
func Serialize(doc *ast.Document, opts options.Options, source []byte, dirs *directive.Directives, hook CodeFormatterHook) (string, []Warning) {
	if dirs == nil {
		dirs = &directive.Directives{}
	}
	nouns := newNounSet(opts.Heading.ProperNouns, opts.Heading.CommonNouns, dirs.ProperNouns, dirs.CommonNouns)
	st := newState(opts, nouns, hook, source, dirs)

	for _, w := range dirs.Warnings {
		st.warn(w.Line, WarnInvalidDirectiveArgument, w.Message)
	}

	st.emitDocument(doc)
	return st.finish(), st.warnings
}
