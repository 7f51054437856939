package serializer

import (
	"github.com/hongdown/hongdown/internal/ast"
	"github.com/hongdown/hongdown/internal/directive"
)

// emitDocument walks the document root, tracking sections (the span
// between headings of level <= 2), flushing accumulated references and
// footnote definitions at each section boundary, and honoring in-document
// disable/enable directives (spec.md §4.1).
func (s *state) emitDocument(doc *ast.Document) {
	children := doc.Children
	first := true

	for i, c := range children {
		if hb, ok := c.(*ast.HTMLBlock); ok {
			if kind, _, ok := directive.Classify(hb.Literal); ok {
				s.tracker.Observe(kind)
				continue
			}
		}

		if s.tracker.FileDisabled() {
			if !first {
				s.blankLine()
			}
			s.verbatimFrom(c.Line())
			first = false
			break
		}

		// A heading of level <= 2 closes a disable-next-section region
		// before BlockDisabled is consulted, so the terminating heading
		// itself is always formatted normally and never swallowed into
		// the verbatim region it closes (spec.md §4.1: "exclusive of that
		// heading").
		h, isHeading := c.(*ast.Heading)
		if isHeading && h.Level <= 2 {
			s.tracker.ObserveHeadingLevel(h.Level)
		}

		if s.tracker.BlockDisabled() {
			if !first {
				s.blankLine()
			}
			s.verbatimRange(c.Line(), endLineOf(children, i, s))
			s.tracker.ConsumeBlock()
			first = false
			continue
		}

		if isHeading && h.Level <= 2 && !first {
			s.flushSection()
		}

		if !first {
			s.emitBlockSeparator(c)
		}
		s.emitBlock(c)
		first = false
	}

	s.flushSection()
}

// flushSection emits accumulated reference definitions and footnote
// definitions, closing out the current section (spec.md §3, "Lifecycle").
func (s *state) flushSection() {
	s.flushReferences()
	s.flushFootnotes()
}

// emitBlockSeparator inserts the blank-line count required before next
// per spec.md §4.1: two blank lines before a level-2 Setext heading that
// isn't the first block, one blank line otherwise.
func (s *state) emitBlockSeparator(next ast.Node) {
	if h, ok := next.(*ast.Heading); ok && h.Level == 2 && s.opts.Heading.SetextH2 {
		s.blankLines(2)
		return
	}
	s.blankLine()
}

// endLineOf returns the last source line belonging to children[i], taken
// as one line before the next sibling's start line, or the last source
// line if i is the final child.
func endLineOf(children []ast.Node, i int, s *state) int {
	if i+1 < len(children) {
		return children[i+1].Line() - 1
	}
	return len(s.sourceLines)
}
