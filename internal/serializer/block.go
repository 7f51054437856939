package serializer

import (
	"strings"

	"github.com/hongdown/hongdown/internal/ast"
)

// emitBlockChildren emits a sequence of sibling blocks separated by one
// blank line each (spec.md §4.1's default policy), for contexts nested
// below the document root: block-quote/alert bodies and footnote
// definitions. List items use emitItemChildren (list.go), and
// description-list definitions are wrapped directly. The document root
// applies its own richer section-aware policy in document.go.
func (s *state) emitBlockChildren(children []ast.Node) {
	for i, c := range children {
		if _, ok := c.(*ast.Footnote); ok {
			s.registerFootnote(c.(*ast.Footnote))
			continue
		}
		if i > 0 {
			s.blankLine()
		}
		s.emitBlock(c)
	}
}

func (s *state) registerFootnote(fn *ast.Footnote) {
	if _, seen := s.footnotes[fn.Label]; seen {
		return
	}
	s.footnotes[fn.Label] = fn
	s.footnoteOrder = append(s.footnoteOrder, fn.Label)
}

// emitBlock dispatches a single block node to its emitter. Callers are
// responsible for blank-line separation between siblings.
func (s *state) emitBlock(n ast.Node) {
	switch v := n.(type) {
	case *ast.FrontMatter:
		s.emitFrontMatter(v)
	case *ast.Heading:
		s.emitHeading(v)
	case *ast.Paragraph:
		s.emitWrapped(s.buildAtoms(v.Children))
	case *ast.List:
		s.emitList(v, 1)
	case *ast.CodeBlock:
		s.emitCodeBlock(v)
	case *ast.BlockQuote:
		s.emitBlockQuote(v)
	case *ast.Alert:
		s.emitAlert(v)
	case *ast.ThematicBreak:
		s.emitThematicBreak(v)
	case *ast.Table:
		s.emitTable(v)
	case *ast.DescriptionList:
		s.emitDescriptionList(v)
	case *ast.Footnote:
		s.registerFootnote(v)
	case *ast.ReferenceDefinition:
		s.addReference(v.Label, v.URL, v.Title)
	case *ast.HTMLBlock:
		s.writeText(v.Literal)
	}
}

func (s *state) emitFrontMatter(fm *ast.FrontMatter) {
	s.writeText("---")
	for _, line := range strings.Split(fm.Raw, "\n") {
		s.newline()
		s.writeText(line)
	}
	s.newline()
	s.writeText("---")
}

// emitHeading selects ATX vs. Setext per spec.md §4.2 and applies the
// sentence-case transform before rendering, so the Setext underline
// width is measured against the already-transformed text.
func (s *state) emitHeading(h *ast.Heading) {
	if s.opts.Heading.SentenceCase {
		sentenceCaseHeading(h.Children, s.nouns)
	}

	useSetext := (h.Level == 1 && s.opts.Heading.SetextH1) || (h.Level == 2 && s.opts.Heading.SetextH2)
	text := s.renderInlineChildren(h.Children)

	if useSetext {
		s.writeText(text)
		s.newline()
		underline := "="
		if h.Level == 2 {
			underline = "-"
		}
		s.writeText(strings.Repeat(underline, displayWidth(text)))
		return
	}

	s.writeText(strings.Repeat("#", h.Level) + " " + text)
}

func (s *state) emitBlockQuote(bq *ast.BlockQuote) {
	s.writeText(">")
	if len(bq.Children) > 0 {
		s.writeText(" ")
	}
	s.pushPrefix("> ")
	s.emitBlockChildren(bq.Children)
	s.popPrefix()
}

func (s *state) emitAlert(a *ast.Alert) {
	if a.AlertKind == ast.AlertUnknown {
		s.warn(a.Line(), WarnUnknownAlertKind, "alert kind not recognized, formatting as NOTE.")
	}
	s.writeText("> [!" + a.AlertKind.String() + "]")
	s.pushPrefix("> ")
	if len(a.Children) > 0 {
		s.blankLine()
		s.emitBlockChildren(a.Children)
	}
	s.popPrefix()
}

// emitCodeBlock selects fence length per spec.md §4.2, applies the
// external formatter hook unless hongdown-no-format suppresses it, and
// reproduces the literal verbatim line-by-line (invariant 4).
func (s *state) emitCodeBlock(cb *ast.CodeBlock) {
	info := cb.Info
	noFormat := false
	fields := strings.Fields(info)
	language := ""
	if len(fields) > 0 {
		language = fields[0]
	}
	if len(fields) > 1 {
		for _, f := range fields[1:] {
			if f == "hongdown-no-format" {
				noFormat = true
			}
		}
	}

	literal := cb.Literal
	if !noFormat {
		literal = s.formatCode(cb.Line(), language, literal)
	}

	fenceChar := byte(s.opts.CodeBlock.FenceChar)
	longestRun := longestRunOf(literal, fenceChar)
	fenceLen := s.opts.CodeBlock.MinFenceLength
	if longestRun+1 > fenceLen {
		fenceLen = longestRun + 1
	}
	fence := strings.Repeat(string(fenceChar), fenceLen)

	infoOut := language
	if infoOut == "" && s.opts.CodeBlock.DefaultLanguage != "" {
		infoOut = s.opts.CodeBlock.DefaultLanguage
	}

	s.writeText(fence)
	if s.opts.CodeBlock.SpaceAfterFence && infoOut != "" {
		s.writeText(" ")
	}
	s.writeText(infoOut)

	lines := strings.Split(strings.TrimSuffix(literal, "\n"), "\n")
	if literal != "" {
		for _, line := range lines {
			s.newline()
			s.writeRaw([]byte(line))
			s.col = s.prefixWidth() + displayWidth(line)
		}
	}
	s.newline()
	s.writeText(fence)
}

func longestRunOf(s string, b byte) int {
	longest, cur := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			cur++
			if cur > longest {
				longest = cur
			}
		} else {
			cur = 0
		}
	}
	return longest
}

func (s *state) emitThematicBreak(*ast.ThematicBreak) {
	s.writeText(strings.Repeat(" ", s.opts.ThematicBreak.LeadingSpaces))
	s.writeText(string(s.opts.ThematicBreak.Style))
}

func (s *state) emitDescriptionList(dl *ast.DescriptionList) {
	for i, item := range dl.Items {
		if i > 0 {
			s.blankLine()
		}
		s.emitWrapped(s.buildAtoms(item.Term))
		for _, def := range item.Definitions {
			s.newline()
			s.writeText(":   ")
			s.pushPrefix(strings.Repeat(" ", 4))
			s.emitWrapped(s.buildAtoms(def))
			s.popPrefix()
		}
	}
}
