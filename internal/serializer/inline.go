package serializer

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/hongdown/hongdown/internal/ast"
)

var externalURLRegexp = regexp.MustCompile(`^(https?|ftp|mailto):`)

func isExternalURL(url string) bool {
	return externalURLRegexp.MatchString(url) || strings.Contains(url, "://")
}

// buildAtoms renders inline content into the wrap engine's atom stream
// (spec.md §4.5): Text splits into breakable-space and word atoms with
// SmartyPants and escaping applied; Code/Link/Image/Emph/Strong/
// Strikethrough/FootnoteReference/HtmlInline are each a single
// unbreakable run.
func (s *state) buildAtoms(nodes []ast.Node) []wrapAtom {
	var atoms []wrapAtom
	for i, n := range nodes {
		switch v := n.(type) {
		case *ast.Text:
			atoms = append(atoms, s.textAtoms(v.Literal)...)
		case *ast.SoftBreak:
			atoms = append(atoms, wrapAtom{kind: atomSpace})
		case *ast.HardBreak:
			atoms = append(atoms, wrapAtom{kind: atomHardBreak})
		default:
			followedByBracket := i+1 < len(nodes) && startsWithBracket(nodes[i+1])
			atoms = append(atoms, runAtom(s.renderInlineAt(n, followedByBracket)))
		}
	}
	return atoms
}

// startsWithBracket reports whether n renders with a leading literal "["
// that could collide with a preceding shortcut reference's closing "]"
// (a shortcut reference followed by one is emitted as "[Text][]").
func startsWithBracket(n ast.Node) bool {
	switch n.(type) {
	case *ast.Link, *ast.Image, *ast.FootnoteReference:
		return true
	}
	return false
}

// textAtoms splits a Text literal on whitespace, applying SmartyPants to
// the literal as a whole first (so multi-word quote pairs classify
// correctly) and per-word escaping after.
func (s *state) textAtoms(literal string) []wrapAtom {
	transformed := applySmartyPants(literal, s.opts.Punctuation)
	fields := splitKeepWhitespace(transformed)
	var atoms []wrapAtom
	for _, f := range fields {
		if f == "" {
			continue
		}
		if isAllWhitespace(f) {
			atoms = append(atoms, wrapAtom{kind: atomSpace})
			continue
		}
		atoms = append(atoms, runAtom(escapeInlineText(f)))
	}
	return atoms
}

// splitKeepWhitespace splits s into a sequence of alternating
// non-whitespace and whitespace runs, in order.
func splitKeepWhitespace(s string) []string {
	var out []string
	var cur strings.Builder
	curIsSpace := false
	started := false
	for _, r := range s {
		isSpace := unicode.IsSpace(r)
		if started && isSpace != curIsSpace {
			out = append(out, cur.String())
			cur.Reset()
		}
		cur.WriteRune(r)
		curIsSpace = isSpace
		started = true
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}

func isAllWhitespace(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

var underscoreRegexp = regexp.MustCompile(`_`)

// escapeInlineText backslash-escapes the minimum set of characters
// needed for the text to round-trip through a CommonMark parser, plus
// the always-escape rule for standalone underscores (spec.md §4.3).
func escapeInlineText(w string) string {
	var out strings.Builder
	for _, r := range w {
		switch r {
		case '\\', '`', '*', '[', ']', '<', '>':
			out.WriteByte('\\')
			out.WriteRune(r)
		case '_':
			out.WriteByte('\\')
			out.WriteRune(r)
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}

// renderInline renders a single inline node (and its descendants) to a
// markdown string, used both for atoms that must stay unbreakable and
// for flattening link/heading text.
func (s *state) renderInline(n ast.Node) string {
	return s.renderInlineAt(n, false)
}

// renderInlineAt is renderInline with look-ahead context: followedByBracket
// tells a Link/Image whether the next sibling renders with a leading "["
// (spec.md §4.3's collapsed-reference rule).
func (s *state) renderInlineAt(n ast.Node, followedByBracket bool) string {
	switch v := n.(type) {
	case *ast.Text:
		return escapeInlineText(applySmartyPants(v.Literal, s.opts.Punctuation))
	case *ast.Code:
		return renderCodeSpan(v.Literal)
	case *ast.Emph:
		return wrapDelimited(s.renderInlineChildren(v.Children), "*")
	case *ast.Strong:
		return wrapDelimited(s.renderInlineChildren(v.Children), "**")
	case *ast.Strikethrough:
		return "~~" + s.renderInlineChildren(v.Children) + "~~"
	case *ast.Link:
		return s.renderLinkOrImage(false, v.URL, v.Title, v.ReferenceLabel, s.renderInlineChildren(v.Children), followedByBracket)
	case *ast.Image:
		return s.renderLinkOrImage(true, v.URL, v.Title, v.ReferenceLabel, s.renderInlineChildren(v.Children), followedByBracket)
	case *ast.FootnoteReference:
		return "[^" + v.Label + "]"
	case *ast.HTMLInline:
		return v.Literal
	case *ast.SoftBreak:
		return " "
	case *ast.HardBreak:
		return "\\\n"
	}
	return ""
}

func (s *state) renderInlineChildren(nodes []ast.Node) string {
	var b strings.Builder
	for i, n := range nodes {
		followedByBracket := i+1 < len(nodes) && startsWithBracket(nodes[i+1])
		b.WriteString(s.renderInlineAt(n, followedByBracket))
	}
	return b.String()
}

// flattenText reduces inline content to its plain-text content, with no
// markdown syntax. It has no caller: renderLinkOrImage derives reference
// labels from the rendered link text, markdown syntax and escapes included.
func flattenText(nodes []ast.Node) string {
	var b strings.Builder
	var walk func([]ast.Node)
	walk = func(ns []ast.Node) {
		for _, n := range ns {
			switch v := n.(type) {
			case *ast.Text:
				b.WriteString(v.Literal)
			case *ast.Code:
				b.WriteString(v.Literal)
			case *ast.Emph:
				walk(v.Children)
			case *ast.Strong:
				walk(v.Children)
			case *ast.Strikethrough:
				walk(v.Children)
			case *ast.Link:
				walk(v.Children)
			case *ast.Image:
				walk(v.Children)
			case *ast.SoftBreak:
				b.WriteString(" ")
			}
		}
	}
	walk(nodes)
	return b.String()
}

// wrapDelimited wraps content in a run of asterisks matching len(run),
// switching to underscores when content contains an asterisk that would
// otherwise need escaping (spec.md §4.3).
func wrapDelimited(content, run string) string {
	marker := run
	if strings.Contains(content, "*") {
		marker = strings.Repeat("_", len(run))
	}
	return marker + content + marker
}

// renderCodeSpan picks the shortest backtick run not present in content,
// padding with a space on each side when needed to avoid the delimiter
// merging with adjacent content (spec.md §4.3), grounded on the
// goldmark-markdown renderer's backtick-collision-avoidance technique.
func renderCodeSpan(content string) string {
	n := 1
	for {
		run := strings.Repeat("`", n)
		if !strings.Contains(content, run) {
			break
		}
		n++
	}
	fence := strings.Repeat("`", n)
	needsPad := strings.HasPrefix(content, "`") || strings.HasSuffix(content, "`") ||
		(len(content) > 0 && (content[0] == ' ' || content[len(content)-1] == ' ') && strings.TrimSpace(content) != "")
	if needsPad {
		return fence + " " + content + " " + fence
	}
	return fence + content + fence
}

// renderLinkOrImage emits inline- or reference-style link/image syntax
// (spec.md §4.3). External URLs convert to reference style; relative and
// fragment-only URLs stay inline. followedByBracket forces the collapsed
// "[Text][]" form instead of the bare shortcut "[Text]" when the next
// sibling would otherwise glue a literal "[" onto the closing "]".
func (s *state) renderLinkOrImage(isImage bool, url, title, explicitLabel, text string, followedByBracket bool) string {
	prefix := ""
	if isImage {
		prefix = "!"
	}
	if !isExternalURL(url) {
		inline := prefix + "[" + text + "](" + url
		if title != "" {
			inline += ` "` + title + `"`
		}
		return inline + ")"
	}

	label := explicitLabel
	if label == "" {
		label = text
		if label == "" {
			label = "ref"
		}
	}
	for {
		existing, ok := s.refs[strings.ToLower(label)]
		if !ok || existing.url == url {
			break
		}
		s.labelCounter++
		label = label + "-" + strconv.Itoa(s.labelCounter)
	}
	assigned := s.addReference(label, url, title)

	shortcut := prefix + "[" + text + "]"
	if text == assigned {
		if followedByBracket {
			return shortcut + "[]"
		}
		return shortcut
	}
	return prefix + "[" + text + "][" + assigned + "]"
}
