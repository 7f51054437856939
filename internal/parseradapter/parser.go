// Package parseradapter wraps goldmark as Hongdown's CommonMark+GFM
// parsing substrate and converts its AST into Hongdown's own tagged-variant
// tree (internal/ast), the model internal/serializer actually walks. This
// mirrors the teacher's internal/markdown/ast.go, which wrapped goldmark
// behind ParseAST rather than handing goldmark's own node types to the
// rest of the program.
package parseradapter

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"
	"strings"

	gast "github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/hongdown/hongdown/internal/ast"
)

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM, extension.Footnote),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// frontMatterRegexp extracts a leading YAML front-matter block, the same
// technique the teacher's internal/markdown/metadata.go used for its own
// frontmatterRegex pre-pass, generalized here to feed a FrontMatter AST
// node instead of a typed Metadata struct.
var frontMatterRegexp = regexp.MustCompile(`(?s)^---\s*\n(.*?\n)---\s*\n`)

// descriptionTermLineRegexp matches a colon-definition continuation line:
// optional leading spaces, then ":   " (colon, at least three spaces).
var descriptionTermLineRegexp = regexp.MustCompile(`^ {0,3}:   (.*)$`)

// Parse converts source into a Hongdown document tree.
func Parse(source []byte) *ast.Document {
	frontMatter, body, lineOffset := extractFrontMatter(source)

	dlBody, dlBlocks := extractDescriptionLists(body, lineOffset)

	reader := text.NewReader(dlBody)
	root := md.Parser().Parse(reader)

	doc := ast.NewDocument(1)
	if frontMatter != "" {
		doc.Children = append(doc.Children, ast.NewFrontMatter(1, frontMatter))
	}

	conv := &converter{source: dlBody, lineOffset: lineOffset, dlBlocks: dlBlocks}
	for c := root.FirstChild(); c != nil; c = c.NextSibling() {
		if n := conv.convertBlock(c); n != nil {
			doc.Children = append(doc.Children, n...)
		}
	}
	doc.Children = append(doc.Children, conv.remainingDLBlocks()...)
	sort.SliceStable(doc.Children, func(i, j int) bool { return doc.Children[i].Line() < doc.Children[j].Line() })

	return doc
}

// extractFrontMatter strips a leading "---\n...\n---\n" block, returning
// its raw YAML body, the remaining source, and the number of lines to add
// back to every subsequent node's line number so Line() stays anchored to
// the original, unstripped input (needed for directive disable-region
// verbatim lookups over the full source).
func extractFrontMatter(source []byte) (raw string, body []byte, lineOffset int) {
	loc := frontMatterRegexp.FindSubmatchIndex(source)
	if loc == nil {
		return "", source, 0
	}
	raw = strings.TrimSuffix(string(source[loc[2]:loc[3]]), "\n")
	consumed := source[:loc[1]]
	lineOffset = bytes.Count(consumed, []byte("\n"))
	return raw, source[loc[1]:], lineOffset
}

// dlPlaceholder is a unique HTML-comment marker spliced in place of a
// detected description-list region so goldmark's own block parser
// leaves that span alone; the placeholder is later replaced by a
// directly-constructed ast.DescriptionList built from the raw lines.
const dlPlaceholderPrefix = "<!--hongdown-dl-placeholder-"

type dlBlock struct {
	line int
	node *ast.DescriptionList
}

// extractDescriptionLists heuristically detects term/definition runs —
// a non-blank line immediately followed by one or more ":   "-indented
// lines — since goldmark has no native node for them (spec.md's
// DescriptionList has no CommonMark/GFM counterpart). Detected regions
// are replaced with a placeholder comment line before the rest of the
// document reaches goldmark.
func extractDescriptionLists(body []byte, lineOffset int) ([]byte, []*dlBlock) {
	lines := strings.Split(string(body), "\n")
	out := make([]string, len(lines))
	copy(out, lines)
	var blocks []*dlBlock
	placeholderIndex := 0

	for i := 0; i < len(lines); i++ {
		if i+1 >= len(lines) || !descriptionTermLineRegexp.MatchString(lines[i+1]) || strings.TrimSpace(lines[i]) == "" {
			continue
		}
		termLine := lines[i]
		termLineNumber := i + 1 + lineOffset
		var defs []string
		j := i + 1
		for j < len(lines) && descriptionTermLineRegexp.MatchString(lines[j]) {
			defs = append(defs, descriptionTermLineRegexp.FindStringSubmatch(lines[j])[1])
			j++
		}

		item := ast.NewDescriptionItem(termLineNumber)
		item.Term = []ast.Node{ast.NewText(termLineNumber, termLine)}
		for k, d := range defs {
			item.Definitions = append(item.Definitions, []ast.Node{ast.NewText(termLineNumber+1+k, d)})
		}
		dl := ast.NewDescriptionList(termLineNumber)
		dl.Items = append(dl.Items, item)

		placeholderIndex++
		placeholder := fmt.Sprintf("%s%d-->", dlPlaceholderPrefix, placeholderIndex)
		blocks = append(blocks, &dlBlock{line: termLineNumber, node: dl})

		// Replace the term line with the placeholder and blank out the
		// consumed definition lines, preserving the body's total line
		// count so every later node's line number still maps to the
		// original, unstripped source.
		out[i] = placeholder
		for k := i + 1; k < j; k++ {
			out[k] = ""
		}
		i = j - 1
	}
	return []byte(strings.Join(out, "\n")), blocks
}

type converter struct {
	source     []byte
	lineOffset int
	dlBlocks   []*dlBlock
	dlUsed     int
}

func (c *converter) remainingDLBlocks() []ast.Node {
	var out []ast.Node
	for ; c.dlUsed < len(c.dlBlocks); c.dlUsed++ {
		out = append(out, c.dlBlocks[c.dlUsed].node)
	}
	return out
}

func (c *converter) lineOf(n gast.Node) int {
	if tn, ok := n.(*gast.Text); ok {
		return c.lineNumberAt(tn.Segment.Start) + c.lineOffset
	}
	// goldmark's inline nodes panic on Lines(); only blocks carry lines.
	if n.Type() != gast.TypeInline {
		if lines, ok := linesOf(n); ok && lines.Len() > 0 {
			return c.lineNumberAt(lines.At(0).Start) + c.lineOffset
		}
	}
	// Containers (lists, items, block quotes, emphasis, links) carry no
	// segments of their own; they start where their first child starts.
	if fc := n.FirstChild(); fc != nil {
		return c.lineOf(fc)
	}
	return 1 + c.lineOffset
}

func linesOf(n gast.Node) (*text.Segments, bool) {
	type linerNode interface {
		Lines() *text.Segments
	}
	if ln, ok := n.(linerNode); ok {
		return ln.Lines(), true
	}
	return nil, false
}

func (c *converter) lineNumberAt(offset int) int {
	return 1 + bytes.Count(c.source[:offset], []byte("\n"))
}

// alertRegexp detects a GFM alert's header line: a blockquote whose
// first text is "[!NOTE]" etc. (spec.md §4.8's alert grammar, detected
// here rather than in a separate scanner since it only needs the
// blockquote's first rendered line).
var alertRegexp = regexp.MustCompile(`^\s*\[!([A-Za-z]+)\]\s*$`)

func (c *converter) convertBlock(n gast.Node) []ast.Node {
	if html, ok := n.(*gast.HTMLBlock); ok {
		if lit := c.htmlBlockLiteral(html); strings.HasPrefix(strings.TrimSpace(lit), dlPlaceholderPrefix) {
			if c.dlUsed < len(c.dlBlocks) {
				node := c.dlBlocks[c.dlUsed].node
				c.dlUsed++
				return []ast.Node{node}
			}
			return nil
		}
	}

	line := c.lineOf(n)
	switch v := n.(type) {
	case *gast.Heading:
		h := ast.NewHeading(line, v.Level, true)
		h.Children = c.convertInlines(v)
		return []ast.Node{h}

	case *gast.Paragraph:
		p := ast.NewParagraph(line)
		p.Children = c.convertInlines(v)
		return []ast.Node{p}

	case *gast.TextBlock:
		p := ast.NewParagraph(line)
		p.Children = c.convertInlines(v)
		return []ast.Node{p}

	case *gast.List:
		return []ast.Node{c.convertList(v, line)}

	case *gast.CodeBlock:
		return []ast.Node{ast.NewCodeBlock(line, "", c.linesText(v))}

	case *gast.FencedCodeBlock:
		info := ""
		if lang := v.Language(c.source); lang != nil {
			info = string(lang)
		}
		return []ast.Node{ast.NewCodeBlock(line, info, c.linesText(v))}

	case *gast.Blockquote:
		if kind, ok := c.detectAlert(v); ok {
			a := ast.NewAlert(line, kind)
			a.Children = c.convertChildren(v, firstNonHeaderChild(v))
			return []ast.Node{a}
		}
		bq := ast.NewBlockQuote(line)
		bq.Children = c.convertChildren(v, v.FirstChild())
		return []ast.Node{bq}

	case *gast.ThematicBreak:
		return []ast.Node{ast.NewThematicBreak(line)}

	case *gast.HTMLBlock:
		return []ast.Node{ast.NewHTMLBlock(line, c.htmlBlockLiteral(v))}

	case *extast.Table:
		return []ast.Node{c.convertTable(v, line)}

	case *extast.FootnoteList:
		var out []ast.Node
		for child := v.FirstChild(); child != nil; child = child.NextSibling() {
			if fn, ok := child.(*extast.Footnote); ok {
				out = append(out, c.convertFootnote(fn))
			}
		}
		return out

	case *gast.Document:
		var out []ast.Node
		for child := v.FirstChild(); child != nil; child = child.NextSibling() {
			out = append(out, c.convertBlock(child)...)
		}
		return out
	}
	return nil
}

func (c *converter) convertChildren(parent gast.Node, from gast.Node) []ast.Node {
	var out []ast.Node
	for ch := from; ch != nil; ch = ch.NextSibling() {
		out = append(out, c.convertBlock(ch)...)
	}
	return out
}

func firstNonHeaderChild(bq *gast.Blockquote) gast.Node {
	first := bq.FirstChild()
	if first == nil {
		return nil
	}
	return first.NextSibling()
}

// detectAlert inspects a blockquote's first paragraph for the GFM alert
// header "[!NOTE]" etc. (spec.md §4.8).
func (c *converter) detectAlert(bq *gast.Blockquote) (ast.AlertKind, bool) {
	first := bq.FirstChild()
	para, ok := first.(*gast.Paragraph)
	if !ok {
		return ast.AlertUnknown, false
	}
	text := c.flattenGoldmarkText(para)
	m := alertRegexp.FindStringSubmatch(strings.Split(text, "\n")[0])
	if m == nil {
		return ast.AlertUnknown, false
	}
	kind, ok := ast.ParseAlertKind(strings.ToUpper(m[1]))
	if !ok {
		return ast.AlertUnknown, true
	}
	return kind, true
}

func (c *converter) flattenGoldmarkText(n gast.Node) string {
	var b strings.Builder
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		if t, ok := ch.(*gast.Text); ok {
			b.Write(t.Segment.Value(c.source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

func (c *converter) convertList(v *gast.List, line int) *ast.List {
	l := ast.NewList(line, v.IsOrdered(), v.Start, v.IsTight)
	for item := v.FirstChild(); item != nil; item = item.NextSibling() {
		li, ok := item.(*gast.ListItem)
		if !ok {
			continue
		}
		astItem := ast.NewItem(c.lineOf(li))
		var task *bool
		first := li.FirstChild()
		if first != nil {
			if cb := findTaskCheckBox(first); cb != nil {
				checked := cb.IsChecked
				task = &checked
			}
		}
		astItem.Task = task
		astItem.Children = c.convertChildren(li, li.FirstChild())
		l.Items = append(l.Items, astItem)
	}
	return l
}

func findTaskCheckBox(n gast.Node) *extast.TaskCheckBox {
	for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
		if cb, ok := ch.(*extast.TaskCheckBox); ok {
			return cb
		}
	}
	return nil
}

func (c *converter) linesText(n gast.Node) string {
	type linerNode interface {
		Lines() *text.Segments
	}
	ln, ok := n.(linerNode)
	if !ok {
		return ""
	}
	lines := ln.Lines()
	var b strings.Builder
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(c.source))
	}
	return b.String()
}

func (c *converter) htmlBlockLiteral(v *gast.HTMLBlock) string {
	var b strings.Builder
	for i := 0; i < v.Lines().Len(); i++ {
		seg := v.Lines().At(i)
		b.Write(seg.Value(c.source))
	}
	if v.HasClosure() {
		b.Write(v.ClosureLine.Value(c.source))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (c *converter) convertTable(t *extast.Table, line int) *ast.Table {
	aligns := make([]ast.Alignment, len(t.Alignments))
	for i, a := range t.Alignments {
		aligns[i] = convertAlignment(a)
	}
	table := ast.NewTable(line, aligns)
	for row := t.FirstChild(); row != nil; row = row.NextSibling() {
		header := false
		var cellsNode gast.Node
		switch r := row.(type) {
		case *extast.TableHeader:
			header = true
			cellsNode = r
		case *extast.TableRow:
			cellsNode = r
		default:
			continue
		}
		tr := ast.NewTableRow(c.lineOf(row), header)
		for cell := cellsNode.FirstChild(); cell != nil; cell = cell.NextSibling() {
			tc, ok := cell.(*extast.TableCell)
			if !ok {
				continue
			}
			cn := ast.NewTableCell(c.lineOf(cell))
			cn.Children = c.convertInlines(tc)
			tr.Cells = append(tr.Cells, cn)
		}
		table.Rows = append(table.Rows, tr)
	}
	return table
}

func convertAlignment(a extast.Alignment) ast.Alignment {
	switch a {
	case extast.AlignLeft:
		return ast.AlignLeft
	case extast.AlignRight:
		return ast.AlignRight
	case extast.AlignCenter:
		return ast.AlignCenter
	default:
		return ast.AlignNone
	}
}

func (c *converter) convertFootnote(fn *extast.Footnote) *ast.Footnote {
	label := fmt.Sprintf("%d", fn.Index)
	if len(fn.Ref) > 0 {
		label = string(fn.Ref)
	}
	f := ast.NewFootnote(c.lineOf(fn), label)
	f.Children = c.convertChildren(fn, fn.FirstChild())
	return f
}

// convertInlines renders an inline-bearing parent's children into
// internal/ast inline nodes, expanding goldmark's per-Text soft/hard
// break flags into explicit SoftBreak/HardBreak nodes (internal/ast
// models breaks as their own node kind rather than a flag on Text).
func (c *converter) convertInlines(parent gast.Node) []ast.Node {
	var out []ast.Node
	for ch := parent.FirstChild(); ch != nil; ch = ch.NextSibling() {
		out = append(out, c.convertInline(ch)...)
	}
	return out
}

func (c *converter) convertInline(n gast.Node) []ast.Node {
	line := c.lineOf(n)
	switch v := n.(type) {
	case *gast.Text:
		var out []ast.Node
		out = append(out, ast.NewText(line, string(v.Segment.Value(c.source))))
		if v.HardLineBreak() {
			out = append(out, ast.NewHardBreak(line))
		} else if v.SoftLineBreak() {
			out = append(out, ast.NewSoftBreak(line))
		}
		return out

	case *gast.String:
		return []ast.Node{ast.NewText(line, string(v.Value))}

	case *gast.CodeSpan:
		return []ast.Node{ast.NewCode(line, c.flattenGoldmarkText(v))}

	case *gast.Emphasis:
		if v.Level >= 2 {
			strong := ast.NewStrong(line)
			strong.Children = c.convertInlines(v)
			return []ast.Node{strong}
		}
		em := ast.NewEmph(line)
		em.Children = c.convertInlines(v)
		return []ast.Node{em}

	case *gast.Link:
		l := ast.NewLink(line, string(v.Destination), string(v.Title))
		l.Children = c.convertInlines(v)
		return []ast.Node{l}

	case *gast.Image:
		img := ast.NewImage(line, string(v.Destination), string(v.Title))
		img.Children = c.convertInlines(v)
		return []ast.Node{img}

	case *gast.AutoLink:
		url := string(v.URL(c.source))
		label := string(v.Label(c.source))
		l := ast.NewLink(line, url, "")
		l.Children = []ast.Node{ast.NewText(line, label)}
		return []ast.Node{l}

	case *gast.RawHTML:
		return []ast.Node{ast.NewHTMLInline(line, c.rawHTMLText(v))}

	case *extast.Strikethrough:
		st := ast.NewStrikethrough(line)
		st.Children = c.convertInlines(v)
		return []ast.Node{st}

	case *extast.TaskCheckBox:
		return nil // consumed by convertList; not emitted as inline content

	case *extast.FootnoteLink:
		label := fmt.Sprintf("%d", v.Index)
		if len(v.Ref) > 0 {
			label = string(v.Ref)
		}
		return []ast.Node{ast.NewFootnoteReference(line, label)}
	}
	return nil
}

func (c *converter) rawHTMLText(v *gast.RawHTML) string {
	var b strings.Builder
	for i := 0; i < v.Segments.Len(); i++ {
		seg := v.Segments.At(i)
		b.Write(seg.Value(c.source))
	}
	return b.String()
}
