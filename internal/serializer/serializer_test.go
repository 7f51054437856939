package serializer

import (
	"strings"
	"testing"

	"github.com/hongdown/hongdown/internal/ast"
	"github.com/hongdown/hongdown/internal/directive"
	"github.com/hongdown/hongdown/internal/options"
)

func paragraph(line int, text string) *ast.Paragraph {
	p := ast.NewParagraph(line)
	p.Children = []ast.Node{ast.NewText(line, text)}
	return p
}

func TestSerialize_SimpleParagraph(t *testing.T) {
	doc := ast.NewDocument(1)
	doc.Children = []ast.Node{paragraph(1, "Hello, world.")}

	out, warnings := Serialize(doc, options.Default(), []byte("Hello, world.\n"), nil, nil)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if out != "Hello, world.\n" {
		t.Errorf("Serialize() = %q, want %q", out, "Hello, world.\n")
	}
}

func TestSerialize_EndsWithExactlyOneNewline(t *testing.T) {
	doc := ast.NewDocument(1)
	doc.Children = []ast.Node{paragraph(1, "one"), paragraph(3, "two")}

	out, _ := Serialize(doc, options.Default(), []byte("one\n\ntwo\n"), nil, nil)
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("output does not end with a newline: %q", out)
	}
	if strings.HasSuffix(out, "\n\n") {
		t.Fatalf("output ends with more than one newline: %q", out)
	}
}

func TestSerialize_EmptyDocumentProducesEmptyOutput(t *testing.T) {
	doc := ast.NewDocument(1)
	out, _ := Serialize(doc, options.Default(), []byte(""), nil, nil)
	if out != "" {
		t.Errorf("Serialize() of an empty document = %q, want empty", out)
	}
}

func TestSerialize_NoTrailingSpacesOnAnyLine(t *testing.T) {
	doc := ast.NewDocument(1)
	h := ast.NewHeading(1, 1, true)
	h.Children = []ast.Node{ast.NewText(1, "Title")}
	doc.Children = []ast.Node{h, paragraph(3, "Body text here.")}

	out, _ := Serialize(doc, options.Default(), []byte("# Title\n\nBody text here.\n"), nil, nil)
	for i, line := range strings.Split(out, "\n") {
		if strings.HasSuffix(line, " ") || strings.HasSuffix(line, "\t") {
			t.Errorf("line %d has trailing whitespace: %q", i, line)
		}
	}
}

func TestSerialize_Deterministic(t *testing.T) {
	doc := ast.NewDocument(1)
	h := ast.NewHeading(1, 2, true)
	h.Children = []ast.Node{ast.NewText(1, "a heading about go and Docker")}
	doc.Children = []ast.Node{h, paragraph(3, "Some body text that talks about things.")}

	opts := options.Default()
	opts.Heading.SentenceCase = true
	source := []byte("## a heading about go and Docker\n\nSome body text that talks about things.\n")

	first, _ := Serialize(doc, opts, source, nil, nil)

	// Re-parse isn't available without the parser adapter wired to a real
	// reader here, so this test checks determinism at the node level:
	// serializing the same tree twice yields byte-identical output.
	// Idempotence over a real re-parse is tested in internal/hongdown.
	second, _ := Serialize(doc, opts, source, nil, nil)
	if first != second {
		t.Errorf("Serialize() is not deterministic:\n%q\nvs\n%q", first, second)
	}
}

func TestSerialize_HeadingSentenceCase(t *testing.T) {
	doc := ast.NewDocument(1)
	h := ast.NewHeading(1, 1, true)
	h.Children = []ast.Node{ast.NewText(1, "Getting Started With Go")}
	doc.Children = []ast.Node{h}

	opts := options.Default()
	opts.Heading.SentenceCase = true
	out, _ := Serialize(doc, opts, []byte("# Getting Started With Go\n"), nil, nil)
	if !strings.Contains(out, "Getting started with Go") {
		t.Errorf("Serialize() = %q, want sentence-cased heading with Go preserved", out)
	}
}

func TestSerialize_UnorderedList(t *testing.T) {
	doc := ast.NewDocument(1)
	l := ast.NewList(1, false, 0, true)
	item1 := ast.NewItem(1)
	item1.Children = []ast.Node{paragraph(1, "first")}
	item2 := ast.NewItem(2)
	item2.Children = []ast.Node{paragraph(2, "second")}
	l.Items = []*ast.Item{item1, item2}
	doc.Children = []ast.Node{l}

	out, _ := Serialize(doc, options.Default(), []byte("- first\n- second\n"), nil, nil)
	want := " -  first\n -  second\n"
	if out != want {
		t.Errorf("Serialize() = %q, want %q", out, want)
	}
}

func TestSerialize_CodeBlockVerbatim(t *testing.T) {
	doc := ast.NewDocument(1)
	cb := ast.NewCodeBlock(1, "go", "func main() {}\n")
	doc.Children = []ast.Node{cb}

	out, _ := Serialize(doc, options.Default(), []byte("```go\nfunc main() {}\n```\n"), nil, nil)
	if !strings.Contains(out, "func main() {}") {
		t.Errorf("Serialize() dropped code block content: %q", out)
	}
	if !strings.Contains(out, "go") {
		t.Errorf("Serialize() dropped the language info string: %q", out)
	}
}

func TestSerialize_ReferenceLinkFlushedAtSectionEnd(t *testing.T) {
	doc := ast.NewDocument(1)
	p := ast.NewParagraph(1)
	link := ast.NewLink(1, "https://example.com", "")
	link.Children = []ast.Node{ast.NewText(1, "example")}
	p.Children = []ast.Node{link}
	doc.Children = []ast.Node{p}

	out, _ := Serialize(doc, options.Default(), []byte("[example](https://example.com)\n"), nil, nil)
	if !strings.Contains(out, "[example]") {
		t.Errorf("Serialize() = %q, want a reference-style link label", out)
	}
	if !strings.Contains(out, "https://example.com") {
		t.Errorf("Serialize() = %q, want the reference definition flushed", out)
	}
}

func TestSerialize_DirectiveWarningsSurfaced(t *testing.T) {
	doc := ast.NewDocument(1)
	doc.Children = []ast.Node{paragraph(1, "text")}
	dirs := &directive.Directives{
		Warnings: []directive.Warning{{Line: 1, Message: "bad directive"}},
	}

	_, warnings := Serialize(doc, options.Default(), []byte("text\n"), dirs, nil)
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}
	if warnings[0].Kind != WarnInvalidDirectiveArgument {
		t.Errorf("warning kind = %v, want WarnInvalidDirectiveArgument", warnings[0].Kind)
	}
}

func TestSerialize_OneBlankLineBetweenBlocks(t *testing.T) {
	doc := ast.NewDocument(1)
	h := ast.NewHeading(1, 1, true)
	h.Children = []ast.Node{ast.NewText(1, "Hello")}
	doc.Children = []ast.Node{h, paragraph(3, "World")}

	out, _ := Serialize(doc, options.Default(), []byte("# Hello\n\nWorld\n"), nil, nil)
	want := "Hello\n=====\n\nWorld\n"
	if out != want {
		t.Errorf("Serialize() = %q, want %q", out, want)
	}
}

func TestSerialize_TwoBlankLinesBeforeSetextH2(t *testing.T) {
	doc := ast.NewDocument(1)
	h := ast.NewHeading(3, 2, true)
	h.Children = []ast.Node{ast.NewText(3, "Sub")}
	doc.Children = []ast.Node{paragraph(1, "Intro"), h}

	out, _ := Serialize(doc, options.Default(), []byte("Intro\n\n## Sub\n"), nil, nil)
	want := "Intro\n\n\nSub\n---\n"
	if out != want {
		t.Errorf("Serialize() = %q, want %q", out, want)
	}
}

func TestSerialize_DisableNextSectionTerminatesAtHeading(t *testing.T) {
	doc := ast.NewDocument(1)
	directiveBlock := ast.NewHTMLBlock(1, "<!-- hongdown-disable-next-section -->")
	untouched := paragraph(2, "custom *weird*  formatting")
	h := ast.NewHeading(3, 2, true)
	h.Children = []ast.Node{ast.NewText(3, "Heading")}
	after := paragraph(4, "next paragraph")
	doc.Children = []ast.Node{directiveBlock, untouched, h, after}

	source := "<!-- hongdown-disable-next-section -->\ncustom *weird*  formatting\n## Heading\nnext paragraph\n"
	out, _ := Serialize(doc, options.Default(), []byte(source), nil, nil)
	want := "custom *weird*  formatting\n\n\nHeading\n-------\n\nnext paragraph\n"
	if out != want {
		t.Errorf("Serialize() = %q, want %q", out, want)
	}
}

func TestSerialize_CollapsedReferenceBeforeBracket(t *testing.T) {
	doc := ast.NewDocument(1)
	p := ast.NewParagraph(1)
	link := ast.NewLink(1, "https://example.com", "")
	link.Children = []ast.Node{ast.NewText(1, "Text")}
	fn := ast.NewFootnoteReference(1, "1")
	p.Children = []ast.Node{link, fn}
	doc.Children = []ast.Node{p}

	out, _ := Serialize(doc, options.Default(), []byte("[Text](https://example.com)[^1]\n"), nil, nil)
	want := "[Text][][^1]\n\n[Text]: https://example.com\n"
	if out != want {
		t.Errorf("Serialize() = %q, want %q", out, want)
	}
}

func TestSerialize_UnknownAlertKindWarns(t *testing.T) {
	doc := ast.NewDocument(1)
	bq := ast.NewAlert(1, ast.AlertUnknown)
	bq.Children = []ast.Node{paragraph(1, "body")}
	doc.Children = []ast.Node{bq}

	out, warnings := Serialize(doc, options.Default(), []byte("> [!WEIRD]\n> body\n"), nil, nil)
	if !strings.Contains(out, "[!NOTE]") {
		t.Errorf("Serialize() = %q, want unknown alert kind to fall back to NOTE", out)
	}
	found := false
	for _, w := range warnings {
		if w.Kind == WarnUnknownAlertKind {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a WarnUnknownAlertKind warning, got %v", warnings)
	}
}

func TestSerialize_InconsistentTableColumnsWarns(t *testing.T) {
	doc := ast.NewDocument(1)
	tbl := ast.NewTable(1, []ast.Alignment{ast.AlignNone, ast.AlignNone})
	header := ast.NewTableRow(1, true)
	c1 := ast.NewTableCell(1)
	c1.Children = []ast.Node{ast.NewText(1, "A")}
	c2 := ast.NewTableCell(1)
	c2.Children = []ast.Node{ast.NewText(1, "B")}
	header.Cells = []*ast.TableCell{c1, c2}

	row := ast.NewTableRow(2, false)
	c3 := ast.NewTableCell(2)
	c3.Children = []ast.Node{ast.NewText(2, "only one cell")}
	row.Cells = []*ast.TableCell{c3}

	tbl.Rows = []*ast.TableRow{header, row}
	doc.Children = []ast.Node{tbl}

	_, warnings := Serialize(doc, options.Default(), []byte("| A | B |\n| --- | --- |\n| only one cell |\n"), nil, nil)
	found := false
	for _, w := range warnings {
		if w.Kind == WarnInconsistentTableColumns {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a WarnInconsistentTableColumns warning, got %v", warnings)
	}
}
