package parseradapter

import (
	"testing"

	"github.com/hongdown/hongdown/internal/ast"
)

func TestParse_HeadingAndParagraph(t *testing.T) {
	doc := Parse([]byte("# Title\n\nSome body text.\n"))
	if len(doc.Children) != 2 {
		t.Fatalf("got %d top-level nodes, want 2: %#v", len(doc.Children), doc.Children)
	}
	h, ok := doc.Children[0].(*ast.Heading)
	if !ok {
		t.Fatalf("doc.Children[0] = %T, want *ast.Heading", doc.Children[0])
	}
	if h.Level != 1 {
		t.Errorf("heading level = %d, want 1", h.Level)
	}
	p, ok := doc.Children[1].(*ast.Paragraph)
	if !ok {
		t.Fatalf("doc.Children[1] = %T, want *ast.Paragraph", doc.Children[1])
	}
	if len(p.Children) == 0 {
		t.Fatal("paragraph has no inline children")
	}
}

func TestParse_FrontMatter(t *testing.T) {
	source := "---\ntitle: Hello\n---\n\n# Body\n"
	doc := Parse([]byte(source))
	if len(doc.Children) == 0 {
		t.Fatal("expected at least one node")
	}
	fm, ok := doc.Children[0].(*ast.FrontMatter)
	if !ok {
		t.Fatalf("doc.Children[0] = %T, want *ast.FrontMatter", doc.Children[0])
	}
	if fm.Raw == "" {
		t.Error("front matter raw body is empty")
	}
}

func TestParse_FencedCodeBlockCarriesLanguage(t *testing.T) {
	doc := Parse([]byte("```go\nfunc main() {}\n```\n"))
	if len(doc.Children) != 1 {
		t.Fatalf("got %d top-level nodes, want 1", len(doc.Children))
	}
	cb, ok := doc.Children[0].(*ast.CodeBlock)
	if !ok {
		t.Fatalf("doc.Children[0] = %T, want *ast.CodeBlock", doc.Children[0])
	}
	if cb.Info != "go" {
		t.Errorf("code block info = %q, want %q", cb.Info, "go")
	}
}

func TestParse_UnorderedList(t *testing.T) {
	doc := Parse([]byte("- one\n- two\n"))
	l, ok := doc.Children[0].(*ast.List)
	if !ok {
		t.Fatalf("doc.Children[0] = %T, want *ast.List", doc.Children[0])
	}
	if l.Ordered {
		t.Error("expected an unordered list")
	}
	if len(l.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(l.Items))
	}
}

func TestParse_OrderedListStartNumber(t *testing.T) {
	doc := Parse([]byte("3. three\n4. four\n"))
	l, ok := doc.Children[0].(*ast.List)
	if !ok {
		t.Fatalf("doc.Children[0] = %T, want *ast.List", doc.Children[0])
	}
	if !l.Ordered {
		t.Error("expected an ordered list")
	}
	if l.Start != 3 {
		t.Errorf("list start = %d, want 3", l.Start)
	}
}

func TestParse_GFMAlert(t *testing.T) {
	doc := Parse([]byte("> [!WARNING]\n> be careful\n"))
	a, ok := doc.Children[0].(*ast.Alert)
	if !ok {
		t.Fatalf("doc.Children[0] = %T, want *ast.Alert", doc.Children[0])
	}
	if a.AlertKind != ast.AlertWarning {
		t.Errorf("alert kind = %v, want AlertWarning", a.AlertKind)
	}
}

func TestParse_UnrecognizedAlertKeywordYieldsUnknown(t *testing.T) {
	doc := Parse([]byte("> [!WEIRD]\n> be careful\n"))
	a, ok := doc.Children[0].(*ast.Alert)
	if !ok {
		t.Fatalf("doc.Children[0] = %T, want *ast.Alert", doc.Children[0])
	}
	if a.AlertKind != ast.AlertUnknown {
		t.Errorf("alert kind = %v, want AlertUnknown", a.AlertKind)
	}
}

func TestParse_PlainBlockquoteIsNotAlert(t *testing.T) {
	doc := Parse([]byte("> just a quote\n"))
	if _, ok := doc.Children[0].(*ast.BlockQuote); !ok {
		t.Fatalf("doc.Children[0] = %T, want *ast.BlockQuote", doc.Children[0])
	}
}

func TestParse_Table(t *testing.T) {
	source := "| A | B |\n| --- | --- |\n| 1 | 2 |\n"
	doc := Parse([]byte(source))
	tbl, ok := doc.Children[0].(*ast.Table)
	if !ok {
		t.Fatalf("doc.Children[0] = %T, want *ast.Table", doc.Children[0])
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("got %d rows, want 2 (1 header + 1 data)", len(tbl.Rows))
	}
	if !tbl.Rows[0].Header {
		t.Error("first row should be the header")
	}
}

func TestParse_DescriptionList(t *testing.T) {
	source := "Term\n:   Definition text\n"
	doc := Parse([]byte(source))
	found := false
	for _, n := range doc.Children {
		if _, ok := n.(*ast.DescriptionList); ok {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a DescriptionList node, got %#v", doc.Children)
	}
}

func TestParse_Footnote(t *testing.T) {
	source := "Body with a note.[^1]\n\n[^1]: The footnote text.\n"
	doc := Parse([]byte(source))
	found := false
	for _, n := range doc.Children {
		if _, ok := n.(*ast.Footnote); ok {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a Footnote node among top-level children, got %#v", doc.Children)
	}
}

func TestParse_InlineEmphasisAndStrong(t *testing.T) {
	doc := Parse([]byte("*em* and **strong**\n"))
	p, ok := doc.Children[0].(*ast.Paragraph)
	if !ok {
		t.Fatalf("doc.Children[0] = %T, want *ast.Paragraph", doc.Children[0])
	}
	var sawEmph, sawStrong bool
	for _, c := range p.Children {
		switch c.(type) {
		case *ast.Emph:
			sawEmph = true
		case *ast.Strong:
			sawStrong = true
		}
	}
	if !sawEmph || !sawStrong {
		t.Errorf("expected both Emph and Strong children, got %#v", p.Children)
	}
}

func TestParse_TaskListItemCheckedState(t *testing.T) {
	doc := Parse([]byte("- [x] done\n- [ ] todo\n"))
	l, ok := doc.Children[0].(*ast.List)
	if !ok {
		t.Fatalf("doc.Children[0] = %T, want *ast.List", doc.Children[0])
	}
	if len(l.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(l.Items))
	}
	if l.Items[0].Task == nil || !*l.Items[0].Task {
		t.Error("expected item 0 to be a checked task item")
	}
	if l.Items[1].Task == nil || *l.Items[1].Task {
		t.Error("expected item 1 to be an unchecked task item")
	}
}
