// Package ast defines Hongdown's document model: a tagged-variant tree
// produced by internal/parseradapter and consumed by internal/serializer.
//
// The tree is intentionally independent of goldmark's own AST. goldmark is
// the parsing substrate (see internal/parseradapter), but the serializer
// needs a model shaped around Hongdown's own concerns — alerts, description
// lists, reference-style links — some of which goldmark's AST has no node
// for at all.
package ast

// Kind identifies a node's concrete type for switch-based dispatch.
type Kind int

const (
	KindDocument Kind = iota
	KindFrontMatter
	KindHeading
	KindParagraph
	KindList
	KindItem
	KindCodeBlock
	KindBlockQuote
	KindAlert
	KindThematicBreak
	KindTable
	KindTableRow
	KindTableCell
	KindDescriptionList
	KindDescriptionItem
	KindFootnote
	KindReferenceDefinition
	KindHTMLBlock

	KindText
	KindCode
	KindEmph
	KindStrong
	KindLink
	KindImage
	KindSoftBreak
	KindHardBreak
	KindFootnoteReference
	KindHTMLInline
	KindStrikethrough
)

// Alignment is a table column's alignment.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// AlertKind is the GFM alert kind (> [!NOTE] and friends).
type AlertKind int

const (
	AlertNote AlertKind = iota
	AlertTip
	AlertImportant
	AlertWarning
	AlertCaution
	AlertUnknown
)

var alertNames = map[AlertKind]string{
	AlertNote:      "NOTE",
	AlertTip:       "TIP",
	AlertImportant: "IMPORTANT",
	AlertWarning:   "WARNING",
	AlertCaution:   "CAUTION",
}

// String returns the upper-case header keyword, e.g. "NOTE".
func (k AlertKind) String() string {
	if s, ok := alertNames[k]; ok {
		return s
	}
	return "NOTE"
}

// ParseAlertKind maps an uppercased keyword (without brackets) to an
// AlertKind. ok is false for anything not in spec.md's enumerated set.
func ParseAlertKind(s string) (AlertKind, bool) {
	for k, name := range alertNames {
		if name == s {
			return k, true
		}
	}
	return AlertUnknown, false
}

// Node is the common interface implemented by every tree element.
type Node interface {
	Kind() Kind
	// Line is the node's 1-indexed source start line.
	Line() int
}

type base struct {
	line int
}

func (b base) Line() int { return b.line }

// ---- Block variants ----

type Document struct {
	base
	Children []Node
}

func (*Document) Kind() Kind { return KindDocument }

// FrontMatter holds raw YAML front matter bytes, emitted verbatim.
type FrontMatter struct {
	base
	Raw string
}

func (*FrontMatter) Kind() Kind { return KindFrontMatter }

type Heading struct {
	base
	Level         int
	ATXFromSource bool
	Children      []Node
}

func (*Heading) Kind() Kind { return KindHeading }

type Paragraph struct {
	base
	Children []Node
}

func (*Paragraph) Kind() Kind { return KindParagraph }

type List struct {
	base
	Ordered bool
	Start   int
	Tight   bool
	Items   []*Item
}

func (*List) Kind() Kind { return KindList }

type Item struct {
	base
	Children []Node
	// Task is non-nil for GFM task-list items.
	Task *bool
}

func (*Item) Kind() Kind { return KindItem }

type CodeBlock struct {
	base
	Info    string
	Literal string
}

func (*CodeBlock) Kind() Kind { return KindCodeBlock }

type BlockQuote struct {
	base
	Children []Node
}

func (*BlockQuote) Kind() Kind { return KindBlockQuote }

type Alert struct {
	base
	AlertKind AlertKind
	Children  []Node
}

func (*Alert) Kind() Kind { return KindAlert }

type ThematicBreak struct {
	base
}

func (*ThematicBreak) Kind() Kind { return KindThematicBreak }

type Table struct {
	base
	Alignments []Alignment
	Rows       []*TableRow
}

func (*Table) Kind() Kind { return KindTable }

type TableRow struct {
	base
	Header bool
	Cells  []*TableCell
}

func (*TableRow) Kind() Kind { return KindTableRow }

type TableCell struct {
	base
	Children []Node
}

func (*TableCell) Kind() Kind { return KindTableCell }

type DescriptionList struct {
	base
	Items []*DescriptionItem
}

func (*DescriptionList) Kind() Kind { return KindDescriptionList }

type DescriptionItem struct {
	base
	Term        []Node
	Definitions [][]Node
}

func (*DescriptionItem) Kind() Kind { return KindDescriptionItem }

type Footnote struct {
	base
	Label    string
	Children []Node
}

func (*Footnote) Kind() Kind { return KindFootnote }

type ReferenceDefinition struct {
	base
	Label string
	URL   string
	Title string
}

func (*ReferenceDefinition) Kind() Kind { return KindReferenceDefinition }

// HTMLBlock carries a raw HTML block or comment verbatim. Directive
// comments (spec.md §4.8) are HTMLBlock/HTMLInline nodes whose Literal
// matches the hongdown-* grammar; internal/directive recognizes them here.
type HTMLBlock struct {
	base
	Literal string
}

func (*HTMLBlock) Kind() Kind { return KindHTMLBlock }

// ---- Inline variants ----

type Text struct {
	base
	Literal string
}

func (*Text) Kind() Kind { return KindText }

type Code struct {
	base
	Literal string
}

func (*Code) Kind() Kind { return KindCode }

type Emph struct {
	base
	Children []Node
}

func (*Emph) Kind() Kind { return KindEmph }

type Strong struct {
	base
	Children []Node
}

func (*Strong) Kind() Kind { return KindStrong }

type Strikethrough struct {
	base
	Children []Node
}

func (*Strikethrough) Kind() Kind { return KindStrikethrough }

type Link struct {
	base
	URL            string
	Title          string
	Children       []Node
	ReferenceLabel string // empty for inline-style links
}

func (*Link) Kind() Kind { return KindLink }

type Image struct {
	base
	URL            string
	Title          string
	Children       []Node
	ReferenceLabel string
}

func (*Image) Kind() Kind { return KindImage }

type SoftBreak struct{ base }

func (*SoftBreak) Kind() Kind { return KindSoftBreak }

type HardBreak struct{ base }

func (*HardBreak) Kind() Kind { return KindHardBreak }

type FootnoteReference struct {
	base
	Label string
}

func (*FootnoteReference) Kind() Kind { return KindFootnoteReference }

type HTMLInline struct {
	base
	Literal string
}

func (*HTMLInline) Kind() Kind { return KindHTMLInline }

// Constructors. Every node carries its 1-indexed source start line at
// construction time (spec.md §3: "Every node carries its 1-indexed source
// start line"); internal/parseradapter is the only caller.

func NewDocument(line int) *Document               { return &Document{base: base{line}} }
func NewFrontMatter(line int, raw string) *FrontMatter {
	return &FrontMatter{base: base{line}, Raw: raw}
}
func NewHeading(line, level int, atx bool) *Heading {
	return &Heading{base: base{line}, Level: level, ATXFromSource: atx}
}
func NewParagraph(line int) *Paragraph { return &Paragraph{base: base{line}} }
func NewList(line int, ordered bool, start int, tight bool) *List {
	return &List{base: base{line}, Ordered: ordered, Start: start, Tight: tight}
}
func NewItem(line int) *Item { return &Item{base: base{line}} }
func NewCodeBlock(line int, info, literal string) *CodeBlock {
	return &CodeBlock{base: base{line}, Info: info, Literal: literal}
}
func NewBlockQuote(line int) *BlockQuote { return &BlockQuote{base: base{line}} }
func NewAlert(line int, kind AlertKind) *Alert {
	return &Alert{base: base{line}, AlertKind: kind}
}
func NewThematicBreak(line int) *ThematicBreak { return &ThematicBreak{base: base{line}} }
func NewTable(line int, alignments []Alignment) *Table {
	return &Table{base: base{line}, Alignments: alignments}
}
func NewTableRow(line int, header bool) *TableRow {
	return &TableRow{base: base{line}, Header: header}
}
func NewTableCell(line int) *TableCell { return &TableCell{base: base{line}} }
func NewDescriptionList(line int) *DescriptionList {
	return &DescriptionList{base: base{line}}
}
func NewDescriptionItem(line int) *DescriptionItem {
	return &DescriptionItem{base: base{line}}
}
func NewFootnote(line int, label string) *Footnote {
	return &Footnote{base: base{line}, Label: label}
}
func NewReferenceDefinition(line int, label, url, title string) *ReferenceDefinition {
	return &ReferenceDefinition{base: base{line}, Label: label, URL: url, Title: title}
}
func NewHTMLBlock(line int, literal string) *HTMLBlock {
	return &HTMLBlock{base: base{line}, Literal: literal}
}
func NewText(line int, literal string) *Text { return &Text{base: base{line}, Literal: literal} }
func NewCode(line int, literal string) *Code { return &Code{base: base{line}, Literal: literal} }
func NewEmph(line int) *Emph     { return &Emph{base: base{line}} }
func NewStrong(line int) *Strong { return &Strong{base: base{line}} }
func NewStrikethrough(line int) *Strikethrough { return &Strikethrough{base: base{line}} }
func NewLink(line int, url, title string) *Link {
	return &Link{base: base{line}, URL: url, Title: title}
}
func NewImage(line int, url, title string) *Image {
	return &Image{base: base{line}, URL: url, Title: title}
}
func NewSoftBreak(line int) *SoftBreak { return &SoftBreak{base: base{line}} }
func NewHardBreak(line int) *HardBreak { return &HardBreak{base: base{line}} }
func NewFootnoteReference(line int, label string) *FootnoteReference {
	return &FootnoteReference{base: base{line}, Label: label}
}
func NewHTMLInline(line int, literal string) *HTMLInline {
	return &HTMLInline{base: base{line}, Literal: literal}
}
