// Package serializer implements Hongdown's core: it walks internal/ast
// trees and emits formatted Markdown bytes, subject to spec.md's style
// rules, line-width budget, per-element configuration, and in-document
// directives. The serializer does no I/O (spec.md §1) and owns no state
// beyond what is created per invocation (spec.md §3, "Lifecycle").
package serializer

import (
	"bytes"
	"sort"
	"strings"

	"github.com/hongdown/hongdown/internal/ast"
	"github.com/hongdown/hongdown/internal/directive"
	"github.com/hongdown/hongdown/internal/options"
)

// Warning is one recoverable issue surfaced alongside output (spec.md §6).
type Warning struct {
	Line    int
	Kind    WarningKind
	Message string
}

// WarningKind names the taxonomy from spec.md §7, carried on Warning.Kind
// for callers that want to filter programmatically.
type WarningKind int

const (
	WarnInconsistentTableColumns WarningKind = iota
	WarnExternalFormatterFailed
	WarnExternalFormatterTimeout
	WarnUnknownAlertKind
	WarnInvalidDirectiveArgument
)

// refEntry is one collected reference-style link/image destination,
// accumulated per section and flushed at a section boundary (spec.md §4.1).
type refEntry struct {
	label      string
	url        string
	title      string
	firstOrder int
}

// state is the serializer's per-invocation mutable context (spec.md §3,
// "Serializer state"). It is created fresh by Serialize and never reused.
type state struct {
	buf     bytes.Buffer
	opts    options.Options
	nouns   nounSet
	hook    CodeFormatterHook
	source  []byte
	dirs    *directive.Directives

	prefixes []string // stack of line-prefix segments
	col      int       // display columns emitted on the current line, prefix inclusive

	tracker     *directive.Tracker
	sourceLines []string // source split on \n, for verbatim disabled-region passthrough

	// reference accumulation, keyed case-insensitively (spec.md: "A reference
	// definition is emitted at most once per document").
	refOrder []string
	refs     map[string]*refEntry
	refSeen  map[string]bool // labels already flushed to output

	// footnote definitions collected for the section they belong to.
	footnoteOrder []string
	footnotes     map[string]*ast.Footnote

	warnings     []Warning
	labelCounter int

	atLineStart bool
}

func newState(opts options.Options, nouns nounSet, hook CodeFormatterHook, source []byte, dirs *directive.Directives) *state {
	return &state{
		opts:        opts,
		nouns:       nouns,
		hook:        hook,
		source:      source,
		dirs:        dirs,
		tracker:     directive.NewTracker(),
		sourceLines: strings.Split(string(source), "\n"),
		refs:        make(map[string]*refEntry),
		refSeen:     make(map[string]bool),
		footnotes:   make(map[string]*ast.Footnote),
		atLineStart: true,
	}
}

// verbatimFrom emits the original source verbatim starting at the given
// 1-indexed line through end of input (spec.md §4.1, disable-file).
func (s *state) verbatimFrom(line int) {
	idx := line - 1
	if idx < 0 || idx >= len(s.sourceLines) {
		return
	}
	s.writeRaw([]byte(strings.Join(s.sourceLines[idx:], "\n")))
}

// verbatimRange emits the original source verbatim for the 1-indexed,
// inclusive line range [from, to], without a trailing newline (the next
// separator terminates the last line), used for a single disabled
// block's span (spec.md §4.1, disable/enable).
func (s *state) verbatimRange(from, to int) {
	fromIdx, toIdx := from-1, to-1
	if fromIdx < 0 {
		fromIdx = 0
	}
	if toIdx >= len(s.sourceLines) {
		toIdx = len(s.sourceLines) - 1
	}
	if fromIdx > toIdx {
		return
	}
	s.writeRaw([]byte(strings.Join(s.sourceLines[fromIdx:toIdx+1], "\n")))
	s.col = displayWidth(s.sourceLines[toIdx])
	s.atLineStart = false
}

func (s *state) warn(line int, kind WarningKind, msg string) {
	s.warnings = append(s.warnings, Warning{Line: line, Kind: kind, Message: msg})
}

// currentPrefix joins the active prefix stack.
func (s *state) currentPrefix() string {
	if len(s.prefixes) == 0 {
		return ""
	}
	return strings.Join(s.prefixes, "")
}

func (s *state) pushPrefix(p string) {
	s.prefixes = append(s.prefixes, p)
}

func (s *state) popPrefix() {
	s.prefixes = s.prefixes[:len(s.prefixes)-1]
}

// prefixWidth is the display-column width of the active prefix stack.
func (s *state) prefixWidth() int {
	return displayWidth(s.currentPrefix())
}

// writeRaw appends bytes with no prefix/width bookkeeping. Used only for
// disabled-region passthrough and code/front-matter verbatim content,
// where spec.md's invariant (4) exempts byte-exact reproduction.
func (s *state) writeRaw(b []byte) {
	s.buf.Write(b)
}

// newline emits a line terminator and the current prefix, satisfying
// invariant (1): "Every emitted newline is followed either by end-of-output
// or by the current prefix before any content."
func (s *state) newline() {
	s.trimTrailingSpace()
	s.buf.WriteByte('\n')
	prefix := s.currentPrefix()
	if prefix != "" {
		s.buf.WriteString(prefix)
	}
	s.col = s.prefixWidth()
	s.atLineStart = true
}

// ensurePrefixOnFreshLine writes the prefix if nothing has been written on
// the current line yet (used when entering a block whose first line must
// carry the prefix, e.g. after a forced blank separator).
func (s *state) ensurePrefixOnFreshLine() {
	if s.atLineStart && s.col < s.prefixWidth() {
		s.buf.WriteString(s.currentPrefix()[s.col:])
		s.col = s.prefixWidth()
	}
}

// writeText appends plain text, updating the column cursor by display
// width. It does not add spaces or wrap; callers that need wrapping use
// the wrap engine (wrap.go).
func (s *state) writeText(t string) {
	s.buf.WriteString(t)
	s.col += displayWidth(t)
	if t != "" {
		s.atLineStart = false
	}
}

// blankLines terminates the block's own still-open last line, then
// inserts n genuinely empty lines (trimmed of trailing spaces per
// invariant 2) before leaving the cursor at the start of the following
// content line, prefix already written. spec.md §4.1's default policy
// wants one blank line between block siblings (n=1); a level-2 Setext
// heading wants two (n=2).
func (s *state) blankLines(n int) {
	s.trimTrailingSpace()
	s.buf.WriteByte('\n')
	blank := strings.TrimRight(s.currentPrefix(), " ")
	for i := 0; i < n; i++ {
		if blank != "" {
			s.buf.WriteString(blank)
		}
		s.buf.WriteByte('\n')
	}
	prefix := s.currentPrefix()
	if prefix != "" {
		s.buf.WriteString(prefix)
	}
	s.col = s.prefixWidth()
	s.atLineStart = true
}

// blankLine is blankLines(1), the default one-blank-line separator.
func (s *state) blankLine() {
	s.blankLines(1)
}

// trimTrailingSpace removes trailing ASCII spaces from the buffer's final
// line, enforcing invariant (2): "no trailing spaces on any line."
func (s *state) trimTrailingSpace() {
	b := s.buf.Bytes()
	end := len(b)
	start := end
	for start > 0 && b[start-1] != '\n' {
		start--
	}
	line := b[start:end]
	trimmed := strings.TrimRight(string(line), " \t")
	if len(trimmed) != len(line) {
		s.buf.Truncate(start)
		s.buf.WriteString(trimmed)
	}
}

// finish trims a final trailing-space line and enforces exactly one
// trailing newline (invariant 3), unless the document produced no output.
func (s *state) finish() string {
	s.trimTrailingSpace()
	out := s.buf.String()
	if strings.TrimSpace(out) == "" {
		return ""
	}
	out = strings.TrimRight(out, "\n")
	return out + "\n"
}

// addReference records (or reuses) a reference-style link/image target for
// later flush. label is matched case-insensitively per CommonMark.
func (s *state) addReference(label, url, title string) string {
	key := strings.ToLower(label)
	if existing, ok := s.refs[key]; ok {
		return existing.label
	}
	s.refs[key] = &refEntry{label: label, url: url, title: title, firstOrder: len(s.refOrder)}
	s.refOrder = append(s.refOrder, key)
	return label
}

// flushReferences emits all references accumulated since the last flush,
// sorted by first-use order, preceded by one blank line (spec.md §4.1).
func (s *state) flushReferences() {
	pending := make([]*refEntry, 0, len(s.refOrder))
	for _, key := range s.refOrder {
		if s.refSeen[key] {
			continue
		}
		pending = append(pending, s.refs[key])
		s.refSeen[key] = true
	}
	if len(pending) == 0 {
		return
	}
	sort.SliceStable(pending, func(i, j int) bool { return pending[i].firstOrder < pending[j].firstOrder })

	s.blankLine()
	for i, r := range pending {
		if i > 0 {
			s.newline()
		}
		s.writeText("[" + r.label + "]: " + r.url)
		if r.title != "" {
			s.writeText(` "` + r.title + `"`)
		}
	}
}

// flushFootnotes emits the footnote definitions registered since the
// last flush, i.e. those whose definition node appeared in the closing
// section. Placement follows where a definition appears in the tree, not
// where the footnote is referenced.
func (s *state) flushFootnotes() {
	if len(s.footnoteOrder) == 0 {
		return
	}
	for _, label := range s.footnoteOrder {
		fn := s.footnotes[label]
		if fn == nil {
			continue
		}
		s.blankLine()
		s.writeText("[^" + fn.Label + "]: ")
		s.pushPrefix(strings.Repeat(" ", 4))
		s.emitBlockChildren(fn.Children)
		s.popPrefix()
	}
	s.footnoteOrder = nil
	s.footnotes = make(map[string]*ast.Footnote)
}
