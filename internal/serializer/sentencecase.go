package serializer

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/hongdown/hongdown/internal/ast"
)

// caseState threads the "is this word sentence-initial" decision across
// however many Text/Code/inline nodes make up one heading's children
// (spec.md §4.6, steps 1-4).
type caseState struct {
	nouns          nounSet
	consumedFirst  bool // a Word token has already been emitted
	sentenceInitial bool // the next Word should be treated as sentence-start
}

// wordTokenRegexp extracts a run of word-forming runes: letters, digits,
// and the punctuation that can appear inside an identifier-like proper
// noun (apostrophe, hyphen, slash, dot, @). Everything else is a
// delimiter run handled verbatim between words.
var wordTokenRegexp = regexp.MustCompile(`[\p{L}\p{N}'’@./-]+`)

// sentenceCaseHeading rewrites literal text within a heading's inline
// children according to spec.md §4.6, preserving Code/Link/Image/HTML
// structure and only transforming Text node literals. It mutates the
// heading's own children slice in place; each invocation owns a freshly
// parsed tree so this is safe.
func sentenceCaseHeading(children []ast.Node, nouns nounSet) {
	st := &caseState{nouns: nouns}
	applyCaseToChildren(children, st)
}

func applyCaseToChildren(children []ast.Node, st *caseState) {
	for _, child := range children {
		switch v := child.(type) {
		case *ast.Text:
			v.Literal = applyCaseToText(v.Literal, st)
		case *ast.Code:
			// CodeSpan is opaque: counts toward "first" bookkeeping but its
			// own content is untouched.
			if !st.consumedFirst {
				st.consumedFirst = true
			}
		case *ast.Emph:
			applyCaseToChildren(v.Children, st)
		case *ast.Strong:
			applyCaseToChildren(v.Children, st)
		case *ast.Strikethrough:
			applyCaseToChildren(v.Children, st)
		case *ast.Link:
			applyCaseToChildren(v.Children, st)
		case *ast.Image:
			applyCaseToChildren(v.Children, st)
		case *ast.HTMLInline:
			// opaque, no case transform, no effect on first/sentence state
		}
	}
}

// applyCaseToText tokenizes one Text literal into words and delimiters,
// applying the casing rules of spec.md §4.6 and the multi-word
// proper-noun longest-match rule.
func applyCaseToText(literal string, st *caseState) string {
	idx := wordTokenRegexp.FindAllStringIndex(literal, -1)
	if idx == nil {
		return literal
	}

	var out strings.Builder
	last := 0
	words := make([]string, len(idx))
	for i, loc := range idx {
		words[i] = literal[loc[0]:loc[1]]
	}

	i := 0
	for wi, loc := range idx {
		out.WriteString(literal[last:loc[0]])
		last = loc[1]

		if wi < i {
			continue // already emitted as part of a multi-word proper noun
		}

		// preceding delimiter governs sentence-initial state for this word
		gap := literal[idxEndOf(idx, wi-1):loc[0]]
		if containsSentenceDelimiter(gap) {
			st.sentenceInitial = true
		}

		if matched, consumed := tryProperNounMatch(words, wi, st.nouns); matched != "" {
			out.WriteString(matched)
			for k := wi + 1; k < wi+consumed; k++ {
				out.WriteString(literal[idx[k-1][1]:idx[k][0]])
				out.WriteString(words[k])
			}
			i = wi + consumed
			st.consumedFirst = true
			st.sentenceInitial = false
			continue
		}

		out.WriteString(caseWord(words[wi], st))
		i = wi + 1
	}
	out.WriteString(literal[last:])
	return out.String()
}

func idxEndOf(idx [][]int, i int) int {
	if i < 0 {
		return 0
	}
	return idx[i][1]
}

func containsSentenceDelimiter(gap string) bool {
	return strings.ContainsAny(gap, ":;") || strings.Contains(gap, "—") || strings.Contains(gap, "–")
}

// tryProperNounMatch attempts the longest multi-word proper-noun match
// starting at words[start], returning the canonical replacement text and
// how many word tokens it consumes. It returns ("", 0) on no match.
func tryProperNounMatch(words []string, start int, nouns nounSet) (string, int) {
	const maxSpan = 5
	maxLen := maxSpan
	if start+maxLen > len(words) {
		maxLen = len(words) - start
	}
	for span := maxLen; span >= 1; span-- {
		candidate := strings.Join(words[start:start+span], " ")
		if canon, ok := nouns.lookup(strings.ToLower(candidate)); ok {
			return canon, span
		}
	}
	return "", 0
}

// caseWord applies the single-word rules of spec.md §4.6 steps 2-4.
func caseWord(w string, st *caseState) string {
	defer func() { st.consumedFirst = true; st.sentenceInitial = false }()

	if isPronounI(w) {
		return capitalizeFirstLetterOnly(w)
	}
	if !isLatinWord(w) {
		return w
	}
	if isAllUpper(w) && runeCount(w) >= 2 {
		return w
	}
	if isAcronymPlural(w) {
		return w
	}
	if isAcronymWithDots(w) {
		return w
	}

	if strings.ContainsAny(w, "-/") {
		return caseHyphenated(w, st)
	}

	first := !st.consumedFirst
	if first || st.sentenceInitial {
		if isAllLower(w) {
			return capitalizeFirstLetterOnly(w)
		}
		return w
	}
	return strings.ToLower(w)
}

// caseHyphenated evaluates each hyphen/slash-delimited segment
// independently (spec.md: "Hyphenated words: each segment evaluated
// independently under the same rules").
func caseHyphenated(w string, st *caseState) string {
	segments := splitKeepSep(w, "-/")
	first := !st.consumedFirst || st.sentenceInitial
	var out strings.Builder
	seenWord := false
	for _, seg := range segments {
		if seg == "-" || seg == "/" {
			out.WriteString(seg)
			continue
		}
		if isAllUpper(seg) && runeCount(seg) >= 2 {
			out.WriteString(seg)
			seenWord = true
			continue
		}
		if first && !seenWord {
			out.WriteString(capitalizeFirstLetterOnly(seg))
		} else {
			out.WriteString(strings.ToLower(seg))
		}
		seenWord = true
	}
	return out.String()
}

func splitKeepSep(s, seps string) []string {
	var out []string
	start := 0
	for i, r := range s {
		if strings.ContainsRune(seps, r) {
			if i > start {
				out = append(out, s[start:i])
			}
			out = append(out, string(r))
			start = i + len(string(r))
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

var pronounIRegexp = regexp.MustCompile(`^I('m|'ve|'ll|'d)?$`)

func isPronounI(w string) bool {
	return pronounIRegexp.MatchString(w) || pronounIRegexp.MatchString(strings.ToUpper(w[:1])+w[1:])
}

func capitalizeFirstLetterOnly(w string) string {
	runes := []rune(w)
	if len(runes) == 0 {
		return w
	}
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

func isAllUpper(w string) bool {
	hasLetter := false
	for _, r := range w {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

func isAllLower(w string) bool {
	for _, r := range w {
		if unicode.IsLetter(r) && !unicode.IsLower(r) {
			return false
		}
	}
	return true
}

// isAcronymPlural matches an acronym of >= 2 uppercase letters followed
// by a lowercase plural "s", e.g. "APIs", "URLs" (spec.md §4.6).
func isAcronymPlural(w string) bool {
	if !strings.HasSuffix(w, "s") || strings.HasSuffix(w, "ss") {
		return false
	}
	stem := w[:len(w)-1]
	return isAllUpper(stem) && runeCount(stem) >= 2
}

// isAcronymWithDots matches patterns like "U.S.A." or "Ph.D.": at least
// two runs of one or two letters separated by periods.
func isAcronymWithDots(w string) bool {
	if !strings.Contains(w, ".") {
		return false
	}
	parts := strings.Split(strings.TrimSuffix(w, "."), ".")
	if len(parts) < 2 {
		return false
	}
	for _, p := range parts {
		if runeCount(p) == 0 || runeCount(p) > 2 {
			return false
		}
	}
	return true
}

func isLatinWord(w string) bool {
	for _, r := range w {
		if unicode.IsLetter(r) && r > unicode.MaxLatin1 && !unicode.Is(unicode.Latin, r) {
			return false
		}
	}
	return true
}

func runeCount(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
