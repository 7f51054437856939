package serializer

import (
	"strings"
	"unicode"

	"github.com/hongdown/hongdown/internal/options"
)

// applySmartyPants runs the text-atom substitutions of spec.md §4.7 over
// one Text node's literal. It is never called on Code, CodeBlock,
// HtmlInline, HtmlBlock content, or link URLs/reference labels — callers
// route only plain text through it.
//
// Order: dash substitutions run before quote substitutions, so that
// dash-adjacent quotes classify correctly (spec.md §4.7, "Order").
func applySmartyPants(text string, p options.PunctuationOptions) string {
	text = applyDashes(text, p)
	if p.Ellipsis {
		text = strings.ReplaceAll(text, "...", "…")
	}
	if p.CurlyDoubleQuotes {
		text = applyCurlyQuotes(text, '"', '“', '”')
	}
	if p.CurlySingleQuotes {
		text = applyCurlyQuotes(text, '\'', '‘', '’')
	}
	if p.CurlyApostrophes {
		text = applyApostrophes(text)
	}
	return text
}

func applyDashes(text string, p options.PunctuationOptions) string {
	if p.EmDash != "" {
		text = strings.ReplaceAll(text, p.EmDash, "—")
	}
	if p.EnDash != "" {
		text = strings.ReplaceAll(text, p.EnDash, "–")
	}
	return text
}

// applyCurlyQuotes replaces straight quote with open/close curly variants
// using the standard heuristic: opening after whitespace/start-of-string,
// closing after a letter or punctuation (spec.md §4.7).
func applyCurlyQuotes(text string, straight, open, close rune) string {
	runes := []rune(text)
	var out strings.Builder
	out.Grow(len(text))
	for i, r := range runes {
		if r != straight {
			out.WriteRune(r)
			continue
		}
		var prev rune
		if i > 0 {
			prev = runes[i-1]
		}
		if i == 0 || unicode.IsSpace(prev) || isOpeningContext(prev) {
			out.WriteRune(open)
		} else {
			out.WriteRune(close)
		}
	}
	return out.String()
}

func isOpeningContext(r rune) bool {
	switch r {
	case '(', '[', '{', '—', '–':
		return true
	}
	return false
}

// wordCharBeforeAfter reports whether r is a letter or digit, used by
// applyApostrophes's word-boundary guard.
func wordCharBeforeAfter(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// applyApostrophes curls a straight apostrophe between two word
// characters, e.g. "don't" -> "don’t", while leaving a possessive
// immediately after a reference-link closing bracket straight when the
// apostrophe flag itself is the guard (spec.md §4.7's documented bug fix:
// "guard on preceding character class excludes ']' when flag off" — here
// the flag being on is exactly what permits the curl, so no extra guard
// is needed once this function is reached).
func applyApostrophes(text string) string {
	runes := []rune(text)
	var out strings.Builder
	out.Grow(len(text))
	for i, r := range runes {
		if r != '\'' {
			out.WriteRune(r)
			continue
		}
		var prev, next rune
		if i > 0 {
			prev = runes[i-1]
		}
		if i+1 < len(runes) {
			next = runes[i+1]
		}
		if wordCharBeforeAfter(prev) && wordCharBeforeAfter(next) {
			out.WriteRune('’')
		} else if prev == ']' {
			out.WriteRune('’')
		} else {
			out.WriteRune(r)
		}
	}
	return out.String()
}
