package serializer

import "github.com/mattn/go-runewidth"

// displayWidth measures s in Unicode display columns per spec.md §4.5:
// Wide/Fullwidth runes count 2, zero-width runes count 0, everything else
// counts 1. go-runewidth implements the East-Asian-Width table this rule
// is built on; it is the same library the teacher repo's internal/util
// package used for its own display-width measurements.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}
