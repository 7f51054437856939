package serializer

import (
	"strconv"
	"strings"

	"github.com/hongdown/hongdown/internal/ast"
	"github.com/hongdown/hongdown/internal/options"
)

// emitList renders a list's items per spec.md §4.4 and §4.9's state
// machine: Start -> Item -> BetweenItems -> Item ... -> End, where the
// BetweenItems transition emits a blank line for loose lists and nothing
// for tight ones.
func (s *state) emitList(l *ast.List, depth int) {
	markers := computeMarkers(l, depth, s.opts)

	for i, item := range l.Items {
		if i > 0 {
			if !l.Tight {
				s.blankLine()
			} else {
				s.newline()
			}
		}
		s.emitListItem(item, markers[i], depth)
	}
}

// itemMarker is the precomputed first-line text and continuation prefix
// for one list item.
type itemMarker struct {
	text            string
	continuationPad string
}

func computeMarkers(l *ast.List, depth int, opts options.Options) []itemMarker {
	markers := make([]itemMarker, len(l.Items))
	if !l.Ordered {
		prefix := strings.Repeat(" ", opts.List.LeadingSpaces) + string(opts.List.UnorderedMarker) + strings.Repeat(" ", opts.List.TrailingSpaces)
		for i := range l.Items {
			markers[i] = itemMarker{text: prefix, continuationPad: strings.Repeat(" ", displayWidth(prefix))}
		}
		return markers
	}

	sep := opts.OrderedList.OddLevelMarker
	if depth%2 == 0 {
		sep = opts.OrderedList.EvenLevelMarker
	}

	raw := make([]string, len(l.Items))
	width := 0
	for i := range l.Items {
		n := l.Start + i
		raw[i] = strconv.Itoa(n) + string(sep)
		if len(raw[i]) > width {
			width = len(raw[i])
		}
	}

	for i, r := range raw {
		var padded string
		switch opts.OrderedList.Pad {
		case options.PadStart:
			padded = strings.Repeat(" ", width-len(r)) + r + " "
		default: // PadEnd
			trailing := width - len(r) + 1
			if trailing < 1 {
				trailing = 1
			}
			padded = r + strings.Repeat(" ", trailing)
		}
		markers[i] = itemMarker{text: padded, continuationPad: strings.Repeat(" ", displayWidth(padded))}
	}
	return markers
}

func (s *state) emitListItem(item *ast.Item, marker itemMarker, depth int) {
	s.writeText(marker.text)
	if item.Task != nil {
		if *item.Task {
			s.writeText("[x] ")
		} else {
			s.writeText("[ ] ")
		}
	}

	s.pushPrefix(marker.continuationPad)
	s.emitItemChildren(item.Children, depth+1)
	s.popPrefix()
}

// emitItemChildren renders a list item's block children. The first
// block continues directly on the marker's line; subsequent blocks are
// separated by a blank line, matching loose-list semantics. Nested
// lists increment depth for marker alternation (spec.md §4.4: "nested
// markers alternate per the rules above").
func (s *state) emitItemChildren(children []ast.Node, depth int) {
	for i, c := range children {
		if i > 0 {
			s.blankLine()
		}
		if nested, ok := c.(*ast.List); ok {
			s.emitList(nested, depth)
			continue
		}
		s.emitBlock(c)
	}
}
