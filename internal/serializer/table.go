package serializer

import (
	"strings"

	"github.com/hongdown/hongdown/internal/ast"
)

// emitTable renders a table per spec.md §4.2: column widths are the max
// display width of header/body cells (pipes escaped), followed by an
// alignment row, then body rows, each cell padded per its column's
// alignment.
func (s *state) emitTable(t *ast.Table) {
	if len(t.Rows) == 0 {
		return
	}

	numCols := len(t.Alignments)
	rendered := make([][]string, len(t.Rows))
	for ri, row := range t.Rows {
		cells := make([]string, len(row.Cells))
		for ci, cell := range row.Cells {
			cells[ci] = escapeTableCell(s.renderInlineChildren(cell.Children))
		}
		rendered[ri] = cells
		if len(cells) != numCols {
			s.warn(row.Line(), WarnInconsistentTableColumns, "table row has a different number of columns than the header.")
		}
	}

	widths := make([]int, numCols)
	for c := 0; c < numCols; c++ {
		widths[c] = 3
		for _, row := range rendered {
			if c < len(row) {
				if w := displayWidth(row[c]); w > widths[c] {
					widths[c] = w
				}
			}
		}
	}

	for ri, row := range t.Rows {
		if ri > 0 {
			s.newline()
		}
		s.writeTableRow(rendered[ri], widths, t.Alignments)
		if row.Header {
			s.newline()
			s.writeAlignmentRow(widths, t.Alignments)
		}
	}
}

func (s *state) writeTableRow(cells []string, widths []int, aligns []ast.Alignment) {
	var b strings.Builder
	b.WriteString("|")
	for c := range widths {
		text := ""
		if c < len(cells) {
			text = cells[c]
		}
		b.WriteString(" ")
		b.WriteString(padCell(text, widths[c], alignOf(aligns, c)))
		b.WriteString(" |")
	}
	s.writeText(b.String())
}

func (s *state) writeAlignmentRow(widths []int, aligns []ast.Alignment) {
	var b strings.Builder
	b.WriteString("|")
	for c, w := range widths {
		b.WriteString(" ")
		b.WriteString(alignmentCell(w, alignOf(aligns, c)))
		b.WriteString(" |")
	}
	s.writeText(b.String())
}

func alignOf(aligns []ast.Alignment, c int) ast.Alignment {
	if c < len(aligns) {
		return aligns[c]
	}
	return ast.AlignNone
}

func alignmentCell(width int, a ast.Alignment) string {
	switch a {
	case ast.AlignLeft:
		return ":" + strings.Repeat("-", width-1)
	case ast.AlignRight:
		return strings.Repeat("-", width-1) + ":"
	case ast.AlignCenter:
		return ":" + strings.Repeat("-", width-2) + ":"
	default:
		return strings.Repeat("-", width)
	}
}

func padCell(text string, width int, a ast.Alignment) string {
	pad := width - displayWidth(text)
	if pad < 0 {
		pad = 0
	}
	switch a {
	case ast.AlignRight:
		return strings.Repeat(" ", pad) + text
	case ast.AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
	default:
		return text + strings.Repeat(" ", pad)
	}
}

func escapeTableCell(text string) string {
	return strings.ReplaceAll(text, "|", "\\|")
}
