package serializer

// atomKind classifies one token of the wrap engine's input stream
// (spec.md §4.5).
type atomKind int

const (
	atomSpace atomKind = iota // a breakable space between two runs
	atomRun                   // an unbreakable run: word, code span, link, image, autolink
	atomHardBreak             // forces a line break (backslash-newline)
)

// wrapAtom is one token fed to emitWrapped.
type wrapAtom struct {
	kind  atomKind
	text  string
	width int
}

func runAtom(text string) wrapAtom {
	return wrapAtom{kind: atomRun, text: text, width: displayWidth(text)}
}

// emitWrapped runs the greedy word-wrap algorithm of spec.md §4.5 over
// atoms, writing through s. prefixWidth is the starting column budget
// consumed by the active prefix stack; lineWidth is the configured
// target.
func (s *state) emitWrapped(atoms []wrapAtom) {
	prefixWidth := s.prefixWidth()
	first := true
	pendingSpace := false

	for _, a := range atoms {
		switch a.kind {
		case atomHardBreak:
			s.writeText("\\")
			s.newline()
			first = true
			pendingSpace = false
			continue
		case atomSpace:
			if !first {
				pendingSpace = true
			}
			continue
		}

		// atomRun
		extra := 0
		if pendingSpace {
			extra = 1
		}
		if !first && s.col+extra+a.width > s.opts.LineWidth && s.col > prefixWidth {
			s.newline()
			pendingSpace = false
			first = true
			extra = 0
		}
		if pendingSpace && !first {
			s.writeText(" ")
		}
		s.writeText(a.text)
		first = false
		pendingSpace = false
	}
}
