package surface

import "strings"

// InsertText inserts text at the cursor, or replaces the active selection.
// It reports whether the document changed.
func (s *Surface) InsertText(text string) bool {
	r, ok := s.Selection()
	if !ok {
		r = Range{Start: s.cursor, End: s.cursor}
	}
	return s.ReplaceRange(r, text)
}

// ReplaceRange replaces the text in r with text, which may contain '\n'.
// The cursor lands just past the inserted text and the selection clears.
// It reports whether the document changed; replacing a span with identical
// text is a no-op.
func (s *Surface) ReplaceRange(r Range, text string) bool {
	r = ClampRange(r, len(s.lines), s.lineLen).Normalize()
	if r.IsEmpty() && text == "" {
		return false
	}
	if s.textInRange(r) == text {
		return false
	}

	s.cursor = s.splice(r, text)
	s.sel = selectionState{}
	s.version++
	return true
}

// splice rewrites the lines covered by r with text. r must be normalized and
// in bounds. Returns the position just past the inserted text.
func (s *Surface) splice(r Range, text string) Pos {
	startRow, startCol := r.Start.Row, r.Start.Col
	endRow, endCol := r.End.Row, r.End.Col

	prefix := append([]rune(nil), s.lines[startRow][:startCol]...)
	suffix := append([]rune(nil), s.lines[endRow][endCol:]...)

	ins := splitLines(text)

	var next Pos
	var repl [][]rune
	if len(ins) == 1 {
		line := make([]rune, 0, len(prefix)+len(ins[0])+len(suffix))
		line = append(line, prefix...)
		line = append(line, ins[0]...)
		line = append(line, suffix...)
		repl = [][]rune{line}
		next = Pos{Row: startRow, Col: len(prefix) + len(ins[0])}
	} else {
		repl = make([][]rune, 0, len(ins))

		first := make([]rune, 0, len(prefix)+len(ins[0]))
		first = append(first, prefix...)
		first = append(first, ins[0]...)
		repl = append(repl, first)

		for i := 1; i < len(ins)-1; i++ {
			repl = append(repl, append([]rune(nil), ins[i]...))
		}

		lastPart := ins[len(ins)-1]
		last := make([]rune, 0, len(lastPart)+len(suffix))
		last = append(last, lastPart...)
		last = append(last, suffix...)
		repl = append(repl, last)

		next = Pos{Row: startRow + len(ins) - 1, Col: len(lastPart)}
	}

	out := make([][]rune, 0, startRow+len(repl)+len(s.lines)-endRow-1)
	out = append(out, s.lines[:startRow]...)
	out = append(out, repl...)
	out = append(out, s.lines[endRow+1:]...)
	s.lines = out
	return next
}

// textInRange returns the document text covered by r. r must be normalized
// and in bounds.
func (s *Surface) textInRange(r Range) string {
	if r.IsEmpty() {
		return ""
	}
	if r.Start.Row == r.End.Row {
		return string(s.lines[r.Start.Row][r.Start.Col:r.End.Col])
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		line := s.lines[row]
		from, to := 0, len(line)
		if row == r.Start.Row {
			from = r.Start.Col
		}
		if row == r.End.Row {
			to = r.End.Col
		}
		sb.WriteString(string(line[from:to]))
	}
	return sb.String()
}
