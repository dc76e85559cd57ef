package surface

import "strings"

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Surface is the text surface state: document lines, cursor, selection,
// and focus. It is not safe for concurrent use.
type Surface struct {
	lines   [][]rune
	version uint64

	cursor  Pos
	sel     selectionState
	focused bool

	observers   []observer
	observerSeq uint64
}

// New returns a surface holding text, focused, with the cursor at the origin.
func New(text string) *Surface {
	return &Surface{
		lines:   splitLines(text),
		focused: true,
	}
}

// Text returns the full document text with '\n' line breaks.
func (s *Surface) Text() string {
	if len(s.lines) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, line := range s.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// LineCount returns the number of logical lines; there is always at least one.
func (s *Surface) LineCount() int { return len(s.lines) }

// Line returns the text of row without its line break, or "" out of bounds.
func (s *Surface) Line(row int) string {
	if row < 0 || row >= len(s.lines) {
		return ""
	}
	return string(s.lines[row])
}

// LineLen returns the rune length of row, or 0 out of bounds.
func (s *Surface) LineLen(row int) int { return s.lineLen(row) }

// Version counts effective state changes: text, cursor, and selection.
func (s *Surface) Version() uint64 { return s.version }

func (s *Surface) Cursor() Pos { return s.cursor }

func (s *Surface) SetCursor(p Pos) {
	next := s.clampPos(p)
	if next == s.cursor {
		return
	}
	s.cursor = next
	s.version++
}

// Selection returns the normalized active selection. Empty selections are
// treated as inactive.
func (s *Surface) Selection() (Range, bool) {
	if !s.sel.active {
		return Range{}, false
	}
	r := Range{Start: s.sel.anchor, End: s.sel.end}.Normalize()
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SetSelection activates the selection over r, clamped to document bounds.
// The version bumps only when the effective selection changes; updating the
// direction of the same span is not an effective change.
func (s *Surface) SetSelection(r Range) {
	clamped := ClampRange(r, len(s.lines), s.lineLen)
	next := selectionState{active: true, anchor: clamped.Start, end: clamped.End}
	nextRange := Range{Start: next.anchor, End: next.end}.Normalize()
	nextOK := !nextRange.IsEmpty()
	if !nextOK {
		next = selectionState{}
	}

	prevRange, prevOK := s.Selection()
	s.sel = next
	if prevOK == nextOK && (!prevOK || prevRange == nextRange) {
		return
	}
	s.version++
}

func (s *Surface) ClearSelection() {
	_, active := s.Selection()
	s.sel = selectionState{}
	if !active {
		return
	}
	s.version++
}

// SelectedText returns the text covered by the active selection.
func (s *Surface) SelectedText() (string, bool) {
	r, ok := s.Selection()
	if !ok {
		return "", false
	}
	return s.textInRange(r), true
}

// Focus marks the surface as the active input target.
func (s *Surface) Focus() { s.focused = true }

// Blur removes input focus from the surface.
func (s *Surface) Blur() { s.focused = false }

// Focused reports whether the surface holds input focus.
func (s *Surface) Focused() bool { return s.focused }

func (s *Surface) lineLen(row int) int {
	if row < 0 || row >= len(s.lines) {
		return 0
	}
	return len(s.lines[row])
}

func (s *Surface) clampPos(p Pos) Pos {
	return ClampPos(p, len(s.lines), s.lineLen)
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, p := range parts {
		lines = append(lines, []rune(p))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
