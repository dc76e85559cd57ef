package main

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/onel/overtype/surface"
)

var numberedRE = regexp.MustCompile(`^\d+\.\s`)

// demoActions is a deliberately small formatting backend for the demo.
// It understands just enough markdown to make the chords visible.
type demoActions struct{}

func (demoActions) ToggleBold(s *surface.Surface) error   { return toggleInline(s, "**") }
func (demoActions) ToggleItalic(s *surface.Surface) error { return toggleInline(s, "_") }

func (demoActions) InsertLink(s *surface.Surface) error {
	label := "text"
	if sel, ok := s.SelectedText(); ok {
		if strings.ContainsRune(sel, '\n') {
			return errors.New("link label cannot span lines")
		}
		label = sel
	}
	s.InsertText("[" + label + "](url)")
	return nil
}

func (demoActions) ToggleNumberedList(s *surface.Surface) error {
	return toggleLinePrefix(s, numberedRE.MatchString, func(i int) string {
		return fmt.Sprintf("%d. ", i+1)
	})
}

func (demoActions) ToggleBulletList(s *surface.Surface) error {
	isBullet := func(line string) bool {
		return strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ")
	}
	return toggleLinePrefix(s, isBullet, func(int) string { return "- " })
}

// toggleInline wraps the selection in marker, or unwraps it when already
// wrapped. Without a selection it inserts an empty pair and parks the
// cursor between the markers.
func toggleInline(s *surface.Surface, marker string) error {
	sel, ok := s.Selection()
	if !ok {
		s.InsertText(marker + marker)
		cur := s.Cursor()
		s.SetCursor(surface.Pos{Row: cur.Row, Col: cur.Col - len([]rune(marker))})
		return nil
	}
	if sel.Start.Row != sel.End.Row {
		return errors.New("inline style cannot span lines")
	}
	text, _ := s.SelectedText()
	if inner, wrapped := cutMarker(text, marker); wrapped {
		s.ReplaceRange(sel, inner)
		return nil
	}
	s.ReplaceRange(sel, marker+text+marker)
	return nil
}

func cutMarker(text, marker string) (string, bool) {
	if len(text) < 2*len(marker) {
		return "", false
	}
	if !strings.HasPrefix(text, marker) || !strings.HasSuffix(text, marker) {
		return "", false
	}
	return text[len(marker) : len(text)-len(marker)], true
}

// toggleLinePrefix lists or unlists the selected rows. When every row is
// already an item the markers come off; otherwise each row gets prefix(i),
// replacing any item marker it already carries.
func toggleLinePrefix(s *surface.Surface, isItem func(string) bool, prefix func(i int) string) error {
	rows := selectedRows(s)

	allItems := true
	for _, row := range rows {
		if !isItem(s.Line(row)) {
			allItems = false
			break
		}
	}

	for i, row := range rows {
		line := s.Line(row)
		next := stripItemPrefix(line)
		if !allItems {
			next = prefix(i) + next
		}
		if next == line {
			continue
		}
		s.ReplaceRange(surface.Range{
			Start: surface.Pos{Row: row},
			End:   surface.Pos{Row: row, Col: s.LineLen(row)},
		}, next)
	}
	return nil
}

// selectedRows reports the rows a line-level action applies to. A selection
// ending at column 0 does not include that final row; without a selection
// the cursor row stands alone.
func selectedRows(s *surface.Surface) []int {
	r, ok := s.Selection()
	if !ok {
		return []int{s.Cursor().Row}
	}
	end := r.End.Row
	if r.End.Col == 0 && end > r.Start.Row {
		end--
	}
	rows := make([]int, 0, end-r.Start.Row+1)
	for row := r.Start.Row; row <= end; row++ {
		rows = append(rows, row)
	}
	return rows
}

func stripItemPrefix(line string) string {
	if m := numberedRE.FindString(line); m != "" {
		return line[len(m):]
	}
	if rest, ok := strings.CutPrefix(line, "- "); ok {
		return rest
	}
	if rest, ok := strings.CutPrefix(line, "* "); ok {
		return rest
	}
	return line
}
