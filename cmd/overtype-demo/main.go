package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/onel/overtype"
	"github.com/onel/overtype/shortcuts"
	"github.com/onel/overtype/surface"
)

var (
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	selectStyle = lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("231"))
	statusStyle = lipgloss.NewStyle().Faint(true)
)

type host struct {
	surf *surface.Surface
}

func (h *host) Surface() *surface.Surface  { return h.surf }
func (h *host) Toolbar() shortcuts.Toolbar { return nil }

type eventState struct {
	count int
	last  surface.ChangeEvent
}

func (st *eventState) handleChange(ev surface.ChangeEvent) {
	st.count++
	st.last = ev
}

type model struct {
	surf   *surface.Surface
	router *shortcuts.Router
	keys   shortcuts.KeyMap
	help   help.Model
	view   viewport.Model
	events *eventState

	anchor    surface.Pos
	selecting bool

	ready bool
}

func newModel(logger *log.Logger) model {
	surf := surface.New(strings.Join([]string{
		"# overtype demo",
		"",
		"Select text with shift+arrows, then press a formatting chord.",
		"Plain typing edits the document. Ctrl+C quits.",
	}, "\n"))

	state := &eventState{}
	surf.OnChange(state.handleChange)

	router := shortcuts.New(shortcuts.Config{
		Editor:  &host{surf: surf},
		Actions: demoActions{},
		Logger:  logger,
	})

	return model{
		surf:   surf,
		router: router,
		keys:   shortcuts.DefaultKeyMap(router.Convention()),
		help:   help.New(),
		events: state,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.view = viewport.New(msg.Width, docHeight(msg.Height))
		m.ready = true

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.view, cmd = m.view.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// Formatting chords first; a consumed event must not also edit.
		if !m.router.HandleKeyMsg(msg) {
			m.handleEditKey(msg)
		}
	}

	if m.ready {
		m.view.SetContent(renderDoc(m.surf))
		m.followCursor()
	}
	return m, nil
}

func (m model) View() string {
	if !m.ready {
		return "loading"
	}

	stats := m.surf.Stats()
	cur := m.surf.Cursor()
	status := statusStyle.Render(fmt.Sprintf(
		"overtype %s  ln %d, col %d  |  %d lines  %d words  %d graphemes  |  events %d",
		overtype.Version(), cur.Row+1, cur.Col+1,
		stats.Lines, stats.Words, stats.Graphemes, m.events.count,
	))

	return m.view.View() + "\n" + status + "\n" + m.help.View(m.keys)
}

func (m *model) handleEditKey(msg tea.KeyMsg) {
	s := m.surf

	switch msg.String() {
	case "left", "right", "up", "down", "home", "end":
		s.ClearSelection()
		m.selecting = false
		s.SetCursor(moved(s, s.Cursor(), msg.String()))

	case "shift+left", "shift+right", "shift+up", "shift+down":
		if !m.selecting {
			m.anchor = s.Cursor()
			m.selecting = true
		}
		next := moved(s, s.Cursor(), strings.TrimPrefix(msg.String(), "shift+"))
		s.SetCursor(next)
		s.SetSelection(surface.Range{Start: m.anchor, End: next})

	case "backspace":
		m.selecting = false
		if _, ok := s.Selection(); ok {
			s.InsertText("")
			break
		}
		p := s.Cursor()
		if p.Col > 0 {
			s.ReplaceRange(surface.Range{Start: surface.Pos{Row: p.Row, Col: p.Col - 1}, End: p}, "")
		} else if p.Row > 0 {
			s.ReplaceRange(surface.Range{Start: surface.Pos{Row: p.Row - 1, Col: s.LineLen(p.Row - 1)}, End: p}, "")
		}

	case "enter":
		m.selecting = false
		s.InsertText("\n")

	case "tab":
		m.selecting = false
		s.InsertText("\t")

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 {
			m.selecting = false
			s.InsertText(string(msg.Runes))
		}
	}
}

func moved(s *surface.Surface, p surface.Pos, dir string) surface.Pos {
	switch dir {
	case "left":
		if p.Col > 0 {
			return surface.Pos{Row: p.Row, Col: p.Col - 1}
		}
		if p.Row > 0 {
			return surface.Pos{Row: p.Row - 1, Col: s.LineLen(p.Row - 1)}
		}
	case "right":
		if p.Col < s.LineLen(p.Row) {
			return surface.Pos{Row: p.Row, Col: p.Col + 1}
		}
		if p.Row < s.LineCount()-1 {
			return surface.Pos{Row: p.Row + 1, Col: 0}
		}
	case "up":
		return surface.Pos{Row: p.Row - 1, Col: p.Col}
	case "down":
		return surface.Pos{Row: p.Row + 1, Col: p.Col}
	case "home":
		return surface.Pos{Row: p.Row, Col: 0}
	case "end":
		return surface.Pos{Row: p.Row, Col: s.LineLen(p.Row)}
	}
	return p
}

func renderDoc(s *surface.Surface) string {
	cur := s.Cursor()
	sel, hasSel := s.Selection()

	var b strings.Builder
	for row := 0; row < s.LineCount(); row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		line := []rune(s.Line(row))
		for col, r := range line {
			p := surface.Pos{Row: row, Col: col}
			switch {
			case p == cur:
				b.WriteString(cursorStyle.Render(string(r)))
			case hasSel && posInRange(p, sel):
				b.WriteString(selectStyle.Render(string(r)))
			default:
				b.WriteRune(r)
			}
		}
		if cur.Row == row && cur.Col == len(line) {
			b.WriteString(cursorStyle.Render(" "))
		}
	}
	return b.String()
}

func posInRange(p surface.Pos, r surface.Range) bool {
	return surface.ComparePos(r.Start, p) <= 0 && surface.ComparePos(p, r.End) < 0
}

func (m *model) followCursor() {
	h := m.view.Height
	if h <= 0 {
		return
	}
	cur := m.surf.Cursor()
	if cur.Row < m.view.YOffset {
		m.view.SetYOffset(cur.Row)
	} else if cur.Row >= m.view.YOffset+h {
		m.view.SetYOffset(cur.Row - h + 1)
	}
}

func docHeight(total int) int {
	h := total - 2
	if h < 0 {
		return 0
	}
	return h
}

func main() {
	logger := log.New(io.Discard)
	if os.Getenv("DEBUG") != "" {
		if f, err := os.OpenFile("overtype-debug.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
			defer f.Close()
			logger = log.New(f)
			logger.SetLevel(log.DebugLevel)
		}
	}

	p := tea.NewProgram(newModel(logger), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
