package shortcuts

import (
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/onel/overtype/chord"
	"github.com/onel/overtype/markdown"
	"github.com/onel/overtype/surface"
)

type fakeActions struct {
	calls []markdown.Action
	fail  map[markdown.Action]error
	apply func(s *surface.Surface)
}

func (f *fakeActions) invoke(a markdown.Action, s *surface.Surface) error {
	f.calls = append(f.calls, a)
	if f.apply != nil {
		f.apply(s)
	}
	if err, ok := f.fail[a]; ok {
		return err
	}
	return nil
}

func (f *fakeActions) ToggleBold(s *surface.Surface) error {
	return f.invoke(markdown.ActionToggleBold, s)
}

func (f *fakeActions) ToggleItalic(s *surface.Surface) error {
	return f.invoke(markdown.ActionToggleItalic, s)
}

func (f *fakeActions) InsertLink(s *surface.Surface) error {
	return f.invoke(markdown.ActionInsertLink, s)
}

func (f *fakeActions) ToggleNumberedList(s *surface.Surface) error {
	return f.invoke(markdown.ActionToggleNumberedList, s)
}

func (f *fakeActions) ToggleBulletList(s *surface.Surface) error {
	return f.invoke(markdown.ActionToggleBulletList, s)
}

type fakeToolbar struct {
	received []markdown.Action
}

func (f *fakeToolbar) HandleAction(a markdown.Action) {
	f.received = append(f.received, a)
}

type fakeEditor struct {
	surf *surface.Surface
	tb   Toolbar
}

func (e *fakeEditor) Surface() *surface.Surface { return e.surf }
func (e *fakeEditor) Toolbar() Toolbar          { return e.tb }

func newTestRouter(t *testing.T, tb Toolbar) (*Router, *fakeActions, *surface.Surface) {
	t.Helper()
	s := surface.New("hello world")
	acts := &fakeActions{}
	r := New(Config{
		Editor:     &fakeEditor{surf: s, tb: tb},
		Actions:    acts,
		Convention: chord.PrimaryCtrl,
		Logger:     log.New(io.Discard),
	})
	return r, acts, s
}

func TestClassify_RequiresPrimaryModifier(t *testing.T) {
	r, acts, s := newTestRouter(t, nil)
	ver := s.Version()

	events := []chord.Event{
		{Key: "b"},
		{Key: "b", Mods: chord.ModShift},
		{Key: "b", Mods: chord.ModAlt},
		{Key: "b", Mods: chord.ModMeta}, // secondary under the ctrl convention
		{Key: "7", Mods: chord.ModShift},
	}
	for _, ev := range events {
		if r.Classify(ev) {
			t.Errorf("Classify(%v): got true, want false", ev)
		}
	}

	if len(acts.calls) != 0 {
		t.Fatalf("expected no formatting calls, got %v", acts.calls)
	}
	if s.Version() != ver {
		t.Fatalf("expected surface untouched, version %d -> %d", ver, s.Version())
	}
}

func TestClassify_MatchesChordTable(t *testing.T) {
	cases := []struct {
		name string
		ev   chord.Event
		want markdown.Action
	}{
		{"bold", chord.Event{Key: "b", Mods: chord.ModCtrl}, markdown.ActionToggleBold},
		{"italic", chord.Event{Key: "i", Mods: chord.ModCtrl}, markdown.ActionToggleItalic},
		{"link", chord.Event{Key: "k", Mods: chord.ModCtrl}, markdown.ActionInsertLink},
		{"numbered list", chord.Event{Key: "7", Mods: chord.ModCtrl | chord.ModShift}, markdown.ActionToggleNumberedList},
		{"bullet list", chord.Event{Key: "8", Mods: chord.ModCtrl | chord.ModShift}, markdown.ActionToggleBulletList},
		{"upper-case key from host", chord.Event{Key: "B", Mods: chord.ModCtrl}, markdown.ActionToggleBold},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, acts, _ := newTestRouter(t, nil)
			if !r.Classify(tc.ev) {
				t.Fatalf("Classify(%v): got false, want true", tc.ev)
			}
			if len(acts.calls) != 1 || acts.calls[0] != tc.want {
				t.Fatalf("formatting calls=%v, want [%s]", acts.calls, tc.want)
			}
		})
	}
}

func TestClassify_ShiftMustMatchExactly(t *testing.T) {
	r, acts, _ := newTestRouter(t, nil)

	events := []chord.Event{
		{Key: "b", Mods: chord.ModCtrl | chord.ModShift},
		{Key: "i", Mods: chord.ModCtrl | chord.ModShift},
		{Key: "k", Mods: chord.ModCtrl | chord.ModShift},
		{Key: "7", Mods: chord.ModCtrl},
		{Key: "8", Mods: chord.ModCtrl},
		{Key: "x", Mods: chord.ModCtrl},
		{Key: "9", Mods: chord.ModCtrl | chord.ModShift},
	}
	for _, ev := range events {
		if r.Classify(ev) {
			t.Errorf("Classify(%v): got true, want false", ev)
		}
	}
	if len(acts.calls) != 0 {
		t.Fatalf("expected no formatting calls, got %v", acts.calls)
	}
}

func TestClassify_IgnoresAltAndSecondaryModifier(t *testing.T) {
	cases := []struct {
		name string
		ev   chord.Event
		want markdown.Action
	}{
		{"alt alongside", chord.Event{Key: "b", Mods: chord.ModCtrl | chord.ModAlt}, markdown.ActionToggleBold},
		{"meta alongside", chord.Event{Key: "b", Mods: chord.ModCtrl | chord.ModMeta}, markdown.ActionToggleBold},
		{"alt with shifted digit", chord.Event{Key: "7", Mods: chord.ModCtrl | chord.ModShift | chord.ModAlt}, markdown.ActionToggleNumberedList},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, acts, _ := newTestRouter(t, nil)
			if !r.Classify(tc.ev) {
				t.Fatalf("Classify(%v): got false, want true", tc.ev)
			}
			if len(acts.calls) != 1 || acts.calls[0] != tc.want {
				t.Fatalf("formatting calls=%v, want [%s]", acts.calls, tc.want)
			}
		})
	}
}

func TestClassify_MetaConvention(t *testing.T) {
	s := surface.New("")
	acts := &fakeActions{}
	r := New(Config{
		Editor:     &fakeEditor{surf: s},
		Actions:    acts,
		Convention: chord.PrimaryMeta,
		Logger:     log.New(io.Discard),
	})

	if !r.Classify(chord.Event{Key: "b", Mods: chord.ModMeta}) {
		t.Fatalf("Classify(meta+b): got false, want true")
	}
	if r.Classify(chord.Event{Key: "b", Mods: chord.ModCtrl}) {
		t.Fatalf("Classify(ctrl+b) under meta convention: got true, want false")
	}
	if len(acts.calls) != 1 || acts.calls[0] != markdown.ActionToggleBold {
		t.Fatalf("formatting calls=%v, want [%s]", acts.calls, markdown.ActionToggleBold)
	}
}

func TestClassify_ToolbarReceivesActionVerbatim(t *testing.T) {
	tb := &fakeToolbar{}
	r, acts, s := newTestRouter(t, tb)
	s.Blur()
	notifies := 0
	s.OnChange(func(surface.ChangeEvent) { notifies++ })

	if !r.Classify(chord.Event{Key: "b", Mods: chord.ModCtrl}) {
		t.Fatalf("Classify(ctrl+b): got false, want true")
	}

	if len(tb.received) != 1 || tb.received[0] != markdown.ActionToggleBold {
		t.Fatalf("toolbar received=%v, want [%s]", tb.received, markdown.ActionToggleBold)
	}
	if len(acts.calls) != 0 {
		t.Fatalf("fallback formatter called=%v, want none with toolbar present", acts.calls)
	}
	if notifies != 0 {
		t.Fatalf("notifications=%d, want 0 on toolbar path", notifies)
	}
	if s.Focused() {
		t.Fatalf("toolbar path should not focus the surface")
	}
}

func TestClassify_FallbackFocusesInvokesNotifies(t *testing.T) {
	r, acts, s := newTestRouter(t, nil)
	s.Blur()
	acts.apply = func(s *surface.Surface) { s.InsertText("**") }

	var events []surface.ChangeEvent
	s.OnChange(func(ev surface.ChangeEvent) { events = append(events, ev) })

	if !r.Classify(chord.Event{Key: "b", Mods: chord.ModCtrl}) {
		t.Fatalf("Classify(ctrl+b): got false, want true")
	}

	if len(acts.calls) != 1 || acts.calls[0] != markdown.ActionToggleBold {
		t.Fatalf("formatting calls=%v, want [%s]", acts.calls, markdown.ActionToggleBold)
	}
	if !s.Focused() {
		t.Fatalf("expected surface focused before the operation")
	}
	if len(events) != 1 {
		t.Fatalf("notifications=%d, want exactly 1", len(events))
	}
	if got := events[0].Text; got != "**hello world" {
		t.Fatalf("event text=%q, want %q", got, "**hello world")
	}
}

func TestClassify_FormattingFailureLoggedAndSwallowed(t *testing.T) {
	var out strings.Builder
	s := surface.New("hello")
	acts := &fakeActions{fail: map[markdown.Action]error{
		markdown.ActionToggleBold: errors.New("boom"),
	}}
	r := New(Config{
		Editor:     &fakeEditor{surf: s},
		Actions:    acts,
		Convention: chord.PrimaryCtrl,
		Logger:     log.New(&out),
	})

	notifies := 0
	s.OnChange(func(surface.ChangeEvent) { notifies++ })

	if !r.Classify(chord.Event{Key: "b", Mods: chord.ModCtrl}) {
		t.Fatalf("Classify(ctrl+b): got false, want true even when the action fails")
	}
	if len(acts.calls) != 1 {
		t.Fatalf("formatting calls=%d, want 1", len(acts.calls))
	}
	if notifies != 0 {
		t.Fatalf("notifications=%d, want 0 on failure", notifies)
	}
	logged := out.String()
	if !strings.Contains(logged, "formatting action failed") || !strings.Contains(logged, "toggle-bold") {
		t.Fatalf("log output %q missing failure entry", logged)
	}
}

func TestHandleKeyMsg(t *testing.T) {
	r, acts, _ := newTestRouter(t, nil)

	if !r.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyCtrlB}) {
		t.Fatalf("HandleKeyMsg(ctrl+b): got false, want true")
	}
	if len(acts.calls) != 1 || acts.calls[0] != markdown.ActionToggleBold {
		t.Fatalf("formatting calls=%v, want [%s]", acts.calls, markdown.ActionToggleBold)
	}

	if r.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")}) {
		t.Fatalf("HandleKeyMsg(plain b): got true, want false")
	}
	if r.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b"), Paste: true}) {
		t.Fatalf("HandleKeyMsg(pasted b): got true, want false")
	}
}

func TestClassify_NilEditorConsumesWithoutDispatch(t *testing.T) {
	acts := &fakeActions{}
	r := New(Config{
		Actions:    acts,
		Convention: chord.PrimaryCtrl,
		Logger:     log.New(io.Discard),
	})

	if !r.Classify(chord.Event{Key: "b", Mods: chord.ModCtrl}) {
		t.Fatalf("Classify(ctrl+b): got false, want true")
	}
	if len(acts.calls) != 0 {
		t.Fatalf("formatting calls=%v, want none without an editor", acts.calls)
	}
}

func TestRouterClose(t *testing.T) {
	r, _, _ := newTestRouter(t, nil)
	if err := r.Close(); err != nil {
		t.Fatalf("Close: got %v, want nil", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("second Close: got %v, want nil", err)
	}
}
