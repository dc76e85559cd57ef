package shortcuts

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/onel/overtype/chord"
	"github.com/onel/overtype/markdown"
)

// Router classifies keyboard events against the chord table and dispatches
// the actions they resolve to. One Router serves one editor.
type Router struct {
	editor     Editor
	conv       chord.Convention
	dispatcher *Dispatcher
}

// New returns a Router for cfg.Editor. ConventionAuto resolves here, once;
// classification never re-samples the platform.
func New(cfg Config) *Router {
	conv := cfg.Convention
	if conv == chord.ConventionAuto {
		conv = chord.DefaultConvention()
	}
	return &Router{
		editor:     cfg.Editor,
		conv:       conv,
		dispatcher: NewDispatcher(cfg.Actions, cfg.Logger),
	}
}

// Convention returns the primary-modifier convention resolved at
// construction.
func (r *Router) Convention() chord.Convention { return r.conv }

// Dispatcher returns the router's action dispatcher. Toolbars that perform
// formatting themselves can funnel their invocations through it so chords
// and toolbar buttons share one path.
func (r *Router) Dispatcher() *Dispatcher { return r.dispatcher }

// Classify routes ev. It returns true when the event matched a chord, in
// which case hosts must not process the event further, and false otherwise,
// leaving the event untouched. The return value reports chord recognition,
// not formatting success: a matched chord whose action later fails still
// returns true.
func (r *Router) Classify(ev chord.Event) bool {
	action, ok := Resolve(ev, r.conv)
	if !ok {
		return false
	}
	r.dispatch(action)
	return true
}

// HandleKeyMsg adapts and classifies a Bubble Tea key message in one call.
func (r *Router) HandleKeyMsg(msg tea.KeyMsg) bool {
	ev, ok := chord.FromKeyMsg(msg)
	if !ok {
		return false
	}
	return r.Classify(ev)
}

func (r *Router) dispatch(action markdown.Action) {
	if r.editor == nil {
		r.dispatcher.Dispatch(action, nil)
		return
	}
	if tb := r.editor.Toolbar(); tb != nil {
		tb.HandleAction(action)
		return
	}
	r.dispatcher.Dispatch(action, r.editor.Surface())
}

// Close releases the router. It holds no resources and registered no
// listeners, so Close always returns nil and may be called repeatedly.
func (r *Router) Close() error { return nil }
