package shortcuts

import (
	"github.com/charmbracelet/log"

	"github.com/onel/overtype/markdown"
	"github.com/onel/overtype/surface"
)

// Dispatcher invokes formatting operations by action identifier. It is the
// single invoke-by-identifier path: the router's fallback and toolbar
// implementations can share one instance, so chords and toolbar buttons
// cannot drift apart.
type Dispatcher struct {
	actions markdown.Actions
	logger  *log.Logger
}

// NewDispatcher returns a Dispatcher over the given formatting backend.
// A nil logger falls back to log.Default().
func NewDispatcher(actions markdown.Actions, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Dispatcher{actions: actions, logger: logger}
}

// Dispatch focuses s, runs the operation named by action against it, and on
// success emits one synthetic change notification through s. A failed
// operation is logged and swallowed: no error propagates and no
// notification follows, even when the operation mutated the surface before
// failing. Unrecognized identifiers invoke nothing. A nil surface or nil
// backend makes the whole dispatch a no-op.
func (d *Dispatcher) Dispatch(action markdown.Action, s *surface.Surface) {
	if d.actions == nil || s == nil {
		return
	}

	s.Focus()

	var err error
	switch action {
	case markdown.ActionToggleBold:
		err = d.actions.ToggleBold(s)
	case markdown.ActionToggleItalic:
		err = d.actions.ToggleItalic(s)
	case markdown.ActionInsertLink:
		err = d.actions.InsertLink(s)
	case markdown.ActionToggleNumberedList:
		err = d.actions.ToggleNumberedList(s)
	case markdown.ActionToggleBulletList:
		err = d.actions.ToggleBulletList(s)
	default:
		d.logger.Debug("unknown formatting action", "action", action)
		return
	}
	if err != nil {
		d.logger.Error("formatting action failed", "action", action, "error", err)
		return
	}

	s.NotifyChanged()
}
