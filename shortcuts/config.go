package shortcuts

import (
	"github.com/charmbracelet/log"

	"github.com/onel/overtype/chord"
	"github.com/onel/overtype/markdown"
	"github.com/onel/overtype/surface"
)

// Toolbar is the optional formatting toolbar collaborator. When the editor
// exposes one, the router hands matched action identifiers to it verbatim
// and performs no formatting itself; completion is not awaited.
type Toolbar interface {
	HandleAction(action markdown.Action)
}

// Editor is the host editor handle a Router works against. The router keeps
// a non-owning reference for its lifetime.
type Editor interface {
	// Surface returns the editable text surface.
	Surface() *surface.Surface

	// Toolbar returns the formatting toolbar, or nil when the editor
	// has none.
	Toolbar() Toolbar
}

// Config configures a Router.
type Config struct {
	// Editor is the host editor handle.
	Editor Editor

	// Actions is the formatting backend for the fallback path. May be nil
	// when every dispatch goes to a toolbar; fallback dispatches are then
	// no-ops.
	Actions markdown.Actions

	// Convention selects the primary chord modifier. ConventionAuto
	// resolves from the running platform once, at construction.
	Convention chord.Convention

	// Logger receives dispatch diagnostics. Defaults to log.Default().
	Logger *log.Logger
}
