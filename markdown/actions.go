package markdown

import "github.com/onel/overtype/surface"

// Actions is the formatting backend a dispatcher drives. Implementations
// mutate the surface in place and may fail. They never emit change
// notifications; the dispatcher owns that.
type Actions interface {
	ToggleBold(s *surface.Surface) error
	ToggleItalic(s *surface.Surface) error
	InsertLink(s *surface.Surface) error
	ToggleNumberedList(s *surface.Surface) error
	ToggleBulletList(s *surface.Surface) error
}
