package chord

import "strings"

// Event is a single keyboard chord event. Key is the lower-cased key
// identifier ("b", "7", "enter"); Mods is the raw modifier state reported by
// the host. Shift carried by an upper-case rune is folded into Mods by the
// adapters, so "B" and shift+"b" arrive identically.
type Event struct {
	Key  string
	Mods Modifier
}

// NewEvent returns an Event with the key identifier lower-cased.
func NewEvent(key string, mods Modifier) Event {
	return Event{Key: strings.ToLower(key), Mods: mods}
}

// PrimaryHeld reports whether the platform-primary modifier is held,
// resolved under the given convention.
func (e Event) PrimaryHeld(c Convention) bool {
	return c.Primary(e.Mods)
}

// ShiftHeld reports whether Shift is held.
func (e Event) ShiftHeld() bool {
	return e.Mods.HasShift()
}

// String returns the canonical chord label, such as "ctrl+shift+7".
func (e Event) String() string {
	if e.Mods == ModNone {
		return e.Key
	}
	return e.Mods.String() + "+" + e.Key
}

// Parse converts a chord label like "ctrl+shift+7" into an Event. Leading
// tokens that name modifiers ("ctrl", "alt", "shift", "meta", "cmd", "opt",
// "super") are folded into the modifier mask; the remainder is the key.
func Parse(label string) (Event, bool) {
	if label == "" {
		return Event{}, false
	}
	if label == " " {
		return Event{Key: "space"}, true
	}
	parts := strings.Split(label, "+")
	var mods Modifier
	for len(parts) > 1 {
		m, ok := modifierFromName(parts[0])
		if !ok {
			break
		}
		mods = mods.With(m)
		parts = parts[1:]
	}
	key := strings.ToLower(strings.Join(parts, "+"))
	if key == "" {
		return Event{}, false
	}
	return Event{Key: key, Mods: mods}, true
}
