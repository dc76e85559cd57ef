package chord

import "strings"

// Modifier is a bitmask of modifier keys held during a key event.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota
	// ModCtrl indicates the Control key.
	ModCtrl
	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt
	// ModMeta indicates the Meta key (Command on macOS, Win elsewhere).
	ModMeta
)

// Has reports whether all modifiers in mask are set.
func (m Modifier) Has(mask Modifier) bool {
	return m&mask == mask
}

// HasShift reports whether Shift is set.
func (m Modifier) HasShift() bool { return m.Has(ModShift) }

// HasCtrl reports whether Control is set.
func (m Modifier) HasCtrl() bool { return m.Has(ModCtrl) }

// HasAlt reports whether Alt is set.
func (m Modifier) HasAlt() bool { return m.Has(ModAlt) }

// HasMeta reports whether Meta is set.
func (m Modifier) HasMeta() bool { return m.Has(ModMeta) }

// With returns a copy of m with the given modifiers set.
func (m Modifier) With(mask Modifier) Modifier {
	return m | mask
}

// String returns the canonical "ctrl+alt+meta+shift" form, or "none".
func (m Modifier) String() string {
	if m == ModNone {
		return "none"
	}
	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "alt")
	}
	if m.HasMeta() {
		parts = append(parts, "meta")
	}
	if m.HasShift() {
		parts = append(parts, "shift")
	}
	return strings.Join(parts, "+")
}

// modifierNames maps chord label tokens to modifier bits.
var modifierNames = map[string]Modifier{
	"shift": ModShift,
	"ctrl":  ModCtrl,
	"alt":   ModAlt,
	"opt":   ModAlt,
	"meta":  ModMeta,
	"cmd":   ModMeta,
	"super": ModMeta,
}

// modifierFromName returns the modifier bit for a label token.
func modifierFromName(name string) (Modifier, bool) {
	m, ok := modifierNames[strings.ToLower(name)]
	return m, ok
}
