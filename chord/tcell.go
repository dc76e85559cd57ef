package chord

import (
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// tcellNamed maps named tcell keys to chord key identifiers. Entries in the
// control range (tab, enter, backspace) shadow their ctrl+letter aliases.
var tcellNamed = map[tcell.Key]string{
	tcell.KeyEnter:      "enter",
	tcell.KeyTab:        "tab",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyEsc:        "esc",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdown",
	tcell.KeyDelete:     "delete",
	tcell.KeyInsert:     "insert",
}

// FromEventKey converts a tcell key event into an Event. It returns ok=false
// for nil events and keys with no stable name. Upper-case runes fold into the
// lower-cased key plus ModShift.
func FromEventKey(ev *tcell.EventKey) (Event, bool) {
	if ev == nil {
		return Event{}, false
	}
	mods := tcellMods(ev.Modifiers())
	k := ev.Key()

	if k == tcell.KeyRune {
		r := ev.Rune()
		if r == ' ' {
			return Event{Key: "space", Mods: mods}, true
		}
		if unicode.IsUpper(r) {
			mods = mods.With(ModShift)
			r = unicode.ToLower(r)
		}
		return Event{Key: string(r), Mods: mods}, true
	}

	if k == tcell.KeyBacktab {
		return Event{Key: "tab", Mods: mods.With(ModShift)}, true
	}
	if name, ok := tcellNamed[k]; ok {
		return Event{Key: name, Mods: mods}, true
	}

	// The remaining control characters double as ctrl+letter chords.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := rune('a' + k - tcell.KeyCtrlA)
		return Event{Key: string(r), Mods: mods.With(ModCtrl)}, true
	}

	if name, ok := tcell.KeyNames[k]; ok {
		return Parse(strings.ToLower(strings.ReplaceAll(name, "-", "+")))
	}
	return Event{}, false
}

// tcellMods converts a tcell modifier mask.
func tcellMods(m tcell.ModMask) Modifier {
	var out Modifier
	if m&tcell.ModShift != 0 {
		out = out.With(ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		out = out.With(ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		out = out.With(ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		out = out.With(ModMeta)
	}
	return out
}
