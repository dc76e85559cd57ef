package chord

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// FromKeyMsg converts a Bubble Tea key message into an Event. It returns
// ok=false for input that cannot form a chord: pasted text and multi-rune
// sequences. Upper-case runes fold into the lower-cased key plus ModShift.
func FromKeyMsg(msg tea.KeyMsg) (Event, bool) {
	if msg.Type == tea.KeyRunes {
		if msg.Paste || len(msg.Runes) != 1 {
			return Event{}, false
		}
		r := msg.Runes[0]
		var mods Modifier
		if msg.Alt {
			mods = mods.With(ModAlt)
		}
		if unicode.IsUpper(r) {
			mods = mods.With(ModShift)
			r = unicode.ToLower(r)
		}
		return Event{Key: string(r), Mods: mods}, true
	}
	return Parse(msg.String())
}
