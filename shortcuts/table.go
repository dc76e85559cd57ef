package shortcuts

import (
	"strings"

	"github.com/onel/overtype/chord"
	"github.com/onel/overtype/markdown"
)

// binding is one row of the chord table: the lower-case key, whether Shift
// must be held, and the action the chord resolves to.
type binding struct {
	key    string
	shift  bool
	action markdown.Action
}

// table is the complete chord map, immutable for the module's lifetime.
// Letter chords require Shift released; digit chords require it held.
var table = [...]binding{
	{key: "b", shift: false, action: markdown.ActionToggleBold},
	{key: "i", shift: false, action: markdown.ActionToggleItalic},
	{key: "k", shift: false, action: markdown.ActionInsertLink},
	{key: "7", shift: true, action: markdown.ActionToggleNumberedList},
	{key: "8", shift: true, action: markdown.ActionToggleBulletList},
}

// Resolve maps a key event to its formatting action under conv. It returns
// ok=false when the primary modifier is not held or no table row matches.
// Shift must match the row exactly; Alt and the non-authoritative modifier
// are ignored. At most one action matches any event.
func Resolve(ev chord.Event, conv chord.Convention) (markdown.Action, bool) {
	if !ev.PrimaryHeld(conv) {
		return "", false
	}
	k := strings.ToLower(ev.Key)
	shift := ev.ShiftHeld()
	for _, b := range table {
		if b.key == k && b.shift == shift {
			return b.action, true
		}
	}
	return "", false
}
