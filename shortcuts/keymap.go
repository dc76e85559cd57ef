package shortcuts

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/onel/overtype/chord"
)

// KeyMap carries display metadata for the formatting chords, for hosts that
// render help with bubbles. Classification always consults the fixed table;
// editing these bindings changes labels, not what Classify matches.
type KeyMap struct {
	Bold         key.Binding
	Italic       key.Binding
	Link         key.Binding
	NumberedList key.Binding
	BulletList   key.Binding
}

// DefaultKeyMap returns help metadata labeled for conv: "ctrl+b" bindings,
// or "cmd+b" under the Command convention.
func DefaultKeyMap(conv chord.Convention) KeyMap {
	mod := conv.PrimaryName()
	return KeyMap{
		Bold: key.NewBinding(
			key.WithKeys(mod+"+b"),
			key.WithHelp(mod+"+b", "bold"),
		),
		Italic: key.NewBinding(
			key.WithKeys(mod+"+i"),
			key.WithHelp(mod+"+i", "italic"),
		),
		Link: key.NewBinding(
			key.WithKeys(mod+"+k"),
			key.WithHelp(mod+"+k", "link"),
		),
		NumberedList: key.NewBinding(
			key.WithKeys(mod+"+shift+7"),
			key.WithHelp(mod+"+shift+7", "numbered list"),
		),
		BulletList: key.NewBinding(
			key.WithKeys(mod+"+shift+8"),
			key.WithHelp(mod+"+shift+8", "bullet list"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Bold, k.Italic, k.Link}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Bold, k.Italic, k.Link},
		{k.NumberedList, k.BulletList},
	}
}
