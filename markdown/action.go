package markdown

// Action identifies one formatting operation on a text surface. Action
// values are stable identifiers: toolbars receive them verbatim and
// dispatchers resolve them to Actions methods by name.
type Action string

const (
	ActionToggleBold         Action = "toggle-bold"
	ActionToggleItalic       Action = "toggle-italic"
	ActionInsertLink         Action = "insert-link"
	ActionToggleNumberedList Action = "toggle-numbered-list"
	ActionToggleBulletList   Action = "toggle-bullet-list"
)

// All returns the defined actions in display order.
func All() []Action {
	return []Action{
		ActionToggleBold,
		ActionToggleItalic,
		ActionInsertLink,
		ActionToggleNumberedList,
		ActionToggleBulletList,
	}
}

// Valid reports whether a is one of the defined formatting actions.
func (a Action) Valid() bool {
	switch a {
	case ActionToggleBold,
		ActionToggleItalic,
		ActionInsertLink,
		ActionToggleNumberedList,
		ActionToggleBulletList:
		return true
	default:
		return false
	}
}

func (a Action) String() string { return string(a) }
