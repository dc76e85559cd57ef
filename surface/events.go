package surface

// ChangeEvent is the snapshot handed to change observers.
type ChangeEvent struct {
	Version   uint64
	Cursor    Pos
	Selection struct {
		Range  Range
		Active bool
	}

	// Full document text; hosts can diff if needed.
	Text string
}

type observer struct {
	id uint64
	fn func(ChangeEvent)
}

// OnChange registers fn to run on every NotifyChanged call and returns a
// func that removes the registration. A nil fn registers nothing.
func (s *Surface) OnChange(fn func(ChangeEvent)) func() {
	if fn == nil {
		return func() {}
	}
	s.observerSeq++
	id := s.observerSeq
	s.observers = append(s.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range s.observers {
			if o.id == id {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

// NotifyChanged emits the current document state to all observers. Edits
// never notify on their own; the caller decides when a unit of work is
// complete.
func (s *Surface) NotifyChanged() {
	if len(s.observers) == 0 {
		return
	}
	ev := s.changeEvent()
	// Snapshot so observers may deregister themselves mid-emit.
	for _, o := range append([]observer(nil), s.observers...) {
		o.fn(ev)
	}
}

func (s *Surface) changeEvent() ChangeEvent {
	ev := ChangeEvent{
		Version: s.version,
		Cursor:  s.cursor,
		Text:    s.Text(),
	}
	if r, ok := s.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	return ev
}
