// Package shortcuts routes keyboard chords to markdown formatting actions.
//
// A Router holds the fixed chord table — primary+b/i/k and primary+shift+7/8
// — and classifies host key events against it. A matched action goes to the
// editor's toolbar when one is registered; otherwise the Dispatcher focuses
// the text surface, invokes the formatting backend, and on success emits one
// synthetic change notification. The primary chord modifier (Command on the
// Apple family, Control elsewhere) is resolved once at construction.
//
// The router registers no listeners of its own; hosts feed events in, one at
// a time, from their UI goroutine.
package shortcuts
