// Package surface implements the editable text surface a markdown editor
// works against: document text, cursor, selection, focus, and explicit
// change notification.
//
// Coordinates are 0-based (Row, Col) in runes.
// Ranges are half-open spans in document coordinates: [Start, End).
//
// Mutations bump the document version but never notify on their own. A host
// that finishes a unit of work calls NotifyChanged to fan the resulting
// state out to OnChange observers.
package surface
