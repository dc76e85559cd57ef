// Package chord models keyboard chord events independently of any terminal
// host: a lower-cased key identifier, the raw modifier state reported by the
// host, and the platform convention that selects which physical modifier is
// the primary chord modifier (Command on the Apple family, Control elsewhere).
//
// Adapters convert Bubble Tea and tcell key events into chord events. They
// translate exactly what the host reports; keyboard-layout normalization is
// out of scope.
package chord
