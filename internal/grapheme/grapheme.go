// Package grapheme wraps uniseg with the cluster helpers the surface uses
// for document statistics and word scanning.
package grapheme

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text in order. Empty text yields
// nil.
func Split(text string) []string {
	var out []string
	state := -1
	for len(text) > 0 {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		out = append(out, cluster)
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	return uniseg.GraphemeClusterCount(text)
}

// IsSpace reports whether cluster consists entirely of Unicode whitespace.
func IsSpace(cluster string) bool {
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return cluster != ""
}
