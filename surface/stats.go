package surface

import "github.com/onel/overtype/internal/grapheme"

// Stats summarizes document content for status displays.
type Stats struct {
	Lines     int
	Words     int
	Graphemes int
}

// Stats computes line, word, and grapheme-cluster counts. Words are maximal
// runs of non-whitespace clusters; line breaks count as clusters.
func (s *Surface) Stats() Stats {
	text := s.Text()

	words := 0
	inWord := false
	for _, c := range grapheme.Split(text) {
		if grapheme.IsSpace(c) {
			inWord = false
			continue
		}
		if !inWord {
			words++
			inWord = true
		}
	}

	return Stats{
		Lines:     len(s.lines),
		Words:     words,
		Graphemes: grapheme.Count(text),
	}
}
