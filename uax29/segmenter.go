// Package uax29 implements wordfreq.Segmenter with Unicode text segmentation
// (UAX #29) word boundaries.
package uax29

import (
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/fwojciec/wordfreq"
)

// Ensure Segmenter implements wordfreq.Segmenter at compile time.
var _ wordfreq.Segmenter = (*Segmenter)(nil)

// Segmenter splits text at Unicode word boundaries. It needs no dictionary
// but treats each Han ideograph as its own word.
type Segmenter struct{}

// NewSegmenter creates a new Segmenter.
func NewSegmenter() *Segmenter {
	return &Segmenter{}
}

// Segment returns the word-like segments of text. Segments made only of
// spaces or punctuation are dropped.
func (s *Segmenter) Segment(text string) ([]string, error) {
	var tokens []string
	segments := words.FromString(text)
	for segments.Next() {
		if tok := segments.Value(); isWord(tok) {
			tokens = append(tokens, tok)
		}
	}
	return tokens, nil
}

func isWord(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}
