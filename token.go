package wordfreq

import (
	"strings"
	"unicode/utf8"
)

// Segmenter splits text into word tokens.
// Implementations must not assume whitespace-delimited words.
type Segmenter interface {
	Segment(text string) ([]string, error)
}

// StopWords is a set of tokens excluded from counting.
type StopWords map[string]struct{}

// NewStopWords returns a set containing words. Blank entries are ignored.
func NewStopWords(words ...string) StopWords {
	s := make(StopWords, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			s[w] = struct{}{}
		}
	}
	return s
}

// Contains reports whether token is a stop word. A nil set contains nothing.
func (s StopWords) Contains(token string) bool {
	_, ok := s[token]
	return ok
}

// Merge returns a new set holding the words of s and other.
func (s StopWords) Merge(other StopWords) StopWords {
	out := make(StopWords, len(s)+len(other))
	for w := range s {
		out[w] = struct{}{}
	}
	for w := range other {
		out[w] = struct{}{}
	}
	return out
}

// KeepToken reports whether token survives filtering: it must not be
// blank, must be longer than one character and must not be a stop word.
func KeepToken(token string, stop StopWords) bool {
	if strings.TrimSpace(token) == "" {
		return false
	}
	if utf8.RuneCountInString(token) <= 1 {
		return false
	}
	return !stop.Contains(token)
}

// FilterTokens returns the tokens kept by KeepToken, in order.
func FilterTokens(tokens []string, stop StopWords) []string {
	kept := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if KeepToken(t, stop) {
			kept = append(kept, t)
		}
	}
	return kept
}

// Count filters tokens and counts the survivors into a frequency table.
func Count(tokens []string, stop StopWords) *FrequencyTable {
	t := NewFrequencyTable()
	for _, tok := range tokens {
		if KeepToken(tok, stop) {
			t.Add(tok, 1)
		}
	}
	return t
}
