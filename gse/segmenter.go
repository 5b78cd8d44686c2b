// Package gse implements wordfreq.Segmenter with the go-ego/gse dictionary
// segmenter, which splits Chinese and other unspaced scripts into words.
package gse

import (
	"os"

	"github.com/fwojciec/wordfreq"
	"github.com/go-ego/gse"
)

// Ensure Segmenter implements wordfreq.Segmenter at compile time.
var _ wordfreq.Segmenter = (*Segmenter)(nil)

// Segmenter splits mixed-script text into words using a prefix dictionary
// plus an HMM for words missing from the dictionary.
type Segmenter struct {
	seg gse.Segmenter
	hmm bool
}

// Option configures a Segmenter.
type Option func(*Segmenter)

// WithHMM enables or disables HMM discovery of unknown words.
// Enabled by default.
func WithHMM(enabled bool) Option {
	return func(s *Segmenter) {
		s.hmm = enabled
	}
}

// NewSegmenter loads the Chinese dictionary compiled into the binary, then
// extends it with each of dictFiles in order. Dictionary files hold one
// "word frequency [part-of-speech]" entry per line. Loading takes around a
// second, so one Segmenter should be shared for the process lifetime.
func NewSegmenter(dictFiles []string, opts ...Option) (*Segmenter, error) {
	s := &Segmenter{hmm: true}
	for _, opt := range opts {
		opt(s)
	}

	s.seg.SkipLog = true
	if err := s.seg.LoadDictEmbed(); err != nil {
		return nil, wordfreq.Errorf(wordfreq.ESEGMENT, "failed to load default dictionary: %v", err)
	}

	for _, path := range dictFiles {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, wordfreq.Errorf(wordfreq.ESEGMENT, "failed to load dictionary: %v", err)
		}
		if err := s.seg.LoadDictStr(string(data)); err != nil {
			return nil, wordfreq.Errorf(wordfreq.ESEGMENT, "failed to load dictionary %s: %v", path, err)
		}
	}

	return s, nil
}

// Segment returns the words of text in order. Whitespace and punctuation
// come back as tokens of their own and are dropped later by counting.
func (s *Segmenter) Segment(text string) ([]string, error) {
	if text == "" {
		return nil, nil
	}
	return s.seg.Cut(text, s.hmm), nil
}
