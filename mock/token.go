package mock

import "github.com/fwojciec/wordfreq"

var _ wordfreq.Segmenter = (*Segmenter)(nil)

// Segmenter is a mock implementation of wordfreq.Segmenter.
type Segmenter struct {
	SegmentFn func(text string) ([]string, error)
}

func (s *Segmenter) Segment(text string) ([]string, error) {
	return s.SegmentFn(text)
}
