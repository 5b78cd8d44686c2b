package mock

import "github.com/fwojciec/wordfreq"

var _ wordfreq.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of wordfreq.Extractor.
type Extractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *Extractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}
