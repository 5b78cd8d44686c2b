package mock

import (
	"context"

	"github.com/fwojciec/wordfreq"
)

var _ wordfreq.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of wordfreq.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, url string) (*wordfreq.Analysis, error)
}

func (a *Analyzer) Analyze(ctx context.Context, url string) (*wordfreq.Analysis, error) {
	return a.AnalyzeFn(ctx, url)
}
