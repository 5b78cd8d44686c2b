// Package analyze runs the word frequency pipeline: fetch, extract,
// segment and count.
package analyze

import (
	"context"
	"strings"

	"github.com/fwojciec/wordfreq"
)

// Ensure Analyzer implements wordfreq.Analyzer at compile time.
var _ wordfreq.Analyzer = (*Analyzer)(nil)

// Analyzer wires the pipeline stages together. Every call runs all stages
// from scratch; nothing is cached between calls.
type Analyzer struct {
	Fetcher   wordfreq.Fetcher
	Extractor wordfreq.Extractor
	Segmenter wordfreq.Segmenter
	StopWords wordfreq.StopWords

	// Sections is the number of document sections counted for the
	// heatmap. Defaults to wordfreq.DefaultSections.
	Sections int
}

// Analyze fetches url and returns its word frequencies.
func (a *Analyzer) Analyze(ctx context.Context, url string) (*wordfreq.Analysis, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, wordfreq.Errorf(wordfreq.EINVALID, "URL required")
	}

	doc, err := a.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	text, err := a.Extractor.Extract(doc.Text())
	if err != nil {
		return nil, withContentType(err, doc)
	}

	tokens, err := a.Segmenter.Segment(text)
	if err != nil {
		if wordfreq.ErrorCode(err) == wordfreq.EINTERNAL {
			err = wordfreq.Errorf(wordfreq.ESEGMENT, "segmentation failed: %v", err)
		}
		return nil, withContentType(err, doc)
	}

	kept := wordfreq.FilterTokens(tokens, a.StopWords)

	sections := a.Sections
	if sections <= 0 {
		sections = wordfreq.DefaultSections
	}

	return &wordfreq.Analysis{
		URL:         doc.URL,
		ContentType: doc.ContentType,
		Bytes:       len(doc.Body),
		Text:        text,
		Table:       wordfreq.Count(kept, nil),
		Sections:    wordfreq.SectionCounts(kept, sections),
	}, nil
}

// withContentType attaches the document's URL and content type to errors
// raised after a successful fetch.
func withContentType(err error, doc *wordfreq.Document) error {
	return &wordfreq.DocumentError{URL: doc.URL, ContentType: doc.ContentType, Err: err}
}
