// Package readability narrows HTML to its main article with go-readability
// before visible-text extraction.
package readability

import (
	"strings"

	"github.com/fwojciec/wordfreq"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements wordfreq.Extractor at compile time.
var _ wordfreq.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to drop navigation, footers and other
// boilerplate, then passes the article HTML to the next Extractor.
type Extractor struct {
	next wordfreq.Extractor
}

// NewExtractor creates a new Extractor delegating to next.
func NewExtractor(next wordfreq.Extractor) *Extractor {
	return &Extractor{next: next}
}

// Extract returns the visible text of the page's main article. When no
// article can be found the whole page is used.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return e.next.Extract(rawHTML)
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil || strings.TrimSpace(article.Content) == "" {
		return e.next.Extract(rawHTML)
	}

	return e.next.Extract(article.Content)
}
