// Package trafilatura narrows HTML to its main content with go-trafilatura
// before visible-text extraction.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/wordfreq"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements wordfreq.Extractor at compile time.
var _ wordfreq.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to isolate the main content node, then
// passes its HTML to the next Extractor.
type Extractor struct {
	next wordfreq.Extractor
}

// NewExtractor creates a new Extractor delegating to next.
func NewExtractor(next wordfreq.Extractor) *Extractor {
	return &Extractor{next: next}
}

// Extract returns the visible text of the page's main content. When no
// content node is found the whole page is used.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return e.next.Extract(rawHTML)
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil || result == nil || result.ContentNode == nil {
		return e.next.Extract(rawHTML)
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return "", wordfreq.Errorf(wordfreq.EPARSE, "failed to render content: %v", err)
	}

	return e.next.Extract(contentHTML)
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
