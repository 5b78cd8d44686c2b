// Package goquery implements wordfreq.Extractor using goquery and the
// golang.org/x/net/html parser.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wordfreq"
	"golang.org/x/net/html"
)

// Ensure Extractor implements wordfreq.Extractor at compile time.
var _ wordfreq.Extractor = (*Extractor)(nil)

// hiddenSelectors are removed before text is collected.
var hiddenSelectors = []string{"script", "style"}

// Extractor returns the visible text of an HTML page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract removes script and style elements, joins every remaining text
// node with a single space and normalizes the result.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", nil
	}

	// Scripting is disabled so <noscript> content is parsed as markup
	// rather than as one raw text node.
	root, err := html.ParseWithOptions(strings.NewReader(rawHTML), html.ParseOptionEnableScripting(false))
	if err != nil {
		return "", wordfreq.Errorf(wordfreq.EPARSE, "failed to parse HTML: %v", err)
	}

	doc := goquery.NewDocumentFromNode(root)
	for _, sel := range hiddenSelectors {
		doc.Find(sel).Remove()
	}

	return wordfreq.NormalizeText(JoinText(doc.Selection, " ")), nil
}

// JoinText returns the text nodes below sel joined with sep. Comments and
// doctype nodes are skipped.
func JoinText(sel *goquery.Selection, sep string) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			parts = append(parts, n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, sep)
}
