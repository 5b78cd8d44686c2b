// Package markdown writes ranked terms as Markdown tables.
package markdown

import (
	"io"
	"strconv"

	"github.com/fwojciec/wordfreq"
	"github.com/nao1215/markdown"
)

// WriteTerms writes terms as a rank, token, count table.
func WriteTerms(w io.Writer, title string, terms []wordfreq.Term) error {
	md := markdown.NewMarkdown(w)
	if title != "" {
		md.H2(title)
		md.PlainText("")
	}

	if len(terms) == 0 {
		md.PlainText("No terms found.")
		return md.Build()
	}

	rows := make([][]string, len(terms))
	for i, t := range terms {
		rows[i] = []string{strconv.Itoa(i + 1), t.Token, strconv.Itoa(t.Count)}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Rank", "Token", "Count"},
		Rows:   rows,
	})

	return md.Build()
}

// WriteFailure writes the three lines describing a failed analysis.
func WriteFailure(w io.Writer, f wordfreq.Failure) error {
	md := markdown.NewMarkdown(w)
	for _, line := range f.Lines() {
		md.PlainText(line)
	}
	return md.Build()
}
