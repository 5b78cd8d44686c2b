package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fwojciec/wordfreq"
	"github.com/fwojciec/wordfreq/markdown"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	analysis, err := deps.Analyzer.Analyze(deps.Ctx, c.URL)
	if err != nil {
		if werr := markdown.WriteFailure(deps.Stderr, wordfreq.NewFailure(err, c.URL)); werr != nil {
			return err
		}
		return &ReportedError{Err: err}
	}

	fmt.Fprintf(deps.Stdout, "Fetched %s from %s: %s words, %s distinct\n\n",
		humanize.Bytes(uint64(analysis.Bytes)),
		analysis.URL,
		humanize.Comma(int64(analysis.Table.Total())),
		humanize.Comma(int64(analysis.Table.Len())),
	)

	top := analysis.Top()
	if err := markdown.WriteTerms(deps.Stdout, fmt.Sprintf("Top %d words", len(top)), top); err != nil {
		return err
	}

	threshold := analysis.Table.ClampThreshold(c.Min)
	if threshold > 1 {
		filtered := analysis.Filtered(threshold).TopN(wordfreq.DefaultTopN)
		title := fmt.Sprintf("Top %d words with frequency of at least %d", len(filtered), threshold)
		if err := markdown.WriteTerms(deps.Stdout, title, filtered); err != nil {
			return err
		}
	}

	if c.Chart != "" {
		return c.writeChart(deps, analysis, top)
	}
	return nil
}

func (c *AnalyzeCmd) writeChart(deps *Dependencies, analysis *wordfreq.Analysis, terms []wordfreq.Term) error {
	kind, err := wordfreq.ParseChartKind(c.Kind)
	if err != nil {
		return err
	}

	f, err := os.Create(c.Chart)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := deps.Charts.Render(f, kind, analysis.ChartData(kind.Label(), terms)); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "\nWrote %s chart to %s\n", kind, c.Chart)
	return nil
}
