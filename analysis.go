package wordfreq

import "context"

// Analysis is the result of running the pipeline over one URL.
// All fields derive from the same fetched document.
type Analysis struct {
	URL         string
	ContentType string
	Bytes       int

	// Text is the normalized visible text of the page.
	Text string

	// Table holds the filtered token counts.
	Table *FrequencyTable

	// Sections holds token counts for contiguous parts of the document.
	Sections []*FrequencyTable
}

// Top returns the top DefaultTopN terms of the full table.
func (a *Analysis) Top() []Term {
	return a.Table.TopN(DefaultTopN)
}

// Filtered returns the table restricted to counts of at least threshold.
func (a *Analysis) Filtered(threshold int) *FrequencyTable {
	return a.Table.FilterByMin(threshold)
}

// ChartData returns chart input for terms, carrying the global maximum and
// the section counts of this analysis.
func (a *Analysis) ChartData(title string, terms []Term) ChartData {
	return ChartData{
		Title:    title,
		Terms:    terms,
		MaxCount: a.Table.MaxCount(),
		Sections: a.Sections,
	}
}

// Analyzer runs the full fetch, extract, segment and count pipeline.
type Analyzer interface {
	// Analyze returns the analysis for url. No partial result is returned
	// on error. Returns EINVALID for a blank URL.
	Analyze(ctx context.Context, url string) (*Analysis, error)
}
