package wordfreq

// DefaultSections is the number of document sections used by the heatmap.
const DefaultSections = 10

// SectionCounts splits an ordered token stream into at most k contiguous
// sections of near-equal size and counts tokens in each. Tokens are expected
// to be filtered already (see FilterTokens). An empty stream yields no
// sections.
func SectionCounts(tokens []string, k int) []*FrequencyTable {
	if len(tokens) == 0 || k <= 0 {
		return nil
	}
	if k > len(tokens) {
		k = len(tokens)
	}

	sections := make([]*FrequencyTable, k)
	for i := range sections {
		sections[i] = NewFrequencyTable()
	}
	for i, tok := range tokens {
		sections[i*k/len(tokens)].Add(tok, 1)
	}
	return sections
}
