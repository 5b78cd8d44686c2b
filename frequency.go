package wordfreq

import "sort"

// DefaultTopN is the number of ranked terms the UI displays.
const DefaultTopN = 20

// Term is a token with its occurrence count.
type Term struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// FrequencyTable maps tokens to occurrence counts. Tokens keep the order in
// which they were first added, which breaks ties when ranking.
type FrequencyTable struct {
	terms []Term
	index map[string]int
}

// NewFrequencyTable returns an empty table.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{index: make(map[string]int)}
}

// Add increases the count of token by n. The zero value is ready to use.
func (t *FrequencyTable) Add(token string, n int) {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	if i, ok := t.index[token]; ok {
		t.terms[i].Count += n
		return
	}
	t.index[token] = len(t.terms)
	t.terms = append(t.terms, Term{Token: token, Count: n})
}

// Len returns the number of distinct tokens.
func (t *FrequencyTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.terms)
}

// Count returns the count for token, or zero.
func (t *FrequencyTable) Count(token string) int {
	if t == nil {
		return 0
	}
	if i, ok := t.index[token]; ok {
		return t.terms[i].Count
	}
	return 0
}

// Total returns the sum of all counts.
func (t *FrequencyTable) Total() int {
	var sum int
	for _, term := range t.Terms() {
		sum += term.Count
	}
	return sum
}

// Terms returns a copy of all entries in first-encountered order.
func (t *FrequencyTable) Terms() []Term {
	if t == nil {
		return nil
	}
	out := make([]Term, len(t.terms))
	copy(out, t.terms)
	return out
}

// MaxCount returns the highest count in the table, or 1 when it is empty.
func (t *FrequencyTable) MaxCount() int {
	highest := 1
	for _, term := range t.Terms() {
		if term.Count > highest {
			highest = term.Count
		}
	}
	return highest
}

// ClampThreshold limits threshold to the slider range [1, MaxCount()].
func (t *FrequencyTable) ClampThreshold(threshold int) int {
	if threshold < 1 {
		return 1
	}
	if highest := t.MaxCount(); threshold > highest {
		return highest
	}
	return threshold
}

// TopN returns the n highest-count terms in descending order. Equal counts
// keep first-encountered order. At most min(n, Len()) terms are returned.
func (t *FrequencyTable) TopN(n int) []Term {
	terms := t.Terms()
	sort.SliceStable(terms, func(i, j int) bool {
		return terms[i].Count > terms[j].Count
	})
	if n < 0 {
		n = 0
	}
	if len(terms) > n {
		terms = terms[:n]
	}
	return terms
}

// FilterByMin returns a new table with the entries whose count is at least
// threshold. Entry order is preserved.
func (t *FrequencyTable) FilterByMin(threshold int) *FrequencyTable {
	out := NewFrequencyTable()
	for _, term := range t.Terms() {
		if term.Count >= threshold {
			out.Add(term.Token, term.Count)
		}
	}
	return out
}
