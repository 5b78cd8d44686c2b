package wordfreq_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/wordfreq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable(terms ...wordfreq.Term) *wordfreq.FrequencyTable {
	t := wordfreq.NewFrequencyTable()
	for _, term := range terms {
		t.Add(term.Token, term.Count)
	}
	return t
}

func TestFrequencyTable_TopN(t *testing.T) {
	t.Parallel()

	t.Run("orders by descending count", func(t *testing.T) {
		t.Parallel()

		table := newTable(
			wordfreq.Term{Token: "low", Count: 1},
			wordfreq.Term{Token: "high", Count: 5},
			wordfreq.Term{Token: "mid", Count: 3},
		)

		assert.Equal(t, []wordfreq.Term{
			{Token: "high", Count: 5},
			{Token: "mid", Count: 3},
			{Token: "low", Count: 1},
		}, table.TopN(10))
	})

	t.Run("breaks ties by first occurrence", func(t *testing.T) {
		t.Parallel()

		table := wordfreq.Count([]string{"bb", "aa", "cc", "aa", "bb", "cc"}, nil)

		top := table.TopN(3)
		require.Len(t, top, 3)
		assert.Equal(t, "bb", top[0].Token)
		assert.Equal(t, "aa", top[1].Token)
		assert.Equal(t, "cc", top[2].Token)
	})

	t.Run("returns at most n entries", func(t *testing.T) {
		t.Parallel()

		table := wordfreq.NewFrequencyTable()
		for i := 0; i < 30; i++ {
			table.Add(fmt.Sprintf("w%02d", i), i+1)
		}

		top := table.TopN(wordfreq.DefaultTopN)
		assert.Len(t, top, 20)
		assert.Equal(t, "w29", top[0].Token)
	})

	t.Run("sum of top counts never exceeds total", func(t *testing.T) {
		t.Parallel()

		table := wordfreq.Count([]string{"aa", "bb", "aa", "cc", "dd", "aa", "bb"}, nil)
		for n := 0; n <= table.Len()+2; n++ {
			top := table.TopN(n)
			var sum int
			for _, term := range top {
				sum += term.Count
			}
			assert.LessOrEqual(t, sum, table.Total())
			assert.LessOrEqual(t, len(top), min(n, table.Len()))
		}
	})

	t.Run("empty table", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, wordfreq.NewFrequencyTable().TopN(20))
	})

	t.Run("negative n", func(t *testing.T) {
		t.Parallel()

		table := newTable(wordfreq.Term{Token: "aa", Count: 1})
		assert.Empty(t, table.TopN(-1))
	})

	t.Run("does not mutate table order", func(t *testing.T) {
		t.Parallel()

		table := newTable(
			wordfreq.Term{Token: "aa", Count: 1},
			wordfreq.Term{Token: "bb", Count: 2},
		)
		_ = table.TopN(2)

		assert.Equal(t, "aa", table.Terms()[0].Token)
	})
}

func TestFrequencyTable_FilterByMin(t *testing.T) {
	t.Parallel()

	table := newTable(
		wordfreq.Term{Token: "aa", Count: 1},
		wordfreq.Term{Token: "bb", Count: 4},
		wordfreq.Term{Token: "cc", Count: 2},
		wordfreq.Term{Token: "dd", Count: 4},
	)

	t.Run("keeps counts at or above threshold", func(t *testing.T) {
		t.Parallel()

		got := table.FilterByMin(2)
		assert.Equal(t, []wordfreq.Term{
			{Token: "bb", Count: 4},
			{Token: "cc", Count: 2},
			{Token: "dd", Count: 4},
		}, got.Terms())
	})

	t.Run("threshold below minimum keeps everything", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, table.Terms(), table.FilterByMin(0).Terms())
		assert.Equal(t, table.Terms(), table.FilterByMin(1).Terms())
	})

	t.Run("is monotonically non-increasing", func(t *testing.T) {
		t.Parallel()

		prev := table.Len()
		for threshold := 1; threshold <= table.MaxCount()+1; threshold++ {
			n := table.FilterByMin(threshold).Len()
			assert.LessOrEqual(t, n, prev)
			prev = n
		}
		assert.Equal(t, 0, prev)
	})

	t.Run("filter then rank is deterministic", func(t *testing.T) {
		t.Parallel()

		first := table.FilterByMin(2).TopN(wordfreq.DefaultTopN)
		second := table.FilterByMin(2).TopN(wordfreq.DefaultTopN)
		assert.Equal(t, first, second)
	})

	t.Run("empty table", func(t *testing.T) {
		t.Parallel()

		got := wordfreq.NewFrequencyTable().FilterByMin(1)
		assert.Equal(t, 0, got.Len())
	})
}

func TestFrequencyTable_MaxCount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, wordfreq.NewFrequencyTable().MaxCount(), "empty table defaults to 1")
	assert.Equal(t, 7, newTable(
		wordfreq.Term{Token: "aa", Count: 3},
		wordfreq.Term{Token: "bb", Count: 7},
	).MaxCount())
}

func TestFrequencyTable_ClampThreshold(t *testing.T) {
	t.Parallel()

	table := newTable(wordfreq.Term{Token: "aa", Count: 5})

	assert.Equal(t, 1, table.ClampThreshold(-3))
	assert.Equal(t, 1, table.ClampThreshold(0))
	assert.Equal(t, 3, table.ClampThreshold(3))
	assert.Equal(t, 5, table.ClampThreshold(9))
	assert.Equal(t, 1, wordfreq.NewFrequencyTable().ClampThreshold(4))
}

func TestFrequencyTable_NilSafe(t *testing.T) {
	t.Parallel()

	var table *wordfreq.FrequencyTable

	assert.Equal(t, 0, table.Len())
	assert.Equal(t, 0, table.Count("aa"))
	assert.Equal(t, 0, table.Total())
	assert.Empty(t, table.TopN(20))
	assert.Equal(t, 1, table.MaxCount())
}

func TestFrequencyTable_ZeroValue(t *testing.T) {
	t.Parallel()

	var table wordfreq.FrequencyTable
	table.Add("alpha", 2)
	table.Add("beta", 1)
	table.Add("alpha", 1)

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, 3, table.Count("alpha"))
	assert.Equal(t, []wordfreq.Term{
		{Token: "alpha", Count: 3},
		{Token: "beta", Count: 1},
	}, table.Terms())
}
