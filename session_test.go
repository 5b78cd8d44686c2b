package wordfreq_test

import (
	"testing"

	"github.com/fwojciec/wordfreq"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestSession_Apply(t *testing.T) {
	t.Parallel()

	t.Run("new URL resets threshold and keeps kind", func(t *testing.T) {
		t.Parallel()

		s := &wordfreq.Session{ID: "s1", URL: "https://a.example", Kind: wordfreq.ChartRadar, MinFreq: 4}
		s.Apply(wordfreq.SessionUpdate{
			URL:     ptr("https://b.example"),
			MinFreq: ptr(6),
		})

		assert.Equal(t, "https://b.example", s.URL)
		assert.Equal(t, 1, s.MinFreq)
		assert.Equal(t, wordfreq.ChartRadar, s.Kind)
	})

	t.Run("same URL applies threshold and kind", func(t *testing.T) {
		t.Parallel()

		s := &wordfreq.Session{ID: "s1", URL: "https://a.example", MinFreq: 1}
		s.Apply(wordfreq.SessionUpdate{
			URL:     ptr("https://a.example"),
			Kind:    ptr(wordfreq.ChartPie),
			MinFreq: ptr(3),
		})

		assert.Equal(t, 3, s.MinFreq)
		assert.Equal(t, wordfreq.ChartPie, s.Kind)
	})

	t.Run("ignores invalid kind and low threshold", func(t *testing.T) {
		t.Parallel()

		s := wordfreq.NewSession("s1")
		s.Apply(wordfreq.SessionUpdate{
			Kind:    ptr(wordfreq.ChartKind(99)),
			MinFreq: ptr(-2),
		})

		assert.Equal(t, wordfreq.ChartWordCloud, s.Kind)
		assert.Equal(t, 1, s.MinFreq)
	})
}
