package wordfreq_test

import (
	"testing"

	"github.com/fwojciec/wordfreq"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: " \n\t \n  ", want: ""},
		{name: "trims lines", input: "  hello world  \n  next ", want: "hello world\nnext"},
		{name: "splits on double spaces", input: "one  two   three", want: "one\ntwo\nthree"},
		{name: "drops empty lines", input: "a\n\n\nb", want: "a\nb"},
		{name: "handles carriage returns", input: "a\r\nb\rc", want: "a\nb\nc"},
		{name: "keeps single spaces", input: "hello hello world", want: "hello hello world"},
		{name: "keeps cjk text", input: "  你好 世界  ", want: "你好 世界"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, wordfreq.NormalizeText(tt.input))
		})
	}
}

func TestNormalizeText_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"plain",
		"  leading and trailing  ",
		"a  b    c\n\n d \t e \r\n f",
		"one   two three\n\n\n    four     five",
		"混合 text  与 中文\n  more",
	}

	for _, in := range inputs {
		once := wordfreq.NormalizeText(in)
		assert.Equal(t, once, wordfreq.NormalizeText(once), "input %q", in)
	}
}
