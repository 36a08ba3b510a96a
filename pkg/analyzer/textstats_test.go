package analyzer_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/orator-dev/orator/pkg/analyzer"
)

func TestCountFillers(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{
			name:     "no fillers",
			text:     "I led the migration project for two years.",
			expected: 0,
		},
		{
			name:     "single word fillers",
			text:     "So, um, I was, uh, responsible for the rollout.",
			expected: 2,
		},
		{
			name:     "multi-word fillers counted as one",
			text:     "It was, you know, kind of a big sort of challenge.",
			expected: 3,
		},
		{
			name:     "case insensitive",
			text:     "Um... UM... um.",
			expected: 3,
		},
		{
			name:     "word boundaries respected",
			text:     "The unlikely column alignment worked.",
			expected: 0,
		},
		{
			name:     "empty text",
			text:     "",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.V(t, analyzer.CountFillers(tt.text)).Equal(tt.expected)
		})
	}
}

func TestSplitSentences(t *testing.T) {
	t.Run("terminal punctuation", func(t *testing.T) {
		sentences := analyzer.SplitSentences("First one. Second one! Third one?")
		gt.A(t, sentences).Length(3)
		gt.V(t, sentences[0]).Equal("First one")
	})

	t.Run("trailing text without punctuation counts", func(t *testing.T) {
		sentences := analyzer.SplitSentences("Finished thought. And a trailing fragment")
		gt.A(t, sentences).Length(2)
	})

	t.Run("repeated punctuation is one boundary", func(t *testing.T) {
		sentences := analyzer.SplitSentences("Really?! Yes.")
		gt.A(t, sentences).Length(2)
	})

	t.Run("empty text", func(t *testing.T) {
		gt.A(t, analyzer.SplitSentences("")).Length(0)
	})
}

func TestCountWords(t *testing.T) {
	gt.V(t, analyzer.CountWords("")).Equal(0)
	gt.V(t, analyzer.CountWords("one")).Equal(1)
	gt.V(t, analyzer.CountWords("  spread   out   words  ")).Equal(3)
}

func TestVocabDiversity(t *testing.T) {
	t.Run("all unique", func(t *testing.T) {
		gt.V(t, analyzer.VocabDiversity("alpha beta gamma")).Equal(1.0)
	})

	t.Run("repetition lowers diversity", func(t *testing.T) {
		gt.V(t, analyzer.VocabDiversity("go go go")).Equal(1.0 / 3.0)
	})

	t.Run("case folded and punctuation stripped", func(t *testing.T) {
		gt.V(t, analyzer.VocabDiversity("Go, go. GO!")).Equal(1.0 / 3.0)
	})

	t.Run("empty text", func(t *testing.T) {
		gt.V(t, analyzer.VocabDiversity("")).Equal(0.0)
	})
}
