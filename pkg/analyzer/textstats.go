package analyzer

import (
	"regexp"
	"strings"
)

// Verbal fillers counted in both voice and language metrics. Multi-word
// fillers must precede their single-word prefixes so the regexp alternation
// matches them as a unit.
var fillerPattern = regexp.MustCompile(`(?i)\b(you know|sort of|kind of|uh|um|like|actually|basically)\b`)

// CountFillers returns the number of verbal filler occurrences in the text.
func CountFillers(text string) int {
	return len(fillerPattern.FindAllString(text, -1))
}

var sentenceEnd = regexp.MustCompile(`[.!?]+`)

// SplitSentences splits text on terminal punctuation, dropping empty segments.
// A trailing segment without punctuation counts as a sentence.
func SplitSentences(text string) []string {
	parts := sentenceEnd.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// CountWords returns the number of whitespace-separated words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// VocabDiversity returns unique words over total words, case-folded and
// stripped of surrounding punctuation. Zero for empty text.
func VocabDiversity(text string) float64 {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return 0
	}

	unique := make(map[string]struct{}, len(words))
	total := 0
	for _, w := range words {
		w = strings.Trim(w, `.,!?;:"'()-`)
		if w == "" {
			continue
		}
		unique[w] = struct{}{}
		total++
	}

	if total == 0 {
		return 0
	}
	return float64(len(unique)) / float64(total)
}
