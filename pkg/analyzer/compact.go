package analyzer

import (
	"strings"
	"unicode/utf8"
)

// Context compaction bounds transcript size before a downstream model call.
// It is extractive and deterministic: given the same text and limit it always
// produces the same output, and compacting an already-compacted text is a
// no-op since the result fits the budget by construction.

const elisionMarker = "\n[... transcript trimmed ...]\n"

// Budget split between the opening and closing of the transcript. The opening
// usually carries the candidate's self-introduction and the closing their
// wrap-up, both high signal for coaching.
const headShare = 0.7

// EstimateTokens approximates the token count as ceil(len/4). Intentionally
// conservative for English prose.
func EstimateTokens(text string) int {
	return (len(text) + 3) / 4
}

// Compact returns text unchanged when it fits maxTokens, otherwise a shorter
// representative text built from whole sentences at the head and tail with an
// elision marker between. The result always fits maxTokens.
func Compact(text string, maxTokens int) string {
	if maxTokens <= 0 {
		return ""
	}
	if EstimateTokens(text) <= maxTokens {
		return text
	}

	charBudget := maxTokens*4 - len(elisionMarker)
	if charBudget <= 0 {
		return ""
	}

	chunks := sentenceChunks(text)
	headBudget := int(float64(charBudget) * headShare)
	tailBudget := charBudget - headBudget

	headEnd := 0
	headLen := 0
	for headEnd < len(chunks) {
		need := len(chunks[headEnd])
		if headLen > 0 {
			need++ // joining space
		}
		if headLen+need > headBudget {
			break
		}
		headLen += need
		headEnd++
	}

	tailStart := len(chunks)
	tailLen := 0
	for tailStart > headEnd {
		need := len(chunks[tailStart-1])
		if tailLen > 0 {
			need++
		}
		if tailLen+need > tailBudget {
			break
		}
		tailLen += need
		tailStart--
	}

	// A single sentence larger than the whole budget: fall back to a hard cut,
	// backing off to a rune boundary so the cut never splits a multi-byte rune.
	if headEnd == 0 && tailStart == len(chunks) {
		cut := charBudget
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		return strings.TrimSpace(text[:cut])
	}

	head := strings.Join(chunks[:headEnd], " ")
	tail := strings.Join(chunks[tailStart:], " ")
	return head + elisionMarker + tail
}

// sentenceChunks splits text into trimmed sentences with their terminal
// punctuation attached.
func sentenceChunks(text string) []string {
	var chunks []string
	start := 0

	locs := sentenceEnd.FindAllStringIndex(text, -1)
	for _, loc := range locs {
		chunk := strings.TrimSpace(text[start:loc[1]])
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		start = loc[1]
	}

	if rest := strings.TrimSpace(text[start:]); rest != "" {
		chunks = append(chunks, rest)
	}

	return chunks
}
