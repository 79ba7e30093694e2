package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Tier 3: degenerate fallback. When the pattern tier finds nothing, the
// text is split progressively looser (paragraph breaks, then sentence
// breaks, then dash-delimited segments) until at least one chunk
// survives the minimum-length filter. When nothing survives, the whole
// cleaned text becomes a single chunk, so non-empty input never produces
// an empty record list.

// minChunkLen filters out fragments too short to be a meaningful record
// on their own ("OK.", "- yes").
const minChunkLen = 12

var (
	sentenceBreakRE = regexp.MustCompile(`[.!?]+\s+`)
	dashBreakRE     = regexp.MustCompile(`\s+[-–—]\s+`)
)

// fallbackChunks returns the surviving chunks for text, or a single
// whole-text chunk. Empty input returns nil.
func fallbackChunks(text string) []string {
	clean := strings.TrimSpace(text)
	if clean == "" {
		return nil
	}

	splitters := []func(string) []string{
		splitParagraphs,
		splitSentences,
		splitDashes,
	}
	for _, split := range splitters {
		if chunks := keepSubstantial(split(clean)); len(chunks) > 0 {
			return chunks
		}
	}
	return []string{clean}
}

func splitParagraphs(text string) []string {
	return strings.Split(text, "\n\n")
}

func splitSentences(text string) []string {
	return sentenceBreakRE.Split(text, -1)
}

func splitDashes(text string) []string {
	return dashBreakRE.Split(text, -1)
}

func keepSubstantial(chunks []string) []string {
	out := make([]string, 0, len(chunks))
	for _, c := range chunks {
		c = strings.TrimSpace(c)
		if len(c) >= minChunkLen {
			out = append(out, c)
		}
	}
	return out
}

// truncateAtWordBoundary shortens s to at most maxLen bytes, cutting at
// the last space before the limit, or at a rune boundary when the text
// has no space to cut at. Used to derive record names from fallback
// chunks.
func truncateAtWordBoundary(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := strings.LastIndex(s[:maxLen], " ")
	if cut <= 0 {
		cut = maxLen
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
	}
	return strings.TrimSpace(s[:cut])
}

// firstLine returns the first non-blank line of a chunk.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return strings.TrimSpace(s)
}
