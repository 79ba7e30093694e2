package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Shared field sub-extractors. All are stateless, operate on a single
// line or matched segment, and return zero values rather than errors when
// nothing matches.

var (
	sceneClauseRE = regexp.MustCompile(`(?i)scenes?\s*[:#]?\s*([0-9]+(?:\s*(?:[-–—]|,|&|and|to)\s*[0-9]+)*)`)
	sceneRangeRE  = regexp.MustCompile(`([0-9]+)\s*(?:[-–—]|to)\s*([0-9]+)`)
	sceneNumberRE = regexp.MustCompile(`[0-9]+`)

	quantityLabelRE   = regexp.MustCompile(`(?i)\b(?:qty|quantity|count)\s*[:=]?\s*([0-9]+)`)
	quantityTimesRE   = regexp.MustCompile(`(?i)\b([0-9]+)\s*x\b|\bx\s*([0-9]+)\b`)
	quantityParenRE   = regexp.MustCompile(`\(([0-9]+)\)`)
	quantityLeadingRE = regexp.MustCompile(`^([0-9]+)\s+\pL`)

	costAmountRE  = regexp.MustCompile(`\$\s*[0-9][0-9,]*(?:\.[0-9]{1,2})?\s*(?:[KkMm]\b)?(?:\s*(?:/|per)\s*(?:day|week|month|hour))?`)
	costKeywordRE = regexp.MustCompile(`(?i)\b(?:cost|budget|price|fee|rate)s?\b\s*[:=]?\s*(.+)`)

	parkingCountRE = regexp.MustCompile(`(?i)([0-9]+)\s*(?:parking\s*)?(?:spaces?|spots?|cars?)`)
	// Capitals are deliberate: "for Jason" names a character, "for the
	// party" does not.
	forNameRE = regexp.MustCompile(`\b[Ff]or\s+([A-Z][a-zA-Z'’-]+(?:\s+[A-Z][a-zA-Z'’-]+)?)`)
)

// maxSceneRangeSpan caps how many scene numbers a single range expands
// to, so a garbled "scenes 1-999999" cannot allocate unbounded memory.
const maxSceneRangeSpan = 200

// parseSceneNumbers pulls a deduplicated ascending scene-number set out
// of a line. It accepts ranges ("scenes 1-3"), lists ("scenes 2, 4 and
// 7"), and single references ("scene 12"). No scene clause yields nil.
func parseSceneNumbers(line string) []int {
	m := sceneClauseRE.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	clause := m[1]

	seen := make(map[int]bool)

	// Ranges expand first, then the range text is blanked so its
	// endpoints are not re-added as singletons.
	clause = sceneRangeRE.ReplaceAllStringFunc(clause, func(r string) string {
		rm := sceneRangeRE.FindStringSubmatch(r)
		lo, err1 := strconv.Atoi(rm[1])
		hi, err2 := strconv.Atoi(rm[2])
		if err1 != nil || err2 != nil || hi < lo {
			return ""
		}
		if hi-lo > maxSceneRangeSpan {
			hi = lo + maxSceneRangeSpan
		}
		for n := lo; n <= hi; n++ {
			seen[n] = true
		}
		return ""
	})

	for _, tok := range sceneNumberRE.FindAllString(clause, -1) {
		if n, err := strconv.Atoi(tok); err == nil {
			seen[n] = true
		}
	}

	if len(seen) == 0 {
		return nil
	}
	out := make([]int, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// parseQuantity extracts an item count from a line, defaulting to 1.
// Explicit labels win over multiplier forms, which win over a bare
// leading count ("3 folding chairs").
func parseQuantity(line string) int {
	if m := quantityLabelRE.FindStringSubmatch(line); m != nil {
		return positiveOrOne(m[1])
	}
	if m := quantityTimesRE.FindStringSubmatch(line); m != nil {
		tok := m[1]
		if tok == "" {
			tok = m[2]
		}
		return positiveOrOne(tok)
	}
	if m := quantityParenRE.FindStringSubmatch(line); m != nil {
		return positiveOrOne(m[1])
	}
	if m := quantityLeadingRE.FindStringSubmatch(line); m != nil {
		return positiveOrOne(m[1])
	}
	return 1
}

func positiveOrOne(tok string) int {
	n, err := strconv.Atoi(tok)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// parseCost pulls a monetary cost out of a line. A dollar amount is
// returned verbatim; otherwise the text after a cost keyword is used.
// Returns "" when the line says nothing about money.
func parseCost(line string) string {
	if m := costAmountRE.FindString(line); m != "" {
		return strings.Join(strings.Fields(m), " ")
	}
	if m := costKeywordRE.FindStringSubmatch(line); m != nil {
		val := strings.TrimSpace(strings.Trim(m[1], " .;"))
		if val != "" {
			return val
		}
	}
	return ""
}

// parseParkingSpaces extracts a parking-space count, or 0 when the line
// mentions parking without a number.
func parseParkingSpaces(line string) int {
	if m := parkingCountRE.FindStringSubmatch(line); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 0 {
			return n
		}
	}
	return 0
}

// matchKeyword returns the first vocabulary entry found in the line as a
// bounded word, or "".
func matchKeyword(line string, vocab []string) string {
	lower := strings.ToLower(line)
	for _, kw := range vocab {
		if containsWord(lower, kw) {
			return kw
		}
	}
	return ""
}

// matchAllKeywords returns every vocabulary entry present in the line,
// ordered by first appearance, deduplicated.
func matchAllKeywords(line string, vocab []string) []string {
	lower := strings.ToLower(line)
	type hit struct {
		word string
		pos  int
	}
	var hits []hit
	for _, kw := range vocab {
		if pos := indexWord(lower, kw); pos >= 0 {
			hits = append(hits, hit{kw, pos})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })
	out := make([]string, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.word)
	}
	return out
}

// containsWord reports whether word occurs in s (both lowercase) bounded
// by non-letter runes, tolerating a plural "s" suffix.
func containsWord(s, word string) bool {
	return indexWord(s, word) >= 0
}

// indexWord returns the byte offset of the first bounded occurrence of
// word in s, or -1.
func indexWord(s, word string) int {
	for start := 0; ; {
		idx := strings.Index(s[start:], word)
		if idx < 0 {
			return -1
		}
		idx += start
		end := idx + len(word)

		leftOK := idx == 0 || !isWordRune(rune(s[idx-1]))
		// Allow a plural "s" directly after the match.
		if end < len(s) && s[end] == 's' {
			end++
		}
		rightOK := end >= len(s) || !isWordRune(rune(s[end]))

		if leftOK && rightOK {
			return idx
		}
		start = idx + 1
	}
}

func isWordRune(r rune) bool {
	return r == '-' || r == '\'' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// attributedCharacter finds a "for NAME" clause and returns the name, or
// "" when the line names nobody.
func attributedCharacter(line string) string {
	if m := forNameRE.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// dedupeAscending merges scene-number sets, returning the union sorted
// ascending with duplicates removed.
func dedupeAscending(sets ...[]int) []int {
	seen := make(map[int]bool)
	for _, set := range sets {
		for _, n := range set {
			seen[n] = true
		}
	}
	if len(seen) == 0 {
		return nil
	}
	out := make([]int, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}
