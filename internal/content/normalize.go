// Package content holds the domain-blind text stages of the pipeline:
// normalization of raw language-model output and structure detection over
// the normalized text. Both are pure text-in/text-out transforms with no
// knowledge of the production domains.
package content

import (
	"regexp"
	"strings"
)

// preambleRE matches conversational lead-ins a language model puts before
// the actual content ("Certainly! Here is the script you asked for:").
// The fragment runs from the start of the text up to the first colon and
// must not cross a line break.
var preambleRE = regexp.MustCompile(
	`(?i)^\s*(?:certainly|sure|of course|absolutely|great|okay|ok)?[,!.\s]*` +
		`(?:here(?:'s| is| are)|below (?:is|are)|i(?:'ll| will) (?:create|write|provide|generate|draft)|` +
		`i(?:'ve| have) (?:created|written|prepared|drafted)|this is|the following is)` +
		`[^:\n]{0,160}:\s*`,
)

// Emphasis markers are removed pairwise so the enclosed text survives.
var (
	boldStarRE       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	boldUnderscoreRE = regexp.MustCompile(`__([^_]+)__`)
	italicStarRE     = regexp.MustCompile(`\*([^*\n]+)\*`)
	italicUnderRE    = regexp.MustCompile(`\b_([^_\n]+)_\b`)
	underlineTagRE   = regexp.MustCompile(`(?i)</?u>`)
	blankRunRE       = regexp.MustCompile(`\n{3,}`)
)

// Normalize strips language-model conversational artifacts, code-fence
// delimiters, and markdown emphasis from raw text, collapses runs of three
// or more newlines to two, and trims the result. It is idempotent:
// normalizing already-normalized text returns it unchanged. Empty input
// yields empty output; there are no error conditions.
func Normalize(text string) string {
	// Stripping emphasis can expose a fresh preamble ("**Here is the
	// list:**" becomes "Here is the list:"), and stacked preambles fall
	// one per pass, so the pass runs to a fixpoint. Each pass only
	// removes characters, so the loop terminates.
	for {
		next := normalizePass(text)
		if next == text {
			return next
		}
		text = next
	}
}

func normalizePass(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	text = preambleRE.ReplaceAllString(text, "")

	text = dropFenceDelimiters(text)

	text = boldStarRE.ReplaceAllString(text, "$1")
	text = boldUnderscoreRE.ReplaceAllString(text, "$1")
	text = italicStarRE.ReplaceAllString(text, "$1")
	text = italicUnderRE.ReplaceAllString(text, "$1")
	text = underlineTagRE.ReplaceAllString(text, "")

	text = blankRunRE.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

// dropFenceDelimiters removes ``` and ~~~ fence lines while keeping the
// fenced content itself. A language model often wraps the whole answer in
// one fence; the payload inside is what we want.
func dropFenceDelimiters(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
