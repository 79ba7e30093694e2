package content

import (
	"regexp"
	"strings"
	"unicode"
)

// Signature is the fixed feature set computed once per input. Extractors
// read it to pick a strategy; it is never mutated after Detect returns.
type Signature struct {
	HasStructuredPayload  bool `json:"has_structured_payload"`
	HasMarkdown           bool `json:"has_markdown"`
	HasNumberedItems      bool `json:"has_numbered_items"`
	HasBulletedItems      bool `json:"has_bulleted_items"`
	HasHeaders            bool `json:"has_headers"`
	HasScreenplayHeadings bool `json:"has_screenplay_headings"`
	HasCharacterNames     bool `json:"has_character_names"`
}

var (
	numberedItemRE   = regexp.MustCompile(`^\d+[.):]\s+\S`)
	bulletedItemRE   = regexp.MustCompile(`^[-*•]\s+\S`)
	markdownHeaderRE = regexp.MustCompile(`^#{1,6}\s+\S`)
	screenplayRE     = regexp.MustCompile(`(?i)^(?:INT\.|EXT\.|INT/EXT\.?|I/E\.?|EST\.)`)
)

// maxCharacterNameLen bounds what still counts as a character cue line.
// Real cues are short ("JOHN", "SARAH (30s)"); long ALL-CAPS lines are
// banners or shouted action.
const maxCharacterNameLen = 40

// Detect scans text once and returns its structure signature. Pure
// function, O(n) in line count.
func Detect(text string) Signature {
	var sig Signature
	if strings.TrimSpace(text) == "" {
		return sig
	}

	sig.HasStructuredPayload = strings.Contains(text, "{") && strings.Contains(text, "}")
	sig.HasMarkdown = strings.Contains(text, "**") || strings.Contains(text, "```")

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if numberedItemRE.MatchString(line) {
			sig.HasNumberedItems = true
		}
		if bulletedItemRE.MatchString(line) {
			sig.HasBulletedItems = true
		}
		if markdownHeaderRE.MatchString(line) {
			sig.HasMarkdown = true
			sig.HasHeaders = true
		}
		if IsCapsHeader(line) {
			sig.HasHeaders = true
		}
		if screenplayRE.MatchString(line) {
			sig.HasScreenplayHeadings = true
		}
		if LooksLikeCharacterName(line) {
			sig.HasCharacterNames = true
		}
	}
	return sig
}

// IsSceneHeading reports whether line begins with a screenplay scene
// marker (INT., EXT., INT/EXT, I/E, EST.).
func IsSceneHeading(line string) bool {
	return screenplayRE.MatchString(line)
}

// IsCapsHeader reports whether line is a short ALL-CAPS line ending in a
// colon ("WARDROBE:", "PROPS LIST:").
func IsCapsHeader(line string) bool {
	if !strings.HasSuffix(line, ":") || len(line) > 60 {
		return false
	}
	return isAllCaps(strings.TrimSuffix(line, ":"))
}

// LooksLikeCharacterName reports whether line resembles a screenplay
// character cue: short, ALL-CAPS, optionally with a parenthetical age or
// direction suffix, and free of sentence punctuation.
func LooksLikeCharacterName(line string) bool {
	if len(line) == 0 || len(line) > maxCharacterNameLen {
		return false
	}
	// Cues start with a letter; "## PROPS" and "1) WIDE" do not.
	if first := rune(line[0]); !unicode.IsUpper(first) {
		return false
	}
	if screenplayRE.MatchString(line) {
		return false
	}

	// Allow a trailing parenthetical: "SARAH (30s)", "JOHN (V.O.)".
	name := line
	if idx := strings.Index(name, "("); idx > 0 {
		rest := strings.TrimSpace(name[idx:])
		if !strings.HasSuffix(rest, ")") {
			return false
		}
		name = strings.TrimSpace(name[:idx])
	}
	if name == "" || strings.ContainsAny(name, ",:;!?\"") {
		return false
	}
	if len(strings.Fields(name)) > 4 {
		return false
	}
	return isAllCaps(name)
}

// isAllCaps reports whether s contains at least one letter and no
// lowercase letters.
func isAllCaps(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}
