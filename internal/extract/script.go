package extract

import (
	"regexp"
	"strings"

	"github.com/Cortezjohannes/scorch-ai-sub008/internal/content"
	"github.com/Cortezjohannes/scorch-ai-sub008/internal/records"
)

var (
	centerTagRE = regexp.MustCompile(`(?i)</?center>`)

	// Non-content markers: rule/banner lines and bracketed engine
	// guidance like "[SCENE START]" or "[PAGE 3]".
	ruleLineRE      = regexp.MustCompile(`^[-=_*#~]{3,}$`)
	bracketedLineRE = regexp.MustCompile(`^\[[^\]]*\]$`)
)

// ExtractScript classifies screenplay text into an ordered element
// sequence. Classification is per line with exclusive precedence: scene
// heading, then transition, then character cue, then parenthetical, then
// dialogue-or-action resolved against the previous element.
func (e *Engine) ExtractScript(raw string) []records.ScriptElement {
	text, sig, ok := prepare(raw)
	if !ok {
		return nil
	}

	if sig.HasStructuredPayload {
		if elems, ok := scriptFromPayload(text); ok {
			return elems
		}
	}

	elems := e.scriptPatternTier(text)
	if len(elems) > 0 {
		return elems
	}

	// Degenerate fallback: wrap each surviving chunk as action.
	var out []records.ScriptElement
	for _, chunk := range fallbackChunks(text) {
		out = append(out, records.ScriptElement{
			Type: records.Action,
			Text: chunk,
		})
	}
	return out
}

func (e *Engine) scriptPatternTier(text string) []records.ScriptElement {
	var elems []records.ScriptElement

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(centerTagRE.ReplaceAllString(line, ""))
		if line == "" || isNonContentLine(line) {
			continue
		}

		switch {
		case content.IsSceneHeading(line):
			elems = append(elems, records.ScriptElement{Type: records.SceneHeading, Text: line})

		case isTransition(line):
			elems = append(elems, records.ScriptElement{Type: records.Transition, Text: line})

		case content.LooksLikeCharacterName(line):
			elems = append(elems, records.ScriptElement{Type: records.Character, Text: line})

		case isParenthetical(line):
			elems = append(elems, records.ScriptElement{Type: records.Parenthetical, Text: line})

		default:
			if speakerActive(elems) {
				elems = append(elems, records.ScriptElement{
					Type:      records.Dialogue,
					Text:      line,
					Character: lastCharacterName(elems),
				})
			} else {
				elems = append(elems, records.ScriptElement{Type: records.Action, Text: line})
			}
		}
	}
	return elems
}

func isNonContentLine(line string) bool {
	return ruleLineRE.MatchString(line) || bracketedLineRE.MatchString(line)
}

// isTransition matches the fixed transition vocabulary followed by a
// colon ("CUT TO:", "FADE OUT:").
func isTransition(line string) bool {
	if !strings.HasSuffix(line, ":") {
		return false
	}
	stem := strings.TrimSpace(strings.TrimSuffix(strings.ToUpper(line), ":"))
	for _, t := range transitionVocab {
		if stem == t {
			return true
		}
	}
	return false
}

func isParenthetical(line string) bool {
	return len(line) > 2 && strings.HasPrefix(line, "(") && strings.HasSuffix(line, ")")
}

// speakerActive reports whether the previous element keeps a dialogue
// block open: character, parenthetical, and dialogue all do.
func speakerActive(elems []records.ScriptElement) bool {
	if len(elems) == 0 {
		return false
	}
	switch elems[len(elems)-1].Type {
	case records.Character, records.Parenthetical, records.Dialogue:
		return true
	}
	return false
}

// lastCharacterName scans the produced elements backwards for the
// nearest character cue and returns its name with any parenthetical
// suffix removed. An explicit fold over output-so-far keeps the
// extractor free of ambient speaker state.
func lastCharacterName(elems []records.ScriptElement) string {
	for i := len(elems) - 1; i >= 0; i-- {
		if elems[i].Type == records.Character {
			return cueName(elems[i].Text)
		}
	}
	return ""
}

// cueName strips the parenthetical suffix from a character cue:
// "SARAH (30s)" becomes "SARAH".
func cueName(cue string) string {
	if idx := strings.Index(cue, "("); idx > 0 {
		cue = cue[:idx]
	}
	return strings.TrimSpace(cue)
}
