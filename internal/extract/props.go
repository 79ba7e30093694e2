package extract

import (
	"regexp"
	"strings"

	"github.com/Cortezjohannes/scorch-ai-sub008/internal/content"
	"github.com/Cortezjohannes/scorch-ai-sub008/internal/records"
)

// propsSection is the three-valued section state driven by header lines.
type propsSection int

const (
	sectionNone propsSection = iota
	sectionProps
	sectionWardrobe
	sectionCharacter
)

var (
	itemLineRE    = regexp.MustCompile(`^(?:[-*•]|\d+[.)])\s+(.+)$`)
	headerStripRE = regexp.MustCompile(`^#{1,6}\s+|:$`)
)

// ExtractProps walks the text with a section state machine ({props,
// wardrobe, character}) plus a current-character string, classifying
// each bulleted or numbered line into a Prop or a WardrobeItem.
//
// The prop/wardrobe precedence is deliberately order-dependent and
// resolved by section state before content keywords: a line matching
// both a prop keyword and a clothing keyword lands wherever the active
// section says. The upstream precedence is unspecified, so the observed
// order is pinned here and in the tests rather than redesigned.
func (e *Engine) ExtractProps(raw string) ([]records.Prop, []records.WardrobeItem) {
	text, sig, ok := prepare(raw)
	if !ok {
		return nil, nil
	}

	if sig.HasStructuredPayload {
		if props, wardrobe, ok := propsFromPayload(text); ok {
			return props, wardrobe
		}
	}

	props, wardrobe := e.propsPatternTier(text)
	if len(props) > 0 || len(wardrobe) > 0 {
		return props, wardrobe
	}

	// Degenerate fallback: every surviving chunk becomes a default
	// prop. Without section or keyword evidence nothing marks a chunk
	// as wardrobe.
	for _, chunk := range fallbackChunks(text) {
		p := records.NewProp(truncateAtWordBoundary(firstLine(chunk), 48))
		p.Description = chunk
		props = append(props, p)
	}
	return props, wardrobe
}

func (e *Engine) propsPatternTier(text string) ([]records.Prop, []records.WardrobeItem) {
	var props []records.Prop
	var wardrobe []records.WardrobeItem

	section := sectionNone
	character := ""

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if sec, name, ok := sectionHeader(line); ok {
			section = sec
			if sec == sectionCharacter && name != "" {
				character = name
			}
			continue
		}

		m := itemLineRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		item := strings.TrimSpace(m[1])
		if item == "" {
			continue
		}

		switch {
		case section == sectionProps:
			props = append(props, e.buildProp(item))

		case section == sectionWardrobe || section == sectionCharacter ||
			e.matchesClothing(item):
			wardrobe = append(wardrobe, e.buildWardrobeItem(item, character))

		case matchKeyword(item, wardrobeHintKeywords) != "":
			// Secondary wardrobe check: "costume", "wears", "outfit".
			wardrobe = append(wardrobe, e.buildWardrobeItem(item, character))

		default:
			props = append(props, e.buildProp(item))
		}
	}

	return props, wardrobe
}

// sectionHeader recognizes section-driving lines: markdown or ALL-CAPS
// headers naming props or wardrobe, and character cue lines that scope
// the wardrobe items after them.
func sectionHeader(line string) (propsSection, string, bool) {
	isHeader := strings.HasPrefix(line, "#") || content.IsCapsHeader(line)
	if isHeader {
		clean := strings.ToLower(headerStripRE.ReplaceAllString(line, ""))
		switch {
		case strings.Contains(clean, "prop") || strings.Contains(clean, "set dressing"):
			return sectionProps, "", true
		case strings.Contains(clean, "wardrobe") || strings.Contains(clean, "costume"):
			return sectionWardrobe, "", true
		case strings.Contains(clean, "character"):
			// "CHARACTER: JASON" style headers carry the name inline.
			name := strings.TrimSpace(fieldValue(line))
			if strings.EqualFold(name, line) || strings.EqualFold(name, "character") {
				name = ""
			}
			return sectionCharacter, properName(name), true
		}
		return sectionNone, "", true
	}

	if content.LooksLikeCharacterName(line) {
		return sectionCharacter, properName(cueName(line)), true
	}

	return sectionNone, "", false
}

// matchesClothing reports whether the item text names a piece of
// clothing from the engine's table.
func (e *Engine) matchesClothing(item string) bool {
	return matchKeyword(item, e.clothing) != ""
}

// buildProp derives every prop field from the item text with the shared
// sub-extractors. Nothing is positional: "3x folding chair, scenes 2-4,
// rental" resolves quantity, scenes, and procurement independently.
func (e *Engine) buildProp(item string) records.Prop {
	p := records.NewProp(itemName(item))
	p.Description = item
	p.Quantity = parseQuantity(item)
	p.Scenes = parseSceneNumbers(item)

	lower := strings.ToLower(item)
	for _, entry := range propCategoryVocab {
		if containsWord(lower, entry.keyword) {
			p.Category = entry.category
			break
		}
	}
	if matchKeyword(item, heroKeywords) != "" {
		p.Importance = records.Hero
	} else if matchKeyword(item, supportingKeywords) != "" {
		p.Importance = records.Supporting
	}
	for _, entry := range procurementVocab {
		if containsWord(lower, entry.keyword) {
			p.Procurement.Source = entry.source
			break
		}
	}
	p.Procurement.EstimatedCost = parseCost(item)
	return p
}

// buildWardrobeItem derives wardrobe fields from the item text. The
// character comes from a "for NAME" clause when present, then from the
// active character section, then defaults to Unknown.
func (e *Engine) buildWardrobeItem(item, sectionCharacterName string) records.WardrobeItem {
	character := attributedCharacter(item)
	if character == "" {
		character = sectionCharacterName
	}

	w := records.NewWardrobeItem(character, itemName(item))
	w.Scenes = parseSceneNumbers(item)

	if pieces := matchAllKeywords(item, e.clothing); len(pieces) > 0 {
		w.Pieces = pieces
	}
	if color := matchKeyword(item, e.colors); color != "" {
		w.Color = color
	}
	if style := matchKeyword(item, e.styles); style != "" {
		w.Style = style
	}
	return w
}

// itemName trims an item's text down to a name: the segment before the
// first comma, minus attribution and count noise.
func itemName(item string) string {
	name := item
	if idx := strings.Index(name, ","); idx > 0 {
		name = name[:idx]
	}
	if m := forNameRE.FindStringIndex(name); m != nil {
		name = name[:m[0]]
	}
	name = quantityParenRE.ReplaceAllString(name, "")
	name = strings.TrimSpace(strings.Trim(name, " -–:."))
	if name == "" {
		name = strings.TrimSpace(item)
	}
	return name
}

// properName normalizes an ALL-CAPS cue to a display name: "JASON"
// becomes "Jason".
func properName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	words := strings.Fields(strings.ToLower(name))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
