package extract

import (
	"regexp"
	"strings"

	"github.com/Cortezjohannes/scorch-ai-sub008/internal/records"
)

var (
	shotMarkerRE     = regexp.MustCompile(`(?i)^(?:shot|panel|frame)\s*#?\d+\s*[:.\-]?\s*(.*)$`)
	numberedMarkerRE = regexp.MustCompile(`^\d+[.)]\s+(.*)$`)

	// What a bold shot label looks like after the normalizer strips the
	// emphasis markers: a short standalone label line ending in a colon.
	labelMarkerRE = regexp.MustCompile(`^.{1,60}:$`)
)

// ExtractStoryboard produces shots numbered by extraction order starting
// at 1. Tier 2 tries three marker families in order (explicit shot or
// numbered markers, then camera-size keywords, then label lines) and
// the first family with any match wins outright.
func (e *Engine) ExtractStoryboard(raw string) []records.StoryboardShot {
	text, sig, ok := prepare(raw)
	if !ok {
		return nil
	}

	if sig.HasStructuredPayload {
		if shots, ok := storyboardFromPayload(text); ok {
			return shots
		}
	}

	lines := strings.Split(text, "\n")

	markerFamilies := []func(string) (string, bool){
		explicitShotMarker,
		cameraKeywordMarker,
		labelMarker,
	}
	for _, isMarker := range markerFamilies {
		if shots := splitByMarkers(lines, isMarker); len(shots) > 0 {
			return shots
		}
	}

	// No marker family matched: each fallback chunk becomes one shot.
	var shots []records.StoryboardShot
	for _, chunk := range fallbackChunks(text) {
		shot := records.NewStoryboardShot(len(shots)+1, chunk)
		applyShotType(&shot)
		shots = append(shots, shot)
	}
	return shots
}

// explicitShotMarker matches "Shot 3:", "PANEL #2 -", "4. ..." lines.
// The remainder of the marker line seeds the description, so an explicit
// source number survives as a hint in the text without becoming the
// canonical index.
func explicitShotMarker(line string) (string, bool) {
	if m := shotMarkerRE.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := numberedMarkerRE.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

// cameraKeywordMarker matches lines that open with an uppercase
// camera-size keyword ("WIDE SHOT - the street empties"). The keyword
// must end at a word boundary, so "WIDEN THE SEARCH" does not open a
// shot.
func cameraKeywordMarker(line string) (string, bool) {
	for _, entry := range shotTypeVocab {
		if !strings.HasPrefix(line, entry.keyword) {
			continue
		}
		if rest := line[len(entry.keyword):]; rest != "" && isWordRune(rune(rest[0])) {
			continue
		}
		return line, true
	}
	return "", false
}

// labelMarker matches short label lines ending in a colon.
func labelMarker(line string) (string, bool) {
	if labelMarkerRE.MatchString(line) {
		return strings.TrimSpace(strings.TrimSuffix(line, ":")), true
	}
	return "", false
}

// splitByMarkers walks the lines once, opening a new shot at each marker
// and folding the lines between markers into the open shot's
// description. Returns nil when no line matches the marker family.
func splitByMarkers(lines []string, isMarker func(string) (string, bool)) []records.StoryboardShot {
	var shots []records.StoryboardShot
	var desc []string

	flush := func() {
		if len(shots) == 0 {
			return
		}
		text := strings.TrimSpace(strings.Join(desc, " "))
		if text != "" {
			shots[len(shots)-1].Description = text
		}
		applyShotType(&shots[len(shots)-1])
		desc = desc[:0]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if seed, ok := isMarker(line); ok {
			flush()
			shots = append(shots, records.NewStoryboardShot(len(shots)+1, ""))
			if seed != "" {
				desc = append(desc, seed)
			}
			continue
		}
		if len(shots) > 0 {
			desc = append(desc, line)
		}
	}
	flush()

	// Drop trailing shots whose description stayed empty (a marker with
	// nothing after it).
	out := shots[:0]
	for _, s := range shots {
		if strings.TrimSpace(s.Description) != "" {
			s.Number = len(out) + 1
			out = append(out, s)
		}
	}
	return out
}

// applyShotType upgrades the default shot type when the description
// contains an uppercase camera-size keyword.
func applyShotType(s *records.StoryboardShot) {
	for _, entry := range shotTypeVocab {
		if strings.Contains(s.Description, entry.keyword) {
			s.ShotType = entry.shotType
			return
		}
	}
}
