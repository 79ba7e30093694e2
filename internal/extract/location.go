package extract

import (
	"regexp"
	"strings"

	"github.com/Cortezjohannes/scorch-ai-sub008/internal/content"
	"github.com/Cortezjohannes/scorch-ai-sub008/internal/records"
)

var (
	locationMarkerRE = regexp.MustCompile(`(?i)^location\s*\d*\s*[:.\-]\s*(.+)$`)
	numberedNameRE   = regexp.MustCompile(`^\d+[.)]\s+(.+)$`)
	sceneMarkerSplit = regexp.MustCompile(`\s+[-–—]\s+`)
	typeValueRE      = regexp.MustCompile(`(?i)\btype\b`)
)

// maxHeadingLen bounds what still reads as a location heading rather
// than prose.
const maxHeadingLen = 60

// ExtractLocations runs the most stateful extractor: a single mutable
// accumulator travels down the line scan. A heading closes the open
// accumulator and opens a fresh one; every other line updates exactly
// one field of the open accumulator or joins its description.
func (e *Engine) ExtractLocations(raw string) []records.Location {
	text, sig, ok := prepare(raw)
	if !ok {
		return nil
	}

	if sig.HasStructuredPayload {
		if locs, ok := locationsFromPayload(text); ok {
			return locs
		}
	}

	locs := e.locationPatternTier(text)
	if len(locs) > 0 {
		return locs
	}

	// Zero headings detected: chunk the text and wrap each chunk as a
	// default location.
	for _, chunk := range fallbackChunks(text) {
		loc := records.NewLocation(truncateAtWordBoundary(firstLine(chunk), 48))
		loc.Description = chunk
		locs = append(locs, loc)
	}
	return locs
}

func (e *Engine) locationPatternTier(text string) []records.Location {
	var out []records.Location
	var open *records.Location

	// Two exit paths flush the accumulator: a new heading, and end of
	// input. Both push only when the name is non-trivial.
	flush := func() {
		if open != nil && strings.TrimSpace(open.Name) != "" {
			open.Scenes = dedupeAscending(open.Scenes)
			out = append(out, *open)
		}
		open = nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if loc, ok := locationHeading(line); ok {
			flush()
			open = &loc
			continue
		}
		if open == nil {
			// Prose before the first heading has no accumulator to
			// land in.
			continue
		}
		applyLocationLine(open, line)
	}
	flush()
	return out
}

// locationHeading recognizes the five heading shapes and builds a fresh
// accumulator from the one that matches.
func locationHeading(line string) (records.Location, bool) {
	if m := locationMarkerRE.FindStringSubmatch(line); m != nil {
		return records.NewLocation(strings.TrimSpace(m[1])), true
	}

	if content.IsSceneHeading(line) {
		return locationFromSceneHeading(line), true
	}

	if len(line) <= maxHeadingLen {
		if m := numberedNameRE.FindStringSubmatch(line); m != nil {
			return records.NewLocation(strings.TrimSpace(m[1])), true
		}
		if content.IsCapsHeader(line) {
			return records.NewLocation(strings.TrimSpace(strings.TrimSuffix(line, ":"))), true
		}
		if content.LooksLikeCharacterName(line) && len(line) > 3 {
			// Short ALL-CAPS line: a location banner like "WAREHOUSE".
			return records.NewLocation(line), true
		}
		if endsWithLocationNoun(line) {
			return records.NewLocation(line), true
		}
	}

	return records.Location{}, false
}

func endsWithLocationNoun(line string) bool {
	lower := strings.ToLower(strings.TrimRight(line, " .:"))
	for _, suffix := range locationSuffixVocab {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

// locationFromSceneHeading converts "INT. COFFEE SHOP - DAY" into a
// location named "COFFEE SHOP" of type interior with a "day" time tag.
func locationFromSceneHeading(line string) records.Location {
	upper := strings.ToUpper(line)

	locType := records.Interior
	switch {
	case strings.HasPrefix(upper, "INT/EXT"), strings.HasPrefix(upper, "I/E"):
		locType = records.InteriorExterior
	case strings.HasPrefix(upper, "EXT"):
		locType = records.Exterior
	}

	// Strip the marker prefix, then split off the time-of-day segment.
	name := line
	if idx := strings.IndexAny(name, ". "); idx >= 0 {
		name = name[idx+1:]
	}
	parts := sceneMarkerSplit.Split(name, -1)
	name = strings.TrimSpace(parts[0])

	loc := records.NewLocation(name)
	loc.Type = locType
	for _, part := range parts[1:] {
		if tag := matchKeyword(part, timeOfDayVocab); tag != "" {
			loc.TimesOfDay = appendUnique(loc.TimesOfDay, tag)
		}
	}
	return loc
}

// applyLocationLine classifies a non-heading line by keyword and updates
// exactly one field of the open accumulator. The check order matters:
// "Permit required" must hit the permit branch, not the requirements
// branch. Unclassified lines join the description.
func applyLocationLine(loc *records.Location, line string) {
	lower := strings.ToLower(line)

	switch {
	case typeValueRE.MatchString(line) && mentionsLocationType(lower):
		loc.Type = parseLocationType(lower)

	case strings.Contains(lower, "permit"):
		loc.Requirements.PermitStatus = parsePermitStatus(lower)

	case strings.Contains(lower, "accessib"):
		loc.Requirements.Accessibility = fieldValue(line)

	case strings.Contains(lower, "parking"):
		loc.Requirements.ParkingSpaces = parseParkingSpaces(line)

	case sceneClauseRE.MatchString(line):
		loc.Scenes = dedupeAscending(loc.Scenes, parseSceneNumbers(line))

	case strings.Contains(lower, "time of day") || strings.Contains(lower, "time:"):
		// Match against the value only, so the "day" in the label does
		// not count as a tag.
		for _, tag := range matchAllKeywords(fieldValue(line), timeOfDayVocab) {
			loc.TimesOfDay = appendUnique(loc.TimesOfDay, tag)
		}

	case strings.Contains(lower, "cost") || strings.Contains(lower, "budget") || strings.Contains(line, "$"):
		loc.Requirements.EstimatedCost = parseCost(line)

	case strings.Contains(lower, "address"):
		loc.Requirements.Address = fieldValue(line)

	case mentionsLocationType(lower) && len(line) <= 40:
		// A bare "Interior" or "Exterior, night" line.
		loc.Type = parseLocationType(lower)

	case strings.Contains(lower, "feature") || strings.Contains(lower, "requirement") ||
		strings.Contains(lower, "required") || strings.Contains(lower, "needs"):
		loc.Requirements.Features = append(loc.Requirements.Features, fieldValue(line))

	default:
		if loc.Description == "" {
			loc.Description = line
		} else {
			loc.Description += " " + line
		}
	}
}

func mentionsLocationType(lower string) bool {
	return strings.Contains(lower, "interior") || strings.Contains(lower, "exterior") ||
		strings.Contains(lower, "int.") || strings.Contains(lower, "ext.")
}

func parseLocationType(lower string) records.LocationType {
	interior := strings.Contains(lower, "interior") || strings.Contains(lower, "int.")
	exterior := strings.Contains(lower, "exterior") || strings.Contains(lower, "ext.")
	switch {
	case interior && exterior:
		return records.InteriorExterior
	case exterior:
		return records.Exterior
	default:
		return records.Interior
	}
}

func parsePermitStatus(lower string) records.PermitStatus {
	switch {
	case strings.Contains(lower, "obtained") || strings.Contains(lower, "approved") ||
		strings.Contains(lower, "secured") || strings.Contains(lower, "granted"):
		return records.PermitObtained
	case strings.Contains(lower, "pending") || strings.Contains(lower, "applied") ||
		strings.Contains(lower, "in progress"):
		return records.PermitPending
	case strings.Contains(lower, "not required") || strings.Contains(lower, "no permit") ||
		strings.Contains(lower, "none needed") || strings.Contains(lower, "not needed"):
		return records.PermitNotRequired
	default:
		return records.PermitRequired
	}
}

// fieldValue returns the text after the first colon, or the whole line
// when there is no colon.
func fieldValue(line string) string {
	if idx := strings.Index(line, ":"); idx >= 0 {
		if v := strings.TrimSpace(line[idx+1:]); v != "" {
			return v
		}
	}
	return strings.TrimSpace(line)
}

func appendUnique(set []string, v string) []string {
	for _, existing := range set {
		if existing == v {
			return set
		}
	}
	return append(set, v)
}
