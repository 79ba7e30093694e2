package extract

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/Cortezjohannes/scorch-ai-sub008/internal/records"
)

// Tier 1: structured-payload probing. A language model asked for JSON
// sometimes delivers it, wrapped in prose or not. Extractors enter this
// tier only when the structure signature reports an embedded payload.
// gjson tolerates the wrapping noise; a payload is trusted only when a
// known alias key for the domain holds an array that decodes into the
// domain's record type. Every failure here is silent; the caller falls
// through to tier 2.

// Alias keys recognized per domain, probed in declared order.
var (
	scriptAliases     = []string{"elements", "scenes", "screenplay"}
	storyboardAliases = []string{"shots", "storyboard", "scenes"}
	locationAliases   = []string{"locations", "sets"}
	propAliases       = []string{"props"}
	wardrobeAliases   = []string{"wardrobe", "costumes"}
)

// payloadDocument carves the widest brace-delimited substring out of the
// text and returns it when it is valid JSON. The bounds check stays even
// behind the signature gate: the signature only sees that both braces
// occur, not that they occur in order.
func payloadDocument(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", false
	}
	doc := text[start : end+1]
	if !gjson.Valid(doc) {
		return "", false
	}
	return doc, true
}

// decodeAlias unmarshals the array under the first present alias key
// into out. Reports false when no alias decodes to a non-empty array.
func decodeAlias(doc string, aliases []string, out any) bool {
	for _, key := range aliases {
		res := gjson.Get(doc, key)
		if !res.Exists() || !res.IsArray() {
			continue
		}
		if err := json.Unmarshal([]byte(res.Raw), out); err != nil {
			continue
		}
		return true
	}
	return false
}

func scriptFromPayload(text string) ([]records.ScriptElement, bool) {
	doc, ok := payloadDocument(text)
	if !ok {
		return nil, false
	}
	var elems []records.ScriptElement
	if !decodeAlias(doc, scriptAliases, &elems) || len(elems) == 0 {
		return nil, false
	}
	out := elems[:0]
	for _, el := range elems {
		if strings.TrimSpace(el.Text) == "" {
			continue
		}
		if el.Type == "" {
			el.Type = records.Action
		}
		out = append(out, el)
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

func storyboardFromPayload(text string) ([]records.StoryboardShot, bool) {
	doc, ok := payloadDocument(text)
	if !ok {
		return nil, false
	}
	var shots []records.StoryboardShot
	if !decodeAlias(doc, storyboardAliases, &shots) || len(shots) == 0 {
		return nil, false
	}
	for i := range shots {
		if shots[i].Number == 0 {
			shots[i].Number = i + 1
		}
		fillShotDefaults(&shots[i])
	}
	return shots, true
}

func fillShotDefaults(s *records.StoryboardShot) {
	if s.ShotType == "" {
		s.ShotType = records.DefaultShotType
	}
	if s.CameraAngle == "" {
		s.CameraAngle = records.DefaultCameraAngle
	}
	if s.CameraMovement == "" {
		s.CameraMovement = records.DefaultCameraMovement
	}
	if s.Composition == "" {
		s.Composition = records.DefaultComposition
	}
	if s.Lighting == "" {
		s.Lighting = records.DefaultLighting
	}
	if s.Duration == "" {
		s.Duration = records.DefaultShotDuration
	}
}

func locationsFromPayload(text string) ([]records.Location, bool) {
	doc, ok := payloadDocument(text)
	if !ok {
		return nil, false
	}
	var locs []records.Location
	if !decodeAlias(doc, locationAliases, &locs) || len(locs) == 0 {
		return nil, false
	}
	out := locs[:0]
	for _, loc := range locs {
		if strings.TrimSpace(loc.Name) == "" {
			continue
		}
		if loc.Type == "" {
			loc.Type = records.Interior
		}
		if loc.Requirements.PermitStatus == "" {
			loc.Requirements.PermitStatus = records.PermitNotRequired
		}
		loc.Scenes = dedupeAscending(loc.Scenes)
		out = append(out, loc)
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

// propsFromPayload probes props and wardrobe alias keys independently;
// a payload may legitimately carry both lists.
func propsFromPayload(text string) ([]records.Prop, []records.WardrobeItem, bool) {
	doc, ok := payloadDocument(text)
	if !ok {
		return nil, nil, false
	}

	var props []records.Prop
	var wardrobe []records.WardrobeItem
	gotProps := decodeAlias(doc, propAliases, &props)
	gotWardrobe := decodeAlias(doc, wardrobeAliases, &wardrobe)
	if !gotProps && !gotWardrobe {
		return nil, nil, false
	}

	keptProps := props[:0]
	for _, p := range props {
		if strings.TrimSpace(p.Name) == "" {
			continue
		}
		if p.Category == "" {
			p.Category = records.HandProp
		}
		if p.Importance == "" {
			p.Importance = records.Background
		}
		if p.Quantity < 1 {
			p.Quantity = 1
		}
		if p.Procurement.Source == "" {
			p.Procurement.Source = "prop house"
		}
		p.Scenes = dedupeAscending(p.Scenes)
		keptProps = append(keptProps, p)
	}

	keptWardrobe := wardrobe[:0]
	for _, w := range wardrobe {
		if strings.TrimSpace(w.Outfit) == "" {
			continue
		}
		if w.Character == "" {
			w.Character = records.DefaultWardrobeCharacter
		}
		if len(w.Pieces) == 0 {
			w.Pieces = []string{records.DefaultWardrobePiece}
		}
		if w.Color == "" {
			w.Color = records.DefaultWardrobeColor
		}
		if w.Style == "" {
			w.Style = records.DefaultWardrobeStyle
		}
		w.Scenes = dedupeAscending(w.Scenes)
		keptWardrobe = append(keptWardrobe, w)
	}

	if len(keptProps) == 0 && len(keptWardrobe) == 0 {
		return nil, nil, false
	}
	return keptProps, keptWardrobe, true
}
