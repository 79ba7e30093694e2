package records

import "strings"

// Shape validators. Each predicate checks field presence and primitive
// type only, never semantic correctness (a scene number that makes no
// narrative sense still validates). Callers use these to decide between
// rendering a record as-is and substituting a placeholder. The extraction
// engine never calls them on its own output.

// ValidScriptElement reports whether e has a known tag and non-empty text.
func ValidScriptElement(e ScriptElement) bool {
	if !validScriptElementTypes[e.Type] {
		return false
	}
	if strings.TrimSpace(e.Text) == "" {
		return false
	}
	// Dialogue must carry a speaker; other tags must not.
	if e.Type == Dialogue {
		return strings.TrimSpace(e.Character) != ""
	}
	return true
}

// ValidStoryboardShot reports whether s has a positive number, a
// description, and all camera fields filled.
func ValidStoryboardShot(s StoryboardShot) bool {
	if s.Number < 1 {
		return false
	}
	if strings.TrimSpace(s.Description) == "" {
		return false
	}
	return s.ShotType != "" && s.CameraAngle != "" && s.CameraMovement != "" &&
		s.Composition != "" && s.Lighting != "" && s.Duration != ""
}

// ValidLocation reports whether l has a name, a known type, a known permit
// status, and well-formed numeric fields.
func ValidLocation(l Location) bool {
	if strings.TrimSpace(l.Name) == "" {
		return false
	}
	if !validLocationTypes[l.Type] {
		return false
	}
	if !validPermitStatuses[l.Requirements.PermitStatus] {
		return false
	}
	if l.Requirements.ParkingSpaces < 0 {
		return false
	}
	return scenesAscending(l.Scenes)
}

// ValidProp reports whether p has a name, known enums, and a positive
// quantity.
func ValidProp(p Prop) bool {
	if strings.TrimSpace(p.Name) == "" {
		return false
	}
	if !validPropCategories[p.Category] {
		return false
	}
	if !validPropImportances[p.Importance] {
		return false
	}
	if p.Quantity < 1 {
		return false
	}
	return scenesAscending(p.Scenes)
}

// ValidWardrobeItem reports whether w has a character, an outfit label,
// and at least one clothing piece.
func ValidWardrobeItem(w WardrobeItem) bool {
	if strings.TrimSpace(w.Character) == "" {
		return false
	}
	if strings.TrimSpace(w.Outfit) == "" {
		return false
	}
	if len(w.Pieces) == 0 {
		return false
	}
	if w.Color == "" || w.Style == "" {
		return false
	}
	return scenesAscending(w.Scenes)
}

// scenesAscending reports whether the scene set is strictly ascending
// (which implies deduplicated). An empty set is fine.
func scenesAscending(scenes []int) bool {
	for i, n := range scenes {
		if n < 0 {
			return false
		}
		if i > 0 && scenes[i-1] >= n {
			return false
		}
	}
	return true
}
