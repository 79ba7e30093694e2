package records

// ScriptElementType classifies a single line of screenplay text.
type ScriptElementType string

const (
	SceneHeading  ScriptElementType = "scene_heading"
	Transition    ScriptElementType = "transition"
	Character     ScriptElementType = "character"
	Parenthetical ScriptElementType = "parenthetical"
	Dialogue      ScriptElementType = "dialogue"
	Action        ScriptElementType = "action"
)

// ScriptElement is one classified line of a screenplay. Dialogue elements
// carry the name of the nearest preceding character element; the name is a
// plain string copy, not a link into the element sequence.
type ScriptElement struct {
	Type      ScriptElementType `json:"type"`
	Text      string            `json:"text"`
	Character string            `json:"character,omitempty"`
}

// validScriptElementTypes is the closed set of element tags.
var validScriptElementTypes = map[ScriptElementType]bool{
	SceneHeading:  true,
	Transition:    true,
	Character:     true,
	Parenthetical: true,
	Dialogue:      true,
	Action:        true,
}
