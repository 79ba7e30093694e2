package records

// PropCategory buckets a prop for the art department.
type PropCategory string

const (
	Furniture     PropCategory = "furniture"
	Vehicle       PropCategory = "vehicle"
	Weapon        PropCategory = "weapon"
	Technology    PropCategory = "technology"
	Consumable    PropCategory = "consumable"
	SetDecoration PropCategory = "set-decoration"
	HandProp      PropCategory = "hand-prop"
)

// PropImportance ranks how central a prop is to the production.
type PropImportance string

const (
	Hero       PropImportance = "hero"
	Supporting PropImportance = "supporting"
	Background PropImportance = "background"
)

// Procurement notes where a prop comes from and what it might cost.
type Procurement struct {
	Source        string `json:"source"`
	EstimatedCost string `json:"estimated_cost,omitempty"`
}

// Prop is one physical item on the props list.
type Prop struct {
	Name        string         `json:"name"`
	Category    PropCategory   `json:"category"`
	Description string         `json:"description"`
	Quantity    int            `json:"quantity"`
	Importance  PropImportance `json:"importance"`
	Scenes      []int          `json:"scenes,omitempty"`
	Procurement Procurement    `json:"procurement"`
}

// NewProp builds a prop with field defaults: hand-prop, quantity 1,
// background importance, sourced from the prop house.
func NewProp(name string) Prop {
	return Prop{
		Name:       name,
		Category:   HandProp,
		Quantity:   1,
		Importance: Background,
		Procurement: Procurement{
			Source: "prop house",
		},
	}
}

// Default wardrobe fields used when the source text gives nothing better.
const (
	DefaultWardrobeCharacter = "Unknown"
	DefaultWardrobeColor     = "unspecified"
	DefaultWardrobeStyle     = "casual"
	DefaultWardrobePiece     = "outfit"
)

// WardrobeItem is one costume entry, attributed to a character when the
// surrounding text names one.
type WardrobeItem struct {
	Character string   `json:"character"`
	Outfit    string   `json:"outfit"`
	Pieces    []string `json:"pieces"`
	Color     string   `json:"color"`
	Style     string   `json:"style"`
	Scenes    []int    `json:"scenes,omitempty"`
}

// NewWardrobeItem builds a wardrobe item with field defaults.
func NewWardrobeItem(character, outfit string) WardrobeItem {
	if character == "" {
		character = DefaultWardrobeCharacter
	}
	return WardrobeItem{
		Character: character,
		Outfit:    outfit,
		Pieces:    []string{DefaultWardrobePiece},
		Color:     DefaultWardrobeColor,
		Style:     DefaultWardrobeStyle,
	}
}

var validPropCategories = map[PropCategory]bool{
	Furniture:     true,
	Vehicle:       true,
	Weapon:        true,
	Technology:    true,
	Consumable:    true,
	SetDecoration: true,
	HandProp:      true,
}

var validPropImportances = map[PropImportance]bool{
	Hero:       true,
	Supporting: true,
	Background: true,
}
