package extract

import "github.com/Cortezjohannes/scorch-ai-sub008/internal/records"

// Static keyword tables. These are lookup data, not control flow: the
// extractors iterate them in declared order, first match wins, so table
// order is part of the contract and pinned by tests.

// transitionVocab lists screenplay transition stems. A transition line is
// one of these followed by a colon ("CUT TO:", "FADE OUT:").
var transitionVocab = []string{
	"CUT TO",
	"FADE IN",
	"FADE OUT",
	"FADE TO BLACK",
	"FADE TO",
	"DISSOLVE TO",
	"SMASH CUT TO",
	"SMASH CUT",
	"MATCH CUT TO",
	"MATCH CUT",
	"JUMP CUT TO",
	"JUMP CUT",
	"WIPE TO",
	"CROSSFADE",
	"INTERCUT",
}

// shotTypeVocab maps camera-size keywords to the shot type they imply.
// Longer keys come first so "EXTREME CLOSE-UP" wins over "CLOSE-UP".
var shotTypeVocab = []struct {
	keyword  string
	shotType string
}{
	{"EXTREME CLOSE-UP", "extreme close-up"},
	{"EXTREME CLOSEUP", "extreme close-up"},
	{"EXTREME WIDE", "extreme wide"},
	{"ESTABLISHING", "establishing"},
	{"CLOSE-UP", "close-up"},
	{"CLOSEUP", "close-up"},
	{"CLOSE UP", "close-up"},
	{"MEDIUM SHOT", "medium"},
	{"MEDIUM", "medium"},
	{"WIDE SHOT", "wide"},
	{"WIDE", "wide"},
	{"TWO-SHOT", "two-shot"},
	{"TWO SHOT", "two-shot"},
	{"OVER-THE-SHOULDER", "over-the-shoulder"},
	{"POV", "pov"},
	{"AERIAL", "aerial"},
	{"INSERT", "insert"},
}

// timeOfDayVocab is the fixed vocabulary of shooting-time tags.
var timeOfDayVocab = []string{
	"dawn",
	"sunrise",
	"morning",
	"day",
	"noon",
	"afternoon",
	"sunset",
	"dusk",
	"golden hour",
	"magic hour",
	"evening",
	"night",
	"midnight",
	"continuous",
}

// locationSuffixVocab lists nouns that mark a short line as a location
// heading when it ends with one of them.
var locationSuffixVocab = []string{
	"building",
	"office",
	"house",
	"home",
	"studio",
	"park",
	"apartment",
	"warehouse",
	"restaurant",
	"cafe",
	"coffee shop",
	"shop",
	"store",
	"street",
	"alley",
	"school",
	"hospital",
	"station",
	"bar",
	"club",
	"beach",
	"forest",
	"rooftop",
	"garage",
	"basement",
	"bedroom",
	"kitchen",
	"hallway",
	"lobby",
}

// colorVocab is the color keyword table for wardrobe matching.
var colorVocab = []string{
	"black",
	"white",
	"red",
	"blue",
	"navy",
	"green",
	"olive",
	"yellow",
	"orange",
	"purple",
	"pink",
	"brown",
	"tan",
	"beige",
	"cream",
	"grey",
	"gray",
	"silver",
	"gold",
	"maroon",
	"burgundy",
	"teal",
	"turquoise",
	"khaki",
	"denim",
}

// styleVocab is the wardrobe style keyword table. First match wins, so
// more specific styles precede the generic ones.
var styleVocab = []string{
	"business casual",
	"formal",
	"business",
	"elegant",
	"vintage",
	"retro",
	"bohemian",
	"punk",
	"gothic",
	"athletic",
	"sporty",
	"military",
	"western",
	"futuristic",
	"period",
	"streetwear",
	"casual",
}

// clothingVocab enumerates pieces of clothing recognized inside an item
// description. Matching is word-bounded with an optional plural "s", so
// "jacket" matches in "black leather jacket" and "two jackets" but not in
// "jacketed".
var clothingVocab = []string{
	"t-shirt",
	"tshirt",
	"jacket",
	"coat",
	"blazer",
	"suit",
	"tuxedo",
	"shirt",
	"blouse",
	"sweater",
	"hoodie",
	"cardigan",
	"vest",
	"dress",
	"gown",
	"skirt",
	"pants",
	"trousers",
	"jeans",
	"shorts",
	"tie",
	"bowtie",
	"scarf",
	"hat",
	"cap",
	"gloves",
	"belt",
	"boots",
	"shoes",
	"sneakers",
	"heels",
	"sandals",
	"socks",
	"stockings",
	"uniform",
	"apron",
	"robe",
	"pajamas",
	"swimsuit",
}

// propCategoryVocab maps item keywords to prop categories in priority
// order. A line matching none of these falls to the hand-prop default.
var propCategoryVocab = []struct {
	keyword  string
	category records.PropCategory
}{
	{"chair", records.Furniture},
	{"table", records.Furniture},
	{"desk", records.Furniture},
	{"sofa", records.Furniture},
	{"couch", records.Furniture},
	{"bed", records.Furniture},
	{"shelf", records.Furniture},
	{"bookcase", records.Furniture},
	{"cabinet", records.Furniture},
	{"stool", records.Furniture},
	{"bench", records.Furniture},
	{"car", records.Vehicle},
	{"truck", records.Vehicle},
	{"van", records.Vehicle},
	{"motorcycle", records.Vehicle},
	{"bicycle", records.Vehicle},
	{"bike", records.Vehicle},
	{"taxi", records.Vehicle},
	{"bus", records.Vehicle},
	{"boat", records.Vehicle},
	{"gun", records.Weapon},
	{"pistol", records.Weapon},
	{"rifle", records.Weapon},
	{"knife", records.Weapon},
	{"sword", records.Weapon},
	{"dagger", records.Weapon},
	{"axe", records.Weapon},
	{"phone", records.Technology},
	{"smartphone", records.Technology},
	{"laptop", records.Technology},
	{"computer", records.Technology},
	{"tablet", records.Technology},
	{"camera", records.Technology},
	{"radio", records.Technology},
	{"television", records.Technology},
	{"monitor", records.Technology},
	{"headphones", records.Technology},
	{"food", records.Consumable},
	{"drink", records.Consumable},
	{"coffee", records.Consumable},
	{"wine", records.Consumable},
	{"beer", records.Consumable},
	{"whiskey", records.Consumable},
	{"cigarette", records.Consumable},
	{"cigar", records.Consumable},
	{"meal", records.Consumable},
	{"painting", records.SetDecoration},
	{"poster", records.SetDecoration},
	{"curtain", records.SetDecoration},
	{"rug", records.SetDecoration},
	{"carpet", records.SetDecoration},
	{"plant", records.SetDecoration},
	{"vase", records.SetDecoration},
	{"mirror", records.SetDecoration},
	{"clock", records.SetDecoration},
	{"lamp", records.SetDecoration},
	{"chandelier", records.SetDecoration},
}

// heroKeywords and supportingKeywords rank prop importance; anything
// matching neither stays background.
var heroKeywords = []string{"hero", "key", "crucial", "critical", "main", "signature", "central"}

var supportingKeywords = []string{"supporting", "secondary", "important", "featured", "recurring"}

// procurementVocab maps sourcing keywords to a procurement source label.
var procurementVocab = []struct {
	keyword string
	source  string
}{
	{"rent", "rental"},
	{"rental", "rental"},
	{"purchase", "purchase"},
	{"buy", "purchase"},
	{"build", "custom build"},
	{"custom", "custom build"},
	{"fabricate", "custom build"},
	{"borrow", "borrowed"},
	{"owned", "production stock"},
	{"stock", "production stock"},
}

// wardrobeHintKeywords flag a line as wardrobe even outside a wardrobe
// section ("costume", "outfit", "wears").
var wardrobeHintKeywords = []string{"wardrobe", "costume", "outfit", "wears", "wearing", "dressed in"}
