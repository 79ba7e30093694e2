package extract

import (
	"strings"
	"testing"

	"github.com/Cortezjohannes/scorch-ai-sub008/internal/content"
	"github.com/Cortezjohannes/scorch-ai-sub008/internal/records"
)

func TestExtractEmptyInput(t *testing.T) {
	inputs := []string{"", "   \n\t  ", "```\n```", "**  **"}
	for _, domain := range records.Domains {
		for _, in := range inputs {
			res := NewEngine().Extract(domain, in)
			if res.Count() != 0 {
				t.Errorf("Extract(%s, %q) produced %d records, want 0", domain, in, res.Count())
			}
		}
	}
}

// Non-empty input must always yield at least one record, no matter how
// far the text is from the requested domain.
func TestExtractNeverEmpty(t *testing.T) {
	inputs := []string{
		"asdf qwer zxcv",
		"{{{",
		`{"shots": [not even json}`,
		"!!!",
		"a - b - c - d",
		strings.Repeat("x", 5000),
		"single line of perfectly ordinary prose with nothing to grab onto",
	}
	e := NewEngine()
	for _, domain := range records.Domains {
		for _, in := range inputs {
			res := e.Extract(domain, in)
			if res.Count() == 0 {
				t.Errorf("Extract(%s, %q) produced no records", domain, in)
			}
		}
	}
}

func TestExtractPayload(t *testing.T) {
	t.Run("script elements pass through", func(t *testing.T) {
		in := `Here's your script as JSON:
{"elements": [
  {"type": "scene_heading", "text": "INT. LAB - NIGHT"},
  {"type": "dialogue", "text": "It worked.", "character": "EVA"}
]}`
		got := NewEngine().ExtractScript(in)
		if len(got) != 2 {
			t.Fatalf("got %d elements, want 2", len(got))
		}
		if got[0].Type != records.SceneHeading || got[0].Text != "INT. LAB - NIGHT" {
			t.Errorf("element 0 = %+v", got[0])
		}
		if got[1].Type != records.Dialogue || got[1].Character != "EVA" {
			t.Errorf("element 1 = %+v", got[1])
		}
	})

	t.Run("storyboard shots get numbers and camera defaults", func(t *testing.T) {
		in := `{"shots": [{"description": "the street empties"}]}`
		got := NewEngine().ExtractStoryboard(in)
		if len(got) != 1 {
			t.Fatalf("got %d shots, want 1", len(got))
		}
		s := got[0]
		if s.Number != 1 {
			t.Errorf("Number = %d, want 1", s.Number)
		}
		if s.ShotType != records.DefaultShotType || s.CameraAngle != records.DefaultCameraAngle {
			t.Errorf("camera defaults not applied: %+v", s)
		}
		if !records.ValidStoryboardShot(s) {
			t.Errorf("shot does not validate: %+v", s)
		}
	})

	t.Run("locations under alias key", func(t *testing.T) {
		in := `{"sets": [{"name": "Coffee Shop", "type": "exterior", "scenes": [3, 1, 3]}]}`
		got := NewEngine().ExtractLocations(in)
		if len(got) != 1 {
			t.Fatalf("got %d locations, want 1", len(got))
		}
		if got[0].Type != records.Exterior {
			t.Errorf("Type = %q, want exterior", got[0].Type)
		}
		if len(got[0].Scenes) != 2 || got[0].Scenes[0] != 1 || got[0].Scenes[1] != 3 {
			t.Errorf("Scenes = %v, want [1 3]", got[0].Scenes)
		}
		if !records.ValidLocation(got[0]) {
			t.Errorf("location does not validate: %+v", got[0])
		}
	})

	t.Run("props and wardrobe decoded independently", func(t *testing.T) {
		in := `{"props": [{"name": "revolver"}], "wardrobe": [{"character": "Ana", "outfit": "trench coat"}]}`
		props, wardrobe := NewEngine().ExtractProps(in)
		if len(props) != 1 || len(wardrobe) != 1 {
			t.Fatalf("got %d props, %d wardrobe, want 1 and 1", len(props), len(wardrobe))
		}
		if !records.ValidProp(props[0]) {
			t.Errorf("prop does not validate: %+v", props[0])
		}
		if !records.ValidWardrobeItem(wardrobe[0]) {
			t.Errorf("wardrobe item does not validate: %+v", wardrobe[0])
		}
	})

	t.Run("nameless payload entries dropped", func(t *testing.T) {
		in := `{"locations": [{"name": "  "}, {"name": "Pier 7"}]}`
		got := NewEngine().ExtractLocations(in)
		if len(got) != 1 || got[0].Name != "Pier 7" {
			t.Errorf("got %+v, want single Pier 7", got)
		}
	})
}

// A stray brace pair opens the payload tier but must not divert
// extraction: the decode fails and the pattern tier still runs.
func TestExtractBracesWithoutPayload(t *testing.T) {
	in := "Shot 1: she opens the box {empty}\nShot 2: close on the lock"
	got := NewEngine().ExtractStoryboard(in)
	if len(got) != 2 {
		t.Fatalf("got %d shots, want 2: %+v", len(got), got)
	}
}

func FuzzExtract(f *testing.F) {
	seeds := []string{
		"",
		"   \n\t  ",
		`{"props": [{"name":`,
		"{{{",
		`{"shots": [not even json}`,
		"**unterminated emphasis",
		"```\nfence never closes",
		"café scène, décor à vérifier",
		"小道具リスト: 傘、刀、提灯",
		"\xff\xfe broken bytes \x80",
		"Shot 1: ÉLÉNA crosses the plaza",
		"- Vintage typewriter, hero prop, scenes 1-3",
		"a - b - c - d",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	e := NewEngine()
	f.Fuzz(func(t *testing.T, raw string) {
		for _, domain := range records.Domains {
			res := e.Extract(domain, raw)
			if content.Normalize(raw) != "" && res.Count() == 0 {
				t.Errorf("Extract(%s, %q) produced no records", domain, raw)
			}
		}
	})
}

func TestEngineVocabularyOptions(t *testing.T) {
	e := NewEngine(WithExtraColors("crimson"), WithExtraClothing("poncho"))
	_, wardrobe := e.ExtractProps("WARDROBE:\n- Crimson poncho for Ana")
	if len(wardrobe) != 1 {
		t.Fatalf("got %d wardrobe items, want 1", len(wardrobe))
	}
	w := wardrobe[0]
	if w.Color != "crimson" {
		t.Errorf("Color = %q, want crimson", w.Color)
	}
	if len(w.Pieces) != 1 || w.Pieces[0] != "poncho" {
		t.Errorf("Pieces = %v, want [poncho]", w.Pieces)
	}
	if w.Character != "Ana" {
		t.Errorf("Character = %q, want Ana", w.Character)
	}
}

func TestEngineSharedAcrossCalls(t *testing.T) {
	e := NewEngine()
	first := e.Extract(records.DomainProps, "- Vintage typewriter")
	second := e.Extract(records.DomainProps, "- Vintage typewriter")
	if first.Count() != second.Count() {
		t.Errorf("repeated extraction diverged: %d then %d records", first.Count(), second.Count())
	}
}
