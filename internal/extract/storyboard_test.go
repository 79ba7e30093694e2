package extract

import (
	"testing"

	"github.com/Cortezjohannes/scorch-ai-sub008/internal/records"
)

func TestExtractStoryboardMarkers(t *testing.T) {
	in := `Shot 1: Establishing view of the harbor at dawn.
Fishing boats head out past the breakwater.

Shot 2: CLOSE-UP on Mara's hands tying a knot.

Shot 3 - She looks up at the horizon.`

	got := NewEngine().ExtractStoryboard(in)
	if len(got) != 3 {
		t.Fatalf("got %d shots, want 3: %+v", len(got), got)
	}

	for i, s := range got {
		if s.Number != i+1 {
			t.Errorf("shot %d numbered %d", i, s.Number)
		}
		if !records.ValidStoryboardShot(s) {
			t.Errorf("shot %d does not validate: %+v", i, s)
		}
	}
	if want := "Establishing view of the harbor at dawn. Fishing boats head out past the breakwater."; got[0].Description != want {
		t.Errorf("shot 1 description = %q, want %q", got[0].Description, want)
	}
	if got[1].ShotType != "close-up" {
		t.Errorf("shot 2 type = %q, want close-up", got[1].ShotType)
	}
	if got[2].ShotType != records.DefaultShotType {
		t.Errorf("shot 3 type = %q, want default %q", got[2].ShotType, records.DefaultShotType)
	}
}

func TestExtractStoryboardNumberedList(t *testing.T) {
	in := `1. Wide view of the empty diner.
2. The waitress wipes the counter.
3. Headlights sweep across the window.`

	got := NewEngine().ExtractStoryboard(in)
	if len(got) != 3 {
		t.Fatalf("got %d shots, want 3", len(got))
	}
	if got[2].Description != "Headlights sweep across the window." {
		t.Errorf("shot 3 description = %q", got[2].Description)
	}
}

func TestExtractStoryboardCameraKeywords(t *testing.T) {
	in := `WIDE SHOT - the street empties as the sirens fade.
Trash drifts across the asphalt.
EXTREME CLOSE-UP - a key turning in a lock.`

	got := NewEngine().ExtractStoryboard(in)
	if len(got) != 2 {
		t.Fatalf("got %d shots, want 2: %+v", len(got), got)
	}
	if got[0].ShotType != "wide" {
		t.Errorf("shot 1 type = %q, want wide", got[0].ShotType)
	}
	if got[1].ShotType != "extreme close-up" {
		t.Errorf("shot 2 type = %q, want extreme close-up", got[1].ShotType)
	}
}

// A line that merely begins with the letters of a camera keyword must
// fold into the open shot instead of starting a new one.
func TestExtractStoryboardKeywordNeedsBoundary(t *testing.T) {
	in := `WIDE SHOT - the street empties.
WIDEN THE SEARCH AREA, the captain radios.`

	got := NewEngine().ExtractStoryboard(in)
	if len(got) != 1 {
		t.Fatalf("got %d shots, want 1: %+v", len(got), got)
	}
	if got[0].ShotType != "wide" {
		t.Errorf("shot type = %q, want wide", got[0].ShotType)
	}
}

// A marker with nothing after it is dropped and the remaining shots are
// renumbered contiguously.
func TestExtractStoryboardDropsEmptyShots(t *testing.T) {
	in := "Shot 1:\n\nShot 2: hero walks away in the rain"

	got := NewEngine().ExtractStoryboard(in)
	if len(got) != 1 {
		t.Fatalf("got %d shots, want 1: %+v", len(got), got)
	}
	if got[0].Number != 1 {
		t.Errorf("Number = %d, want 1", got[0].Number)
	}
	if got[0].Description != "hero walks away in the rain" {
		t.Errorf("Description = %q", got[0].Description)
	}
}

// Plain paragraphs with no markers fall through to chunking: one shot
// per paragraph, all camera fields defaulted.
func TestExtractStoryboardFallback(t *testing.T) {
	in := `The camera drifts over a sleeping city before dawn.

A single window glows on the fourteenth floor.

Inside, an old man waters a plant no one else remembers.`

	got := NewEngine().ExtractStoryboard(in)
	if len(got) != 3 {
		t.Fatalf("got %d shots, want 3", len(got))
	}
	for i, s := range got {
		if s.Number != i+1 {
			t.Errorf("shot %d numbered %d", i, s.Number)
		}
		if s.ShotType != records.DefaultShotType || s.CameraMovement != records.DefaultCameraMovement ||
			s.Lighting != records.DefaultLighting || s.Duration != records.DefaultShotDuration {
			t.Errorf("shot %d missing defaults: %+v", i, s)
		}
	}
}
