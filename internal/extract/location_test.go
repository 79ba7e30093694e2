package extract

import (
	"reflect"
	"testing"

	"github.com/Cortezjohannes/scorch-ai-sub008/internal/records"
)

func TestExtractLocations(t *testing.T) {
	in := `Location 1: Coffee Shop
Type: interior
Scenes: 1-3`

	got := NewEngine().ExtractLocations(in)
	if len(got) != 1 {
		t.Fatalf("got %d locations, want 1: %+v", len(got), got)
	}
	loc := got[0]
	if loc.Name != "Coffee Shop" {
		t.Errorf("Name = %q, want Coffee Shop", loc.Name)
	}
	if loc.Type != records.Interior {
		t.Errorf("Type = %q, want interior", loc.Type)
	}
	if !reflect.DeepEqual(loc.Scenes, []int{1, 2, 3}) {
		t.Errorf("Scenes = %v, want [1 2 3]", loc.Scenes)
	}
	if loc.Requirements.PermitStatus != records.PermitNotRequired {
		t.Errorf("PermitStatus = %q, want default not-required", loc.Requirements.PermitStatus)
	}
	if !records.ValidLocation(loc) {
		t.Errorf("location does not validate: %+v", loc)
	}
}

func TestExtractLocationsSceneHeading(t *testing.T) {
	in := `EXT. ROOFTOP - NIGHT
Permit: pending approval from the city
Parking: 10 spaces on the street below
Cost: $800/day`

	got := NewEngine().ExtractLocations(in)
	if len(got) != 1 {
		t.Fatalf("got %d locations, want 1: %+v", len(got), got)
	}
	loc := got[0]
	if loc.Name != "ROOFTOP" {
		t.Errorf("Name = %q, want ROOFTOP", loc.Name)
	}
	if loc.Type != records.Exterior {
		t.Errorf("Type = %q, want exterior", loc.Type)
	}
	if !reflect.DeepEqual(loc.TimesOfDay, []string{"night"}) {
		t.Errorf("TimesOfDay = %v, want [night]", loc.TimesOfDay)
	}
	if loc.Requirements.PermitStatus != records.PermitPending {
		t.Errorf("PermitStatus = %q, want pending", loc.Requirements.PermitStatus)
	}
	if loc.Requirements.ParkingSpaces != 10 {
		t.Errorf("ParkingSpaces = %d, want 10", loc.Requirements.ParkingSpaces)
	}
	if loc.Requirements.EstimatedCost != "$800/day" {
		t.Errorf("EstimatedCost = %q, want $800/day", loc.Requirements.EstimatedCost)
	}
}

// A new heading flushes the open accumulator; end of input flushes the
// last one.
func TestExtractLocationsMultiple(t *testing.T) {
	in := `Location: Harbor Warehouse
Exterior
Accessibility: loading dock at grade
Needs: generator access

Location: City Library
Permit obtained
Scenes: 4, 7`

	got := NewEngine().ExtractLocations(in)
	if len(got) != 2 {
		t.Fatalf("got %d locations, want 2: %+v", len(got), got)
	}

	first, second := got[0], got[1]
	if first.Name != "Harbor Warehouse" || second.Name != "City Library" {
		t.Errorf("names = %q, %q", first.Name, second.Name)
	}
	if first.Type != records.Exterior {
		t.Errorf("first Type = %q, want exterior", first.Type)
	}
	if first.Requirements.Accessibility != "loading dock at grade" {
		t.Errorf("first Accessibility = %q", first.Requirements.Accessibility)
	}
	if len(first.Requirements.Features) != 1 || first.Requirements.Features[0] != "generator access" {
		t.Errorf("first Features = %v", first.Requirements.Features)
	}
	if second.Requirements.PermitStatus != records.PermitObtained {
		t.Errorf("second PermitStatus = %q, want obtained", second.Requirements.PermitStatus)
	}
	if !reflect.DeepEqual(second.Scenes, []int{4, 7}) {
		t.Errorf("second Scenes = %v, want [4 7]", second.Scenes)
	}
}

func TestExtractLocationsCapsBanner(t *testing.T) {
	in := `ABANDONED FACTORY
Address: 14 Mill Road
Time of day: dusk and night`

	got := NewEngine().ExtractLocations(in)
	if len(got) != 1 {
		t.Fatalf("got %d locations, want 1: %+v", len(got), got)
	}
	loc := got[0]
	if loc.Name != "ABANDONED FACTORY" {
		t.Errorf("Name = %q", loc.Name)
	}
	if loc.Requirements.Address != "14 Mill Road" {
		t.Errorf("Address = %q", loc.Requirements.Address)
	}
	if !reflect.DeepEqual(loc.TimesOfDay, []string{"dusk", "night"}) {
		t.Errorf("TimesOfDay = %v, want [dusk night]", loc.TimesOfDay)
	}
}

// Prose with no recognizable headings still yields locations, one per
// chunk, with defaults filled.
func TestExtractLocationsFallback(t *testing.T) {
	in := `We want somewhere quiet enough to record clean dialogue.

It should feel lived-in rather than staged.`

	got := NewEngine().ExtractLocations(in)
	if len(got) != 2 {
		t.Fatalf("got %d locations, want 2: %+v", len(got), got)
	}
	for i, loc := range got {
		if loc.Name == "" {
			t.Errorf("location %d has empty name", i)
		}
		if !records.ValidLocation(loc) {
			t.Errorf("location %d does not validate: %+v", i, loc)
		}
	}
}
