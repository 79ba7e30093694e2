// Package records defines the typed records produced by the extraction
// engine, one family per production domain:
// - Script elements (scene headings, dialogue, action, ...)
// - Storyboard shots
// - Filming locations with logistics
// - Props and wardrobe items
//
// Every record type has total defaults: extraction never hands a caller a
// record with a required field left absent. Validators live here too so
// downstream consumers can gate display without importing the engine.
package records

import "fmt"

// Domain tags the kind of content a raw text blob is expected to contain.
type Domain string

const (
	DomainScript     Domain = "script"
	DomainStoryboard Domain = "storyboard"
	DomainLocation   Domain = "location"
	DomainProps      Domain = "props"
)

// Domains lists all supported domains in a stable order.
var Domains = []Domain{DomainScript, DomainStoryboard, DomainLocation, DomainProps}

// ParseDomain maps a user-supplied string to a Domain.
func ParseDomain(s string) (Domain, error) {
	switch Domain(s) {
	case DomainScript, DomainStoryboard, DomainLocation, DomainProps:
		return Domain(s), nil
	}
	return "", fmt.Errorf("unknown domain %q (want script, storyboard, location, or props)", s)
}

// Result bundles the typed records from one extraction call. Exactly one
// of the slices is populated for script/storyboard/location; the props
// domain may populate both Props and Wardrobe from the same text.
type Result struct {
	Domain     Domain          `json:"domain"`
	Script     []ScriptElement `json:"script,omitempty"`
	Storyboard []StoryboardShot `json:"storyboard,omitempty"`
	Locations  []Location      `json:"locations,omitempty"`
	Props      []Prop          `json:"props,omitempty"`
	Wardrobe   []WardrobeItem  `json:"wardrobe,omitempty"`
}

// Count returns the total number of records in the result.
func (r Result) Count() int {
	return len(r.Script) + len(r.Storyboard) + len(r.Locations) + len(r.Props) + len(r.Wardrobe)
}
