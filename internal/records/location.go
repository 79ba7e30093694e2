package records

// LocationType distinguishes interior from exterior sets.
type LocationType string

const (
	Interior         LocationType = "interior"
	Exterior         LocationType = "exterior"
	InteriorExterior LocationType = "interior-exterior"
)

// PermitStatus tracks filming-permit progress for a location.
type PermitStatus string

const (
	PermitRequired    PermitStatus = "required"
	PermitNotRequired PermitStatus = "not-required"
	PermitPending     PermitStatus = "pending"
	PermitObtained    PermitStatus = "obtained"
)

// LocationRequirements holds the logistics sub-record of a location.
type LocationRequirements struct {
	Features      []string     `json:"features,omitempty"`
	Accessibility string       `json:"accessibility,omitempty"`
	PermitStatus  PermitStatus `json:"permit_status"`
	ParkingSpaces int          `json:"parking_spaces,omitempty"`
	EstimatedCost string       `json:"estimated_cost,omitempty"`
	Address       string       `json:"address,omitempty"`
}

// Location is one filming location. Description accumulates prose lines
// during extraction; Scenes is a deduplicated ascending set.
type Location struct {
	Name         string               `json:"name"`
	Type         LocationType         `json:"type"`
	Description  string               `json:"description"`
	Scenes       []int                `json:"scenes,omitempty"`
	TimesOfDay   []string             `json:"times_of_day,omitempty"`
	Requirements LocationRequirements `json:"requirements"`
}

// NewLocation builds a location with field defaults. Type defaults to
// interior and the permit to not-required until a line says otherwise.
func NewLocation(name string) Location {
	return Location{
		Name: name,
		Type: Interior,
		Requirements: LocationRequirements{
			PermitStatus: PermitNotRequired,
		},
	}
}

var validLocationTypes = map[LocationType]bool{
	Interior:         true,
	Exterior:         true,
	InteriorExterior: true,
}

var validPermitStatuses = map[PermitStatus]bool{
	PermitRequired:    true,
	PermitNotRequired: true,
	PermitPending:     true,
	PermitObtained:    true,
}
