package records

// Default camera fields stamped onto every extracted shot. These are
// placeholders for a human pass or a later enrichment step; the engine
// does not infer them from content.
const (
	DefaultCameraAngle    = "eye-level"
	DefaultCameraMovement = "static"
	DefaultComposition    = "rule-of-thirds"
	DefaultLighting       = "natural"
	DefaultShotDuration   = "5-10s"
	DefaultShotType       = "medium"
)

// StoryboardShot is a single storyboard panel. Number is 1-based and
// assigned by extraction order; explicit numbering in the source text is
// kept only as a hint inside Description.
type StoryboardShot struct {
	Number         int    `json:"number"`
	ShotType       string `json:"shot_type"`
	CameraAngle    string `json:"camera_angle"`
	CameraMovement string `json:"camera_movement"`
	Composition    string `json:"composition"`
	Lighting       string `json:"lighting"`
	Duration       string `json:"duration"`
	Description    string `json:"description"`
}

// NewStoryboardShot builds a shot with all camera fields defaulted.
func NewStoryboardShot(number int, description string) StoryboardShot {
	return StoryboardShot{
		Number:         number,
		ShotType:       DefaultShotType,
		CameraAngle:    DefaultCameraAngle,
		CameraMovement: DefaultCameraMovement,
		Composition:    DefaultComposition,
		Lighting:       DefaultLighting,
		Duration:       DefaultShotDuration,
		Description:    description,
	}
}
