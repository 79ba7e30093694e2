package extract

import (
	"strings"

	"github.com/Cortezjohannes/scorch-ai-sub008/internal/records"
)

// GovernorConfig controls post-extraction quality filtering and caps.
// The engine itself never drops records; the governor runs in the
// serving layers (CLI, MCP) where oversized or junk-heavy results are a
// caller-facing problem.
type GovernorConfig struct {
	// MaxItems caps the records kept per result, applied per record
	// family in extraction order. 0 means unlimited.
	MaxItems int

	// DropFormattingJunk removes records whose text is nothing but
	// leftover markdown formatting ("---", "***"). Default true.
	DropFormattingJunk bool
}

// DefaultGovernorConfig returns the recommended governor settings.
func DefaultGovernorConfig() GovernorConfig {
	return GovernorConfig{
		MaxItems:           200,
		DropFormattingJunk: true,
	}
}

// Governor trims an extraction result to serving quality.
type Governor struct {
	config GovernorConfig
}

func NewGovernor(cfg GovernorConfig) *Governor {
	return &Governor{config: cfg}
}

// Apply filters junk records and caps each family. Records keep their
// extraction order; storyboard shots are renumbered after filtering so
// the numbering stays contiguous.
func (g *Governor) Apply(res records.Result) records.Result {
	res.Script = capSlice(filterSlice(res.Script, g.scriptJunk), g.config.MaxItems)
	res.Storyboard = capSlice(filterSlice(res.Storyboard, g.shotJunk), g.config.MaxItems)
	for i := range res.Storyboard {
		res.Storyboard[i].Number = i + 1
	}
	res.Locations = capSlice(filterSlice(res.Locations, g.locationJunk), g.config.MaxItems)
	res.Props = capSlice(filterSlice(res.Props, g.propJunk), g.config.MaxItems)
	res.Wardrobe = capSlice(filterSlice(res.Wardrobe, g.wardrobeJunk), g.config.MaxItems)
	return res
}

func (g *Governor) scriptJunk(e records.ScriptElement) bool {
	return g.config.DropFormattingJunk && isFormattingOnly(e.Text)
}

func (g *Governor) shotJunk(s records.StoryboardShot) bool {
	return g.config.DropFormattingJunk && isFormattingOnly(s.Description)
}

func (g *Governor) locationJunk(l records.Location) bool {
	return g.config.DropFormattingJunk && isFormattingOnly(l.Name)
}

func (g *Governor) propJunk(p records.Prop) bool {
	return g.config.DropFormattingJunk && isFormattingOnly(p.Name)
}

func (g *Governor) wardrobeJunk(w records.WardrobeItem) bool {
	return g.config.DropFormattingJunk && isFormattingOnly(w.Outfit)
}

func filterSlice[T any](in []T, junk func(T) bool) []T {
	if in == nil {
		return nil
	}
	out := in[:0]
	for _, v := range in {
		if !junk(v) {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func capSlice[T any](in []T, max int) []T {
	if max > 0 && len(in) > max {
		return in[:max]
	}
	return in
}

// isFormattingOnly reports whether s contains nothing beyond markdown
// formatting characters and whitespace.
func isFormattingOnly(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return true
	}
	for _, r := range s {
		switch r {
		case '*', '_', '`', '#', '~', '-', '=', '|', ':', ' ', '\t':
		default:
			return false
		}
	}
	return true
}
