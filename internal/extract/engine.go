// Package extract turns loosely-structured language-model output into
// typed production records without ever failing on malformed input.
//
// Every domain extractor runs the same three-tier protocol:
//   - Tier 1: probe the text for an embedded JSON payload under a known
//     alias key and trust it when it decodes.
//   - Tier 2: domain-specific line and pattern heuristics.
//   - Tier 3: progressively looser chunking (paragraphs, sentences,
//     dash segments, whole text) so non-empty input always yields at
//     least one record.
//
// Tier failures are never surfaced: a broken payload or a pattern miss
// just falls through to the next tier. The only error-like outcome is an
// empty result for empty input.
package extract

import (
	"strings"

	"github.com/Cortezjohannes/scorch-ai-sub008/internal/content"
	"github.com/Cortezjohannes/scorch-ai-sub008/internal/records"
)

// Engine performs extraction. It is stateless between calls: each call
// owns its own accumulators, so one Engine may be shared across
// goroutines without coordination.
type Engine struct {
	colors   []string
	styles   []string
	clothing []string
}

// Option extends the engine's static keyword tables, for productions
// whose vocabulary the defaults don't cover.
type Option func(*Engine)

// WithExtraColors appends color keywords to the wardrobe color table.
func WithExtraColors(colors ...string) Option {
	return func(e *Engine) { e.colors = appendLower(e.colors, colors) }
}

// WithExtraStyles appends style keywords to the wardrobe style table.
func WithExtraStyles(styles ...string) Option {
	return func(e *Engine) { e.styles = appendLower(e.styles, styles) }
}

// WithExtraClothing appends clothing pieces to the piece table.
func WithExtraClothing(pieces ...string) Option {
	return func(e *Engine) { e.clothing = appendLower(e.clothing, pieces) }
}

// NewEngine builds an engine with the built-in vocabulary plus any
// extensions.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		colors:   append([]string(nil), colorVocab...),
		styles:   append([]string(nil), styleVocab...),
		clothing: append([]string(nil), clothingVocab...),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func appendLower(dst []string, extra []string) []string {
	for _, s := range extra {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			dst = append(dst, s)
		}
	}
	return dst
}

// Extract runs the extractor for the given domain over raw text. It
// never returns an error: malformed input degrades through the tiers and
// empty input yields an empty result.
func (e *Engine) Extract(domain records.Domain, raw string) records.Result {
	res := records.Result{Domain: domain}
	switch domain {
	case records.DomainScript:
		res.Script = e.ExtractScript(raw)
	case records.DomainStoryboard:
		res.Storyboard = e.ExtractStoryboard(raw)
	case records.DomainLocation:
		res.Locations = e.ExtractLocations(raw)
	case records.DomainProps:
		res.Props, res.Wardrobe = e.ExtractProps(raw)
	}
	return res
}

// prepare runs the shared front half of the pipeline: normalize, then
// detect. Empty normalized text short-circuits every extractor.
func prepare(raw string) (string, content.Signature, bool) {
	text := content.Normalize(raw)
	if text == "" {
		return "", content.Signature{}, false
	}
	return text, content.Detect(text), true
}
