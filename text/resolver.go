package text

import (
	"math"

	"golang.org/x/text/unicode/norm"
)

// Resolver turns a FontSpec and a string into glyph outlines. It is the
// font service behind the glyph rasterizer: glyph ids come from a Shaper,
// outlines and bounds from the font at FontSpec.Size pixels per em.
//
// Resolver is safe for concurrent use; every call allocates its own
// outline extractor.
type Resolver struct {
	registry *Registry
	shaper   Shaper
}

// NewResolver returns a Resolver over registry using shaper. Nil arguments
// select DefaultRegistry and a BuiltinShaper.
func NewResolver(registry *Registry, shaper Shaper) *Resolver {
	if registry == nil {
		registry = DefaultRegistry()
	}
	if shaper == nil {
		shaper = &BuiltinShaper{}
	}
	return &Resolver{registry: registry, shaper: shaper}
}

// Registry returns the registry the resolver reads fonts from.
func (r *Resolver) Registry() *Registry {
	return r.registry
}

// ResolveGlyphs shapes s with the font named by font and returns one
// outline per shaped glyph, in visual order. The string is NFC-normalized
// first so that precomposed glyphs are preferred over base + combining mark.
// Glyphs without ink are returned with no segments; callers decide whether
// to skip them.
func (r *Resolver) ResolveGlyphs(font FontSpec, s string) ([]*GlyphOutline, error) {
	if font.Size <= 0 || math.IsNaN(font.Size) || math.IsInf(font.Size, 0) {
		return nil, ErrInvalidSize
	}

	source, err := r.registry.Source(font.Family)
	if err != nil {
		return nil, err
	}
	parsed, err := source.Parsed()
	if err != nil {
		return nil, err
	}

	runes := []rune(norm.NFC.String(s))
	shaped, err := r.shaper.Shape(string(runes), source, font.Size)
	if err != nil {
		return nil, err
	}

	extractor := NewOutlineExtractor()
	outlines := make([]*GlyphOutline, 0, len(shaped))
	for _, g := range shaped {
		var rn rune
		if g.Cluster >= 0 && g.Cluster < len(runes) {
			rn = runes[g.Cluster]
		}

		outline, err := extractor.ExtractOutline(parsed, g.GID, font.Size)
		if err != nil {
			return nil, &GlyphError{Rune: rn, GID: g.GID, Err: err}
		}
		outline.Cluster = g.Cluster
		outline.Rune = rn
		outlines = append(outlines, outline)
	}

	return outlines, nil
}

// BoundingRect returns the pixel bounds of g. Glyphs without ink report
// an empty rectangle.
func (r *Resolver) BoundingRect(g *GlyphOutline) Rect {
	if g == nil || g.IsEmpty() {
		return Rect{}
	}
	return g.Bounds
}
