package text

import (
	"errors"
	"strings"
)

// ShapedGlyph is a glyph id produced by shaping, with its pen position.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID GlyphID

	// Cluster is the source rune index in the original text.
	Cluster int

	// X is the horizontal position relative to the text origin.
	X float64

	// XAdvance is the horizontal advance to the next glyph.
	XAdvance float64
}

// Shaper converts text to glyph ids.
// Implementations provide different levels of text shaping support:
//   - BuiltinShaper: one glyph per rune through the font's cmap
//   - GoTextShaper: HarfBuzz shaping through go-text/typesetting
type Shaper interface {
	// Shape converts text into glyphs of source at size pixels per em.
	Shape(text string, source *FontSource, size float64) ([]ShapedGlyph, error)
}

// Shaper names accepted by ShaperByName.
const (
	ShaperBuiltin = "builtin"
	ShaperGoText  = "gotext"
)

// ErrUnknownShaper is returned by ShaperByName for an unrecognized name.
var ErrUnknownShaper = errors.New("text: unknown shaper")

// ShaperByName returns a new shaper for the given name.
// An empty name selects the builtin shaper.
func ShaperByName(name string) (Shaper, error) {
	switch strings.ToLower(name) {
	case "", ShaperBuiltin:
		return &BuiltinShaper{}, nil
	case ShaperGoText:
		return NewGoTextShaper(), nil
	default:
		return nil, ErrUnknownShaper
	}
}
