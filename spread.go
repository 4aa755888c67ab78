package sdfatlas

import (
	"fmt"
)

// spreadReference is the glyph whose width sets the default spread.
const spreadReference = "!"

// EstimateSpread returns half the bounding width of "!" in font, about
// half a stroke width.
func EstimateSpread(resolver GlyphResolver, font FontSpec) (float32, error) {
	outlines, err := resolver.ResolveGlyphs(font, spreadReference)
	if err != nil {
		return 0, &FontResolutionError{Font: font, Err: err}
	}
	for _, o := range outlines {
		if w := resolver.BoundingRect(o).Width(); w > 0 {
			return float32(w / 2), nil
		}
	}
	return 0, &FontResolutionError{
		Font: font,
		Err:  fmt.Errorf("%w: %q", errNoReferenceInk, spreadReference),
	}
}
