package text

// BuiltinShaper maps each rune to a glyph through the font's cmap.
// It performs no ligature substitution, kerning or reordering.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

// Shape implements the Shaper interface.
func (s *BuiltinShaper) Shape(text string, source *FontSource, size float64) ([]ShapedGlyph, error) {
	if text == "" {
		return nil, nil
	}

	parsed, err := source.Parsed()
	if err != nil {
		return nil, err
	}

	runes := []rune(text)
	result := make([]ShapedGlyph, 0, len(runes))

	var x float64
	for cluster, r := range runes {
		gid := parsed.GlyphIndex(r)
		advance := parsed.GlyphAdvance(gid, size)

		result = append(result, ShapedGlyph{
			GID:      GlyphID(gid),
			Cluster:  cluster,
			X:        x,
			XAdvance: advance,
		})
		x += advance
	}

	return result, nil
}
