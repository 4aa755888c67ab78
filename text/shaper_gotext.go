package text

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// GoTextShaper provides HarfBuzz-level text shaping using go-text/typesetting.
// Ligatures and contextual forms map several runes onto one glyph, which the
// resolver then rasterizes as a single band.
//
// GoTextShaper is safe for concurrent use. The parsed go-text font is kept
// on the FontSource, so the shaper holds no per-font state and a source
// dropped by the registry takes its shaping data with it. HarfbuzzShaper
// instances are pooled via sync.Pool since they are not concurrent-safe.
type GoTextShaper struct {
	shaperPool sync.Pool
}

// NewGoTextShaper creates a new GoTextShaper.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Shape implements the Shaper interface.
func (s *GoTextShaper) Shape(text string, source *FontSource, size float64) ([]ShapedGlyph, error) {
	if text == "" {
		return nil, nil
	}

	goTextFont, err := source.shapingFont()
	if err != nil {
		return nil, err
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(goTextFont),
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hbShaper := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hbShaper.Shape(input)
	s.shaperPool.Put(hbShaper)

	return convertGlyphs(output.Glyphs), nil
}

// shapingFont returns the go-text font of s, parsing it on first use.
func (s *FontSource) shapingFont() (*font.Font, error) {
	s.copyCheck()

	s.mu.RLock()
	f := s.shaping
	s.mu.RUnlock()
	if f != nil {
		return f, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.shaping != nil {
		return s.shaping, nil
	}
	if s.data == nil {
		return nil, ErrSourceClosed
	}

	face, err := font.ParseTTF(bytes.NewReader(s.data))
	if err != nil {
		return nil, err
	}
	s.shaping = face.Font
	return s.shaping, nil
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// convertGlyphs converts go-text/typesetting output glyphs to ShapedGlyph.
func convertGlyphs(glyphs []shaping.Glyph) []ShapedGlyph {
	if len(glyphs) == 0 {
		return nil
	}

	result := make([]ShapedGlyph, len(glyphs))

	var x float64
	for i, g := range glyphs {
		adv := fixedToFloat64(g.Advance)
		result[i] = ShapedGlyph{
			GID:      GlyphID(uint16(g.GlyphID)), //nolint:gosec // GlyphID fits uint16 for sfnt fonts
			Cluster:  g.TextIndex(),
			X:        x + fixedToFloat64(g.XOffset),
			XAdvance: adv,
		}
		x += adv
	}

	return result
}
