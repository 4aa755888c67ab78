package sdfatlas

import (
	"fmt"

	"github.com/gogpu/sdfatlas/text"
	"github.com/gogpu/sdfatlas/text/sdf"
)

// Generator turns a font and a string into a signed distance field atlas.
//
// The pipeline runs synchronously in the calling goroutine:
//
//	Rasterize -> sdf.Transform -> sdf.Resample -> sdf.Quantize -> Assemble
//
// Every buffer is allocated per call, so a Generator is safe for
// concurrent use as long as its resolver is.
type Generator struct {
	resolver GlyphResolver
	cfg      Config
}

// NewGenerator creates a generator. A nil resolver selects a
// text.Resolver over text.DefaultRegistry using cfg.Shaper.
// The configuration is validated by Generate.
func NewGenerator(resolver GlyphResolver, cfg Config) *Generator {
	if resolver == nil {
		// An unknown name falls back to the builtin shaper here; Generate
		// still rejects it through Validate.
		shaper, _ := text.ShaperByName(cfg.Shaper)
		resolver = text.NewResolver(text.DefaultRegistry(), shaper)
	}
	return &Generator{resolver: resolver, cfg: cfg}
}

// Config returns the generator configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// Generate renders s with font and returns the finished texture. The
// glyphs are rasterized at font.Size * ScaleFactor and downsampled back,
// so the texture is about one font size wide per glyph column.
//
// Generate either returns a complete Texture or an error, never both.
func (g *Generator) Generate(font FontSpec, s string) (*Texture, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	if s == "" {
		return nil, ErrEmptyInput
	}

	log := Logger()
	factor := g.cfg.ScaleFactor
	raster := font.Scaled(float64(factor))

	spread := g.cfg.Spread
	if spread == 0 {
		var err error
		spread, err = EstimateSpread(g.resolver, raster)
		if err != nil {
			return nil, err
		}
	}
	log.Debug("sdfatlas: spread", "font", font, "spread", spread, "estimated", g.cfg.Spread == 0)

	bitmap, extents, err := Rasterize(g.resolver, raster, s, g.cfg.raster())
	if err != nil {
		return nil, err
	}
	if len(extents) == 0 {
		return nil, fmt.Errorf("%w: %q has no visible glyphs", ErrInvalidDimensions, s)
	}

	field, err := sdf.Transform(bitmap)
	if err != nil {
		return nil, fmt.Errorf("sdfatlas: distance transform: %w", err)
	}
	lo, hi := field.Range()
	log.Debug("sdfatlas: distance field", "width", field.Width, "height", field.Height, "min", lo, "max", hi)

	small, err := sdf.Resample(field, factor)
	if err != nil {
		return nil, fmt.Errorf("sdfatlas: resample: %w", err)
	}

	data, err := sdf.Quantize(small, spread)
	if err != nil {
		return nil, fmt.Errorf("sdfatlas: quantize: %w", err)
	}

	for i := range extents {
		extents[i] = extents[i].Downsample(factor)
	}

	tex, err := Assemble(data, small.Width, small.Height, spread, extents, g.cfg.Descriptors)
	if err != nil {
		return nil, err
	}
	log.Debug("sdfatlas: atlas assembled", "width", tex.Width, "height", tex.Height, "descriptors", len(tex.Glyphs))
	return tex, nil
}

// Generate renders s with font using DefaultConfig and the default
// registry.
func Generate(font FontSpec, s string) (*Texture, error) {
	return NewGenerator(nil, DefaultConfig()).Generate(font, s)
}
