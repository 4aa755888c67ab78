package sdfatlas

import (
	"fmt"
	"image"

	"github.com/gogpu/sdfatlas/text"
)

// GlyphDescriptor locates a glyph run in a Texture with normalized
// texture coordinates, origin at the top-left.
type GlyphDescriptor struct {
	// Index is the descriptor's position in Texture.Glyphs.
	Index int

	// GID and Rune identify the glyph. Both are zero for the
	// whole-texture descriptor.
	GID  text.GlyphID
	Rune rune

	// Atlas coordinates (normalized 0-1).
	U0, V0, U1, V1 float32
}

// Texture is a finished signed distance field atlas: one 8-bit sample per
// texel, row-major. A sample of 127 or 128 lies on the glyph edge; values
// above are inside. Spread is the distance, in raster pixels, that maps to
// the ends of the byte range; shaders smoothstep against it.
//
// A Texture is never modified after Assemble returns it.
type Texture struct {
	Data   []byte
	Width  uint32
	Height uint32
	Spread float32
	Glyphs []GlyphDescriptor
}

// Image returns the texture as a grayscale image sharing Data.
func (t *Texture) Image() *image.Gray {
	return &image.Gray{
		Pix:    t.Data,
		Stride: int(t.Width),
		Rect:   image.Rect(0, 0, int(t.Width), int(t.Height)),
	}
}

// Assemble bundles quantized data into a Texture. extents must already be
// in texture pixels (see GlyphExtent.Downsample); they are only read in
// DescriptorPerGlyph mode.
func Assemble(data []byte, width, height int, spread float32, extents []GlyphExtent, mode DescriptorMode) (*Texture, error) {
	if width < 0 || height < 0 || len(data) != width*height {
		return nil, fmt.Errorf("%w: %d bytes for a %dx%d texture", ErrInvalidDimensions, len(data), width, height)
	}
	if !(spread > 0) {
		return nil, fmt.Errorf("%w: spread %v", ErrInvalidParameter, spread)
	}

	var glyphs []GlyphDescriptor
	switch mode {
	case DescriptorWholeTexture:
		glyphs = []GlyphDescriptor{{Index: 0, U0: 0, V0: 0, U1: 1, V1: 1}}
	case DescriptorPerGlyph:
		if height == 0 {
			break
		}
		glyphs = make([]GlyphDescriptor, len(extents))
		for i, e := range extents {
			glyphs[i] = GlyphDescriptor{
				Index: i,
				GID:   e.GID,
				Rune:  e.Rune,
				U0:    0,
				V0:    float32(e.Top) / float32(height),
				U1:    1,
				V1:    float32(min(e.Bottom, height)) / float32(height),
			}
		}
	default:
		return nil, &ConfigError{Field: "Descriptors", Reason: "unknown mode " + mode.String()}
	}

	return &Texture{
		Data:   data,
		Width:  uint32(width),
		Height: uint32(height),
		Spread: spread,
		Glyphs: glyphs,
	}, nil
}
