package sdfatlas

import (
	"image"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/sdfatlas/text"
	"github.com/gogpu/sdfatlas/text/sdf"
)

// FontSpec names a font family and a size in pixels per em.
type FontSpec = text.FontSpec

// GlyphResolver is the font service the rasterizer depends on.
// *text.Resolver is the default implementation; anything that can map a
// string to outlines (a native font API, a glyph cache) can stand in.
type GlyphResolver interface {
	// ResolveGlyphs returns one outline per glyph of s, in visual order.
	ResolveGlyphs(font FontSpec, s string) ([]*text.GlyphOutline, error)

	// BoundingRect returns the pixel bounds of g, y axis pointing down.
	BoundingRect(g *text.GlyphOutline) text.Rect
}

// RasterConfig controls glyph column layout.
type RasterConfig struct {
	// MarginFactor scales the widest glyph to get the bitmap width.
	MarginFactor float64

	// GlyphSpacing is the vertical gap added below every glyph, in pixels.
	// Half of it sits above the glyph inside its band.
	GlyphSpacing int

	// PadMultiple rounds both bitmap dimensions up to a multiple of it.
	// Values below 1 mean no padding.
	PadMultiple int
}

// GlyphExtent locates one rasterized glyph in the bitmap.
type GlyphExtent struct {
	// GID is the glyph id in the font.
	GID text.GlyphID

	// Rune is the source rune the glyph was shaped from.
	Rune rune

	// Cluster is the index of that rune in the normalized input.
	Cluster int

	// Top and Bottom delimit the glyph's band: rows [Top, Bottom).
	Top, Bottom int

	// Ink is the pixel box covering the glyph outline.
	Ink image.Rectangle
}

// Downsample maps e onto a bitmap reduced by factor. Band edges round
// down so consecutive bands stay contiguous; the ink box grows outward.
func (e GlyphExtent) Downsample(factor int) GlyphExtent {
	if factor <= 1 {
		return e
	}
	e.Top /= factor
	e.Bottom /= factor
	e.Ink = image.Rect(
		e.Ink.Min.X/factor, e.Ink.Min.Y/factor,
		ceilDiv(e.Ink.Max.X, factor), ceilDiv(e.Ink.Max.Y, factor),
	)
	return e
}

// placedGlyph is a resolved outline with ink together with its bounds.
type placedGlyph struct {
	outline *text.GlyphOutline
	bounds  text.Rect
}

// Rasterize draws the glyphs of s in a single centered column, white ink
// on black, without anti-aliasing. Glyphs without ink are skipped and
// take no space. The returned bitmap is strictly binary: every sample is
// sdf.Background or sdf.Ink.
//
// An empty s fails with ErrEmptyInput; a font the resolver cannot serve
// fails with a *FontResolutionError. If no glyph has ink the bitmap is
// empty (0x0).
func Rasterize(resolver GlyphResolver, font FontSpec, s string, cfg RasterConfig) (*sdf.Bitmap, []GlyphExtent, error) {
	if s == "" {
		return nil, nil, ErrEmptyInput
	}

	outlines, err := resolver.ResolveGlyphs(font, s)
	if err != nil {
		return nil, nil, &FontResolutionError{Font: font, Err: err}
	}

	spacing := float64(max(cfg.GlyphSpacing, 0))
	margin := max(cfg.MarginFactor, 1)

	glyphs := make([]placedGlyph, 0, len(outlines))
	var maxWidth, totalHeight float64
	for _, o := range outlines {
		r := resolver.BoundingRect(o)
		if !(r.Width() > 0) || !(r.Height() > 0) {
			continue
		}
		glyphs = append(glyphs, placedGlyph{outline: o, bounds: r})
		maxWidth = max(maxWidth, r.Width())
		totalHeight += r.Height() + spacing
	}
	if len(glyphs) == 0 {
		return sdf.NewBitmap(0, 0), nil, nil
	}

	width := padTo(int(math.Ceil(maxWidth*margin)), cfg.PadMultiple)
	height := padTo(int(math.Ceil(totalHeight)), cfg.PadMultiple)

	z := vector.NewRasterizer(width, height)
	extents := make([]GlyphExtent, 0, len(glyphs))

	var y float64
	for _, g := range glyphs {
		w, h := g.bounds.Width(), g.bounds.Height()
		left := (float64(width) - w) / 2
		top := y + spacing/2

		drawOutline(z, g.outline.Translate(float32(left-g.bounds.MinX), float32(top-g.bounds.MinY)))

		extents = append(extents, GlyphExtent{
			GID:     g.outline.GID,
			Rune:    g.outline.Rune,
			Cluster: g.outline.Cluster,
			Top:     int(math.Round(y)),
			Bottom:  int(math.Round(y + h + spacing)),
			Ink: image.Rect(
				int(math.Floor(left)), int(math.Floor(top)),
				int(math.Ceil(left+w)), int(math.Ceil(top+h)),
			),
		})
		y += h + spacing
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	bitmap := sdf.NewBitmap(width, height)
	threshold(bitmap.Pix, mask.Pix)

	Logger().Debug("sdfatlas: rasterized",
		"font", font, "width", width, "height", height,
		"glyphs", len(glyphs), "skipped", len(outlines)-len(glyphs))

	return bitmap, extents, nil
}

// drawOutline adds the contours of o to z.
func drawOutline(z *vector.Rasterizer, o *text.GlyphOutline) {
	started := false
	for _, seg := range o.Segments {
		p := seg.Points
		switch seg.Op {
		case text.OutlineOpMoveTo:
			if started {
				z.ClosePath()
			}
			z.MoveTo(p[0].X, p[0].Y)
			started = true
		case text.OutlineOpLineTo:
			z.LineTo(p[0].X, p[0].Y)
		case text.OutlineOpQuadTo:
			z.QuadTo(p[0].X, p[0].Y, p[1].X, p[1].Y)
		case text.OutlineOpCubicTo:
			z.CubeTo(p[0].X, p[0].Y, p[1].X, p[1].Y, p[2].X, p[2].Y)
		}
	}
	if started {
		z.ClosePath()
	}
}

// threshold binarizes coverage: anything above half becomes ink.
func threshold(dst, coverage []byte) {
	for i, a := range coverage {
		if a > 127 {
			dst[i] = sdf.Ink
		} else {
			dst[i] = sdf.Background
		}
	}
}

// padTo rounds n up to a multiple of m.
func padTo(n, m int) int {
	if m <= 1 {
		return n
	}
	return ceilDiv(n, m) * m
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
