// Package sdfatlas generates signed distance field font atlases.
//
// # Overview
//
// Given a font and a string, sdfatlas draws the glyphs in a single column,
// computes a signed distance field over the drawing and stores it as one
// byte per texel. A fragment shader sampling the texture and applying a
// smoothstep around the edge value renders crisp, anti-aliased text at
// any scale from one small texture.
//
// # Quick Start
//
//	import "github.com/gogpu/sdfatlas"
//
//	tex, err := sdfatlas.Generate(sdfatlas.FontSpec{Family: "Go", Size: 32}, "Hello")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	upload(tex.Data, tex.Width, tex.Height) // one 8-bit channel
//	setUniform("spread", tex.Spread)
//
// # Pipeline
//
// A Generator runs five stages, each consuming the previous output:
//
//   - Rasterize: glyph outlines from a GlyphResolver are filled without
//     anti-aliasing at ScaleFactor times the requested size.
//   - sdf.Transform: dead-reckoning distance transform; positive inside.
//   - sdf.Resample: box downsampling by ScaleFactor.
//   - sdf.Quantize: clamp to ±spread and map to 0..255.
//   - Assemble: bundle bytes, dimensions, spread and glyph descriptors.
//
// The stages in text/sdf do not depend on fonts and can be used on any
// binary bitmap.
//
// # Fonts
//
// The default resolver reads text.DefaultRegistry, which carries the Go
// fonts and the Latin Modern families. Register more with
// text.DefaultRegistry().RegisterFile, or pass any GlyphResolver to
// NewGenerator.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Texture
// coordinates in GlyphDescriptor follow the same orientation.
//
// # Logging
//
// sdfatlas is silent by default. See SetLogger.
package sdfatlas
