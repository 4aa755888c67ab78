// Package text resolves fonts and strings into glyph outlines.
//
// The pipeline separates concerns the same way for every caller:
//
//   - Registry: family name -> font data, parsed lazily and cached
//   - FontSource: one parsed font file, shared and safe for concurrent use
//   - Shaper: string -> glyph ids (BuiltinShaper or GoTextShaper)
//   - OutlineExtractor: glyph id -> vector outline in pixels
//   - Resolver: ties the above together behind ResolveGlyphs
//
// # Example usage
//
//	resolver := text.NewResolver(nil, nil) // default registry, builtin shaper
//	outlines, err := resolver.ResolveGlyphs(text.FontSpec{Family: "Go", Size: 64}, "Hello")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Custom fonts
//
//	reg := text.NewRegistry()
//	if err := reg.RegisterFile("Roboto", "Roboto-Regular.ttf"); err != nil {
//	    log.Fatal(err)
//	}
//	resolver := text.NewResolver(reg, text.NewGoTextShaper())
//
// Outline coordinates follow golang.org/x/image/font/sfnt: pixels, with
// the Y axis growing downward from the baseline.
package text
