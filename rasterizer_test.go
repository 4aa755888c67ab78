package sdfatlas

import (
	"errors"
	"image"
	"testing"

	"golang.org/x/image/vector"

	"github.com/gogpu/sdfatlas/text"
	"github.com/gogpu/sdfatlas/text/sdf"
)

func TestRasterizeLayout(t *testing.T) {
	cfg := RasterConfig{MarginFactor: 1.5, GlyphSpacing: 4, PadMultiple: 4}
	b, extents, err := Rasterize(newBoxResolver(), FontSpec{Size: 1}, "a b", cfg)
	if err != nil {
		t.Fatalf("Rasterize error: %v", err)
	}

	// widest glyph 8 * 1.5 = 12; heights (10+4) + (5+4) = 23, padded to 24
	if b.Width != 12 || b.Height != 24 {
		t.Fatalf("bitmap = %dx%d, want 12x24", b.Width, b.Height)
	}

	want := []GlyphExtent{
		{GID: 'a', Rune: 'a', Cluster: 0, Top: 0, Bottom: 14, Ink: image.Rect(3, 2, 9, 12)},
		{GID: 'b', Rune: 'b', Cluster: 2, Top: 14, Bottom: 23, Ink: image.Rect(2, 16, 10, 21)},
	}
	if len(extents) != len(want) {
		t.Fatalf("len(extents) = %d, want %d", len(extents), len(want))
	}
	for i := range want {
		if extents[i] != want[i] {
			t.Errorf("extents[%d] = %+v, want %+v", i, extents[i], want[i])
		}
	}

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			p := image.Pt(x, y)
			inInk := p.In(want[0].Ink) || p.In(want[1].Ink)
			got := b.At(x, y)
			switch {
			case inInk && got != sdf.Ink:
				t.Errorf("(%d,%d) = %d, want ink", x, y, got)
			case !inInk && got != sdf.Background:
				t.Errorf("(%d,%d) = %d, want background", x, y, got)
			}
		}
	}
}

func TestRasterizeNoPadding(t *testing.T) {
	b, _, err := Rasterize(newBoxResolver(), FontSpec{Size: 1}, "b", RasterConfig{MarginFactor: 1, GlyphSpacing: 0})
	if err != nil {
		t.Fatal(err)
	}
	if b.Width != 8 || b.Height != 5 {
		t.Errorf("bitmap = %dx%d, want 8x5", b.Width, b.Height)
	}
}

func TestRasterizeNoInk(t *testing.T) {
	b, extents, err := Rasterize(newBoxResolver(), FontSpec{Size: 1}, "   ", RasterConfig{MarginFactor: 1.25, PadMultiple: 8})
	if err != nil {
		t.Fatalf("Rasterize error: %v", err)
	}
	if b.Width != 0 || b.Height != 0 || len(extents) != 0 {
		t.Errorf("got %dx%d with %d extents, want empty", b.Width, b.Height, len(extents))
	}
}

func TestRasterizeErrors(t *testing.T) {
	if _, _, err := Rasterize(newBoxResolver(), FontSpec{Size: 1}, "", RasterConfig{}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("empty string error = %v, want ErrEmptyInput", err)
	}

	r := &boxResolver{err: text.ErrFontNotFound}
	b, extents, err := Rasterize(r, FontSpec{Family: "Nope", Size: 12}, "a", RasterConfig{})
	if !errors.Is(err, ErrFontResolution) || !errors.Is(err, text.ErrFontNotFound) {
		t.Errorf("error = %v, want ErrFontResolution wrapping ErrFontNotFound", err)
	}
	if b != nil || extents != nil {
		t.Error("Rasterize returned partial output alongside an error")
	}
}

func TestRasterizeGoFont(t *testing.T) {
	cfg := RasterConfig{MarginFactor: 1.25, GlyphSpacing: 16, PadMultiple: 8}
	b, extents, err := Rasterize(text.NewResolver(nil, nil), FontSpec{Family: "Go", Size: 48}, "Hi", cfg)
	if err != nil {
		t.Fatalf("Rasterize error: %v", err)
	}
	if b.Width%8 != 0 || b.Height%8 != 0 {
		t.Errorf("bitmap %dx%d not padded to 8", b.Width, b.Height)
	}
	if len(extents) != 2 || extents[0].Rune != 'H' || extents[1].Rune != 'i' {
		t.Fatalf("extents = %+v, want H and i", extents)
	}

	var ink int
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			v := b.At(x, y)
			if v != sdf.Ink && v != sdf.Background {
				t.Fatalf("(%d,%d) = %d, bitmap is not binary", x, y, v)
			}
			if v != sdf.Ink {
				continue
			}
			ink++
			p := image.Pt(x, y)
			if !p.In(extents[0].Ink) && !p.In(extents[1].Ink) {
				t.Errorf("ink at (%d,%d) outside every glyph box", x, y)
			}
		}
	}
	if ink == 0 {
		t.Error("no ink rasterized")
	}
}

func TestDrawOutlineTranslated(t *testing.T) {
	o := &text.GlyphOutline{Segments: rectSegments(text.Rect{MinX: 0, MinY: 0, MaxX: 2, MaxY: 3})}

	z := vector.NewRasterizer(8, 8)
	drawOutline(z, o.Translate(3, 2))
	mask := image.NewAlpha(image.Rect(0, 0, 8, 8))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	ink := image.Rect(3, 2, 5, 5)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			got := mask.AlphaAt(x, y).A
			if in := image.Pt(x, y).In(ink); (got > 127) != in {
				t.Errorf("(%d,%d) coverage = %d, want ink = %v", x, y, got, in)
			}
		}
	}
}

func TestGlyphExtentDownsample(t *testing.T) {
	e := GlyphExtent{Top: 16, Bottom: 41, Ink: image.Rect(3, 18, 13, 37)}
	got := e.Downsample(4)
	want := GlyphExtent{Top: 4, Bottom: 10, Ink: image.Rect(0, 4, 4, 10)}
	if got != want {
		t.Errorf("Downsample(4) = %+v, want %+v", got, want)
	}
	if e.Downsample(1) != e {
		t.Error("Downsample(1) changed the extent")
	}
}
