package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gogpu/sdfatlas"
)

func sampleTexture() *sdfatlas.Texture {
	return &sdfatlas.Texture{
		Data:   make([]byte, 4*6),
		Width:  4,
		Height: 6,
		Spread: 5.5,
		Glyphs: []sdfatlas.GlyphDescriptor{
			{Index: 0, GID: 36, Rune: 'A', U0: 0, V0: 0, U1: 1, V1: 0.5},
			{Index: 1, GID: 37, Rune: 'B', U0: 0, V0: 0.5, U1: 1, V1: 1},
		},
	}
}

func TestMetadataEncodeDecode(t *testing.T) {
	font := sdfatlas.FontSpec{Family: "Go", Size: 32}
	m := NewMetadata(font, "AB", "atlas.png", sampleTexture())

	for _, format := range []Format{FormatTOML, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := m.Encode(&buf, format); err != nil {
				t.Fatalf("Encode error: %v", err)
			}

			got, err := DecodeMetadata(&buf, format)
			if err != nil {
				t.Fatalf("DecodeMetadata error: %v", err)
			}
			if got.Width != 4 || got.Height != 6 || got.Spread != 5.5 || got.Image != "atlas.png" {
				t.Errorf("decoded = %+v", got)
			}
			if len(got.Glyphs) != 2 || got.Glyphs[1].Rune != "B" || got.Glyphs[1].V0 != 0.5 {
				t.Errorf("glyphs = %+v", got.Glyphs)
			}
		})
	}
}

func TestMetadataWholeTextureOmitsRune(t *testing.T) {
	tex := sampleTexture()
	tex.Glyphs = []sdfatlas.GlyphDescriptor{{Index: 0, U1: 1, V1: 1}}

	var buf bytes.Buffer
	if err := NewMetadata(sdfatlas.FontSpec{Family: "Go", Size: 12}, "x", "x.png", tex).Encode(&buf, FormatTOML); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "rune") {
		t.Errorf("whole-texture sidecar has a rune key:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "[[glyph]]") {
		t.Errorf("sidecar missing glyph table:\n%s", buf.String())
	}
}
