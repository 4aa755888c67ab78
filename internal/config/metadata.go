package config

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/sdfatlas"
)

// Metadata describes a written atlas: everything a renderer needs besides
// the texels.
type Metadata struct {
	Font   string  `toml:"font" yaml:"font"`
	Size   float64 `toml:"size" yaml:"size"`
	Text   string  `toml:"text" yaml:"text"`
	Image  string  `toml:"image" yaml:"image"`
	Width  uint32  `toml:"width" yaml:"width"`
	Height uint32  `toml:"height" yaml:"height"`
	Spread float32 `toml:"spread" yaml:"spread"`

	Glyphs []Glyph `toml:"glyph" yaml:"glyphs"`
}

// Glyph is a GlyphDescriptor in sidecar form.
type Glyph struct {
	Index int     `toml:"index" yaml:"index"`
	GID   uint16  `toml:"gid" yaml:"gid"`
	Rune  string  `toml:"rune,omitempty" yaml:"rune,omitempty"`
	U0    float32 `toml:"u0" yaml:"u0"`
	V0    float32 `toml:"v0" yaml:"v0"`
	U1    float32 `toml:"u1" yaml:"u1"`
	V1    float32 `toml:"v1" yaml:"v1"`
}

// NewMetadata describes tex generated for s with font and saved as image.
func NewMetadata(font sdfatlas.FontSpec, s, image string, tex *sdfatlas.Texture) Metadata {
	m := Metadata{
		Font:   font.Family,
		Size:   font.Size,
		Text:   s,
		Image:  image,
		Width:  tex.Width,
		Height: tex.Height,
		Spread: tex.Spread,
		Glyphs: make([]Glyph, len(tex.Glyphs)),
	}
	for i, d := range tex.Glyphs {
		g := Glyph{Index: d.Index, GID: uint16(d.GID), U0: d.U0, V0: d.V0, U1: d.U1, V1: d.V1}
		if d.Rune != 0 {
			g.Rune = string(d.Rune)
		}
		m.Glyphs[i] = g
	}
	return m
}

// Encode writes m to w in format.
func (m Metadata) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(m)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// DecodeMetadata reads a sidecar written by Encode.
func DecodeMetadata(r io.Reader, format Format) (Metadata, error) {
	var m Metadata
	var err error
	switch format {
	case FormatTOML:
		err = toml.NewDecoder(r).Decode(&m)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&m)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return m, err
}
