package sdfatlas

import (
	"fmt"
	"math"

	"github.com/gogpu/sdfatlas/text"
)

// DescriptorMode selects which glyph descriptors a Texture carries.
type DescriptorMode uint8

const (
	// DescriptorWholeTexture emits a single descriptor covering the full
	// [0,1]x[0,1] extent. Consumers treat the texture as one glyph run.
	DescriptorWholeTexture DescriptorMode = iota

	// DescriptorPerGlyph emits one descriptor per rasterized glyph band.
	DescriptorPerGlyph
)

// String returns the mode name used in config files and CLI flags.
func (m DescriptorMode) String() string {
	switch m {
	case DescriptorWholeTexture:
		return "whole"
	case DescriptorPerGlyph:
		return "per-glyph"
	default:
		return fmt.Sprintf("DescriptorMode(%d)", m)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m DescriptorMode) MarshalText() ([]byte, error) {
	if m > DescriptorPerGlyph {
		return nil, &ConfigError{Field: "Descriptors", Reason: "unknown mode " + m.String()}
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *DescriptorMode) UnmarshalText(b []byte) error {
	switch string(b) {
	case "", "whole":
		*m = DescriptorWholeTexture
	case "per-glyph":
		*m = DescriptorPerGlyph
	default:
		return &ConfigError{Field: "Descriptors", Reason: fmt.Sprintf("unknown mode %q", b)}
	}
	return nil
}

// Config holds atlas generation parameters.
//
// Distances, GlyphSpacing and Spread are measured in raster pixels, that
// is at FontSpec.Size * ScaleFactor pixels per em.
type Config struct {
	// ScaleFactor is the supersampling factor. Glyphs are rasterized at
	// ScaleFactor times the requested size and the distance field is box
	// downsampled by the same factor.
	// Default: 8
	ScaleFactor int `toml:"scale_factor" yaml:"scale_factor"`

	// MarginFactor widens the bitmap beyond the widest glyph so the
	// distance field has room to fall off on both sides.
	// Default: 1.25
	MarginFactor float64 `toml:"margin_factor" yaml:"margin_factor"`

	// GlyphSpacing is the vertical gap between glyph bands.
	// Default: 32
	GlyphSpacing int `toml:"glyph_spacing" yaml:"glyph_spacing"`

	// Spread is the quantization radius. Zero selects half the bounding
	// width of "!" at the raster size.
	// Default: 0
	Spread float32 `toml:"spread" yaml:"spread"`

	// Descriptors selects the glyph descriptors of the result.
	// Default: DescriptorWholeTexture
	Descriptors DescriptorMode `toml:"descriptors" yaml:"descriptors"`

	// Shaper names the shaper used when NewGenerator builds its own
	// resolver: text.ShaperBuiltin or text.ShaperGoText.
	// Default: text.ShaperBuiltin
	Shaper string `toml:"shaper" yaml:"shaper"`

	// Workers bounds how many strings GenerateAll processes at once.
	// Zero selects GOMAXPROCS.
	// Default: 0
	Workers int `toml:"workers" yaml:"workers"`
}

// DefaultConfig returns the default generation configuration.
func DefaultConfig() Config {
	return Config{
		ScaleFactor:  8,
		MarginFactor: 1.25,
		GlyphSpacing: 32,
		Descriptors:  DescriptorWholeTexture,
		Shaper:       text.ShaperBuiltin,
	}
}

// Validate checks if the configuration is valid and returns an error if not.
func (c *Config) Validate() error {
	if c.ScaleFactor < 1 {
		return &ConfigError{Field: "ScaleFactor", Reason: "must be at least 1"}
	}
	if c.ScaleFactor > 64 {
		return &ConfigError{Field: "ScaleFactor", Reason: "must be at most 64"}
	}
	if math.IsNaN(c.MarginFactor) || c.MarginFactor < 1 || c.MarginFactor > 4 {
		return &ConfigError{Field: "MarginFactor", Reason: "must be in [1, 4]"}
	}
	if c.GlyphSpacing < 0 {
		return &ConfigError{Field: "GlyphSpacing", Reason: "must not be negative"}
	}
	if s := float64(c.Spread); math.IsNaN(s) || math.IsInf(s, 0) || s < 0 {
		return &ConfigError{Field: "Spread", Reason: "must be zero or a positive finite value"}
	}
	if c.Descriptors > DescriptorPerGlyph {
		return &ConfigError{Field: "Descriptors", Reason: "unknown mode " + c.Descriptors.String()}
	}
	if c.Workers < 0 {
		return &ConfigError{Field: "Workers", Reason: "must not be negative"}
	}
	if _, err := text.ShaperByName(c.Shaper); err != nil {
		return &ConfigError{Field: "Shaper", Reason: fmt.Sprintf("unknown shaper %q", c.Shaper)}
	}
	return nil
}

// raster returns the rasterizer settings derived from c.
func (c *Config) raster() RasterConfig {
	return RasterConfig{
		MarginFactor: c.MarginFactor,
		GlyphSpacing: c.GlyphSpacing,
		PadMultiple:  c.ScaleFactor,
	}
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "sdfatlas: invalid config." + e.Field + ": " + e.Reason
}
