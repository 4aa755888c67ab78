// Package config loads sdfgen settings from TOML or YAML files and writes
// the metadata sidecar that accompanies a generated atlas.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/sdfatlas"
	"github.com/gogpu/sdfatlas/text"
)

// Format is a settings file encoding.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for a file extension that is neither TOML
// nor YAML.
var ErrUnknownFormat = errors.New("config: unknown file format")

// FormatOf picks the format from the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// File is the on-disk shape of an sdfgen configuration:
//
//	font = "Latin Modern Roman"
//	size = 48
//	text = "Hello"
//
//	[fonts]
//	Custom = "fonts/custom.ttf"
//
//	[atlas]
//	scale_factor = 8
//	descriptors = "per-glyph"
type File struct {
	Font string  `toml:"font" yaml:"font"`
	Size float64 `toml:"size" yaml:"size"`
	Text string  `toml:"text" yaml:"text"`

	// Fonts maps extra family names to font files. Relative paths are
	// resolved against the directory of the configuration file.
	Fonts map[string]string `toml:"fonts" yaml:"fonts"`

	Atlas sdfatlas.Config `toml:"atlas" yaml:"atlas"`
}

// Default returns the settings used when no file is given.
func Default() File {
	return File{
		Font:  text.DefaultFamily,
		Size:  32,
		Atlas: sdfatlas.DefaultConfig(),
	}
}

// Load reads path over Default. Unknown keys are rejected.
func Load(path string) (File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return File{}, err
	}

	// #nosec G304 -- Config file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: %w", err)
	}

	f, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return File{}, fmt.Errorf("config: %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for family, p := range f.Fonts {
		if !filepath.IsAbs(p) {
			f.Fonts[family] = filepath.Join(dir, p)
		}
	}
	return f, nil
}

// Decode reads settings in format from r over Default.
func Decode(r io.Reader, format Format) (File, error) {
	f := Default()

	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return File{}, err
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
			return File{}, err
		}
	default:
		return File{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return f, nil
}

// Validate checks the font request and the atlas configuration.
func (f *File) Validate() error {
	if !(f.Size > 0) {
		return fmt.Errorf("config: size %v must be positive", f.Size)
	}
	return f.Atlas.Validate()
}

// FontSpec returns the font request of f.
func (f *File) FontSpec() sdfatlas.FontSpec {
	return sdfatlas.FontSpec{Family: f.Font, Size: f.Size}
}

// RegisterFonts adds the extra font files of f to r.
func (f *File) RegisterFonts(r *text.Registry) error {
	for family, path := range f.Fonts {
		if err := r.RegisterFile(family, path); err != nil {
			return fmt.Errorf("config: font %q: %w", family, err)
		}
	}
	return nil
}
