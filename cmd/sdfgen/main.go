// Command sdfgen renders a string into a signed distance field atlas and
// writes it as an 8-bit grayscale PNG, optionally with a metadata sidecar.
//
//	sdfgen -font "Go" -size 32 -text "Hello" -out hello.png -meta hello.toml
//
// Extra positional arguments are rendered as separate atlases named after
// -out with an index suffix (hello-0.png, hello-1.png, ...).
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/segment"
	"github.com/anthonynsimon/bild/transform"

	"github.com/gogpu/sdfatlas"
	"github.com/gogpu/sdfatlas/internal/config"
	"github.com/gogpu/sdfatlas/text"
)

func main() {
	var (
		cfgPath  = flag.String("config", "", "settings file (.toml, .yaml)")
		family   = flag.String("font", "", "font family")
		size     = flag.Float64("size", 0, "font size in pixels per em")
		input    = flag.String("text", "", "string to render")
		output   = flag.String("out", "atlas.png", "output PNG")
		meta     = flag.String("meta", "", "metadata sidecar (.toml, .yaml)")
		perGlyph = flag.Bool("per-glyph", false, "emit one descriptor per glyph")
		shaper   = flag.String("shaper", "", "shaper: builtin or gotext")
		spread   = flag.Float64("spread", 0, "quantization spread in raster pixels (0 = estimate)")
		scale    = flag.Int("scale", 0, "supersampling factor")
		preview  = flag.Int("preview", 0, "also write a thresholded preview magnified this many times (0 = off)")
		verbose  = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		sdfatlas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	settings := config.Default()
	if *cfgPath != "" {
		var err error
		if settings, err = config.Load(*cfgPath); err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "font":
			settings.Font = *family
		case "size":
			settings.Size = *size
		case "text":
			settings.Text = *input
		case "per-glyph":
			if *perGlyph {
				settings.Atlas.Descriptors = sdfatlas.DescriptorPerGlyph
			}
		case "shaper":
			settings.Atlas.Shaper = *shaper
		case "spread":
			settings.Atlas.Spread = float32(*spread)
		case "scale":
			settings.Atlas.ScaleFactor = *scale
		}
	})

	inputs := flag.Args()
	if settings.Text != "" {
		inputs = append([]string{settings.Text}, inputs...)
	}
	if len(inputs) == 0 {
		log.Fatal("Nothing to render: pass -text or positional strings")
	}

	if err := run(settings, inputs, *output, *meta, *preview); err != nil {
		log.Fatal(err)
	}
}

func run(settings config.File, inputs []string, output, meta string, preview int) error {
	if preview < 0 {
		return fmt.Errorf("invalid -preview %d: want 0 (off) or a magnification of 1 or more", preview)
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	registry := text.DefaultRegistry()
	if err := settings.RegisterFonts(registry); err != nil {
		return err
	}
	shaper, err := text.ShaperByName(settings.Atlas.Shaper)
	if err != nil {
		return err
	}

	g := sdfatlas.NewGenerator(text.NewResolver(registry, shaper), settings.Atlas)
	font := settings.FontSpec()

	textures, err := g.GenerateAll(font, inputs)
	if err != nil {
		return err
	}

	for i, tex := range textures {
		out := output
		if len(textures) > 1 {
			out = indexed(output, i)
		}
		if err := imgio.Save(out, tex.Image(), imgio.PNGEncoder()); err != nil {
			return fmt.Errorf("failed to save %s: %w", out, err)
		}
		log.Printf("Atlas saved to %s (%dx%d, spread %.2f)\n", out, tex.Width, tex.Height, tex.Spread)

		if preview > 0 {
			p := indexed(out, -1)
			if err := imgio.Save(p, magnify(tex, preview), imgio.PNGEncoder()); err != nil {
				return fmt.Errorf("failed to save %s: %w", p, err)
			}
		}

		if meta != "" {
			m := meta
			if len(textures) > 1 {
				m = indexed(meta, i)
			}
			if err := writeMetadata(m, config.NewMetadata(font, inputs[i], filepath.Base(out), tex)); err != nil {
				return err
			}
		}
	}
	return nil
}

// magnify upscales the field bilinearly by k and cuts it at the edge
// value, which is what a shader does when sampling the atlas at a large
// size. k == 1 thresholds the atlas as is.
func magnify(tex *sdfatlas.Texture, k int) *image.Gray {
	var img image.Image = tex.Image()
	if k > 1 {
		img = transform.Resize(img, int(tex.Width)*k, int(tex.Height)*k, transform.Linear)
	}
	return segment.Threshold(img, 128)
}

func writeMetadata(path string, m config.Metadata) error {
	format, err := config.FormatOf(path)
	if err != nil {
		return err
	}
	// #nosec G304 -- Output path is provided by the user
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := m.Encode(f, format); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// indexed inserts "-i" before the extension of path; i < 0 inserts
// "-preview".
func indexed(path string, i int) string {
	ext := filepath.Ext(path)
	suffix := "-preview"
	if i >= 0 {
		suffix = fmt.Sprintf("-%d", i)
	}
	return strings.TrimSuffix(path, ext) + suffix + ext
}
