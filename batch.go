package sdfatlas

import (
	"fmt"
	"runtime"

	"github.com/gogpu/sdfatlas/internal/parallel"
)

// GenerateAll renders every input with font, one independent pipeline per
// string, running up to Config.Workers of them at once. The result is
// index-aligned with inputs. If any input fails, GenerateAll returns the
// error of the lowest failing index and no textures.
func (g *Generator) GenerateAll(font FontSpec, inputs []string) ([]*Texture, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, nil
	}

	workers := g.cfg.Workers
	if workers == 0 || workers > len(inputs) {
		workers = min(len(inputs), runtime.GOMAXPROCS(0))
	}
	pool := parallel.NewWorkerPool(workers)
	defer pool.Close()

	textures := make([]*Texture, len(inputs))
	errs := make([]error, len(inputs))
	err := pool.ForEach(len(inputs), func(i int) {
		textures[i], errs[i] = g.Generate(font, inputs[i])
	})
	if err != nil {
		return nil, err
	}

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("sdfatlas: input %d (%q): %w", i, inputs[i], err)
		}
	}
	Logger().Debug("sdfatlas: batch generated", "inputs", len(inputs), "workers", workers)
	return textures, nil
}
