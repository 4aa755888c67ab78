package text

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/go-fonts/latin-modern/lmmono10regular"
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/sdfatlas/internal/cache"
)

// DefaultFamily is the family used when a FontSpec names none.
const DefaultFamily = "Go"

// defaultSourceLimit bounds the number of parsed fonts a Registry keeps.
const defaultSourceLimit = 16

// loader produces the raw bytes of a registered font.
type loader func() ([]byte, error)

// Registry maps family names to fonts. Names are matched
// case-insensitively. Parsed fonts are created lazily and kept in an LRU
// cache, so a registry can list many more families than it holds parsed.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	loaders map[string]loader
	names   map[string]string // key -> family name as registered

	sources *cache.Cache[string, *FontSource]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		loaders: make(map[string]loader),
		names:   make(map[string]string),
		sources: cache.New[string, *FontSource](defaultSourceLimit),
	}
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// DefaultRegistry returns the shared registry preloaded with the Go fonts
// and the Latin Modern families:
//
//	Go, Go Bold, Go Italic, Go Medium, Go Mono,
//	Latin Modern Roman, Latin Modern Roman Bold,
//	Latin Modern Sans, Latin Modern Mono
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		r := NewRegistry()
		for family, data := range map[string][]byte{
			"Go":                      goregular.TTF,
			"Go Regular":              goregular.TTF,
			"Go Bold":                 gobold.TTF,
			"Go Italic":               goitalic.TTF,
			"Go Medium":               gomedium.TTF,
			"Go Mono":                 gomono.TTF,
			"Latin Modern Roman":      lmroman10regular.TTF,
			"Latin Modern Roman Bold": lmroman10bold.TTF,
			"Latin Modern Sans":       lmsans10regular.TTF,
			"Latin Modern Mono":       lmmono10regular.TTF,
		} {
			_ = r.Register(family, data)
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Register adds font data under family, replacing any previous entry.
// The data is parsed on first use.
func (r *Registry) Register(family string, data []byte) error {
	if len(data) == 0 {
		return ErrEmptyFontData
	}
	return r.add(family, func() ([]byte, error) { return data, nil })
}

// RegisterFile adds the font file at path under family. The file is read
// on first use, so a missing file surfaces from Source, not here.
func (r *Registry) RegisterFile(family, path string) error {
	return r.add(family, func() ([]byte, error) {
		// #nosec G304 -- Font file path is provided by the user
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("text: failed to read font file: %w", err)
		}
		return data, nil
	})
}

func (r *Registry) add(family string, load loader) error {
	key := familyKey(family)
	if key == "" {
		return fmt.Errorf("%w: empty family name", ErrFontNotFound)
	}

	r.mu.Lock()
	r.loaders[key] = load
	r.names[key] = strings.TrimSpace(family)
	r.mu.Unlock()

	r.sources.Delete(key)
	return nil
}

// Has reports whether family is registered.
func (r *Registry) Has(family string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.loaders[familyKey(family)]
	return ok
}

// Families returns the registered family names, sorted.
func (r *Registry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Values(r.names))
}

// Source returns the parsed font registered under family. An empty family
// selects DefaultFamily.
func (r *Registry) Source(family string) (*FontSource, error) {
	if strings.TrimSpace(family) == "" {
		family = DefaultFamily
	}
	key := familyKey(family)

	if !r.Has(family) {
		return nil, fmt.Errorf("%w: %q", ErrFontNotFound, family)
	}

	// The loader is read under the cache lock: a concurrent Register
	// either lands before the read or evicts what it produced.
	return r.sources.GetOrCreate(key, func() (*FontSource, error) {
		r.mu.RLock()
		load, ok := r.loaders[key]
		name := r.names[key]
		r.mu.RUnlock()
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrFontNotFound, family)
		}

		data, err := load()
		if err != nil {
			slogger().Warn("text: font load failed", "family", name, "err", err)
			return nil, err
		}
		slogger().Debug("text: font loaded", "family", name, "bytes", len(data))
		return NewFontSource(data, WithName(name))
	})
}

func familyKey(family string) string {
	return strings.ToLower(strings.TrimSpace(family))
}
