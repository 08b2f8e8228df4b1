package i18n

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/PauloHFS/goth-paginator/internal/logging"
)

// Catalog holds per-locale translations loaded from a YAML file, layered
// over the built-in tables. It is safe for concurrent use.
//
// File format:
//
//	en:
//	  previous: "&larr; Back"
//	  next: "More &rarr;"
type Catalog struct {
	mu      sync.RWMutex
	entries map[string]Translation
}

func NewCatalog() *Catalog {
	return &Catalog{entries: map[string]Translation{}}
}

// LoadCatalog reads path into a new catalog.
func LoadCatalog(path string) (*Catalog, error) {
	c := NewCatalog()
	if err := c.LoadFile(path); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read label catalog: %w", err)
	}
	return c.Load(data)
}

// Load replaces the catalog contents with the YAML in data. On error the
// previous contents are kept.
func (c *Catalog) Load(data []byte) error {
	var raw map[string]Translation
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse label catalog: %w", err)
	}

	entries := make(map[string]Translation, len(raw))
	for locale, t := range raw {
		merged := merge(builtin(locale), t)
		if err := checkShowing(merged.Showing); err != nil {
			return fmt.Errorf("invalid label catalog: %s.showing: %w", locale, err)
		}
		entries[locale] = merged
	}

	c.mu.Lock()
	c.entries = entries
	c.mu.Unlock()
	return nil
}

func merge(base, override Translation) Translation {
	if override.Previous != "" {
		base.Previous = override.Previous
	}
	if override.Next != "" {
		base.Next = override.Next
	}
	if override.Page != "" {
		base.Page = override.Page
	}
	if override.Showing != "" {
		base.Showing = override.Showing
	}
	return base
}

// checkShowing accepts exactly three %d verbs (first item, last item and
// total); "%%" is the only other directive allowed.
func checkShowing(format string) error {
	verbs := 0
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}
		i++
		if i == len(format) {
			return fmt.Errorf("trailing %% in %q", format)
		}
		switch format[i] {
		case '%':
		case 'd':
			verbs++
		default:
			return fmt.Errorf("unsupported verb %%%c in %q", format[i], format)
		}
	}
	if verbs != 3 {
		return fmt.Errorf("expected 3 %%d verbs in %q, found %d", format, verbs)
	}
	return nil
}

func (c *Catalog) Lookup(locale string) Translation {
	if c == nil {
		return builtin(locale)
	}
	c.mu.RLock()
	t, ok := c.entries[locale]
	c.mu.RUnlock()
	if !ok {
		return builtin(locale)
	}
	return t
}

// Get is the catalog-aware counterpart of the package level Get.
func (c *Catalog) Get(ctx context.Context) Translation {
	return c.Lookup(Locale(ctx))
}

// Watch reloads path whenever it is written or recreated, until ctx is
// done. The parent directory is watched so editors that replace the file
// are picked up too.
func (c *Catalog) Watch(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}

	logger := logging.Get()
	target := filepath.Clean(path)

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				if err := c.LoadFile(path); err != nil {
					logger.Error("label catalog reload failed", "path", path, "error", err)
					continue
				}
				logger.Info("label catalog reloaded", "path", path)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Error("label catalog watcher error", "error", err)
			}
		}
	}()

	return nil
}
