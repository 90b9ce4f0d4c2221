package theme

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Registry holds the palettes known to the application.
type Registry struct {
	mu       sync.RWMutex
	palettes map[string]*Palette
	fallback string
}

// NewRegistry returns an empty registry whose default palette is fallback.
func NewRegistry(fallback string) *Registry {
	if strings.TrimSpace(fallback) == "" {
		fallback = DefaultName
	}
	return &Registry{palettes: make(map[string]*Palette), fallback: fallback}
}

// LoadFS reads every *.yaml palette under dir in fsys.
func (r *Registry) LoadFS(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("theme: read dir %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !isYAML(entry.Name()) {
			continue
		}
		f, err := fsys.Open(path.Join(dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("theme: open %s: %w", entry.Name(), err)
		}
		err = r.Load(f)
		_ = f.Close()
		if err != nil {
			return fmt.Errorf("theme: load %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// LoadFile merges palettes from a YAML file on disk. An empty filename is a no-op.
func (r *Registry) LoadFile(filename string) error {
	if strings.TrimSpace(filename) == "" {
		return nil
	}
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("theme: open %s: %w", filename, err)
	}
	defer f.Close()
	return r.Load(f)
}

// Load decodes one or more YAML documents, each holding a palette.
// Colors of an already registered palette are merged, later values win.
func (r *Registry) Load(reader io.Reader) error {
	dec := yaml.NewDecoder(reader)
	for {
		var p Palette
		if err := dec.Decode(&p); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if err := r.Add(p); err != nil {
			return err
		}
	}
}

// Add registers or merges a palette.
func (r *Registry) Add(p Palette) error {
	name := strings.ToLower(strings.TrimSpace(p.Name))
	if name == "" {
		return errors.New("theme: palette name required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.palettes[name]
	if !ok {
		existing = &Palette{Name: name, Colors: make(map[string]string, len(p.Colors))}
		r.palettes[name] = existing
	}
	for key, value := range p.Colors {
		existing.Colors[normalizeVar(key)] = value
	}
	return nil
}

// Lookup returns the named palette. An empty name selects the default.
func (r *Registry) Lookup(name string) (*Palette, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = r.fallback
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.palettes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTheme, name)
	}
	return p, nil
}

// Has reports whether a palette is registered.
func (r *Registry) Has(name string) bool {
	_, err := r.Lookup(name)
	return err == nil
}

// Names lists registered palettes in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.palettes))
	for name := range r.palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the default palette name.
func (r *Registry) Default() string {
	return r.fallback
}

func isYAML(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
