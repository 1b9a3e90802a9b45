package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
)

var (
	// ErrThemeNotFound is returned when no manifest matches the name.
	ErrThemeNotFound = errors.New("config: theme not found")
	// ErrVariantNotFound is returned when the manifest lacks the variant.
	ErrVariantNotFound = errors.New("config: theme variant not found")
)

// ThemeSelector resolves themes from registered go-theme manifests.
type ThemeSelector struct {
	mu        sync.RWMutex
	manifests map[string]*theme.Manifest
	fallback  string
}

var _ theme.ThemeSelector = (*ThemeSelector)(nil)

// NewThemeSelector registers manifests. The first one is used when Select is
// called without a name.
func NewThemeSelector(manifests ...*theme.Manifest) (*ThemeSelector, error) {
	s := &ThemeSelector{manifests: make(map[string]*theme.Manifest)}
	for _, manifest := range manifests {
		if err := s.Register(manifest); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Register adds a manifest. Names must be unique.
func (s *ThemeSelector) Register(manifest *theme.Manifest) error {
	if manifest == nil {
		return errors.New("config: nil theme manifest")
	}
	name := strings.TrimSpace(manifest.Name)
	if name == "" {
		return errors.New("config: theme manifest has no name")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.manifests[name]; exists {
		return fmt.Errorf("config: theme %q already registered", name)
	}
	s.manifests[name] = manifest
	if s.fallback == "" {
		s.fallback = name
	}
	return nil
}

// Names lists registered themes alphabetically.
func (s *ThemeSelector) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.manifests))
	for name := range s.manifests {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Select implements theme.ThemeSelector. An empty variant selects the base
// tokens only.
func (s *ThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name = strings.TrimSpace(name)
	if name == "" {
		name = s.fallback
	}
	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	variant = strings.TrimSpace(variant)
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("%w: %s/%s", ErrVariantNotFound, name, variant)
		}
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}

// Manifest builds a go-theme manifest from the inline theme definition, or
// returns nil when the document defines no tokens.
func (t ThemeDocument) Manifest() *theme.Manifest {
	if len(t.Tokens) == 0 && len(t.Variants) == 0 {
		return nil
	}
	manifest := &theme.Manifest{
		Name:   t.name(),
		Tokens: copyTokens(t.Tokens),
	}
	if len(t.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(t.Variants))
		for key, tokens := range t.Variants {
			manifest.Variants[key] = theme.Variant{Tokens: copyTokens(tokens)}
		}
	}
	return manifest
}

// ThemeSelector returns a selector over the document's inline theme, or nil
// when the document defines none.
func (d Document) ThemeSelector() (*ThemeSelector, error) {
	manifest := d.Theme.Manifest()
	if manifest == nil {
		return nil, nil
	}
	return NewThemeSelector(manifest)
}

// InlineThemeName names an inline theme defined without a name.
const InlineThemeName = "inline"

func (t ThemeDocument) name() string {
	name := strings.TrimSpace(t.Name)
	if name == "" && (len(t.Tokens) > 0 || len(t.Variants) > 0) {
		return InlineThemeName
	}
	return name
}

func copyTokens(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
