package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formmirror/pkg/fields"
	"github.com/goliatone/go-formmirror/pkg/widget"
)

// ErrEmptyDocument is returned for blank configuration files.
var ErrEmptyDocument = errors.New("config: empty document")

// Document is the on-disk configuration of one form mirror.
type Document struct {
	FormURL        string            `json:"formUrl" yaml:"formUrl"`
	Enabled        *bool             `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	FieldOverrides fields.Overrides  `json:"fieldOverrides,omitempty" yaml:"fieldOverrides,omitempty"`
	Styles         map[string]string `json:"styles,omitempty" yaml:"styles,omitempty"`
	Unstyled       bool              `json:"unstyled,omitempty" yaml:"unstyled,omitempty"`
	SubmitLabel    string            `json:"submitLabel,omitempty" yaml:"submitLabel,omitempty"`
	Theme          ThemeDocument     `json:"theme,omitempty" yaml:"theme,omitempty"`
}

// ThemeDocument selects a theme and optionally defines it inline.
type ThemeDocument struct {
	Name     string                       `json:"name,omitempty" yaml:"name,omitempty"`
	Variant  string                       `json:"variant,omitempty" yaml:"variant,omitempty"`
	Tokens   map[string]string            `json:"tokens,omitempty" yaml:"tokens,omitempty"`
	Variants map[string]map[string]string `json:"variants,omitempty" yaml:"variants,omitempty"`
}

// IsEnabled reports the visibility flag. A document without the key is
// enabled.
func (d Document) IsEnabled() bool {
	return d.Enabled == nil || *d.Enabled
}

// WidgetConfig converts the document into widget configuration.
func (d Document) WidgetConfig() widget.Config {
	cfg := widget.Config{
		FormURL:     strings.TrimSpace(d.FormURL),
		Unstyled:    d.Unstyled,
		SubmitLabel: d.SubmitLabel,
		Theme: widget.ThemeConfig{
			Name:    d.Theme.name(),
			Variant: d.Theme.Variant,
		},
	}
	if len(d.FieldOverrides) > 0 {
		cfg.FieldOverrides = make(fields.Overrides, len(d.FieldOverrides))
		for key, override := range d.FieldOverrides {
			cfg.FieldOverrides[strings.TrimSpace(key)] = override
		}
	}
	if len(d.Styles) > 0 {
		cfg.Styles = make(map[string]string, len(d.Styles))
		for key, value := range d.Styles {
			cfg.Styles[key] = value
		}
	}
	return cfg
}

// Parse decodes a JSON or YAML document. source names the input in errors.
func Parse(data []byte, source string) (Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, fmt.Errorf("%w: %s", ErrEmptyDocument, source)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = Document{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("config: parse %s: invalid JSON or YAML: %w", source, err)
	}
	return doc, nil
}

// Load reads and parses the document at path.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS reads and parses name from fsys.
func LoadFS(fsys fs.FS, name string) (Document, error) {
	if fsys == nil {
		return Document{}, fmt.Errorf("config: read %s: nil filesystem", name)
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Document{}, fmt.Errorf("config: read %s: %w", name, err)
	}
	return Parse(data, name)
}

// IsDocumentFile reports whether path carries a supported extension.
func IsDocumentFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
