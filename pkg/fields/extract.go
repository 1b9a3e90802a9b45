package fields

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/goliatone/go-formmirror/pkg/formurl"
)

// Option configures extraction.
type Option func(*config)

type config struct {
	prefix  string
	parser  formurl.Parser
	labeler func(position int) string
}

// WithPrefix changes the key prefix that marks question parameters.
func WithPrefix(prefix string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(prefix); trimmed != "" {
			cfg.prefix = trimmed
		}
	}
}

// WithParser injects the URL parsing capability.
func WithParser(parser formurl.Parser) Option {
	return func(cfg *config) {
		if parser != nil {
			cfg.parser = parser
		}
	}
}

// WithLabeler replaces the generated "Question N" labels. position is
// 1-based.
func WithLabeler(fn func(position int) string) Option {
	return func(cfg *config) {
		if fn != nil {
			cfg.labeler = fn
		}
	}
}

// DefaultLabel renders the placeholder label for the question at position.
func DefaultLabel(position int) string {
	return "Question " + strconv.Itoa(position)
}

func newConfig(options []Option) config {
	cfg := config{
		prefix:  DefaultPrefix,
		parser:  formurl.Strict,
		labeler: DefaultLabel,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// Extract parses rawURL and returns its question fields with overrides
// applied. Failures to parse match formurl.ErrMalformedURL.
func Extract(rawURL string, overrides Overrides, options ...Option) (FieldSet, error) {
	cfg := newConfig(options)
	target, err := formurl.Parse(cfg.parser, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fields: parse form url: %w", err)
	}
	return extract(target, overrides, cfg), nil
}

// ExtractURL is Extract for an already parsed URL.
func ExtractURL(target *url.URL, overrides Overrides, options ...Option) FieldSet {
	if target == nil {
		return nil
	}
	return extract(target, overrides, newConfig(options))
}

func extract(target *url.URL, overrides Overrides, cfg config) FieldSet {
	var out FieldSet
	seen := make(map[string]struct{})

	for _, param := range formurl.ParseParams(target.RawQuery) {
		if !strings.HasPrefix(param.Key, cfg.prefix) {
			continue
		}
		if _, dup := seen[param.Key]; dup {
			continue
		}
		seen[param.Key] = struct{}{}
		out = append(out, Field{
			Key:   param.Key,
			Label: cfg.labeler(len(out) + 1),
			Type:  DefaultType,
		})
	}

	return ApplyOverrides(out, overrides)
}

// ApplyOverrides merges overrides onto the fields they name and returns a new
// set. Keys missing from set are ignored.
func ApplyOverrides(set FieldSet, overrides Overrides) FieldSet {
	out := set.Clone()
	if len(overrides) == 0 {
		return out
	}
	for i, field := range out {
		if override, ok := overrides[field.Key]; ok {
			out[i] = field.Merge(override)
		}
	}
	return out
}
