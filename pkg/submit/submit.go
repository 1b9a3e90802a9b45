package submit

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/goliatone/go-formmirror/pkg/answers"
	"github.com/goliatone/go-formmirror/pkg/formurl"
)

// Option configures URL construction.
type Option func(*config)

type config struct {
	parser formurl.Parser
}

// WithParser injects the URL parsing capability.
func WithParser(parser formurl.Parser) Option {
	return func(cfg *config) {
		if parser != nil {
			cfg.parser = parser
		}
	}
}

// BuildURL parses target and returns the response URL carrying answers.
// Parse failures match formurl.ErrMalformedURL.
func BuildURL(target string, a answers.Answers, options ...Option) (string, error) {
	cfg := config{parser: formurl.Strict}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	parsed, err := formurl.Parse(cfg.parser, target)
	if err != nil {
		return "", fmt.Errorf("submit: parse form url: %w", err)
	}
	return BuildURLFrom(parsed, a).String(), nil
}

// BuildURLFrom is BuildURL for a parsed target. Each answer is set (not
// appended) on the query, overwriting what the target carried for that key,
// and "/viewform" in the path becomes "/formResponse". target is not
// modified.
func BuildURLFrom(target *url.URL, a answers.Answers) *url.URL {
	out := formurl.Clone(target)
	if out == nil {
		return nil
	}
	if entries := a.Entries(); len(entries) > 0 {
		params := formurl.ParseParams(out.RawQuery)
		for _, entry := range entries {
			params = params.Set(entry.Key, entry.Value)
		}
		out.RawQuery = params.Encode()
	}
	return formurl.ResponseURL(out)
}

// Submit builds the response URL and opens it through nav. The returned URL
// is the one handed to the navigator.
func Submit(ctx context.Context, nav Navigator, target string, a answers.Answers, options ...Option) (string, error) {
	if nav == nil {
		return "", errors.New("submit: navigator is required")
	}
	responseURL, err := BuildURL(target, a, options...)
	if err != nil {
		return "", err
	}
	if err := nav.Open(ctx, responseURL); err != nil {
		return responseURL, fmt.Errorf("submit: open %s: %w", responseURL, err)
	}
	return responseURL, nil
}
