package formurl

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrMalformedURL is the only domain error: it is returned wherever a string
// is parsed as a form URL and the parse fails.
var ErrMalformedURL = errors.New("formurl: malformed url")

// Parser turns a raw string into a URL. Hosts supply their own implementation
// when the default absolute-URL rules do not fit.
type Parser interface {
	Parse(raw string) (*url.URL, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(raw string) (*url.URL, error)

// Parse implements Parser.
func (f ParserFunc) Parse(raw string) (*url.URL, error) {
	return f(raw)
}

// Strict accepts absolute URLs only (scheme and host required).
var Strict Parser = ParserFunc(parseStrict)

func parseStrict(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty url", ErrMalformedURL)
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("%w: %q is not an absolute url", ErrMalformedURL, trimmed)
	}
	return parsed, nil
}

// Parse runs raw through parser (Strict when nil) and guarantees that any
// failure matches ErrMalformedURL, whatever the parser returned.
func Parse(parser Parser, raw string) (*url.URL, error) {
	if parser == nil {
		parser = Strict
	}
	parsed, err := parser.Parse(raw)
	if err != nil {
		if errors.Is(err, ErrMalformedURL) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrMalformedURL, err)
	}
	if parsed == nil {
		return nil, fmt.Errorf("%w: parser returned no url for %q", ErrMalformedURL, raw)
	}
	return Clone(parsed), nil
}

// Clone returns a deep copy of u so callers never mutate a shared value.
func Clone(u *url.URL) *url.URL {
	if u == nil {
		return nil
	}
	out := *u
	if u.User != nil {
		user := *u.User
		out.User = &user
	}
	return &out
}
