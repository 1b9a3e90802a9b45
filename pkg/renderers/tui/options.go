package tui

import (
	"io"
)

// OutputFormat controls how collected answers are serialized by Render.
type OutputFormat string

const (
	// OutputFormatFormURLEncoded emits application/x-www-form-urlencoded
	// pairs in answer order.
	OutputFormatFormURLEncoded OutputFormat = "form"
	// OutputFormatJSON emits a JSON array of {key, value} entries.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatPrettyText emits one "label: value" line per field.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// Theme captures optional message decoration for the driver.
type Theme struct {
	// ErrorPrefix precedes the "required" notice for an empty answer.
	ErrorPrefix string
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithOutput redirects informational messages of the default survey driver.
func WithOutput(w io.Writer) Option {
	return func(r *Renderer) {
		if w != nil {
			r.out = w
		}
	}
}
