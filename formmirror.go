// Package formmirror mirrors an externally hosted survey form: it extracts the
// question fields from the form URL, renders inputs for them and submits the
// collected answers by opening the form's response URL.
//
// The root package re-exports the pure entry points so callers can start
// without importing the individual packages.
package formmirror

import (
	"context"

	"github.com/goliatone/go-formmirror/pkg/answers"
	"github.com/goliatone/go-formmirror/pkg/fields"
	"github.com/goliatone/go-formmirror/pkg/render"
	"github.com/goliatone/go-formmirror/pkg/submit"
	"github.com/goliatone/go-formmirror/pkg/widget"
)

// Field describes one rendered question.
type Field = fields.Field

// FieldSet is the ordered list of extracted questions.
type FieldSet = fields.FieldSet

// Override customises an extracted field.
type Override = fields.Override

// Overrides maps field keys to overrides.
type Overrides = fields.Overrides

// Answers is the immutable ordered answer map.
type Answers = answers.Answers

// Config is the widget configuration.
type Config = widget.Config

// RenderOptions aliases render.RenderOptions for callers driving renderers
// directly.
type RenderOptions = render.RenderOptions

// ExtractFields returns the question fields of rawURL with overrides applied.
func ExtractFields(rawURL string, overrides Overrides, options ...fields.Option) (FieldSet, error) {
	return fields.Extract(rawURL, overrides, options...)
}

// ApplyAnswer returns a copy of a with key set to value.
func ApplyAnswer(a Answers, key, value string) Answers {
	return answers.Apply(a, key, value)
}

// BuildSubmissionURL returns the response URL carrying the answers.
func BuildSubmissionURL(target string, a Answers, options ...submit.Option) (string, error) {
	return submit.BuildURL(target, a, options...)
}

// NewWidget mounts a widget for cfg.
func NewWidget(cfg Config, enabled bool, options ...widget.Option) (*widget.Widget, error) {
	return widget.New(cfg, enabled, options...)
}

// RenderHTML mounts a widget and renders it once. A disabled widget renders
// nothing.
func RenderHTML(ctx context.Context, cfg Config, enabled bool, options ...widget.Option) ([]byte, error) {
	w, err := widget.New(cfg, enabled, options...)
	if err != nil {
		return nil, err
	}
	return w.Render(ctx)
}
