package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"os"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formmirror/pkg/answers"
	"github.com/goliatone/go-formmirror/pkg/fields"
	"github.com/goliatone/go-formmirror/pkg/formurl"
	"github.com/goliatone/go-formmirror/pkg/render"
)

// Renderer is the terminal host for a mirrored form: it prompts once per
// field and returns the collected answers.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	theme        Theme
	out          io.Writer
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, form-encoded
// output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		outputFormat: OutputFormatFormURLEncoded,
		out:          os.Stdout,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		r.driver = newSurveyDriver(r.out)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatJSON:
		return "application/json"
	case OutputFormatPrettyText:
		return "text/plain; charset=utf-8"
	default:
		return "application/x-www-form-urlencoded"
	}
}

// Render collects answers and serializes them in the configured format.
func (r *Renderer) Render(ctx context.Context, form render.Form, opts render.RenderOptions) ([]byte, error) {
	collected, err := r.Collect(ctx, form, opts)
	if err != nil {
		return nil, err
	}
	return r.serialize(render.LocalizeForm(form, opts).Fields, collected)
}

// Collect prompts for every field in order. opts.Values seed the defaults and
// are carried into the result, including keys that are not fields. Every
// field is required: empty answers are reported and asked again.
func (r *Renderer) Collect(ctx context.Context, form render.Form, opts render.RenderOptions) (answers.Answers, error) {
	if ctx == nil {
		return answers.Answers{}, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return answers.Answers{}, err
	}
	if r.driver == nil {
		return answers.Answers{}, errors.New("tui: prompt driver is nil")
	}

	form = render.LocalizeForm(form, opts)
	state := opts.Values
	for _, field := range form.Fields {
		value, err := r.promptField(ctx, field, state)
		if err != nil {
			return answers.Answers{}, err
		}
		state = answers.Apply(state, field.Key, value)
	}
	return state, nil
}

// Confirm asks a yes/no question through the driver.
func (r *Renderer) Confirm(ctx context.Context, message string, def bool) (bool, error) {
	return r.driver.Confirm(ctx, ConfirmConfig{Message: message, Default: def})
}

// requireValue lets interactive drivers reject blank answers inline. Collect
// still re-prompts on blank answers from drivers that ignore it.
func requireValue(answer string) error {
	if strings.TrimSpace(answer) == "" {
		return ErrRequired
	}
	return nil
}

func (r *Renderer) promptField(ctx context.Context, field fields.Field, state answers.Answers) (string, error) {
	current, _ := state.Get(field.Key)
	label := displayLabel(field)
	help := fmt.Sprintf("%s (%s)", field.Key, field.Type)

	for {
		var (
			response string
			err      error
		)
		switch strings.ToLower(strings.TrimSpace(field.Type)) {
		case "password":
			response, err = r.driver.Password(ctx, InputConfig{Message: label, Help: help, Validator: requireValue})
		case "textarea":
			response, err = r.driver.TextArea(ctx, TextAreaConfig{Message: label, Default: current, Help: help, Validator: requireValue})
		default:
			response, err = r.driver.Input(ctx, InputConfig{Message: label, Default: current, Help: help, Validator: requireValue})
		}
		if err != nil {
			return "", err
		}

		if strings.TrimSpace(response) == "" {
			if err := r.driver.Info(ctx, r.theme.ErrorPrefix+fmt.Sprintf("%s: %v", label, ErrRequired)); err != nil {
				return "", err
			}
			continue
		}
		return response, nil
	}
}

// Encode serializes already collected answers in the configured format.
func (r *Renderer) Encode(form render.Form, collected answers.Answers) ([]byte, error) {
	return r.serialize(form.Fields, collected)
}

func (r *Renderer) serialize(set fields.FieldSet, collected answers.Answers) ([]byte, error) {
	entries := collected.Entries()
	switch r.outputFormat {
	case OutputFormatJSON:
		if entries == nil {
			entries = []answers.Entry{}
		}
		payload, err := json.Marshal(entries)
		if err != nil {
			return nil, fmt.Errorf("tui: encode json: %w", err)
		}
		return payload, nil
	case OutputFormatPrettyText:
		var b strings.Builder
		for _, field := range set {
			value, _ := collected.Get(field.Key)
			fmt.Fprintf(&b, "%s: %s\n", displayLabel(field), value)
		}
		return []byte(b.String()), nil
	default:
		params := make(formurl.Params, 0, len(entries))
		for _, entry := range entries {
			params = append(params, formurl.Param{Key: entry.Key, Value: entry.Value})
		}
		return []byte(params.Encode()), nil
	}
}

var plainText = bluemonday.StrictPolicy()

// displayLabel strips markup allowed in HTML labels; terminals show text.
func displayLabel(field fields.Field) string {
	label := strings.TrimSpace(html.UnescapeString(plainText.Sanitize(field.Label)))
	if label != "" {
		return label
	}
	return field.Key
}
