package widget

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"
	"go.uber.org/zap"

	"github.com/goliatone/go-formmirror/pkg/answers"
	"github.com/goliatone/go-formmirror/pkg/fields"
	"github.com/goliatone/go-formmirror/pkg/formurl"
	"github.com/goliatone/go-formmirror/pkg/render"
	"github.com/goliatone/go-formmirror/pkg/renderers/vanilla"
	"github.com/goliatone/go-formmirror/pkg/submit"
)

// ErrDisabled is returned by Submit while the visibility gate is closed.
var ErrDisabled = errors.New("widget: disabled")

// ThemeConfig names the theme and variant to resolve.
type ThemeConfig struct {
	Name    string `json:"name" yaml:"name"`
	Variant string `json:"variant" yaml:"variant"`
}

// Config is supplied by the embedding application.
type Config struct {
	FormURL        string
	FieldOverrides fields.Overrides
	// Styles overrides the overlay container style (CSS or camelCase keys).
	Styles      map[string]string
	Unstyled    bool
	SubmitLabel string
	Theme       ThemeConfig
}

// Widget mirrors one hosted form.
type Widget struct {
	cfg     Config
	enabled bool

	fields    fields.FieldSet
	answers   answers.Answers
	extracted bool

	id        string
	prefix    string
	parser    formurl.Parser
	navigator submit.Navigator
	renderer  render.Renderer
	themes    theme.ThemeSelector
	logger    *zap.Logger
}

// New mounts a widget. When enabled, extraction runs immediately and its
// error is returned alongside the widget.
func New(cfg Config, enabled bool, options ...Option) (*Widget, error) {
	w := &Widget{
		parser: formurl.Strict,
		logger: zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(w)
	}
	if w.id == "" {
		w.id = newInstanceID()
	}
	if w.navigator == nil {
		w.navigator = submit.NewBrowserNavigator()
	}
	if w.renderer == nil {
		renderer, err := vanilla.New()
		if err != nil {
			return nil, fmt.Errorf("widget: default renderer: %w", err)
		}
		w.renderer = renderer
	}

	w.cfg = cloneConfig(cfg)
	w.enabled = enabled
	if enabled {
		return w, w.extract()
	}
	return w, nil
}

// Update applies new configuration and visibility. Extraction re-runs when
// the widget turns on, or when FormURL changes while on.
func (w *Widget) Update(cfg Config, enabled bool) error {
	urlChanged := cfg.FormURL != w.cfg.FormURL
	turnedOn := enabled && !w.enabled

	w.cfg = cloneConfig(cfg)
	w.enabled = enabled

	if !enabled {
		return nil
	}
	if turnedOn || urlChanged {
		return w.extract()
	}
	return nil
}

// SetEnabled toggles the visibility gate keeping the configuration.
func (w *Widget) SetEnabled(enabled bool) error {
	return w.Update(w.cfg, enabled)
}

func (w *Widget) extract() error {
	w.answers = answers.Answers{}
	w.fields = nil
	w.extracted = false

	set, err := fields.Extract(w.cfg.FormURL, w.cfg.FieldOverrides,
		fields.WithParser(w.parser),
		fields.WithPrefix(w.prefix),
	)
	if err != nil {
		w.logger.Debug("field extraction failed", zap.String("url", w.cfg.FormURL), zap.Error(err))
		return fmt.Errorf("widget: %w", err)
	}
	w.fields = set
	w.extracted = true
	w.logger.Debug("fields extracted",
		zap.String("widget", w.id),
		zap.Int("count", len(set)),
		zap.Strings("keys", set.Keys()),
	)
	return nil
}

// Enabled reports the visibility gate.
func (w *Widget) Enabled() bool {
	return w.enabled
}

// ID returns the instance id.
func (w *Widget) ID() string {
	return w.id
}

// Fields returns a copy of the current field set.
func (w *Widget) Fields() fields.FieldSet {
	return w.fields.Clone()
}

// Answers returns the current answers.
func (w *Widget) Answers() answers.Answers {
	return w.answers
}

// Change records the current value of one input.
func (w *Widget) Change(key, value string) {
	w.answers = answers.Apply(w.answers, key, value)
}

// Render produces the widget's output. A disabled widget, or one whose
// extraction failed, renders nothing.
func (w *Widget) Render(ctx context.Context) ([]byte, error) {
	if !w.enabled || !w.extracted {
		return nil, nil
	}

	target, err := formurl.Parse(w.parser, w.cfg.FormURL)
	if err != nil {
		return nil, fmt.Errorf("widget: %w", err)
	}
	form := render.NewForm(w.id, target, w.fields)

	opts := render.RenderOptions{
		Values:      w.answers,
		Styles:      w.cfg.Styles,
		Unstyled:    w.cfg.Unstyled,
		SubmitLabel: w.cfg.SubmitLabel,
	}
	if opts.Theme, err = w.resolveTheme(); err != nil {
		return nil, err
	}

	out, err := w.renderer.Render(ctx, form, opts)
	if err != nil {
		return nil, fmt.Errorf("widget: render %s: %w", w.renderer.Name(), err)
	}
	return out, nil
}

// Form returns the view model Render would hand to the renderer.
func (w *Widget) Form() (render.Form, error) {
	if !w.enabled || !w.extracted {
		return render.Form{ID: w.id}, nil
	}
	target, err := formurl.Parse(w.parser, w.cfg.FormURL)
	if err != nil {
		return render.Form{}, fmt.Errorf("widget: %w", err)
	}
	return render.NewForm(w.id, target, w.fields), nil
}

// Submit builds the response URL from the current answers and opens it. The
// call does not wait for, nor learn about, the remote outcome.
func (w *Widget) Submit(ctx context.Context) (string, error) {
	if !w.enabled {
		return "", ErrDisabled
	}
	target, err := submit.Submit(ctx, w.navigator, w.cfg.FormURL, w.answers, submit.WithParser(w.parser))
	if err != nil {
		return target, fmt.Errorf("widget: %w", err)
	}
	w.logger.Debug("form submitted", zap.String("widget", w.id), zap.String("url", target))
	return target, nil
}

func (w *Widget) resolveTheme() (*render.Theme, error) {
	if w.themes == nil || (w.cfg.Theme.Name == "" && w.cfg.Theme.Variant == "") {
		return nil, nil
	}
	selection, err := w.themes.Select(w.cfg.Theme.Name, w.cfg.Theme.Variant)
	if err != nil {
		return nil, fmt.Errorf("widget: select theme %q: %w", w.cfg.Theme.Name, err)
	}
	return render.ThemeFromSelection(selection), nil
}

func cloneConfig(cfg Config) Config {
	out := cfg
	if cfg.FieldOverrides != nil {
		out.FieldOverrides = make(fields.Overrides, len(cfg.FieldOverrides))
		for k, v := range cfg.FieldOverrides {
			out.FieldOverrides[k] = v
		}
	}
	if cfg.Styles != nil {
		out.Styles = make(map[string]string, len(cfg.Styles))
		for k, v := range cfg.Styles {
			out.Styles[k] = v
		}
	}
	return out
}
