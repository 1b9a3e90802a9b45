package vanilla

import (
	"context"
	"fmt"
	"html"
	"io/fs"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formmirror/pkg/fields"
	"github.com/goliatone/go-formmirror/pkg/render"
	rendertemplate "github.com/goliatone/go-formmirror/pkg/render/template"
	gotemplate "github.com/goliatone/go-formmirror/pkg/render/template/gotemplate"
)

const formTemplate = "templates/form.tmpl"

type Option func(*config)

type config struct {
	templateDir      string
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	labelPolicy      *bluemonday.Policy
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must provide templates/form.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk. Templates the
// directory lacks still come from the embedded bundle.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templateDir = strings.TrimSpace(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithLabelPolicy replaces the sanitizer applied to field labels.
func WithLabelPolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.labelPolicy = policy
		}
	}
}

// Renderer emits the mirrored form as HTML.
type Renderer struct {
	templates   rendertemplate.TemplateRenderer
	labelPolicy *bluemonday.Policy
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.labelPolicy == nil {
		cfg.labelPolicy = labelSanitizer()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithBaseDir(cfg.templateDir),
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, labelPolicy: cfg.labelPolicy}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

type fieldView struct {
	ID    string `json:"id"`
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Render writes one labeled required input per field followed by the submit
// control. Values for keys outside the field set are never rendered.
func (r *Renderer) Render(ctx context.Context, form render.Form, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	form = render.LocalizeForm(form, opts)

	views := make([]fieldView, 0, len(form.Fields))
	for _, field := range form.Fields {
		value, _ := opts.Values.Get(field.Key)
		views = append(views, fieldView{
			ID:    form.ElementID(field.Key),
			Key:   field.Key,
			Label: r.sanitizeLabel(field),
			Type:  inputType(field.Type),
			Value: value,
		})
	}

	selector := ".formmirror"
	if form.ID != "" {
		selector = "#" + form.ID
	}

	result, err := r.templates.RenderTemplate(formTemplate, map[string]any{
		"form":         form,
		"fields":       views,
		"styles":       render.ResolveStyles(opts),
		"submit_label": render.SubmitLabel(opts),
		"theme_css":    render.CSSVarsStyle(selector, opts.Theme),
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// sanitizeLabel returns markup safe to print unescaped. Labels that sanitise
// to nothing fall back to the escaped key, which comes from the target URL.
func (r *Renderer) sanitizeLabel(field fields.Field) string {
	label := strings.TrimSpace(r.labelPolicy.Sanitize(field.Label))
	if label == "" {
		return html.EscapeString(field.Key)
	}
	return label
}

func inputType(typ string) string {
	typ = strings.ToLower(strings.TrimSpace(typ))
	if typ == "" {
		return fields.DefaultType
	}
	for _, r := range typ {
		if (r < 'a' || r > 'z') && r != '-' {
			return fields.DefaultType
		}
	}
	return typ
}

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy
)

// labelSanitizer keeps inline emphasis in override labels and strips
// everything else.
func labelSanitizer() *bluemonday.Policy {
	labelPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowElements("b", "strong", "i", "em", "code", "br", "small")
		labelPolicy = policy
	})
	return labelPolicy
}
