package render

import (
	"errors"
	"strings"
)

const (
	// SubmitLabelKey is the translation key for the submit control.
	SubmitLabelKey = "formmirror.submit"
	// FieldLabelKeyPrefix prefixes per-question translation keys, e.g.
	// "formmirror.fields.entry.123".
	FieldLabelKeyPrefix = "formmirror.fields."
)

// ErrMissingTranslator is passed to the missing handler when no Translator
// was configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator resolves a message for locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler decides what to render when a key cannot be
// translated. fallback is the untranslated text.
type MissingTranslationHandler func(locale, key, fallback string, err error) string

func missingTranslationDefault(_, _, fallback string, _ error) string {
	return fallback
}

// LocalizeForm returns a copy of form with question labels translated. Only
// keys the translator knows are replaced; everything else keeps its label.
func LocalizeForm(form Form, opts RenderOptions) Form {
	if opts.Translator == nil {
		return form
	}
	out := form
	out.Fields = form.Fields.Clone()
	for i, field := range out.Fields {
		out.Fields[i].Label = translate(opts, FieldLabelKeyPrefix+field.Key, field.Label)
	}
	return out
}

// SubmitLabel resolves the submit control text for opts.
func SubmitLabel(opts RenderOptions) string {
	fallback := strings.TrimSpace(opts.SubmitLabel)
	if fallback == "" {
		fallback = DefaultSubmitLabel
	}
	if opts.Translator == nil {
		return fallback
	}
	return translate(opts, SubmitLabelKey, fallback)
}

func translate(opts RenderOptions, key, fallback string) string {
	onMissing := opts.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	if opts.Translator == nil {
		return onMissing(opts.Locale, key, fallback, ErrMissingTranslator)
	}
	msg, err := opts.Translator.Translate(opts.Locale, key)
	if err != nil || strings.TrimSpace(msg) == "" {
		return onMissing(opts.Locale, key, fallback, err)
	}
	return msg
}
