package render

import "github.com/goliatone/go-formmirror/pkg/answers"

// DefaultSubmitLabel is the text of the submit control.
const DefaultSubmitLabel = "Submit"

// RenderOptions describe per-render data that renderers use to customise
// output without touching the extracted field set.
type RenderOptions struct {
	// Values pre-populates inputs. Keys outside the form's field set are
	// ignored by renderers.
	Values answers.Answers
	// Styles overrides the overlay container's inline style. Keys may be CSS
	// property names or their camelCase spelling.
	Styles map[string]string
	// Unstyled drops every inline style and leaves presentation to class
	// names and the host stylesheet.
	Unstyled bool
	// SubmitLabel replaces DefaultSubmitLabel.
	SubmitLabel string
	// Theme exposes resolved theme tokens as CSS custom properties.
	Theme *Theme

	Locale     string
	Translator Translator
	OnMissing  MissingTranslationHandler
}
