package render_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-formmirror/pkg/fields"
	"github.com/goliatone/go-formmirror/pkg/render"
)

type stubTranslator map[string]string

func (t stubTranslator) Translate(_ string, key string, _ ...any) (string, error) {
	if msg, ok := t[key]; ok {
		return msg, nil
	}
	return "", errors.New("missing translation")
}

func TestLocalizeForm_TranslatesKnownKeys(t *testing.T) {
	form := render.Form{Fields: fields.FieldSet{
		{Key: "entry.1", Label: "Question 1", Type: "text"},
		{Key: "entry.2", Label: "Question 2", Type: "text"},
	}}
	opts := render.RenderOptions{
		Locale:     "es",
		Translator: stubTranslator{"formmirror.fields.entry.1": "Nombre", "formmirror.submit": "Enviar"},
	}

	got := render.LocalizeForm(form, opts)
	if got.Fields[0].Label != "Nombre" || got.Fields[1].Label != "Question 2" {
		t.Fatalf("unexpected labels %+v", got.Fields)
	}
	if form.Fields[0].Label != "Question 1" {
		t.Fatalf("input form mutated")
	}
	if label := render.SubmitLabel(opts); label != "Enviar" {
		t.Fatalf("unexpected submit label %q", label)
	}
}

func TestSubmitLabel_Fallbacks(t *testing.T) {
	if got := render.SubmitLabel(render.RenderOptions{}); got != render.DefaultSubmitLabel {
		t.Fatalf("want default label, got %q", got)
	}
	if got := render.SubmitLabel(render.RenderOptions{SubmitLabel: "Send"}); got != "Send" {
		t.Fatalf("want configured label, got %q", got)
	}

	var missing []string
	got := render.SubmitLabel(render.RenderOptions{
		SubmitLabel: "Send",
		Translator:  stubTranslator{},
		OnMissing: func(_, key, fallback string, _ error) string {
			missing = append(missing, key)
			return "[" + fallback + "]"
		},
	})
	if got != "[Send]" || len(missing) != 1 || missing[0] != render.SubmitLabelKey {
		t.Fatalf("missing handler not used: %q %v", got, missing)
	}
}
