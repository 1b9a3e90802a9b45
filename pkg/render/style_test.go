package render_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formmirror/pkg/render"
)

func TestNormalizeProperty(t *testing.T) {
	cases := map[string]string{
		"backgroundColor": "background-color",
		"zIndex":          "z-index",
		"color":           "color",
		"--brand-color":   "--brand-color",
		"bad prop":        "",
		"x;y":             "",
		"":                "",
	}
	for in, want := range cases {
		if got := render.NormalizeProperty(in); got != want {
			t.Fatalf("NormalizeProperty(%q): want %q, got %q", in, want, got)
		}
	}
}

func TestMergeDeclarations(t *testing.T) {
	base := []render.Declaration{{"position", "fixed"}, {"z-index", "1000"}}

	got := render.MergeDeclarations(base, map[string]string{
		"zIndex":     "5",
		"color":      "red",
		"background": "url(x); color: blue",
		"Margin":     "0",
	})

	want := []render.Declaration{
		{"position", "fixed"},
		{"z-index", "5"},
		{"color", "red"},
		{"margin", "0"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("declarations mismatch (-want +got):\n%s", diff)
	}
	if base[1].Value != "1000" {
		t.Fatalf("base mutated")
	}
}

func TestResolveStyles(t *testing.T) {
	styled := render.ResolveStyles(render.RenderOptions{Styles: map[string]string{"backgroundColor": "black"}})
	if !strings.HasPrefix(styled.Overlay, "position: fixed; top: 0") {
		t.Fatalf("unexpected overlay style %q", styled.Overlay)
	}
	if !strings.Contains(styled.Overlay, "background-color: black") {
		t.Fatalf("override not applied: %q", styled.Overlay)
	}
	if styled.Button == "" || styled.Input == "" {
		t.Fatalf("expected element styles")
	}

	if diff := cmp.Diff(render.Styles{}, render.ResolveStyles(render.RenderOptions{Unstyled: true})); diff != "" {
		t.Fatalf("unstyled should be empty (-want +got):\n%s", diff)
	}
}
