package render

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Theme is the resolved theme a renderer can expose to the page.
type Theme struct {
	Name    string            `json:"name"`
	Variant string            `json:"variant"`
	Tokens  map[string]string `json:"tokens"`
	CSSVars map[string]string `json:"cssVars"`
}

// ThemeFromSelection flattens a go-theme selection: manifest tokens first,
// then the selected variant's tokens on top. Each token also becomes a
// "--<token>" custom property.
func ThemeFromSelection(selection *theme.Selection) *Theme {
	if selection == nil {
		return nil
	}
	out := &Theme{
		Name:    selection.Theme,
		Variant: selection.Variant,
		Tokens:  make(map[string]string),
	}
	if manifest := selection.Manifest; manifest != nil {
		for key, value := range manifest.Tokens {
			out.Tokens[key] = value
		}
		if variant, ok := manifest.Variants[selection.Variant]; ok {
			for key, value := range variant.Tokens {
				out.Tokens[key] = value
			}
		}
	}
	out.CSSVars = make(map[string]string, len(out.Tokens))
	for key, value := range out.Tokens {
		out.CSSVars["--"+key] = value
	}
	return out
}

// CSSVarsStyle renders the theme's custom properties scoped to selector.
// Unsafe names or values are skipped.
func CSSVarsStyle(selector string, t *Theme) string {
	if t == nil || len(t.CSSVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(t.CSSVars))
	for key := range t.CSSVars {
		if NormalizeProperty(key) == key && safeValue(strings.TrimSpace(t.CSSVars[key])) {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	if selector == "" {
		selector = ":root"
	}
	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(strings.TrimSpace(t.CSSVars[key]))
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
