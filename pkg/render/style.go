package render

import (
	"sort"
	"strings"
	"unicode"
)

// Declaration is one CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// OverlayDefaults is the full-screen container style the form renders in
// unless Unstyled is set.
var OverlayDefaults = []Declaration{
	{"position", "fixed"},
	{"top", "0"},
	{"left", "0"},
	{"width", "100vw"},
	{"height", "100vh"},
	{"background-color", "rgba(255, 255, 255, 0.9)"},
	{"display", "flex"},
	{"flex-direction", "column"},
	{"justify-content", "center"},
	{"align-items", "center"},
	{"z-index", "1000"},
}

// Styles holds the inline style attribute of each rendered element. Empty
// members render no style attribute.
type Styles struct {
	Overlay string `json:"overlay"`
	Form    string `json:"form"`
	Field   string `json:"field"`
	Label   string `json:"label"`
	Input   string `json:"input"`
	Button  string `json:"button"`
}

// ResolveStyles returns the inline styles for opts.
func ResolveStyles(opts RenderOptions) Styles {
	if opts.Unstyled {
		return Styles{}
	}
	return Styles{
		Overlay: StyleAttr(MergeDeclarations(OverlayDefaults, opts.Styles)),
		Form:    "width: 80%; max-width: 600px",
		Field:   "margin-bottom: 15px",
		Label:   "display: block; margin-bottom: 5px",
		Input:   "width: 100%; padding: 8px; box-sizing: border-box",
		Button:  "width: 100%; padding: 10px; background-color: #4CAF50; color: white; border: none; cursor: pointer",
	}
}

// MergeDeclarations applies overrides on top of base. Overridden properties
// keep their position; new ones follow in property order. Properties or
// values that could break out of a declaration are dropped.
func MergeDeclarations(base []Declaration, overrides map[string]string) []Declaration {
	out := make([]Declaration, len(base))
	copy(out, base)
	if len(overrides) == 0 {
		return out
	}

	clean := make(map[string]string, len(overrides))
	for prop, value := range overrides {
		name := NormalizeProperty(prop)
		value = strings.TrimSpace(value)
		if name == "" || !safeValue(value) {
			continue
		}
		clean[name] = value
	}

	for i, decl := range out {
		if value, ok := clean[decl.Property]; ok {
			out[i].Value = value
			delete(clean, decl.Property)
		}
	}

	extra := make([]string, 0, len(clean))
	for name := range clean {
		extra = append(extra, name)
	}
	sort.Strings(extra)
	for _, name := range extra {
		out = append(out, Declaration{Property: name, Value: clean[name]})
	}
	return out
}

// StyleAttr serializes declarations for a style attribute.
func StyleAttr(decls []Declaration) string {
	parts := make([]string, 0, len(decls))
	for _, decl := range decls {
		if decl.Property == "" || decl.Value == "" {
			continue
		}
		parts = append(parts, decl.Property+": "+decl.Value)
	}
	return strings.Join(parts, "; ")
}

// NormalizeProperty converts camelCase names (backgroundColor) to CSS
// kebab-case and validates the result. Custom properties (--brand) are kept
// as is. Invalid names return "".
func NormalizeProperty(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if strings.HasPrefix(name, "--") {
		if !validIdent(name[2:]) {
			return ""
		}
		return name
	}

	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	out := b.String()
	if !validIdent(out) {
		return ""
	}
	return out
}

func validIdent(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r == '-' || r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			continue
		}
		return false
	}
	return true
}

func safeValue(v string) bool {
	return v != "" && !strings.ContainsAny(v, ";{}<>")
}
