package fields

import "strings"

const (
	// DefaultPrefix identifies question parameters in a hosted form URL.
	DefaultPrefix = "entry."
	// DefaultType is the input type assigned to every extracted field.
	DefaultType = "text"
)

// Field describes one rendered question.
type Field struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
	Type  string `json:"type" yaml:"type"`
}

// Override customises an extracted field. Empty members are left unspecified
// and keep the extracted defaults.
type Override struct {
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	Type  string `json:"type,omitempty" yaml:"type,omitempty"`
}

// Overrides maps field keys to their overrides.
type Overrides map[string]Override

// Merge returns f with the specified members of o applied.
func (f Field) Merge(o Override) Field {
	if label := strings.TrimSpace(o.Label); label != "" {
		f.Label = label
	}
	if typ := strings.TrimSpace(o.Type); typ != "" {
		f.Type = typ
	}
	return f
}

// FieldSet is an ordered list of fields with unique keys. The order follows
// the URL's parameter order.
type FieldSet []Field

// Lookup returns the field stored under key.
func (s FieldSet) Lookup(key string) (Field, bool) {
	for _, field := range s {
		if field.Key == key {
			return field, true
		}
	}
	return Field{}, false
}

// Has reports whether key belongs to the set.
func (s FieldSet) Has(key string) bool {
	_, ok := s.Lookup(key)
	return ok
}

// Keys lists the field keys in order.
func (s FieldSet) Keys() []string {
	if len(s) == 0 {
		return nil
	}
	keys := make([]string, len(s))
	for i, field := range s {
		keys[i] = field.Key
	}
	return keys
}

// Clone returns an independent copy of the set.
func (s FieldSet) Clone() FieldSet {
	if s == nil {
		return nil
	}
	out := make(FieldSet, len(s))
	copy(out, s)
	return out
}
