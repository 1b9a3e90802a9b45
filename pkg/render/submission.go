package render

import (
	"github.com/goliatone/go-formmirror/pkg/fields"
	"github.com/goliatone/go-formmirror/pkg/formurl"
)

// HiddenField represents a hidden input emitted alongside the visible
// questions.
type HiddenField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// HiddenParams returns the params that are not questions of set, in their
// original order. Duplicates are kept because a native submission would
// repeat them too.
func HiddenParams(params formurl.Params, set fields.FieldSet) []HiddenField {
	if len(params) == 0 {
		return nil
	}
	out := make([]HiddenField, 0, len(params))
	for _, param := range params {
		if param.Key == "" || set.Has(param.Key) {
			continue
		}
		out = append(out, HiddenField{Name: param.Key, Value: param.Value})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
