package render

import (
	"net/url"

	"github.com/goliatone/go-formmirror/pkg/fields"
	"github.com/goliatone/go-formmirror/pkg/formurl"
)

// Form is the view model handed to renderers.
type Form struct {
	// ID namespaces element ids so several forms can share a page.
	ID string `json:"id"`
	// Target is the hosted form URL the fields were extracted from.
	Target string `json:"target"`
	// Action is the response endpoint without query, used for native
	// (script-free) submission.
	Action string         `json:"action"`
	Fields fields.FieldSet `json:"fields"`
	// Hidden carries the target's non-question parameters so a native
	// submission reproduces them.
	Hidden []HiddenField `json:"hidden"`
}

// NewForm builds the view model for target and its extracted field set.
func NewForm(id string, target *url.URL, set fields.FieldSet) Form {
	form := Form{
		ID:     id,
		Fields: set.Clone(),
	}
	if target == nil {
		return form
	}

	form.Target = target.String()

	action := formurl.ResponseURL(target)
	action.RawQuery = ""
	action.ForceQuery = false
	action.Fragment = ""
	action.RawFragment = ""
	form.Action = action.String()
	form.Hidden = HiddenParams(formurl.ParseParams(target.RawQuery), set)
	return form
}

// ElementID returns the DOM id used for the field with key.
func (f Form) ElementID(key string) string {
	if f.ID == "" {
		return key
	}
	return f.ID + "-" + key
}
