package formurl

import (
	"net/url"
	"strings"
)

const (
	// ViewFormSuffix marks the page a respondent fills in.
	ViewFormSuffix = "/viewform"
	// ResponseSuffix is the endpoint that records a response.
	ResponseSuffix = "/formResponse"
)

// ResponseURL returns a copy of u whose path has its first "/viewform"
// segment replaced by "/formResponse". URLs without the segment are returned
// unchanged (as a copy). The query is left untouched.
func ResponseURL(u *url.URL) *url.URL {
	out := Clone(u)
	if out == nil {
		return nil
	}
	if !strings.Contains(out.Path, ViewFormSuffix) {
		return out
	}
	out.Path = strings.Replace(out.Path, ViewFormSuffix, ResponseSuffix, 1)
	out.RawPath = ""
	return out
}
