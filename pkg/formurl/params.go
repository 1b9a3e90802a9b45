package formurl

import (
	"strings"
)

// Param is one key/value pair of a query string.
type Param struct {
	Key   string
	Value string
}

// Params is a query string kept in serialized order. net/url.Values is a map
// and loses the order in which a form lists its questions.
type Params []Param

// ParseParams splits a raw query (without the leading '?') into ordered
// pairs. Empty segments are skipped; keys without '=' get an empty value.
// '+' decodes to a space and every valid percent escape is decoded; an
// invalid escape such as "%zz" is kept as literal text.
func ParseParams(rawQuery string) Params {
	rawQuery = strings.TrimPrefix(rawQuery, "?")
	if rawQuery == "" {
		return nil
	}

	segments := strings.Split(rawQuery, "&")
	out := make(Params, 0, len(segments))
	for _, segment := range segments {
		if segment == "" {
			continue
		}
		key, value, _ := strings.Cut(segment, "=")
		out = append(out, Param{Key: unescape(key), Value: unescape(value)})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func unescape(s string) string {
	if !strings.ContainsAny(s, "%+") {
		return s
	}
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '+':
			out = append(out, ' ')
		case c == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]):
			out = append(out, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
		default:
			out = append(out, c)
		}
	}
	return string(out)
}

// Get returns the first value stored for key.
func (p Params) Get(key string) (string, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, true
		}
	}
	return "", false
}

// Keys lists distinct keys in first-seen order.
func (p Params) Keys() []string {
	if len(p) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(p))
	keys := make([]string, 0, len(p))
	for _, param := range p {
		if _, ok := seen[param.Key]; ok {
			continue
		}
		seen[param.Key] = struct{}{}
		keys = append(keys, param.Key)
	}
	return keys
}

// Set returns a copy of p where key holds exactly one value. The first
// existing occurrence is replaced in place and later duplicates are dropped;
// a missing key is appended at the end.
func (p Params) Set(key, value string) Params {
	out := make(Params, 0, len(p)+1)
	replaced := false
	for _, param := range p {
		if param.Key != key {
			out = append(out, param)
			continue
		}
		if replaced {
			continue
		}
		out = append(out, Param{Key: key, Value: value})
		replaced = true
	}
	if !replaced {
		out = append(out, Param{Key: key, Value: value})
	}
	return out
}

// Encode serializes p as application/x-www-form-urlencoded, keeping order.
// Bytes outside [A-Za-z0-9*-._] are percent-encoded and spaces become '+',
// which is how browsers serialize a query (url.QueryEscape differs on '*'
// and '~').
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for i, param := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		writeEscaped(&b, param.Key)
		b.WriteByte('=')
		writeEscaped(&b, param.Value)
	}
	return b.String()
}

const upperhex = "0123456789ABCDEF"

func writeEscaped(b *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ':
			b.WriteByte('+')
		case unreserved(c):
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
		}
	}
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '*', c == '-', c == '.', c == '_':
		return true
	}
	return false
}

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
