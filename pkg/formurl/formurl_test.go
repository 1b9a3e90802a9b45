package formurl_test

import (
	"errors"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formmirror/pkg/formurl"
)

func TestParse_RejectsMalformedInput(t *testing.T) {
	cases := map[string]string{
		"empty":     "   ",
		"relative":  "/forms/d/e/abc/viewform?entry.1=",
		"bad-host":  "http://[::1",
		"no-scheme": "docs.example.com/forms/viewform",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := formurl.Parse(nil, raw); !errors.Is(err, formurl.ErrMalformedURL) {
				t.Fatalf("expected ErrMalformedURL, got %v", err)
			}
		})
	}
}

func TestParse_WrapsCustomParserErrors(t *testing.T) {
	boom := errors.New("boom")
	parser := formurl.ParserFunc(func(string) (*url.URL, error) { return nil, boom })

	_, err := formurl.Parse(parser, "https://example.com")
	if !errors.Is(err, formurl.ErrMalformedURL) {
		t.Fatalf("expected ErrMalformedURL, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected original error to be preserved, got %v", err)
	}
}

func TestParse_ReturnsCopy(t *testing.T) {
	shared, _ := url.Parse("https://example.com/a?x=1")
	parser := formurl.ParserFunc(func(string) (*url.URL, error) { return shared, nil })

	got, err := formurl.Parse(parser, "ignored")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	got.Path = "/changed"
	if shared.Path != "/a" {
		t.Fatalf("parser result mutated: %s", shared.Path)
	}
}

func TestParseParams_KeepsSerializedOrder(t *testing.T) {
	got := formurl.ParseParams("usp=pp_url&entry.9=a+b&&entry.2=%C3%A9&flag&bad=%zz")
	want := formurl.Params{
		{Key: "usp", Value: "pp_url"},
		{Key: "entry.9", Value: "a b"},
		{Key: "entry.2", Value: "é"},
		{Key: "flag", Value: ""},
		{Key: "bad", Value: "%zz"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestParseParams_DecodesValidEscapesNextToInvalidOnes(t *testing.T) {
	got := formurl.ParseParams("note=a%20b%zz&tail=%4&pct=100%&mix=%41+%e2%82%ac%g1")
	want := formurl.Params{
		{Key: "note", Value: "a b%zz"},
		{Key: "tail", Value: "%4"},
		{Key: "pct", Value: "100%"},
		{Key: "mix", Value: "A €%g1"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
}

func TestParams_EncodeMatchesBrowserSerialization(t *testing.T) {
	params := formurl.Params{
		{Key: "a*b", Value: "x~y"},
		{Key: "note", Value: "a b%zz"},
		{Key: "safe", Value: "-._"},
	}
	if got, want := params.Encode(), "a*b=x%7Ey&note=a+b%25zz&safe=-._"; got != want {
		t.Fatalf("encode: want %q, got %q", want, got)
	}
}

func TestParams_SetReplacesFirstAndDropsDuplicates(t *testing.T) {
	params := formurl.ParseParams("a=x&b=y&a=z")

	got := params.Set("a", "1").Set("c", "3")
	want := formurl.Params{
		{Key: "a", Value: "1"},
		{Key: "b", Value: "y"},
		{Key: "c", Value: "3"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("set mismatch (-want +got):\n%s", diff)
	}
	if len(params) != 3 {
		t.Fatalf("Set mutated the receiver: %v", params)
	}
}

func TestParams_EncodeAndKeys(t *testing.T) {
	params := formurl.Params{
		{Key: "entry.1", Value: "hello world"},
		{Key: "entry.2", Value: "a&b"},
		{Key: "entry.1", Value: "again"},
	}
	if got, want := params.Encode(), "entry.1=hello+world&entry.2=a%26b&entry.1=again"; got != want {
		t.Fatalf("encode: want %q, got %q", want, got)
	}
	if diff := cmp.Diff([]string{"entry.1", "entry.2"}, params.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if v, ok := params.Get("entry.2"); !ok || v != "a&b" {
		t.Fatalf("get: %q %v", v, ok)
	}
}

func TestResponseURL(t *testing.T) {
	u, _ := url.Parse("https://docs.example.com/forms/d/e/abc/viewform?usp=pp_url&note=/viewform")

	got := formurl.ResponseURL(u)
	if got.Path != "/forms/d/e/abc/formResponse" {
		t.Fatalf("unexpected path %q", got.Path)
	}
	if got.RawQuery != u.RawQuery {
		t.Fatalf("query must be untouched, got %q", got.RawQuery)
	}
	if u.Path != "/forms/d/e/abc/viewform" {
		t.Fatalf("input mutated: %q", u.Path)
	}

	other, _ := url.Parse("https://example.com/survey")
	if got := formurl.ResponseURL(other); got.String() != other.String() {
		t.Fatalf("expected unchanged url, got %s", got)
	}
}
