package answers_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formmirror/pkg/answers"
)

func TestApply_SetsAndOverwrites(t *testing.T) {
	var a answers.Answers
	a = answers.Apply(a, "entry.1", "A")
	a = answers.Apply(a, "entry.2", "B")
	a = answers.Apply(a, "entry.1", "AA")

	want := []answers.Entry{
		{Key: "entry.1", Value: "AA"},
		{Key: "entry.2", Value: "B"},
	}
	if diff := cmp.Diff(want, a.Entries()); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestApply_LeavesInputUntouched(t *testing.T) {
	base := answers.New(answers.Entry{Key: "entry.1", Value: "A"})
	next := answers.Apply(base, "entry.1", "changed")
	_ = answers.Apply(base, "entry.2", "new")

	if v, _ := base.Get("entry.1"); v != "A" {
		t.Fatalf("base mutated: %q", v)
	}
	if base.Len() != 1 {
		t.Fatalf("base grew to %d keys", base.Len())
	}
	if v, _ := next.Get("entry.1"); v != "changed" {
		t.Fatalf("next not updated: %q", v)
	}
}

func TestApply_AcceptsUnknownKeys(t *testing.T) {
	a := answers.Apply(answers.Answers{}, "not-a-field", "x")
	if v, ok := a.Get("not-a-field"); !ok || v != "x" {
		t.Fatalf("expected arbitrary key stored, got %q %v", v, ok)
	}
	if diff := cmp.Diff(map[string]string{"not-a-field": "x"}, a.Map()); diff != "" {
		t.Fatalf("map mismatch (-want +got):\n%s", diff)
	}
}

func TestZeroValue(t *testing.T) {
	var a answers.Answers
	if a.Len() != 0 || a.Entries() != nil || a.Map() != nil {
		t.Fatalf("zero value should be empty")
	}
	if _, ok := a.Get("x"); ok {
		t.Fatalf("zero value should not contain keys")
	}
}
