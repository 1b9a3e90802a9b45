package config_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/goliatone/go-formmirror/pkg/config"
	"github.com/goliatone/go-formmirror/pkg/testsupport"
)

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := testsupport.WriteFile(t, "form.json", []byte(`{"formUrl":"https://f.example.com/viewform","submitLabel":"one"}`))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan config.Document, 8)
	done := make(chan error, 1)
	go func() {
		done <- config.Watch(ctx, path, func(doc config.Document, err error) {
			if err == nil {
				changes <- doc
			}
		}, config.WithDebounce(20*time.Millisecond))
	}()

	updated := []byte(`{"formUrl":"https://f.example.com/viewform","submitLabel":"two"}`)
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()

	for {
		select {
		case doc := <-changes:
			if doc.SubmitLabel != "two" {
				t.Fatalf("unexpected reload %+v", doc)
			}
			cancel()
			if err := <-done; err != nil {
				t.Fatalf("watch returned %v", err)
			}
			return
		case <-tick.C:
			// The watcher may not be registered yet; keep writing.
			if err := os.WriteFile(path, updated, 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
		case <-deadline:
			t.Fatalf("no reload observed")
		}
	}
}

func TestWatch_NilFunc(t *testing.T) {
	if err := config.Watch(context.Background(), "x.json", nil); err == nil {
		t.Fatalf("expected error for nil change func")
	}
}
