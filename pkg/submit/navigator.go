package submit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"sync"
)

// Navigator opens a URL in a new browsing context. Implementations must not
// wait for the page to load.
type Navigator interface {
	Open(ctx context.Context, target string) error
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context, target string) error

// Open implements Navigator.
func (f NavigatorFunc) Open(ctx context.Context, target string) error {
	return f(ctx, target)
}

// CommandFactory builds the process used to launch the browser.
type CommandFactory func(ctx context.Context, name string, args ...string) *exec.Cmd

// BrowserOption configures a BrowserNavigator.
type BrowserOption func(*BrowserNavigator)

// WithCommandFactory swaps the process constructor (tests use it to avoid
// launching a browser).
func WithCommandFactory(factory CommandFactory) BrowserOption {
	return func(n *BrowserNavigator) {
		if factory != nil {
			n.command = factory
		}
	}
}

// WithGOOS overrides the detected operating system.
func WithGOOS(goos string) BrowserOption {
	return func(n *BrowserNavigator) {
		if goos != "" {
			n.goos = goos
		}
	}
}

// BrowserNavigator opens URLs with the operating system's default browser.
type BrowserNavigator struct {
	command CommandFactory
	goos    string
}

// NewBrowserNavigator constructs a navigator for the current platform.
func NewBrowserNavigator(options ...BrowserOption) *BrowserNavigator {
	n := &BrowserNavigator{
		command: exec.CommandContext,
		goos:    runtime.GOOS,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(n)
	}
	return n
}

// Open starts the platform opener and returns without waiting for it.
func (n *BrowserNavigator) Open(ctx context.Context, target string) error {
	if target == "" {
		return errors.New("submit: empty url")
	}
	name, args := openerCommand(n.goos, target)
	cmd := n.command(context.WithoutCancel(ctx), name, args...)
	if cmd == nil {
		return fmt.Errorf("submit: no command for %s", n.goos)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("submit: start %s: %w", name, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

func openerCommand(goos, target string) (string, []string) {
	switch goos {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	case "darwin":
		return "open", []string{target}
	default:
		return "xdg-open", []string{target}
	}
}

// WriterNavigator prints the URL instead of opening it, one per line. It is
// safe for concurrent use.
type WriterNavigator struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterNavigator returns a navigator writing to w.
func NewWriterNavigator(w io.Writer) *WriterNavigator {
	return &WriterNavigator{w: w}
}

// Open implements Navigator.
func (n *WriterNavigator) Open(_ context.Context, target string) error {
	if n == nil || n.w == nil {
		return errors.New("submit: writer navigator has no writer")
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	_, err := fmt.Fprintln(n.w, target)
	return err
}
