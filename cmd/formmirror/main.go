package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-formmirror/pkg/config"
	"github.com/goliatone/go-formmirror/pkg/render"
	"github.com/goliatone/go-formmirror/pkg/renderers/tui"
	"github.com/goliatone/go-formmirror/pkg/renderers/vanilla"
	"github.com/goliatone/go-formmirror/pkg/submit"
	"github.com/goliatone/go-formmirror/pkg/widget"
)

// app carries flag values and injectable dependencies shared by commands.
type app struct {
	configPath string
	formURL    string
	verbose    bool

	logger *zap.Logger
	out    io.Writer
	errOut io.Writer

	// nil selects the system browser / survey terminal prompts.
	navigator submit.Navigator
	driver    tui.PromptDriver
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{out: os.Stdout, errOut: os.Stderr}
	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		if a.logger != nil {
			a.logger.Error("command failed", zap.Error(err))
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "formmirror",
		Short: "Mirror a hosted survey form locally",
		Long: `formmirror reads the question fields of a hosted survey form from its URL,
renders a local form for them and submits the answers by opening the form's
response URL.

Examples:
  formmirror fields --url "https://docs.example.com/forms/d/e/ID/viewform?entry.1=&entry.2="
  formmirror render --config form.yaml -o form.html --watch
  formmirror fill --config form.yaml
  formmirror submit --url "..." --answer entry.1=Ada --print`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}
			cfg := zap.NewProductionConfig()
			if a.verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "configuration document (JSON or YAML)")
	root.PersistentFlags().StringVar(&a.formURL, "url", "", "hosted form URL (overrides formUrl from --config)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newFieldsCmd(a),
		newRenderCmd(a),
		newFillCmd(a),
		newSubmitCmd(a),
	)
	return root
}

var errNoFormURL = errors.New("a form URL is required (--url or formUrl in --config)")

// loadDocument merges --config and --url.
func (a *app) loadDocument() (config.Document, error) {
	var doc config.Document
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return config.Document{}, err
		}
		doc = loaded
	}
	if u := strings.TrimSpace(a.formURL); u != "" {
		doc.FormURL = u
	}
	if strings.TrimSpace(doc.FormURL) == "" {
		return config.Document{}, errNoFormURL
	}
	return doc, nil
}

func (a *app) navigatorFor(printURL bool) submit.Navigator {
	if a.navigator != nil {
		return a.navigator
	}
	if printURL {
		return submit.NewWriterNavigator(a.out)
	}
	return submit.NewBrowserNavigator()
}

// renderers registers the renderers `render` can select by name.
func (a *app) renderers(cmd *cobra.Command, templatesDir string) (*render.Registry, error) {
	html, err := vanilla.New(vanilla.WithTemplatesDir(templatesDir))
	if err != nil {
		return nil, err
	}
	opts := []tui.Option{tui.WithOutput(cmd.ErrOrStderr())}
	if a.driver != nil {
		opts = append(opts, tui.WithPromptDriver(a.driver))
	}
	prompts, err := tui.New(opts...)
	if err != nil {
		return nil, err
	}
	return render.NewRegistry(html, prompts)
}

// newWidget mounts a widget for doc with the app's logger and the document's
// inline theme, if any.
func (a *app) newWidget(doc config.Document, options ...widget.Option) (*widget.Widget, error) {
	opts := []widget.Option{widget.WithLogger(a.logger)}
	selector, err := doc.ThemeSelector()
	if err != nil {
		return nil, err
	}
	if selector != nil {
		opts = append(opts, widget.WithThemeSelector(selector))
	}
	return widget.New(doc.WidgetConfig(), doc.IsEnabled(), append(opts, options...)...)
}
