package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formmirror/pkg/config"
	"github.com/goliatone/go-formmirror/pkg/widget"
)

type renderFlags struct {
	output    string
	id        string
	unstyled  bool
	watch     bool
	renderer  string
	templates string
}

func newRenderCmd(a *app) *cobra.Command {
	var flags renderFlags
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the mirrored form (HTML or terminal prompts)",
		Long: `Renders the mirrored form. The vanilla renderer writes an HTML fragment;
the tui renderer prompts for every field in the terminal and writes the
answers form-encoded. A disabled form renders nothing. With --watch the
configuration file is watched and the output is rewritten on every change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.watch && a.configPath == "" {
				return errors.New("--watch requires --config")
			}
			if flags.watch && flags.renderer != "vanilla" {
				return errors.New("--watch only supports the vanilla renderer")
			}
			ctx := cmd.Context()
			unstyledSet := cmd.Flags().Changed("unstyled")

			doc, err := a.loadDocument()
			if err != nil {
				return err
			}
			if err := a.renderOnce(ctx, cmd, doc, flags, unstyledSet); err != nil {
				return err
			}
			if !flags.watch {
				return nil
			}

			a.logger.Info("watching configuration", zap.String("path", a.configPath))
			return config.Watch(ctx, a.configPath, func(doc config.Document, err error) {
				if err != nil {
					a.logger.Warn("reload failed", zap.Error(err))
					return
				}
				if a.formURL != "" {
					doc.FormURL = a.formURL
				}
				if err := a.renderOnce(ctx, cmd, doc, flags, unstyledSet); err != nil {
					a.logger.Warn("render failed", zap.Error(err))
				}
			}, config.WithWatchLogger(a.logger))
		},
	}
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&flags.id, "id", "", "instance id used to namespace element ids")
	cmd.Flags().BoolVar(&flags.unstyled, "unstyled", false, "omit inline styles")
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "re-render when --config changes")
	cmd.Flags().StringVarP(&flags.renderer, "renderer", "r", "vanilla", "renderer: vanilla or tui")
	cmd.Flags().StringVar(&flags.templates, "templates", "", "directory overriding the embedded templates (vanilla)")
	return cmd
}

func (a *app) renderOnce(ctx context.Context, cmd *cobra.Command, doc config.Document, flags renderFlags, unstyledSet bool) error {
	if unstyledSet {
		doc.Unstyled = flags.unstyled
	}
	registry, err := a.renderers(cmd, flags.templates)
	if err != nil {
		return err
	}
	renderer, err := registry.Get(flags.renderer)
	if err != nil {
		return fmt.Errorf("%w (available: %s)", err, strings.Join(registry.Names(), ", "))
	}

	opts := []widget.Option{
		widget.WithRenderer(renderer),
		widget.WithNavigator(a.navigatorFor(true)),
	}
	if flags.id != "" {
		opts = append(opts, widget.WithID(flags.id))
	}
	w, err := a.newWidget(doc, opts...)
	if err != nil {
		return err
	}
	out, err := w.Render(ctx)
	if err != nil {
		return err
	}
	if !w.Enabled() {
		a.logger.Info("form disabled, nothing rendered")
	}

	if flags.output == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(flags.output, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	a.logger.Info("form written", zap.String("path", flags.output), zap.Int("bytes", len(out)))
	return nil
}
