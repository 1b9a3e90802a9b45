package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formmirror/pkg/render"
	"github.com/goliatone/go-formmirror/pkg/renderers/tui"
	"github.com/goliatone/go-formmirror/pkg/widget"
)

func newFillCmd(a *app) *cobra.Command {
	var (
		printURL bool
		yes      bool
		format   string
	)
	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Answer the form in the terminal and submit it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			doc, err := a.loadDocument()
			if err != nil {
				return err
			}
			w, err := a.newWidget(doc, widget.WithNavigator(a.navigatorFor(printURL)))
			if err != nil {
				return err
			}
			if !w.Enabled() {
				a.logger.Info("form disabled, nothing to fill")
				return nil
			}

			opts := []tui.Option{
				tui.WithOutputFormat(tui.OutputFormat(format)),
				tui.WithOutput(cmd.ErrOrStderr()),
			}
			if a.driver != nil {
				opts = append(opts, tui.WithPromptDriver(a.driver))
			}
			prompts, err := tui.New(opts...)
			if err != nil {
				return err
			}

			form, err := w.Form()
			if err != nil {
				return err
			}
			collected, err := prompts.Collect(ctx, form, render.RenderOptions{Values: w.Answers()})
			if err != nil {
				return fmt.Errorf("collect answers: %w", err)
			}
			for _, entry := range collected.Entries() {
				w.Change(entry.Key, entry.Value)
			}

			summary, err := prompts.Encode(form, w.Answers())
			if err != nil {
				return err
			}
			if _, err := cmd.ErrOrStderr().Write(summary); err != nil {
				return err
			}

			if !yes {
				ok, err := prompts.Confirm(ctx, render.SubmitLabel(render.RenderOptions{SubmitLabel: doc.SubmitLabel})+"?", true)
				if err != nil {
					return err
				}
				if !ok {
					a.logger.Info("submission cancelled")
					return nil
				}
			}

			target, err := w.Submit(ctx)
			if err != nil {
				return err
			}
			a.logger.Debug("submitted", zap.String("url", target))
			return nil
		},
	}
	cmd.Flags().BoolVar(&printURL, "print", false, "print the response URL instead of opening it")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "submit without confirmation")
	cmd.Flags().StringVar(&format, "summary", string(tui.OutputFormatPrettyText), "answer summary format: pretty, json or form")
	return cmd
}
