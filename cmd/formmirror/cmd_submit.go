package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formmirror/pkg/widget"
)

func newSubmitCmd(a *app) *cobra.Command {
	var (
		pairs    []string
		printURL bool
	)
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit answers given on the command line",
		Long: `Builds the response URL from --answer key=value pairs (in the order given)
and opens it. Keys need not be question fields; every answer is set on the
URL.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.loadDocument()
			if err != nil {
				return err
			}
			w, err := a.newWidget(doc, widget.WithNavigator(a.navigatorFor(printURL)))
			if err != nil {
				return err
			}
			for _, pair := range pairs {
				key, value, ok := strings.Cut(pair, "=")
				if !ok || strings.TrimSpace(key) == "" {
					return fmt.Errorf("invalid --answer %q, want key=value", pair)
				}
				w.Change(strings.TrimSpace(key), value)
			}

			target, err := w.Submit(cmd.Context())
			if err != nil {
				return err
			}
			a.logger.Debug("submitted", zap.String("url", target), zap.Int("answers", w.Answers().Len()))
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&pairs, "answer", "a", nil, "answer as key=value (repeatable)")
	cmd.Flags().BoolVar(&printURL, "print", false, "print the response URL instead of opening it")
	return cmd
}
