package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formmirror/pkg/fields"
	"github.com/goliatone/go-formmirror/pkg/widget"
)

func newFieldsCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "Print the question fields extracted from the form URL",
		Long: `Prints the fields the form would render, overrides applied. A disabled
form extracts nothing and prints nothing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.loadDocument()
			if err != nil {
				return err
			}
			w, err := a.newWidget(doc, widget.WithNavigator(a.navigatorFor(true)))
			if err != nil {
				return err
			}
			if !w.Enabled() {
				a.logger.Info("form disabled, no fields extracted")
				return nil
			}
			set := w.Fields()
			a.logger.Debug("fields extracted", zap.Int("count", len(set)))
			if set == nil {
				set = fields.FieldSet{}
			}

			var data []byte
			switch format {
			case "yaml", "yml":
				data, err = yaml.Marshal(set)
			case "json", "":
				data, err = json.MarshalIndent(set, "", "  ")
				data = append(data, '\n')
			default:
				return fmt.Errorf("unknown format %q (json, yaml)", format)
			}
			if err != nil {
				return fmt.Errorf("encode fields: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	return cmd
}
