// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tcmtemplating/linkforge/cmd/configuration"
	"gopkg.in/yaml.v3"
)

func newFieldsCmd(ctx context.Context, vip *viper.Viper, loader configuration.Loader) *cobra.Command {
	command := &cobra.Command{
		Use:   "fields <id>...",
		Short: "Print field values of repository components as YAML",
		Long: "Print the values of the fields selected by --field of the content of repository components. " +
			"Dotted field names select embedded fields and the fields of linked components.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return printFields(ctx, vip, loader, args, cmd.OutOrStdout())
		},
	}
	command.Flags().StringSlice("field", []string{"Title"},
		"Dotted field names, e.g. Title or Author.Name.")
	_ = vip.BindPFlag("field", command.Flags().Lookup("field"))
	return command
}

func printFields(ctx context.Context, vip *viper.Viper, loader configuration.Loader, ids []string, out io.Writer) error {
	options, config, err := loadOptions(vip, loader)
	if err != nil {
		return err
	}
	registry, _, err := initRepositories(ctx, options, config)
	if err != nil {
		return err
	}
	t := newTransformer(options, registry, nil)
	values, err := t.Fields(ctx, ids, options.Fields)
	if len(values) > 0 {
		b, yErr := yaml.Marshal(values)
		if yErr != nil {
			return yErr
		}
		if _, wErr := fmt.Fprint(out, string(b)); wErr != nil {
			return wErr
		}
	}
	return err
}
