// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"flag"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tcmtemplating/linkforge/cmd/configuration"
	"github.com/tcmtemplating/linkforge/cmd/gendocs"
	"k8s.io/klog/v2"
)

var initKlogFlags sync.Once

// NewCommand creates a new root command and propagates
// the context to its Run callback closure
func NewCommand(ctx context.Context) *cobra.Command {
	return newCommand(ctx, new(configuration.DefaultConfigurationLoader))
}

func newCommand(ctx context.Context, loader configuration.Loader) *cobra.Command {
	vip := viper.New()
	cmd := &cobra.Command{
		Use:   "linkforge",
		Short: "Resolve repository links in rendered markup and rich text",
		Long: "Rewrites anchors and images referencing repository objects by identifier into " +
			"ComponentLink, PageLink, BinaryLink and Image elements, publishing the binaries they reference.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return exec(ctx, vip, loader, cmd.OutOrStdout())
		},
	}
	configureEnv(vip)
	configureRepositoryFlags(cmd, vip)
	configureFlags(cmd, vip)

	cmd.AddCommand(NewVersionCmd())
	cmd.AddCommand(newCompletionCmd())
	cmd.AddCommand(gendocs.NewGenCmdDocs())
	cmd.AddCommand(newFieldsCmd(ctx, vip, loader))

	initKlogFlags.Do(func() { klog.InitFlags(nil) })
	AddFlags(cmd)

	return cmd
}

// AddFlags adds go flags to rootCmd
func AddFlags(rootCmd *cobra.Command) {
	flag.CommandLine.VisitAll(func(gf *flag.Flag) {
		rootCmd.PersistentFlags().AddGoFlag(gf)
	})
}
