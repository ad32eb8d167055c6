// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/viper"
	"github.com/tcmtemplating/linkforge/cmd/configuration"
	"github.com/tcmtemplating/linkforge/pkg/osfakes/osshim"
	"github.com/tcmtemplating/linkforge/pkg/publisher"
	"github.com/tcmtemplating/linkforge/pkg/repository"
	"github.com/tcmtemplating/linkforge/pkg/transform"
	"github.com/tcmtemplating/linkforge/pkg/writers"
	"k8s.io/klog/v2"
)

// loadOptions unmarshals the options bound in vip and completes them from
// the user configuration
func loadOptions(vip *viper.Viper, loader configuration.Loader) (*Options, *configuration.Config, error) {
	options := &Options{}
	if err := vip.Unmarshal(options); err != nil {
		return nil, nil, err
	}
	config, err := loader.Load()
	if err != nil {
		return nil, nil, err
	}
	applyConfig(options, config, vip.IsSet)
	return options, config, nil
}

func exec(ctx context.Context, vip *viper.Viper, loader configuration.Loader, out io.Writer) error {
	options, config, err := loadOptions(vip, loader)
	if err != nil {
		return err
	}
	if options.Input == "" {
		return errors.New("input is not set, use --input")
	}
	if options.DestinationPath == "" && !options.DryRun {
		return errors.New("destination is not set, use --destination")
	}
	mode, err := transform.ParseMode(options.Mode)
	if err != nil {
		return err
	}
	units, err := transform.Discover(options.Input, mode)
	if err != nil {
		return err
	}
	klog.Infof("Input: %s, %d units\n", options.Input, len(units))
	klog.Infof("Output dir: %s\n", options.DestinationPath)

	registry, limiters, err := initRepositories(ctx, options, config)
	if err != nil {
		return err
	}
	defer func() {
		for _, l := range limiters {
			l.LogRateLimit(ctx)
		}
	}()

	var (
		writer        writers.Writer
		dryRunWriters writers.DryRunWriter
	)
	if options.DryRun {
		dryRunWriters = writers.NewDryRunWritersFactory(out)
		writer = dryRunWriters.GetWriter(options.DestinationPath)
	} else {
		writer = writers.NewFSWriter(options.DestinationPath)
	}
	t := newTransformer(options, registry, writer)
	err = t.Run(ctx, units)
	if dryRunWriters != nil {
		dryRunWriters.Flush()
	}
	return err
}

func newTransformer(o *Options, repo repository.Interface, writer writers.Writer) *transform.Transformer {
	return &transform.Transformer{
		Repository: repo,
		Publisher: &publisher.FS{
			Writer:  writer,
			Path:    o.BinariesPath,
			BaseURL: o.BinariesURL,
		},
		Os:      &osshim.OsShim{},
		Writer:  writer,
		Options: o.transformOptions(),
	}
}
