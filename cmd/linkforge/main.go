// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tcmtemplating/linkforge/cmd/app"
	"k8s.io/klog/v2"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		klog.Warning("interrupted, stopping workers\n")
		cancel()
	}()

	command := app.NewCommand(ctx)
	if err := command.Execute(); err != nil {
		klog.Errorf("%v\n", err)
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}
